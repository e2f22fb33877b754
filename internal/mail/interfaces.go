// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

//go:generate mockgen -build_flags=--mod=mod -package mail -destination ./mock_interfaces.go -source=./interfaces.go

// SenderInterface delivers a rendered HTML email.
type SenderInterface interface {
	Send(ctx context.Context, to, subject, html string) error
}

type MailerInterface interface {
	SendInvitation(ctx context.Context, to string, data InvitationData) error
	SendPasswordReset(ctx context.Context, to string, data PasswordResetData) error
	SendMagicLink(ctx context.Context, to string, data MagicLinkData) error
}
