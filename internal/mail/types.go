// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import "time"

type InvitationData struct {
	FirstName  string
	TenantName string
	InvitedBy  string
	SetupURL   string
	ExpiresAt  time.Time
}

type PasswordResetData struct {
	FirstName  string
	TenantName string
	ResetURL   string
	ExpiresAt  time.Time
}

type MagicLinkData struct {
	TenantName string
	LinkURL    string
	ExpiresAt  time.Time
}
