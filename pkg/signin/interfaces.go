// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signin

import (
	"context"

	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package signin -destination ./mock_interfaces.go -source=./interfaces.go

type ServiceInterface interface {
	SignIn(ctx context.Context, email string) (*Result, error)
	Select(ctx context.Context, email, optionID string) (*Result, error)
}

type AccessResolverInterface interface {
	ResolveAccess(ctx context.Context, email string) (*types.AccessSummary, error)
}

// MemberAccessInterface mints passwordless access for members.
type MemberAccessInterface interface {
	Issue(ctx context.Context, email, tenantID string) (string, error)
}
