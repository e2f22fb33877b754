// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package magiclink

import (
	"context"

	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package magiclink -destination ./mock_interfaces.go -source=./interfaces.go

type ServiceInterface interface {
	// Issue mails a single use sign-in link for tenantID to email and returns
	// the message to show the member.
	Issue(ctx context.Context, email, tenantID string) (string, error)
	Redeem(ctx context.Context, token string) (*Link, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetProfile(ctx context.Context, email string, role types.Role, tenantID *string) (*types.Profile, error)
}
