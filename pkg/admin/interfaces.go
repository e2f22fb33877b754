// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"context"
	"time"

	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package admin -destination ./mock_interfaces.go -source=./interfaces.go

type ServiceInterface interface {
	IssueInvitation(ctx context.Context, principal string, req *InvitationRequest) (*InvitationResult, error)
	// IssuePasswordReset answers identically whether or not email is an admin.
	IssuePasswordReset(ctx context.Context, email string, tenantID *string) *PasswordResetResult
	RedeemToken(ctx context.Context, token, password string) (*RedeemResult, error)
	GetTokenInfo(ctx context.Context, token string) (*TokenInfo, error)
}

type StorageInterface interface {
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	GetProfile(ctx context.Context, email string, role types.Role, tenantID *string) (*types.Profile, error)
	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	ListAdminProfilesByEmail(ctx context.Context, email string) ([]*types.ProfileWithTenant, error)
	UpdateAdminPasswordHash(ctx context.Context, email string, tenantID *string, hash string) error

	CreateAdminToken(ctx context.Context, t *types.AdminToken) (*types.AdminToken, error)
	GetAdminToken(ctx context.Context, token string) (*types.AdminToken, error)
	ConsumeAdminToken(ctx context.Context, token string, usedAt time.Time) error
	DeleteAdminToken(ctx context.Context, token string) error
}

type AuthorizerInterface interface {
	Check(ctx context.Context, principal, permission, tenantID string) (bool, error)
}

// TxRunnerInterface runs fn in a transaction bound to the context it receives.
type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
