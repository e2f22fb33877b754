// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package storage -destination ./mock_interfaces.go -source=./interfaces.go

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)

	CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error)
	GetProfile(ctx context.Context, email string, role types.Role, tenantID *string) (*types.Profile, error)
	ListProfilesByEmail(ctx context.Context, email string) ([]*types.ProfileWithTenant, error)
	ListAdminProfilesByEmail(ctx context.Context, email string) ([]*types.ProfileWithTenant, error)
	UpdateAdminPasswordHash(ctx context.Context, email string, tenantID *string, hash string) error

	CreateAdminToken(ctx context.Context, t *types.AdminToken) (*types.AdminToken, error)
	GetAdminToken(ctx context.Context, token string) (*types.AdminToken, error)
	ConsumeAdminToken(ctx context.Context, token string, usedAt time.Time) error
	DeleteAdminToken(ctx context.Context, token string) error
}
