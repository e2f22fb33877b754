// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"

	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tenant.go -source=./interfaces.go

type ServiceInterface interface {
	CreateTenant(ctx context.Context, principal, name, slug string) (*types.Tenant, error)
	GetTenant(ctx context.Context, principal, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context, principal string) ([]*types.Tenant, error)
}

type StorageInterface interface {
	CreateTenant(ctx context.Context, t *types.Tenant) (*types.Tenant, error)
	GetTenantByID(ctx context.Context, id string) (*types.Tenant, error)
	ListTenants(ctx context.Context) ([]*types.Tenant, error)
}

type AuthzInterface interface {
	Check(ctx context.Context, principal, permission, tenantID string) (bool, error)
	FilterTenants(ctx context.Context, principal string, tenantIDs []string) ([]string, error)
}
