// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go

type AuthorizerInterface interface {
	// Check reports whether principal holds permission on the tenant. Global
	// permissions ignore tenantID.
	Check(ctx context.Context, principal, permission, tenantID string) (bool, error)
	IsSuperAdmin(ctx context.Context, principal string) (bool, error)
	// FilterTenants keeps the tenant ids principal may view.
	FilterTenants(ctx context.Context, principal string, tenantIDs []string) ([]string, error)
}

type ProfileReaderInterface interface {
	ListAdminProfilesByEmail(ctx context.Context, email string) ([]*types.ProfileWithTenant, error)
}
