// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/voluntold-service/internal/types"
)

const (
	CAN_VIEW_PERMISSION   = "can_view"
	CAN_INVITE_PERMISSION = "can_invite"
	CAN_CREATE_PERMISSION = "can_create"
)

// grants maps each permission to the roles holding it. Tenant admins only
// hold tenant permissions on their own tenant.
var grants = map[string][]types.Role{
	CAN_VIEW_PERMISSION:   {types.RoleSuperAdmin, types.RoleTenantAdmin},
	CAN_INVITE_PERMISSION: {types.RoleSuperAdmin, types.RoleTenantAdmin},
	CAN_CREATE_PERMISSION: {types.RoleSuperAdmin},
}

func NormalizePrincipal(principal string) string {
	return types.NormalizeEmail(principal)
}
