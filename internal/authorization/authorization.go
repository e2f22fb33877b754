// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"
	"slices"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

var ErrUnknownPermission = fmt.Errorf("unknown permission")

// Authorizer derives permissions from the admin profiles of a principal.
type Authorizer struct {
	profiles ProfileReaderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, principal, permission, tenantID string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	roles, ok := grants[permission]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownPermission, permission)
	}

	profiles, err := a.adminProfiles(ctx, principal)
	if err != nil {
		return false, err
	}

	for _, p := range profiles {
		if !slices.Contains(roles, p.Role) {
			continue
		}

		if p.Role == types.RoleSuperAdmin {
			return true, nil
		}

		if p.TenantID != nil && *p.TenantID == tenantID {
			return true, nil
		}
	}

	a.logger.Security().AuthzFailure(principal, permission+":"+tenantID)
	return false, nil
}

func (a *Authorizer) IsSuperAdmin(ctx context.Context, principal string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.IsSuperAdmin")
	defer span.End()

	profiles, err := a.adminProfiles(ctx, principal)
	if err != nil {
		return false, err
	}

	for _, p := range profiles {
		if p.Role == types.RoleSuperAdmin {
			return true, nil
		}
	}

	return false, nil
}

func (a *Authorizer) FilterTenants(ctx context.Context, principal string, tenantIDs []string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.FilterTenants")
	defer span.End()

	profiles, err := a.adminProfiles(ctx, principal)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool)
	for _, p := range profiles {
		if p.Role == types.RoleSuperAdmin {
			return tenantIDs, nil
		}
		if p.TenantID != nil {
			allowed[*p.TenantID] = true
		}
	}

	ret := make([]string, 0, len(allowed))
	for _, id := range tenantIDs {
		if allowed[id] {
			ret = append(ret, id)
		}
	}

	return ret, nil
}

func (a *Authorizer) adminProfiles(ctx context.Context, principal string) ([]*types.ProfileWithTenant, error) {
	principal = NormalizePrincipal(principal)
	if principal == "" {
		return nil, nil
	}

	profiles, err := a.profiles.ListAdminProfilesByEmail(ctx, principal)
	if err != nil {
		return nil, fmt.Errorf("failed to read admin profiles: %w", err)
	}

	return profiles, nil
}

func NewAuthorizer(profiles ProfileReaderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.profiles = profiles

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
