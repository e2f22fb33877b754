// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"fmt"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/internal/types"
)

const (
	SuperAdminOptionID   = "super_admin"
	SuperAdminOptionName = "Super Admin"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolveAccess computes every way email may sign in. An email without
// profiles yields the empty summary, shaped like any other.
func (s *Service) ResolveAccess(ctx context.Context, email string) (*types.AccessSummary, error) {
	ctx, span := s.tracer.Start(ctx, "access.Service.ResolveAccess")
	defer span.End()

	profiles, err := s.storage.ListProfilesByEmail(ctx, types.NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	summary := types.EmptyAccessSummary()
	seen := make(map[string]bool)

	for _, p := range profiles {
		if p.Role == types.RoleSuperAdmin {
			if seen[SuperAdminOptionID] {
				continue
			}
			seen[SuperAdminOptionID] = true

			summary.HasAdminAccess = true
			summary.HasMemberAccess = true
			summary.AccessOptions = append(summary.AccessOptions, &types.AccessOption{
				ID:         SuperAdminOptionID,
				Name:       SuperAdminOptionName,
				AccessType: types.AccessSuperAdmin,
			})
			continue
		}

		if p.TenantID == nil {
			continue
		}

		if p.Tenant == nil {
			s.logger.Warnf("profile %s references missing tenant %s", p.ID, *p.TenantID)
			continue
		}

		accessType := types.AccessMember
		if p.Role == types.RoleTenantAdmin {
			accessType = types.AccessTenantAdmin
		}

		id := OptionID(accessType, p.Tenant.ID)
		if seen[id] {
			continue
		}
		seen[id] = true

		if accessType == types.AccessTenantAdmin {
			summary.HasAdminAccess = true
		}
		summary.HasMemberAccess = true

		summary.AccessOptions = append(summary.AccessOptions, &types.AccessOption{
			ID:               id,
			Name:             p.Tenant.Name,
			AccessType:       accessType,
			TenantID:         p.Tenant.ID,
			OrganizationName: p.Tenant.Name,
		})
	}

	if len(summary.AccessOptions) > 1 {
		for _, o := range summary.AccessOptions {
			o.Name = displayName(o)
		}
	}

	summary.TotalOptions = len(summary.AccessOptions)

	return summary, nil
}

// OptionID identifies an access option, stable across resolutions.
func OptionID(accessType types.AccessType, tenantID string) string {
	if accessType == types.AccessSuperAdmin {
		return SuperAdminOptionID
	}
	return string(accessType) + "-" + tenantID
}

func displayName(o *types.AccessOption) string {
	switch o.AccessType {
	case types.AccessTenantAdmin:
		return o.OrganizationName + " (Admin)"
	case types.AccessMember:
		return o.OrganizationName + " (Member)"
	default:
		return o.Name
	}
}

func NewService(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Service {
	s := new(Service)

	s.storage = storage

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
