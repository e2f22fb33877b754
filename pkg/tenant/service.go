// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/voluntold-service/internal/authorization"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/storage"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/internal/types"
)

var (
	ErrInvalidName = errors.New("tenant name must contain letters or digits")
	ErrInvalidSlug = errors.New("slug must contain only lowercase letters, digits and dashes")
	ErrSlugTaken   = errors.New("a tenant with this slug already exists")
	ErrForbidden   = errors.New("insufficient permissions")
	ErrNotFound    = errors.New("tenant not found")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateTenant is reserved to super admins. An empty slug is derived from
// the name.
func (s *Service) CreateTenant(ctx context.Context, principal, name, slug string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.CreateTenant")
	defer span.End()

	allowed, err := s.authz.Check(ctx, principal, authorization.CAN_CREATE_PERMISSION, "")
	if err != nil {
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		s.logger.Security().AdminAction(principal, "create_tenant", "tenant", "denied")
		return nil, ErrForbidden
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}

	if slug == "" {
		// nothing left to derive a slug from, e.g. a name made of symbols
		if slug = Slugify(name); slug == "" {
			return nil, ErrInvalidName
		}
	}
	if !ValidSlug(slug) {
		return nil, ErrInvalidSlug
	}

	created, err := s.storage.CreateTenant(ctx, &types.Tenant{Name: name, Slug: slug})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	s.logger.Security().AdminAction(principal, "create_tenant", "tenant:"+created.ID, "success")

	return created, nil
}

func (s *Service) GetTenant(ctx context.Context, principal, id string) (*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.GetTenant")
	defer span.End()

	allowed, err := s.authz.Check(ctx, principal, authorization.CAN_VIEW_PERMISSION, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check permissions: %w", err)
	}
	if !allowed {
		return nil, ErrForbidden
	}

	t, err := s.storage.GetTenantByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// ListTenants returns the tenants principal administers, all of them for a
// super admin.
func (s *Service) ListTenants(ctx context.Context, principal string) ([]*types.Tenant, error) {
	ctx, span := s.tracer.Start(ctx, "tenant.Service.ListTenants")
	defer span.End()

	tenants, err := s.storage.ListTenants(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(tenants))
	for _, t := range tenants {
		ids = append(ids, t.ID)
	}

	allowedIDs, err := s.authz.FilterTenants(ctx, principal, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to filter tenants: %w", err)
	}

	allowed := make(map[string]bool, len(allowedIDs))
	for _, id := range allowedIDs {
		allowed[id] = true
	}

	ret := make([]*types.Tenant, 0, len(allowedIDs))
	for _, t := range tenants {
		if allowed[t.ID] {
			ret = append(ret, t)
		}
	}

	return ret, nil
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
