// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func tenantProfile(role types.Role, id, name string) *types.ProfileWithTenant {
	tenantID := id
	return &types.ProfileWithTenant{
		Profile: types.Profile{ID: "p-" + id + "-" + string(role), Email: "user@example.org", Role: role, TenantID: &tenantID},
		Tenant:  &types.Tenant{ID: id, Name: name, Slug: id},
	}
}

func superAdminProfile() *types.ProfileWithTenant {
	return &types.ProfileWithTenant{
		Profile: types.Profile{ID: "p-root", Email: "user@example.org", Role: types.RoleSuperAdmin},
	}
}

func TestService_ResolveAccess(t *testing.T) {
	dbErr := errors.New("db error")

	testCases := []struct {
		name            string
		profiles        []*types.ProfileWithTenant
		storageErr      error
		expectedOptions []types.AccessOption
		expectedAdmin   bool
		expectedMember  bool
		expectedErr     error
	}{
		{
			name:            "no profiles",
			profiles:        []*types.ProfileWithTenant{},
			expectedOptions: []types.AccessOption{},
		},
		{
			name:     "super admin only",
			profiles: []*types.ProfileWithTenant{superAdminProfile()},
			expectedOptions: []types.AccessOption{
				{ID: "super_admin", Name: "Super Admin", AccessType: types.AccessSuperAdmin},
			},
			expectedAdmin:  true,
			expectedMember: true,
		},
		{
			name:     "single member keeps plain tenant name",
			profiles: []*types.ProfileWithTenant{tenantProfile(types.RoleMember, "t1", "Food Bank")},
			expectedOptions: []types.AccessOption{
				{ID: "member-t1", Name: "Food Bank", AccessType: types.AccessMember, TenantID: "t1", OrganizationName: "Food Bank"},
			},
			expectedMember: true,
		},
		{
			name: "admin in one tenant and member in another",
			profiles: []*types.ProfileWithTenant{
				tenantProfile(types.RoleTenantAdmin, "t1", "Food Bank"),
				tenantProfile(types.RoleMember, "t2", "Animal Shelter"),
			},
			expectedOptions: []types.AccessOption{
				{ID: "tenant_admin-t1", Name: "Food Bank (Admin)", AccessType: types.AccessTenantAdmin, TenantID: "t1", OrganizationName: "Food Bank"},
				{ID: "member-t2", Name: "Animal Shelter (Member)", AccessType: types.AccessMember, TenantID: "t2", OrganizationName: "Animal Shelter"},
			},
			expectedAdmin:  true,
			expectedMember: true,
		},
		{
			name: "admin and member of the same tenant",
			profiles: []*types.ProfileWithTenant{
				tenantProfile(types.RoleMember, "t1", "Food Bank"),
				tenantProfile(types.RoleTenantAdmin, "t1", "Food Bank"),
			},
			expectedOptions: []types.AccessOption{
				{ID: "member-t1", Name: "Food Bank (Member)", AccessType: types.AccessMember, TenantID: "t1", OrganizationName: "Food Bank"},
				{ID: "tenant_admin-t1", Name: "Food Bank (Admin)", AccessType: types.AccessTenantAdmin, TenantID: "t1", OrganizationName: "Food Bank"},
			},
			expectedAdmin:  true,
			expectedMember: true,
		},
		{
			name: "super admin with tenant membership",
			profiles: []*types.ProfileWithTenant{
				tenantProfile(types.RoleMember, "t1", "Food Bank"),
				superAdminProfile(),
			},
			expectedOptions: []types.AccessOption{
				{ID: "member-t1", Name: "Food Bank (Member)", AccessType: types.AccessMember, TenantID: "t1", OrganizationName: "Food Bank"},
				{ID: "super_admin", Name: "Super Admin", AccessType: types.AccessSuperAdmin},
			},
			expectedAdmin:  true,
			expectedMember: true,
		},
		{
			name: "duplicate relationships collapse",
			profiles: []*types.ProfileWithTenant{
				tenantProfile(types.RoleMember, "t1", "Food Bank"),
				tenantProfile(types.RoleMember, "t1", "Food Bank"),
			},
			expectedOptions: []types.AccessOption{
				{ID: "member-t1", Name: "Food Bank", AccessType: types.AccessMember, TenantID: "t1", OrganizationName: "Food Bank"},
			},
			expectedMember: true,
		},
		{
			name:        "storage error",
			storageErr:  dbErr,
			expectedErr: dbErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "access.Service.ResolveAccess").Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockStorage.EXPECT().ListProfilesByEmail(gomock.Any(), "user@example.org").Return(tc.profiles, tc.storageErr)

			summary, err := s.ResolveAccess(context.Background(), "  User@Example.org ")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				if summary != nil {
					t.Errorf("expected no partial result, got %+v", summary)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if summary.TotalOptions != len(tc.expectedOptions) || len(summary.AccessOptions) != len(tc.expectedOptions) {
				t.Fatalf("expected %d options, got %d (total %d)", len(tc.expectedOptions), len(summary.AccessOptions), summary.TotalOptions)
			}

			for i, expected := range tc.expectedOptions {
				if *summary.AccessOptions[i] != expected {
					t.Errorf("option %d: expected %+v, got %+v", i, expected, *summary.AccessOptions[i])
				}
			}

			if summary.HasAdminAccess != tc.expectedAdmin {
				t.Errorf("expected hasAdminAccess %v, got %v", tc.expectedAdmin, summary.HasAdminAccess)
			}
			if summary.HasMemberAccess != tc.expectedMember {
				t.Errorf("expected hasMemberAccess %v, got %v", tc.expectedMember, summary.HasMemberAccess)
			}
		})
	}
}

func TestService_ResolveAccessSkipsDanglingTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStorage := NewMockStorageInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	dangling := tenantProfile(types.RoleMember, "gone", "Gone")
	dangling.Tenant = nil

	mockTracer.EXPECT().Start(gomock.Any(), gomock.Any()).Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockStorage.EXPECT().ListProfilesByEmail(gomock.Any(), gomock.Any()).Return([]*types.ProfileWithTenant{dangling}, nil)
	mockLogger.EXPECT().Warnf(gomock.Any(), gomock.Any()).Times(1)

	summary, err := NewService(mockStorage, mockTracer, mockMonitor, mockLogger).ResolveAccess(context.Background(), "user@example.org")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.TotalOptions != 0 || summary.HasMemberAccess {
		t.Errorf("expected empty summary, got %+v", summary)
	}
}

func TestOptionID(t *testing.T) {
	if got := OptionID(types.AccessSuperAdmin, "ignored"); got != "super_admin" {
		t.Errorf("expected super_admin, got %q", got)
	}
	if got := OptionID(types.AccessTenantAdmin, "t1"); got != "tenant_admin-t1" {
		t.Errorf("expected tenant_admin-t1, got %q", got)
	}
}
