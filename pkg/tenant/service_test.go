// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/voluntold-service/internal/authorization"
	"github.com/canonical/voluntold-service/internal/storage"
	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_CreateTenant(t *testing.T) {
	tests := []struct {
		name       string
		tenantName string
		slug       string
		setupMocks func(*MockStorageInterface, *MockAuthzInterface, *MockSecurityLoggerInterface)
		wantSlug   string
		wantErr    error
		anyErr     bool
	}{
		{
			name:       "slug derived from name",
			tenantName: "Food Bank #2",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), "root@example.org", authorization.CAN_CREATE_PERMISSION, "").Return(true, nil)
				s.EXPECT().CreateTenant(gomock.Any(), &types.Tenant{Name: "Food Bank #2", Slug: "food-bank-2"}).
					Return(&types.Tenant{ID: "t1", Name: "Food Bank #2", Slug: "food-bank-2"}, nil)
				sec.EXPECT().AdminAction("root@example.org", "create_tenant", "tenant:t1", "success")
			},
			wantSlug: "food-bank-2",
		},
		{
			name:       "explicit slug",
			tenantName: "Food Bank",
			slug:       "fb",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				s.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: "t1", Slug: "fb"}, nil)
				sec.EXPECT().AdminAction(gomock.Any(), gomock.Any(), gomock.Any(), "success")
			},
			wantSlug: "fb",
		},
		{
			name:       "non-ascii name is transliterated",
			tenantName: "Café Crème",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				s.EXPECT().CreateTenant(gomock.Any(), &types.Tenant{Name: "Café Crème", Slug: "cafe-creme"}).
					Return(&types.Tenant{ID: "t1", Name: "Café Crème", Slug: "cafe-creme"}, nil)
				sec.EXPECT().AdminAction(gomock.Any(), gomock.Any(), gomock.Any(), "success")
			},
			wantSlug: "cafe-creme",
		},
		{
			name:       "blank name",
			tenantName: "  ",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: ErrInvalidName,
		},
		{
			name:       "name without letters or digits",
			tenantName: "!!! ???",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: ErrInvalidName,
		},
		{
			name:       "invalid slug",
			tenantName: "Food Bank",
			slug:       "Food Bank",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr: ErrInvalidSlug,
		},
		{
			name:       "not a super admin",
			tenantName: "Food Bank",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				sec.EXPECT().AdminAction("root@example.org", "create_tenant", "tenant", "denied")
			},
			wantErr: ErrForbidden,
		},
		{
			name:       "not a super admin with invalid input",
			tenantName: " ",
			slug:       "Not A Slug",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				sec.EXPECT().AdminAction("root@example.org", "create_tenant", "tenant", "denied")
			},
			wantErr: ErrForbidden,
		},
		{
			name:       "slug taken",
			tenantName: "Food Bank",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				s.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			wantErr: ErrSlugTaken,
		},
		{
			name:       "authz failure",
			tenantName: "Food Bank",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface, sec *MockSecurityLoggerInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			anyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.CreateTenant").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockLogger.EXPECT().Security().Return(mockSecurity).AnyTimes()
			tt.setupMocks(mockStorage, mockAuthz, mockSecurity)

			s := NewService(mockStorage, mockAuthz, mockTracer, mockMonitor, mockLogger)
			got, err := s.CreateTenant(context.Background(), "root@example.org", tt.tenantName, tt.slug)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected error %v, got %v", tt.wantErr, err)
				}
			case tt.anyErr:
				if err == nil {
					t.Error("expected error but got none")
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if got.Slug != tt.wantSlug {
					t.Errorf("expected slug %q, got %q", tt.wantSlug, got.Slug)
				}
			}
		})
	}
}

func TestService_ListTenants(t *testing.T) {
	all := []*types.Tenant{{ID: "t1"}, {ID: "t2"}, {ID: "t3"}}

	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockAuthzInterface)
		want       []string
		wantErr    bool
	}{
		{
			name: "filtered to administered tenants",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().ListTenants(gomock.Any()).Return(all, nil)
				a.EXPECT().FilterTenants(gomock.Any(), "admin@example.org", []string{"t1", "t2", "t3"}).Return([]string{"t3", "t1"}, nil)
			},
			want: []string{"t1", "t3"},
		},
		{
			name: "none",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().ListTenants(gomock.Any()).Return(all, nil)
				a.EXPECT().FilterTenants(gomock.Any(), gomock.Any(), gomock.Any()).Return([]string{}, nil)
			},
			want: []string{},
		},
		{
			name: "storage error",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				s.EXPECT().ListTenants(gomock.Any()).Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.ListTenants").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockStorage, mockAuthz)

			s := NewService(mockStorage, mockAuthz, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))
			got, err := s.ListTenants(context.Background(), "admin@example.org")

			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("expected %d tenants, got %d", len(tt.want), len(got))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("expected tenant %d to be %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestService_GetTenant(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockStorageInterface, *MockAuthzInterface)
		wantErr    error
	}{
		{
			name: "success",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				a.EXPECT().Check(gomock.Any(), "admin@example.org", authorization.CAN_VIEW_PERMISSION, "t1").Return(true, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(&types.Tenant{ID: "t1"}, nil)
			},
		},
		{
			name: "forbidden",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name: "not found",
			setupMocks: func(s *MockStorageInterface, a *MockAuthzInterface) {
				a.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				s.EXPECT().GetTenantByID(gomock.Any(), "t1").Return(nil, storage.ErrNotFound)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockAuthz := NewMockAuthzInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "tenant.Service.GetTenant").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tt.setupMocks(mockStorage, mockAuthz)

			s := NewService(mockStorage, mockAuthz, mockTracer, NewMockMonitorInterface(ctrl), NewMockLoggerInterface(ctrl))
			_, err := s.GetTenant(context.Background(), "admin@example.org", "t1")

			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
