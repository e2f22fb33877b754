// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/voluntold-service/internal/identity"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/internal/types"
)

func TestHandler_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		principal      string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
		check          func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:      "create",
			method:    http.MethodPost,
			path:      "/api/v0/tenants",
			body:      `{"name":"Food Bank"}`,
			principal: "root@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateTenant(gomock.Any(), "root@example.org", "Food Bank", "").
					Return(&types.Tenant{ID: "t1", Name: "Food Bank", Slug: "food-bank"}, nil)
			},
			expectedStatus: http.StatusCreated,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got Tenant
				if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if got.Slug != "food-bank" {
					t.Errorf("unexpected tenant %+v", got)
				}
			},
		},
		{
			name:           "create unauthenticated",
			method:         http.MethodPost,
			path:           "/api/v0/tenants",
			body:           `{"name":"Food Bank"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "create without name",
			method:         http.MethodPost,
			path:           "/api/v0/tenants",
			body:           `{"slug":"fb"}`,
			principal:      "root@example.org",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "create forbidden",
			method:    http.MethodPost,
			path:      "/api/v0/tenants",
			body:      `{"name":"Food Bank"}`,
			principal: "admin@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateTenant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:      "create duplicate slug",
			method:    http.MethodPost,
			path:      "/api/v0/tenants",
			body:      `{"name":"Food Bank","slug":"fb"}`,
			principal: "root@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateTenant(gomock.Any(), gomock.Any(), "Food Bank", "fb").Return(nil, ErrSlugTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:      "list",
			method:    http.MethodGet,
			path:      "/api/v0/tenants",
			principal: "admin@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListTenants(gomock.Any(), "admin@example.org").Return([]*types.Tenant{{ID: "t1"}, {ID: "t2"}}, nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var got ListTenantsResponse
				if err := json.NewDecoder(rr.Body).Decode(&got); err != nil {
					t.Fatalf("failed to decode body: %v", err)
				}
				if len(got.Tenants) != 2 {
					t.Errorf("expected 2 tenants, got %d", len(got.Tenants))
				}
			},
		},
		{
			name:      "list failure",
			method:    http.MethodGet,
			path:      "/api/v0/tenants",
			principal: "admin@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListTenants(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:      "get",
			method:    http.MethodGet,
			path:      "/api/v0/tenants/t1",
			principal: "admin@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetTenant(gomock.Any(), "admin@example.org", "t1").Return(&types.Tenant{ID: "t1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "get missing",
			method:    http.MethodGet,
			path:      "/api/v0/tenants/t9",
			principal: "root@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetTenant(gomock.Any(), gomock.Any(), "t9").Return(nil, ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockSvc)

			logger := logging.NewNoopLogger()
			tracer := tracing.NewNoopTracer()
			monitor := monitoring.NewNoopMonitor("test", logger)

			mux := chi.NewMux()
			NewHandler(mockSvc, identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware, tracer, monitor, logger).RegisterEndpoints(mux)

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
			if tt.principal != "" {
				req.Header.Set(identity.HeaderName, tt.principal)
			}

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}

			if tt.check != nil {
				tt.check(t, rr)
			}
		})
	}
}
