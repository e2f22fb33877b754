// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

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

	httptypes "github.com/canonical/voluntold-service/internal/http/types"
	"github.com/canonical/voluntold-service/internal/identity"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
)

const validInvitation = `{"email":"admin@example.org","firstName":"Ada","lastName":"Lovelace","tenantId":"0195b5e4-7c1a-7b3e-9a2f-1d2c3b4a5f60"}`

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name            string
		method          string
		path            string
		body            string
		principal       string
		setupMocks      func(*MockServiceInterface)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name:      "invite",
			method:    http.MethodPost,
			path:      "/api/v0/admin/invitations",
			body:      validInvitation,
			principal: "owner@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueInvitation(gomock.Any(), "owner@example.org", gomock.Any()).Return(
					&InvitationResult{Success: true, Message: "Invitation sent to admin@example.org"}, nil,
				)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invite without principal",
			method:         http.MethodPost,
			path:           "/api/v0/admin/invitations",
			body:           validInvitation,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invite with missing fields",
			method:         http.MethodPost,
			path:           "/api/v0/admin/invitations",
			body:           `{"email":"admin@example.org"}`,
			principal:      "owner@example.org",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invite with unknown field",
			method:         http.MethodPost,
			path:           "/api/v0/admin/invitations",
			body:           `{"email":"admin@example.org","isAdmin":true}`,
			principal:      "owner@example.org",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:      "invite forbidden",
			method:    http.MethodPost,
			path:      "/api/v0/admin/invitations",
			body:      validInvitation,
			principal: "member@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueInvitation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrInsufficientPermissions)
			},
			expectedStatus:  http.StatusForbidden,
			expectedMessage: ErrInsufficientPermissions.Error(),
		},
		{
			name:      "invite conflict",
			method:    http.MethodPost,
			path:      "/api/v0/admin/invitations",
			body:      validInvitation,
			principal: "owner@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueInvitation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:      "invite infrastructure failure is generic",
			method:    http.MethodPost,
			path:      "/api/v0/admin/invitations",
			body:      validInvitation,
			principal: "owner@example.org",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssueInvitation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: connection refused"))
			},
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
		{
			name:   "password reset",
			method: http.MethodPost,
			path:   "/api/v0/admin/password-reset",
			body:   `{"email":"admin@example.org"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().IssuePasswordReset(gomock.Any(), "admin@example.org", nil).Return(
					&PasswordResetResult{Success: true, Message: PasswordResetRequestedMessage},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "password reset with invalid email",
			method:         http.MethodPost,
			path:           "/api/v0/admin/password-reset",
			body:           `{"email":"not-an-email"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "token info",
			method: http.MethodGet,
			path:   "/api/v0/admin/setup?token=tok",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetTokenInfo(gomock.Any(), "tok").Return(&TokenInfo{Success: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "token info without token",
			method:         http.MethodGet,
			path:           "/api/v0/admin/setup",
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "expired and invalid tokens look the same",
			method: http.MethodGet,
			path:   "/api/v0/admin/setup?token=tok",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetTokenInfo(gomock.Any(), "tok").Return(nil, ErrTokenExpired)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: InvalidLinkMessage,
		},
		{
			name:   "redeem",
			method: http.MethodPost,
			path:   "/api/v0/admin/setup",
			body:   `{"token":"tok","password":"LongEnough1!"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RedeemToken(gomock.Any(), "tok", "LongEnough1!").Return(&RedeemResult{Success: true, Message: AccountSetUpMessage}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "redeem used token",
			method: http.MethodPost,
			path:   "/api/v0/admin/setup",
			body:   `{"token":"tok","password":"LongEnough1!"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RedeemToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrInvalidToken)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: InvalidLinkMessage,
		},
		{
			name:   "redeem weak password",
			method: http.MethodPost,
			path:   "/api/v0/admin/setup",
			body:   `{"token":"tok","password":"short"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().RedeemToken(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrWeakPassword)
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: ErrWeakPassword.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			tt.setupMocks(mockService)

			logger := logging.NewNoopLogger()
			tracer := tracing.NewNoopTracer()
			monitor := monitoring.NewNoopMonitor("test", logger)

			auth := identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware

			mux := chi.NewMux()
			NewAPI(mockService, auth, tracer, monitor, logger).RegisterEndpoints(mux)

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

			if tt.expectedMessage == "" {
				return
			}

			var errBody httptypes.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&errBody); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if errBody.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, errBody.Message)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ErrValidation, http.StatusBadRequest},
		{ErrInvalidTenant, http.StatusBadRequest},
		{ErrInvalidToken, http.StatusBadRequest},
		{ErrTokenExpired, http.StatusBadRequest},
		{ErrWeakPassword, http.StatusBadRequest},
		{ErrUnauthenticated, http.StatusUnauthorized},
		{ErrInsufficientPermissions, http.StatusForbidden},
		{ErrConflict, http.StatusConflict},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			if status, _ := statusFor(tt.err); status != tt.status {
				t.Errorf("expected %d, got %d", tt.status, status)
			}
		})
	}
}
