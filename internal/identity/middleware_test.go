// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/pkg/authentication"
)

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		expectedStatus int
		expectedBody   string
	}{
		{"missing header", "", http.StatusUnauthorized, ""},
		{"blank header", "   ", http.StatusUnauthorized, ""},
		{"normalized principal", " Admin@Example.org", http.StatusOK, "admin@example.org"},
	}

	logger := logging.NewNoopLogger()
	m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ := authentication.GetPrincipal(r.Context())
		w.Write([]byte(principal))
	})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(HeaderName, tt.header)
			}
			rr := httptest.NewRecorder()

			m.HTTPMiddleware(next).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
			if tt.expectedBody != "" && rr.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, rr.Body.String())
			}
		})
	}
}
