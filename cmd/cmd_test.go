// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"go.uber.org/mock/gomock"

	"github.com/canonical/voluntold-service/internal/config"
	"github.com/canonical/voluntold-service/internal/identity"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package cmd -destination ./mock_logger.go -source=../internal/logging/interfaces.go

func TestMigrateArgs(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{nil, false},
		{[]string{"up"}, false},
		{[]string{"status"}, false},
		{[]string{"check"}, false},
		{[]string{"down"}, false},
		{[]string{"down", "3"}, false},
		{[]string{"down", "-1"}, true},
		{[]string{"down", "x"}, true},
		{[]string{"up", "3"}, true},
		{[]string{"sideways"}, true},
		{[]string{"down", "1", "2"}, true},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			err := migrateArgs(&cobra.Command{}, tt.args)
			if (err != nil) != tt.wantErr {
				t.Errorf("migrateArgs(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
		})
	}
}

func TestAPIClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			if r.Header.Get(identity.HeaderName) != "root@example.org" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			if r.Header.Get("Authorization") != "Bearer tkn" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			_ = json.NewEncoder(w).Encode(map[string]string{"echo": in["name"]})
		default:
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"status":409,"message":"a tenant with this slug already exists"}`))
		}
	}))
	defer srv.Close()

	c := newAPIClient(strings.TrimPrefix(srv.URL, "http://")+"/", "root@example.org", "tkn")

	var out map[string]string
	if err := c.do(context.Background(), http.MethodPost, "/ok", map[string]string{"name": "Food Bank"}, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["echo"] != "Food Bank" {
		t.Errorf("unexpected response %v", out)
	}

	err := c.do(context.Background(), http.MethodPost, "/conflict", nil, nil)
	if err == nil || !strings.Contains(err.Error(), "a tenant with this slug already exists") {
		t.Errorf("expected api error message, got %v", err)
	}
}

func TestNewAuthMiddlewareDisabledWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := NewMockLoggerInterface(ctrl)
	logger.EXPECT().Warnf(gomock.Any(), identity.HeaderName).Times(1)

	auth, err := newAuthMiddleware(
		context.Background(),
		&config.EnvSpec{AuthenticationEnabled: false},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got string
	handler := auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = authentication.GetPrincipal(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v0/tenants", nil)
	req.Header.Set(identity.HeaderName, "Root@Example.org")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got != "root@example.org" {
		t.Errorf("expected principal root@example.org, got %q", got)
	}
}

func TestNewAuthMiddlewareEnabledRequiresIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := NewMockLoggerInterface(ctrl)

	_, err := newAuthMiddleware(
		context.Background(),
		&config.EnvSpec{AuthenticationEnabled: true},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)
	if err == nil {
		t.Fatal("expected error without an issuer")
	}
}
