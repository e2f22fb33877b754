// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"testing"
)

func TestTenantScope(t *testing.T) {
	tenantID := "0190b6a4-7a8e-7c4e-9d5c-5d3f3b7a1e20"

	tests := []struct {
		name     string
		tenantID *string
		sql      string
		args     int
	}{
		{"global scope", nil, "p.tenant_id IS NULL", 0},
		{"tenant scope", &tenantID, "p.tenant_id = ?", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tenantScope("p.tenant_id", tt.tenantID).ToSql()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != tt.sql {
				t.Errorf("expected %q, got %q", tt.sql, sql)
			}
			if len(args) != tt.args {
				t.Errorf("expected %d args, got %d", tt.args, len(args))
			}
		})
	}
}
