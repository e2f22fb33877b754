// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"testing"
	"time"
)

func TestAdminTokenExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		expected  bool
	}{
		{"future", now.Add(time.Minute), false},
		{"exactly now", now, false},
		{"past", now.Add(-time.Second), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := &AdminToken{ExpiresAt: tt.expiresAt}
			if got := token.Expired(now); got != tt.expected {
				t.Errorf("expected expired=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestEmptyAccessSummaryEncodesEmptyList(t *testing.T) {
	b, err := json.Marshal(EmptyAccessSummary())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := `{"hasAdminAccess":false,"hasMemberAccess":false,"accessOptions":[],"totalOptions":0}`
	if string(b) != expected {
		t.Errorf("expected %s, got %s", expected, string(b))
	}
}

func TestRoleIsAdmin(t *testing.T) {
	if !RoleSuperAdmin.IsAdmin() || !RoleTenantAdmin.IsAdmin() {
		t.Error("expected admin roles to be admin")
	}
	if RoleMember.IsAdmin() {
		t.Error("expected member not to be admin")
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := map[string]string{
		"Admin@Example.ORG":     "admin@example.org",
		"  member@example.org ": "member@example.org",
		"":                      "",
	}

	for in, expected := range tests {
		if got := NormalizeEmail(in); got != expected {
			t.Errorf("NormalizeEmail(%q): expected %q, got %q", in, expected, got)
		}
	}
}
