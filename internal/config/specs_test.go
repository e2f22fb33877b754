// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"os"
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
)

func TestEnvSpecDefaults(t *testing.T) {
	t.Setenv("DSN", "postgres://voluntold@localhost/voluntold")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if specs.InvitationLifetime != 7*24*time.Hour {
		t.Errorf("expected 7 day invitation lifetime, got %s", specs.InvitationLifetime)
	}
	if specs.PasswordResetLifetime != time.Hour {
		t.Errorf("expected 1 hour reset lifetime, got %s", specs.PasswordResetLifetime)
	}
	if specs.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", specs.Port)
	}
	if specs.AuthenticationEnabled {
		t.Error("expected authentication to be disabled by default")
	}
}

func TestEnvSpecRequiresDSN(t *testing.T) {
	t.Setenv("DSN", "")
	os.Unsetenv("DSN")

	specs := new(EnvSpec)
	if err := envconfig.Process("", specs); err == nil {
		t.Error("expected an error when DSN is missing")
	}
}
