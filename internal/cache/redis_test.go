// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"testing"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
)

func TestNewClientUnreachable(t *testing.T) {
	logger := logging.NewNoopLogger()

	c, err := NewClient(
		Config{Addr: "127.0.0.1:1"},
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("test", logger),
		logger,
	)

	if err == nil {
		t.Fatal("expected error connecting to an unreachable redis")
	}

	if c != nil {
		t.Fatalf("expected nil client, got %v", c)
	}
}
