// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"testing"

	"github.com/canonical/voluntold-service/internal/logging"
)

func TestMonitorRegistersOnce(t *testing.T) {
	first := NewMonitor("voluntold-test", logging.NewNoopLogger())
	second := NewMonitor("voluntold-test", logging.NewNoopLogger())

	if first.responseTime != second.responseTime {
		t.Error("expected the second monitor to reuse the registered histogram")
	}

	if err := second.SetResponseTimeMetric(map[string]string{"route": "GET/api/v0/status", "status": "OK"}, 0.1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := second.SetDependencyAvailability(map[string]string{"component": "database"}, 1); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := second.IncEmailDispatch(map[string]string{"template": "invitation", "outcome": "sent"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if second.GetService() != "voluntold-test" {
		t.Errorf("unexpected service %q", second.GetService())
	}
}
