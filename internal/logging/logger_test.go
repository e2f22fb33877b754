// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
)

func TestDebugLogger(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("DEBUG")
	}()
}

func TestInvalidLevel(t *testing.T) {
	func() {
		_ = recover()
		NewLogger("invalid")
	}()
}

func TestLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"debug", zap.DebugLevel.String()},
		{"INFO", zap.InfoLevel.String()},
		{"warning", zap.WarnLevel.String()},
		{"error", zap.ErrorLevel.String()},
		{"nonsense", zap.ErrorLevel.String()},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := logLevel(tt.input).String(); got != tt.want {
				t.Errorf("expected level %s, got %s", tt.want, got)
			}
		})
	}
}

func TestNoopLoggerSecurityEvents(t *testing.T) {
	l := NewNoopLogger()

	l.Security().SystemStartup()
	l.Security().AuthzFailure("admin@example.org", "tenant:1")
	l.Security().TokenRejected("expired")
	l.Infof("noop %s", "logger")

	if err := l.Sync(); err != nil {
		t.Errorf("unexpected error syncing noop logger: %v", err)
	}
}
