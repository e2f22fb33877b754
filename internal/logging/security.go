// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) event(name string, fields ...zap.Field) {
	s.l.Info(name, append(fields, zap.String("type", "security"), zap.String("event", name))...)
}

func (s *SecurityLogger) SystemStartup() {
	s.event("sys_startup")
}

func (s *SecurityLogger) SystemShutdown() {
	s.event("sys_shutdown")
}

func (s *SecurityLogger) AuthzFailure(principal, resource string) {
	s.event("authz_fail", zap.String("principal", principal), zap.String("resource", resource))
}

func (s *SecurityLogger) AdminAction(principal, action, resource, outcome string) {
	s.event(
		"admin_action",
		zap.String("principal", principal),
		zap.String("action", action),
		zap.String("resource", resource),
		zap.String("outcome", outcome),
	)
}

func (s *SecurityLogger) TokenIssued(email, tokenType string) {
	s.event("token_issued", zap.String("principal", email), zap.String("token_type", tokenType))
}

func (s *SecurityLogger) TokenRedeemed(email, tokenType string) {
	s.event("token_redeemed", zap.String("principal", email), zap.String("token_type", tokenType))
}

// TokenRejected never logs the token value itself.
func (s *SecurityLogger) TokenRejected(reason string) {
	s.event("token_rejected", zap.String("reason", reason))
}
