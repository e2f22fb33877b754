// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/voluntold-service/internal/logging"
)

var _ SenderInterface = (*LogSender)(nil)

// LogSender writes emails to the log instead of delivering them, used when
// no SMTP server is configured.
type LogSender struct {
	logger logging.LoggerInterface
}

func (s *LogSender) Send(_ context.Context, to, subject, html string) error {
	s.logger.Infof("email to=%s subject=%q body=%s", to, subject, html)
	return nil
}

func NewLogSender(logger logging.LoggerInterface) *LogSender {
	return &LogSender{logger: logger}
}
