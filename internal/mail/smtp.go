// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
)

const defaultSMTPTimeout = 30 * time.Second

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

var _ SenderInterface = (*SMTPSender)(nil)

type SMTPSender struct {
	cfg SMTPConfig

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, html string) error {
	ctx, span := s.tracer.Start(ctx, "mail.SMTPSender.Send")
	defer span.End()

	msg, err := newMessage(s.cfg.From, to, subject, html)
	if err != nil {
		return err
	}

	client, err := s.client()
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// client upgrades to TLS whenever the server offers STARTTLS and only
// authenticates when credentials are configured.
func (s *SMTPSender) client() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTimeout(defaultSMTPTimeout),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}

	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	return gomail.NewClient(s.cfg.Host, opts...)
}

func newMessage(from, to, subject, html string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()

	if err := msg.From(from); err != nil {
		return nil, fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(gomail.TypeTextHTML, html)

	return msg, nil
}

func NewSMTPSender(cfg SMTPConfig, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SMTPSender {
	return &SMTPSender{
		cfg:     cfg,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
