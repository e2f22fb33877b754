// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	invitationTemplate    = "invitation.html"
	passwordResetTemplate = "password_reset.html"
	magicLinkTemplate     = "magic_link.html"
)

var _ MailerInterface = (*Mailer)(nil)

// Mailer renders the service emails and hands them to a Sender.
type Mailer struct {
	sender    SenderInterface
	templates *template.Template

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *Mailer) SendInvitation(ctx context.Context, to string, data InvitationData) error {
	ctx, span := m.tracer.Start(ctx, "mail.Mailer.SendInvitation")
	defer span.End()

	subject := fmt.Sprintf("You're invited to administer %s on Voluntold", data.TenantName)
	return m.send(ctx, to, subject, invitationTemplate, data)
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to string, data PasswordResetData) error {
	ctx, span := m.tracer.Start(ctx, "mail.Mailer.SendPasswordReset")
	defer span.End()

	return m.send(ctx, to, "Reset your Voluntold admin password", passwordResetTemplate, data)
}

func (m *Mailer) SendMagicLink(ctx context.Context, to string, data MagicLinkData) error {
	ctx, span := m.tracer.Start(ctx, "mail.Mailer.SendMagicLink")
	defer span.End()

	subject := fmt.Sprintf("Your sign-in link for %s", data.TenantName)
	return m.send(ctx, to, subject, magicLinkTemplate, data)
}

func (m *Mailer) send(ctx context.Context, to, subject, name string, data any) error {
	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, name, data); err != nil {
		m.record(name, "render_error")
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	if err := m.sender.Send(ctx, to, subject, body.String()); err != nil {
		m.record(name, "failure")
		return fmt.Errorf("failed to send %s: %w", name, err)
	}

	m.record(name, "success")
	return nil
}

func (m *Mailer) record(name, outcome string) {
	if err := m.monitor.IncEmailDispatch(map[string]string{"template": name, "outcome": outcome}); err != nil {
		m.logger.Debugf("failed to record email dispatch: %v", err)
	}
}

func NewMailer(sender SenderInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Mailer {
	m := new(Mailer)

	m.sender = sender
	m.templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
