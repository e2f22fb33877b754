// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package magiclink

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/canonical/voluntold-service/internal/cache"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/mail"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/storage"
	"github.com/canonical/voluntold-service/internal/tokens"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/internal/types"
)

const tokenType = "magic_link"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	cache   cache.CacheInterface
	mailer  mail.MailerInterface

	siteOrigin string
	lifetime   time.Duration
	now        func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Issue(ctx context.Context, email, tenantID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "magiclink.Service.Issue")
	defer span.End()

	email = types.NormalizeEmail(email)

	if _, err := s.storage.GetProfile(ctx, email, types.RoleMember, &tenantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNoMembership
		}
		return "", fmt.Errorf("failed to get member profile: %w", err)
	}

	tenant, err := s.storage.GetTenantByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrNoMembership
		}
		return "", fmt.Errorf("failed to get tenant: %w", err)
	}

	token, err := tokens.Generate()
	if err != nil {
		return "", err
	}

	payload, err := json.Marshal(Link{Email: email, TenantID: tenant.ID, TenantName: tenant.Name})
	if err != nil {
		return "", fmt.Errorf("failed to encode link: %w", err)
	}

	if err := s.cache.Set(ctx, keyPrefix+token, payload, s.lifetime); err != nil {
		return "", fmt.Errorf("failed to store link: %w", err)
	}

	err = s.mailer.SendMagicLink(ctx, email, mail.MagicLinkData{
		TenantName: tenant.Name,
		LinkURL:    s.linkURL(token),
		ExpiresAt:  s.now().Add(s.lifetime),
	})
	if err != nil {
		return "", fmt.Errorf("failed to send magic link: %w", err)
	}

	s.logger.Security().TokenIssued(email, tokenType)

	return fmt.Sprintf("Check your email, we sent you a sign-in link for %s.", tenant.Name), nil
}

func (s *Service) Redeem(ctx context.Context, token string) (*Link, error) {
	ctx, span := s.tracer.Start(ctx, "magiclink.Service.Redeem")
	defer span.End()

	if token == "" {
		return nil, ErrInvalidLink
	}

	payload, err := s.cache.GetDel(ctx, keyPrefix+token)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Security().TokenRejected("unknown or expired magic link")
			return nil, ErrInvalidLink
		}
		return nil, fmt.Errorf("failed to read link: %w", err)
	}

	link := new(Link)
	if err := json.Unmarshal(payload, link); err != nil {
		return nil, fmt.Errorf("failed to decode link: %w", err)
	}

	s.logger.Security().TokenRedeemed(link.Email, tokenType)

	return link, nil
}

func (s *Service) linkURL(token string) string {
	return s.siteOrigin + "/auth/magic/" + url.PathEscape(token)
}

func NewService(
	storage StorageInterface,
	c cache.CacheInterface,
	mailer mail.MailerInterface,
	siteOrigin string,
	lifetime time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.cache = c
	s.mailer = mailer

	s.siteOrigin = siteOrigin
	s.lifetime = lifetime
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
