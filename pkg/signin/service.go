// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signin

import (
	"context"
	"fmt"
	"net/url"

	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	resolver AccessResolverInterface
	members  MemberAccessInterface

	siteOrigin string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// DecideRoute maps a summary to the next sign-in step.
func DecideRoute(summary *types.AccessSummary) Decision {
	if summary == nil {
		return Decision{Kind: NoAccess}
	}

	switch len(summary.AccessOptions) {
	case 0:
		return Decision{Kind: NoAccess}
	case 1:
		return Decision{Kind: SingleOption, Option: summary.AccessOptions[0]}
	default:
		return Decision{Kind: MultipleOptions, Options: summary.AccessOptions}
	}
}

// SignIn resolves the access of email and acts on it. Resolution failures
// answer like an unknown email.
func (s *Service) SignIn(ctx context.Context, email string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "signin.Service.SignIn")
	defer span.End()

	email = types.NormalizeEmail(email)

	summary, err := s.resolver.ResolveAccess(ctx, email)
	if err != nil {
		s.logger.Errorf("failed to resolve access during sign-in: %v", err)
		return noAccessResult(), nil
	}

	decision := DecideRoute(summary)

	switch decision.Kind {
	case SingleOption:
		return s.dispatch(ctx, email, decision.Option)
	case MultipleOptions:
		return &Result{Success: true, Outcome: OutcomeSelect, Message: SelectMessage, Options: decision.Options}, nil
	default:
		return noAccessResult(), nil
	}
}

// Select dispatches the option the principal picked. Options are resolved
// again, an option the email does not hold answers like an unknown email.
func (s *Service) Select(ctx context.Context, email, optionID string) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "signin.Service.Select")
	defer span.End()

	email = types.NormalizeEmail(email)

	summary, err := s.resolver.ResolveAccess(ctx, email)
	if err != nil {
		s.logger.Errorf("failed to resolve access during selection: %v", err)
		return noAccessResult(), nil
	}

	for _, o := range summary.AccessOptions {
		if o.ID == optionID {
			return s.dispatch(ctx, email, o)
		}
	}

	return noAccessResult(), nil
}

func (s *Service) dispatch(ctx context.Context, email string, option *types.AccessOption) (*Result, error) {
	if option.AccessType.IsAdmin() {
		return &Result{
			Success:     true,
			Outcome:     OutcomeAdminRedirect,
			Message:     AdminRedirectMessage,
			RedirectURL: s.adminLoginURL(email, option),
		}, nil
	}

	message, err := s.members.Issue(ctx, email, option.TenantID)
	if err != nil {
		s.logger.Errorf("failed to issue member access: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrDispatchFailed, err)
	}

	return &Result{Success: true, Outcome: OutcomeLinkSent, Message: message}, nil
}

func (s *Service) adminLoginURL(email string, option *types.AccessOption) string {
	q := url.Values{}
	q.Set("email", email)
	q.Set("accessType", string(option.AccessType))

	if option.TenantID != "" {
		q.Set("tenantId", option.TenantID)
		q.Set("tenantName", option.OrganizationName)
	}

	return s.siteOrigin + "/admin/login?" + q.Encode()
}

func NewService(
	resolver AccessResolverInterface,
	members MemberAccessInterface,
	siteOrigin string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.resolver = resolver
	s.members = members
	s.siteOrigin = siteOrigin

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
