// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"strings"

	"github.com/canonical/voluntold-service/internal/http/types"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/pkg/authentication"
)

const (
	// HeaderName is the header an authenticating proxy uses to pass the principal email
	HeaderName = "X-Authenticated-Email"
)

// Middleware trusts the principal forwarded by a proxy in front of the
// service. It is only wired when bearer authentication is disabled.
type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		principal := strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderName)))
		if principal == "" {
			if err := types.WriteError(w, http.StatusUnauthorized, "unauthenticated"); err != nil {
				m.logger.Errorf("failed to encode unauthorized response: %v", err)
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(authentication.WithPrincipal(ctx, principal)))
	})
}
