// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/voluntold-service/internal/authorization"
	"github.com/canonical/voluntold-service/internal/cache"
	"github.com/canonical/voluntold-service/internal/db"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/mail"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/storage"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/pkg/access"
	"github.com/canonical/voluntold-service/pkg/admin"
	"github.com/canonical/voluntold-service/pkg/magiclink"
	"github.com/canonical/voluntold-service/pkg/metrics"
	"github.com/canonical/voluntold-service/pkg/signin"
	"github.com/canonical/voluntold-service/pkg/status"
	"github.com/canonical/voluntold-service/pkg/tenant"
)

type Config struct {
	SiteOrigin     string
	AllowedOrigins []string

	InvitationLifetime    time.Duration
	PasswordResetLifetime time.Duration
	MagicLinkLifetime     time.Duration
}

// NewRouter wires every API on top of the shared infrastructure. auth guards
// the admin-only endpoints and must put the caller's email in the context.
func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	cacheClient cache.CacheInterface,
	mailer mail.MailerInterface,
	auth func(http.Handler) http.Handler,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
	)

	router.Use(middlewares...)

	authorizer := authorization.NewAuthorizer(s, tracer, monitor, logger)

	accessService := access.NewService(s, tracer, monitor, logger)
	magicLinkService := magiclink.NewService(s, cacheClient, mailer, cfg.SiteOrigin, cfg.MagicLinkLifetime, tracer, monitor, logger)
	signinService := signin.NewService(accessService, magicLinkService, cfg.SiteOrigin, tracer, monitor, logger)
	adminService := admin.NewService(
		s,
		dbClient,
		authorizer,
		mailer,
		admin.Config{
			SiteOrigin:            cfg.SiteOrigin,
			InvitationLifetime:    cfg.InvitationLifetime,
			PasswordResetLifetime: cfg.PasswordResetLifetime,
		},
		tracer,
		monitor,
		logger,
	)
	tenantService := tenant.NewService(s, authorizer, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(
		map[string]status.CheckerInterface{"database": dbClient, "redis": cacheClient},
		tracer,
		monitor,
		logger,
	).RegisterEndpoints(router)

	access.NewAPI(accessService, tracer, monitor, logger).RegisterEndpoints(router)
	signin.NewAPI(signinService, tracer, monitor, logger).RegisterEndpoints(router)
	magiclink.NewAPI(magicLinkService, tracer, monitor, logger).RegisterEndpoints(router)
	admin.NewAPI(adminService, auth, tracer, monitor, logger).RegisterEndpoints(router)
	tenant.NewHandler(tenantService, auth, tracer, monitor, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
