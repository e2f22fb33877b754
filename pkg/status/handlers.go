// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/voluntold-service/internal/http/types"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/internal/version"
)

const checkTimeout = 2 * time.Second

type Status struct {
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

type API struct {
	checks map[string]CheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/version", a.version)
}

// alive answers 503 when any dependency fails its ping.
func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	names := make([]string, 0, len(a.checks))
	for name := range a.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	code := http.StatusOK
	status := Status{Version: version.Version, Dependencies: make(map[string]string, len(names))}

	for _, name := range names {
		if err := a.checks[name].Ping(ctx); err != nil {
			a.logger.Errorf("dependency %s is unavailable: %v", name, err)
			status.Dependencies[name] = "unavailable"
			code = http.StatusServiceUnavailable
			continue
		}
		status.Dependencies[name] = "ok"
	}

	if err := types.WriteJSON(w, code, status); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	if err := types.WriteJSON(w, http.StatusOK, Status{Version: version.Version}); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(checks map[string]CheckerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.checks = checks

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
