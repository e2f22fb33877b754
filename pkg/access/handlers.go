// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/voluntold-service/internal/http/types"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
)

type CheckAccessRequest struct {
	Email string `json:"email" validate:"required,email,max=320"`
}

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/access/check", a.handleCheck)
}

func (a *API) handleCheck(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "access.API.handleCheck")
	defer span.End()

	var req CheckAccessRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		a.write(w, http.StatusBadRequest, types.ErrorResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}

	if err := a.validator.Struct(req); err != nil {
		a.write(w, http.StatusBadRequest, types.ErrorResponse{Status: http.StatusBadRequest, Message: "a valid email is required"})
		return
	}

	summary, err := a.service.ResolveAccess(ctx, req.Email)
	if err != nil {
		a.logger.Errorf("failed to resolve access: %v", err)
		a.write(w, http.StatusInternalServerError, types.ErrorResponse{Status: http.StatusInternalServerError, Message: "failed to check access"})
		return
	}

	a.write(w, http.StatusOK, summary)
}

func (a *API) write(w http.ResponseWriter, status int, body any) {
	if err := types.WriteJSON(w, status, body); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validator = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
