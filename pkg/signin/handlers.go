// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/voluntold-service/internal/http/types"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
)

type SignInRequest struct {
	Email string `json:"email" validate:"required,email,max=320"`
}

type SelectRequest struct {
	Email    string `json:"email" validate:"required,email,max=320"`
	OptionID string `json:"optionId" validate:"required,max=128"`
}

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/signin", a.handleSignIn)
	mux.Post("/api/v0/signin/select", a.handleSelect)
}

func (a *API) handleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "signin.API.handleSignIn")
	defer span.End()

	var req SignInRequest
	if err := types.DecodeJSON(r, &req); err != nil || a.validator.Struct(req) != nil {
		a.writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	result, err := a.service.SignIn(ctx, req.Email)
	a.writeResult(w, result, err)
}

func (a *API) handleSelect(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "signin.API.handleSelect")
	defer span.End()

	var req SelectRequest
	if err := types.DecodeJSON(r, &req); err != nil || a.validator.Struct(req) != nil {
		a.writeError(w, http.StatusBadRequest, "a valid email and option are required")
		return
	}

	result, err := a.service.Select(ctx, req.Email, req.OptionID)
	a.writeResult(w, result, err)
}

// writeResult never exposes the cause of a failed dispatch.
func (a *API) writeResult(w http.ResponseWriter, result *Result, err error) {
	if err != nil {
		a.writeError(w, http.StatusInternalServerError, GenericFailureMessage)
		return
	}

	if err := types.WriteJSON(w, http.StatusOK, result); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
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
