// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/voluntold-service/internal/http/types"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	auth      func(http.Handler) http.Handler
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.With(a.auth).Post("/api/v0/admin/invitations", a.handleInvite)
	mux.Post("/api/v0/admin/password-reset", a.handlePasswordReset)
	mux.Get("/api/v0/admin/setup", a.handleTokenInfo)
	mux.Post("/api/v0/admin/setup", a.handleRedeem)
}

func (a *API) handleInvite(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.handleInvite")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		a.writeServiceError(w, ErrUnauthenticated)
		return
	}

	var req InvitationRequest
	if err := types.DecodeJSON(r, &req); err != nil {
		a.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := a.validator.Struct(req); err != nil {
		a.writeError(w, http.StatusBadRequest, "email, firstName, lastName and a valid tenantId are required")
		return
	}

	res, err := a.service.IssueInvitation(ctx, principal, &req)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, res)
}

func (a *API) handlePasswordReset(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.handlePasswordReset")
	defer span.End()

	var req PasswordResetRequest
	if err := types.DecodeJSON(r, &req); err != nil || a.validator.Struct(req) != nil {
		a.writeError(w, http.StatusBadRequest, "a valid email is required")
		return
	}

	a.writeJSON(w, http.StatusOK, a.service.IssuePasswordReset(ctx, req.Email, req.TenantID))
}

func (a *API) handleTokenInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.handleTokenInfo")
	defer span.End()

	token := r.URL.Query().Get("token")
	if token == "" {
		a.writeError(w, http.StatusBadRequest, "token is required")
		return
	}

	info, err := a.service.GetTokenInfo(ctx, token)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, info)
}

func (a *API) handleRedeem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "admin.API.handleRedeem")
	defer span.End()

	var req RedeemRequest
	if err := types.DecodeJSON(r, &req); err != nil || a.validator.Struct(req) != nil {
		a.writeError(w, http.StatusBadRequest, "token and password are required")
		return
	}

	res, err := a.service.RedeemToken(ctx, req.Token, req.Password)
	if err != nil {
		a.writeServiceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, res)
}

func (a *API) writeServiceError(w http.ResponseWriter, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		a.logger.Errorf("admin request failed: %v", err)
	}
	a.writeError(w, status, message)
}

func (a *API) writeError(w http.ResponseWriter, status int, message string) {
	if err := types.WriteError(w, status, message); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := types.WriteJSON(w, status, v); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

// NewAPI builds the admin endpoints. auth guards the invitation endpoint and
// must place the caller's email in the request context.
func NewAPI(service ServiceInterface, auth func(http.Handler) http.Handler, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.auth = auth
	a.validator = validator.New(validator.WithRequiredStructEnabled())

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
