// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package magiclink

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/voluntold-service/internal/http/types"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
)

type RedeemRequest struct {
	Token string `json:"token" validate:"required,max=256"`
}

type RedeemResponse struct {
	Success    bool   `json:"success"`
	Email      string `json:"email"`
	TenantID   string `json:"tenantId"`
	TenantName string `json:"tenantName"`
}

type API struct {
	service   ServiceInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/api/v0/magic-links/redeem", a.handleRedeem)
}

func (a *API) handleRedeem(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "magiclink.API.handleRedeem")
	defer span.End()

	var req RedeemRequest
	if err := types.DecodeJSON(r, &req); err != nil || a.validator.Struct(req) != nil {
		a.writeError(w, http.StatusBadRequest, "a token is required")
		return
	}

	link, err := a.service.Redeem(ctx, req.Token)
	if err != nil {
		if errors.Is(err, ErrInvalidLink) {
			a.writeError(w, http.StatusBadRequest, ErrInvalidLink.Error())
			return
		}

		a.logger.Errorf("failed to redeem magic link: %v", err)
		a.writeError(w, http.StatusInternalServerError, "failed to redeem link")
		return
	}

	if err := types.WriteJSON(w, http.StatusOK, RedeemResponse{
		Success:    true,
		Email:      link.Email,
		TenantID:   link.TenantID,
		TenantName: link.TenantName,
	}); err != nil {
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
