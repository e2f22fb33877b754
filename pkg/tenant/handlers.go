// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/voluntold-service/internal/http/types"
	"github.com/canonical/voluntold-service/internal/logging"
	"github.com/canonical/voluntold-service/internal/monitoring"
	"github.com/canonical/voluntold-service/internal/tracing"
	"github.com/canonical/voluntold-service/internal/types"
	"github.com/canonical/voluntold-service/pkg/authentication"
)

type CreateTenantRequest struct {
	Name string `json:"name" validate:"required,max=200"`
	Slug string `json:"slug,omitempty" validate:"omitempty,max=63"`
}

type Tenant struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListTenantsResponse struct {
	Tenants []*Tenant `json:"tenants"`
}

func toTenant(t *types.Tenant) *Tenant {
	return &Tenant{ID: t.ID, Name: t.Name, Slug: t.Slug, CreatedAt: t.CreatedAt}
}

type Handler struct {
	service   ServiceInterface
	auth      func(http.Handler) http.Handler
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (h *Handler) RegisterEndpoints(mux *chi.Mux) {
	mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/v0/tenants", h.handleCreate)
		r.Get("/api/v0/tenants", h.handleList)
		r.Get("/api/v0/tenants/{id}", h.handleGet)
	})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.CreateTenant")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	var req CreateTenantRequest
	if err := httptypes.DecodeJSON(r, &req); err != nil || h.validator.Struct(req) != nil {
		h.writeError(w, http.StatusBadRequest, "a tenant name is required")
		return
	}

	t, err := h.service.CreateTenant(ctx, principal, req.Name, req.Slug)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, toTenant(t))
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.ListTenants")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	tenants, err := h.service.ListTenants(ctx, principal)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	resp := ListTenantsResponse{Tenants: make([]*Tenant, 0, len(tenants))}
	for _, t := range tenants {
		resp.Tenants = append(resp.Tenants, toTenant(t))
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "tenant.Handler.GetTenant")
	defer span.End()

	principal, ok := authentication.GetPrincipal(ctx)
	if !ok {
		h.writeError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	t, err := h.service.GetTenant(ctx, principal, chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, toTenant(t))
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrInvalidSlug):
		h.writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrForbidden):
		h.writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, ErrNotFound):
		h.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, ErrSlugTaken):
		h.writeError(w, http.StatusConflict, err.Error())
	default:
		h.logger.Errorf("tenant request failed: %v", err)
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	if err := httptypes.WriteError(w, status, message); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	if err := httptypes.WriteJSON(w, status, v); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewHandler(
	service ServiceInterface,
	auth func(http.Handler) http.Handler,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Handler {
	return &Handler{
		service:   service,
		auth:      auth,
		validator: validator.New(validator.WithRequiredStructEnabled()),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
