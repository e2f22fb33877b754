// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"errors"
	"net/http"
)

var (
	ErrValidation              = errors.New("invalid request")
	ErrUnauthenticated         = errors.New("authentication required")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrConflict                = errors.New("an admin with this email already exists for this organization")
	ErrInvalidTenant           = errors.New("organization not found")
	ErrInvalidToken            = errors.New("invalid token")
	ErrTokenExpired            = errors.New("token expired")
	ErrWeakPassword            = errors.New("password must be between 8 and 72 characters long")
)

// InvalidLinkMessage is shown for both unknown and expired tokens.
const InvalidLinkMessage = "This link is invalid or has expired."

// statusFor maps a service error to its HTTP status and the message safe to
// show. Unknown errors are infrastructure failures.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return http.StatusBadRequest, InvalidLinkMessage
	case errors.Is(err, ErrWeakPassword):
		return http.StatusBadRequest, ErrWeakPassword.Error()
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, ErrInvalidTenant):
		return http.StatusBadRequest, ErrInvalidTenant.Error()
	case errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized, ErrUnauthenticated.Error()
	case errors.Is(err, ErrInsufficientPermissions):
		return http.StatusForbidden, ErrInsufficientPermissions.Error()
	case errors.Is(err, ErrConflict):
		return http.StatusConflict, ErrConflict.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
