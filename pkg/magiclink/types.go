// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package magiclink

import "errors"

const keyPrefix = "magiclink:"

var (
	ErrNoMembership = errors.New("email is not a member of the tenant")
	ErrInvalidLink  = errors.New("invalid or expired link")
)

// Link is what a magic link grants once redeemed.
type Link struct {
	Email      string `json:"email"`
	TenantID   string `json:"tenant_id"`
	TenantName string `json:"tenant_name"`
}
