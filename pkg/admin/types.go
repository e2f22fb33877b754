// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package admin

import (
	"time"

	"github.com/canonical/voluntold-service/internal/types"
)

const (
	MinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes
	MaxPasswordLength = 72

	PasswordResetRequestedMessage = "If an admin account exists for this email, a password reset link has been sent."
	AccountSetUpMessage           = "Your admin account has been set up. You can now sign in."
	PasswordResetMessage          = "Your password has been reset. You can now sign in."
)

type InvitationRequest struct {
	Email     string     `json:"email" validate:"required,email,max=320"`
	FirstName string     `json:"firstName" validate:"required,max=100"`
	LastName  string     `json:"lastName" validate:"required,max=100"`
	TenantID  string     `json:"tenantId" validate:"required,uuid"`
	Role      types.Role `json:"role,omitempty" validate:"omitempty,oneof=tenant_admin"`
}

type InvitationResult struct {
	Success       bool   `json:"success"`
	Message       string `json:"message"`
	InvitationURL string `json:"invitationUrl"`
}

type PasswordResetRequest struct {
	Email    string  `json:"email" validate:"required,email,max=320"`
	TenantID *string `json:"tenantId,omitempty" validate:"omitempty,uuid"`
}

type PasswordResetResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type RedeemRequest struct {
	Token    string `json:"token" validate:"required,max=256"`
	Password string `json:"password"`
}

type TenantInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type RedeemResult struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Tenant  *TenantInfo `json:"tenant,omitempty"`
}

type AdminInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

type TokenInfo struct {
	Success   bool            `json:"success"`
	TokenType types.TokenType `json:"tokenType"`
	AdminInfo AdminInfo       `json:"adminInfo"`
	Tenant    *TenantInfo     `json:"tenant"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

func tenantInfo(t *types.Tenant) *TenantInfo {
	if t == nil {
		return nil
	}
	return &TenantInfo{ID: t.ID, Name: t.Name, Slug: t.Slug}
}
