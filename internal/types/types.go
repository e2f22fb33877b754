// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
	"time"
)

// NormalizeEmail is the canonical form emails are stored and looked up in.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Role string

const (
	RoleSuperAdmin  Role = "super_admin"
	RoleTenantAdmin Role = "tenant_admin"
	RoleMember      Role = "member"
)

func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleTenantAdmin
}

type TokenType string

const (
	TokenTypeInvitation    TokenType = "invitation"
	TokenTypePasswordReset TokenType = "password_reset"
)

type Tenant struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Slug      string    `db:"slug"`
	CreatedAt time.Time `db:"created_at"`
}

// Profile is one role relationship of an email. A super admin profile has no
// tenant, every other profile has exactly one.
type Profile struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	Role         Role      `db:"role"`
	TenantID     *string   `db:"tenant_id"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	PasswordHash *string   `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}

// ProfileWithTenant is a profile joined with its tenant, Tenant is nil for
// tenant-less profiles.
type ProfileWithTenant struct {
	Profile
	Tenant *Tenant
}

type AdminToken struct {
	Token      string     `db:"token"`
	AdminEmail string     `db:"admin_email"`
	TenantID   *string    `db:"tenant_id"`
	TokenType  TokenType  `db:"token_type"`
	CreatedBy  *string    `db:"created_by"`
	CreatedAt  time.Time  `db:"created_at"`
	ExpiresAt  time.Time  `db:"expires_at"`
	IsUsed     bool       `db:"is_used"`
	UsedAt     *time.Time `db:"used_at"`
}

// Expired reports whether the token can no longer be redeemed at now,
// regardless of its consumption state.
func (t *AdminToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

type AccessType string

const (
	AccessSuperAdmin  AccessType = "super_admin"
	AccessTenantAdmin AccessType = "tenant_admin"
	AccessMember      AccessType = "member"
)

func (a AccessType) IsAdmin() bool {
	return a == AccessSuperAdmin || a == AccessTenantAdmin
}

type AccessOption struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	AccessType       AccessType `json:"accessType"`
	TenantID         string     `json:"tenantId,omitempty"`
	OrganizationName string     `json:"organizationName,omitempty"`
}

type AccessSummary struct {
	HasAdminAccess  bool            `json:"hasAdminAccess"`
	HasMemberAccess bool            `json:"hasMemberAccess"`
	AccessOptions   []*AccessOption `json:"accessOptions"`
	TotalOptions    int             `json:"totalOptions"`
}

// EmptyAccessSummary is the summary of an email with no relationships. Its
// shape must stay identical to any other summary.
func EmptyAccessSummary() *AccessSummary {
	return &AccessSummary{
		AccessOptions: []*AccessOption{},
	}
}
