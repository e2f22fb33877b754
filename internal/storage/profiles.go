// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/voluntold-service/internal/types"
)

var profileColumns = []string{
	"p.id", "p.email", "p.role", "p.tenant_id", "p.first_name", "p.last_name", "p.password_hash", "p.created_at",
}

// tenantScope matches a nullable tenant id, NULL compares with IS NULL.
func tenantScope(column string, tenantID *string) sq.Sqlizer {
	if tenantID == nil {
		return sq.Eq{column: nil}
	}
	return sq.Eq{column: *tenantID}
}

func (s *Storage) CreateProfile(ctx context.Context, p *types.Profile) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProfile")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile ID: %w", err)
	}

	created := *p
	created.ID = id

	err = s.db.Statement(ctx).
		Insert("profiles").
		Columns("id", "email", "role", "tenant_id", "first_name", "last_name", "password_hash").
		Values(id, p.Email, string(p.Role), p.TenantID, p.FirstName, p.LastName, p.PasswordHash).
		Suffix("RETURNING created_at").
		QueryRowContext(ctx).
		Scan(&created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "profile "+p.Email)
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "profile tenant")
		}
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetProfile(ctx context.Context, email string, role types.Role, tenantID *string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProfile")
	defer span.End()

	var p types.Profile
	err := s.db.Statement(ctx).
		Select(profileColumns...).
		From("profiles p").
		Where(sq.Eq{"p.email": email, "p.role": string(role)}).
		Where(tenantScope("p.tenant_id", tenantID)).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.Email, &p.Role, &p.TenantID, &p.FirstName, &p.LastName, &p.PasswordHash, &p.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}

func (s *Storage) ListProfilesByEmail(ctx context.Context, email string) ([]*types.ProfileWithTenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProfilesByEmail")
	defer span.End()

	return s.listProfiles(ctx, sq.Eq{"p.email": email})
}

func (s *Storage) ListAdminProfilesByEmail(ctx context.Context, email string) ([]*types.ProfileWithTenant, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAdminProfilesByEmail")
	defer span.End()

	return s.listProfiles(ctx, sq.Eq{
		"p.email": email,
		"p.role":  []string{string(types.RoleSuperAdmin), string(types.RoleTenantAdmin)},
	})
}

// listProfiles resolves the tenant join once here, every profile comes back
// with either a complete Tenant or none at all.
func (s *Storage) listProfiles(ctx context.Context, where sq.Sqlizer) ([]*types.ProfileWithTenant, error) {
	columns := append(append([]string{}, profileColumns...), "t.id", "t.name", "t.slug", "t.created_at")

	rows, err := s.db.Statement(ctx).
		Select(columns...).
		From("profiles p").
		LeftJoin("tenants t ON t.id = p.tenant_id").
		Where(where).
		OrderBy("p.created_at", "p.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]*types.ProfileWithTenant, 0)
	for rows.Next() {
		var (
			p               types.ProfileWithTenant
			tID, tName, tSl *string
			tCreated        *time.Time
		)

		if err := rows.Scan(
			&p.ID, &p.Email, &p.Role, &p.TenantID, &p.FirstName, &p.LastName, &p.PasswordHash, &p.CreatedAt,
			&tID, &tName, &tSl, &tCreated,
		); err != nil {
			return nil, fmt.Errorf("failed to scan profile: %w", err)
		}

		if tID != nil && tName != nil && tSl != nil && tCreated != nil {
			p.Tenant = &types.Tenant{ID: *tID, Name: *tName, Slug: *tSl, CreatedAt: *tCreated}
		}

		profiles = append(profiles, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}

// UpdateAdminPasswordHash sets the credential of the admin profile of email in
// the given tenant, or of the super admin profile when tenantID is nil.
func (s *Storage) UpdateAdminPasswordHash(ctx context.Context, email string, tenantID *string, hash string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAdminPasswordHash")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("profiles").
		Set("password_hash", hash).
		Where(sq.Eq{
			"email": email,
			"role":  []string{string(types.RoleSuperAdmin), string(types.RoleTenantAdmin)},
		}).
		Where(tenantScope("tenant_id", tenantID)).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
