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

func (s *Storage) CreateAdminToken(ctx context.Context, t *types.AdminToken) (*types.AdminToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAdminToken")
	defer span.End()

	created := *t
	err := s.db.Statement(ctx).
		Insert("admin_tokens").
		Columns("token", "admin_email", "tenant_id", "token_type", "created_by", "expires_at").
		Values(t.Token, t.AdminEmail, t.TenantID, string(t.TokenType), t.CreatedBy, t.ExpiresAt).
		Suffix("RETURNING created_at").
		QueryRowContext(ctx).
		Scan(&created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "admin token")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "admin token tenant")
		}
		return nil, fmt.Errorf("failed to insert admin token: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetAdminToken(ctx context.Context, token string) (*types.AdminToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAdminToken")
	defer span.End()

	var t types.AdminToken
	err := s.db.Statement(ctx).
		Select("token", "admin_email", "tenant_id", "token_type", "created_by", "created_at", "expires_at", "is_used", "used_at").
		From("admin_tokens").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx).
		Scan(&t.Token, &t.AdminEmail, &t.TenantID, &t.TokenType, &t.CreatedBy, &t.CreatedAt, &t.ExpiresAt, &t.IsUsed, &t.UsedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin token: %w", err)
	}

	return &t, nil
}

// ConsumeAdminToken flags the token as used with a single conditional write.
// ErrNotFound means another caller consumed it first, or it never existed.
func (s *Storage) ConsumeAdminToken(ctx context.Context, token string, usedAt time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeAdminToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("admin_tokens").
		Set("is_used", true).
		Set("used_at", usedAt).
		Where(sq.Eq{"token": token, "is_used": false}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to consume admin token: %w", err)
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

func (s *Storage) DeleteAdminToken(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAdminToken")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("admin_tokens").
		Where(sq.Eq{"token": token}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete admin token: %w", err)
	}

	return nil
}
