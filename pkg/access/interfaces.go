// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package access

import (
	"context"

	"github.com/canonical/voluntold-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package access -destination ./mock_interfaces.go -source=./interfaces.go

type ServiceInterface interface {
	ResolveAccess(ctx context.Context, email string) (*types.AccessSummary, error)
}

type StorageInterface interface {
	ListProfilesByEmail(ctx context.Context, email string) ([]*types.ProfileWithTenant, error)
}
