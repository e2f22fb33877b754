// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"
)

//go:generate mockgen -build_flags=--mod=mod -package cache -destination ./mock_interfaces.go -source=./interfaces.go

type CacheInterface interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// GetDel returns the value of key and removes it in one step.
	GetDel(ctx context.Context, key string) ([]byte, error)
	Ping(ctx context.Context) error
	Close() error
}
