// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import "context"

//go:generate mockgen -build_flags=--mod=mod -package status -destination ./mock_interfaces.go -source=./interfaces.go

// CheckerInterface is a dependency the service cannot serve requests without.
type CheckerInterface interface {
	Ping(ctx context.Context) error
}
