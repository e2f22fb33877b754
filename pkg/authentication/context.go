// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the authenticated principal.
func WithPrincipal(ctx context.Context, principal string) context.Context {
	return context.WithValue(ctx, principalContextKey, principal)
}

// GetPrincipal retrieves the authenticated principal from the context.
// Returns an empty string and false if no principal is present.
func GetPrincipal(ctx context.Context) (string, bool) {
	p, ok := ctx.Value(principalContextKey).(string)
	return p, ok && p != ""
}
