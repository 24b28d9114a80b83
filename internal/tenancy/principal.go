// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"slices"
)

// Principal is the authenticated actor making a request. It is passed to the
// storage layer explicitly, never read from ambient state.
type Principal struct {
	ID          string
	WorkspaceID string
	Permissions []string
}

// HasPermission reports whether the principal was granted the named permission.
func (p *Principal) HasPermission(name string) bool {
	if p == nil {
		return false
	}
	return slices.Contains(p.Permissions, name)
}

// Scoped reports whether queries issued on behalf of this principal are
// restricted to a workspace. A nil principal or an empty workspace runs
// unscoped, which is reserved for operator and system contexts.
func (p *Principal) Scoped() bool {
	return p != nil && p.WorkspaceID != ""
}

// SystemPrincipal returns the unscoped principal used by console tooling and
// background jobs. It is the only blessed way to run queries across
// workspaces; request paths must always carry a workspace-bound principal.
func SystemPrincipal() *Principal {
	return &Principal{ID: "system"}
}

type contextKey struct{}

var principalContextKey = contextKey{}

// WithPrincipal returns a new context carrying the principal. Only the HTTP
// boundary should use this; everything below it takes the principal as an
// argument.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey, p)
}

// PrincipalFromContext retrieves the principal stored by the identity
// middleware. Returns nil and false if none is present.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey).(*Principal)
	return p, ok
}
