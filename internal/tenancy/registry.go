// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"fmt"
	"sort"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
)

// Registry holds one Scope per tenant-scoped table. Scopes are registered
// once at startup; any storage method querying a tenant-scoped table obtains
// its scope here, so new query paths inherit isolation instead of opting in.
type Registry struct {
	scopes map[string]*Scope

	logger logging.LoggerInterface
}

func NewRegistry(logger logging.LoggerInterface) *Registry {
	return &Registry{
		scopes: make(map[string]*Scope),
		logger: logger,
	}
}

// Register attaches a scope to the named table. Registering the same table
// twice is a programming error.
func (r *Registry) Register(table string) *Scope {
	if _, ok := r.scopes[table]; ok {
		panic(fmt.Sprintf("tenancy: table %q registered twice", table))
	}

	s := NewScope(table, r.logger)
	r.scopes[table] = s
	return s
}

// Scope returns the scope attached to table. Querying a tenant-scoped table
// that was never registered is a programming error, not a silent unscoped
// query.
func (r *Registry) Scope(table string) *Scope {
	s, ok := r.scopes[table]
	if !ok {
		panic(fmt.Sprintf("tenancy: table %q has no registered scope", table))
	}
	return s
}

// Tables returns the registered table names in sorted order.
func (r *Registry) Tables() []string {
	tables := make([]string, 0, len(r.scopes))
	for t := range r.scopes {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	return tables
}
