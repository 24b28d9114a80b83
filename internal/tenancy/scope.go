// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
)

// ScopeColumn is the column every tenant-scoped table carries.
const ScopeColumn = "workspace_id"

// Scope narrows queries against one tenant-scoped table to the principal's
// workspace. It only rewrites query specifications: it performs no I/O and
// never fails. An unscoped principal passes builders through untouched.
type Scope struct {
	table string

	logger logging.LoggerInterface
}

func NewScope(table string, logger logging.LoggerInterface) *Scope {
	return &Scope{
		table:  table,
		logger: logger,
	}
}

// Table returns the table this scope is attached to.
func (s *Scope) Table() string {
	return s.table
}

// predicate returns the tenant predicate for p, or nil when p runs unscoped.
func (s *Scope) predicate(p *Principal) sq.Sqlizer {
	if !p.Scoped() {
		s.logger.Security().UnscopedQuery(s.table)
		return nil
	}
	return sq.Eq{ScopeColumn: p.WorkspaceID}
}

// Select conjoins the tenant predicate onto b. Caller predicates are
// preserved; the scope only ever adds a conjunct.
func (s *Scope) Select(p *Principal, b sq.SelectBuilder) sq.SelectBuilder {
	if pred := s.predicate(p); pred != nil {
		return b.Where(pred)
	}
	return b
}

// SelectQualified is Select for joined queries where the scoped table carries
// an alias and the column must be qualified.
func (s *Scope) SelectQualified(p *Principal, alias string, b sq.SelectBuilder) sq.SelectBuilder {
	if !p.Scoped() {
		s.logger.Security().UnscopedQuery(s.table)
		return b
	}
	return b.Where(sq.Eq{alias + "." + ScopeColumn: p.WorkspaceID})
}

// Update conjoins the tenant predicate onto b. A scoped UPDATE touching a
// foreign-workspace row affects zero rows, which callers must surface as not
// found.
func (s *Scope) Update(p *Principal, b sq.UpdateBuilder) sq.UpdateBuilder {
	if pred := s.predicate(p); pred != nil {
		return b.Where(pred)
	}
	return b
}

// Delete conjoins the tenant predicate onto b.
func (s *Scope) Delete(p *Principal, b sq.DeleteBuilder) sq.DeleteBuilder {
	if pred := s.predicate(p); pred != nil {
		return b.Where(pred)
	}
	return b
}
