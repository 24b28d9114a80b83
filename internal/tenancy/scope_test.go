// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
)

func TestScope_Select(t *testing.T) {
	scope := NewScope("leads", logging.NewNoopLogger())

	testCases := []struct {
		name       string
		principal  *Principal
		wantClause bool
	}{
		{
			name:       "scoped principal",
			principal:  &Principal{ID: "user-1", WorkspaceID: "ws-1"},
			wantClause: true,
		},
		{
			name:       "nil principal passes through",
			principal:  nil,
			wantClause: false,
		},
		{
			name:       "empty workspace passes through",
			principal:  &Principal{ID: "user-1"},
			wantClause: false,
		},
		{
			name:       "system principal passes through",
			principal:  SystemPrincipal(),
			wantClause: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := sq.Select("id").From("leads")
			sql, args, err := scope.Select(tc.principal, b).ToSql()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			hasClause := strings.Contains(sql, "workspace_id")
			if hasClause != tc.wantClause {
				t.Errorf("clause presence = %v, want %v, sql: %s", hasClause, tc.wantClause, sql)
			}

			if tc.wantClause {
				found := false
				for _, a := range args {
					if a == tc.principal.WorkspaceID {
						found = true
					}
				}
				if !found {
					t.Errorf("workspace id not bound in args: %v", args)
				}
			}
		})
	}
}

func TestScope_PreservesCallerPredicates(t *testing.T) {
	scope := NewScope("leads", logging.NewNoopLogger())
	p := &Principal{ID: "user-1", WorkspaceID: "ws-1"}

	b := sq.Select("id").From("leads").Where(sq.Eq{"status": "new"}).Where(sq.Eq{"source": "referral"})
	sql, args, err := scope.Select(p, b).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, clause := range []string{"status", "source", "workspace_id"} {
		if !strings.Contains(sql, clause) {
			t.Errorf("expected clause on %s, sql: %s", clause, sql)
		}
	}
	if len(args) != 3 {
		t.Errorf("expected 3 bound args, got %v", args)
	}
}

func TestScope_AppliesToAggregates(t *testing.T) {
	scope := NewScope("leads", logging.NewNoopLogger())
	p := &Principal{ID: "user-1", WorkspaceID: "ws-1"}

	sql, _, err := scope.Select(p, sq.Select("COUNT(*)").From("leads")).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "workspace_id") {
		t.Errorf("aggregate query not scoped: %s", sql)
	}
}

func TestScope_Update(t *testing.T) {
	scope := NewScope("leads", logging.NewNoopLogger())

	p := &Principal{ID: "user-1", WorkspaceID: "ws-1"}
	sql, args, err := scope.Update(p, sq.Update("leads").Set("status", "converted").Where(sq.Eq{"id": "lead-1"})).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "workspace_id") {
		t.Errorf("update not scoped: %s", sql)
	}
	if len(args) != 3 {
		t.Errorf("expected 3 bound args, got %v", args)
	}

	sql, _, err = scope.Update(nil, sq.Update("leads").Set("status", "converted")).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(sql, "workspace_id") {
		t.Errorf("unscoped update gained a clause: %s", sql)
	}
}

func TestScope_Delete(t *testing.T) {
	scope := NewScope("leads", logging.NewNoopLogger())
	p := &Principal{ID: "user-1", WorkspaceID: "ws-1"}

	sql, _, err := scope.Delete(p, sq.Delete("leads").Where(sq.Eq{"id": "lead-1"})).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(sql, "workspace_id") {
		t.Errorf("delete not scoped: %s", sql)
	}
}

func TestPrincipal_HasPermission(t *testing.T) {
	p := &Principal{ID: "user-1", WorkspaceID: "ws-1", Permissions: []string{"view_leads", "edit_leads"}}

	if !p.HasPermission("view_leads") {
		t.Error("expected view_leads to be granted")
	}
	if p.HasPermission("delete_workspaces") {
		t.Error("expected delete_workspaces to be denied")
	}

	var nilP *Principal
	if nilP.HasPermission("view_leads") {
		t.Error("nil principal must hold no permissions")
	}
}
