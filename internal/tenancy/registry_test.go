// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"testing"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
)

func TestRegistry_RegisterAndScope(t *testing.T) {
	r := NewRegistry(logging.NewNoopLogger())

	s := r.Register("leads")
	if s.Table() != "leads" {
		t.Errorf("expected table leads, got %s", s.Table())
	}

	if got := r.Scope("leads"); got != s {
		t.Error("Scope returned a different scope than was registered")
	}
}

func TestRegistry_DoubleRegisterPanics(t *testing.T) {
	r := NewRegistry(logging.NewNoopLogger())
	r.Register("leads")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on double registration")
		}
	}()
	r.Register("leads")
}

func TestRegistry_UnknownTablePanics(t *testing.T) {
	r := NewRegistry(logging.NewNoopLogger())

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unregistered table")
		}
	}()
	r.Scope("contacts")
}

func TestRegistry_Tables(t *testing.T) {
	r := NewRegistry(logging.NewNoopLogger())
	r.Register("leads")
	r.Register("contacts")
	r.Register("companies")

	tables := r.Tables()
	want := []string{"companies", "contacts", "leads"}
	if len(tables) != len(want) {
		t.Fatalf("expected %d tables, got %d", len(want), len(tables))
	}
	for i := range want {
		if tables[i] != want[i] {
			t.Errorf("tables[%d] = %s, want %s", i, tables[i], want[i])
		}
	}
}
