// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"testing"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
)

// Every tenant-scoped table must have a scope registered at construction
// time; a table missing here would silently serve cross-workspace data.
func TestNewStorage_RegistersAllTenantScopedTables(t *testing.T) {
	s := NewStorage(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	want := []string{
		"activity_logs",
		"companies",
		"contacts",
		"email_campaigns",
		"leads",
		"mail_configurations",
		"prospect_list_contacts",
		"prospect_lists",
	}

	got := s.Scopes().Tables()
	if len(got) != len(want) {
		t.Fatalf("expected %d scoped tables, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tables[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
