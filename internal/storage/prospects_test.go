// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
)

// Member rows inherit their workspace from the inserting principal, so an
// unscoped principal must be rejected before any query runs. The storage is
// built without a db client: reaching the database would panic the test.
func TestAddProspectListContact_UnscopedPrincipal(t *testing.T) {
	s := NewStorage(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	tests := []struct {
		name      string
		principal *tenancy.Principal
	}{
		{"nil principal", nil},
		{"system principal", tenancy.SystemPrincipal()},
		{"empty workspace", &tenancy.Principal{ID: "user-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddProspectListContact(context.Background(), tt.principal, "list-1", "contact-1")
			if !errors.Is(err, ErrNoWorkspace) {
				t.Fatalf("expected ErrNoWorkspace, got %v", err)
			}
		})
	}
}
