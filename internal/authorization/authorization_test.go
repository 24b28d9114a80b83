// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"testing"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
)

func TestAuthorizer_Check(t *testing.T) {
	testCases := []struct {
		name       string
		enabled    bool
		principal  *tenancy.Principal
		permission string
		want       bool
	}{
		{
			name:       "granted",
			enabled:    true,
			principal:  &tenancy.Principal{ID: "u1", WorkspaceID: "ws1", Permissions: []string{ViewLeads}},
			permission: ViewLeads,
			want:       true,
		},
		{
			name:       "denied",
			enabled:    true,
			principal:  &tenancy.Principal{ID: "u1", WorkspaceID: "ws1", Permissions: []string{ViewLeads}},
			permission: DeleteLeads,
			want:       false,
		},
		{
			name:       "nil principal denied",
			enabled:    true,
			principal:  nil,
			permission: ViewLeads,
			want:       false,
		},
		{
			name:       "disabled authorizer allows everything",
			enabled:    false,
			principal:  nil,
			permission: ManageWorkspaces,
			want:       true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := NewAuthorizer(tc.enabled, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			if got := a.Check(context.Background(), tc.principal, tc.permission); got != tc.want {
				t.Errorf("Check = %v, want %v", got, tc.want)
			}
		})
	}
}
