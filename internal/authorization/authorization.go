// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
)

// Permission names, mirroring the seeded permissions table.
const (
	ViewLeads        = "view_leads"
	EditLeads        = "edit_leads"
	DeleteLeads      = "delete_leads"
	ViewContacts     = "view_contacts"
	EditContacts     = "edit_contacts"
	ViewCompanies    = "view_companies"
	EditCompanies    = "edit_companies"
	ViewCampaigns    = "view_campaigns"
	EditCampaigns    = "edit_campaigns"
	ViewProspects    = "view_prospects"
	EditProspects    = "edit_prospects"
	ViewActivity     = "view_activity"
	ManageSettings   = "manage_settings"
	ManageWorkspaces = "manage_workspaces"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer answers permission checks against the principal's granted set.
// Permission checks are orthogonal to tenant isolation: holding a permission
// never widens the workspace a principal can see.
type Authorizer struct {
	enabled bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, p *tenancy.Principal, permission string) bool {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	if !a.enabled {
		return true
	}

	if p.HasPermission(permission) {
		return true
	}

	userID := ""
	if p != nil {
		userID = p.ID
	}
	a.logger.Security().AuthorizationDenied(userID, permission)
	return false
}

func NewAuthorizer(enabled bool, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)

	authorizer.enabled = enabled
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
