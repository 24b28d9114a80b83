// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"

	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type ServiceInterface interface {
	ListLeads(ctx context.Context, p *tenancy.Principal, params storage.ListLeadsParams) ([]*types.Lead, error)
	GetLead(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error)
	CreateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead) (*types.Lead, error)
	UpdateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead, paths []string) (*types.Lead, error)
	DeleteLead(ctx context.Context, p *tenancy.Principal, id string) error
	RescoreLead(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error)
	ConvertLead(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error)
	LeadStats(ctx context.Context, p *tenancy.Principal) (map[string]int, error)
}

// StorageInterface is the slice of the storage layer this package needs.
type StorageInterface interface {
	CreateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead) (*types.Lead, error)
	GetLeadByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error)
	ListLeads(ctx context.Context, p *tenancy.Principal, params storage.ListLeadsParams) ([]*types.Lead, error)
	UpdateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead, paths []string) error
	DeleteLead(ctx context.Context, p *tenancy.Principal, id string) error
	CountLeadsByStatus(ctx context.Context, p *tenancy.Principal) (map[string]int, error)
	RecordActivity(ctx context.Context, p *tenancy.Principal, a *types.ActivityLog) error
}

// ScorerInterface recomputes and persists a lead's score.
type ScorerInterface interface {
	Apply(ctx context.Context, p *tenancy.Principal, leadID string) (*types.Lead, error)
}

type AuthorizerInterface interface {
	Check(ctx context.Context, p *tenancy.Principal, permission string) bool
}
