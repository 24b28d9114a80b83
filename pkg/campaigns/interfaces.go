// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package campaigns

import (
	"context"
	"time"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type ServiceInterface interface {
	ListCampaigns(ctx context.Context, p *tenancy.Principal) ([]*types.EmailCampaign, error)
	GetCampaign(ctx context.Context, p *tenancy.Principal, id string) (*types.EmailCampaign, error)
	CreateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign) (*types.EmailCampaign, error)
	UpdateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign, paths []string) (*types.EmailCampaign, error)
	ScheduleCampaign(ctx context.Context, p *tenancy.Principal, id string, at time.Time) (*types.EmailCampaign, error)
	DeleteCampaign(ctx context.Context, p *tenancy.Principal, id string) error
}

// StorageInterface is the storage surface this feature consumes.
type StorageInterface interface {
	CreateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign) (*types.EmailCampaign, error)
	GetCampaignByID(ctx context.Context, p *tenancy.Principal, id string) (*types.EmailCampaign, error)
	ListCampaigns(ctx context.Context, p *tenancy.Principal) ([]*types.EmailCampaign, error)
	UpdateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign, paths []string) error
	ScheduleCampaign(ctx context.Context, p *tenancy.Principal, id string, at time.Time) error
	DeleteCampaign(ctx context.Context, p *tenancy.Principal, id string) error
	RecordActivity(ctx context.Context, p *tenancy.Principal, a *types.ActivityLog) error
}

type AuthorizerInterface interface {
	Check(ctx context.Context, p *tenancy.Principal, permission string) bool
}
