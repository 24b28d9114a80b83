// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package companies

import (
	"context"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type ServiceInterface interface {
	ListCompanies(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Company, error)
	GetCompany(ctx context.Context, p *tenancy.Principal, id string) (*types.Company, error)
	CreateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company) (*types.Company, error)
	UpdateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company, paths []string) (*types.Company, error)
	DeleteCompany(ctx context.Context, p *tenancy.Principal, id string) error
}

// StorageInterface is the storage surface this feature consumes.
type StorageInterface interface {
	CreateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company) (*types.Company, error)
	GetCompanyByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Company, error)
	ListCompanies(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Company, error)
	UpdateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company, paths []string) error
	DeleteCompany(ctx context.Context, p *tenancy.Principal, id string) error
	RecordActivity(ctx context.Context, p *tenancy.Principal, a *types.ActivityLog) error
}

type AuthorizerInterface interface {
	Check(ctx context.Context, p *tenancy.Principal, permission string) bool
}
