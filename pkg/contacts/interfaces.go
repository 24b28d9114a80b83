// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contacts

import (
	"context"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type ServiceInterface interface {
	ListContacts(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Contact, error)
	GetContact(ctx context.Context, p *tenancy.Principal, id string) (*types.Contact, error)
	CreateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact) (*types.Contact, error)
	UpdateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact, paths []string) (*types.Contact, error)
	DeleteContact(ctx context.Context, p *tenancy.Principal, id string) error
}

// StorageInterface is the storage surface this feature consumes.
type StorageInterface interface {
	CreateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact) (*types.Contact, error)
	GetContactByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Contact, error)
	ListContacts(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Contact, error)
	UpdateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact, paths []string) error
	DeleteContact(ctx context.Context, p *tenancy.Principal, id string) error
	RecordActivity(ctx context.Context, p *tenancy.Principal, a *types.ActivityLog) error
}

type AuthorizerInterface interface {
	Check(ctx context.Context, p *tenancy.Principal, permission string) bool
}
