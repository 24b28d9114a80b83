// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prospects

import (
	"context"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type ServiceInterface interface {
	ListProspectLists(ctx context.Context, p *tenancy.Principal) ([]*types.ProspectList, error)
	GetProspectList(ctx context.Context, p *tenancy.Principal, id string) (*types.ProspectList, error)
	CreateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList) (*types.ProspectList, error)
	UpdateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList, paths []string) (*types.ProspectList, error)
	DeleteProspectList(ctx context.Context, p *tenancy.Principal, id string) error
	AddContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error
	RemoveContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error
	ListContacts(ctx context.Context, p *tenancy.Principal, listID string) ([]*types.Contact, error)
}

// StorageInterface is the storage surface this feature consumes.
type StorageInterface interface {
	CreateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList) (*types.ProspectList, error)
	GetProspectListByID(ctx context.Context, p *tenancy.Principal, id string) (*types.ProspectList, error)
	ListProspectLists(ctx context.Context, p *tenancy.Principal) ([]*types.ProspectList, error)
	UpdateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList, paths []string) error
	DeleteProspectList(ctx context.Context, p *tenancy.Principal, id string) error
	AddProspectListContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error
	RemoveProspectListContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error
	ListProspectListContacts(ctx context.Context, p *tenancy.Principal, listID string) ([]*types.Contact, error)
}

type AuthorizerInterface interface {
	Check(ctx context.Context, p *tenancy.Principal, permission string) bool
}
