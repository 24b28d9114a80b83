// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type StorageInterface interface {
	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]*types.Workspace, error)
	UpdateWorkspace(ctx context.Context, w *types.Workspace, paths []string) error
	DeleteWorkspace(ctx context.Context, id string) error

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUserByID(ctx context.Context, id string) (*types.User, error)
	GetPrincipalByUserID(ctx context.Context, userID string) (*tenancy.Principal, error)
	AssignRole(ctx context.Context, userID, roleName string) error

	CreateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead) (*types.Lead, error)
	GetLeadByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error)
	ListLeads(ctx context.Context, p *tenancy.Principal, params ListLeadsParams) ([]*types.Lead, error)
	UpdateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead, paths []string) error
	UpdateLeadScore(ctx context.Context, p *tenancy.Principal, id string, score int, q types.Qualification) error
	DeleteLead(ctx context.Context, p *tenancy.Principal, id string) error
	CountLeadsByStatus(ctx context.Context, p *tenancy.Principal) (map[string]int, error)

	CreateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact) (*types.Contact, error)
	GetContactByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Contact, error)
	ListContacts(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Contact, error)
	UpdateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact, paths []string) error
	DeleteContact(ctx context.Context, p *tenancy.Principal, id string) error

	CreateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company) (*types.Company, error)
	GetCompanyByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Company, error)
	ListCompanies(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Company, error)
	UpdateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company, paths []string) error
	DeleteCompany(ctx context.Context, p *tenancy.Principal, id string) error

	CreateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList) (*types.ProspectList, error)
	GetProspectListByID(ctx context.Context, p *tenancy.Principal, id string) (*types.ProspectList, error)
	ListProspectLists(ctx context.Context, p *tenancy.Principal) ([]*types.ProspectList, error)
	UpdateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList, paths []string) error
	DeleteProspectList(ctx context.Context, p *tenancy.Principal, id string) error
	AddProspectListContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error
	RemoveProspectListContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error
	ListProspectListContacts(ctx context.Context, p *tenancy.Principal, listID string) ([]*types.Contact, error)

	CreateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign) (*types.EmailCampaign, error)
	GetCampaignByID(ctx context.Context, p *tenancy.Principal, id string) (*types.EmailCampaign, error)
	ListCampaigns(ctx context.Context, p *tenancy.Principal) ([]*types.EmailCampaign, error)
	UpdateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign, paths []string) error
	ScheduleCampaign(ctx context.Context, p *tenancy.Principal, id string, at time.Time) error
	DeleteCampaign(ctx context.Context, p *tenancy.Principal, id string) error

	RecordActivity(ctx context.Context, p *tenancy.Principal, a *types.ActivityLog) error
	ListActivities(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.ActivityLog, error)

	GetMailConfiguration(ctx context.Context, p *tenancy.Principal) (*types.MailConfiguration, error)
	UpsertMailConfiguration(ctx context.Context, p *tenancy.Principal, m *types.MailConfiguration) (*types.MailConfiguration, error)
}
