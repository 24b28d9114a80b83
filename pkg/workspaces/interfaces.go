// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type ServiceInterface interface {
	ListWorkspaces(ctx context.Context, p *tenancy.Principal) ([]*types.Workspace, error)
	GetWorkspace(ctx context.Context, p *tenancy.Principal, id string) (*types.Workspace, error)
	CreateWorkspace(ctx context.Context, p *tenancy.Principal, w *types.Workspace, owner *types.User) (*types.Workspace, error)
	UpdateWorkspace(ctx context.Context, p *tenancy.Principal, w *types.Workspace, paths []string) (*types.Workspace, error)
	DeleteWorkspace(ctx context.Context, p *tenancy.Principal, id string) error
}

// StorageInterface is the storage surface this feature consumes. Workspaces
// are the tenancy roots, their operations are not scoped by a principal.
type StorageInterface interface {
	CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error)
	GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error)
	ListWorkspaces(ctx context.Context) ([]*types.Workspace, error)
	UpdateWorkspace(ctx context.Context, w *types.Workspace, paths []string) error
	DeleteWorkspace(ctx context.Context, id string) error

	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	AssignRole(ctx context.Context, userID, roleName string) error
}

type AuthorizerInterface interface {
	Check(ctx context.Context, p *tenancy.Principal, permission string) bool
}
