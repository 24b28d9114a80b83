// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"fmt"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) ListWorkspaces(ctx context.Context, p *tenancy.Principal) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.ListWorkspaces")
	defer span.End()

	return s.storage.ListWorkspaces(ctx)
}

func (s *Service) GetWorkspace(ctx context.Context, p *tenancy.Principal, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.GetWorkspace")
	defer span.End()

	return s.storage.GetWorkspaceByID(ctx, id)
}

// CreateWorkspace provisions the workspace and, when an owner is given,
// creates the owner user inside it with the admin role.
func (s *Service) CreateWorkspace(ctx context.Context, p *tenancy.Principal, w *types.Workspace, owner *types.User) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.CreateWorkspace")
	defer span.End()

	created, err := s.storage.CreateWorkspace(ctx, w)
	if err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}

	if owner != nil {
		owner.WorkspaceID = created.ID

		user, err := s.storage.CreateUser(ctx, owner)
		if err != nil {
			return nil, fmt.Errorf("failed to create workspace owner: %w", err)
		}

		if err := s.storage.AssignRole(ctx, user.ID, "admin"); err != nil {
			return nil, fmt.Errorf("failed to assign owner role: %w", err)
		}
	}

	s.logger.Infof("provisioned workspace %s (%s)", created.ID, created.Name)

	return created, nil
}

func (s *Service) UpdateWorkspace(ctx context.Context, p *tenancy.Principal, w *types.Workspace, paths []string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.UpdateWorkspace")
	defer span.End()

	if err := s.storage.UpdateWorkspace(ctx, w, paths); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetWorkspaceByID(ctx, w.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated workspace: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteWorkspace(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.DeleteWorkspace")
	defer span.End()

	return s.storage.DeleteWorkspace(ctx, id)
}
