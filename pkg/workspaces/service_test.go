// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package workspaces -destination ./mock_workspaces.go -source=./interfaces.go

func newTestService(store StorageInterface) *Service {
	return NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestServiceCreateWorkspace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	mockStore.EXPECT().CreateWorkspace(gomock.Any(), gomock.Any()).Return(
		&types.Workspace{ID: "ws-1", Name: "Acme Sales"}, nil,
	)

	s := newTestService(mockStore)

	workspace, err := s.CreateWorkspace(context.Background(), tenancy.SystemPrincipal(), &types.Workspace{Name: "Acme Sales"}, nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if workspace.ID != "ws-1" {
		t.Errorf("expected created workspace back, got %+v", workspace)
	}
}

func TestServiceCreateWorkspaceProvisionsOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	mockStore.EXPECT().CreateWorkspace(gomock.Any(), gomock.Any()).Return(
		&types.Workspace{ID: "ws-1", Name: "Acme Sales"}, nil,
	)
	mockStore.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, u *types.User) (*types.User, error) {
			if u.WorkspaceID != "ws-1" {
				t.Errorf("expected owner bound to the new workspace, got %q", u.WorkspaceID)
			}
			u.ID = "user-1"
			return u, nil
		},
	)
	mockStore.EXPECT().AssignRole(gomock.Any(), "user-1", "admin").Return(nil)

	s := newTestService(mockStore)

	owner := &types.User{Name: "Jo", Email: "jo@acme.test"}
	if _, err := s.CreateWorkspace(context.Background(), tenancy.SystemPrincipal(), &types.Workspace{Name: "Acme Sales"}, owner); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceCreateWorkspaceOwnerFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	mockStore.EXPECT().CreateWorkspace(gomock.Any(), gomock.Any()).Return(
		&types.Workspace{ID: "ws-1"}, nil,
	)
	mockStore.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)

	s := newTestService(mockStore)

	owner := &types.User{Name: "Jo", Email: "jo@acme.test"}
	_, err := s.CreateWorkspace(context.Background(), tenancy.SystemPrincipal(), &types.Workspace{Name: "Acme Sales"}, owner)
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key, got %v", err)
	}
}

func TestServiceUpdateWorkspaceNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	mockStore.EXPECT().UpdateWorkspace(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)

	s := newTestService(mockStore)

	_, err := s.UpdateWorkspace(context.Background(), tenancy.SystemPrincipal(), &types.Workspace{ID: "missing"}, []string{"name"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
