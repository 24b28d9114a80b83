// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prospects

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

//go:generate mockgen -build_flags=--mod=mod -package prospects -destination ./mock_prospects.go -source=./interfaces.go

func testPrincipal() *tenancy.Principal {
	return &tenancy.Principal{ID: "user-1", WorkspaceID: "ws-1"}
}

func newTestService(store StorageInterface) *Service {
	return NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestServiceAddContactOtherTenantIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().AddProspectListContact(gomock.Any(), p, "list-1", "foreign-contact").Return(storage.ErrNotFound)

	s := newTestService(mockStore)

	err := s.AddContact(context.Background(), p, "list-1", "foreign-contact")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceAddContactDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().AddProspectListContact(gomock.Any(), p, "list-1", "contact-1").Return(storage.ErrDuplicateKey)

	s := newTestService(mockStore)

	err := s.AddContact(context.Background(), p, "list-1", "contact-1")
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key, got %v", err)
	}
}

func TestServiceListContactsMissingList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().GetProspectListByID(gomock.Any(), p, "foreign-list").Return(nil, storage.ErrNotFound)

	s := newTestService(mockStore)

	_, err := s.ListContacts(context.Background(), p, "foreign-list")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found for a list outside the workspace, got %v", err)
	}
}

func TestServiceListContacts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().GetProspectListByID(gomock.Any(), p, "list-1").Return(
		&types.ProspectList{ID: "list-1", Name: "Q3 targets"}, nil,
	)
	mockStore.EXPECT().ListProspectListContacts(gomock.Any(), p, "list-1").Return(
		[]*types.Contact{{ID: "contact-1", Name: "Jo"}}, nil,
	)

	s := newTestService(mockStore)

	contacts, err := s.ListContacts(context.Background(), p, "list-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(contacts) != 1 || contacts[0].ID != "contact-1" {
		t.Errorf("unexpected contacts: %+v", contacts)
	}
}
