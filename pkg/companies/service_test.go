// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package companies

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

//go:generate mockgen -build_flags=--mod=mod -package companies -destination ./mock_companies.go -source=./interfaces.go

func testPrincipal() *tenancy.Principal {
	return &tenancy.Principal{ID: "user-1", WorkspaceID: "ws-1"}
}

func newTestService(store StorageInterface) *Service {
	return NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestServiceCreateCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().CreateCompany(gomock.Any(), p, gomock.Any()).Return(
		&types.Company{ID: "company-1", Name: "Acme"}, nil,
	)
	mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(nil)

	s := newTestService(mockStore)

	company, err := s.CreateCompany(context.Background(), p, &types.Company{Name: "Acme"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if company.ID != "company-1" {
		t.Errorf("expected created company back, got %+v", company)
	}
}

func TestServiceUpdateCompanyNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().UpdateCompany(gomock.Any(), p, gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)

	s := newTestService(mockStore)

	_, err := s.UpdateCompany(context.Background(), p, &types.Company{ID: "foreign-company"}, []string{"name"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceDeleteCompanyAuditFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().DeleteCompany(gomock.Any(), p, "company-1").Return(nil)
	mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(errors.New("audit table down"))

	s := newTestService(mockStore)

	if err := s.DeleteCompany(context.Background(), p, "company-1"); err != nil {
		t.Fatalf("expected delete to succeed despite audit failure, got %v", err)
	}
}
