// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package leads -destination ./mock_leads.go -source=./interfaces.go

func testPrincipal() *tenancy.Principal {
	return &tenancy.Principal{
		ID:          "user-1",
		WorkspaceID: "ws-1",
	}
}

func newTestService(store StorageInterface, scorer ScorerInterface, scoreOnWrite bool) *Service {
	return NewService(
		store,
		scorer,
		scoreOnWrite,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor(),
		logging.NewNoopLogger(),
	)
}

func TestServiceCreateLeadDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockScorer := NewMockScorerInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().CreateLead(gomock.Any(), p, gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *tenancy.Principal, l *types.Lead) (*types.Lead, error) {
			if l.Status != types.LeadStatusNew {
				t.Errorf("expected default status %q, got %q", types.LeadStatusNew, l.Status)
			}
			if l.OwnerID != p.ID {
				t.Errorf("expected owner to default to caller, got %q", l.OwnerID)
			}

			created := *l
			created.ID = "lead-1"
			created.WorkspaceID = p.WorkspaceID
			return &created, nil
		},
	)
	mockScorer.EXPECT().Apply(gomock.Any(), p, "lead-1").Return(
		&types.Lead{ID: "lead-1", Name: "Acme intro", Score: 20, Qualification: types.QualificationCold}, nil,
	)
	mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(nil)

	s := newTestService(mockStore, mockScorer, true)

	lead, err := s.CreateLead(context.Background(), p, &types.Lead{Name: "Acme intro", Email: "jo@acme.test"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if lead.Score != 20 {
		t.Errorf("expected scored lead back, got score %d", lead.Score)
	}
}

func TestServiceCreateLeadScoreOnWriteDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockScorer := NewMockScorerInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().CreateLead(gomock.Any(), p, gomock.Any()).Return(
		&types.Lead{ID: "lead-1", Name: "Acme intro"}, nil,
	)
	mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(nil)

	s := newTestService(mockStore, mockScorer, false)

	lead, err := s.CreateLead(context.Background(), p, &types.Lead{Name: "Acme intro"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if lead.Score != 0 {
		t.Errorf("expected unscored lead, got score %d", lead.Score)
	}
}

func TestServiceCreateLeadStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockScorer := NewMockScorerInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().CreateLead(gomock.Any(), p, gomock.Any()).Return(nil, storage.ErrDuplicateKey)

	s := newTestService(mockStore, mockScorer, true)

	_, err := s.CreateLead(context.Background(), p, &types.Lead{Name: "Acme intro"})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
}

func TestServiceCreateLeadActivityFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockScorer := NewMockScorerInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().CreateLead(gomock.Any(), p, gomock.Any()).Return(&types.Lead{ID: "lead-1"}, nil)
	mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(errors.New("audit table down"))

	s := newTestService(mockStore, mockScorer, false)

	if _, err := s.CreateLead(context.Background(), p, &types.Lead{Name: "Acme intro"}); err != nil {
		t.Fatalf("expected create to succeed despite audit failure, got %v", err)
	}
}

func TestServiceUpdateLead(t *testing.T) {
	tests := []struct {
		name         string
		scoreOnWrite bool
	}{
		{name: "rescored on write", scoreOnWrite: true},
		{name: "score untouched", scoreOnWrite: false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStore := NewMockStorageInterface(ctrl)
			mockScorer := NewMockScorerInterface(ctrl)

			p := testPrincipal()
			paths := []string{"phone", "notes"}

			mockStore.EXPECT().UpdateLead(gomock.Any(), p, gomock.Any(), paths).Return(nil)
			if test.scoreOnWrite {
				mockScorer.EXPECT().Apply(gomock.Any(), p, "lead-1").Return(
					&types.Lead{ID: "lead-1", Score: 50, Qualification: types.QualificationWarm}, nil,
				)
			} else {
				mockStore.EXPECT().GetLeadByID(gomock.Any(), p, "lead-1").Return(
					&types.Lead{ID: "lead-1", Score: 20, Qualification: types.QualificationCold}, nil,
				)
			}
			mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(nil)

			s := newTestService(mockStore, mockScorer, test.scoreOnWrite)

			lead, err := s.UpdateLead(context.Background(), p, &types.Lead{ID: "lead-1", Phone: "555"}, paths)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if test.scoreOnWrite && lead.Score != 50 {
				t.Errorf("expected rescored lead, got score %d", lead.Score)
			}
			if !test.scoreOnWrite && lead.Score != 20 {
				t.Errorf("expected stored score, got %d", lead.Score)
			}
		})
	}
}

func TestServiceUpdateLeadNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockScorer := NewMockScorerInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().UpdateLead(gomock.Any(), p, gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)

	s := newTestService(mockStore, mockScorer, true)

	_, err := s.UpdateLead(context.Background(), p, &types.Lead{ID: "other-tenant-lead"}, []string{"notes"})
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceConvertLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockScorer := NewMockScorerInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().UpdateLead(gomock.Any(), p, gomock.Any(), []string{"status"}).DoAndReturn(
		func(ctx context.Context, _ *tenancy.Principal, l *types.Lead, _ []string) error {
			if l.Status != types.LeadStatusConverted {
				t.Errorf("expected status %q, got %q", types.LeadStatusConverted, l.Status)
			}
			return nil
		},
	)
	mockScorer.EXPECT().Apply(gomock.Any(), p, "lead-1").Return(
		&types.Lead{ID: "lead-1", Status: types.LeadStatusConverted, Score: 70, Qualification: types.QualificationHot}, nil,
	)
	mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(nil)

	s := newTestService(mockStore, mockScorer, false)

	lead, err := s.ConvertLead(context.Background(), p, "lead-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if lead.Qualification != types.QualificationHot {
		t.Errorf("expected conversion bonus to qualify lead hot, got %q", lead.Qualification)
	}
}

func TestServiceConvertLeadNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockScorer := NewMockScorerInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().UpdateLead(gomock.Any(), p, gomock.Any(), []string{"status"}).Return(storage.ErrNotFound)

	s := newTestService(mockStore, mockScorer, false)

	if _, err := s.ConvertLead(context.Background(), p, "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestServiceDeleteLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockScorer := NewMockScorerInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().DeleteLead(gomock.Any(), p, "lead-1").Return(nil)
	mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(nil)

	s := newTestService(mockStore, mockScorer, false)

	if err := s.DeleteLead(context.Background(), p, "lead-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceLeadStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)
	mockScorer := NewMockScorerInterface(ctrl)

	p := testPrincipal()
	want := map[string]int{types.LeadStatusNew: 3, types.LeadStatusConverted: 1}

	mockStore.EXPECT().CountLeadsByStatus(gomock.Any(), p).Return(want, nil)

	s := newTestService(mockStore, mockScorer, false)

	got, err := s.LeadStats(context.Background(), p)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
