// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package campaigns

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package campaigns -destination ./mock_campaigns.go -source=./interfaces.go

func testPrincipal() *tenancy.Principal {
	return &tenancy.Principal{ID: "user-1", WorkspaceID: "ws-1"}
}

func newTestService(store StorageInterface) *Service {
	return NewService(store, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestServiceCreateCampaignForcesDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().CreateCampaign(gomock.Any(), p, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ *tenancy.Principal, c *types.EmailCampaign) (*types.EmailCampaign, error) {
			if c.Status != types.CampaignStatusDraft {
				t.Errorf("expected new campaigns to start as draft, got %q", c.Status)
			}
			created := *c
			created.ID = "campaign-1"
			return &created, nil
		},
	)
	mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(nil)

	s := newTestService(mockStore)

	// Status in the request is ignored.
	_, err := s.CreateCampaign(context.Background(), p, &types.EmailCampaign{Name: "Q3 launch", Status: types.CampaignStatusSent})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestServiceScheduleCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()
	at := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	mockStore.EXPECT().ScheduleCampaign(gomock.Any(), p, "campaign-1", at).Return(nil)
	mockStore.EXPECT().GetCampaignByID(gomock.Any(), p, "campaign-1").Return(
		&types.EmailCampaign{ID: "campaign-1", Name: "Q3 launch", Status: types.CampaignStatusScheduled, ScheduledAt: &at}, nil,
	)
	mockStore.EXPECT().RecordActivity(gomock.Any(), p, gomock.Any()).Return(nil)

	s := newTestService(mockStore)

	scheduled, err := s.ScheduleCampaign(context.Background(), p, "campaign-1", at)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if scheduled.Status != types.CampaignStatusScheduled {
		t.Errorf("expected scheduled status, got %q", scheduled.Status)
	}
}

func TestServiceScheduleCampaignNotDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := NewMockStorageInterface(ctrl)

	p := testPrincipal()

	mockStore.EXPECT().ScheduleCampaign(gomock.Any(), p, "campaign-1", gomock.Any()).Return(storage.ErrNotFound)

	s := newTestService(mockStore)

	_, err := s.ScheduleCampaign(context.Background(), p, "campaign-1", time.Now())
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found for non-draft campaign, got %v", err)
	}
}
