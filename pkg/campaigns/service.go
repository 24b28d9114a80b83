// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package campaigns

import (
	"context"
	"fmt"
	"time"

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

func (s *Service) ListCampaigns(ctx context.Context, p *tenancy.Principal) ([]*types.EmailCampaign, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.ListCampaigns")
	defer span.End()

	return s.storage.ListCampaigns(ctx, p)
}

func (s *Service) GetCampaign(ctx context.Context, p *tenancy.Principal, id string) (*types.EmailCampaign, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.GetCampaign")
	defer span.End()

	return s.storage.GetCampaignByID(ctx, p, id)
}

func (s *Service) CreateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign) (*types.EmailCampaign, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.CreateCampaign")
	defer span.End()

	c.Status = types.CampaignStatusDraft

	created, err := s.storage.CreateCampaign(ctx, p, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	s.recordActivity(ctx, p, created.ID, "created", created.Name)

	return created, nil
}

func (s *Service) UpdateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign, paths []string) (*types.EmailCampaign, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.UpdateCampaign")
	defer span.End()

	if err := s.storage.UpdateCampaign(ctx, p, c, paths); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetCampaignByID(ctx, p, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated campaign: %w", err)
	}

	s.recordActivity(ctx, p, c.ID, "updated", updated.Name)

	return updated, nil
}

// ScheduleCampaign moves a draft campaign to scheduled. Scheduling a campaign
// that is not a draft returns ErrNotFound, the transition only happens once.
func (s *Service) ScheduleCampaign(ctx context.Context, p *tenancy.Principal, id string, at time.Time) (*types.EmailCampaign, error) {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.ScheduleCampaign")
	defer span.End()

	if err := s.storage.ScheduleCampaign(ctx, p, id, at); err != nil {
		return nil, err
	}

	scheduled, err := s.storage.GetCampaignByID(ctx, p, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get scheduled campaign: %w", err)
	}

	s.recordActivity(ctx, p, id, "scheduled", scheduled.Name)

	return scheduled, nil
}

func (s *Service) DeleteCampaign(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "campaigns.Service.DeleteCampaign")
	defer span.End()

	if err := s.storage.DeleteCampaign(ctx, p, id); err != nil {
		return err
	}

	s.recordActivity(ctx, p, id, "deleted", "")

	return nil
}

func (s *Service) recordActivity(ctx context.Context, p *tenancy.Principal, campaignID, action, detail string) {
	err := s.storage.RecordActivity(ctx, p, &types.ActivityLog{
		EntityType: "email_campaign",
		EntityID:   campaignID,
		Action:     action,
		Detail:     detail,
	})
	if err != nil {
		s.logger.Errorf("failed to record campaign activity: %v", err)
	}
}
