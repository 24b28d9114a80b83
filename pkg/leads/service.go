// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"
	"fmt"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type Service struct {
	storage      StorageInterface
	scorer       ScorerInterface
	scoreOnWrite bool

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	scorer ScorerInterface,
	scoreOnWrite bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:      storage,
		scorer:       scorer,
		scoreOnWrite: scoreOnWrite,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

func (s *Service) ListLeads(ctx context.Context, p *tenancy.Principal, params storage.ListLeadsParams) ([]*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.ListLeads")
	defer span.End()

	return s.storage.ListLeads(ctx, p, params)
}

func (s *Service) GetLead(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.GetLead")
	defer span.End()

	return s.storage.GetLeadByID(ctx, p, id)
}

func (s *Service) CreateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.CreateLead")
	defer span.End()

	if l.Status == "" {
		l.Status = types.LeadStatusNew
	}
	if l.OwnerID == "" {
		l.OwnerID = p.ID
	}

	created, err := s.storage.CreateLead(ctx, p, l)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	if s.scoreOnWrite {
		scored, err := s.scorer.Apply(ctx, p, created.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to score lead: %w", err)
		}
		created = scored
	}

	s.recordActivity(ctx, p, created.ID, "created", created.Name)

	return created, nil
}

func (s *Service) UpdateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead, paths []string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.UpdateLead")
	defer span.End()

	if err := s.storage.UpdateLead(ctx, p, l, paths); err != nil {
		return nil, err
	}

	var updated *types.Lead
	var err error
	if s.scoreOnWrite {
		updated, err = s.scorer.Apply(ctx, p, l.ID)
	} else {
		updated, err = s.storage.GetLeadByID(ctx, p, l.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get updated lead: %w", err)
	}

	s.recordActivity(ctx, p, l.ID, "updated", updated.Name)

	return updated, nil
}

func (s *Service) DeleteLead(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "leads.Service.DeleteLead")
	defer span.End()

	if err := s.storage.DeleteLead(ctx, p, id); err != nil {
		return err
	}

	s.recordActivity(ctx, p, id, "deleted", "")

	return nil
}

// RescoreLead recomputes score and qualification from the lead's current
// attributes. Explicit: mutations do not trigger it unless score-on-write is
// configured.
func (s *Service) RescoreLead(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.RescoreLead")
	defer span.End()

	return s.scorer.Apply(ctx, p, id)
}

// ConvertLead marks the lead converted and recomputes its score, which picks
// up the conversion bonus.
func (s *Service) ConvertLead(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.ConvertLead")
	defer span.End()

	l := &types.Lead{ID: id, Status: types.LeadStatusConverted}
	if err := s.storage.UpdateLead(ctx, p, l, []string{"status"}); err != nil {
		return nil, err
	}

	converted, err := s.scorer.Apply(ctx, p, id)
	if err != nil {
		return nil, err
	}

	s.recordActivity(ctx, p, id, "converted", converted.Name)

	return converted, nil
}

func (s *Service) LeadStats(ctx context.Context, p *tenancy.Principal) (map[string]int, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.LeadStats")
	defer span.End()

	return s.storage.CountLeadsByStatus(ctx, p)
}

// recordActivity is best effort; a failed audit write is logged, not returned.
func (s *Service) recordActivity(ctx context.Context, p *tenancy.Principal, leadID, action, detail string) {
	err := s.storage.RecordActivity(ctx, p, &types.ActivityLog{
		EntityType: "lead",
		EntityID:   leadID,
		Action:     action,
		Detail:     detail,
	})
	if err != nil {
		s.logger.Errorf("failed to record lead activity: %v", err)
	}
}
