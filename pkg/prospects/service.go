// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prospects

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

func (s *Service) ListProspectLists(ctx context.Context, p *tenancy.Principal) ([]*types.ProspectList, error) {
	ctx, span := s.tracer.Start(ctx, "prospects.Service.ListProspectLists")
	defer span.End()

	return s.storage.ListProspectLists(ctx, p)
}

func (s *Service) GetProspectList(ctx context.Context, p *tenancy.Principal, id string) (*types.ProspectList, error) {
	ctx, span := s.tracer.Start(ctx, "prospects.Service.GetProspectList")
	defer span.End()

	return s.storage.GetProspectListByID(ctx, p, id)
}

func (s *Service) CreateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList) (*types.ProspectList, error) {
	ctx, span := s.tracer.Start(ctx, "prospects.Service.CreateProspectList")
	defer span.End()

	created, err := s.storage.CreateProspectList(ctx, p, pl)
	if err != nil {
		return nil, fmt.Errorf("failed to create prospect list: %w", err)
	}

	return created, nil
}

func (s *Service) UpdateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList, paths []string) (*types.ProspectList, error) {
	ctx, span := s.tracer.Start(ctx, "prospects.Service.UpdateProspectList")
	defer span.End()

	if err := s.storage.UpdateProspectList(ctx, p, pl, paths); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetProspectListByID(ctx, p, pl.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated prospect list: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteProspectList(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "prospects.Service.DeleteProspectList")
	defer span.End()

	return s.storage.DeleteProspectList(ctx, p, id)
}

// AddContact links a contact to a list. Both must belong to the caller's
// workspace, anything else reads as not found.
func (s *Service) AddContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error {
	ctx, span := s.tracer.Start(ctx, "prospects.Service.AddContact")
	defer span.End()

	return s.storage.AddProspectListContact(ctx, p, listID, contactID)
}

func (s *Service) RemoveContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error {
	ctx, span := s.tracer.Start(ctx, "prospects.Service.RemoveContact")
	defer span.End()

	return s.storage.RemoveProspectListContact(ctx, p, listID, contactID)
}

func (s *Service) ListContacts(ctx context.Context, p *tenancy.Principal, listID string) ([]*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "prospects.Service.ListContacts")
	defer span.End()

	// 404 for a list outside the caller's workspace, not an empty slice.
	if _, err := s.storage.GetProspectListByID(ctx, p, listID); err != nil {
		return nil, err
	}

	return s.storage.ListProspectListContacts(ctx, p, listID)
}
