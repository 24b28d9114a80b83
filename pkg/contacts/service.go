// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contacts

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

func (s *Service) ListContacts(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.ListContacts")
	defer span.End()

	return s.storage.ListContacts(ctx, p, page, size)
}

func (s *Service) GetContact(ctx context.Context, p *tenancy.Principal, id string) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.GetContact")
	defer span.End()

	return s.storage.GetContactByID(ctx, p, id)
}

func (s *Service) CreateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.CreateContact")
	defer span.End()

	created, err := s.storage.CreateContact(ctx, p, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.recordActivity(ctx, p, created.ID, "created", created.Name)

	return created, nil
}

func (s *Service) UpdateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact, paths []string) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.UpdateContact")
	defer span.End()

	if err := s.storage.UpdateContact(ctx, p, c, paths); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetContactByID(ctx, p, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated contact: %w", err)
	}

	s.recordActivity(ctx, p, c.ID, "updated", updated.Name)

	return updated, nil
}

func (s *Service) DeleteContact(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "contacts.Service.DeleteContact")
	defer span.End()

	if err := s.storage.DeleteContact(ctx, p, id); err != nil {
		return err
	}

	s.recordActivity(ctx, p, id, "deleted", "")

	return nil
}

func (s *Service) recordActivity(ctx context.Context, p *tenancy.Principal, contactID, action, detail string) {
	err := s.storage.RecordActivity(ctx, p, &types.ActivityLog{
		EntityType: "contact",
		EntityID:   contactID,
		Action:     action,
		Detail:     detail,
	})
	if err != nil {
		s.logger.Errorf("failed to record contact activity: %v", err)
	}
}
