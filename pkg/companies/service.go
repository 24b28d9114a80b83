// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package companies

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

func (s *Service) ListCompanies(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "companies.Service.ListCompanies")
	defer span.End()

	return s.storage.ListCompanies(ctx, p, page, size)
}

func (s *Service) GetCompany(ctx context.Context, p *tenancy.Principal, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "companies.Service.GetCompany")
	defer span.End()

	return s.storage.GetCompanyByID(ctx, p, id)
}

func (s *Service) CreateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "companies.Service.CreateCompany")
	defer span.End()

	created, err := s.storage.CreateCompany(ctx, p, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}

	s.recordActivity(ctx, p, created.ID, "created", created.Name)

	return created, nil
}

func (s *Service) UpdateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company, paths []string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "companies.Service.UpdateCompany")
	defer span.End()

	if err := s.storage.UpdateCompany(ctx, p, c, paths); err != nil {
		return nil, err
	}

	updated, err := s.storage.GetCompanyByID(ctx, p, c.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated company: %w", err)
	}

	s.recordActivity(ctx, p, c.ID, "updated", updated.Name)

	return updated, nil
}

func (s *Service) DeleteCompany(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "companies.Service.DeleteCompany")
	defer span.End()

	if err := s.storage.DeleteCompany(ctx, p, id); err != nil {
		return err
	}

	s.recordActivity(ctx, p, id, "deleted", "")

	return nil
}

func (s *Service) recordActivity(ctx context.Context, p *tenancy.Principal, companyID, action, detail string) {
	err := s.storage.RecordActivity(ctx, p, &types.ActivityLog{
		EntityType: "company",
		EntityID:   companyID,
		Action:     action,
		Detail:     detail,
	})
	if err != nil {
		s.logger.Errorf("failed to record company activity: %v", err)
	}
}
