// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/bluehathi/leadsetu-sub001/internal/db"
	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

// Tenant-scoped tables. Registered with the tenancy registry once at
// construction; every query against them goes through the registered scope.
const (
	tableLeads        = "leads"
	tableContacts     = "contacts"
	tableCompanies    = "companies"
	tableProspects    = "prospect_lists"
	tableProspectRows = "prospect_list_contacts"
	tableCampaigns    = "email_campaigns"
	tableActivityLogs = "activity_logs"
	tableMailConfigs  = "mail_configurations"
)

type Storage struct {
	db     db.DBClientInterface
	scopes *tenancy.Registry

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c
	s.scopes = tenancy.NewRegistry(logger)

	for _, table := range []string{
		tableLeads,
		tableContacts,
		tableCompanies,
		tableProspects,
		tableProspectRows,
		tableCampaigns,
		tableActivityLogs,
		tableMailConfigs,
	} {
		s.scopes.Register(table)
	}

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

// Scopes exposes the tenancy registry, mainly for tests asserting coverage.
func (s *Storage) Scopes() *tenancy.Registry {
	return s.scopes
}

// isNoRows covers both the database/sql and native pgx no-rows sentinels.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

func (s *Storage) CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkspace")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var created types.Workspace
	err = s.db.Statement(ctx).
		Insert("workspaces").
		Columns("id", "name", "description").
		Values(id, w.Name, w.Description).
		Suffix("RETURNING id, name, description, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Description, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert workspace: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetWorkspaceByID(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkspaceByID")
	defer span.End()

	var w types.Workspace
	err := s.db.Statement(ctx).
		Select("id", "name", "description", "created_at").
		From("workspaces").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&w.ID, &w.Name, &w.Description, &w.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return &w, nil
}

func (s *Storage) ListWorkspaces(ctx context.Context) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkspaces")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "description", "created_at").
		From("workspaces").
		OrderBy("created_at").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []*types.Workspace
	for rows.Next() {
		var w types.Workspace
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, &w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workspaces, nil
}

func (s *Storage) UpdateWorkspace(ctx context.Context, w *types.Workspace, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWorkspace")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = w.Name
		case "description":
			updateMap["description"] = w.Description
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("workspaces").
		SetMap(updateMap).
		Where(sq.Eq{"id": w.ID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update workspace: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

func (s *Storage) DeleteWorkspace(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkspace")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("workspaces").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

// requireRowsAffected maps a zero-row write to ErrNotFound. Combined with the
// tenancy scope this makes a cross-workspace write indistinguishable from a
// write against a nonexistent row.
func requireRowsAffected(n int64, err error) error {
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
