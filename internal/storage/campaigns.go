// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

const campaignColumns = "id, workspace_id, name, subject, body, status, scheduled_at, created_at"

func scanCampaign(row sq.RowScanner) (*types.EmailCampaign, error) {
	var c types.EmailCampaign
	err := row.Scan(&c.ID, &c.WorkspaceID, &c.Name, &c.Subject, &c.Body, &c.Status, &c.ScheduledAt, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign) (*types.EmailCampaign, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCampaign")
	defer span.End()

	if !p.Scoped() {
		return nil, ErrNoWorkspace
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert(tableCampaigns).
		Columns("id", "workspace_id", "name", "subject", "body", "status").
		Values(id, p.WorkspaceID, c.Name, c.Subject, c.Body, types.CampaignStatusDraft).
		Suffix("RETURNING " + campaignColumns).
		QueryRowContext(ctx)

	created, err := scanCampaign(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert campaign: %w", err)
	}

	return created, nil
}

func (s *Storage) GetCampaignByID(ctx context.Context, p *tenancy.Principal, id string) (*types.EmailCampaign, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCampaignByID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(campaignColumns).
		From(tableCampaigns).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableCampaigns).Select(p, query)

	campaign, err := scanCampaign(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return campaign, nil
}

func (s *Storage) ListCampaigns(ctx context.Context, p *tenancy.Principal) ([]*types.EmailCampaign, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCampaigns")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(campaignColumns).
		From(tableCampaigns).
		OrderBy("created_at DESC")
	query = s.scopes.Scope(tableCampaigns).Select(p, query)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*types.EmailCampaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return campaigns, nil
}

func (s *Storage) UpdateCampaign(ctx context.Context, p *tenancy.Principal, c *types.EmailCampaign, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCampaign")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "name":
			updateMap["name"] = c.Name
		case "subject":
			updateMap["subject"] = c.Subject
		case "body":
			updateMap["body"] = c.Body
		case "status":
			updateMap["status"] = c.Status
		case "scheduled_at":
			updateMap["scheduled_at"] = c.ScheduledAt
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Update(tableCampaigns).
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID})
	query = s.scopes.Scope(tableCampaigns).Update(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update campaign: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

// ScheduleCampaign transitions a draft campaign to scheduled. The status
// predicate keeps the write idempotence-safe: re-scheduling a scheduled or
// sent campaign affects zero rows.
func (s *Storage) ScheduleCampaign(ctx context.Context, p *tenancy.Principal, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.ScheduleCampaign")
	defer span.End()

	query := s.db.Statement(ctx).
		Update(tableCampaigns).
		Set("status", types.CampaignStatusScheduled).
		Set("scheduled_at", at).
		Where(sq.Eq{"id": id, "status": types.CampaignStatusDraft})
	query = s.scopes.Scope(tableCampaigns).Update(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to schedule campaign: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

func (s *Storage) DeleteCampaign(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCampaign")
	defer span.End()

	query := s.db.Statement(ctx).
		Delete(tableCampaigns).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableCampaigns).Delete(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}
