// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	"github.com/bluehathi/leadsetu-sub001/internal/db"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

const activityColumns = "id, workspace_id, user_id, entity_type, entity_id, action, detail, created_at"

// RecordActivity appends an audit row. Best effort from the caller's point of
// view: services log and continue if this fails, the request does not.
func (s *Storage) RecordActivity(ctx context.Context, p *tenancy.Principal, a *types.ActivityLog) error {
	ctx, span := s.tracer.Start(ctx, "storage.RecordActivity")
	defer span.End()

	if !p.Scoped() {
		return ErrNoWorkspace
	}

	id, err := newID()
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert(tableActivityLogs).
		Columns("id", "workspace_id", "user_id", "entity_type", "entity_id", "action", "detail").
		Values(id, p.WorkspaceID, p.ID, a.EntityType, a.EntityID, a.Action, a.Detail).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to record activity: %w", err)
	}

	return nil
}

func (s *Storage) ListActivities(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.ActivityLog, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivities")
	defer span.End()

	pageSize := db.PageSize(size)
	query := s.db.Statement(ctx).
		Select(activityColumns).
		From(tableActivityLogs).
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize))
	query = s.scopes.Scope(tableActivityLogs).Select(p, query)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*types.ActivityLog
	for rows.Next() {
		var a types.ActivityLog
		if err := rows.Scan(&a.ID, &a.WorkspaceID, &a.UserID, &a.EntityType, &a.EntityID, &a.Action, &a.Detail, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activities, nil
}
