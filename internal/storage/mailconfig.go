// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

const mailConfigColumns = "id, workspace_id, from_name, from_email, host, port, username, encryption, created_at"

// GetMailConfiguration returns the workspace's outbound mail settings.
// There is at most one row per workspace.
func (s *Storage) GetMailConfiguration(ctx context.Context, p *tenancy.Principal) (*types.MailConfiguration, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMailConfiguration")
	defer span.End()

	if !p.Scoped() {
		return nil, ErrNoWorkspace
	}

	query := s.db.Statement(ctx).
		Select(mailConfigColumns).
		From(tableMailConfigs)
	query = s.scopes.Scope(tableMailConfigs).Select(p, query)

	var m types.MailConfiguration
	err := query.QueryRowContext(ctx).
		Scan(&m.ID, &m.WorkspaceID, &m.FromName, &m.FromEmail, &m.Host, &m.Port, &m.Username, &m.Encryption, &m.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get mail configuration: %w", err)
	}

	return &m, nil
}

// UpsertMailConfiguration creates or replaces the workspace's mail settings.
func (s *Storage) UpsertMailConfiguration(ctx context.Context, p *tenancy.Principal, m *types.MailConfiguration) (*types.MailConfiguration, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertMailConfiguration")
	defer span.End()

	if !p.Scoped() {
		return nil, ErrNoWorkspace
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var saved types.MailConfiguration
	err = s.db.Statement(ctx).
		Insert(tableMailConfigs).
		Columns("id", "workspace_id", "from_name", "from_email", "host", "port", "username", "encryption").
		Values(id, p.WorkspaceID, m.FromName, m.FromEmail, m.Host, m.Port, m.Username, m.Encryption).
		Suffix("ON CONFLICT (workspace_id) DO UPDATE SET from_name = EXCLUDED.from_name, " +
			"from_email = EXCLUDED.from_email, host = EXCLUDED.host, port = EXCLUDED.port, " +
			"username = EXCLUDED.username, encryption = EXCLUDED.encryption " +
			"RETURNING " + mailConfigColumns).
		QueryRowContext(ctx).
		Scan(&saved.ID, &saved.WorkspaceID, &saved.FromName, &saved.FromEmail, &saved.Host, &saved.Port, &saved.Username, &saved.Encryption, &saved.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to upsert mail configuration: %w", err)
	}

	return &saved, nil
}
