// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var created types.User
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("id", "name", "email", "workspace_id").
		Values(id, u.Name, u.Email, u.WorkspaceID).
		Suffix("RETURNING id, name, email, workspace_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Email, &created.WorkspaceID, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByID")
	defer span.End()

	var u types.User
	err := s.db.Statement(ctx).
		Select("id", "name", "email", "workspace_id", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.Name, &u.Email, &u.WorkspaceID, &u.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &u, nil
}

// GetPrincipalByUserID resolves the principal for an authenticated user id:
// the user's workspace plus the union of permissions granted through roles.
func (s *Storage) GetPrincipalByUserID(ctx context.Context, userID string) (*tenancy.Principal, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPrincipalByUserID")
	defer span.End()

	u, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Statement(ctx).
		Select("p.name").
		From("permissions p").
		Join("role_permissions rp ON p.id = rp.permission_id").
		Join("user_roles ur ON rp.role_id = ur.role_id").
		Where(sq.Eq{"ur.user_id": userID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list permissions: %w", err)
	}
	defer rows.Close()

	var permissions []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan permission: %w", err)
		}
		permissions = append(permissions, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return &tenancy.Principal{
		ID:          u.ID,
		WorkspaceID: u.WorkspaceID,
		Permissions: permissions,
	}, nil
}

func (s *Storage) AssignRole(ctx context.Context, userID, roleName string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AssignRole")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("user_roles").
		Columns("user_id", "role_id").
		Select(
			sq.Select().
				Column(sq.Expr("?", userID)).
				Column("id").
				From("roles").
				Where(sq.Eq{"name": roleName}),
		).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}
