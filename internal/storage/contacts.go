// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bluehathi/leadsetu-sub001/internal/db"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

const contactColumns = "id, workspace_id, company_id, name, email, phone, title, created_at"

func scanContact(row sq.RowScanner) (*types.Contact, error) {
	var c types.Contact
	err := row.Scan(&c.ID, &c.WorkspaceID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Title, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateContact")
	defer span.End()

	if !p.Scoped() {
		return nil, ErrNoWorkspace
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert(tableContacts).
		Columns("id", "workspace_id", "company_id", "name", "email", "phone", "title").
		Values(id, p.WorkspaceID, c.CompanyID, c.Name, c.Email, c.Phone, c.Title).
		Suffix("RETURNING " + contactColumns).
		QueryRowContext(ctx)

	created, err := scanContact(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "contact references unknown company")
		}
		return nil, fmt.Errorf("failed to insert contact: %w", err)
	}

	return created, nil
}

func (s *Storage) GetContactByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetContactByID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(contactColumns).
		From(tableContacts).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableContacts).Select(p, query)

	contact, err := scanContact(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return contact, nil
}

func (s *Storage) ListContacts(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListContacts")
	defer span.End()

	pageSize := db.PageSize(size)
	query := s.db.Statement(ctx).
		Select(contactColumns).
		From(tableContacts).
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize))
	query = s.scopes.Scope(tableContacts).Select(p, query)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*types.Contact
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return contacts, nil
}

func (s *Storage) UpdateContact(ctx context.Context, p *tenancy.Principal, c *types.Contact, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateContact")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "name":
			updateMap["name"] = c.Name
		case "email":
			updateMap["email"] = c.Email
		case "phone":
			updateMap["phone"] = c.Phone
		case "title":
			updateMap["title"] = c.Title
		case "company_id":
			updateMap["company_id"] = c.CompanyID
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Update(tableContacts).
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID})
	query = s.scopes.Scope(tableContacts).Update(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

func (s *Storage) DeleteContact(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteContact")
	defer span.End()

	query := s.db.Statement(ctx).
		Delete(tableContacts).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableContacts).Delete(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}
