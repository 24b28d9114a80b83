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

const prospectListColumns = "id, workspace_id, name, description, created_at"

func (s *Storage) CreateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList) (*types.ProspectList, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateProspectList")
	defer span.End()

	if !p.Scoped() {
		return nil, ErrNoWorkspace
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	var created types.ProspectList
	err = s.db.Statement(ctx).
		Insert(tableProspects).
		Columns("id", "workspace_id", "name", "description").
		Values(id, p.WorkspaceID, pl.Name, pl.Description).
		Suffix("RETURNING " + prospectListColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.WorkspaceID, &created.Name, &created.Description, &created.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("failed to insert prospect list: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetProspectListByID(ctx context.Context, p *tenancy.Principal, id string) (*types.ProspectList, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetProspectListByID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(prospectListColumns).
		From(tableProspects).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableProspects).Select(p, query)

	var pl types.ProspectList
	err := query.QueryRowContext(ctx).
		Scan(&pl.ID, &pl.WorkspaceID, &pl.Name, &pl.Description, &pl.CreatedAt)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get prospect list: %w", err)
	}

	return &pl, nil
}

func (s *Storage) ListProspectLists(ctx context.Context, p *tenancy.Principal) ([]*types.ProspectList, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProspectLists")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(prospectListColumns).
		From(tableProspects).
		OrderBy("created_at DESC")
	query = s.scopes.Scope(tableProspects).Select(p, query)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prospect lists: %w", err)
	}
	defer rows.Close()

	var lists []*types.ProspectList
	for rows.Next() {
		var pl types.ProspectList
		if err := rows.Scan(&pl.ID, &pl.WorkspaceID, &pl.Name, &pl.Description, &pl.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan prospect list: %w", err)
		}
		lists = append(lists, &pl)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return lists, nil
}

func (s *Storage) UpdateProspectList(ctx context.Context, p *tenancy.Principal, pl *types.ProspectList, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateProspectList")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "name":
			updateMap["name"] = pl.Name
		case "description":
			updateMap["description"] = pl.Description
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Update(tableProspects).
		SetMap(updateMap).
		Where(sq.Eq{"id": pl.ID})
	query = s.scopes.Scope(tableProspects).Update(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update prospect list: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

func (s *Storage) DeleteProspectList(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteProspectList")
	defer span.End()

	query := s.db.Statement(ctx).
		Delete(tableProspects).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableProspects).Delete(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete prospect list: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

// AddProspectListContact attaches a contact to a list. Both rows are resolved
// through the caller's scope first, so a cross-workspace list or contact id
// reads as not found.
func (s *Storage) AddProspectListContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.AddProspectListContact")
	defer span.End()

	if !p.Scoped() {
		return ErrNoWorkspace
	}

	if _, err := s.GetProspectListByID(ctx, p, listID); err != nil {
		return err
	}
	if _, err := s.GetContactByID(ctx, p, contactID); err != nil {
		return err
	}

	id, err := newID()
	if err != nil {
		return err
	}

	_, err = s.db.Statement(ctx).
		Insert(tableProspectRows).
		Columns("id", "workspace_id", "prospect_list_id", "contact_id").
		Values(id, p.WorkspaceID, listID, contactID).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to add contact to prospect list: %w", err)
	}

	return nil
}

func (s *Storage) RemoveProspectListContact(ctx context.Context, p *tenancy.Principal, listID, contactID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RemoveProspectListContact")
	defer span.End()

	query := s.db.Statement(ctx).
		Delete(tableProspectRows).
		Where(sq.Eq{
			"prospect_list_id": listID,
			"contact_id":       contactID,
		})
	query = s.scopes.Scope(tableProspectRows).Delete(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to remove contact from prospect list: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

func (s *Storage) ListProspectListContacts(ctx context.Context, p *tenancy.Principal, listID string) ([]*types.Contact, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListProspectListContacts")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("c.id", "c.workspace_id", "c.company_id", "c.name", "c.email", "c.phone", "c.title", "c.created_at").
		From(tableContacts + " c").
		Join(tableProspectRows + " plc ON c.id = plc.contact_id").
		Where(sq.Eq{"plc.prospect_list_id": listID})
	query = s.scopes.Scope(tableContacts).SelectQualified(p, "c", query)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prospect list contacts: %w", err)
	}
	defer rows.Close()

	var contacts []*types.Contact
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(&c.ID, &c.WorkspaceID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Title, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return contacts, nil
}
