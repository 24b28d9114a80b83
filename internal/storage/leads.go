// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/bluehathi/leadsetu-sub001/internal/db"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

const leadColumns = "id, workspace_id, owner_id, company_id, contact_id, name, email, phone, " +
	"company_name, website, notes, status, source, score, qualification, tags, properties, created_at, updated_at"

// ListLeadsParams are the caller-supplied predicates of a lead list query.
// The workspace predicate is never part of this struct; the tenancy scope
// adds it.
type ListLeadsParams struct {
	Status        string
	Source        string
	Qualification string
	OwnerID       string
	Page          int64
	Size          int64
}

func scanLead(row sq.RowScanner) (*types.Lead, error) {
	var l types.Lead
	var tags, properties []byte

	err := row.Scan(
		&l.ID, &l.WorkspaceID, &l.OwnerID, &l.CompanyID, &l.ContactID,
		&l.Name, &l.Email, &l.Phone, &l.CompanyName, &l.Website, &l.Notes,
		&l.Status, &l.Source, &l.Score, &l.Qualification,
		&tags, &properties, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &l.Tags); err != nil {
			return nil, fmt.Errorf("failed to decode lead tags: %w", err)
		}
	}
	if len(properties) > 0 {
		if err := json.Unmarshal(properties, &l.Properties); err != nil {
			return nil, fmt.Errorf("failed to decode lead properties: %w", err)
		}
	}

	return &l, nil
}

func encodeJSON(v interface{}) ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(v)
}

func (s *Storage) CreateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateLead")
	defer span.End()

	if !p.Scoped() {
		return nil, ErrNoWorkspace
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	tags, err := encodeJSON(l.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lead tags: %w", err)
	}
	properties, err := encodeJSON(l.Properties)
	if err != nil {
		return nil, fmt.Errorf("failed to encode lead properties: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert(tableLeads).
		Columns("id", "workspace_id", "owner_id", "company_id", "contact_id", "name",
			"email", "phone", "company_name", "website", "notes", "status", "source",
			"score", "qualification", "tags", "properties").
		Values(id, p.WorkspaceID, l.OwnerID, l.CompanyID, l.ContactID, l.Name,
			l.Email, l.Phone, l.CompanyName, l.Website, l.Notes, l.Status, l.Source,
			l.Score, l.Qualification, tags, properties).
		Suffix("RETURNING " + leadColumns).
		QueryRowContext(ctx)

	created, err := scanLead(row)
	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "lead references unknown row")
		}
		return nil, fmt.Errorf("failed to insert lead: %w", err)
	}

	return created, nil
}

func (s *Storage) GetLeadByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetLeadByID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(leadColumns).
		From(tableLeads).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableLeads).Select(p, query)

	lead, err := scanLead(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return lead, nil
}

func (s *Storage) ListLeads(ctx context.Context, p *tenancy.Principal, params ListLeadsParams) ([]*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLeads")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(leadColumns).
		From(tableLeads)

	if params.Status != "" {
		query = query.Where(sq.Eq{"status": params.Status})
	}
	if params.Source != "" {
		query = query.Where(sq.Eq{"source": params.Source})
	}
	if params.Qualification != "" {
		query = query.Where(sq.Eq{"qualification": params.Qualification})
	}
	if params.OwnerID != "" {
		query = query.Where(sq.Eq{"owner_id": params.OwnerID})
	}

	pageSize := db.PageSize(params.Size)
	query = query.
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(params.Page, pageSize))

	query = s.scopes.Scope(tableLeads).Select(p, query)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	var leads []*types.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leads, nil
}

// UpdateLead updates the fields named in paths, PATCH style. Score and
// qualification are deliberately absent: only UpdateLeadScore writes them.
func (s *Storage) UpdateLead(ctx context.Context, p *tenancy.Principal, l *types.Lead, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLead")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "name":
			updateMap["name"] = l.Name
		case "email":
			updateMap["email"] = l.Email
		case "phone":
			updateMap["phone"] = l.Phone
		case "company_name":
			updateMap["company_name"] = l.CompanyName
		case "website":
			updateMap["website"] = l.Website
		case "notes":
			updateMap["notes"] = l.Notes
		case "status":
			updateMap["status"] = l.Status
		case "source":
			updateMap["source"] = l.Source
		case "owner_id":
			updateMap["owner_id"] = l.OwnerID
		case "company_id":
			updateMap["company_id"] = l.CompanyID
		case "contact_id":
			updateMap["contact_id"] = l.ContactID
		case "tags":
			tags, err := encodeJSON(l.Tags)
			if err != nil {
				return fmt.Errorf("failed to encode lead tags: %w", err)
			}
			updateMap["tags"] = tags
		case "properties":
			properties, err := encodeJSON(l.Properties)
			if err != nil {
				return fmt.Errorf("failed to encode lead properties: %w", err)
			}
			updateMap["properties"] = properties
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	query := s.db.Statement(ctx).
		Update(tableLeads).
		SetMap(updateMap).
		Where(sq.Eq{"id": l.ID})
	query = s.scopes.Scope(tableLeads).Update(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

// UpdateLeadScore persists the output of the scoring engine.
func (s *Storage) UpdateLeadScore(ctx context.Context, p *tenancy.Principal, id string, score int, q types.Qualification) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateLeadScore")
	defer span.End()

	query := s.db.Statement(ctx).
		Update(tableLeads).
		Set("score", score).
		Set("qualification", q).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableLeads).Update(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update lead score: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

func (s *Storage) DeleteLead(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteLead")
	defer span.End()

	query := s.db.Statement(ctx).
		Delete(tableLeads).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableLeads).Delete(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

// CountLeadsByStatus is an aggregate over the workspace's leads; the scope
// applies to it like any other query.
func (s *Storage) CountLeadsByStatus(ctx context.Context, p *tenancy.Principal) (map[string]int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountLeadsByStatus")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("status", "COUNT(*)").
		From(tableLeads).
		GroupBy("status")
	query = s.scopes.Scope(tableLeads).Select(p, query)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count leads: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("failed to scan lead count: %w", err)
		}
		counts[status] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return counts, nil
}
