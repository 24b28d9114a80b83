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

const companyColumns = "id, workspace_id, name, website, industry, created_at"

func scanCompany(row sq.RowScanner) (*types.Company, error) {
	var c types.Company
	err := row.Scan(&c.ID, &c.WorkspaceID, &c.Name, &c.Website, &c.Industry, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCompany")
	defer span.End()

	if !p.Scoped() {
		return nil, ErrNoWorkspace
	}

	id, err := newID()
	if err != nil {
		return nil, err
	}

	row := s.db.Statement(ctx).
		Insert(tableCompanies).
		Columns("id", "workspace_id", "name", "website", "industry").
		Values(id, p.WorkspaceID, c.Name, c.Website, c.Industry).
		Suffix("RETURNING " + companyColumns).
		QueryRowContext(ctx)

	created, err := scanCompany(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "company name already exists in workspace")
		}
		return nil, fmt.Errorf("failed to insert company: %w", err)
	}

	return created, nil
}

func (s *Storage) GetCompanyByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(companyColumns).
		From(tableCompanies).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableCompanies).Select(p, query)

	company, err := scanCompany(query.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return company, nil
}

func (s *Storage) ListCompanies(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompanies")
	defer span.End()

	pageSize := db.PageSize(size)
	query := s.db.Statement(ctx).
		Select(companyColumns).
		From(tableCompanies).
		OrderBy("created_at DESC").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize))
	query = s.scopes.Scope(tableCompanies).Select(p, query)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*types.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, nil
}

func (s *Storage) UpdateCompany(ctx context.Context, p *tenancy.Principal, c *types.Company, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCompany")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, path := range paths {
		switch path {
		case "name":
			updateMap["name"] = c.Name
		case "website":
			updateMap["website"] = c.Website
		case "industry":
			updateMap["industry"] = c.Industry
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	query := s.db.Statement(ctx).
		Update(tableCompanies).
		SetMap(updateMap).
		Where(sq.Eq{"id": c.ID})
	query = s.scopes.Scope(tableCompanies).Update(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update company: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}

func (s *Storage) DeleteCompany(ctx context.Context, p *tenancy.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCompany")
	defer span.End()

	query := s.db.Statement(ctx).
		Delete(tableCompanies).
		Where(sq.Eq{"id": id})
	query = s.scopes.Scope(tableCompanies).Delete(p, query)

	res, err := query.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	return requireRowsAffected(res.RowsAffected())
}
