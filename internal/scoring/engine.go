// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package scoring derives a deterministic quality signal from a lead's
// attributes. Compute is pure; Apply persists the result onto the lead row.
package scoring

import (
	"context"
	"strings"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

// Snapshot is the subset of lead attributes the score is derived from.
type Snapshot struct {
	Email  string
	Phone  string
	Status string
	Notes  string
	Source string
}

// Qualification thresholds.
const (
	hotThreshold  = 70
	warmThreshold = 40
)

// Compute returns the score and qualification tier for a snapshot.
// Every input yields a score in 0..100; there are no error conditions.
func Compute(s Snapshot) (int, types.Qualification) {
	score := 0

	if s.Email != "" {
		score += 20
	}
	if s.Phone != "" {
		score += 20
	}
	if s.Status == types.LeadStatusConverted {
		score += 30
	}
	if s.Notes != "" {
		score += 10
	}
	if strings.EqualFold(s.Source, "referral") {
		score += 20
	}

	return score, qualify(score)
}

func qualify(score int) types.Qualification {
	switch {
	case score >= hotThreshold:
		return types.QualificationHot
	case score >= warmThreshold:
		return types.QualificationWarm
	default:
		return types.QualificationCold
	}
}

// SnapshotOf extracts the scored attributes from a lead.
func SnapshotOf(l *types.Lead) Snapshot {
	return Snapshot{
		Email:  l.Email,
		Phone:  l.Phone,
		Status: l.Status,
		Notes:  l.Notes,
		Source: l.Source,
	}
}

// LeadScoreStore is the storage surface Apply needs.
type LeadScoreStore interface {
	GetLeadByID(ctx context.Context, p *tenancy.Principal, id string) (*types.Lead, error)
	UpdateLeadScore(ctx context.Context, p *tenancy.Principal, id string, score int, q types.Qualification) error
}

type Engine struct {
	storage LeadScoreStore

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewEngine(storage LeadScoreStore, tracer tracing.TracingInterface, logger logging.LoggerInterface) *Engine {
	return &Engine{
		storage: storage,
		tracer:  tracer,
		logger:  logger,
	}
}

// Apply recomputes the lead's score from its current attributes and persists
// it. Idempotent: reapplying without attribute changes rewrites identical
// values. The lead is resolved through the caller's scope, so a
// foreign-workspace id surfaces as not found.
func (e *Engine) Apply(ctx context.Context, p *tenancy.Principal, leadID string) (*types.Lead, error) {
	ctx, span := e.tracer.Start(ctx, "scoring.Engine.Apply")
	defer span.End()

	lead, err := e.storage.GetLeadByID(ctx, p, leadID)
	if err != nil {
		return nil, err
	}

	score, q := Compute(SnapshotOf(lead))
	if err := e.storage.UpdateLeadScore(ctx, p, leadID, score, q); err != nil {
		return nil, err
	}

	lead.Score = score
	lead.Qualification = q
	return lead, nil
}
