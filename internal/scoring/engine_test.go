// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

func TestCompute(t *testing.T) {
	testCases := []struct {
		name      string
		snapshot  Snapshot
		wantScore int
		wantQual  types.Qualification
	}{
		{
			name:      "email only",
			snapshot:  Snapshot{Email: "a@b.com", Status: "new", Source: "Website"},
			wantScore: 20,
			wantQual:  types.QualificationCold,
		},
		{
			name:      "all signals",
			snapshot:  Snapshot{Email: "a@b.com", Phone: "123", Status: "converted", Notes: "x", Source: "Referral"},
			wantScore: 100,
			wantQual:  types.QualificationHot,
		},
		{
			name:      "empty lead",
			snapshot:  Snapshot{},
			wantScore: 0,
			wantQual:  types.QualificationCold,
		},
		{
			name:      "exactly warm threshold",
			snapshot:  Snapshot{Email: "a@b.com", Phone: "123"},
			wantScore: 40,
			wantQual:  types.QualificationWarm,
		},
		{
			name:      "exactly hot threshold",
			snapshot:  Snapshot{Email: "a@b.com", Phone: "123", Status: "converted"},
			wantScore: 70,
			wantQual:  types.QualificationHot,
		},
		{
			name:      "just below warm",
			snapshot:  Snapshot{Email: "a@b.com", Notes: "x"},
			wantScore: 30,
			wantQual:  types.QualificationCold,
		},
		{
			name:      "just below hot",
			snapshot:  Snapshot{Email: "a@b.com", Phone: "123", Source: "referral"},
			wantScore: 60,
			wantQual:  types.QualificationWarm,
		},
		{
			name:      "source match is case-insensitive",
			snapshot:  Snapshot{Source: "REFERRAL"},
			wantScore: 20,
			wantQual:  types.QualificationCold,
		},
		{
			name:      "status match is exact",
			snapshot:  Snapshot{Status: "Converted"},
			wantScore: 0,
			wantQual:  types.QualificationCold,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			score, q := Compute(tc.snapshot)
			if score != tc.wantScore {
				t.Errorf("score = %d, want %d", score, tc.wantScore)
			}
			if q != tc.wantQual {
				t.Errorf("qualification = %s, want %s", q, tc.wantQual)
			}
		})
	}
}

func TestCompute_Deterministic(t *testing.T) {
	s := Snapshot{Email: "a@b.com", Phone: "123", Status: "new", Source: "referral"}

	first, fq := Compute(s)
	second, sq := Compute(s)
	if first != second || fq != sq {
		t.Errorf("compute not deterministic: (%d,%s) vs (%d,%s)", first, fq, second, sq)
	}
}

// fakeStore records score writes so idempotence can be asserted without a
// database.
type fakeStore struct {
	lead   *types.Lead
	err    error
	writes []int
}

func (f *fakeStore) GetLeadByID(_ context.Context, _ *tenancy.Principal, _ string) (*types.Lead, error) {
	if f.err != nil {
		return nil, f.err
	}
	l := *f.lead
	return &l, nil
}

func (f *fakeStore) UpdateLeadScore(_ context.Context, _ *tenancy.Principal, _ string, score int, q types.Qualification) error {
	f.writes = append(f.writes, score)
	f.lead.Score = score
	f.lead.Qualification = q
	return nil
}

func TestEngine_Apply(t *testing.T) {
	p := &tenancy.Principal{ID: "user-1", WorkspaceID: "ws-1"}
	store := &fakeStore{
		lead: &types.Lead{
			ID:     "lead-1",
			Email:  "a@b.com",
			Phone:  "123",
			Status: "converted",
			Notes:  "x",
			Source: "Referral",
		},
	}

	e := NewEngine(store, tracing.NewNoopTracer(), logging.NewNoopLogger())

	lead, err := e.Apply(context.Background(), p, "lead-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.Score != 100 || lead.Qualification != types.QualificationHot {
		t.Errorf("got (%d, %s), want (100, Hot)", lead.Score, lead.Qualification)
	}

	// Second application with no attribute change must yield the same values.
	lead, err = e.Apply(context.Background(), p, "lead-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lead.Score != 100 || lead.Qualification != types.QualificationHot {
		t.Errorf("idempotent reapply changed result: (%d, %s)", lead.Score, lead.Qualification)
	}
	if len(store.writes) != 2 || store.writes[0] != store.writes[1] {
		t.Errorf("expected two identical writes, got %v", store.writes)
	}
}

func TestEngine_Apply_NotFound(t *testing.T) {
	store := &fakeStore{err: storage.ErrNotFound}
	e := NewEngine(store, tracing.NewNoopTracer(), logging.NewNoopLogger())

	_, err := e.Apply(context.Background(), &tenancy.Principal{ID: "u", WorkspaceID: "ws"}, "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
