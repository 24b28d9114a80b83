// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	httptypes "github.com/bluehathi/leadsetu-sub001/internal/http/types"
	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
)

type stubResolver struct {
	principal *tenancy.Principal
	err       error
}

func (s *stubResolver) GetPrincipalByUserID(_ context.Context, _ string) (*tenancy.Principal, error) {
	return s.principal, s.err
}

func newTestMiddleware(resolver PrincipalResolverInterface) *Middleware {
	return NewMiddleware(resolver, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
}

func TestHTTPMiddlewareResolvesPrincipal(t *testing.T) {
	m := newTestMiddleware(&stubResolver{
		principal: &tenancy.Principal{ID: "user-1", WorkspaceID: "ws-1"},
	})

	var seen *tenancy.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = tenancy.PrincipalFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/leads", nil)
	req.Header.Set(HeaderName, "user-1")

	m.HTTPMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil || seen.WorkspaceID != "ws-1" {
		t.Fatalf("expected principal in context, got %+v", seen)
	}
}

func TestHTTPMiddlewareNoHeaderPassesThrough(t *testing.T) {
	m := newTestMiddleware(&stubResolver{err: errors.New("must not be called")})

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if p, ok := tenancy.PrincipalFromContext(r.Context()); ok {
			t.Errorf("expected no principal, got %+v", p)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v0/status", nil)

	m.HTTPMiddleware(next).ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Fatal("expected next handler to run")
	}
}

// Resolution failures must write the JSON envelope, not a plain-text body.
func TestHTTPMiddlewareErrorsUseEnvelope(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unknown user", storage.ErrNotFound, http.StatusUnauthorized},
		{"resolver failure", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMiddleware(&stubResolver{err: tt.err})

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("expected next handler not to run")
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v0/leads", nil)
			req.Header.Set(HeaderName, "user-1")
			rec := httptest.NewRecorder()

			m.HTTPMiddleware(next).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("expected application/json, got %q", ct)
			}

			var resp httptypes.Response
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("expected envelope body, got decode error: %v", err)
			}
			if resp.Status != tt.wantStatus || resp.Message == "" {
				t.Errorf("unexpected envelope: %+v", resp)
			}
		})
	}
}
