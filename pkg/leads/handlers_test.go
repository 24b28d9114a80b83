// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/bluehathi/leadsetu-sub001/internal/authorization"
	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

func newTestRequest(method, target, body string, p *tenancy.Principal) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if p != nil {
		req = req.WithContext(tenancy.WithPrincipal(req.Context(), p))
	}
	return req
}

func TestHandlerGetLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.ViewLeads).Return(true)
	mockService.EXPECT().GetLead(gomock.Any(), p, "lead-1").Return(
		&types.Lead{ID: "lead-1", Name: "Acme intro", Score: 40, Qualification: types.QualificationWarm}, nil,
	)

	mux := chi.NewMux()
	NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, newTestRequest(http.MethodGet, "/api/v0/leads/lead-1", "", p))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Data types.Lead `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.Qualification != types.QualificationWarm {
		t.Errorf("expected warm lead, got %q", resp.Data.Qualification)
	}
}

func TestHandlerGetLeadOtherTenantIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.ViewLeads).Return(true)
	mockService.EXPECT().GetLead(gomock.Any(), p, "foreign-lead").Return(nil, storage.ErrNotFound)

	mux := chi.NewMux()
	NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, newTestRequest(http.MethodGet, "/api/v0/leads/foreign-lead", "", p))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestHandlerForbidden(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		target     string
		permission string
	}{
		{name: "list", method: http.MethodGet, target: "/api/v0/leads", permission: authorization.ViewLeads},
		{name: "create", method: http.MethodPost, target: "/api/v0/leads", permission: authorization.EditLeads},
		{name: "delete", method: http.MethodDelete, target: "/api/v0/leads/lead-1", permission: authorization.DeleteLeads},
		{name: "rescore", method: http.MethodPost, target: "/api/v0/leads/lead-1/score", permission: authorization.EditLeads},
		{name: "convert", method: http.MethodPost, target: "/api/v0/leads/lead-1/convert", permission: authorization.EditLeads},
		{name: "stats", method: http.MethodGet, target: "/api/v0/leads/stats", permission: authorization.ViewLeads},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)

			p := testPrincipal()

			mockAuthz.EXPECT().Check(gomock.Any(), p, test.permission).Return(false)

			mux := chi.NewMux()
			NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, newTestRequest(test.method, test.target, "", p))

			if rr.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d", rr.Code)
			}
		})
	}
}

func TestHandlerCreateLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.EditLeads).Return(true)
	mockService.EXPECT().CreateLead(gomock.Any(), p, gomock.Any()).Return(
		&types.Lead{ID: "lead-1", Name: "Acme intro", Score: 40, Qualification: types.QualificationWarm}, nil,
	)

	mux := chi.NewMux()
	NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

	rr := httptest.NewRecorder()
	body := `{"name":"Acme intro","email":"jo@acme.test","phone":"555"}`
	mux.ServeHTTP(rr, newTestRequest(http.MethodPost, "/api/v0/leads", body, p))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandlerCreateLeadValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing name", body: `{"email":"jo@acme.test"}`},
		{name: "bad email", body: `{"name":"Acme intro","email":"not-an-email"}`},
		{name: "bad website", body: `{"name":"Acme intro","website":"::::"}`},
		{name: "malformed json", body: `{"name":`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockAuthz := NewMockAuthorizerInterface(ctrl)

			p := testPrincipal()

			mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.EditLeads).Return(true)

			mux := chi.NewMux()
			NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, newTestRequest(http.MethodPost, "/api/v0/leads", test.body, p))

			if rr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rr.Code)
			}
		})
	}
}

func TestHandlerUpdateLeadDerivedPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.EditLeads).Return(true)
	mockService.EXPECT().UpdateLead(gomock.Any(), p, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, _ *tenancy.Principal, l *types.Lead, paths []string) (*types.Lead, error) {
			if l.ID != "lead-1" {
				t.Errorf("expected lead id from url, got %q", l.ID)
			}
			got := map[string]bool{}
			for _, path := range paths {
				got[path] = true
			}
			if len(paths) != 2 || !got["phone"] || !got["notes"] {
				t.Errorf("expected paths derived from body fields, got %v", paths)
			}
			return &types.Lead{ID: "lead-1", Phone: l.Phone, Notes: l.Notes}, nil
		},
	)

	mux := chi.NewMux()
	NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

	rr := httptest.NewRecorder()
	body := `{"phone":"555","notes":"followed up"}`
	mux.ServeHTTP(rr, newTestRequest(http.MethodPatch, "/api/v0/leads/lead-1", body, p))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandlerConvertLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.EditLeads).Return(true)
	mockService.EXPECT().ConvertLead(gomock.Any(), p, "lead-1").Return(
		&types.Lead{ID: "lead-1", Status: types.LeadStatusConverted, Score: 70, Qualification: types.QualificationHot}, nil,
	)

	mux := chi.NewMux()
	NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, newTestRequest(http.MethodPost, "/api/v0/leads/lead-1/convert", "", p))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestHandlerStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.ViewLeads).Return(true)
	mockService.EXPECT().LeadStats(gomock.Any(), p).Return(map[string]int{types.LeadStatusNew: 2}, nil)

	mux := chi.NewMux()
	NewAPI(mockService, mockAuthz, logging.NewNoopLogger()).RegisterEndpoints(mux)

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, newTestRequest(http.MethodGet, "/api/v0/leads/stats", "", p))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
