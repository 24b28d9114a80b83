// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package contacts

import (
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

//go:generate mockgen -build_flags=--mod=mod -package contacts -destination ./mock_contacts.go -source=./interfaces.go

func testPrincipal() *tenancy.Principal {
	return &tenancy.Principal{ID: "user-1", WorkspaceID: "ws-1"}
}

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

func newTestMux(service ServiceInterface, authz AuthorizerInterface) *chi.Mux {
	mux := chi.NewMux()
	NewAPI(service, authz, logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func TestHandlerCreateContact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.EditContacts).Return(true)
	mockService.EXPECT().CreateContact(gomock.Any(), p, gomock.Any()).Return(
		&types.Contact{ID: "contact-1", Name: "Jo", Email: "jo@acme.test"}, nil,
	)

	rr := httptest.NewRecorder()
	newTestMux(mockService, mockAuthz).ServeHTTP(rr, newTestRequest(
		http.MethodPost, "/api/v0/contacts", `{"name":"Jo","email":"jo@acme.test"}`, p,
	))

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestHandlerCreateContactMissingName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.EditContacts).Return(true)

	rr := httptest.NewRecorder()
	newTestMux(mockService, mockAuthz).ServeHTTP(rr, newTestRequest(
		http.MethodPost, "/api/v0/contacts", `{"email":"jo@acme.test"}`, p,
	))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestHandlerGetContactOtherTenantIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.ViewContacts).Return(true)
	mockService.EXPECT().GetContact(gomock.Any(), p, "foreign-contact").Return(nil, storage.ErrNotFound)

	rr := httptest.NewRecorder()
	newTestMux(mockService, mockAuthz).ServeHTTP(rr, newTestRequest(
		http.MethodGet, "/api/v0/contacts/foreign-contact", "", p,
	))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestHandlerListContactsForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.ViewContacts).Return(false)

	rr := httptest.NewRecorder()
	newTestMux(mockService, mockAuthz).ServeHTTP(rr, newTestRequest(http.MethodGet, "/api/v0/contacts", "", p))

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rr.Code)
	}
}

func TestHandlerUpdateContactDerivedPaths(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockServiceInterface(ctrl)
	mockAuthz := NewMockAuthorizerInterface(ctrl)

	p := testPrincipal()

	mockAuthz.EXPECT().Check(gomock.Any(), p, authorization.EditContacts).Return(true)
	mockService.EXPECT().UpdateContact(gomock.Any(), p, gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ any, _ *tenancy.Principal, c *types.Contact, paths []string) (*types.Contact, error) {
			if c.ID != "contact-1" {
				t.Errorf("expected contact id from url, got %q", c.ID)
			}
			if len(paths) != 1 || paths[0] != "title" {
				t.Errorf("expected paths [title], got %v", paths)
			}
			return &types.Contact{ID: "contact-1", Title: c.Title}, nil
		},
	)

	rr := httptest.NewRecorder()
	newTestMux(mockService, mockAuthz).ServeHTTP(rr, newTestRequest(
		http.MethodPatch, "/api/v0/contacts/contact-1", `{"title":"CTO"}`, p,
	))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
}
