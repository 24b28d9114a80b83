// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prospects

import (
	"encoding/json"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bluehathi/leadsetu-sub001/internal/authorization"
	httptypes "github.com/bluehathi/leadsetu-sub001/internal/http/types"
	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

type API struct {
	service ServiceInterface
	authz   AuthorizerInterface

	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(service ServiceInterface, authz AuthorizerInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		authz:    authz,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/prospect-lists", a.list)
	mux.Post("/api/v0/prospect-lists", a.create)
	mux.Get("/api/v0/prospect-lists/{id}", a.get)
	mux.Patch("/api/v0/prospect-lists/{id}", a.update)
	mux.Delete("/api/v0/prospect-lists/{id}", a.delete)
	mux.Get("/api/v0/prospect-lists/{id}/contacts", a.listContacts)
	mux.Post("/api/v0/prospect-lists/{id}/contacts", a.addContact)
	mux.Delete("/api/v0/prospect-lists/{id}/contacts/{contactID}", a.removeContact)
}

type prospectListRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func (r *prospectListRequest) toProspectList() *types.ProspectList {
	return &types.ProspectList{
		Name:        r.Name,
		Description: r.Description,
	}
}

type addContactRequest struct {
	ContactID string `json:"contact_id" validate:"required"`
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewProspects) {
		httptypes.WriteForbidden(w)
		return
	}

	lists, err := a.service.ListProspectLists(r.Context(), p)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, lists)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewProspects) {
		httptypes.WriteForbidden(w)
		return
	}

	list, err := a.service.GetProspectList(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, list)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditProspects) {
		httptypes.WriteForbidden(w)
		return
	}

	var req prospectListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	created, err := a.service.CreateProspectList(r.Context(), p, req.toProspectList())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

// update applies the fields present in the request body, PATCH style.
func (a *API) update(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditProspects) {
		httptypes.WriteForbidden(w)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}

	var req prospectListRequest
	raw, err := json.Marshal(fields)
	if err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}

	list := req.toProspectList()
	list.ID = chi.URLParam(r, "id")

	paths := make([]string, 0, len(fields))
	for field := range fields {
		paths = append(paths, field)
	}

	updated, err := a.service.UpdateProspectList(r.Context(), p, list, paths)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditProspects) {
		httptypes.WriteForbidden(w)
		return
	}

	if err := a.service.DeleteProspectList(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteMessage(w, http.StatusOK, "deleted")
}

func (a *API) listContacts(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewProspects) {
		httptypes.WriteForbidden(w)
		return
	}

	contacts, err := a.service.ListContacts(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, contacts)
}

func (a *API) addContact(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditProspects) {
		httptypes.WriteForbidden(w)
		return
	}

	var req addContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	if err := a.service.AddContact(r.Context(), p, chi.URLParam(r, "id"), req.ContactID); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteMessage(w, http.StatusCreated, "added")
}

func (a *API) removeContact(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditProspects) {
		httptypes.WriteForbidden(w)
		return
	}

	err := a.service.RemoveContact(r.Context(), p, chi.URLParam(r, "id"), chi.URLParam(r, "contactID"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteMessage(w, http.StatusOK, "removed")
}
