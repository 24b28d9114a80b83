// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"encoding/json"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/bluehathi/leadsetu-sub001/internal/authorization"
	httptypes "github.com/bluehathi/leadsetu-sub001/internal/http/types"
	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
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
	mux.Get("/api/v0/leads", a.list)
	mux.Post("/api/v0/leads", a.create)
	mux.Get("/api/v0/leads/stats", a.stats)
	mux.Get("/api/v0/leads/{id}", a.get)
	mux.Patch("/api/v0/leads/{id}", a.update)
	mux.Delete("/api/v0/leads/{id}", a.delete)
	mux.Post("/api/v0/leads/{id}/score", a.rescore)
	mux.Post("/api/v0/leads/{id}/convert", a.convert)
}

type leadRequest struct {
	Name        string            `json:"name" validate:"required"`
	Email       string            `json:"email" validate:"omitempty,email"`
	Phone       string            `json:"phone"`
	CompanyName string            `json:"company_name"`
	Website     string            `json:"website" validate:"omitempty,url"`
	Notes       string            `json:"notes"`
	Status      string            `json:"status"`
	Source      string            `json:"source"`
	OwnerID     string            `json:"owner_id"`
	CompanyID   *string           `json:"company_id"`
	ContactID   *string           `json:"contact_id"`
	Tags        []string          `json:"tags"`
	Properties  map[string]string `json:"properties"`
}

func (r *leadRequest) toLead() *types.Lead {
	return &types.Lead{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		CompanyName: r.CompanyName,
		Website:     r.Website,
		Notes:       r.Notes,
		Status:      r.Status,
		Source:      r.Source,
		OwnerID:     r.OwnerID,
		CompanyID:   r.CompanyID,
		ContactID:   r.ContactID,
		Tags:        r.Tags,
		Properties:  r.Properties,
	}
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewLeads) {
		httptypes.WriteForbidden(w)
		return
	}

	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)

	leads, err := a.service.ListLeads(r.Context(), p, storage.ListLeadsParams{
		Status:        q.Get("status"),
		Source:        q.Get("source"),
		Qualification: q.Get("qualification"),
		OwnerID:       q.Get("owner_id"),
		Page:          page,
		Size:          size,
	})
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, leads)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewLeads) {
		httptypes.WriteForbidden(w)
		return
	}

	lead, err := a.service.GetLead(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, lead)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditLeads) {
		httptypes.WriteForbidden(w)
		return
	}

	var req leadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	created, err := a.service.CreateLead(r.Context(), p, req.toLead())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

// update applies the fields present in the request body, PATCH style.
func (a *API) update(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditLeads) {
		httptypes.WriteForbidden(w)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}

	var req leadRequest
	raw, err := json.Marshal(fields)
	if err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}

	lead := req.toLead()
	lead.ID = chi.URLParam(r, "id")

	paths := make([]string, 0, len(fields))
	for field := range fields {
		paths = append(paths, field)
	}

	updated, err := a.service.UpdateLead(r.Context(), p, lead, paths)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.DeleteLeads) {
		httptypes.WriteForbidden(w)
		return
	}

	if err := a.service.DeleteLead(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteMessage(w, http.StatusOK, "deleted")
}

func (a *API) rescore(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditLeads) {
		httptypes.WriteForbidden(w)
		return
	}

	lead, err := a.service.RescoreLead(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, lead)
}

func (a *API) convert(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditLeads) {
		httptypes.WriteForbidden(w)
		return
	}

	lead, err := a.service.ConvertLead(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, lead)
}

func (a *API) stats(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewLeads) {
		httptypes.WriteForbidden(w)
		return
	}

	stats, err := a.service.LeadStats(r.Context(), p)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, stats)
}
