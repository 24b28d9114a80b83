// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package companies

import (
	"encoding/json"
	"net/http"
	"strconv"

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
	mux.Get("/api/v0/companies", a.list)
	mux.Post("/api/v0/companies", a.create)
	mux.Get("/api/v0/companies/{id}", a.get)
	mux.Patch("/api/v0/companies/{id}", a.update)
	mux.Delete("/api/v0/companies/{id}", a.delete)
}

type companyRequest struct {
	Name     string `json:"name" validate:"required"`
	Website  string `json:"website" validate:"omitempty,url"`
	Industry string `json:"industry"`
}

func (r *companyRequest) toCompany() *types.Company {
	return &types.Company{
		Name:     r.Name,
		Website:  r.Website,
		Industry: r.Industry,
	}
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewCompanies) {
		httptypes.WriteForbidden(w)
		return
	}

	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)

	companies, err := a.service.ListCompanies(r.Context(), p, page, size)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, companies)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewCompanies) {
		httptypes.WriteForbidden(w)
		return
	}

	company, err := a.service.GetCompany(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, company)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditCompanies) {
		httptypes.WriteForbidden(w)
		return
	}

	var req companyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	created, err := a.service.CreateCompany(r.Context(), p, req.toCompany())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

// update applies the fields present in the request body, PATCH style.
func (a *API) update(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditCompanies) {
		httptypes.WriteForbidden(w)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}

	var req companyRequest
	raw, err := json.Marshal(fields)
	if err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}

	company := req.toCompany()
	company.ID = chi.URLParam(r, "id")

	paths := make([]string, 0, len(fields))
	for field := range fields {
		paths = append(paths, field)
	}

	updated, err := a.service.UpdateCompany(r.Context(), p, company, paths)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditCompanies) {
		httptypes.WriteForbidden(w)
		return
	}

	if err := a.service.DeleteCompany(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteMessage(w, http.StatusOK, "deleted")
}
