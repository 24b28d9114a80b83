// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package campaigns

import (
	"encoding/json"
	"net/http"
	"time"

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
	mux.Get("/api/v0/campaigns", a.list)
	mux.Post("/api/v0/campaigns", a.create)
	mux.Get("/api/v0/campaigns/{id}", a.get)
	mux.Patch("/api/v0/campaigns/{id}", a.update)
	mux.Delete("/api/v0/campaigns/{id}", a.delete)
	mux.Post("/api/v0/campaigns/{id}/schedule", a.schedule)
}

type campaignRequest struct {
	Name    string `json:"name" validate:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (r *campaignRequest) toCampaign() *types.EmailCampaign {
	return &types.EmailCampaign{
		Name:    r.Name,
		Subject: r.Subject,
		Body:    r.Body,
	}
}

type scheduleRequest struct {
	At time.Time `json:"at" validate:"required"`
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewCampaigns) {
		httptypes.WriteForbidden(w)
		return
	}

	campaigns, err := a.service.ListCampaigns(r.Context(), p)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, campaigns)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewCampaigns) {
		httptypes.WriteForbidden(w)
		return
	}

	campaign, err := a.service.GetCampaign(r.Context(), p, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, campaign)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditCampaigns) {
		httptypes.WriteForbidden(w)
		return
	}

	var req campaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	created, err := a.service.CreateCampaign(r.Context(), p, req.toCampaign())
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusCreated, created)
}

// update applies the fields present in the request body, PATCH style.
func (a *API) update(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditCampaigns) {
		httptypes.WriteForbidden(w)
		return
	}

	var fields map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}

	var req campaignRequest
	raw, err := json.Marshal(fields)
	if err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}

	campaign := req.toCampaign()
	campaign.ID = chi.URLParam(r, "id")

	paths := make([]string, 0, len(fields))
	for field := range fields {
		paths = append(paths, field)
	}

	updated, err := a.service.UpdateCampaign(r.Context(), p, campaign, paths)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, updated)
}

func (a *API) schedule(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditCampaigns) {
		httptypes.WriteForbidden(w)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	scheduled, err := a.service.ScheduleCampaign(r.Context(), p, chi.URLParam(r, "id"), req.At)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, scheduled)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.EditCampaigns) {
		httptypes.WriteForbidden(w)
		return
	}

	if err := a.service.DeleteCampaign(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteMessage(w, http.StatusOK, "deleted")
}
