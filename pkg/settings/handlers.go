// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package settings serves per-workspace configuration, currently the outbound
// mail settings consumed by the campaign dispatch worker.
package settings

import (
	"context"
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

// StorageInterface is the storage surface this feature consumes.
type StorageInterface interface {
	GetMailConfiguration(ctx context.Context, p *tenancy.Principal) (*types.MailConfiguration, error)
	UpsertMailConfiguration(ctx context.Context, p *tenancy.Principal, m *types.MailConfiguration) (*types.MailConfiguration, error)
}

type AuthorizerInterface interface {
	Check(ctx context.Context, p *tenancy.Principal, permission string) bool
}

type API struct {
	storage StorageInterface
	authz   AuthorizerInterface

	validate *validator.Validate
	logger   logging.LoggerInterface
}

func NewAPI(storage StorageInterface, authz AuthorizerInterface, logger logging.LoggerInterface) *API {
	return &API{
		storage:  storage,
		authz:    authz,
		validate: validator.New(),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/settings/mail", a.getMail)
	mux.Put("/api/v0/settings/mail", a.putMail)
}

type mailConfigRequest struct {
	FromName   string `json:"from_name"`
	FromEmail  string `json:"from_email" validate:"required,email"`
	Host       string `json:"host" validate:"required"`
	Port       int    `json:"port" validate:"required,min=1,max=65535"`
	Username   string `json:"username"`
	Encryption string `json:"encryption" validate:"omitempty,oneof=none tls starttls"`
}

func (a *API) getMail(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ManageSettings) {
		httptypes.WriteForbidden(w)
		return
	}

	cfg, err := a.storage.GetMailConfiguration(r.Context(), p)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, cfg)
}

func (a *API) putMail(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ManageSettings) {
		httptypes.WriteForbidden(w)
		return
	}

	var req mailConfigRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httptypes.WriteBadRequest(w, "invalid request body")
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httptypes.WriteBadRequest(w, err.Error())
		return
	}

	cfg, err := a.storage.UpsertMailConfiguration(r.Context(), p, &types.MailConfiguration{
		FromName:   req.FromName,
		FromEmail:  req.FromEmail,
		Host:       req.Host,
		Port:       req.Port,
		Username:   req.Username,
		Encryption: req.Encryption,
	})
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, cfg)
}
