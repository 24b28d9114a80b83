// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package activity serves the per-workspace audit trail written by the
// feature services.
package activity

import (
	"context"
	"net/http"
	"strconv"

	chi "github.com/go-chi/chi/v5"

	"github.com/bluehathi/leadsetu-sub001/internal/authorization"
	httptypes "github.com/bluehathi/leadsetu-sub001/internal/http/types"
	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/types"
)

// StorageInterface is the storage surface this feature consumes.
type StorageInterface interface {
	ListActivities(ctx context.Context, p *tenancy.Principal, page, size int64) ([]*types.ActivityLog, error)
}

type AuthorizerInterface interface {
	Check(ctx context.Context, p *tenancy.Principal, permission string) bool
}

type API struct {
	storage StorageInterface
	authz   AuthorizerInterface

	logger logging.LoggerInterface
}

func NewAPI(storage StorageInterface, authz AuthorizerInterface, logger logging.LoggerInterface) *API {
	return &API{
		storage: storage,
		authz:   authz,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/activity", a.list)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	p, _ := tenancy.PrincipalFromContext(r.Context())
	if !a.authz.Check(r.Context(), p, authorization.ViewActivity) {
		httptypes.WriteForbidden(w)
		return
	}

	q := r.URL.Query()
	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)

	activities, err := a.storage.ListActivities(r.Context(), p, page, size)
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, activities)
}
