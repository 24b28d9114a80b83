// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bluehathi/leadsetu-sub001/internal/authorization"
	"github.com/bluehathi/leadsetu-sub001/internal/db"
	"github.com/bluehathi/leadsetu-sub001/internal/identity"
	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/scoring"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
	"github.com/bluehathi/leadsetu-sub001/pkg/activity"
	"github.com/bluehathi/leadsetu-sub001/pkg/campaigns"
	"github.com/bluehathi/leadsetu-sub001/pkg/companies"
	"github.com/bluehathi/leadsetu-sub001/pkg/contacts"
	"github.com/bluehathi/leadsetu-sub001/pkg/leads"
	"github.com/bluehathi/leadsetu-sub001/pkg/metrics"
	"github.com/bluehathi/leadsetu-sub001/pkg/prospects"
	"github.com/bluehathi/leadsetu-sub001/pkg/settings"
	"github.com/bluehathi/leadsetu-sub001/pkg/status"
	"github.com/bluehathi/leadsetu-sub001/pkg/workspaces"
)

// Config carries the feature toggles the router needs.
type Config struct {
	AuthorizationEnabled bool
	ScoreOnWrite         bool
}

func NewRouter(
	cfg Config,
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
		identity.NewMiddleware(s, tracer, monitor, logger).HTTPMiddleware,
		db.TransactionMiddleware(dbClient, logger),
	)

	router.Use(middlewares...)

	authz := authorization.NewAuthorizer(cfg.AuthorizationEnabled, tracer, monitor, logger)
	scorer := scoring.NewEngine(s, tracer, logger)

	leadsService := leads.NewService(s, scorer, cfg.ScoreOnWrite, tracer, monitor, logger)
	contactsService := contacts.NewService(s, tracer, monitor, logger)
	companiesService := companies.NewService(s, tracer, monitor, logger)
	campaignsService := campaigns.NewService(s, tracer, monitor, logger)
	prospectsService := prospects.NewService(s, tracer, monitor, logger)
	workspacesService := workspaces.NewService(s, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)
	leads.NewAPI(leadsService, authz, logger).RegisterEndpoints(router)
	contacts.NewAPI(contactsService, authz, logger).RegisterEndpoints(router)
	companies.NewAPI(companiesService, authz, logger).RegisterEndpoints(router)
	campaigns.NewAPI(campaignsService, authz, logger).RegisterEndpoints(router)
	prospects.NewAPI(prospectsService, authz, logger).RegisterEndpoints(router)
	workspaces.NewAPI(workspacesService, authz, logger).RegisterEndpoints(router)
	settings.NewAPI(s, authz, logger).RegisterEndpoints(router)
	activity.NewAPI(s, authz, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(
		cors.Options{
			AllowedOrigins: origins,
			AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", identity.HeaderName},
			MaxAge:         300,
		},
	)
}
