// Copyright 2026 BlueHathi Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"net/http"

	httptypes "github.com/bluehathi/leadsetu-sub001/internal/http/types"
	"github.com/bluehathi/leadsetu-sub001/internal/logging"
	"github.com/bluehathi/leadsetu-sub001/internal/monitoring"
	"github.com/bluehathi/leadsetu-sub001/internal/storage"
	"github.com/bluehathi/leadsetu-sub001/internal/tenancy"
	"github.com/bluehathi/leadsetu-sub001/internal/tracing"
)

// HeaderName is the trusted header carrying the authenticated user id.
// Authentication itself happens upstream; this service only consumes the
// already-resolved identity.
const HeaderName = "X-Authenticated-User-Id"

// PrincipalResolverInterface is the slice of the storage layer this
// middleware needs.
type PrincipalResolverInterface interface {
	GetPrincipalByUserID(ctx context.Context, userID string) (*tenancy.Principal, error)
}

type Middleware struct {
	storage PrincipalResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(s PrincipalResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		storage: s,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HTTPMiddleware resolves the principal for the request and stores it in the
// context. Requests without the identity header proceed with no principal;
// downstream permission checks decide whether that is acceptable.
func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		userID := r.Header.Get(HeaderName)
		if userID == "" {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		principal, err := m.storage.GetPrincipalByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				httptypes.WriteMessage(w, http.StatusUnauthorized, "unknown user")
				return
			}
			m.logger.Errorf("failed to resolve principal for %s: %v", userID, err)
			httptypes.WriteMessage(w, http.StatusInternalServerError, "internal error")
			return
		}

		next.ServeHTTP(w, r.WithContext(tenancy.WithPrincipal(ctx, principal)))
	})
}
