// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/canonical/chatterfix/internal/db"
	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/pkg/assistant"
	"github.com/canonical/chatterfix/pkg/authentication"
	"github.com/canonical/chatterfix/pkg/cmms"
	"github.com/canonical/chatterfix/pkg/metrics"
	"github.com/canonical/chatterfix/pkg/organization"
	"github.com/canonical/chatterfix/pkg/signup"
	"github.com/canonical/chatterfix/pkg/status"
	"github.com/canonical/chatterfix/pkg/ui"
	"github.com/canonical/chatterfix/pkg/webhooks"
)

func NewRouter(
	orgAPI *organization.API,
	signupAPI *signup.API,
	cmmsAPI *cmms.API,
	assistantAPI *assistant.API,
	webhooksAPI *webhooks.API,
	uiAPI *ui.API,
	adminAuth *authentication.Middleware,
	sessionAuth *authentication.SessionMiddleware,
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
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}),
	)

	router.Use(middlewares...)

	// ops surface
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	// public surface: pages, identity-stack webhooks, signup and login
	uiAPI.RegisterEndpoints(router)
	webhooksAPI.RegisterEndpoints(router)
	signupAPI.RegisterEndpoints(router)

	// provisioning surface for JWT-authenticated machine clients
	router.Group(func(r chi.Router) {
		r.Use(adminAuth.Authenticate())
		r.Use(db.TransactionMiddleware(dbClient, logger))
		orgAPI.RegisterEndpoints(r)
	})

	// user surface, authenticated by Kratos session cookie or bearer token
	router.Group(func(r chi.Router) {
		r.Use(sessionAuth.Authenticate())
		r.Use(db.TransactionMiddleware(dbClient, logger))
		signupAPI.RegisterSessionEndpoints(r)
		cmmsAPI.RegisterSessionEndpoints(r)
		assistantAPI.RegisterSessionEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
