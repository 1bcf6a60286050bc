// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/chatterfix/internal/logging"
)

type API struct {
	service ServiceInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		logger:  logger,
	}
}

// RegisterEndpoints mounts the hook routes. They are exposed without session
// auth, Kratos and Hydra call them from inside the deployment.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/webhooks/registration", a.registration)
	mux.Post("/webhooks/token", a.tokenHook)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	var identity KratosIdentity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil {
		a.logger.Errorf("Failed to decode registration payload: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	a.logger.Debugf("Registration webhook received for identity %s", identity.ID)

	if err := a.service.HandleRegistration(r.Context(), identity.ID, identity.Traits.Email, identity.Traits.Name); err != nil {
		a.logger.Errorf("Failed to handle registration webhook: %v", err)
		http.Error(w, "Failed to provision organization", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (a *API) tokenHook(w http.ResponseWriter, r *http.Request) {
	var req oauth2.TokenHookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.logger.Errorf("Failed to decode token hook payload: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := a.service.HandleTokenHook(r.Context(), &req)
	if err != nil {
		a.logger.Errorf("Failed to handle token hook: %v", err)
		http.Error(w, "Failed to process token hook", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Errorf("Failed to encode token hook response: %v", err)
	}
}
