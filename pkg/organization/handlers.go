// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/validation"
)

type API struct {
	service   ServiceInterface
	validator validation.ValidatorInterface
	logger    logging.LoggerInterface
}

func NewAPI(service ServiceInterface, validator validation.ValidatorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		validator: validator,
		logger:    logger,
	}
}

// RegisterEndpoints mounts the provisioning routes. The caller is expected
// to wrap them in admin JWT auth, they are never exposed to session users.
func (a *API) RegisterEndpoints(router chi.Router) {
	router.Post("/api/v1/orgs/{id}/bootstrap", a.bootstrap)
	router.Get("/api/v1/orgs/{id}/status", a.status)
	router.Delete("/api/v1/orgs/{id}", a.delete)
}

func (a *API) bootstrap(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "id")

	req := new(BootstrapRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	force := r.URL.Query().Get("force") == "true"

	result, err := a.service.Bootstrap(r.Context(), orgID, req, force)
	if err != nil {
		a.logger.Errorf("Failed to bootstrap organization %s: %v", orgID, err)
		http.Error(w, "Failed to bootstrap organization", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !result.AlreadyExisted {
		status = http.StatusCreated
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(result)
}

func (a *API) status(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "id")

	result, err := a.service.Status(r.Context(), orgID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "Organization not found", http.StatusNotFound)
			return
		}
		a.logger.Errorf("Failed to get status for organization %s: %v", orgID, err)
		http.Error(w, "Failed to get organization status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	orgID := chi.URLParam(r, "id")
	confirm := r.URL.Query().Get("confirm") == "true"

	result, err := a.service.Delete(r.Context(), orgID, confirm)
	if err != nil {
		switch {
		case errors.Is(err, ErrConfirmationRequired):
			http.Error(w, "Deletion requires confirm=true", http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "Organization not found", http.StatusNotFound)
		default:
			a.logger.Errorf("Failed to delete organization %s: %v", orgID, err)
			http.Error(w, "Failed to delete organization", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}
