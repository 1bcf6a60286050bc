// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assistant

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chatterfix/internal/validation"
	"github.com/canonical/chatterfix/pkg/authentication"
)

type API struct {
	service   ServiceInterface
	validator validation.ValidatorInterface
}

func NewAPI(service ServiceInterface, validator validation.ValidatorInterface) *API {
	return &API{
		service:   service,
		validator: validator,
	}
}

// RegisterSessionEndpoints mounts the chat route. The router is expected to
// already carry the session middleware.
func (a *API) RegisterSessionEndpoints(router chi.Router) {
	router.Post("/api/v1/ai/chat", a.chat)
}

func (a *API) chat(w http.ResponseWriter, r *http.Request) {
	p, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	req := new(ChatRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp, err := a.service.Chat(r.Context(), p, req.Message)
	if err != nil {
		switch {
		case errors.Is(err, ErrRateLimited):
			http.Error(w, "Daily AI request limit reached", http.StatusTooManyRequests)
		case errors.Is(err, ErrForbidden):
			http.Error(w, "Permission denied", http.StatusForbidden)
		default:
			http.Error(w, "Failed to process message", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}
