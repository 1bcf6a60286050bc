// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/chatterfix/internal/kratos"
	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/validation"
	"github.com/canonical/chatterfix/pkg/authentication"
	"github.com/canonical/chatterfix/pkg/demo"
)

type API struct {
	service      ServiceInterface
	demos        demo.ServiceInterface
	validator    validation.ValidatorInterface
	cookieSecure bool
	logger       logging.LoggerInterface
}

func NewAPI(service ServiceInterface, demos demo.ServiceInterface, validator validation.ValidatorInterface, cookieSecure bool, logger logging.LoggerInterface) *API {
	return &API{
		service:      service,
		demos:        demos,
		validator:    validator,
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}

// RegisterEndpoints mounts the unauthenticated routes.
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Post("/auth/signup", a.signup)
	mux.Post("/auth/login", a.login)
	mux.Post("/auth/logout", a.logout)
	mux.Post("/auth/try-demo", a.tryDemo)
	mux.Post("/auth/password-reset", a.passwordReset)
}

// RegisterSessionEndpoints mounts the routes that run behind the session
// middleware and act on the caller's own organization.
func (a *API) RegisterSessionEndpoints(router chi.Router) {
	router.Get("/auth/demo-status", a.demoStatus)
	router.Post("/auth/upgrade-demo", a.upgradeDemo)
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	req := new(SignupRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.service.Signup(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			http.Error(w, "Email already registered", http.StatusBadRequest)
			return
		}
		a.logger.Errorf("Failed to sign up: %v", err)
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	a.setSessionCookie(w, result.SessionToken)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(result)
}

// login accepts both the dashboard's form post and JSON API clients. The
// failure message never distinguishes a bad username from a bad password.
func (a *API) login(w http.ResponseWriter, r *http.Request) {
	var identifier, password string

	isForm := strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
	if isForm {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		identifier = r.PostFormValue("username")
		password = r.PostFormValue("password")
	} else {
		req := new(LoginRequest)
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		identifier = req.Username
		password = req.Password
	}

	if identifier == "" || password == "" {
		http.Error(w, "Missing credentials", http.StatusBadRequest)
		return
	}

	token, err := a.service.Login(r.Context(), identifier, password)
	if err != nil {
		if errors.Is(err, kratos.ErrInvalidCredentials) {
			http.Error(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}
		a.logger.Errorf("Failed to log in: %v", err)
		http.Error(w, "Failed to log in", http.StatusInternalServerError)
		return
	}

	a.setSessionCookie(w, token)

	if isForm {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{"authenticated": true})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(authentication.SessionCookieName); err == nil {
		token = cookie.Value
	}
	if token == "" {
		if bearer := r.Header.Get("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
			token = strings.TrimPrefix(bearer, "Bearer ")
		}
	}

	// revocation is best effort, the cookie is cleared regardless
	if token != "" {
		_ = a.service.Logout(r.Context(), token)
	}

	a.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) tryDemo(w http.ResponseWriter, r *http.Request) {
	req := new(TryDemoRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := a.demos.Start(r.Context(), req.CompanyName)
	if err != nil {
		a.logger.Errorf("Failed to start demo: %v", err)
		http.Error(w, "Failed to start demo", http.StatusInternalServerError)
		return
	}

	a.setSessionCookie(w, result.SessionToken)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(result)
}

func (a *API) demoStatus(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := a.demos.TimeRemaining(r.Context(), principal.OrganizationID)
	if err != nil {
		if errors.Is(err, demo.ErrNotFound) {
			http.Error(w, "Organization not found", http.StatusNotFound)
			return
		}
		a.logger.Errorf("Failed to get demo status for organization %s: %v", principal.OrganizationID, err)
		http.Error(w, "Failed to get demo status", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func (a *API) upgradeDemo(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	req := new(UpgradeRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := a.demos.Upgrade(r.Context(), principal.OrganizationID, req.Email, req.Password, req.FullName)
	if err != nil {
		switch {
		case errors.Is(err, demo.ErrPasswordTooShort):
			http.Error(w, "Password must be at least 8 characters", http.StatusBadRequest)
		case errors.Is(err, demo.ErrEmailTaken):
			http.Error(w, "Email already registered", http.StatusBadRequest)
		case errors.Is(err, demo.ErrNotDemo):
			http.Error(w, "Organization is not a demo", http.StatusBadRequest)
		case errors.Is(err, demo.ErrExpired):
			http.Error(w, "Demo has expired", http.StatusBadRequest)
		case errors.Is(err, demo.ErrNotFound):
			http.Error(w, "Organization not found", http.StatusNotFound)
		default:
			a.logger.Errorf("Failed to upgrade demo organization %s: %v", principal.OrganizationID, err)
			http.Error(w, "Failed to upgrade demo", http.StatusInternalServerError)
		}
		return
	}

	a.setSessionCookie(w, result.SessionToken)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func (a *API) passwordReset(w http.ResponseWriter, r *http.Request) {
	req := new(PasswordResetRequest)
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.validator.Validate(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a.service.PasswordReset(r.Context(), req.Email)

	// 202 regardless of whether the account exists
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "If the account exists, recovery instructions have been dispatched",
	})
}

func (a *API) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     authentication.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *API) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authentication.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
