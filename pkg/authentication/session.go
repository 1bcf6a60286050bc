// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/tracing"
)

// SessionCookieName is the cookie the signup handlers set on login. The same
// token is also accepted as a bearer token for API clients.
const SessionCookieName = "session_token"

// SessionMiddleware authenticates browser and API traffic with Kratos session
// tokens and resolves the caller to a user record. Failures never explain
// whether the token or the account was the problem.
type SessionMiddleware struct {
	sessions   SessionVerifierInterface
	principals PrincipalResolverInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *SessionMiddleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.SessionMiddleware.Authenticate")
			defer span.End()

			token, found := m.getSessionToken(r)
			if !found {
				m.unauthorizedResponse(w)
				return
			}

			identity, err := m.sessions.VerifySessionToken(ctx, token)
			if err != nil {
				m.logger.Debugf("session verification failed: %v", err)
				m.logger.Security().AuthFailure("session", "invalid or expired session token")
				m.unauthorizedResponse(w)
				return
			}

			user, err := m.principals.GetUserByIdentityID(ctx, identity.UID)
			if err != nil {
				m.logger.Debugf("no active user for identity %s: %v", identity.UID, err)
				m.logger.Security().AuthFailure(identity.Email, "no active user for identity")
				m.unauthorizedResponse(w)
				return
			}

			principal := &Principal{
				UserID:         user.ID,
				OrganizationID: user.OrgID,
				IdentityID:     user.KratosIdentityID,
				Email:          user.Email,
				Role:           user.Role,
				IsDemo:         user.IsDemo,
			}

			ctx = WithPrincipal(ctx, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// getSessionToken prefers the session cookie, falling back to a bearer token
// so non-browser clients can use the same endpoints.
func (m *SessionMiddleware) getSessionToken(r *http.Request) (string, bool) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	bearer := r.Header.Get("Authorization")
	if strings.HasPrefix(bearer, "Bearer ") {
		return strings.TrimPrefix(bearer, "Bearer "), true
	}

	return "", false
}

func (m *SessionMiddleware) unauthorizedResponse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": "unauthorized",
	}); err != nil {
		m.logger.Errorf("failed to encode unauthorized response: %v", err)
	}
}

func NewSessionMiddleware(sessions SessionVerifierInterface, principals PrincipalResolverInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionMiddleware {
	return &SessionMiddleware{
		sessions:   sessions,
		principals: principals,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
