// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chatterfix/internal/types"
)

func TestSessionMiddleware_Authenticate(t *testing.T) {
	identity := &types.Identity{UID: "identity-123", Email: "joe@example.com", Verified: true}
	user := &types.User{
		ID:               "user-123",
		OrgID:            "org-456",
		KratosIdentityID: "identity-123",
		Email:            "joe@example.com",
		Role:             types.RoleOwner,
	}

	tests := []struct {
		name               string
		setupRequest       func(*http.Request)
		setupMocks         func(*MockSessionVerifierInterface, *MockPrincipalResolverInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatusCode int
	}{
		{
			name:               "Missing token - rejects request",
			setupRequest:       func(r *http.Request) {},
			setupMocks:         func(sv *MockSessionVerifierInterface, pr *MockPrincipalResolverInterface, l *MockLoggerInterface, sl *MockSecurityLoggerInterface) {},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "Invalid session token - rejects request",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bad-token"})
			},
			setupMocks: func(sv *MockSessionVerifierInterface, pr *MockPrincipalResolverInterface, l *MockLoggerInterface, sl *MockSecurityLoggerInterface) {
				sv.EXPECT().VerifySessionToken(gomock.Any(), "bad-token").Return(nil, fmt.Errorf("invalid token"))
				l.EXPECT().Security().Return(sl)
				sl.EXPECT().AuthFailure("session", gomock.Any())
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "No active user for identity - rejects request",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "orphan-token"})
			},
			setupMocks: func(sv *MockSessionVerifierInterface, pr *MockPrincipalResolverInterface, l *MockLoggerInterface, sl *MockSecurityLoggerInterface) {
				sv.EXPECT().VerifySessionToken(gomock.Any(), "orphan-token").Return(identity, nil)
				pr.EXPECT().GetUserByIdentityID(gomock.Any(), "identity-123").Return(nil, fmt.Errorf("not found"))
				l.EXPECT().Security().Return(sl)
				sl.EXPECT().AuthFailure("joe@example.com", gomock.Any())
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name: "Valid session cookie",
			setupRequest: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "good-token"})
			},
			setupMocks: func(sv *MockSessionVerifierInterface, pr *MockPrincipalResolverInterface, l *MockLoggerInterface, sl *MockSecurityLoggerInterface) {
				sv.EXPECT().VerifySessionToken(gomock.Any(), "good-token").Return(identity, nil)
				pr.EXPECT().GetUserByIdentityID(gomock.Any(), "identity-123").Return(user, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name: "Valid bearer token",
			setupRequest: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good-token")
			},
			setupMocks: func(sv *MockSessionVerifierInterface, pr *MockPrincipalResolverInterface, l *MockLoggerInterface, sl *MockSecurityLoggerInterface) {
				sv.EXPECT().VerifySessionToken(gomock.Any(), "good-token").Return(identity, nil)
				pr.EXPECT().GetUserByIdentityID(gomock.Any(), "identity-123").Return(user, nil)
			},
			expectedStatusCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecLogger := NewMockSecurityLoggerInterface(ctrl)
			mockSessions := NewMockSessionVerifierInterface(ctrl)
			mockPrincipals := NewMockPrincipalResolverInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "authentication.SessionMiddleware.Authenticate").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

			tt.setupMocks(mockSessions, mockPrincipals, mockLogger, mockSecLogger)

			middleware := NewSessionMiddleware(mockSessions, mockPrincipals, mockTracer, mockMonitor, mockLogger)

			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				principal, ok := PrincipalFromContext(r.Context())
				if !ok {
					t.Error("expected principal in request context")
				} else {
					if principal.UserID != user.ID {
						t.Errorf("expected user ID %q, got %q", user.ID, principal.UserID)
					}
					if principal.OrganizationID != user.OrgID {
						t.Errorf("expected organization ID %q, got %q", user.OrgID, principal.OrganizationID)
					}
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			tt.setupRequest(req)
			rr := httptest.NewRecorder()

			middleware.Authenticate()(handler).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tt.expectedStatusCode, rr.Code)
			}
		})
	}
}
