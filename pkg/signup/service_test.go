// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chatterfix/internal/kratos"
	"github.com/canonical/chatterfix/pkg/organization"
)

//go:generate mockgen -build_flags=--mod=mod -package signup -destination ./mock_signup.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package signup -destination ./mock_validation.go -source=../../internal/validation/validation.go
//go:generate mockgen -build_flags=--mod=mod -package signup -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package signup -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package signup -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_Signup(t *testing.T) {
	validRequest := &SignupRequest{
		Email:       "jane@acme.test",
		Password:    "correct-horse",
		FullName:    "Jane Doe",
		CompanyName: "Acme Corp",
	}

	tests := []struct {
		name        string
		req         *SignupRequest
		setupMocks  func(*MockIdentityInterface, *MockProvisionerInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedErr error
		wantResult  bool
	}{
		{
			name: "creates identity, organization and session",
			req:  validRequest,
			setupMocks: func(identity *MockIdentityInterface, provisioner *MockProvisionerInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				identity.EXPECT().
					CreateIdentity(gomock.Any(), "jane@acme.test", "correct-horse", "Jane Doe").
					Return("identity-1", nil)
				provisioner.EXPECT().
					Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).
					DoAndReturn(func(_ context.Context, orgID string, req *organization.BootstrapRequest, _ bool) (*organization.BootstrapResult, error) {
						if !strings.HasPrefix(orgID, "acme-corp-") {
							t.Errorf("expected org ID derived from the company name, got %q", orgID)
						}
						if req.Name != "Acme Corp" || req.OwnerID != "identity-1" || req.OwnerEmail != "jane@acme.test" {
							t.Errorf("unexpected bootstrap request: %+v", req)
						}
						if req.Tier != "" {
							t.Errorf("expected tier left to the default, got %q", req.Tier)
						}
						if !req.IncludeSampleData {
							t.Error("expected sample data for a fresh signup")
						}
						return &organization.BootstrapResult{OrgID: orgID}, nil
					})
				identity.EXPECT().
					CreateSessionToken(gomock.Any(), "jane@acme.test", "correct-horse").
					Return("session-token-1", nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AuthSuccess("jane@acme.test")
				logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			wantResult: true,
		},
		{
			name: "email already registered",
			req:  validRequest,
			setupMocks: func(identity *MockIdentityInterface, provisioner *MockProvisionerInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				identity.EXPECT().
					CreateIdentity(gomock.Any(), "jane@acme.test", "correct-horse", "Jane Doe").
					Return("", kratos.ErrIdentityExists)
			},
			expectedErr: ErrEmailTaken,
		},
		{
			name: "bootstrap failure deletes the identity",
			req:  validRequest,
			setupMocks: func(identity *MockIdentityInterface, provisioner *MockProvisionerInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				identity.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("identity-1", nil)
				provisioner.EXPECT().
					Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).
					Return(nil, fmt.Errorf("insert failed"))
				identity.EXPECT().DeleteIdentity(gomock.Any(), "identity-1").Return(nil)
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: fmt.Errorf("failed to create account"),
		},
		{
			name: "session failure deletes the identity",
			req:  validRequest,
			setupMocks: func(identity *MockIdentityInterface, provisioner *MockProvisionerInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				identity.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("identity-1", nil)
				provisioner.EXPECT().
					Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).
					Return(&organization.BootstrapResult{}, nil)
				identity.EXPECT().
					CreateSessionToken(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", fmt.Errorf("kratos unavailable"))
				identity.EXPECT().DeleteIdentity(gomock.Any(), "identity-1").Return(nil)
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: fmt.Errorf("failed to create account"),
		},
		{
			name: "rollback failure is logged, not returned",
			req:  validRequest,
			setupMocks: func(identity *MockIdentityInterface, provisioner *MockProvisionerInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				identity.EXPECT().
					CreateIdentity(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("identity-1", nil)
				provisioner.EXPECT().
					Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).
					Return(nil, fmt.Errorf("insert failed"))
				identity.EXPECT().
					DeleteIdentity(gomock.Any(), "identity-1").
					Return(fmt.Errorf("kratos unavailable"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: fmt.Errorf("failed to create account"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := NewMockIdentityInterface(ctrl)
			mockProvisioner := NewMockProvisionerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().
				Start(gomock.Any(), "signup.Service.Signup").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tt.setupMocks(mockIdentity, mockProvisioner, mockLogger, mockSecurity)

			service := NewService(mockIdentity, mockProvisioner, mockTracer, mockMonitor, mockLogger)
			result, err := service.Signup(context.Background(), tt.req)

			if tt.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.expectedErr) && err.Error() != tt.expectedErr.Error() {
					t.Errorf("expected error %q, got %q", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if !tt.wantResult {
				return
			}
			if result.IdentityID != "identity-1" {
				t.Errorf("expected identity ID identity-1, got %q", result.IdentityID)
			}
			if result.SessionToken != "session-token-1" {
				t.Errorf("expected session token, got %q", result.SessionToken)
			}
			if result.Email != "jane@acme.test" {
				t.Errorf("unexpected email %q", result.Email)
			}
			if !strings.HasPrefix(result.OrgID, "acme-corp-") {
				t.Errorf("unexpected org ID %q", result.OrgID)
			}
		})
	}
}

func TestService_Login(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*MockIdentityInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedToken string
		expectedErr   error
	}{
		{
			name: "success",
			setupMocks: func(identity *MockIdentityInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				identity.EXPECT().
					CreateSessionToken(gomock.Any(), "jane@acme.test", "correct-horse").
					Return("session-token-1", nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AuthSuccess("jane@acme.test")
			},
			expectedToken: "session-token-1",
		},
		{
			name: "invalid credentials",
			setupMocks: func(identity *MockIdentityInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				identity.EXPECT().
					CreateSessionToken(gomock.Any(), "jane@acme.test", "correct-horse").
					Return("", kratos.ErrInvalidCredentials)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AuthFailure("jane@acme.test", "invalid credentials")
			},
			expectedErr: kratos.ErrInvalidCredentials,
		},
		{
			name: "identity provider error",
			setupMocks: func(identity *MockIdentityInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				identity.EXPECT().
					CreateSessionToken(gomock.Any(), "jane@acme.test", "correct-horse").
					Return("", fmt.Errorf("kratos unavailable"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: fmt.Errorf("failed to log in"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := NewMockIdentityInterface(ctrl)
			mockProvisioner := NewMockProvisionerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().
				Start(gomock.Any(), "signup.Service.Login").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tt.setupMocks(mockIdentity, mockLogger, mockSecurity)

			service := NewService(mockIdentity, mockProvisioner, mockTracer, mockMonitor, mockLogger)
			token, err := service.Login(context.Background(), "jane@acme.test", "correct-horse")

			if tt.expectedErr != nil {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, tt.expectedErr) && err.Error() != tt.expectedErr.Error() {
					t.Errorf("expected error %q, got %q", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if token != tt.expectedToken {
				t.Errorf("expected token %q, got %q", tt.expectedToken, token)
			}
		})
	}
}

func TestService_Logout(t *testing.T) {
	tests := []struct {
		name        string
		setupMocks  func(*MockIdentityInterface, *MockLoggerInterface)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(identity *MockIdentityInterface, logger *MockLoggerInterface) {
				identity.EXPECT().Logout(gomock.Any(), "session-token-1").Return(nil)
			},
		},
		{
			name: "error",
			setupMocks: func(identity *MockIdentityInterface, logger *MockLoggerInterface) {
				identity.EXPECT().
					Logout(gomock.Any(), "session-token-1").
					Return(fmt.Errorf("kratos unavailable"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: fmt.Errorf("failed to revoke session"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := NewMockIdentityInterface(ctrl)
			mockProvisioner := NewMockProvisionerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().
				Start(gomock.Any(), "signup.Service.Logout").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tt.setupMocks(mockIdentity, mockLogger)

			service := NewService(mockIdentity, mockProvisioner, mockTracer, mockMonitor, mockLogger)
			err := service.Logout(context.Background(), "session-token-1")

			if tt.expectedErr != nil {
				if err == nil || err.Error() != tt.expectedErr.Error() {
					t.Errorf("expected error %q, got %v", tt.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}

func TestService_PasswordReset(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*MockIdentityInterface, *MockLoggerInterface)
	}{
		{
			name: "dispatches recovery code",
			setupMocks: func(identity *MockIdentityInterface, logger *MockLoggerInterface) {
				identity.EXPECT().
					GetIdentityIDByEmail(gomock.Any(), "jane@acme.test").
					Return("identity-9", nil)
				identity.EXPECT().
					CreateRecoveryLink(gomock.Any(), "identity-9", "1h").
					Return("123456", "https://auth.example.com/recovery?flow=abc", nil)
				logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "unknown email is silent",
			setupMocks: func(identity *MockIdentityInterface, logger *MockLoggerInterface) {
				identity.EXPECT().
					GetIdentityIDByEmail(gomock.Any(), "jane@acme.test").
					Return("", nil)
				logger.EXPECT().Debugf(gomock.Any())
			},
		},
		{
			name: "lookup failure is swallowed",
			setupMocks: func(identity *MockIdentityInterface, logger *MockLoggerInterface) {
				identity.EXPECT().
					GetIdentityIDByEmail(gomock.Any(), "jane@acme.test").
					Return("", fmt.Errorf("kratos unavailable"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
		{
			name: "recovery link failure is swallowed",
			setupMocks: func(identity *MockIdentityInterface, logger *MockLoggerInterface) {
				identity.EXPECT().
					GetIdentityIDByEmail(gomock.Any(), "jane@acme.test").
					Return("identity-9", nil)
				identity.EXPECT().
					CreateRecoveryLink(gomock.Any(), "identity-9", "1h").
					Return("", "", fmt.Errorf("kratos unavailable"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockIdentity := NewMockIdentityInterface(ctrl)
			mockProvisioner := NewMockProvisionerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().
				Start(gomock.Any(), "signup.Service.PasswordReset").
				Return(context.Background(), trace.SpanFromContext(context.Background()))

			tt.setupMocks(mockIdentity, mockLogger)

			service := NewService(mockIdentity, mockProvisioner, mockTracer, mockMonitor, mockLogger)
			service.PasswordReset(context.Background(), "jane@acme.test")
		})
	}
}
