// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chatterfix/internal/storage"
	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/organization"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	identityID := "identity-123"
	email := "jane@example.com"

	testCases := []struct {
		name        string
		identityID  string
		email       string
		fullName    string
		setupMocks  func(*MockProvisionerInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:       "success",
			identityID: identityID,
			email:      email,
			fullName:   "Jane Doe",
			setupMocks: func(mockProvisioner *MockProvisionerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockProvisioner.EXPECT().Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).DoAndReturn(
					func(_ context.Context, orgID string, req *organization.BootstrapRequest, _ bool) (*organization.BootstrapResult, error) {
						if !strings.HasPrefix(orgID, "jane-s-workspace-") {
							return nil, errors.New("unexpected org id " + orgID)
						}
						if req.Name != "jane's Workspace" {
							return nil, errors.New("unexpected org name " + req.Name)
						}
						if req.OwnerID != identityID || req.OwnerEmail != email || req.OwnerName != "Jane Doe" {
							return nil, errors.New("owner fields not forwarded")
						}
						if req.Tier != "" {
							return nil, errors.New("personal orgs should use the default tier")
						}
						if !req.IncludeSampleData {
							return nil, errors.New("personal orgs should get sample data")
						}
						return &organization.BootstrapResult{OrgID: orgID}, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name:       "success - no name trait",
			identityID: identityID,
			email:      email,
			fullName:   "",
			setupMocks: func(mockProvisioner *MockProvisionerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockProvisioner.EXPECT().Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).DoAndReturn(
					func(_ context.Context, orgID string, req *organization.BootstrapRequest, _ bool) (*organization.BootstrapResult, error) {
						if req.OwnerName != "" {
							return nil, errors.New("expected empty owner name")
						}
						return &organization.BootstrapResult{OrgID: orgID}, nil
					})
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name:       "error - empty identity id",
			identityID: "",
			email:      email,
			setupMocks: func(mockProvisioner *MockProvisionerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:       "error - empty email",
			identityID: identityID,
			email:      "",
			setupMocks: func(mockProvisioner *MockProvisionerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:       "error - bootstrap fails",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockProvisioner *MockProvisionerInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
				mockProvisioner.EXPECT().Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).
					Return(nil, errors.New("provisioning error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockProvisioner := NewMockProvisionerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockProvisioner, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockProvisioner, mockLogger)

			err := s.HandleRegistration(context.Background(), tc.identityID, tc.email, tc.fullName)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	identityID := "identity-123"
	user := &types.User{
		ID:               "user-1",
		OrgID:            "acme-corp-x7k2m9",
		KratosIdentityID: identityID,
		Role:             types.RoleTechnician,
	}

	testCases := []struct {
		name         string
		request      *oauth2.TokenHookRequest
		setupMocks   func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr  bool
		validateResp func(*testing.T, *TokenHookResponse)
	}{
		{
			name: "success - identity with organization",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(identityID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).Times(2)
				mockStorage.EXPECT().GetUserByIdentityID(gomock.Any(), identityID).Return(user, nil)
			},
			expectedErr: false,
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				if resp == nil {
					t.Fatal("expected response but got nil")
				}
				if resp.Session.IDToken["organization_id"] != user.OrgID {
					t.Errorf("expected organization_id %q in ID token, got %v", user.OrgID, resp.Session.IDToken["organization_id"])
				}
				if resp.Session.AccessToken["organization_role"] != types.RoleTechnician {
					t.Errorf("expected organization_role %q in access token, got %v", types.RoleTechnician, resp.Session.AccessToken["organization_role"])
				}
			},
		},
		{
			name: "success - identity without organization",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(identityID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).Times(2)
				mockStorage.EXPECT().GetUserByIdentityID(gomock.Any(), identityID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: false,
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				if resp == nil {
					t.Fatal("expected response but got nil")
				}
				// Unknown identities get their token issued untouched.
				if resp.Session.IDToken != nil {
					t.Errorf("expected no ID token claims, got %v", resp.Session.IDToken)
				}
				if resp.Session.AccessToken != nil {
					t.Errorf("expected no access token claims, got %v", resp.Session.AccessToken)
				}
			},
		},
		{
			name: "error - no subject in session",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(""),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:    "error - nil session",
			request: &oauth2.TokenHookRequest{},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name: "error - storage error",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(identityID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).Times(2)
				mockStorage.EXPECT().GetUserByIdentityID(gomock.Any(), identityID).Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockProvisioner := NewMockProvisionerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockProvisioner, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleTokenHook").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			resp, err := s.HandleTokenHook(context.Background(), tc.request)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if tc.validateResp != nil {
				tc.validateResp(t, resp)
			}
		})
	}
}
