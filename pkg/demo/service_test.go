// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package demo

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chatterfix/internal/kratos"
	"github.com/canonical/chatterfix/internal/storage"
	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/organization"
)

//go:generate mockgen -build_flags=--mod=mod -package demo -destination ./mock_demo.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package demo -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package demo -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package demo -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type demoMocks struct {
	storage     *MockStorageInterface
	provisioner *MockProvisionerInterface
	identity    *MockIdentityInterface
	authz       *MockAuthzInterface
	logger      *MockLoggerInterface
}

func newTestService(ctrl *gomock.Controller, clk clock.Clock, span string) (*Service, *demoMocks) {
	m := &demoMocks{
		storage:     NewMockStorageInterface(ctrl),
		provisioner: NewMockProvisionerInterface(ctrl),
		identity:    NewMockIdentityInterface(ctrl),
		authz:       NewMockAuthzInterface(ctrl),
		logger:      NewMockLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), span).Return(context.Background(), trace.SpanFromContext(context.Background()))

	s := NewService(m.storage, m.provisioner, m.identity, m.authz, DefaultLifetime, clk, mockTracer, NewMockMonitorInterface(ctrl), m.logger)
	return s, m
}

func TestService_Start(t *testing.T) {
	const (
		guestID  = "guest-identity-1"
		guestEml = "guest-abc123@demo.chatterfix.local"
		guestPwd = "generated-password"
	)

	testCases := []struct {
		name           string
		companyName    string
		setupMocks     func(*demoMocks, *clock.Mock)
		validateResult func(*testing.T, *clock.Mock, *StartResult)
		expectedErr    bool
	}{
		{
			name:        "provisions professional demo with expiry",
			companyName: "Acme Corp",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.identity.EXPECT().CreateGuestIdentity(gomock.Any()).Return(guestID, guestEml, guestPwd, nil)
				m.provisioner.EXPECT().Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).DoAndReturn(
					func(_ context.Context, orgID string, req *organization.BootstrapRequest, _ bool) (*organization.BootstrapResult, error) {
						if !strings.HasPrefix(orgID, "acme-corp-") {
							return nil, errors.New("unexpected org id")
						}
						if req.Tier != types.TierProfessional {
							return nil, errors.New("expected professional tier")
						}
						if !req.IncludeSampleData {
							return nil, errors.New("expected sample data")
						}
						if req.OwnerID != guestID || req.OwnerEmail != guestEml {
							return nil, errors.New("expected the guest as owner")
						}
						return &organization.BootstrapResult{OrgID: orgID}, nil
					})
				m.storage.EXPECT().UpdateOrganization(gomock.Any(), gomock.Any(), []string{"is_demo", "demo_expires_at"}).DoAndReturn(
					func(_ context.Context, org *types.Organization, _ []string) error {
						if !org.IsDemo || org.DemoExpiresAt == nil {
							return errors.New("expected demo flags")
						}
						expected := clk.Now().UTC().Add(DefaultLifetime)
						if !org.DemoExpiresAt.Equal(expected) {
							return errors.New("unexpected expiry")
						}
						return nil
					})
				m.storage.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *types.User) (*types.User, error) {
						if !user.IsDemo || user.Role != types.RoleOwner {
							return nil, errors.New("expected a demo owner")
						}
						return user, nil
					})
				m.identity.EXPECT().CreateSessionToken(gomock.Any(), guestEml, guestPwd).Return("session-token", nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			validateResult: func(t *testing.T, clk *clock.Mock, result *StartResult) {
				if result.SessionToken != "session-token" {
					t.Errorf("unexpected session token %q", result.SessionToken)
				}
				if result.IdentityID != guestID || result.Email != guestEml {
					t.Errorf("unexpected identity in result: %+v", result)
				}
				if !result.ExpiresAt.Equal(clk.Now().UTC().Add(DefaultLifetime)) {
					t.Errorf("unexpected expiry %v", result.ExpiresAt)
				}
			},
		},
		{
			name:        "empty company name falls back to default",
			companyName: "   ",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.identity.EXPECT().CreateGuestIdentity(gomock.Any()).Return(guestID, guestEml, guestPwd, nil)
				m.provisioner.EXPECT().Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).DoAndReturn(
					func(_ context.Context, orgID string, req *organization.BootstrapRequest, _ bool) (*organization.BootstrapResult, error) {
						if req.Name != "Demo Company" {
							return nil, errors.New("expected default name")
						}
						if !strings.HasPrefix(orgID, "demo-company-") {
							return nil, errors.New("unexpected org id")
						}
						return &organization.BootstrapResult{OrgID: orgID}, nil
					})
				m.storage.EXPECT().UpdateOrganization(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.storage.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *types.User) (*types.User, error) {
						return user, nil
					})
				m.identity.EXPECT().CreateSessionToken(gomock.Any(), guestEml, guestPwd).Return("session-token", nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:        "bootstrap failure deletes the guest identity",
			companyName: "Acme Corp",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.identity.EXPECT().CreateGuestIdentity(gomock.Any()).Return(guestID, guestEml, guestPwd, nil)
				m.provisioner.EXPECT().Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).Return(nil, errors.New("bootstrap error"))
				m.identity.EXPECT().DeleteIdentity(gomock.Any(), guestID).Return(nil)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
		{
			name:        "session failure deletes the guest identity",
			companyName: "Acme Corp",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.identity.EXPECT().CreateGuestIdentity(gomock.Any()).Return(guestID, guestEml, guestPwd, nil)
				m.provisioner.EXPECT().Bootstrap(gomock.Any(), gomock.Any(), gomock.Any(), false).DoAndReturn(
					func(_ context.Context, orgID string, _ *organization.BootstrapRequest, _ bool) (*organization.BootstrapResult, error) {
						return &organization.BootstrapResult{OrgID: orgID}, nil
					})
				m.storage.EXPECT().UpdateOrganization(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.storage.EXPECT().UpsertUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *types.User) (*types.User, error) {
						return user, nil
					})
				m.identity.EXPECT().CreateSessionToken(gomock.Any(), guestEml, guestPwd).Return("", errors.New("kratos error"))
				m.identity.EXPECT().DeleteIdentity(gomock.Any(), guestID).Return(nil)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clk := clock.NewMock()
			s, m := newTestService(ctrl, clk, "demo.Service.Start")
			tc.setupMocks(m, clk)

			result, err := s.Start(context.Background(), tc.companyName)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.validateResult != nil {
				tc.validateResult(t, clk, result)
			}
		})
	}
}

func TestService_TimeRemaining(t *testing.T) {
	orgID := "acme-corp-x1y2z3"

	testCases := []struct {
		name           string
		setupMocks     func(*demoMocks, *clock.Mock)
		validateResult func(*testing.T, *TimeRemainingResult)
		expectedErr    error
	}{
		{
			name: "active demo reports whole minutes",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				expiresAt := clk.Now().Add(90*time.Minute + 30*time.Second)
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(
					&types.Organization{ID: orgID, IsDemo: true, DemoExpiresAt: &expiresAt}, nil)
			},
			validateResult: func(t *testing.T, result *TimeRemainingResult) {
				if result.MinutesRemaining != 90 {
					t.Errorf("expected 90 minutes, got %d", result.MinutesRemaining)
				}
				if result.Expired || !result.IsDemo {
					t.Errorf("unexpected result: %+v", result)
				}
			},
		},
		{
			name: "expired demo",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				expiresAt := clk.Now().Add(-time.Minute)
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(
					&types.Organization{ID: orgID, IsDemo: true, DemoExpiresAt: &expiresAt}, nil)
			},
			validateResult: func(t *testing.T, result *TimeRemainingResult) {
				if !result.Expired {
					t.Error("expected the demo to be expired")
				}
				if result.MinutesRemaining != 0 {
					t.Errorf("expected 0 minutes, got %d", result.MinutesRemaining)
				}
			},
		},
		{
			name: "non-demo organization",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(
					&types.Organization{ID: orgID, IsDemo: false}, nil)
			},
			validateResult: func(t *testing.T, result *TimeRemainingResult) {
				if result.IsDemo || result.Expired || result.ExpiresAt != nil {
					t.Errorf("unexpected result: %+v", result)
				}
			},
		},
		{
			name: "not found",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clk := clock.NewMock()
			s, m := newTestService(ctrl, clk, "demo.Service.TimeRemaining")
			tc.setupMocks(m, clk)

			result, err := s.TimeRemaining(context.Background(), orgID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.validateResult != nil {
				tc.validateResult(t, result)
			}
		})
	}
}

func TestService_Upgrade(t *testing.T) {
	const (
		orgID   = "acme-corp-x1y2z3"
		guestID = "guest-identity-1"
		newID   = "identity-permanent"
		email   = "owner@acme.test"
	)

	demoOrg := func(clk *clock.Mock) *types.Organization {
		expiresAt := clk.Now().Add(24 * time.Hour)
		return &types.Organization{ID: orgID, IsDemo: true, DemoExpiresAt: &expiresAt}
	}
	guestUser := &types.User{
		ID:               "user-row-1",
		OrgID:            orgID,
		KratosIdentityID: guestID,
		Role:             types.RoleOwner,
		Status:           types.UserStatusActive,
		IsDemo:           true,
	}

	testCases := []struct {
		name           string
		password       string
		setupMocks     func(*demoMocks, *clock.Mock)
		validateResult func(*testing.T, *UpgradeResult)
		expectedErr    error
		expectAnyErr   bool
	}{
		{
			name:        "short password rejected before identity creation",
			password:    "short",
			setupMocks:  func(*demoMocks, *clock.Mock) {},
			expectedErr: ErrPasswordTooShort,
		},
		{
			name:     "success",
			password: "password123",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(demoOrg(clk), nil)
				m.storage.EXPECT().ListUsersByOrgID(gomock.Any(), orgID).Return([]*types.User{guestUser}, nil)
				m.identity.EXPECT().CreateIdentity(gomock.Any(), email, "password123", "Ada Owner").Return(newID, nil)
				m.storage.EXPECT().UpdateOrganization(gomock.Any(), gomock.Any(), []string{"is_demo", "demo_expires_at"}).DoAndReturn(
					func(_ context.Context, org *types.Organization, _ []string) error {
						if org.IsDemo || org.DemoExpiresAt != nil {
							return errors.New("expected demo flags cleared")
						}
						return nil
					})
				m.storage.EXPECT().UpdateUserStatus(gomock.Any(), "user-row-1", types.UserStatusUpgraded).Return(nil)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *types.User) (*types.User, error) {
						if user.KratosIdentityID != newID || user.Role != types.RoleOwner || user.IsDemo {
							return nil, errors.New("unexpected owner row")
						}
						return user, nil
					})
				m.authz.EXPECT().AssignOrganizationOwner(gomock.Any(), orgID, newID).Return(nil)
				m.identity.EXPECT().CreateSessionToken(gomock.Any(), email, "password123").Return("session-token", nil)
				m.authz.EXPECT().RemoveOrganizationOwner(gomock.Any(), orgID, guestID).Return(nil)
				m.identity.EXPECT().DeleteIdentity(gomock.Any(), guestID).Return(nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			validateResult: func(t *testing.T, result *UpgradeResult) {
				if result.IdentityID != newID || result.SessionToken != "session-token" {
					t.Errorf("unexpected result: %+v", result)
				}
			},
		},
		{
			name:     "missing guest row still converts",
			password: "password123",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(demoOrg(clk), nil)
				m.storage.EXPECT().ListUsersByOrgID(gomock.Any(), orgID).Return([]*types.User{}, nil)
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
				m.identity.EXPECT().CreateIdentity(gomock.Any(), email, "password123", "Ada Owner").Return(newID, nil)
				m.storage.EXPECT().UpdateOrganization(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				m.storage.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, user *types.User) (*types.User, error) {
						return user, nil
					})
				m.authz.EXPECT().AssignOrganizationOwner(gomock.Any(), orgID, newID).Return(nil)
				m.identity.EXPECT().CreateSessionToken(gomock.Any(), email, "password123").Return("session-token", nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name:     "email already registered",
			password: "password123",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(demoOrg(clk), nil)
				m.storage.EXPECT().ListUsersByOrgID(gomock.Any(), orgID).Return([]*types.User{guestUser}, nil)
				m.identity.EXPECT().CreateIdentity(gomock.Any(), email, "password123", "Ada Owner").Return("", kratos.ErrIdentityExists)
			},
			expectedErr: ErrEmailTaken,
		},
		{
			name:     "not a demo",
			password: "password123",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
			},
			expectedErr: ErrNotDemo,
		},
		{
			name:     "expired demo",
			password: "password123",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				expiresAt := clk.Now().Add(-time.Minute)
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(
					&types.Organization{ID: orgID, IsDemo: true, DemoExpiresAt: &expiresAt}, nil)
			},
			expectedErr: ErrExpired,
		},
		{
			name:     "conversion failure deletes the new identity",
			password: "password123",
			setupMocks: func(m *demoMocks, clk *clock.Mock) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(demoOrg(clk), nil)
				m.storage.EXPECT().ListUsersByOrgID(gomock.Any(), orgID).Return([]*types.User{guestUser}, nil)
				m.identity.EXPECT().CreateIdentity(gomock.Any(), email, "password123", "Ada Owner").Return(newID, nil)
				m.storage.EXPECT().UpdateOrganization(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))
				m.identity.EXPECT().DeleteIdentity(gomock.Any(), newID).Return(nil)
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectAnyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clk := clock.NewMock()
			s, m := newTestService(ctrl, clk, "demo.Service.Upgrade")
			tc.setupMocks(m, clk)

			result, err := s.Upgrade(context.Background(), orgID, email, tc.password, "Ada Owner")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if tc.expectAnyErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.validateResult != nil {
				tc.validateResult(t, result)
			}
		})
	}
}

func TestService_Cleanup(t *testing.T) {
	org1 := &types.Organization{ID: "demo-org-1", IsDemo: true}
	org2 := &types.Organization{ID: "demo-org-2", IsDemo: true}
	guestOf := func(orgID, identityID string) *types.User {
		return &types.User{OrgID: orgID, KratosIdentityID: identityID, IsDemo: true}
	}

	testCases := []struct {
		name           string
		setupMocks     func(*demoMocks)
		validateReport func(*testing.T, *CleanupReport)
		expectedErr    bool
	}{
		{
			name: "deletes expired demos",
			setupMocks: func(m *demoMocks) {
				m.storage.EXPECT().ListExpiredDemoOrganizations(gomock.Any(), gomock.Any()).Return(
					[]*types.Organization{org1, org2}, nil)
				m.storage.EXPECT().ListUsersByOrgID(gomock.Any(), "demo-org-1").Return([]*types.User{guestOf("demo-org-1", "guest-1")}, nil)
				m.identity.EXPECT().DeleteIdentity(gomock.Any(), "guest-1").Return(nil)
				m.provisioner.EXPECT().Delete(gomock.Any(), "demo-org-1", true).Return(&organization.DeleteResult{OrgID: "demo-org-1"}, nil)
				m.storage.EXPECT().ListUsersByOrgID(gomock.Any(), "demo-org-2").Return([]*types.User{guestOf("demo-org-2", "guest-2")}, nil)
				m.identity.EXPECT().DeleteIdentity(gomock.Any(), "guest-2").Return(nil)
				m.provisioner.EXPECT().Delete(gomock.Any(), "demo-org-2", true).Return(&organization.DeleteResult{OrgID: "demo-org-2"}, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any()).Times(2)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			validateReport: func(t *testing.T, report *CleanupReport) {
				if report.Scanned != 2 || report.Deleted != 2 || report.Failed != 0 {
					t.Errorf("unexpected report: %+v", report)
				}
			},
		},
		{
			name: "nothing to do",
			setupMocks: func(m *demoMocks) {
				m.storage.EXPECT().ListExpiredDemoOrganizations(gomock.Any(), gomock.Any()).Return(nil, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			validateReport: func(t *testing.T, report *CleanupReport) {
				if report.Scanned != 0 || report.Deleted != 0 || report.Failed != 0 {
					t.Errorf("unexpected report: %+v", report)
				}
			},
		},
		{
			name: "aggregates failures without aborting",
			setupMocks: func(m *demoMocks) {
				m.storage.EXPECT().ListExpiredDemoOrganizations(gomock.Any(), gomock.Any()).Return(
					[]*types.Organization{org1, org2}, nil)
				m.storage.EXPECT().ListUsersByOrgID(gomock.Any(), "demo-org-1").Return([]*types.User{guestOf("demo-org-1", "guest-1")}, nil)
				m.identity.EXPECT().DeleteIdentity(gomock.Any(), "guest-1").Return(nil)
				m.provisioner.EXPECT().Delete(gomock.Any(), "demo-org-1", true).Return(nil, errors.New("cascade error"))
				m.storage.EXPECT().ListUsersByOrgID(gomock.Any(), "demo-org-2").Return([]*types.User{guestOf("demo-org-2", "guest-2")}, nil)
				m.identity.EXPECT().DeleteIdentity(gomock.Any(), "guest-2").Return(nil)
				m.provisioner.EXPECT().Delete(gomock.Any(), "demo-org-2", true).Return(&organization.DeleteResult{OrgID: "demo-org-2"}, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any())
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			validateReport: func(t *testing.T, report *CleanupReport) {
				if report.Scanned != 2 || report.Deleted != 1 || report.Failed != 1 {
					t.Errorf("unexpected report: %+v", report)
				}
			},
			expectedErr: true,
		},
		{
			name: "already deleted organization counts as deleted",
			setupMocks: func(m *demoMocks) {
				m.storage.EXPECT().ListExpiredDemoOrganizations(gomock.Any(), gomock.Any()).Return(
					[]*types.Organization{org1}, nil)
				m.storage.EXPECT().ListUsersByOrgID(gomock.Any(), "demo-org-1").Return(nil, nil)
				m.provisioner.EXPECT().Delete(gomock.Any(), "demo-org-1", true).Return(nil, organization.ErrNotFound)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any())
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			validateReport: func(t *testing.T, report *CleanupReport) {
				if report.Deleted != 1 || report.Failed != 0 {
					t.Errorf("unexpected report: %+v", report)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clk := clock.NewMock()
			s, m := newTestService(ctrl, clk, "demo.Service.Cleanup")
			tc.setupMocks(m)

			report, err := s.Cleanup(context.Background())

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.validateReport != nil {
				tc.validateReport(t, report)
			}
		})
	}
}
