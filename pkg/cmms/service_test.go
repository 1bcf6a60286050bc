// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/chatterfix/internal/authorization"
	"github.com/canonical/chatterfix/internal/storage"
	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/authentication"
	"github.com/canonical/chatterfix/pkg/organization"
)

//go:generate mockgen -build_flags=--mod=mod -package cmms -destination ./mock_cmms.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package cmms -destination ./mock_validation.go -source=../../internal/validation/validation.go
//go:generate mockgen -build_flags=--mod=mod -package cmms -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package cmms -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package cmms -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type cmmsMocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthzInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newTestService(ctrl *gomock.Controller, clk clock.Clock, span string) (*Service, *cmmsMocks) {
	m := &cmmsMocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), span).Return(context.Background(), trace.SpanFromContext(context.Background()))

	s := NewService(m.storage, m.authz, clk, mockTracer, NewMockMonitorInterface(ctrl), m.logger)
	return s, m
}

func testPrincipal() *authentication.Principal {
	return &authentication.Principal{
		UserID:         "user-1",
		OrganizationID: "org-1",
		Email:          "jane@acme.test",
		Role:           types.RoleOwner,
	}
}

func (m *cmmsMocks) expectAccess(permission string, allowed bool) {
	m.authz.EXPECT().
		CheckOrganizationAccess(gomock.Any(), "org-1", "user-1", permission).
		Return(allowed, nil)
	if !allowed {
		m.logger.EXPECT().Security().Return(m.security)
		m.security.EXPECT().AuthzFailure("user-1", permission)
	}
}

func TestService_CreateWorkOrder(t *testing.T) {
	testCases := []struct {
		name        string
		req         *WorkOrderRequest
		setupMocks  func(*cmmsMocks, *clock.Mock)
		expectedErr error
		validate    func(*testing.T, *WorkOrder)
	}{
		{
			name: "creates an open work order with defaults",
			req:  &WorkOrderRequest{Title: "Fix conveyor belt"},
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.expectAccess(authorization.CAN_CREATE_PERMISSION, true)
				m.storage.EXPECT().GetRateLimits(gomock.Any(), "org-1").Return(&types.RateLimits{
					OrgID:  "org-1",
					Tier:   types.TierFree,
					Limits: organization.LimitsForTier(types.TierFree),
				}, nil)
				m.storage.EXPECT().
					CountWorkOrdersCreatedSince(gomock.Any(), "org-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, since time.Time) (int64, error) {
						now := clk.Now().UTC()
						monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
						if !since.Equal(monthStart) {
							t.Errorf("expected count since %v, got %v", monthStart, since)
						}
						return 3, nil
					})
				m.storage.EXPECT().
					CreateWorkOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, wo *types.WorkOrder) (*types.WorkOrder, error) {
						if wo.OrgID != "org-1" || wo.CreatedBy != "user-1" {
							t.Errorf("expected caller scoping, got %+v", wo)
						}
						if wo.Status != types.WorkOrderStatusOpen {
							t.Errorf("expected new work orders to open, got %q", wo.Status)
						}
						if wo.Priority != types.PriorityMedium {
							t.Errorf("expected the default priority, got %q", wo.Priority)
						}
						created := *wo
						created.ID = "wo-1"
						return &created, nil
					})
			},
			validate: func(t *testing.T, wo *WorkOrder) {
				if wo.ID != "wo-1" || wo.Status != types.WorkOrderStatusOpen {
					t.Errorf("unexpected work order: %+v", wo)
				}
			},
		},
		{
			name: "monthly quota reached",
			req:  &WorkOrderRequest{Title: "Fix conveyor belt"},
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.expectAccess(authorization.CAN_CREATE_PERMISSION, true)
				m.storage.EXPECT().GetRateLimits(gomock.Any(), "org-1").Return(&types.RateLimits{
					OrgID:  "org-1",
					Limits: organization.LimitsForTier(types.TierFree),
				}, nil)
				m.storage.EXPECT().
					CountWorkOrdersCreatedSince(gomock.Any(), "org-1", gomock.Any()).
					Return(int64(25), nil)
			},
			expectedErr: ErrLimitExceeded,
		},
		{
			name: "missing rate limits skips enforcement",
			req:  &WorkOrderRequest{Title: "Fix conveyor belt", Priority: types.PriorityHigh},
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.expectAccess(authorization.CAN_CREATE_PERMISSION, true)
				m.storage.EXPECT().GetRateLimits(gomock.Any(), "org-1").Return(nil, storage.ErrNotFound)
				m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
				m.storage.EXPECT().
					CreateWorkOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, wo *types.WorkOrder) (*types.WorkOrder, error) {
						created := *wo
						created.ID = "wo-1"
						return &created, nil
					})
			},
			validate: func(t *testing.T, wo *WorkOrder) {
				if wo.Priority != types.PriorityHigh {
					t.Errorf("expected the requested priority, got %q", wo.Priority)
				}
			},
		},
		{
			name: "permission denied",
			req:  &WorkOrderRequest{Title: "Fix conveyor belt"},
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.expectAccess(authorization.CAN_CREATE_PERMISSION, false)
			},
			expectedErr: ErrForbidden,
		},
		{
			name: "unknown asset reference",
			req:  &WorkOrderRequest{Title: "Fix conveyor belt"},
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.expectAccess(authorization.CAN_CREATE_PERMISSION, true)
				m.storage.EXPECT().GetRateLimits(gomock.Any(), "org-1").Return(&types.RateLimits{
					OrgID:  "org-1",
					Limits: map[string]int{},
				}, nil)
				m.storage.EXPECT().
					CreateWorkOrder(gomock.Any(), gomock.Any()).
					Return(nil, storage.ErrForeignKeyViolation)
			},
			expectedErr: ErrInvalidReference,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clk := clock.NewMock()
			clk.Set(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

			service, m := newTestService(ctrl, clk, "cmms.Service.CreateWorkOrder")
			tc.setupMocks(m, clk)

			wo, err := service.CreateWorkOrder(context.Background(), testPrincipal(), tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tc.validate != nil {
				tc.validate(t, wo)
			}
		})
	}
}

func TestService_TransitionWorkOrder(t *testing.T) {
	testCases := []struct {
		name        string
		from        string
		to          string
		setupMocks  func(*cmmsMocks, *clock.Mock)
		expectedErr error
		validate    func(*testing.T, *clock.Mock, *WorkOrder)
	}{
		{
			name: "assigns an open work order",
			from: types.WorkOrderStatusOpen,
			to:   types.WorkOrderStatusAssigned,
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.storage.EXPECT().
					UpdateWorkOrder(gomock.Any(), gomock.Any(), []string{"status"}).
					Return(nil)
			},
			validate: func(t *testing.T, clk *clock.Mock, wo *WorkOrder) {
				if wo.Status != types.WorkOrderStatusAssigned {
					t.Errorf("expected assigned, got %q", wo.Status)
				}
				if wo.CompletedAt != nil {
					t.Error("expected no completion timestamp")
				}
			},
		},
		{
			name: "completion stamps the timestamp",
			from: types.WorkOrderStatusInProgress,
			to:   types.WorkOrderStatusCompleted,
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.storage.EXPECT().
					UpdateWorkOrder(gomock.Any(), gomock.Any(), []string{"status", "completed_at"}).
					DoAndReturn(func(_ context.Context, wo *types.WorkOrder, _ []string) error {
						if wo.CompletedAt == nil || !wo.CompletedAt.Equal(clk.Now().UTC()) {
							t.Errorf("expected completed_at from the clock, got %v", wo.CompletedAt)
						}
						return nil
					})
			},
			validate: func(t *testing.T, clk *clock.Mock, wo *WorkOrder) {
				if wo.CompletedAt == nil || !wo.CompletedAt.Equal(clk.Now().UTC()) {
					t.Errorf("expected a completion timestamp, got %v", wo.CompletedAt)
				}
			},
		},
		{
			name: "cancel from on hold",
			from: types.WorkOrderStatusOnHold,
			to:   types.WorkOrderStatusCancelled,
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.storage.EXPECT().
					UpdateWorkOrder(gomock.Any(), gomock.Any(), []string{"status"}).
					Return(nil)
			},
		},
		{
			name:        "open cannot complete directly",
			from:        types.WorkOrderStatusOpen,
			to:          types.WorkOrderStatusCompleted,
			setupMocks:  func(m *cmmsMocks, clk *clock.Mock) {},
			expectedErr: ErrInvalidTransition,
		},
		{
			name:        "completed work orders are frozen",
			from:        types.WorkOrderStatusCompleted,
			to:          types.WorkOrderStatusInProgress,
			setupMocks:  func(m *cmmsMocks, clk *clock.Mock) {},
			expectedErr: ErrInvalidTransition,
		},
		{
			name:        "cancelled work orders are frozen",
			from:        types.WorkOrderStatusCancelled,
			to:          types.WorkOrderStatusOpen,
			setupMocks:  func(m *cmmsMocks, clk *clock.Mock) {},
			expectedErr: ErrInvalidTransition,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clk := clock.NewMock()
			clk.Set(time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC))

			service, m := newTestService(ctrl, clk, "cmms.Service.TransitionWorkOrder")
			m.expectAccess(authorization.CAN_EDIT_PERMISSION, true)
			m.storage.EXPECT().
				GetWorkOrderByID(gomock.Any(), "org-1", "wo-1").
				Return(&types.WorkOrder{ID: "wo-1", OrgID: "org-1", Title: "Fix conveyor belt", Status: tc.from}, nil)
			tc.setupMocks(m, clk)

			wo, err := service.TransitionWorkOrder(context.Background(), testPrincipal(), "wo-1", tc.to)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if wo.Status != tc.to {
				t.Errorf("expected status %q, got %q", tc.to, wo.Status)
			}
			if tc.validate != nil {
				tc.validate(t, clk, wo)
			}
		})
	}
}

func TestService_TransitionWorkOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, clock.NewMock(), "cmms.Service.TransitionWorkOrder")
	m.expectAccess(authorization.CAN_EDIT_PERMISSION, true)
	m.storage.EXPECT().
		GetWorkOrderByID(gomock.Any(), "org-1", "wo-404").
		Return(nil, storage.ErrNotFound)

	_, err := service.TransitionWorkOrder(context.Background(), testPrincipal(), "wo-404", types.WorkOrderStatusAssigned)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_CreateAsset(t *testing.T) {
	testCases := []struct {
		name        string
		req         *AssetRequest
		setupMocks  func(*cmmsMocks)
		expectedErr error
		validate    func(*testing.T, *Asset)
	}{
		{
			name: "creates with defaults",
			req:  &AssetRequest{Name: "Conveyor Belt A"},
			setupMocks: func(m *cmmsMocks) {
				m.expectAccess(authorization.CAN_CREATE_PERMISSION, true)
				m.storage.EXPECT().GetRateLimits(gomock.Any(), "org-1").Return(&types.RateLimits{
					OrgID:  "org-1",
					Limits: organization.LimitsForTier(types.TierFree),
				}, nil)
				m.storage.EXPECT().CountAssetsByOrgID(gomock.Any(), "org-1").Return(int64(4), nil)
				m.storage.EXPECT().
					CreateAsset(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, asset *types.Asset) (*types.Asset, error) {
						if asset.Status != types.AssetStatusOperational {
							t.Errorf("expected operational default, got %q", asset.Status)
						}
						if asset.Criticality != types.PriorityMedium {
							t.Errorf("expected medium default, got %q", asset.Criticality)
						}
						created := *asset
						created.ID = "asset-1"
						return &created, nil
					})
			},
			validate: func(t *testing.T, asset *Asset) {
				if asset.ID != "asset-1" || asset.Status != types.AssetStatusOperational {
					t.Errorf("unexpected asset: %+v", asset)
				}
			},
		},
		{
			name: "asset quota reached",
			req:  &AssetRequest{Name: "Conveyor Belt A"},
			setupMocks: func(m *cmmsMocks) {
				m.expectAccess(authorization.CAN_CREATE_PERMISSION, true)
				m.storage.EXPECT().GetRateLimits(gomock.Any(), "org-1").Return(&types.RateLimits{
					OrgID:  "org-1",
					Limits: organization.LimitsForTier(types.TierFree),
				}, nil)
				m.storage.EXPECT().CountAssetsByOrgID(gomock.Any(), "org-1").Return(int64(25), nil)
			},
			expectedErr: ErrLimitExceeded,
		},
		{
			name: "permission denied",
			req:  &AssetRequest{Name: "Conveyor Belt A"},
			setupMocks: func(m *cmmsMocks) {
				m.expectAccess(authorization.CAN_CREATE_PERMISSION, false)
			},
			expectedErr: ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, clock.NewMock(), "cmms.Service.CreateAsset")
			tc.setupMocks(m)

			asset, err := service.CreateAsset(context.Background(), testPrincipal(), tc.req)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tc.validate != nil {
				tc.validate(t, asset)
			}
		})
	}
}

func TestService_AdjustStock(t *testing.T) {
	testCases := []struct {
		name        string
		delta       int
		setupMocks  func(*cmmsMocks)
		expectedErr error
		validate    func(*testing.T, *Part)
	}{
		{
			name:  "withdrawal drops below the reorder threshold",
			delta: -3,
			setupMocks: func(m *cmmsMocks) {
				m.expectAccess(authorization.CAN_EDIT_PERMISSION, true)
				m.storage.EXPECT().
					AdjustPartQuantity(gomock.Any(), "org-1", "part-1", -3).
					Return(&types.Part{ID: "part-1", OrgID: "org-1", Name: "Bearing", Quantity: 2, MinQuantity: 5}, nil)
			},
			validate: func(t *testing.T, part *Part) {
				if part.Quantity != 2 {
					t.Errorf("expected quantity 2, got %d", part.Quantity)
				}
				if !part.LowStock {
					t.Error("expected the part flagged as low stock")
				}
			},
		},
		{
			name:  "stock cannot go negative",
			delta: -10,
			setupMocks: func(m *cmmsMocks) {
				m.expectAccess(authorization.CAN_EDIT_PERMISSION, true)
				m.storage.EXPECT().
					AdjustPartQuantity(gomock.Any(), "org-1", "part-1", -10).
					Return(nil, storage.ErrCheckViolation)
			},
			expectedErr: ErrInsufficientStock,
		},
		{
			name:  "part not found",
			delta: 5,
			setupMocks: func(m *cmmsMocks) {
				m.expectAccess(authorization.CAN_EDIT_PERMISSION, true)
				m.storage.EXPECT().
					AdjustPartQuantity(gomock.Any(), "org-1", "part-1", 5).
					Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, clock.NewMock(), "cmms.Service.AdjustStock")
			tc.setupMocks(m)

			part, err := service.AdjustStock(context.Background(), testPrincipal(), "part-1", tc.delta)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tc.validate != nil {
				tc.validate(t, part)
			}
		})
	}
}

func TestService_CreatePart_DuplicateNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, clock.NewMock(), "cmms.Service.CreatePart")
	m.expectAccess(authorization.CAN_CREATE_PERMISSION, true)
	m.storage.EXPECT().
		CreatePart(gomock.Any(), gomock.Any()).
		Return(nil, storage.ErrDuplicateKey)

	_, err := service.CreatePart(context.Background(), testPrincipal(), &PartRequest{Name: "Bearing", PartNumber: "BRG-001"})
	if !errors.Is(err, ErrPartNumberTaken) {
		t.Fatalf("expected ErrPartNumberTaken, got %v", err)
	}
}

func TestService_ListLowStockParts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, clock.NewMock(), "cmms.Service.ListLowStockParts")
	m.expectAccess(authorization.CAN_VIEW_PERMISSION, true)
	m.storage.EXPECT().ListLowStockParts(gomock.Any(), "org-1").Return([]*types.Part{
		{ID: "part-1", Name: "Bearing", Quantity: 2, MinQuantity: 5},
		{ID: "part-2", Name: "Drive Belt", Quantity: 0, MinQuantity: 2},
	}, nil)

	list, err := service.ListLowStockParts(context.Background(), testPrincipal())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(list.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(list.Parts))
	}
	for _, part := range list.Parts {
		if !part.LowStock {
			t.Errorf("expected part %s flagged as low stock", part.ID)
		}
	}
}

func TestService_RunDuePMRules(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	daysAgo := func(d int) *time.Time {
		ts := now.Add(-time.Duration(d) * 24 * time.Hour)
		return &ts
	}
	assetID := "asset-1"

	testCases := []struct {
		name       string
		setupMocks func(*cmmsMocks, *clock.Mock)
		expected   *RunDueResult
	}{
		{
			name: "generates for due rules and stamps them",
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.storage.EXPECT().ListActivePMScheduleRulesByOrgID(gomock.Any(), "org-1").Return([]*types.PMScheduleRule{
					{
						ID: "rule-1", OrgID: "org-1", Name: "Grease bearings", AssetID: &assetID,
						TaskTemplate: "Apply grease to all bearing points", IntervalDays: 7,
						Priority: types.PriorityHigh, Active: true, LastRunAt: daysAgo(10),
					},
					{
						ID: "rule-2", OrgID: "org-1", Name: "Filter swap",
						TaskTemplate: "Replace intake filter", IntervalDays: 7,
						Priority: types.PriorityLow, Active: true, LastRunAt: daysAgo(2),
					},
				}, nil)
				m.storage.EXPECT().
					CreateWorkOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, wo *types.WorkOrder) (*types.WorkOrder, error) {
						if wo.Title != "PM: Grease bearings" {
							t.Errorf("unexpected title %q", wo.Title)
						}
						if wo.Description != "Apply grease to all bearing points" {
							t.Errorf("unexpected description %q", wo.Description)
						}
						if wo.AssetID == nil || *wo.AssetID != assetID {
							t.Errorf("expected the rule's asset, got %v", wo.AssetID)
						}
						if wo.Priority != types.PriorityHigh || wo.CreatedBy != "user-1" {
							t.Errorf("unexpected work order: %+v", wo)
						}
						created := *wo
						created.ID = "wo-1"
						return &created, nil
					})
				m.storage.EXPECT().
					UpdatePMScheduleRule(gomock.Any(), gomock.Any(), []string{"last_run_at"}).
					DoAndReturn(func(_ context.Context, rule *types.PMScheduleRule, _ []string) error {
						if rule.ID != "rule-1" {
							t.Errorf("expected rule-1 stamped, got %s", rule.ID)
						}
						if rule.LastRunAt == nil || !rule.LastRunAt.Equal(clk.Now().UTC()) {
							t.Errorf("expected last_run_at from the clock, got %v", rule.LastRunAt)
						}
						return nil
					})
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: &RunDueResult{Checked: 2, Generated: 1},
		},
		{
			name: "rule that never ran falls due from its creation time",
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.storage.EXPECT().ListActivePMScheduleRulesByOrgID(gomock.Any(), "org-1").Return([]*types.PMScheduleRule{
					{
						ID: "rule-1", OrgID: "org-1", Name: "Inspect gearbox",
						TaskTemplate: "Check oil level and listen for grinding", IntervalDays: 7,
						Priority: types.PriorityMedium, Active: true, CreatedAt: *daysAgo(30),
					},
				}, nil)
				m.storage.EXPECT().
					CreateWorkOrder(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, wo *types.WorkOrder) (*types.WorkOrder, error) {
						created := *wo
						created.ID = "wo-1"
						return &created, nil
					})
				m.storage.EXPECT().
					UpdatePMScheduleRule(gomock.Any(), gomock.Any(), []string{"last_run_at"}).
					Return(nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: &RunDueResult{Checked: 1, Generated: 1},
		},
		{
			name: "nothing due",
			setupMocks: func(m *cmmsMocks, clk *clock.Mock) {
				m.storage.EXPECT().ListActivePMScheduleRulesByOrgID(gomock.Any(), "org-1").Return([]*types.PMScheduleRule{
					{
						ID: "rule-1", OrgID: "org-1", Name: "Grease bearings",
						TaskTemplate: "Apply grease", IntervalDays: 7,
						Priority: types.PriorityHigh, Active: true, LastRunAt: daysAgo(1),
					},
				}, nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: &RunDueResult{Checked: 1, Generated: 0},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			clk := clock.NewMock()
			clk.Set(now)

			service, m := newTestService(ctrl, clk, "cmms.Service.RunDuePMRules")
			m.expectAccess(authorization.CAN_EDIT_PERMISSION, true)
			tc.setupMocks(m, clk)

			result, err := service.RunDuePMRules(context.Background(), testPrincipal())
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Checked != tc.expected.Checked || result.Generated != tc.expected.Generated {
				t.Errorf("expected %+v, got %+v", tc.expected, result)
			}
		})
	}
}

func TestService_DeleteWorkOrder(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*cmmsMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *cmmsMocks) {
				m.expectAccess(authorization.CAN_DELETE_PERMISSION, true)
				m.storage.EXPECT().DeleteWorkOrder(gomock.Any(), "org-1", "wo-1").Return(nil)
			},
		},
		{
			name: "not found",
			setupMocks: func(m *cmmsMocks) {
				m.expectAccess(authorization.CAN_DELETE_PERMISSION, true)
				m.storage.EXPECT().DeleteWorkOrder(gomock.Any(), "org-1", "wo-1").Return(storage.ErrNotFound)
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "deletion requires the delete permission",
			setupMocks: func(m *cmmsMocks) {
				m.expectAccess(authorization.CAN_DELETE_PERMISSION, false)
			},
			expectedErr: ErrForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, clock.NewMock(), "cmms.Service.DeleteWorkOrder")
			tc.setupMocks(m)

			err := service.DeleteWorkOrder(context.Background(), testPrincipal(), "wo-1")

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})
	}
}
