// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/chatterfix/internal/types"
)

type StorageInterface interface {
	CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, org *types.Organization, paths []string) error
	DeleteOrganization(ctx context.Context, id string) error
	ListExpiredDemoOrganizations(ctx context.Context, cutoff time.Time) ([]*types.Organization, error)

	UpsertRateLimits(ctx context.Context, limits *types.RateLimits) error
	GetRateLimits(ctx context.Context, orgID string) (*types.RateLimits, error)
	DeleteRateLimits(ctx context.Context, orgID string) (int64, error)

	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	UpsertUser(ctx context.Context, user *types.User) (*types.User, error)
	GetUserByIdentityID(ctx context.Context, identityID string) (*types.User, error)
	ListUsersByOrgID(ctx context.Context, orgID string) ([]*types.User, error)
	UpdateUserStatus(ctx context.Context, id, status string) error
	CountUsersByOrgID(ctx context.Context, orgID string) (int64, error)
	DeleteUsersByOrgID(ctx context.Context, orgID string) (int64, error)

	CreateAsset(ctx context.Context, asset *types.Asset) (*types.Asset, error)
	GetAssetByID(ctx context.Context, orgID, id string) (*types.Asset, error)
	ListAssetsByOrgID(ctx context.Context, orgID string) ([]*types.Asset, error)
	UpdateAsset(ctx context.Context, asset *types.Asset, paths []string) error
	DeleteAsset(ctx context.Context, orgID, id string) error
	CountAssetsByOrgID(ctx context.Context, orgID string) (int64, error)
	DeleteAssetsByOrgID(ctx context.Context, orgID string) (int64, error)

	CreatePart(ctx context.Context, part *types.Part) (*types.Part, error)
	GetPartByID(ctx context.Context, orgID, id string) (*types.Part, error)
	ListPartsByOrgID(ctx context.Context, orgID string) ([]*types.Part, error)
	ListLowStockParts(ctx context.Context, orgID string) ([]*types.Part, error)
	UpdatePart(ctx context.Context, part *types.Part, paths []string) error
	AdjustPartQuantity(ctx context.Context, orgID, id string, delta int) (*types.Part, error)
	DeletePart(ctx context.Context, orgID, id string) error
	CountPartsByOrgID(ctx context.Context, orgID string) (int64, error)
	DeletePartsByOrgID(ctx context.Context, orgID string) (int64, error)

	CreateWorkOrder(ctx context.Context, wo *types.WorkOrder) (*types.WorkOrder, error)
	GetWorkOrderByID(ctx context.Context, orgID, id string) (*types.WorkOrder, error)
	ListWorkOrdersByOrgID(ctx context.Context, orgID, status string, page, size int64) ([]*types.WorkOrder, error)
	UpdateWorkOrder(ctx context.Context, wo *types.WorkOrder, paths []string) error
	DeleteWorkOrder(ctx context.Context, orgID, id string) error
	CountWorkOrdersByOrgID(ctx context.Context, orgID string) (int64, error)
	CountWorkOrdersByStatus(ctx context.Context, orgID, status string) (int64, error)
	CountWorkOrdersCreatedSince(ctx context.Context, orgID string, since time.Time) (int64, error)
	DeleteWorkOrdersByOrgID(ctx context.Context, orgID string) (int64, error)

	CreatePMScheduleRule(ctx context.Context, rule *types.PMScheduleRule) (*types.PMScheduleRule, error)
	GetPMScheduleRuleByID(ctx context.Context, orgID, id string) (*types.PMScheduleRule, error)
	ListPMScheduleRulesByOrgID(ctx context.Context, orgID string) ([]*types.PMScheduleRule, error)
	ListActivePMScheduleRulesByOrgID(ctx context.Context, orgID string) ([]*types.PMScheduleRule, error)
	UpdatePMScheduleRule(ctx context.Context, rule *types.PMScheduleRule, paths []string) error
	DeletePMScheduleRule(ctx context.Context, orgID, id string) error
	CountPMScheduleRulesByOrgID(ctx context.Context, orgID string) (int64, error)
	DeletePMScheduleRulesByOrgID(ctx context.Context, orgID string) (int64, error)

	IncrementAIUsage(ctx context.Context, orgID string, day time.Time) (int, error)
	GetAIUsage(ctx context.Context, orgID string, day time.Time) (int, error)
	DeleteAIUsageByOrgID(ctx context.Context, orgID string) (int64, error)
}
