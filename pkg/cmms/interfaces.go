// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmms

import (
	"context"
	"time"

	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/authentication"
)

type ServiceInterface interface {
	CreateWorkOrder(ctx context.Context, p *authentication.Principal, req *WorkOrderRequest) (*WorkOrder, error)
	GetWorkOrder(ctx context.Context, p *authentication.Principal, id string) (*WorkOrder, error)
	ListWorkOrders(ctx context.Context, p *authentication.Principal, status string, page, size int64) (*WorkOrderList, error)
	UpdateWorkOrder(ctx context.Context, p *authentication.Principal, id string, req *WorkOrderRequest) (*WorkOrder, error)
	TransitionWorkOrder(ctx context.Context, p *authentication.Principal, id, status string) (*WorkOrder, error)
	DeleteWorkOrder(ctx context.Context, p *authentication.Principal, id string) error

	CreateAsset(ctx context.Context, p *authentication.Principal, req *AssetRequest) (*Asset, error)
	GetAsset(ctx context.Context, p *authentication.Principal, id string) (*Asset, error)
	ListAssets(ctx context.Context, p *authentication.Principal) (*AssetList, error)
	UpdateAsset(ctx context.Context, p *authentication.Principal, id string, req *AssetRequest) (*Asset, error)
	DeleteAsset(ctx context.Context, p *authentication.Principal, id string) error

	CreatePart(ctx context.Context, p *authentication.Principal, req *PartRequest) (*Part, error)
	GetPart(ctx context.Context, p *authentication.Principal, id string) (*Part, error)
	ListParts(ctx context.Context, p *authentication.Principal) (*PartList, error)
	ListLowStockParts(ctx context.Context, p *authentication.Principal) (*PartList, error)
	UpdatePart(ctx context.Context, p *authentication.Principal, id string, req *PartRequest) (*Part, error)
	AdjustStock(ctx context.Context, p *authentication.Principal, id string, delta int) (*Part, error)
	DeletePart(ctx context.Context, p *authentication.Principal, id string) error

	CreatePMRule(ctx context.Context, p *authentication.Principal, req *PMRuleRequest) (*PMRule, error)
	GetPMRule(ctx context.Context, p *authentication.Principal, id string) (*PMRule, error)
	ListPMRules(ctx context.Context, p *authentication.Principal) (*PMRuleList, error)
	UpdatePMRule(ctx context.Context, p *authentication.Principal, id string, req *PMRuleRequest) (*PMRule, error)
	DeletePMRule(ctx context.Context, p *authentication.Principal, id string) error
	RunDuePMRules(ctx context.Context, p *authentication.Principal) (*RunDueResult, error)
}

// StorageInterface is the slice of the store the CMMS resources touch.
type StorageInterface interface {
	GetRateLimits(ctx context.Context, orgID string) (*types.RateLimits, error)

	CreateWorkOrder(ctx context.Context, wo *types.WorkOrder) (*types.WorkOrder, error)
	GetWorkOrderByID(ctx context.Context, orgID, id string) (*types.WorkOrder, error)
	ListWorkOrdersByOrgID(ctx context.Context, orgID, status string, page, size int64) ([]*types.WorkOrder, error)
	UpdateWorkOrder(ctx context.Context, wo *types.WorkOrder, paths []string) error
	DeleteWorkOrder(ctx context.Context, orgID, id string) error
	CountWorkOrdersCreatedSince(ctx context.Context, orgID string, since time.Time) (int64, error)

	CreateAsset(ctx context.Context, asset *types.Asset) (*types.Asset, error)
	GetAssetByID(ctx context.Context, orgID, id string) (*types.Asset, error)
	ListAssetsByOrgID(ctx context.Context, orgID string) ([]*types.Asset, error)
	UpdateAsset(ctx context.Context, asset *types.Asset, paths []string) error
	DeleteAsset(ctx context.Context, orgID, id string) error
	CountAssetsByOrgID(ctx context.Context, orgID string) (int64, error)

	CreatePart(ctx context.Context, part *types.Part) (*types.Part, error)
	GetPartByID(ctx context.Context, orgID, id string) (*types.Part, error)
	ListPartsByOrgID(ctx context.Context, orgID string) ([]*types.Part, error)
	ListLowStockParts(ctx context.Context, orgID string) ([]*types.Part, error)
	UpdatePart(ctx context.Context, part *types.Part, paths []string) error
	AdjustPartQuantity(ctx context.Context, orgID, id string, delta int) (*types.Part, error)
	DeletePart(ctx context.Context, orgID, id string) error

	CreatePMScheduleRule(ctx context.Context, rule *types.PMScheduleRule) (*types.PMScheduleRule, error)
	GetPMScheduleRuleByID(ctx context.Context, orgID, id string) (*types.PMScheduleRule, error)
	ListPMScheduleRulesByOrgID(ctx context.Context, orgID string) ([]*types.PMScheduleRule, error)
	ListActivePMScheduleRulesByOrgID(ctx context.Context, orgID string) ([]*types.PMScheduleRule, error)
	UpdatePMScheduleRule(ctx context.Context, rule *types.PMScheduleRule, paths []string) error
	DeletePMScheduleRule(ctx context.Context, orgID, id string) error
}

// AuthzInterface answers the fine grained permission checks.
type AuthzInterface interface {
	CheckOrganizationAccess(context.Context, string, string, string) (bool, error)
}
