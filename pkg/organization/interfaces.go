// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	"github.com/canonical/chatterfix/internal/types"
)

type ServiceInterface interface {
	Bootstrap(ctx context.Context, orgID string, req *BootstrapRequest, force bool) (*BootstrapResult, error)
	Status(ctx context.Context, orgID string) (*StatusResult, error)
	Delete(ctx context.Context, orgID string, confirm bool) (*DeleteResult, error)
}

// StorageInterface defines the storage operations required by the
// organization package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, org *types.Organization, paths []string) error
	DeleteOrganization(ctx context.Context, id string) error

	UpsertRateLimits(ctx context.Context, limits *types.RateLimits) error
	GetRateLimits(ctx context.Context, orgID string) (*types.RateLimits, error)
	DeleteRateLimits(ctx context.Context, orgID string) (int64, error)

	UpsertUser(ctx context.Context, user *types.User) (*types.User, error)
	CountUsersByOrgID(ctx context.Context, orgID string) (int64, error)
	DeleteUsersByOrgID(ctx context.Context, orgID string) (int64, error)

	CreateAsset(ctx context.Context, asset *types.Asset) (*types.Asset, error)
	CountAssetsByOrgID(ctx context.Context, orgID string) (int64, error)
	DeleteAssetsByOrgID(ctx context.Context, orgID string) (int64, error)

	CountPartsByOrgID(ctx context.Context, orgID string) (int64, error)
	DeletePartsByOrgID(ctx context.Context, orgID string) (int64, error)

	CountWorkOrdersByOrgID(ctx context.Context, orgID string) (int64, error)
	DeleteWorkOrdersByOrgID(ctx context.Context, orgID string) (int64, error)

	CreatePMScheduleRule(ctx context.Context, rule *types.PMScheduleRule) (*types.PMScheduleRule, error)
	CountPMScheduleRulesByOrgID(ctx context.Context, orgID string) (int64, error)
	DeletePMScheduleRulesByOrgID(ctx context.Context, orgID string) (int64, error)

	DeleteAIUsageByOrgID(ctx context.Context, orgID string) (int64, error)
}

// AuthzInterface defines the authorization operations required by the
// organization package. It is a subset of the internal/authorization
// interface.
type AuthzInterface interface {
	AssignOrganizationOwner(context.Context, string, string) error
	LinkOrganizationToPrivileged(context.Context, string, string) error
	DeleteOrganization(context.Context, string) error
}
