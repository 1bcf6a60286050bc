// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package assistant

import (
	"context"
	"time"

	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/authentication"
)

type ServiceInterface interface {
	Chat(ctx context.Context, p *authentication.Principal, message string) (*ChatResponse, error)
}

// StorageInterface is the slice of the store the assistant reads, plus the
// usage counter it bumps per request.
type StorageInterface interface {
	GetRateLimits(ctx context.Context, orgID string) (*types.RateLimits, error)
	IncrementAIUsage(ctx context.Context, orgID string, day time.Time) (int, error)

	CountWorkOrdersByStatus(ctx context.Context, orgID, status string) (int64, error)
	CountAssetsByOrgID(ctx context.Context, orgID string) (int64, error)
	ListLowStockParts(ctx context.Context, orgID string) ([]*types.Part, error)
	ListActivePMScheduleRulesByOrgID(ctx context.Context, orgID string) ([]*types.PMScheduleRule, error)
}

type AuthzInterface interface {
	CheckOrganizationAccess(context.Context, string, string, string) (bool, error)
}
