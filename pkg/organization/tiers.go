// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import "github.com/canonical/chatterfix/internal/types"

// Limit names used in the rate_limits document.
const (
	LimitAIRequestsPerDay   = "ai_requests_per_day"
	LimitWorkOrdersPerMonth = "work_orders_per_month"
	LimitAssetsMax          = "assets_max"
	LimitTeamMembersMax     = "team_members_max"
)

// DefaultTier applies when a bootstrap request does not name one.
const DefaultTier = types.TierFree

// LimitsForTier maps a subscription tier to its quota set. It is a pure
// function of the tier: forced re-bootstrap and demo upgrade both recompute
// the rate-limit document from this table alone. Unknown tiers fall back to
// the free quotas.
func LimitsForTier(tier string) map[string]int {
	switch tier {
	case types.TierStarter:
		return map[string]int{
			LimitAIRequestsPerDay:   100,
			LimitWorkOrdersPerMonth: 250,
			LimitAssetsMax:          250,
			LimitTeamMembersMax:     10,
		}
	case types.TierProfessional:
		return map[string]int{
			LimitAIRequestsPerDay:   500,
			LimitWorkOrdersPerMonth: 2500,
			LimitAssetsMax:          2500,
			LimitTeamMembersMax:     50,
		}
	case types.TierEnterprise:
		return map[string]int{
			LimitAIRequestsPerDay:   5000,
			LimitWorkOrdersPerMonth: 25000,
			LimitAssetsMax:          25000,
			LimitTeamMembersMax:     250,
		}
	default:
		return map[string]int{
			LimitAIRequestsPerDay:   10,
			LimitWorkOrdersPerMonth: 25,
			LimitAssetsMax:          25,
			LimitTeamMembersMax:     3,
		}
	}
}
