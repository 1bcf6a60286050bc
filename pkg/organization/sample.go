// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import "github.com/canonical/chatterfix/internal/types"

// The fixed sample catalog seeded into a fresh organization when the
// bootstrap request opts in. Deliberately small: enough for the dashboards to
// render something on first login, nothing a customer would mind deleting.

func sampleAssets(orgID string) []*types.Asset {
	return []*types.Asset{
		{
			OrgID:       orgID,
			Name:        "Air Compressor #1",
			Category:    "HVAC",
			Location:    "Building A - Utility Room",
			Status:      types.AssetStatusOperational,
			Criticality: "high",
		},
		{
			OrgID:       orgID,
			Name:        "Conveyor Line 2",
			Category:    "Production",
			Location:    "Main Floor",
			Status:      types.AssetStatusOperational,
			Criticality: "critical",
		},
		{
			OrgID:       orgID,
			Name:        "Forklift FL-03",
			Category:    "Vehicles",
			Location:    "Warehouse",
			Status:      types.AssetStatusMaintenance,
			Criticality: "medium",
		},
	}
}

// samplePMRules returns the sample preventive-maintenance rules. The first
// rule is attached to assetID when one is available, so the seeded data
// demonstrates the asset-to-schedule link.
func samplePMRules(orgID, assetID string) []*types.PMScheduleRule {
	var linked *string
	if assetID != "" {
		linked = &assetID
	}

	return []*types.PMScheduleRule{
		{
			OrgID:        orgID,
			Name:         "Monthly compressor inspection",
			AssetID:      linked,
			TaskTemplate: "Inspect belts, check oil level and drain condensate",
			IntervalDays: 30,
			Priority:     types.PriorityHigh,
			Active:       true,
		},
		{
			OrgID:        orgID,
			Name:         "Quarterly lubrication round",
			TaskTemplate: "Lubricate all bearings and slides on production equipment",
			IntervalDays: 90,
			Priority:     types.PriorityMedium,
			Active:       true,
		},
	}
}
