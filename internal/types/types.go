// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

const (
	TierFree         = "free"
	TierStarter      = "starter"
	TierProfessional = "professional"
	TierEnterprise   = "enterprise"
)

// IsValidTier reports whether t is one of the plan tiers an organization can
// be provisioned with.
func IsValidTier(t string) bool {
	switch t {
	case TierFree, TierStarter, TierProfessional, TierEnterprise:
		return true
	}

	return false
}

const (
	OrgStatusActive = "active"

	UserStatusActive   = "active"
	UserStatusUpgraded = "upgraded"

	RoleOwner      = "owner"
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
	RoleViewer     = "viewer"
)

const (
	WorkOrderStatusOpen       = "open"
	WorkOrderStatusAssigned   = "assigned"
	WorkOrderStatusInProgress = "in_progress"
	WorkOrderStatusOnHold     = "on_hold"
	WorkOrderStatusCompleted  = "completed"
	WorkOrderStatusCancelled  = "cancelled"

	PriorityLow      = "low"
	PriorityMedium   = "medium"
	PriorityHigh     = "high"
	PriorityCritical = "critical"
)

const (
	AssetStatusOperational = "operational"
	AssetStatusMaintenance = "maintenance"
	AssetStatusDown        = "down"
	AssetStatusRetired     = "retired"
)

type Organization struct {
	ID            string     `db:"id"`
	Name          string     `db:"name"`
	Tier          string     `db:"tier"`
	Status        string     `db:"status"`
	Timezone      string     `db:"timezone"`
	IsDemo        bool       `db:"is_demo"`
	DemoExpiresAt *time.Time `db:"demo_expires_at"`
	CreatedBy     string     `db:"created_by"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// RateLimits is the per organization quota document, derived from the tier at
// bootstrap time and overwritten on forced re-bootstrap or upgrade.
type RateLimits struct {
	OrgID     string         `db:"organization_id"`
	Tier      string         `db:"tier"`
	Limits    map[string]int `db:"limits"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type User struct {
	ID               string    `db:"id"`
	OrgID            string    `db:"organization_id"`
	KratosIdentityID string    `db:"kratos_identity_id"`
	Email            string    `db:"email"`
	FullName         string    `db:"full_name"`
	Role             string    `db:"role"`
	Status           string    `db:"status"`
	IsDemo           bool      `db:"is_demo"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

type Asset struct {
	ID          string    `db:"id"`
	OrgID       string    `db:"organization_id"`
	Name        string    `db:"name"`
	Category    string    `db:"category"`
	Location    string    `db:"location"`
	Status      string    `db:"status"`
	Criticality string    `db:"criticality"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type Part struct {
	ID          string    `db:"id"`
	OrgID       string    `db:"organization_id"`
	Name        string    `db:"name"`
	PartNumber  string    `db:"part_number"`
	Quantity    int       `db:"quantity"`
	MinQuantity int       `db:"min_quantity"`
	UnitCost    float64   `db:"unit_cost"`
	Location    string    `db:"location"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

type WorkOrder struct {
	ID          string     `db:"id"`
	OrgID       string     `db:"organization_id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Status      string     `db:"status"`
	Priority    string     `db:"priority"`
	AssetID     *string    `db:"asset_id"`
	AssignedTo  *string    `db:"assigned_to"`
	DueDate     *time.Time `db:"due_date"`
	CompletedAt *time.Time `db:"completed_at"`
	CreatedBy   string     `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// PMScheduleRule drives recurring work order generation. A rule is due when
// last_run_at (or created_at for a rule that never ran) plus the interval is
// in the past.
type PMScheduleRule struct {
	ID           string     `db:"id"`
	OrgID        string     `db:"organization_id"`
	Name         string     `db:"name"`
	AssetID      *string    `db:"asset_id"`
	TaskTemplate string     `db:"task_template"`
	IntervalDays int        `db:"interval_days"`
	Priority     string     `db:"priority"`
	Active       bool       `db:"active"`
	LastRunAt    *time.Time `db:"last_run_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// AIUsage counts assistant requests per organization and UTC day, backing the
// ai_requests_per_day quota.
type AIUsage struct {
	OrgID     string    `db:"organization_id"`
	Day       time.Time `db:"day"`
	Count     int       `db:"count"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Identity is the projection of an identity provider record the service
// cares about.
type Identity struct {
	UID      string
	Email    string
	Name     string
	Verified bool
}
