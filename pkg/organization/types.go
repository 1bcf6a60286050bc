// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"errors"
	"time"
)

// Sentinel errors the handlers map onto the HTTP surface. Callers classify
// with errors.Is instead of matching message strings.
var (
	ErrNotFound             = errors.New("organization not found")
	ErrConfirmationRequired = errors.New("deletion requires explicit confirmation")
)

// BootstrapRequest carries the provisioning parameters for one organization.
type BootstrapRequest struct {
	Name              string `json:"name" validate:"required,max=120"`
	OwnerID           string `json:"owner_id"`
	OwnerEmail        string `json:"owner_email" validate:"omitempty,email"`
	OwnerName         string `json:"owner_name"`
	Tier              string `json:"tier" validate:"omitempty,tier"`
	Timezone          string `json:"timezone"`
	IncludeSampleData bool   `json:"include_sample_data"`
}

// BootstrapResult summarizes what one bootstrap call wrote. A repeated call
// without force reports AlreadyExisted with an empty Created list.
type BootstrapResult struct {
	OrgID          string   `json:"org_id"`
	Name           string   `json:"name"`
	Tier           string   `json:"tier"`
	AlreadyExisted bool     `json:"already_existed"`
	Created        []string `json:"created"`
	SampleAssets   int      `json:"sample_assets"`
	SamplePMRules  int      `json:"sample_pm_rules"`
}

type StatusResult struct {
	OrgID     string           `json:"org_id"`
	Status    string           `json:"status"`
	Name      string           `json:"name"`
	Tier      string           `json:"tier"`
	Timezone  string           `json:"timezone"`
	IsDemo    bool             `json:"is_demo"`
	ExpiresAt *time.Time       `json:"expires_at,omitempty"`
	Limits    map[string]int   `json:"limits"`
	Counts    map[string]int64 `json:"counts"`
	CreatedAt time.Time        `json:"created_at"`
}

// DeleteResult reports how many rows each table lost, keyed by table name.
type DeleteResult struct {
	OrgID   string           `json:"org_id"`
	Deleted map[string]int64 `json:"deleted"`
}
