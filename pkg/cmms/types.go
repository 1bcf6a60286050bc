// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmms

import (
	"errors"
	"time"

	"github.com/canonical/chatterfix/internal/types"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrForbidden         = errors.New("permission denied")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrLimitExceeded     = errors.New("plan limit exceeded")
	ErrInsufficientStock = errors.New("stock cannot drop below zero")
	ErrPartNumberTaken   = errors.New("part number already in use")
	ErrInvalidReference  = errors.New("referenced resource does not exist")
)

// workOrderTransitions is the complete state machine. Terminal states have no
// entry, cancellation is reachable from every non-terminal state.
var workOrderTransitions = map[string][]string{
	types.WorkOrderStatusOpen:       {types.WorkOrderStatusAssigned, types.WorkOrderStatusCancelled},
	types.WorkOrderStatusAssigned:   {types.WorkOrderStatusInProgress, types.WorkOrderStatusCancelled},
	types.WorkOrderStatusInProgress: {types.WorkOrderStatusOnHold, types.WorkOrderStatusCompleted, types.WorkOrderStatusCancelled},
	types.WorkOrderStatusOnHold:     {types.WorkOrderStatusInProgress, types.WorkOrderStatusCancelled},
}

func validTransition(from, to string) bool {
	for _, next := range workOrderTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

type WorkOrderRequest struct {
	Title       string     `json:"title" validate:"required,max=200"`
	Description string     `json:"description" validate:"max=2000"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	AssetID     *string    `json:"asset_id" validate:"omitempty,uuid"`
	AssignedTo  *string    `json:"assigned_to" validate:"omitempty,uuid"`
	DueDate     *time.Time `json:"due_date"`
}

type TransitionRequest struct {
	Status string `json:"status" validate:"required,oneof=open assigned in_progress on_hold completed cancelled"`
}

type AssetRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Category    string `json:"category" validate:"max=100"`
	Location    string `json:"location" validate:"max=200"`
	Status      string `json:"status" validate:"omitempty,oneof=operational maintenance down retired"`
	Criticality string `json:"criticality" validate:"omitempty,oneof=low medium high critical"`
}

type PartRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	PartNumber  string  `json:"part_number" validate:"max=100"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	MinQuantity int     `json:"min_quantity" validate:"gte=0"`
	UnitCost    float64 `json:"unit_cost" validate:"gte=0"`
	Location    string  `json:"location" validate:"max=200"`
}

// StockAdjustment moves a part's on-hand quantity by a signed amount. A zero
// delta is rejected by validation.
type StockAdjustment struct {
	Delta int `json:"delta" validate:"required"`
}

type PMRuleRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	AssetID      *string `json:"asset_id" validate:"omitempty,uuid"`
	TaskTemplate string  `json:"task_template" validate:"max=2000"`
	IntervalDays int     `json:"interval_days" validate:"required,gt=0"`
	Priority     string  `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Active       *bool   `json:"active"`
}

type WorkOrder struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssetID     *string    `json:"asset_id,omitempty"`
	AssignedTo  *string    `json:"assigned_to,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Asset struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Status      string    `json:"status"`
	Criticality string    `json:"criticality"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Part struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PartNumber  string    `json:"part_number"`
	Quantity    int       `json:"quantity"`
	MinQuantity int       `json:"min_quantity"`
	UnitCost    float64   `json:"unit_cost"`
	Location    string    `json:"location"`
	LowStock    bool      `json:"low_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PMRule struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	AssetID      *string    `json:"asset_id,omitempty"`
	TaskTemplate string     `json:"task_template"`
	IntervalDays int        `json:"interval_days"`
	Priority     string     `json:"priority"`
	Active       bool       `json:"active"`
	LastRunAt    *time.Time `json:"last_run_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type WorkOrderList struct {
	WorkOrders []*WorkOrder `json:"work_orders"`
	Page       int64        `json:"page"`
	Size       int64        `json:"size"`
}

type AssetList struct {
	Assets []*Asset `json:"assets"`
}

type PartList struct {
	Parts []*Part `json:"parts"`
}

type PMRuleList struct {
	Rules []*PMRule `json:"rules"`
}

// RunDueResult reports one due-rule sweep: how many active rules were
// inspected and how many work orders came out of it.
type RunDueResult struct {
	Checked   int `json:"checked"`
	Generated int `json:"generated"`
}

func newWorkOrderView(wo *types.WorkOrder) *WorkOrder {
	return &WorkOrder{
		ID:          wo.ID,
		Title:       wo.Title,
		Description: wo.Description,
		Status:      wo.Status,
		Priority:    wo.Priority,
		AssetID:     wo.AssetID,
		AssignedTo:  wo.AssignedTo,
		DueDate:     wo.DueDate,
		CompletedAt: wo.CompletedAt,
		CreatedBy:   wo.CreatedBy,
		CreatedAt:   wo.CreatedAt,
		UpdatedAt:   wo.UpdatedAt,
	}
}

func newAssetView(asset *types.Asset) *Asset {
	return &Asset{
		ID:          asset.ID,
		Name:        asset.Name,
		Category:    asset.Category,
		Location:    asset.Location,
		Status:      asset.Status,
		Criticality: asset.Criticality,
		CreatedAt:   asset.CreatedAt,
		UpdatedAt:   asset.UpdatedAt,
	}
}

func newPartView(part *types.Part) *Part {
	return &Part{
		ID:          part.ID,
		Name:        part.Name,
		PartNumber:  part.PartNumber,
		Quantity:    part.Quantity,
		MinQuantity: part.MinQuantity,
		UnitCost:    part.UnitCost,
		Location:    part.Location,
		LowStock:    part.Quantity <= part.MinQuantity,
		CreatedAt:   part.CreatedAt,
		UpdatedAt:   part.UpdatedAt,
	}
}

func newPMRuleView(rule *types.PMScheduleRule) *PMRule {
	return &PMRule{
		ID:           rule.ID,
		Name:         rule.Name,
		AssetID:      rule.AssetID,
		TaskTemplate: rule.TaskTemplate,
		IntervalDays: rule.IntervalDays,
		Priority:     rule.Priority,
		Active:       rule.Active,
		LastRunAt:    rule.LastRunAt,
		CreatedAt:    rule.CreatedAt,
		UpdatedAt:    rule.UpdatedAt,
	}
}
