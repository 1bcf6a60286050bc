// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package cmms serves the org-scoped maintenance resources: work orders,
// assets, parts inventory and preventive maintenance schedule rules. Every
// operation runs as the session principal and is permission checked against
// the authorization model.
package cmms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/canonical/chatterfix/internal/authorization"
	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/storage"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/authentication"
	"github.com/canonical/chatterfix/pkg/organization"
)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	clock   clock.Clock

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	clk clock.Clock,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		clock:   clk,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) authorize(ctx context.Context, p *authentication.Principal, permission string) error {
	allowed, err := s.authz.CheckOrganizationAccess(ctx, p.OrganizationID, p.UserID, permission)
	if err != nil {
		s.logger.Errorf("Failed to check access: %v", err)
		return fmt.Errorf("failed to check access")
	}
	if !allowed {
		s.logger.Security().AuthzFailure(p.UserID, permission)
		return ErrForbidden
	}

	return nil
}

// quotaFor reads the organization's rate-limit document and returns the named
// limit. A missing document or limit disables enforcement rather than
// blocking the organization.
func (s *Service) quotaFor(ctx context.Context, orgID, limit string) (int, bool, error) {
	limits, err := s.storage.GetRateLimits(ctx, orgID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Warnf("No rate limits for organization %s, skipping quota check", orgID)
			return 0, false, nil
		}
		s.logger.Errorf("Failed to get rate limits: %v", err)
		return 0, false, fmt.Errorf("failed to check quota")
	}

	max, ok := limits.Limits[limit]
	return max, ok, nil
}

// Work orders

func (s *Service) CreateWorkOrder(ctx context.Context, p *authentication.Principal, req *WorkOrderRequest) (*WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.CreateWorkOrder")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_CREATE_PERMISSION); err != nil {
		return nil, err
	}

	// Monthly quota, counted against calendar month start in UTC
	max, enforced, err := s.quotaFor(ctx, p.OrganizationID, organization.LimitWorkOrdersPerMonth)
	if err != nil {
		return nil, err
	}
	if enforced {
		now := s.clock.Now().UTC()
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		count, err := s.storage.CountWorkOrdersCreatedSince(ctx, p.OrganizationID, monthStart)
		if err != nil {
			s.logger.Errorf("Failed to count work orders: %v", err)
			return nil, fmt.Errorf("failed to check quota")
		}
		if count >= int64(max) {
			return nil, ErrLimitExceeded
		}
	}

	priority := req.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}

	created, err := s.storage.CreateWorkOrder(ctx, &types.WorkOrder{
		OrgID:       p.OrganizationID,
		Title:       req.Title,
		Description: req.Description,
		Status:      types.WorkOrderStatusOpen,
		Priority:    priority,
		AssetID:     req.AssetID,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
		CreatedBy:   p.UserID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrInvalidReference
		}
		s.logger.Errorf("Failed to create work order: %v", err)
		return nil, fmt.Errorf("failed to create work order")
	}

	return newWorkOrderView(created), nil
}

func (s *Service) GetWorkOrder(ctx context.Context, p *authentication.Principal, id string) (*WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.GetWorkOrder")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_VIEW_PERMISSION); err != nil {
		return nil, err
	}

	wo, err := s.storage.GetWorkOrderByID(ctx, p.OrganizationID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to get work order: %v", err)
		return nil, fmt.Errorf("failed to get work order")
	}

	return newWorkOrderView(wo), nil
}

func (s *Service) ListWorkOrders(ctx context.Context, p *authentication.Principal, status string, page, size int64) (*WorkOrderList, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.ListWorkOrders")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_VIEW_PERMISSION); err != nil {
		return nil, err
	}

	workOrders, err := s.storage.ListWorkOrdersByOrgID(ctx, p.OrganizationID, status, page, size)
	if err != nil {
		s.logger.Errorf("Failed to list work orders: %v", err)
		return nil, fmt.Errorf("failed to list work orders")
	}

	list := &WorkOrderList{
		WorkOrders: make([]*WorkOrder, 0, len(workOrders)),
		Page:       page,
		Size:       size,
	}
	if list.Page < 1 {
		list.Page = 1
	}
	if list.Size < 1 {
		list.Size = 100
	}
	for _, wo := range workOrders {
		list.WorkOrders = append(list.WorkOrders, newWorkOrderView(wo))
	}

	return list, nil
}

// UpdateWorkOrder rewrites the editable fields. Status is not among them,
// state changes go through TransitionWorkOrder.
func (s *Service) UpdateWorkOrder(ctx context.Context, p *authentication.Principal, id string, req *WorkOrderRequest) (*WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.UpdateWorkOrder")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_EDIT_PERMISSION); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}

	wo := &types.WorkOrder{
		ID:          id,
		OrgID:       p.OrganizationID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		AssetID:     req.AssetID,
		AssignedTo:  req.AssignedTo,
		DueDate:     req.DueDate,
	}
	err := s.storage.UpdateWorkOrder(ctx, wo, []string{"title", "description", "priority", "asset_id", "assigned_to", "due_date"})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrInvalidReference
		}
		s.logger.Errorf("Failed to update work order: %v", err)
		return nil, fmt.Errorf("failed to update work order")
	}

	updated, err := s.storage.GetWorkOrderByID(ctx, p.OrganizationID, id)
	if err != nil {
		s.logger.Errorf("Failed to get work order: %v", err)
		return nil, fmt.Errorf("failed to update work order")
	}

	return newWorkOrderView(updated), nil
}

// TransitionWorkOrder moves a work order through its lifecycle. Completion
// stamps completed_at; completed and cancelled orders cannot move again.
func (s *Service) TransitionWorkOrder(ctx context.Context, p *authentication.Principal, id, status string) (*WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.TransitionWorkOrder")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_EDIT_PERMISSION); err != nil {
		return nil, err
	}

	wo, err := s.storage.GetWorkOrderByID(ctx, p.OrganizationID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to get work order: %v", err)
		return nil, fmt.Errorf("failed to transition work order")
	}

	if !validTransition(wo.Status, status) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, wo.Status, status)
	}

	wo.Status = status
	paths := []string{"status"}
	if status == types.WorkOrderStatusCompleted {
		completedAt := s.clock.Now().UTC()
		wo.CompletedAt = &completedAt
		paths = append(paths, "completed_at")
	}

	if err := s.storage.UpdateWorkOrder(ctx, wo, paths); err != nil {
		s.logger.Errorf("Failed to update work order: %v", err)
		return nil, fmt.Errorf("failed to transition work order")
	}

	return newWorkOrderView(wo), nil
}

func (s *Service) DeleteWorkOrder(ctx context.Context, p *authentication.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.DeleteWorkOrder")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_DELETE_PERMISSION); err != nil {
		return err
	}

	if err := s.storage.DeleteWorkOrder(ctx, p.OrganizationID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Errorf("Failed to delete work order: %v", err)
		return fmt.Errorf("failed to delete work order")
	}

	return nil
}

// Assets

func (s *Service) CreateAsset(ctx context.Context, p *authentication.Principal, req *AssetRequest) (*Asset, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.CreateAsset")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_CREATE_PERMISSION); err != nil {
		return nil, err
	}

	max, enforced, err := s.quotaFor(ctx, p.OrganizationID, organization.LimitAssetsMax)
	if err != nil {
		return nil, err
	}
	if enforced {
		count, err := s.storage.CountAssetsByOrgID(ctx, p.OrganizationID)
		if err != nil {
			s.logger.Errorf("Failed to count assets: %v", err)
			return nil, fmt.Errorf("failed to check quota")
		}
		if count >= int64(max) {
			return nil, ErrLimitExceeded
		}
	}

	status := req.Status
	if status == "" {
		status = types.AssetStatusOperational
	}
	criticality := req.Criticality
	if criticality == "" {
		criticality = types.PriorityMedium
	}

	created, err := s.storage.CreateAsset(ctx, &types.Asset{
		OrgID:       p.OrganizationID,
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		Status:      status,
		Criticality: criticality,
	})
	if err != nil {
		s.logger.Errorf("Failed to create asset: %v", err)
		return nil, fmt.Errorf("failed to create asset")
	}

	return newAssetView(created), nil
}

func (s *Service) GetAsset(ctx context.Context, p *authentication.Principal, id string) (*Asset, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.GetAsset")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_VIEW_PERMISSION); err != nil {
		return nil, err
	}

	asset, err := s.storage.GetAssetByID(ctx, p.OrganizationID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to get asset: %v", err)
		return nil, fmt.Errorf("failed to get asset")
	}

	return newAssetView(asset), nil
}

func (s *Service) ListAssets(ctx context.Context, p *authentication.Principal) (*AssetList, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.ListAssets")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_VIEW_PERMISSION); err != nil {
		return nil, err
	}

	assets, err := s.storage.ListAssetsByOrgID(ctx, p.OrganizationID)
	if err != nil {
		s.logger.Errorf("Failed to list assets: %v", err)
		return nil, fmt.Errorf("failed to list assets")
	}

	list := &AssetList{Assets: make([]*Asset, 0, len(assets))}
	for _, asset := range assets {
		list.Assets = append(list.Assets, newAssetView(asset))
	}

	return list, nil
}

func (s *Service) UpdateAsset(ctx context.Context, p *authentication.Principal, id string, req *AssetRequest) (*Asset, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.UpdateAsset")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_EDIT_PERMISSION); err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = types.AssetStatusOperational
	}
	criticality := req.Criticality
	if criticality == "" {
		criticality = types.PriorityMedium
	}

	asset := &types.Asset{
		ID:          id,
		OrgID:       p.OrganizationID,
		Name:        req.Name,
		Category:    req.Category,
		Location:    req.Location,
		Status:      status,
		Criticality: criticality,
	}
	err := s.storage.UpdateAsset(ctx, asset, []string{"name", "category", "location", "status", "criticality"})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to update asset: %v", err)
		return nil, fmt.Errorf("failed to update asset")
	}

	updated, err := s.storage.GetAssetByID(ctx, p.OrganizationID, id)
	if err != nil {
		s.logger.Errorf("Failed to get asset: %v", err)
		return nil, fmt.Errorf("failed to update asset")
	}

	return newAssetView(updated), nil
}

func (s *Service) DeleteAsset(ctx context.Context, p *authentication.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.DeleteAsset")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_DELETE_PERMISSION); err != nil {
		return err
	}

	if err := s.storage.DeleteAsset(ctx, p.OrganizationID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Errorf("Failed to delete asset: %v", err)
		return fmt.Errorf("failed to delete asset")
	}

	return nil
}

// Parts

func (s *Service) CreatePart(ctx context.Context, p *authentication.Principal, req *PartRequest) (*Part, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.CreatePart")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_CREATE_PERMISSION); err != nil {
		return nil, err
	}

	created, err := s.storage.CreatePart(ctx, &types.Part{
		OrgID:       p.OrganizationID,
		Name:        req.Name,
		PartNumber:  req.PartNumber,
		Quantity:    req.Quantity,
		MinQuantity: req.MinQuantity,
		UnitCost:    req.UnitCost,
		Location:    req.Location,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrPartNumberTaken
		}
		s.logger.Errorf("Failed to create part: %v", err)
		return nil, fmt.Errorf("failed to create part")
	}

	return newPartView(created), nil
}

func (s *Service) GetPart(ctx context.Context, p *authentication.Principal, id string) (*Part, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.GetPart")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_VIEW_PERMISSION); err != nil {
		return nil, err
	}

	part, err := s.storage.GetPartByID(ctx, p.OrganizationID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to get part: %v", err)
		return nil, fmt.Errorf("failed to get part")
	}

	return newPartView(part), nil
}

func (s *Service) ListParts(ctx context.Context, p *authentication.Principal) (*PartList, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.ListParts")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_VIEW_PERMISSION); err != nil {
		return nil, err
	}

	parts, err := s.storage.ListPartsByOrgID(ctx, p.OrganizationID)
	if err != nil {
		s.logger.Errorf("Failed to list parts: %v", err)
		return nil, fmt.Errorf("failed to list parts")
	}

	return newPartList(parts), nil
}

// ListLowStockParts returns the parts whose on-hand quantity has fallen to or
// below their reorder threshold.
func (s *Service) ListLowStockParts(ctx context.Context, p *authentication.Principal) (*PartList, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.ListLowStockParts")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_VIEW_PERMISSION); err != nil {
		return nil, err
	}

	parts, err := s.storage.ListLowStockParts(ctx, p.OrganizationID)
	if err != nil {
		s.logger.Errorf("Failed to list low stock parts: %v", err)
		return nil, fmt.Errorf("failed to list low stock parts")
	}

	return newPartList(parts), nil
}

// UpdatePart rewrites the catalog fields. The on-hand quantity only moves
// through AdjustStock so concurrent receipts and withdrawals cannot clobber
// each other.
func (s *Service) UpdatePart(ctx context.Context, p *authentication.Principal, id string, req *PartRequest) (*Part, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.UpdatePart")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_EDIT_PERMISSION); err != nil {
		return nil, err
	}

	part := &types.Part{
		ID:          id,
		OrgID:       p.OrganizationID,
		Name:        req.Name,
		PartNumber:  req.PartNumber,
		MinQuantity: req.MinQuantity,
		UnitCost:    req.UnitCost,
		Location:    req.Location,
	}
	err := s.storage.UpdatePart(ctx, part, []string{"name", "part_number", "min_quantity", "unit_cost", "location"})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, ErrPartNumberTaken
		}
		s.logger.Errorf("Failed to update part: %v", err)
		return nil, fmt.Errorf("failed to update part")
	}

	updated, err := s.storage.GetPartByID(ctx, p.OrganizationID, id)
	if err != nil {
		s.logger.Errorf("Failed to get part: %v", err)
		return nil, fmt.Errorf("failed to update part")
	}

	return newPartView(updated), nil
}

// AdjustStock applies a signed delta to a part's quantity. The store rejects
// adjustments that would take the quantity negative.
func (s *Service) AdjustStock(ctx context.Context, p *authentication.Principal, id string, delta int) (*Part, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.AdjustStock")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_EDIT_PERMISSION); err != nil {
		return nil, err
	}

	part, err := s.storage.AdjustPartQuantity(ctx, p.OrganizationID, id, delta)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, storage.ErrCheckViolation) {
			return nil, ErrInsufficientStock
		}
		s.logger.Errorf("Failed to adjust part quantity: %v", err)
		return nil, fmt.Errorf("failed to adjust stock")
	}

	return newPartView(part), nil
}

func (s *Service) DeletePart(ctx context.Context, p *authentication.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.DeletePart")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_DELETE_PERMISSION); err != nil {
		return err
	}

	if err := s.storage.DeletePart(ctx, p.OrganizationID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Errorf("Failed to delete part: %v", err)
		return fmt.Errorf("failed to delete part")
	}

	return nil
}

// PM schedule rules

func (s *Service) CreatePMRule(ctx context.Context, p *authentication.Principal, req *PMRuleRequest) (*PMRule, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.CreatePMRule")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_CREATE_PERMISSION); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	created, err := s.storage.CreatePMScheduleRule(ctx, &types.PMScheduleRule{
		OrgID:        p.OrganizationID,
		Name:         req.Name,
		AssetID:      req.AssetID,
		TaskTemplate: req.TaskTemplate,
		IntervalDays: req.IntervalDays,
		Priority:     priority,
		Active:       active,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrInvalidReference
		}
		s.logger.Errorf("Failed to create PM rule: %v", err)
		return nil, fmt.Errorf("failed to create PM rule")
	}

	return newPMRuleView(created), nil
}

func (s *Service) GetPMRule(ctx context.Context, p *authentication.Principal, id string) (*PMRule, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.GetPMRule")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_VIEW_PERMISSION); err != nil {
		return nil, err
	}

	rule, err := s.storage.GetPMScheduleRuleByID(ctx, p.OrganizationID, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to get PM rule: %v", err)
		return nil, fmt.Errorf("failed to get PM rule")
	}

	return newPMRuleView(rule), nil
}

func (s *Service) ListPMRules(ctx context.Context, p *authentication.Principal) (*PMRuleList, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.ListPMRules")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_VIEW_PERMISSION); err != nil {
		return nil, err
	}

	rules, err := s.storage.ListPMScheduleRulesByOrgID(ctx, p.OrganizationID)
	if err != nil {
		s.logger.Errorf("Failed to list PM rules: %v", err)
		return nil, fmt.Errorf("failed to list PM rules")
	}

	list := &PMRuleList{Rules: make([]*PMRule, 0, len(rules))}
	for _, rule := range rules {
		list.Rules = append(list.Rules, newPMRuleView(rule))
	}

	return list, nil
}

func (s *Service) UpdatePMRule(ctx context.Context, p *authentication.Principal, id string, req *PMRuleRequest) (*PMRule, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.UpdatePMRule")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_EDIT_PERMISSION); err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	rule := &types.PMScheduleRule{
		ID:           id,
		OrgID:        p.OrganizationID,
		Name:         req.Name,
		AssetID:      req.AssetID,
		TaskTemplate: req.TaskTemplate,
		IntervalDays: req.IntervalDays,
		Priority:     priority,
		Active:       active,
	}
	err := s.storage.UpdatePMScheduleRule(ctx, rule, []string{"name", "asset_id", "task_template", "interval_days", "priority", "active"})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, ErrInvalidReference
		}
		s.logger.Errorf("Failed to update PM rule: %v", err)
		return nil, fmt.Errorf("failed to update PM rule")
	}

	updated, err := s.storage.GetPMScheduleRuleByID(ctx, p.OrganizationID, id)
	if err != nil {
		s.logger.Errorf("Failed to get PM rule: %v", err)
		return nil, fmt.Errorf("failed to update PM rule")
	}

	return newPMRuleView(updated), nil
}

func (s *Service) DeletePMRule(ctx context.Context, p *authentication.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.DeletePMRule")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_DELETE_PERMISSION); err != nil {
		return err
	}

	if err := s.storage.DeletePMScheduleRule(ctx, p.OrganizationID, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Errorf("Failed to delete PM rule: %v", err)
		return fmt.Errorf("failed to delete PM rule")
	}

	return nil
}

// RunDuePMRules generates one open work order for every active rule whose
// interval has elapsed since its last run (or creation, for a rule that never
// ran), then stamps the rule. Running the sweep twice in the same interval
// generates nothing the second time.
func (s *Service) RunDuePMRules(ctx context.Context, p *authentication.Principal) (*RunDueResult, error) {
	ctx, span := s.tracer.Start(ctx, "cmms.Service.RunDuePMRules")
	defer span.End()

	if err := s.authorize(ctx, p, authorization.CAN_EDIT_PERMISSION); err != nil {
		return nil, err
	}

	rules, err := s.storage.ListActivePMScheduleRulesByOrgID(ctx, p.OrganizationID)
	if err != nil {
		s.logger.Errorf("Failed to list PM rules: %v", err)
		return nil, fmt.Errorf("failed to run PM rules")
	}

	now := s.clock.Now().UTC()
	result := &RunDueResult{Checked: len(rules)}

	for _, rule := range rules {
		last := rule.CreatedAt
		if rule.LastRunAt != nil {
			last = *rule.LastRunAt
		}
		if last.Add(time.Duration(rule.IntervalDays) * 24 * time.Hour).After(now) {
			continue
		}

		_, err := s.storage.CreateWorkOrder(ctx, &types.WorkOrder{
			OrgID:       p.OrganizationID,
			Title:       "PM: " + rule.Name,
			Description: rule.TaskTemplate,
			Status:      types.WorkOrderStatusOpen,
			Priority:    rule.Priority,
			AssetID:     rule.AssetID,
			CreatedBy:   p.UserID,
		})
		if err != nil {
			s.logger.Errorf("Failed to create work order: %v", err)
			return nil, fmt.Errorf("failed to run PM rules")
		}

		rule.LastRunAt = &now
		if err := s.storage.UpdatePMScheduleRule(ctx, rule, []string{"last_run_at"}); err != nil {
			s.logger.Errorf("Failed to update PM rule: %v", err)
			return nil, fmt.Errorf("failed to run PM rules")
		}

		result.Generated++
	}

	s.logger.Infof("Generated %d work orders from %d PM rules for organization %s", result.Generated, result.Checked, p.OrganizationID)
	return result, nil
}

func newPartList(parts []*types.Part) *PartList {
	list := &PartList{Parts: make([]*Part, 0, len(parts))}
	for _, part := range parts {
		list.Parts = append(list.Parts, newPartView(part))
	}

	return list
}
