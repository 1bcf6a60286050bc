// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/chatterfix/internal/db"
	"github.com/canonical/chatterfix/internal/types"
)

const workOrderColumns = "id, organization_id, title, description, status, priority, asset_id, assigned_to, due_date, completed_at, created_by, created_at, updated_at"

func (s *Storage) CreateWorkOrder(ctx context.Context, wo *types.WorkOrder) (*types.WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateWorkOrder")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate work order ID: %w", err)
	}

	var created types.WorkOrder
	err = s.db.Statement(ctx).
		Insert("work_orders").
		Columns("id", "organization_id", "title", "description", "status", "priority", "asset_id", "assigned_to", "due_date", "created_by").
		Values(id.String(), wo.OrgID, wo.Title, wo.Description, wo.Status, wo.Priority, wo.AssetID, wo.AssignedTo, wo.DueDate, wo.CreatedBy).
		Suffix("RETURNING " + workOrderColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.Title, &created.Description, &created.Status, &created.Priority, &created.AssetID, &created.AssignedTo, &created.DueDate, &created.CompletedAt, &created.CreatedBy, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert work order: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetWorkOrderByID(ctx context.Context, orgID, id string) (*types.WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWorkOrderByID")
	defer span.End()

	var wo types.WorkOrder
	err := s.db.Statement(ctx).
		Select(workOrderColumns).
		From("work_orders").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		QueryRowContext(ctx).
		Scan(&wo.ID, &wo.OrgID, &wo.Title, &wo.Description, &wo.Status, &wo.Priority, &wo.AssetID, &wo.AssignedTo, &wo.DueDate, &wo.CompletedAt, &wo.CreatedBy, &wo.CreatedAt, &wo.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get work order: %w", err)
	}

	return &wo, nil
}

// ListWorkOrdersByOrgID pages through an organization's work orders, most
// recent first. An empty status lists all of them.
func (s *Storage) ListWorkOrdersByOrgID(ctx context.Context, orgID, status string, page, size int64) ([]*types.WorkOrder, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListWorkOrdersByOrgID")
	defer span.End()

	pageSize := db.PageSize(size)

	query := s.db.Statement(ctx).
		Select(workOrderColumns).
		From("work_orders").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("created_at DESC").
		Offset(db.Offset(page, pageSize)).
		Limit(pageSize)

	if status != "" {
		query = query.Where(sq.Eq{"status": status})
	}

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work orders: %w", err)
	}
	defer rows.Close()

	var workOrders []*types.WorkOrder
	for rows.Next() {
		var wo types.WorkOrder
		if err := rows.Scan(&wo.ID, &wo.OrgID, &wo.Title, &wo.Description, &wo.Status, &wo.Priority, &wo.AssetID, &wo.AssignedTo, &wo.DueDate, &wo.CompletedAt, &wo.CreatedBy, &wo.CreatedAt, &wo.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan work order: %w", err)
		}
		workOrders = append(workOrders, &wo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workOrders, nil
}

func (s *Storage) UpdateWorkOrder(ctx context.Context, wo *types.WorkOrder, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateWorkOrder")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "title":
			updateMap["title"] = wo.Title
		case "description":
			updateMap["description"] = wo.Description
		case "status":
			updateMap["status"] = wo.Status
		case "priority":
			updateMap["priority"] = wo.Priority
		case "asset_id":
			updateMap["asset_id"] = wo.AssetID
		case "assigned_to":
			updateMap["assigned_to"] = wo.AssignedTo
		case "due_date":
			updateMap["due_date"] = wo.DueDate
		case "completed_at":
			updateMap["completed_at"] = wo.CompletedAt
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("work_orders").
		SetMap(updateMap).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"organization_id": wo.OrgID, "id": wo.ID}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update work order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteWorkOrder(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkOrder")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("work_orders").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete work order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) CountWorkOrdersByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountWorkOrdersByOrgID")
	defer span.End()

	return s.countByOrgID(ctx, "work_orders", orgID)
}

func (s *Storage) CountWorkOrdersCreatedSince(ctx context.Context, orgID string, since time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountWorkOrdersCreatedSince")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("work_orders").
		Where(sq.Eq{"organization_id": orgID}).
		Where(sq.GtOrEq{"created_at": since}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count work orders: %w", err)
	}

	return count, nil
}

func (s *Storage) CountWorkOrdersByStatus(ctx context.Context, orgID, status string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountWorkOrdersByStatus")
	defer span.End()

	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("work_orders").
		Where(sq.Eq{"organization_id": orgID, "status": status}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count work orders: %w", err)
	}

	return count, nil
}

func (s *Storage) DeleteWorkOrdersByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWorkOrdersByOrgID")
	defer span.End()

	return s.deleteByOrgID(ctx, "work_orders", orgID)
}
