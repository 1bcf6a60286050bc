// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/chatterfix/internal/types"
)

const partColumns = "id, organization_id, name, part_number, quantity, min_quantity, unit_cost, location, created_at, updated_at"

func (s *Storage) CreatePart(ctx context.Context, part *types.Part) (*types.Part, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePart")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate part ID: %w", err)
	}

	var created types.Part
	err = s.db.Statement(ctx).
		Insert("parts").
		Columns("id", "organization_id", "name", "part_number", "quantity", "min_quantity", "unit_cost", "location").
		Values(id.String(), part.OrgID, part.Name, part.PartNumber, part.Quantity, part.MinQuantity, part.UnitCost, part.Location).
		Suffix("RETURNING " + partColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.Name, &created.PartNumber, &created.Quantity, &created.MinQuantity, &created.UnitCost, &created.Location, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert part: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetPartByID(ctx context.Context, orgID, id string) (*types.Part, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPartByID")
	defer span.End()

	var part types.Part
	err := s.db.Statement(ctx).
		Select(partColumns).
		From("parts").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		QueryRowContext(ctx).
		Scan(&part.ID, &part.OrgID, &part.Name, &part.PartNumber, &part.Quantity, &part.MinQuantity, &part.UnitCost, &part.Location, &part.CreatedAt, &part.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get part: %w", err)
	}

	return &part, nil
}

func (s *Storage) ListPartsByOrgID(ctx context.Context, orgID string) ([]*types.Part, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPartsByOrgID")
	defer span.End()

	return s.listParts(ctx, sq.Eq{"organization_id": orgID})
}

// ListLowStockParts returns parts at or below their reorder threshold.
func (s *Storage) ListLowStockParts(ctx context.Context, orgID string) ([]*types.Part, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListLowStockParts")
	defer span.End()

	return s.listParts(ctx, sq.And{
		sq.Eq{"organization_id": orgID},
		sq.Expr("quantity <= min_quantity"),
	})
}

func (s *Storage) listParts(ctx context.Context, pred sq.Sqlizer) ([]*types.Part, error) {
	rows, err := s.db.Statement(ctx).
		Select(partColumns).
		From("parts").
		Where(pred).
		OrderBy("name").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list parts: %w", err)
	}
	defer rows.Close()

	var parts []*types.Part
	for rows.Next() {
		var part types.Part
		if err := rows.Scan(&part.ID, &part.OrgID, &part.Name, &part.PartNumber, &part.Quantity, &part.MinQuantity, &part.UnitCost, &part.Location, &part.CreatedAt, &part.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan part: %w", err)
		}
		parts = append(parts, &part)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return parts, nil
}

func (s *Storage) UpdatePart(ctx context.Context, part *types.Part, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePart")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = part.Name
		case "part_number":
			updateMap["part_number"] = part.PartNumber
		case "min_quantity":
			updateMap["min_quantity"] = part.MinQuantity
		case "unit_cost":
			updateMap["unit_cost"] = part.UnitCost
		case "location":
			updateMap["location"] = part.Location
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("parts").
		SetMap(updateMap).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"organization_id": part.OrgID, "id": part.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update part: %w", err)
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

// AdjustPartQuantity applies a stock delta atomically. The check constraint
// on parts.quantity rejects adjustments that would drive stock negative,
// surfacing as ErrCheckViolation.
func (s *Storage) AdjustPartQuantity(ctx context.Context, orgID, id string, delta int) (*types.Part, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AdjustPartQuantity")
	defer span.End()

	var part types.Part
	err := s.db.Statement(ctx).
		Update("parts").
		Set("quantity", sq.Expr("quantity + ?", delta)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		Suffix("RETURNING " + partColumns).
		QueryRowContext(ctx).
		Scan(&part.ID, &part.OrgID, &part.Name, &part.PartNumber, &part.Quantity, &part.MinQuantity, &part.UnitCost, &part.Location, &part.CreatedAt, &part.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		if IsCheckViolation(err) {
			return nil, ErrCheckViolation
		}
		return nil, fmt.Errorf("failed to adjust part quantity: %w", err)
	}

	return &part, nil
}

func (s *Storage) DeletePart(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePart")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("parts").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete part: %w", err)
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

func (s *Storage) CountPartsByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountPartsByOrgID")
	defer span.End()

	return s.countByOrgID(ctx, "parts", orgID)
}

func (s *Storage) DeletePartsByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePartsByOrgID")
	defer span.End()

	return s.deleteByOrgID(ctx, "parts", orgID)
}
