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

const assetColumns = "id, organization_id, name, category, location, status, criticality, created_at, updated_at"

func (s *Storage) CreateAsset(ctx context.Context, asset *types.Asset) (*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAsset")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate asset ID: %w", err)
	}

	var created types.Asset
	err = s.db.Statement(ctx).
		Insert("assets").
		Columns("id", "organization_id", "name", "category", "location", "status", "criticality").
		Values(id.String(), asset.OrgID, asset.Name, asset.Category, asset.Location, asset.Status, asset.Criticality).
		Suffix("RETURNING " + assetColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.Name, &created.Category, &created.Location, &created.Status, &created.Criticality, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert asset: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetAssetByID(ctx context.Context, orgID, id string) (*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAssetByID")
	defer span.End()

	var asset types.Asset
	err := s.db.Statement(ctx).
		Select(assetColumns).
		From("assets").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		QueryRowContext(ctx).
		Scan(&asset.ID, &asset.OrgID, &asset.Name, &asset.Category, &asset.Location, &asset.Status, &asset.Criticality, &asset.CreatedAt, &asset.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}

	return &asset, nil
}

func (s *Storage) ListAssetsByOrgID(ctx context.Context, orgID string) ([]*types.Asset, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAssetsByOrgID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(assetColumns).
		From("assets").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []*types.Asset
	for rows.Next() {
		var asset types.Asset
		if err := rows.Scan(&asset.ID, &asset.OrgID, &asset.Name, &asset.Category, &asset.Location, &asset.Status, &asset.Criticality, &asset.CreatedAt, &asset.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, &asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return assets, nil
}

func (s *Storage) UpdateAsset(ctx context.Context, asset *types.Asset, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateAsset")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = asset.Name
		case "category":
			updateMap["category"] = asset.Category
		case "location":
			updateMap["location"] = asset.Location
		case "status":
			updateMap["status"] = asset.Status
		case "criticality":
			updateMap["criticality"] = asset.Criticality
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("assets").
		SetMap(updateMap).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"organization_id": asset.OrgID, "id": asset.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update asset: %w", err)
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

func (s *Storage) DeleteAsset(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAsset")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("assets").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
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

func (s *Storage) CountAssetsByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountAssetsByOrgID")
	defer span.End()

	return s.countByOrgID(ctx, "assets", orgID)
}

func (s *Storage) DeleteAssetsByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAssetsByOrgID")
	defer span.End()

	return s.deleteByOrgID(ctx, "assets", orgID)
}
