// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/chatterfix/internal/db"
	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

const organizationColumns = "id, name, tier, status, timezone, is_demo, demo_expires_at, created_by, created_at, updated_at"

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateOrganization(ctx context.Context, org *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	var created types.Organization
	err := s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "tier", "status", "timezone", "is_demo", "demo_expires_at", "created_by").
		Values(org.ID, org.Name, org.Tier, org.Status, org.Timezone, org.IsDemo, org.DemoExpiresAt, org.CreatedBy).
		Suffix("RETURNING " + organizationColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.Tier, &created.Status, &created.Timezone, &created.IsDemo, &created.DemoExpiresAt, &created.CreatedBy, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	var org types.Organization
	err := s.db.Statement(ctx).
		Select(organizationColumns).
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&org.ID, &org.Name, &org.Tier, &org.Status, &org.Timezone, &org.IsDemo, &org.DemoExpiresAt, &org.CreatedBy, &org.CreatedAt, &org.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &org, nil
}

// UpdateOrganization updates the fields named in paths, following PATCH
// semantics. Unknown paths are ignored.
func (s *Storage) UpdateOrganization(ctx context.Context, org *types.Organization, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganization")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = org.Name
		case "tier":
			updateMap["tier"] = org.Tier
		case "status":
			updateMap["status"] = org.Status
		case "timezone":
			updateMap["timezone"] = org.Timezone
		case "is_demo":
			updateMap["is_demo"] = org.IsDemo
		case "demo_expires_at":
			updateMap["demo_expires_at"] = org.DemoExpiresAt
		case "created_by":
			updateMap["created_by"] = org.CreatedBy
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("organizations").
		SetMap(updateMap).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": org.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
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

func (s *Storage) DeleteOrganization(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOrganization")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("organizations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
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

func (s *Storage) ListExpiredDemoOrganizations(ctx context.Context, cutoff time.Time) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListExpiredDemoOrganizations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(organizationColumns).
		From("organizations").
		Where(sq.Eq{"is_demo": true}).
		Where(sq.LtOrEq{"demo_expires_at": cutoff}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list expired demo organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var org types.Organization
		if err := rows.Scan(&org.ID, &org.Name, &org.Tier, &org.Status, &org.Timezone, &org.IsDemo, &org.DemoExpiresAt, &org.CreatedBy, &org.CreatedAt, &org.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &org)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

func (s *Storage) UpsertRateLimits(ctx context.Context, limits *types.RateLimits) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertRateLimits")
	defer span.End()

	limitsJSON, err := json.Marshal(limits.Limits)
	if err != nil {
		return fmt.Errorf("failed to marshal limits: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("rate_limits").
		Columns("organization_id", "tier", "limits").
		Values(limits.OrgID, limits.Tier, limitsJSON).
		Suffix("ON CONFLICT (organization_id) DO UPDATE SET tier = EXCLUDED.tier, limits = EXCLUDED.limits, updated_at = NOW()").
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to upsert rate limits: %w", err)
	}

	return nil
}

func (s *Storage) GetRateLimits(ctx context.Context, orgID string) (*types.RateLimits, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetRateLimits")
	defer span.End()

	var (
		limits     types.RateLimits
		limitsJSON []byte
	)
	err := s.db.Statement(ctx).
		Select("organization_id", "tier", "limits", "updated_at").
		From("rate_limits").
		Where(sq.Eq{"organization_id": orgID}).
		QueryRowContext(ctx).
		Scan(&limits.OrgID, &limits.Tier, &limitsJSON, &limits.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get rate limits: %w", err)
	}

	if err := json.Unmarshal(limitsJSON, &limits.Limits); err != nil {
		return nil, fmt.Errorf("failed to unmarshal limits: %w", err)
	}

	return &limits, nil
}

func (s *Storage) DeleteRateLimits(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteRateLimits")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("rate_limits").
		Where(sq.Eq{"organization_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete rate limits: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

func (s *Storage) countByOrgID(ctx context.Context, table, orgID string) (int64, error) {
	var count int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From(table).
		Where(sq.Eq{"organization_id": orgID}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count rows in %s: %w", table, err)
	}

	return count, nil
}

func (s *Storage) deleteByOrgID(ctx context.Context, table, orgID string) (int64, error) {
	res, err := s.db.Statement(ctx).
		Delete(table).
		Where(sq.Eq{"organization_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete rows in %s: %w", table, err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}
