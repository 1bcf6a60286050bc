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
)

// IncrementAIUsage bumps the assistant request counter for the given UTC day
// and returns the new count. The upsert keeps concurrent requests from
// racing on the first increment of the day.
func (s *Storage) IncrementAIUsage(ctx context.Context, orgID string, day time.Time) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.IncrementAIUsage")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Insert("ai_usage").
		Columns("organization_id", "day", "count").
		Values(orgID, day, 1).
		Suffix("ON CONFLICT (organization_id, day) DO UPDATE SET count = ai_usage.count + 1, updated_at = NOW() RETURNING count").
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return 0, ErrForeignKeyViolation
		}
		return 0, fmt.Errorf("failed to increment AI usage: %w", err)
	}

	return count, nil
}

func (s *Storage) GetAIUsage(ctx context.Context, orgID string, day time.Time) (int, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAIUsage")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("count").
		From("ai_usage").
		Where(sq.Eq{"organization_id": orgID, "day": day}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get AI usage: %w", err)
	}

	return count, nil
}

func (s *Storage) DeleteAIUsageByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAIUsageByOrgID")
	defer span.End()

	return s.deleteByOrgID(ctx, "ai_usage", orgID)
}
