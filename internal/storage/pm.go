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

const pmRuleColumns = "id, organization_id, name, asset_id, task_template, interval_days, priority, active, last_run_at, created_at, updated_at"

func (s *Storage) CreatePMScheduleRule(ctx context.Context, rule *types.PMScheduleRule) (*types.PMScheduleRule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreatePMScheduleRule")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate rule ID: %w", err)
	}

	var created types.PMScheduleRule
	err = s.db.Statement(ctx).
		Insert("pm_schedule_rules").
		Columns("id", "organization_id", "name", "asset_id", "task_template", "interval_days", "priority", "active").
		Values(id.String(), rule.OrgID, rule.Name, rule.AssetID, rule.TaskTemplate, rule.IntervalDays, rule.Priority, rule.Active).
		Suffix("RETURNING " + pmRuleColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.Name, &created.AssetID, &created.TaskTemplate, &created.IntervalDays, &created.Priority, &created.Active, &created.LastRunAt, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert PM schedule rule: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetPMScheduleRuleByID(ctx context.Context, orgID, id string) (*types.PMScheduleRule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetPMScheduleRuleByID")
	defer span.End()

	var rule types.PMScheduleRule
	err := s.db.Statement(ctx).
		Select(pmRuleColumns).
		From("pm_schedule_rules").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		QueryRowContext(ctx).
		Scan(&rule.ID, &rule.OrgID, &rule.Name, &rule.AssetID, &rule.TaskTemplate, &rule.IntervalDays, &rule.Priority, &rule.Active, &rule.LastRunAt, &rule.CreatedAt, &rule.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get PM schedule rule: %w", err)
	}

	return &rule, nil
}

func (s *Storage) ListPMScheduleRulesByOrgID(ctx context.Context, orgID string) ([]*types.PMScheduleRule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPMScheduleRulesByOrgID")
	defer span.End()

	return s.listPMScheduleRules(ctx, sq.Eq{"organization_id": orgID})
}

func (s *Storage) ListActivePMScheduleRulesByOrgID(ctx context.Context, orgID string) ([]*types.PMScheduleRule, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivePMScheduleRulesByOrgID")
	defer span.End()

	return s.listPMScheduleRules(ctx, sq.Eq{"organization_id": orgID, "active": true})
}

func (s *Storage) listPMScheduleRules(ctx context.Context, pred sq.Sqlizer) ([]*types.PMScheduleRule, error) {
	rows, err := s.db.Statement(ctx).
		Select(pmRuleColumns).
		From("pm_schedule_rules").
		Where(pred).
		OrderBy("created_at").
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list PM schedule rules: %w", err)
	}
	defer rows.Close()

	var rules []*types.PMScheduleRule
	for rows.Next() {
		var rule types.PMScheduleRule
		if err := rows.Scan(&rule.ID, &rule.OrgID, &rule.Name, &rule.AssetID, &rule.TaskTemplate, &rule.IntervalDays, &rule.Priority, &rule.Active, &rule.LastRunAt, &rule.CreatedAt, &rule.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan PM schedule rule: %w", err)
		}
		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return rules, nil
}

func (s *Storage) UpdatePMScheduleRule(ctx context.Context, rule *types.PMScheduleRule, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdatePMScheduleRule")
	defer span.End()

	if len(paths) == 0 {
		return nil
	}

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = rule.Name
		case "asset_id":
			updateMap["asset_id"] = rule.AssetID
		case "task_template":
			updateMap["task_template"] = rule.TaskTemplate
		case "interval_days":
			updateMap["interval_days"] = rule.IntervalDays
		case "priority":
			updateMap["priority"] = rule.Priority
		case "active":
			updateMap["active"] = rule.Active
		case "last_run_at":
			updateMap["last_run_at"] = rule.LastRunAt
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	res, err := s.db.Statement(ctx).
		Update("pm_schedule_rules").
		SetMap(updateMap).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"organization_id": rule.OrgID, "id": rule.ID}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update PM schedule rule: %w", err)
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

func (s *Storage) DeletePMScheduleRule(ctx context.Context, orgID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePMScheduleRule")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("pm_schedule_rules").
		Where(sq.Eq{"organization_id": orgID, "id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete PM schedule rule: %w", err)
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

func (s *Storage) CountPMScheduleRulesByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountPMScheduleRulesByOrgID")
	defer span.End()

	return s.countByOrgID(ctx, "pm_schedule_rules", orgID)
}

func (s *Storage) DeletePMScheduleRulesByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeletePMScheduleRulesByOrgID")
	defer span.End()

	return s.deleteByOrgID(ctx, "pm_schedule_rules", orgID)
}
