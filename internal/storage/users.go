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

const userColumns = "id, organization_id, kratos_identity_id, email, full_name, role, status, is_demo, created_at, updated_at"

func (s *Storage) CreateUser(ctx context.Context, user *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	var created types.User
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("id", "organization_id", "kratos_identity_id", "email", "full_name", "role", "status", "is_demo").
		Values(id.String(), user.OrgID, user.KratosIdentityID, user.Email, user.FullName, user.Role, user.Status, user.IsDemo).
		Suffix("RETURNING " + userColumns).
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrgID, &created.KratosIdentityID, &created.Email, &created.FullName, &created.Role, &created.Status, &created.IsDemo, &created.CreatedAt, &created.UpdatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return &created, nil
}

// UpsertUser writes the user row for an identity, or folds the new
// organization, role and profile fields into an existing row. Bootstrap uses
// it to merge the owner record regardless of whether the identity was seen
// before.
func (s *Storage) UpsertUser(ctx context.Context, user *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertUser")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	var upserted types.User
	err = s.db.Statement(ctx).
		Insert("users").
		Columns("id", "organization_id", "kratos_identity_id", "email", "full_name", "role", "status", "is_demo").
		Values(id.String(), user.OrgID, user.KratosIdentityID, user.Email, user.FullName, user.Role, user.Status, user.IsDemo).
		Suffix("ON CONFLICT (kratos_identity_id) WHERE status = 'active' DO UPDATE SET organization_id = EXCLUDED.organization_id, email = EXCLUDED.email, full_name = EXCLUDED.full_name, role = EXCLUDED.role, is_demo = EXCLUDED.is_demo, updated_at = NOW() RETURNING " + userColumns).
		QueryRowContext(ctx).
		Scan(&upserted.ID, &upserted.OrgID, &upserted.KratosIdentityID, &upserted.Email, &upserted.FullName, &upserted.Role, &upserted.Status, &upserted.IsDemo, &upserted.CreatedAt, &upserted.UpdatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return &upserted, nil
}

// GetUserByIdentityID resolves the active user record for an identity. Rows
// left behind by a demo upgrade carry status "upgraded" and are skipped.
func (s *Storage) GetUserByIdentityID(ctx context.Context, identityID string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByIdentityID")
	defer span.End()

	var user types.User
	err := s.db.Statement(ctx).
		Select(userColumns).
		From("users").
		Where(sq.Eq{
			"kratos_identity_id": identityID,
			"status":             types.UserStatusActive,
		}).
		QueryRowContext(ctx).
		Scan(&user.ID, &user.OrgID, &user.KratosIdentityID, &user.Email, &user.FullName, &user.Role, &user.Status, &user.IsDemo, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (s *Storage) ListUsersByOrgID(ctx context.Context, orgID string) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsersByOrgID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(userColumns).
		From("users").
		Where(sq.Eq{"organization_id": orgID}).
		QueryContext(ctx)

	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []*types.User
	for rows.Next() {
		var user types.User
		if err := rows.Scan(&user.ID, &user.OrgID, &user.KratosIdentityID, &user.Email, &user.FullName, &user.Role, &user.Status, &user.IsDemo, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

func (s *Storage) UpdateUserStatus(ctx context.Context, id, status string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUserStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("users").
		Set("status", status).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update user status: %w", err)
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

func (s *Storage) CountUsersByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CountUsersByOrgID")
	defer span.End()

	return s.countByOrgID(ctx, "users", orgID)
}

func (s *Storage) DeleteUsersByOrgID(ctx context.Context, orgID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteUsersByOrgID")
	defer span.End()

	return s.deleteByOrgID(ctx, "users", orgID)
}
