// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package demo

import (
	"errors"
	"time"
)

// DefaultLifetime is how long a demo organization lives before the cleanup
// sweep removes it.
const DefaultLifetime = 48 * time.Hour

// MinPasswordLength is enforced before any identity is created so a rejected
// upgrade never leaves an orphaned account behind.
const MinPasswordLength = 8

var (
	ErrNotFound         = errors.New("demo organization not found")
	ErrNotDemo          = errors.New("organization is not a demo")
	ErrExpired          = errors.New("demo organization has expired")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrEmailTaken       = errors.New("email already registered")
)

type StartResult struct {
	OrgID        string    `json:"org_id"`
	IdentityID   string    `json:"identity_id"`
	Email        string    `json:"email"`
	SessionToken string    `json:"-"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type TimeRemainingResult struct {
	OrgID            string     `json:"org_id"`
	IsDemo           bool       `json:"is_demo"`
	MinutesRemaining int        `json:"minutes_remaining"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	Expired          bool       `json:"expired"`
}

type UpgradeResult struct {
	OrgID        string `json:"org_id"`
	IdentityID   string `json:"identity_id"`
	Email        string `json:"email"`
	SessionToken string `json:"-"`
}

type CleanupReport struct {
	Scanned int           `json:"scanned"`
	Deleted int           `json:"deleted"`
	Failed  int           `json:"failed"`
	Elapsed time.Duration `json:"elapsed"`
}
