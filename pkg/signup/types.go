// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import "errors"

var ErrEmailTaken = errors.New("email already registered")

type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FullName    string `json:"full_name" validate:"required,max=120"`
	CompanyName string `json:"company_name" validate:"required,max=120"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TryDemoRequest struct {
	CompanyName string `json:"company_name"`
}

type UpgradeRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,max=120"`
}

type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type SignupResult struct {
	OrgID        string `json:"org_id"`
	IdentityID   string `json:"identity_id"`
	Email        string `json:"email"`
	SessionToken string `json:"-"`
}
