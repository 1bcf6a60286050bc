// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import (
	"context"

	"github.com/canonical/chatterfix/pkg/organization"
)

type ServiceInterface interface {
	Signup(ctx context.Context, req *SignupRequest) (*SignupResult, error)
	Login(ctx context.Context, identifier, password string) (string, error)
	Logout(ctx context.Context, token string) error
	PasswordReset(ctx context.Context, email string)
}

// IdentityInterface defines the identity-provider operations required by the
// signup package. It is a subset of the kratos client interface.
type IdentityInterface interface {
	CreateIdentity(ctx context.Context, email, password, name string) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
	CreateSessionToken(ctx context.Context, identifier, password string) (string, error)
	Logout(ctx context.Context, token string) error
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

// ProvisionerInterface is the slice of the organization service signup needs.
type ProvisionerInterface interface {
	Bootstrap(ctx context.Context, orgID string, req *organization.BootstrapRequest, force bool) (*organization.BootstrapResult, error)
}
