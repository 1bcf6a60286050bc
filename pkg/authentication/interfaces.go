// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/canonical/chatterfix/internal/types"
)

type ProviderInterface interface {
	// Verifier returns the token verifier associated with the specified OIDC issuer
	Verifier(*oidc.Config) *oidc.IDTokenVerifier
}

type TokenVerifierInterface interface {
	// VerifyToken verifies a raw JWT string and validates authorization claims
	// Returns the subject (user ID) if the token is valid and authorized, otherwise an error
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

type SessionVerifierInterface interface {
	// VerifySessionToken resolves a Kratos session token to the identity it belongs to
	VerifySessionToken(ctx context.Context, token string) (*types.Identity, error)
}

type PrincipalResolverInterface interface {
	// GetUserByIdentityID maps an identity to its active user record
	GetUserByIdentityID(ctx context.Context, identityID string) (*types.User, error)
}
