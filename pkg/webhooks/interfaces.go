// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/organization"
	"github.com/ory/hydra/v2/oauth2"
)

// StorageInterface defines the storage operations required by the webhooks package.
// It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetUserByIdentityID(ctx context.Context, identityID string) (*types.User, error)
}

// ProvisionerInterface is the slice of the organization service the
// registration hook drives.
type ProvisionerInterface interface {
	Bootstrap(ctx context.Context, orgID string, req *organization.BootstrapRequest, force bool) (*organization.BootstrapResult, error)
}

// ServiceInterface defines the webhook service operations.
type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email, name string) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
