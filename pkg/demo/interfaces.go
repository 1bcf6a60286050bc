// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package demo

import (
	"context"
	"time"

	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/organization"
)

type ServiceInterface interface {
	Start(ctx context.Context, companyName string) (*StartResult, error)
	TimeRemaining(ctx context.Context, orgID string) (*TimeRemainingResult, error)
	Upgrade(ctx context.Context, orgID, email, password, fullName string) (*UpgradeResult, error)
	Cleanup(ctx context.Context) (*CleanupReport, error)
}

// StorageInterface defines the storage operations required by the demo
// package. It is a subset of the internal/storage interface.
type StorageInterface interface {
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, org *types.Organization, paths []string) error
	ListExpiredDemoOrganizations(ctx context.Context, cutoff time.Time) ([]*types.Organization, error)

	CreateUser(ctx context.Context, user *types.User) (*types.User, error)
	UpsertUser(ctx context.Context, user *types.User) (*types.User, error)
	ListUsersByOrgID(ctx context.Context, orgID string) ([]*types.User, error)
	UpdateUserStatus(ctx context.Context, id, status string) error
}

// ProvisionerInterface is the slice of the organization service the demo
// workflow composes: bootstrap for provisioning, delete for the expiry sweep.
type ProvisionerInterface interface {
	Bootstrap(ctx context.Context, orgID string, req *organization.BootstrapRequest, force bool) (*organization.BootstrapResult, error)
	Delete(ctx context.Context, orgID string, confirm bool) (*organization.DeleteResult, error)
}

// IdentityInterface defines the identity-provider operations required by the
// demo package. It is a subset of the kratos client interface.
type IdentityInterface interface {
	CreateGuestIdentity(ctx context.Context) (string, string, string, error)
	CreateIdentity(ctx context.Context, email, password, name string) (string, error)
	DeleteIdentity(ctx context.Context, id string) error
	CreateSessionToken(ctx context.Context, identifier, password string) (string, error)
}

// AuthzInterface defines the authorization operations required by the demo
// package. It is a subset of the internal/authorization interface.
type AuthzInterface interface {
	AssignOrganizationOwner(context.Context, string, string) error
	RemoveOrganizationOwner(context.Context, string, string) error
}
