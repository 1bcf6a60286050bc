// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/canonical/chatterfix/internal/openfga"
)

type AuthorizerInterface interface {
	ListObjects(context.Context, string, string, string) ([]string, error)
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	FilterObjects(context.Context, string, string, string, []string) ([]string, error)
	ValidateModel(context.Context) error

	AssignOrganizationOwner(context.Context, string, string) error
	AssignOrganizationMember(context.Context, string, string) error
	RemoveOrganizationOwner(context.Context, string, string) error
	RemoveOrganizationMember(context.Context, string, string) error
	// AssignPrivilegedAdmin assigns a user as a privileged admin in the authorization system.
	// This user will have admin access to all organizations linked to that privileged group.
	AssignPrivilegedAdmin(context.Context, string, string) error
	// LinkOrganizationToPrivileged acts as a binder between an organization and a privileged group.
	// This way, privileged admins can access the organization.
	LinkOrganizationToPrivileged(context.Context, string, string) error

	DeleteOrganization(context.Context, string) error
	CheckOrganizationAccess(context.Context, string, string, string) (bool, error)
}

type AuthzClientInterface interface {
	ListObjects(context.Context, string, string, string) ([]string, error)
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	WriteTuples(context.Context, ...openfga.Tuple) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
