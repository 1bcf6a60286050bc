// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

// v0Schema is the authorization model the service expects to find in the
// OpenFGA store. Members can read and write CMMS resources inside their
// organization, owners can additionally delete them and manage the
// organization itself. Admins of a privileged group linked to an
// organization get owner-equivalent access, which is how operators reach
// into customer organizations.
const v0Schema = `model
  schema 1.1

type user

type privileged
  relations
    define admin: [user]

type organization
  relations
    define owner: [user]
    define member: [user] or owner
    define privileged: [privileged]

    define can_view: member or admin from privileged
    define can_edit: member or admin from privileged
    define can_create: member or admin from privileged
    define can_delete: owner or admin from privileged
`

type AuthorizationModelProvider struct {
	version string
}

func (p *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	// v0 is the only model version so far
	modelJson, err := transformer.TransformDSLToJSON(v0Schema)
	if err != nil {
		panic(fmt.Sprintf("invalid authorization model schema: %s", err))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(modelJson), model); err != nil {
		panic(fmt.Sprintf("failed deserializing authorization model: %s", err))
	}

	return model
}

func NewAuthorizationModelProvider(version string) *AuthorizationModelProvider {
	p := new(AuthorizationModelProvider)
	p.version = version

	return p
}
