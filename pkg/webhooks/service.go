// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package webhooks receives callbacks from the identity stack. Kratos posts
// here after self-service registration so the new identity gets a personal
// organization, and Hydra calls the token hook so issued tokens carry the
// identity's organization claims.
package webhooks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/storage"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/pkg/organization"
)

type Service struct {
	storage     StorageInterface
	provisioner ProvisionerInterface
	tracer      tracing.TracingInterface
	monitor     monitoring.MonitorInterface
	logger      logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	provisioner ProvisionerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:     storage,
		provisioner: provisioner,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

func (s *Service) HandleRegistration(ctx context.Context, identityID, email, name string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s with email %s", identityID, email)

	if identityID == "" || email == "" {
		return fmt.Errorf("identity ID or email is empty")
	}

	// A self-registered identity gets a personal organization on the free
	// tier, named after the local part of its email address.
	owner := strings.SplitN(email, "@", 2)[0]
	orgName := fmt.Sprintf("%s's Workspace", owner)

	orgID, err := organization.GenerateOrgID(orgName)
	if err != nil {
		return fmt.Errorf("failed to generate organization id: %w", err)
	}

	bootstrapReq := &organization.BootstrapRequest{
		Name:              orgName,
		OwnerID:           identityID,
		OwnerEmail:        email,
		OwnerName:         name,
		IncludeSampleData: true,
	}

	if _, err := s.provisioner.Bootstrap(ctx, orgID, bootstrapReq, false); err != nil {
		return fmt.Errorf("failed to provision organization: %w", err)
	}

	s.logger.Infof("Provisioned organization %s for identity %s", orgID, identityID)
	return nil
}

func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	s.logger.Debugf("Handling token hook request")

	if req.Session == nil || req.Session.GetSubject() == "" {
		return nil, fmt.Errorf("no subject in token hook session")
	}
	identityID := req.Session.GetSubject()

	s.logger.Debugf("Resolving organization claims for identity %s", identityID)

	resp := new(TokenHookResponse)

	user, err := s.storage.GetUserByIdentityID(ctx, identityID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Identity without an organization yet, issue the token untouched.
			return resp, nil
		}
		return nil, fmt.Errorf("failed to look up user for identity %s: %w", identityID, err)
	}

	claims := map[string]interface{}{
		"organization_id":   user.OrgID,
		"organization_role": user.Role,
	}
	resp.Session.IDToken = claims
	resp.Session.AccessToken = claims

	return resp, nil
}
