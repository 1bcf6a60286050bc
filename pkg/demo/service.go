// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package demo implements the trial lifecycle: anonymous demo provisioning,
// conversion to a permanent account and the expiry sweep.
package demo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/hashicorp/go-multierror"

	"github.com/canonical/chatterfix/internal/kratos"
	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/storage"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/internal/types"
	"github.com/canonical/chatterfix/pkg/organization"
)

type Service struct {
	storage     StorageInterface
	provisioner ProvisionerInterface
	identity    IdentityInterface
	authz       AuthzInterface
	lifetime    time.Duration
	clock       clock.Clock

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	provisioner ProvisionerInterface,
	identity IdentityInterface,
	authz AuthzInterface,
	lifetime time.Duration,
	clk clock.Clock,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if lifetime <= 0 {
		lifetime = DefaultLifetime
	}

	return &Service{
		storage:     storage,
		provisioner: provisioner,
		identity:    identity,
		authz:       authz,
		lifetime:    lifetime,
		clock:       clk,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// Start provisions a demo organization for an anonymous visitor: a guest
// identity, a professional-tier organization with sample data, and a session
// token so the visitor lands signed in.
func (s *Service) Start(ctx context.Context, companyName string) (*StartResult, error) {
	ctx, span := s.tracer.Start(ctx, "demo.Service.Start")
	defer span.End()

	name := strings.TrimSpace(companyName)
	if name == "" {
		name = "Demo Company"
	}

	// 1. Guest identity first, it is the only write outside the request
	// transaction
	identityID, email, password, err := s.identity.CreateGuestIdentity(ctx)
	if err != nil {
		s.logger.Errorf("Failed to create guest identity: %v", err)
		return nil, fmt.Errorf("failed to start demo")
	}

	// 2. Provision through the regular bootstrap path
	orgID, err := organization.GenerateOrgID(name)
	if err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to generate org id: %v", err)
		return nil, fmt.Errorf("failed to start demo")
	}
	req := &organization.BootstrapRequest{
		Name:              name,
		Tier:              types.TierProfessional,
		OwnerID:           identityID,
		OwnerEmail:        email,
		OwnerName:         "Demo User",
		IncludeSampleData: true,
	}
	if _, err := s.provisioner.Bootstrap(ctx, orgID, req, false); err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to bootstrap demo organization: %v", err)
		return nil, fmt.Errorf("failed to start demo")
	}

	// 3. Stamp the demo flags on the organization and its owner
	expiresAt := s.clock.Now().UTC().Add(s.lifetime)
	org := &types.Organization{ID: orgID, IsDemo: true, DemoExpiresAt: &expiresAt}
	if err := s.storage.UpdateOrganization(ctx, org, []string{"is_demo", "demo_expires_at"}); err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to mark organization as demo: %v", err)
		return nil, fmt.Errorf("failed to start demo")
	}

	guest := &types.User{
		OrgID:            orgID,
		KratosIdentityID: identityID,
		Email:            email,
		FullName:         "Demo User",
		Role:             types.RoleOwner,
		Status:           types.UserStatusActive,
		IsDemo:           true,
	}
	if _, err := s.storage.UpsertUser(ctx, guest); err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to mark demo user: %v", err)
		return nil, fmt.Errorf("failed to start demo")
	}

	// 4. Sign the guest straight in
	token, err := s.identity.CreateSessionToken(ctx, email, password)
	if err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to create demo session: %v", err)
		return nil, fmt.Errorf("failed to start demo")
	}

	s.logger.Infof("Started demo organization %s for guest %s", orgID, identityID)
	return &StartResult{
		OrgID:        orgID,
		IdentityID:   identityID,
		Email:        email,
		SessionToken: token,
		ExpiresAt:    expiresAt,
	}, nil
}

// TimeRemaining reports whole minutes until the demo expires. A non-demo
// organization reports is_demo false with no expiry.
func (s *Service) TimeRemaining(ctx context.Context, orgID string) (*TimeRemainingResult, error) {
	ctx, span := s.tracer.Start(ctx, "demo.Service.TimeRemaining")
	defer span.End()

	org, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to get organization: %v", err)
		return nil, fmt.Errorf("failed to get organization")
	}

	result := &TimeRemainingResult{
		OrgID:     org.ID,
		IsDemo:    org.IsDemo,
		ExpiresAt: org.DemoExpiresAt,
	}
	if !org.IsDemo || org.DemoExpiresAt == nil {
		return result, nil
	}

	remaining := org.DemoExpiresAt.Sub(s.clock.Now())
	if remaining <= 0 {
		result.Expired = true
		return result, nil
	}

	result.MinutesRemaining = int(remaining.Minutes())
	return result, nil
}

// Upgrade converts a demo organization into a permanent one. The password is
// validated before the identity is created; once the identity exists, any
// failure deletes it again so a rolled-back conversion leaves no orphaned
// account.
func (s *Service) Upgrade(ctx context.Context, orgID, email, password, fullName string) (*UpgradeResult, error) {
	ctx, span := s.tracer.Start(ctx, "demo.Service.Upgrade")
	defer span.End()

	// 1. Reject before any identity exists
	if len(password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	org, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Errorf("Failed to get organization: %v", err)
		return nil, fmt.Errorf("failed to get organization")
	}
	if !org.IsDemo {
		return nil, ErrNotDemo
	}
	if org.DemoExpiresAt != nil && !org.DemoExpiresAt.After(s.clock.Now()) {
		return nil, ErrExpired
	}

	// 2. The guest's user row stays behind as the audit trail
	guest, err := s.findGuestOwner(ctx, orgID)
	if err != nil {
		return nil, err
	}

	// 3. Permanent identity
	identityID, err := s.identity.CreateIdentity(ctx, email, password, fullName)
	if err != nil {
		if errors.Is(err, kratos.ErrIdentityExists) {
			return nil, ErrEmailTaken
		}
		s.logger.Errorf("Failed to create identity: %v", err)
		return nil, fmt.Errorf("failed to create identity")
	}

	// 4. Convert in place. Every failure from here on deletes the new
	// identity again, the storage writes roll back with the request
	converted := &types.Organization{ID: orgID, IsDemo: false, DemoExpiresAt: nil}
	if err := s.storage.UpdateOrganization(ctx, converted, []string{"is_demo", "demo_expires_at"}); err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to convert organization: %v", err)
		return nil, fmt.Errorf("failed to upgrade demo")
	}

	if guest != nil {
		if err := s.storage.UpdateUserStatus(ctx, guest.ID, types.UserStatusUpgraded); err != nil {
			s.compensateIdentity(ctx, identityID)
			s.logger.Errorf("Failed to retire demo user: %v", err)
			return nil, fmt.Errorf("failed to upgrade demo")
		}
	}

	owner := &types.User{
		OrgID:            orgID,
		KratosIdentityID: identityID,
		Email:            email,
		FullName:         fullName,
		Role:             types.RoleOwner,
		Status:           types.UserStatusActive,
	}
	if _, err := s.storage.CreateUser(ctx, owner); err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to create owner user: %v", err)
		return nil, fmt.Errorf("failed to upgrade demo")
	}

	if err := s.authz.AssignOrganizationOwner(ctx, orgID, identityID); err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to assign organization owner in authz: %v", err)
		return nil, fmt.Errorf("failed to upgrade demo")
	}

	// 5. Sign the new owner in before touching the guest
	token, err := s.identity.CreateSessionToken(ctx, email, password)
	if err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to create session for upgraded owner: %v", err)
		return nil, fmt.Errorf("failed to upgrade demo")
	}

	// 6. Guest teardown is best effort, the conversion stands either way
	if guest != nil {
		if err := s.authz.RemoveOrganizationOwner(ctx, orgID, guest.KratosIdentityID); err != nil {
			s.logger.Errorf("Failed to remove guest owner tuple for organization %s: %v", orgID, err)
		}
		if err := s.identity.DeleteIdentity(ctx, guest.KratosIdentityID); err != nil {
			s.logger.Errorf("Failed to delete guest identity %s: %v", guest.KratosIdentityID, err)
		}
	}

	s.logger.Infof("Upgraded demo organization %s to owner %s", orgID, identityID)
	return &UpgradeResult{
		OrgID:        orgID,
		IdentityID:   identityID,
		Email:        email,
		SessionToken: token,
	}, nil
}

// Cleanup deletes every demo organization whose expiry has passed. Failures
// are aggregated per organization, the sweep never aborts halfway. It is safe
// to run at any frequency and from concurrent processes.
func (s *Service) Cleanup(ctx context.Context) (*CleanupReport, error) {
	ctx, span := s.tracer.Start(ctx, "demo.Service.Cleanup")
	defer span.End()

	start := s.clock.Now()
	expired, err := s.storage.ListExpiredDemoOrganizations(ctx, start)
	if err != nil {
		s.logger.Errorf("Failed to list expired demo organizations: %v", err)
		return nil, fmt.Errorf("failed to list expired demo organizations")
	}

	report := &CleanupReport{Scanned: len(expired)}
	var sweepErr *multierror.Error
	for _, org := range expired {
		identityIDs, err := s.guestIdentityIDs(ctx, org.ID)
		if err != nil {
			report.Failed++
			sweepErr = multierror.Append(sweepErr, fmt.Errorf("organization %s: %w", org.ID, err))
			continue
		}

		// Guest identities go before the rows. If the sweep dies in
		// between, the rows still point at the identities and the next
		// run picks them up; identity deletion tolerates 404s.
		identityFailed := false
		for _, id := range identityIDs {
			if err := s.identity.DeleteIdentity(ctx, id); err != nil {
				identityFailed = true
				sweepErr = multierror.Append(sweepErr, fmt.Errorf("organization %s identity %s: %w", org.ID, id, err))
			}
		}
		if identityFailed {
			report.Failed++
			continue
		}

		if _, err := s.provisioner.Delete(ctx, org.ID, true); err != nil && !errors.Is(err, organization.ErrNotFound) {
			report.Failed++
			sweepErr = multierror.Append(sweepErr, fmt.Errorf("organization %s: %w", org.ID, err))
			continue
		}

		report.Deleted++
		s.logger.Infof("Deleted expired demo organization %s", org.ID)
	}

	report.Elapsed = s.clock.Since(start)
	s.logger.Infof("Demo cleanup scanned %d, deleted %d, failed %d in %s", report.Scanned, report.Deleted, report.Failed, report.Elapsed)
	return report, sweepErr.ErrorOrNil()
}

// compensateIdentity removes an identity created earlier in a workflow whose
// remaining steps failed. The storage writes roll back with the request
// transaction, the identity-provider write has to be undone by hand.
func (s *Service) compensateIdentity(ctx context.Context, identityID string) {
	if err := s.identity.DeleteIdentity(ctx, identityID); err != nil {
		s.logger.Errorf("Failed to delete identity %s during rollback: %v", identityID, err)
	}
}

func (s *Service) findGuestOwner(ctx context.Context, orgID string) (*types.User, error) {
	users, err := s.storage.ListUsersByOrgID(ctx, orgID)
	if err != nil {
		s.logger.Errorf("Failed to list users: %v", err)
		return nil, fmt.Errorf("failed to list users")
	}

	for _, user := range users {
		if user.IsDemo && user.Role == types.RoleOwner && user.Status == types.UserStatusActive {
			return user, nil
		}
	}

	s.logger.Warnf("Demo organization %s has no active guest owner", orgID)
	return nil, nil
}

func (s *Service) guestIdentityIDs(ctx context.Context, orgID string) ([]string, error) {
	users, err := s.storage.ListUsersByOrgID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(users))
	for _, user := range users {
		if user.IsDemo && user.KratosIdentityID != "" {
			ids = append(ids, user.KratosIdentityID)
		}
	}

	return ids, nil
}
