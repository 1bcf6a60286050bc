// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package signup

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/chatterfix/internal/kratos"
	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/pkg/organization"
)

const recoveryLinkLifetime = "1h"

type Service struct {
	identity    IdentityInterface
	provisioner ProvisionerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	identity IdentityInterface,
	provisioner ProvisionerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		identity:    identity,
		provisioner: provisioner,
		tracer:      tracer,
		monitor:     monitor,
		logger:      logger,
	}
}

// Signup onboards a new account: an identity, a free-tier organization with
// sample data, and a session token. A failed bootstrap deletes the identity
// again so the email can retry.
func (s *Service) Signup(ctx context.Context, req *SignupRequest) (*SignupResult, error) {
	ctx, span := s.tracer.Start(ctx, "signup.Service.Signup")
	defer span.End()

	// 1. Identity first, compensated on any later failure
	identityID, err := s.identity.CreateIdentity(ctx, req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, kratos.ErrIdentityExists) {
			return nil, ErrEmailTaken
		}
		s.logger.Errorf("Failed to create identity: %v", err)
		return nil, fmt.Errorf("failed to create account")
	}

	// 2. Personal organization on the free tier
	orgID, err := organization.GenerateOrgID(req.CompanyName)
	if err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to generate org id: %v", err)
		return nil, fmt.Errorf("failed to create account")
	}
	bootstrapReq := &organization.BootstrapRequest{
		Name:              req.CompanyName,
		OwnerID:           identityID,
		OwnerEmail:        req.Email,
		OwnerName:         req.FullName,
		IncludeSampleData: true,
	}
	if _, err := s.provisioner.Bootstrap(ctx, orgID, bootstrapReq, false); err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to bootstrap organization: %v", err)
		return nil, fmt.Errorf("failed to create account")
	}

	// 3. Sign the owner in
	token, err := s.identity.CreateSessionToken(ctx, req.Email, req.Password)
	if err != nil {
		s.compensateIdentity(ctx, identityID)
		s.logger.Errorf("Failed to create session: %v", err)
		return nil, fmt.Errorf("failed to create account")
	}

	s.logger.Security().AuthSuccess(req.Email)
	s.logger.Infof("Signed up organization %s for identity %s", orgID, identityID)
	return &SignupResult{
		OrgID:        orgID,
		IdentityID:   identityID,
		Email:        req.Email,
		SessionToken: token,
	}, nil
}

// Login exchanges credentials for a session token. Bad credentials surface as
// kratos.ErrInvalidCredentials so the handler can answer with a generic 401.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "signup.Service.Login")
	defer span.End()

	token, err := s.identity.CreateSessionToken(ctx, identifier, password)
	if err != nil {
		if errors.Is(err, kratos.ErrInvalidCredentials) {
			s.logger.Security().AuthFailure(identifier, "invalid credentials")
			return "", kratos.ErrInvalidCredentials
		}
		s.logger.Errorf("Failed to create session: %v", err)
		return "", fmt.Errorf("failed to log in")
	}

	s.logger.Security().AuthSuccess(identifier)
	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	ctx, span := s.tracer.Start(ctx, "signup.Service.Logout")
	defer span.End()

	if err := s.identity.Logout(ctx, token); err != nil {
		s.logger.Errorf("Failed to revoke session: %v", err)
		return fmt.Errorf("failed to revoke session")
	}

	return nil
}

// PasswordReset never reports whether the account exists. Failures are logged
// and swallowed so the response cannot be used to enumerate emails.
func (s *Service) PasswordReset(ctx context.Context, email string) {
	ctx, span := s.tracer.Start(ctx, "signup.Service.PasswordReset")
	defer span.End()

	identityID, err := s.identity.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		s.logger.Errorf("Failed to look up identity for password reset: %v", err)
		return
	}
	if identityID == "" {
		s.logger.Debugf("Password reset requested for unknown email")
		return
	}

	if _, _, err := s.identity.CreateRecoveryLink(ctx, identityID, recoveryLinkLifetime); err != nil {
		s.logger.Errorf("Failed to create recovery code: %v", err)
		return
	}

	s.logger.Infof("Dispatched recovery code for identity %s", identityID)
}

func (s *Service) compensateIdentity(ctx context.Context, identityID string) {
	if err := s.identity.DeleteIdentity(ctx, identityID); err != nil {
		s.logger.Errorf("Failed to delete identity %s during rollback: %v", identityID, err)
	}
}
