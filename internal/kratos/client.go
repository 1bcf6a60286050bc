// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	ory "github.com/ory/client-go"

	"github.com/canonical/chatterfix/internal/logging"
	"github.com/canonical/chatterfix/internal/monitoring"
	"github.com/canonical/chatterfix/internal/tracing"
	"github.com/canonical/chatterfix/internal/types"
)

// Sentinel errors callers can classify on. Handlers collapse all of them
// into a generic 401 so the response never leaks which check failed.
var (
	ErrInvalidToken       = errors.New("invalid session token")
	ErrExpiredToken       = errors.New("session no longer active")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrIdentityExists     = errors.New("identity already exists")
)

type ClientInterface interface {
	VerifySessionToken(ctx context.Context, token string) (*types.Identity, error)
	CreateSessionToken(ctx context.Context, identifier, password string) (string, error)
	Logout(ctx context.Context, token string) error
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email, password, name string) (string, error)
	CreateGuestIdentity(ctx context.Context) (string, string, string, error)
	DeleteIdentity(ctx context.Context, id string) error
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}

type Client struct {
	public  *ory.APIClient
	admin   *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosPublicURL, kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	publicConf := ory.NewConfiguration()
	publicConf.Servers = ory.ServerConfigurations{{URL: kratosPublicURL}}

	adminConf := ory.NewConfiguration()
	adminConf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}

	return &Client{
		public:  ory.NewAPIClient(publicConf),
		admin:   ory.NewAPIClient(adminConf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// VerifySessionToken resolves a session token to the identity it belongs to.
func (c *Client) VerifySessionToken(ctx context.Context, token string) (*types.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.VerifySessionToken")
	defer span.End()

	session, r, err := c.public.FrontendAPI.ToSession(ctx).XSessionToken(token).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusUnauthorized {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to check session: %w", err)
	}

	if session.Active != nil && !*session.Active {
		return nil, ErrExpiredToken
	}
	if session.ExpiresAt != nil && time.Now().After(*session.ExpiresAt) {
		return nil, ErrExpiredToken
	}
	if session.Identity == nil {
		return nil, ErrInvalidToken
	}

	return identityFromOry(session.Identity), nil
}

// CreateSessionToken runs a native login flow with the given credentials and
// returns the resulting session token. This is how the service mints a fresh
// session after it created or upgraded an identity itself.
func (c *Client) CreateSessionToken(ctx context.Context, identifier, password string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateSessionToken")
	defer span.End()

	flow, _, err := c.public.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return "", fmt.Errorf("failed to create login flow: %w", err)
	}

	body := ory.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(
		&ory.UpdateLoginFlowWithPasswordMethod{
			Method:     "password",
			Identifier: identifier,
			Password:   password,
		},
	)

	login, r, err := c.public.FrontendAPI.UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(body).
		Execute()
	if err != nil {
		if r != nil && (r.StatusCode == http.StatusBadRequest || r.StatusCode == http.StatusUnauthorized) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("failed to submit login flow: %w", err)
	}

	if login.SessionToken == nil || *login.SessionToken == "" {
		return "", fmt.Errorf("login flow returned no session token")
	}

	return *login.SessionToken, nil
}

func (c *Client) Logout(ctx context.Context, token string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.Logout")
	defer span.End()

	r, err := c.public.FrontendAPI.PerformNativeLogout(ctx).
		PerformNativeLogoutBody(ory.PerformNativeLogoutBody{SessionToken: token}).
		Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusUnauthorized {
			// session already gone, nothing to revoke
			return nil
		}
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return nil
}

func (c *Client) GetIdentityIDByEmail(ctx context.Context, email string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentityIDByEmail")
	defer span.End()

	// List identities with credentials_identifier filter (email)
	// This is the standard way to search by email in Kratos Admin API
	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	// TODO: remove
	ids, r, err := c.admin.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(email).PageToken("").Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return "", nil // Not found
		}
		return "", fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return "", nil
	}

	// Assuming uniqueness of email
	return ids[0].Id, nil
}

// CreateIdentity provisions an identity with password credentials.
func (c *Client) CreateIdentity(ctx context.Context, email, password, name string) (string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateIdentity")
	defer span.End()

	traits := map[string]interface{}{
		"email": email,
		"name":  name,
	}

	createIdentityBody := ory.CreateIdentityBody{
		SchemaId: "default",
		Traits:   traits,
		Credentials: &ory.IdentityWithCredentials{
			Password: &ory.IdentityWithCredentialsPassword{
				Config: &ory.IdentityWithCredentialsPasswordConfig{
					Password: ory.PtrString(password),
				},
			},
		},
	}

	identity, r, err := c.admin.IdentityAPI.CreateIdentity(ctx).CreateIdentityBody(createIdentityBody).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusConflict {
			return "", ErrIdentityExists
		}
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return identity.Id, nil
}

// CreateGuestIdentity provisions a throwaway identity with generated
// credentials for anonymous demo sign-in. It returns the identity id, the
// generated email and the generated password, so the caller can immediately
// log the guest in.
func (c *Client) CreateGuestIdentity(ctx context.Context) (string, string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateGuestIdentity")
	defer span.End()

	suffix, err := randomHex(8)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to generate guest credentials: %w", err)
	}
	password, err := randomHex(16)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to generate guest credentials: %w", err)
	}

	email := fmt.Sprintf("guest-%s@demo.chatterfix.local", suffix)

	id, err := c.CreateIdentity(ctx, email, password, "Demo User")
	if err != nil {
		return "", "", "", err
	}

	return id, email, password, nil
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}

	return hex.EncodeToString(b), nil
}

func (c *Client) DeleteIdentity(ctx context.Context, id string) error {
	ctx, span := c.tracer.Start(ctx, "kratos.DeleteIdentity")
	defer span.End()

	r, err := c.admin.IdentityAPI.DeleteIdentity(ctx, id).Execute()
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			// already deleted, the cleanup job may run twice
			return nil
		}
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	return nil
}

func (c *Client) GetIdentity(ctx context.Context, id string) (*ory.Identity, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetIdentity")
	defer span.End()

	identity, _, err := c.admin.IdentityAPI.GetIdentity(ctx, id).Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return identity, nil
}

func (c *Client) CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.CreateRecoveryLink")
	defer span.End()

	body := ory.CreateRecoveryCodeForIdentityBody{
		IdentityId: identityID,
		ExpiresIn:  &expiresIn,
	}

	recoveryCode, _, err := c.admin.IdentityAPI.CreateRecoveryCodeForIdentity(ctx).CreateRecoveryCodeForIdentityBody(body).Execute()
	if err != nil {
		return "", "", fmt.Errorf("failed to create recovery code: %w", err)
	}

	return recoveryCode.RecoveryLink, recoveryCode.RecoveryCode, nil
}

func identityFromOry(identity *ory.Identity) *types.Identity {
	out := &types.Identity{UID: identity.Id}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if email, ok := traits["email"].(string); ok {
			out.Email = email
		}
		if name, ok := traits["name"].(string); ok {
			out.Name = name
		}
	}

	for _, addr := range identity.VerifiableAddresses {
		if addr.Value == out.Email && addr.Verified {
			out.Verified = true
		}
	}

	return out
}
