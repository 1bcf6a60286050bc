// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/canonical/chatterfix/pkg/organization"
)

var (
	cachedToken string
	tokenExpiry time.Time
	tokenMutex  sync.RWMutex
)

// getAuthToken returns a JWT token either from environment or by exchanging client credentials.
// Tokens are cached to avoid unnecessary token endpoint requests.
func getAuthToken(ctx context.Context) (string, error) {
	// Check cache first (read lock)
	tokenMutex.RLock()
	if cachedToken != "" && time.Now().Before(tokenExpiry) {
		defer tokenMutex.RUnlock()
		return cachedToken, nil
	}
	tokenMutex.RUnlock()

	// Acquire write lock for token refresh
	tokenMutex.Lock()
	defer tokenMutex.Unlock()

	// Double-check after acquiring write lock (another goroutine may have refreshed)
	if cachedToken != "" && time.Now().Before(tokenExpiry) {
		return cachedToken, nil
	}

	// Use JWT token from environment if provided
	if token := os.Getenv("JWT_TOKEN"); token != "" {
		// JWT tokens from env should also be cached, set reasonable cache duration
		cachedToken = token
		tokenExpiry = time.Now().Add(5 * time.Minute)
		return token, nil
	}

	// Otherwise, use client credentials from env or test globals
	cID := os.Getenv("CLIENT_ID")
	if cID == "" {
		cID = clientId
	}
	cSecret := os.Getenv("CLIENT_SECRET")
	if cSecret == "" {
		cSecret = clientSecret
	}

	if cID == "" || cSecret == "" {
		return "", fmt.Errorf("no authentication credentials available")
	}

	// Exchange for token
	token, expiresIn, err := getJWTTokenWithExpiry(ctx, cID, cSecret)
	if err != nil {
		return "", err
	}

	// Cache with safety margin (refresh 60 seconds before actual expiry)
	cachedToken = token
	safetyMargin := 60
	if expiresIn > safetyMargin {
		tokenExpiry = time.Now().Add(time.Duration(expiresIn-safetyMargin) * time.Second)
	} else {
		tokenExpiry = time.Now().Add(time.Duration(expiresIn) * time.Second)
	}

	return token, nil
}

// serviceBaseURL resolves the base URL of the service under test, preferring
// an explicit environment override over the harness-managed instance.
func serviceBaseURL() string {
	if baseURL := os.Getenv("HTTP_BASE_URL"); baseURL != "" {
		return baseURL
	}
	if testEnv != nil {
		return testEnv.BaseURL
	}
	return defaultBaseURL
}

// apiError carries the HTTP status of a failed API call so tests can assert
// on specific error responses.
type apiError struct {
	StatusCode int
	Body       string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Body)
}

// orgClient drives the JWT-authenticated provisioning API.
type orgClient struct {
	baseURL string
	client  *http.Client
}

func newOrgClient() *orgClient {
	return &orgClient{
		baseURL: strings.TrimSuffix(serviceBaseURL(), "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *orgClient) do(ctx context.Context, method, path string, payload any, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	token, err := getAuthToken(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &apiError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

func (c *orgClient) Bootstrap(ctx context.Context, orgID string, req *organization.BootstrapRequest, force bool) (*organization.BootstrapResult, error) {
	path := fmt.Sprintf("/api/v1/orgs/%s/bootstrap", url.PathEscape(orgID))
	if force {
		path += "?force=true"
	}

	result := new(organization.BootstrapResult)
	if err := c.do(ctx, http.MethodPost, path, req, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *orgClient) Status(ctx context.Context, orgID string) (*organization.StatusResult, error) {
	result := new(organization.StatusResult)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/orgs/%s/status", url.PathEscape(orgID)), nil, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *orgClient) Delete(ctx context.Context, orgID string, confirm bool) (*organization.DeleteResult, error) {
	path := fmt.Sprintf("/api/v1/orgs/%s", url.PathEscape(orgID))
	if confirm {
		path += "?confirm=true"
	}

	result := new(organization.DeleteResult)
	if err := c.do(ctx, http.MethodDelete, path, nil, result); err != nil {
		return nil, err
	}
	return result, nil
}
