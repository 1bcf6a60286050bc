// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/canonical/chatterfix/pkg/organization"
)

// orgClient is a thin JSON client for the provisioning API.
type orgClient struct {
	endpoint string
	token    string
	client   *http.Client
}

func newOrgClient(endpoint, token string) *orgClient {
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	return &orgClient{
		endpoint: endpoint,
		token:    token,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *orgClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *orgClient) Bootstrap(ctx context.Context, orgID string, req *organization.BootstrapRequest, force bool) (*organization.BootstrapResult, error) {
	path := fmt.Sprintf("/api/v1/orgs/%s/bootstrap", orgID)
	if force {
		path += "?force=true"
	}
	out := new(organization.BootstrapResult)
	if err := c.do(ctx, http.MethodPost, path, req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orgClient) Status(ctx context.Context, orgID string) (*organization.StatusResult, error) {
	out := new(organization.StatusResult)
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/v1/orgs/%s/status", orgID), nil, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *orgClient) Delete(ctx context.Context, orgID string, confirm bool) (*organization.DeleteResult, error) {
	path := fmt.Sprintf("/api/v1/orgs/%s", orgID)
	if confirm {
		path += "?confirm=true"
	}
	out := new(organization.DeleteResult)
	if err := c.do(ctx, http.MethodDelete, path, nil, out); err != nil {
		return nil, err
	}
	return out, nil
}
