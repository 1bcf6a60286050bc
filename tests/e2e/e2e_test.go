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
	"testing"
	"time"

	"github.com/canonical/chatterfix/pkg/organization"
)

func TestOpsEndpoints(t *testing.T) {
	baseURL := serviceBaseURL()
	client := &http.Client{Timeout: 10 * time.Second}

	t.Run("Status", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/api/v0/status")
		if err != nil {
			t.Fatalf("failed to get status: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status OK, got %d", resp.StatusCode)
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode status response: %v", err)
		}
		if body.Status != "ok" {
			t.Errorf("expected status ok, got %q", body.Status)
		}
	})

	t.Run("Version", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/api/v0/version")
		if err != nil {
			t.Fatalf("failed to get version: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status OK, got %d", resp.StatusCode)
		}

		var body struct {
			Version string `json:"version"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode version response: %v", err)
		}
		if body.Version == "" {
			t.Error("expected a version string, got empty")
		}
	})

	t.Run("Metrics", func(t *testing.T) {
		resp, err := client.Get(baseURL + "/api/v0/metrics")
		if err != nil {
			t.Fatalf("failed to get metrics: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected status OK, got %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatalf("failed to read metrics body: %v", err)
		}
		if len(body) == 0 {
			t.Error("expected metrics output, got empty body")
		}
	})
}

// TestHTTPAuthentication tests that provisioning endpoints require authentication
func TestHTTPAuthentication(t *testing.T) {
	baseURL := serviceBaseURL()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	t.Run("Request Without Auth Should Fail", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/v1/orgs/no-such-org/status", nil)
		if err != nil {
			t.Fatalf("failed to create request: %v", err)
		}

		client := &http.Client{Timeout: 10 * time.Second}
		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("failed to call provisioning API: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized && resp.StatusCode != http.StatusForbidden {
			t.Errorf("expected 401 or 403 without authentication, got %d", resp.StatusCode)
		}
	})

	t.Run("Request With Valid Auth Should Succeed", func(t *testing.T) {
		client := newOrgClient()
		orgID := fmt.Sprintf("e2e-auth-%d", time.Now().UnixNano())

		result, err := client.Bootstrap(ctx, orgID, &organization.BootstrapRequest{
			Name: "E2E Auth Check",
		}, false)
		if err != nil {
			t.Fatalf("expected success with valid auth, got error: %v", err)
		}
		if result.OrgID != orgID {
			t.Errorf("expected org ID %s, got %s", orgID, result.OrgID)
		}

		if _, err := client.Delete(ctx, orgID, true); err != nil {
			t.Logf("warning: failed to delete organization %s: %v", orgID, err)
		}
	})
}

// TestDemoFlow drives the self-service demo signup through the public surface.
func TestDemoFlow(t *testing.T) {
	baseURL := serviceBaseURL()
	client := &http.Client{Timeout: 15 * time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var (
		sessionToken string
		orgID        string
	)

	t.Run("Start Demo", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]string{"company_name": "E2E Demo Co"})
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/auth/try-demo", bytes.NewReader(payload))
		if err != nil {
			t.Fatalf("failed to create request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("failed to start demo: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusCreated {
			body, _ := io.ReadAll(resp.Body)
			t.Fatalf("expected status 201, got %d: %s", resp.StatusCode, string(body))
		}

		for _, cookie := range resp.Cookies() {
			if cookie.Name == "session_token" {
				sessionToken = cookie.Value
				if !cookie.HttpOnly {
					t.Error("expected session cookie to be HTTP-only")
				}
			}
		}
		if sessionToken == "" {
			t.Fatal("expected a session_token cookie, got none")
		}

		var body struct {
			OrgID     string    `json:"org_id"`
			Email     string    `json:"email"`
			ExpiresAt time.Time `json:"expires_at"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode demo response: %v", err)
		}
		if body.OrgID == "" {
			t.Fatal("expected a demo org ID, got empty")
		}
		if !body.ExpiresAt.After(time.Now()) {
			t.Errorf("expected a future expiry, got %s", body.ExpiresAt)
		}
		orgID = body.OrgID
	})

	if sessionToken == "" {
		t.Fatal("demo session not established, skipping the rest of the flow")
	}

	// Cleanup via the provisioning API
	defer func() {
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := newOrgClient().Delete(cleanupCtx, orgID, true); err != nil {
			t.Logf("warning: failed to delete demo organization %s: %v", orgID, err)
		}
	}()

	t.Run("Demo Status With Session", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/auth/demo-status", nil)
		if err != nil {
			t.Fatalf("failed to create request: %v", err)
		}
		req.AddCookie(&http.Cookie{Name: "session_token", Value: sessionToken})

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("failed to get demo status: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			t.Fatalf("expected status OK, got %d: %s", resp.StatusCode, string(body))
		}

		var body struct {
			OrgID  string `json:"org_id"`
			IsDemo bool   `json:"is_demo"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode demo status: %v", err)
		}
		if body.OrgID != orgID {
			t.Errorf("expected org ID %s, got %s", orgID, body.OrgID)
		}
		if !body.IsDemo {
			t.Error("expected is_demo true")
		}
	})

	t.Run("Demo Status Without Session", func(t *testing.T) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/auth/demo-status", nil)
		if err != nil {
			t.Fatalf("failed to create request: %v", err)
		}

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("failed to call demo status: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected status 401 without a session, got %d", resp.StatusCode)
		}
	})

	t.Run("Upgrade With Short Password Fails", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]string{
			"email":     fmt.Sprintf("e2e-%d@chatterfix.test", time.Now().UnixNano()),
			"password":  "short",
			"full_name": "E2E Upgrader",
		})
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/auth/upgrade-demo", bytes.NewReader(payload))
		if err != nil {
			t.Fatalf("failed to create request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.AddCookie(&http.Cookie{Name: "session_token", Value: sessionToken})

		resp, err := client.Do(req)
		if err != nil {
			t.Fatalf("failed to call upgrade: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			body, _ := io.ReadAll(resp.Body)
			t.Errorf("expected status 400 for a short password, got %d: %s", resp.StatusCode, string(body))
		}

		// The demo must remain intact after the failed upgrade.
		status, err := newOrgClient().Status(ctx, orgID)
		if err != nil {
			t.Fatalf("failed to get organization status after failed upgrade: %v", err)
		}
		if !status.IsDemo {
			t.Error("expected the organization to still be a demo after a failed upgrade")
		}
	})
}
