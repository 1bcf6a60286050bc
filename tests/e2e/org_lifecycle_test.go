// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package e2e

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/canonical/chatterfix/pkg/organization"
)

func TestOrganizationLifecycle(t *testing.T) {
	// Add timeout to prevent hanging tests
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client := newOrgClient()
	orgID := fmt.Sprintf("e2e-org-%d", time.Now().UnixNano())
	orgName := "E2E Test Organization"

	// Cleanup
	defer func() {
		// Create a new context for cleanup (don't use test context which may be cancelled)
		cleanupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if _, err := client.Delete(cleanupCtx, orgID, true); err != nil {
			var apiErr *apiError
			if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
				t.Logf("warning: failed to delete organization %s: %v", orgID, err)
			}
		}
	}()

	t.Run("Bootstrap Organization", func(t *testing.T) {
		result, err := client.Bootstrap(ctx, orgID, &organization.BootstrapRequest{
			Name:              orgName,
			OwnerEmail:        "owner@chatterfix.test",
			OwnerName:         "E2E Owner",
			IncludeSampleData: true,
		}, false)
		if err != nil {
			t.Fatalf("failed to bootstrap organization: %v", err)
		}
		if result.OrgID != orgID {
			t.Errorf("expected org ID %s, got %s", orgID, result.OrgID)
		}
		if result.AlreadyExisted {
			t.Error("expected a fresh organization, got already_existed")
		}
		if len(result.Created) == 0 {
			t.Error("expected created resources to be reported")
		}
		if result.SampleAssets == 0 {
			t.Error("expected sample assets to be seeded")
		}
	})

	t.Run("Bootstrap Is Idempotent", func(t *testing.T) {
		result, err := client.Bootstrap(ctx, orgID, &organization.BootstrapRequest{
			Name: orgName,
		}, false)
		if err != nil {
			t.Fatalf("failed to re-bootstrap organization: %v", err)
		}
		if !result.AlreadyExisted {
			t.Error("expected already_existed on repeated bootstrap")
		}
		if len(result.Created) != 0 {
			t.Errorf("expected no created resources on repeated bootstrap, got %v", result.Created)
		}
	})

	t.Run("Organization Status", func(t *testing.T) {
		result, err := client.Status(ctx, orgID)
		if err != nil {
			t.Fatalf("failed to get organization status: %v", err)
		}
		if result.OrgID != orgID {
			t.Errorf("expected org ID %s, got %s", orgID, result.OrgID)
		}
		if result.Name != orgName {
			t.Errorf("expected organization name %s, got %s", orgName, result.Name)
		}
		if result.Status != "ready" {
			t.Errorf("expected status ready, got %s", result.Status)
		}
		if len(result.Counts) == 0 {
			t.Error("expected per-collection counts to be reported")
		}
	})

	t.Run("Delete Requires Confirmation", func(t *testing.T) {
		_, err := client.Delete(ctx, orgID, false)
		if err == nil {
			t.Fatal("expected error when deleting without confirm")
		}
		var apiErr *apiError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400 without confirm, got %v", err)
		}
	})

	t.Run("Delete Organization", func(t *testing.T) {
		result, err := client.Delete(ctx, orgID, true)
		if err != nil {
			t.Fatalf("failed to delete organization: %v", err)
		}
		if len(result.Deleted) == 0 {
			t.Error("expected deleted row counts to be reported")
		}

		// Verify deletion
		_, err = client.Status(ctx, orgID)
		var apiErr *apiError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404 after deletion, got %v", err)
		}
	})
}

// TestOrganizationValidation tests input validation and error cases
func TestOrganizationValidation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client := newOrgClient()

	t.Run("Bootstrap with missing name", func(t *testing.T) {
		_, err := client.Bootstrap(ctx, fmt.Sprintf("e2e-invalid-%d", time.Now().UnixNano()), &organization.BootstrapRequest{}, false)
		if err == nil {
			t.Fatal("expected error for missing organization name, got nil")
		}
		var apiErr *apiError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadRequest {
			t.Errorf("expected status 400 for missing name, got %v", err)
		}
	})

	t.Run("Status of unknown organization", func(t *testing.T) {
		_, err := client.Status(ctx, "non-existent-org-12345")
		if err == nil {
			t.Fatal("expected error for unknown organization, got nil")
		}
		var apiErr *apiError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404 for unknown organization, got %v", err)
		}
	})

	t.Run("Delete unknown organization", func(t *testing.T) {
		_, err := client.Delete(ctx, "non-existent-org-67890", true)
		if err == nil {
			t.Fatal("expected error for unknown organization, got nil")
		}
		var apiErr *apiError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Errorf("expected status 404 for unknown organization, got %v", err)
		}
	})
}
