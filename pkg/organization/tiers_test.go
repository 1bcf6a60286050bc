// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"reflect"
	"strings"
	"testing"

	"github.com/canonical/chatterfix/internal/types"
)

func TestLimitsForTier(t *testing.T) {
	testCases := []struct {
		name     string
		tier     string
		expected map[string]int
	}{
		{
			name: "free",
			tier: types.TierFree,
			expected: map[string]int{
				LimitAIRequestsPerDay:   10,
				LimitWorkOrdersPerMonth: 25,
				LimitAssetsMax:          25,
				LimitTeamMembersMax:     3,
			},
		},
		{
			name: "starter",
			tier: types.TierStarter,
			expected: map[string]int{
				LimitAIRequestsPerDay:   100,
				LimitWorkOrdersPerMonth: 250,
				LimitAssetsMax:          250,
				LimitTeamMembersMax:     10,
			},
		},
		{
			name: "professional",
			tier: types.TierProfessional,
			expected: map[string]int{
				LimitAIRequestsPerDay:   500,
				LimitWorkOrdersPerMonth: 2500,
				LimitAssetsMax:          2500,
				LimitTeamMembersMax:     50,
			},
		},
		{
			name: "enterprise",
			tier: types.TierEnterprise,
			expected: map[string]int{
				LimitAIRequestsPerDay:   5000,
				LimitWorkOrdersPerMonth: 25000,
				LimitAssetsMax:          25000,
				LimitTeamMembersMax:     250,
			},
		},
		{
			name: "unknown tier falls back to free",
			tier: "platinum",
			expected: map[string]int{
				LimitAIRequestsPerDay:   10,
				LimitWorkOrdersPerMonth: 25,
				LimitAssetsMax:          25,
				LimitTeamMembersMax:     3,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := LimitsForTier(tc.tier)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}

			// pure function: repeated calls yield the same mapping
			if again := LimitsForTier(tc.tier); !reflect.DeepEqual(got, again) {
				t.Errorf("expected identical limits on repeated call, got %v then %v", got, again)
			}
		})
	}
}

func TestGenerateOrgID(t *testing.T) {
	testCases := []struct {
		name         string
		companyName  string
		expectPrefix string
	}{
		{"simple name", "Acme Corp", "acme-corp-"},
		{"symbols collapse", "Tom & Jerry's  Workshop!", "tom-jerry-s-workshop-"},
		{"empty name", "", "org-"},
		{"all symbols", "@#$%", "org-"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := GenerateOrgID(tc.companyName)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.HasPrefix(id, tc.expectPrefix) {
				t.Errorf("expected prefix %q, got %q", tc.expectPrefix, id)
			}
			if len(id) != len(tc.expectPrefix)+6 {
				t.Errorf("expected 6 char suffix, got %q", id)
			}
		})
	}

	t.Run("unique suffixes", func(t *testing.T) {
		a, err := GenerateOrgID("Acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b, err := GenerateOrgID("Acme")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a == b {
			t.Errorf("expected distinct ids, got %q twice", a)
		}
	})
}
