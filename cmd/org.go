// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/chatterfix/pkg/organization"
)

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations through the provisioning API",
}

var (
	orgName       string
	orgOwnerID    string
	orgOwnerEmail string
	orgOwnerName  string
	orgTier       string
	orgTimezone   string
	orgSampleData bool
	orgForce      bool
)

var bootstrapOrgCmd = &cobra.Command{
	Use:   "bootstrap [org-id]",
	Short: "Provision an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newOrgClient(httpEndpoint, adminToken)

		result, err := client.Bootstrap(context.Background(), args[0], &organization.BootstrapRequest{
			Name:              orgName,
			OwnerID:           orgOwnerID,
			OwnerEmail:        orgOwnerEmail,
			OwnerName:         orgOwnerName,
			Tier:              orgTier,
			Timezone:          orgTimezone,
			IncludeSampleData: orgSampleData,
		}, orgForce)
		if err != nil {
			return fmt.Errorf("failed to bootstrap organization: %w", err)
		}

		if result.AlreadyExisted {
			fmt.Printf("Organization already existed: %s (tier %s)\n", result.OrgID, result.Tier)
			return nil
		}

		fmt.Printf("Organization bootstrapped: %s (tier %s)\n", result.OrgID, result.Tier)
		if len(result.Created) > 0 {
			fmt.Printf("Created: %s\n", strings.Join(result.Created, ", "))
		}
		if result.SampleAssets > 0 || result.SamplePMRules > 0 {
			fmt.Printf("Sample data: %d assets, %d PM rules\n", result.SampleAssets, result.SamplePMRules)
		}
		return nil
	},
}

var statusOrgCmd = &cobra.Command{
	Use:   "status [org-id]",
	Short: "Show an organization's provisioning status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newOrgClient(httpEndpoint, adminToken)

		result, err := client.Status(context.Background(), args[0])
		if err != nil {
			return fmt.Errorf("failed to get organization status: %w", err)
		}

		fmt.Printf("Organization: %s (%s)\n", result.Name, result.OrgID)
		fmt.Printf("Status: %s\n", result.Status)
		fmt.Printf("Tier: %s\n", result.Tier)
		if result.IsDemo {
			expiry := "unknown"
			if result.ExpiresAt != nil {
				expiry = result.ExpiresAt.String()
			}
			fmt.Printf("Demo organization, expires at %s\n", expiry)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "RESOURCE\tCOUNT")
		for _, resource := range sortedKeys(result.Counts) {
			fmt.Fprintf(w, "%s\t%d\n", resource, result.Counts[resource])
		}
		w.Flush()
		return nil
	},
}

var orgConfirm bool

var deleteOrgCmd = &cobra.Command{
	Use:   "delete [org-id]",
	Short: "Delete an organization and all of its data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newOrgClient(httpEndpoint, adminToken)

		result, err := client.Delete(context.Background(), args[0], orgConfirm)
		if err != nil {
			return fmt.Errorf("failed to delete organization: %w", err)
		}

		fmt.Printf("Organization deleted: %s\n", result.OrgID)
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "TABLE\tROWS")
		for _, table := range sortedKeys(result.Deleted) {
			fmt.Fprintf(w, "%s\t%d\n", table, result.Deleted[table])
		}
		w.Flush()
		return nil
	},
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	rootCmd.AddCommand(orgCmd)
	orgCmd.AddCommand(bootstrapOrgCmd)
	orgCmd.AddCommand(statusOrgCmd)
	orgCmd.AddCommand(deleteOrgCmd)

	bootstrapOrgCmd.Flags().StringVar(&orgName, "name", "", "Organization display name")
	bootstrapOrgCmd.Flags().StringVar(&orgOwnerID, "owner-id", "", "Kratos identity ID of the owner")
	bootstrapOrgCmd.Flags().StringVar(&orgOwnerEmail, "owner-email", "", "Owner email")
	bootstrapOrgCmd.Flags().StringVar(&orgOwnerName, "owner-name", "", "Owner display name")
	bootstrapOrgCmd.Flags().StringVar(&orgTier, "tier", "", "Plan tier (free, starter, professional, enterprise)")
	bootstrapOrgCmd.Flags().StringVar(&orgTimezone, "timezone", "", "Organization timezone")
	bootstrapOrgCmd.Flags().BoolVar(&orgSampleData, "sample-data", false, "Seed the sample catalog")
	bootstrapOrgCmd.Flags().BoolVar(&orgForce, "force", false, "Re-provision missing pieces of an existing organization")
	_ = bootstrapOrgCmd.MarkFlagRequired("name")

	deleteOrgCmd.Flags().BoolVar(&orgConfirm, "confirm", false, "Confirm the irreversible deletion")
}
