// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/voluntold-service/pkg/tenant"
)

var tenantSlug string

var tenantCmd = &cobra.Command{
	Use:   "tenant",
	Short: "Manage tenants",
}

var createTenantCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new tenant (super admin only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var t tenant.Tenant
		err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/tenants", tenant.CreateTenantRequest{
			Name: args[0],
			Slug: tenantSlug,
		}, &t)
		if err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Tenant created: %s (ID: %s, slug: %s)\n", t.Name, t.ID, t.Slug)
		return nil
	},
}

var getTenantCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show a tenant",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var t tenant.Tenant
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/tenants/"+url.PathEscape(args[0]), nil, &t); err != nil {
			return fmt.Errorf("failed to get tenant: %w", err)
		}

		printTenants(cmd, []*tenant.Tenant{&t})
		return nil
	},
}

var listTenantsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tenants the caller administers",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp tenant.ListTenantsResponse
		if err := getClient().do(cmd.Context(), http.MethodGet, "/api/v0/tenants", nil, &resp); err != nil {
			return fmt.Errorf("failed to list tenants: %w", err)
		}

		printTenants(cmd, resp.Tenants)
		return nil
	},
}

func printTenants(cmd *cobra.Command, tenants []*tenant.Tenant) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSLUG\tCREATED_AT")
	for _, t := range tenants {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", t.ID, t.Name, t.Slug, t.CreatedAt.Format(time.RFC3339))
	}
	w.Flush()
}

func init() {
	rootCmd.AddCommand(tenantCmd)
	tenantCmd.AddCommand(createTenantCmd)
	tenantCmd.AddCommand(getTenantCmd)
	tenantCmd.AddCommand(listTenantsCmd)

	createTenantCmd.Flags().StringVar(&tenantSlug, "slug", "", "URL-safe identifier, derived from the name when empty")
}
