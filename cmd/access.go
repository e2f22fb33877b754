// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/voluntold-service/internal/types"
	"github.com/canonical/voluntold-service/pkg/access"
	"github.com/canonical/voluntold-service/pkg/signin"
)

var accessCmd = &cobra.Command{
	Use:   "access",
	Short: "Inspect sign-in access",
}

var checkAccessCmd = &cobra.Command{
	Use:   "check [email]",
	Short: "List every way an email may sign in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var summary types.AccessSummary
		if err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/access/check", access.CheckAccessRequest{Email: args[0]}, &summary); err != nil {
			return fmt.Errorf("failed to check access: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "admin access: %v, member access: %v, options: %d\n", summary.HasAdminAccess, summary.HasMemberAccess, summary.TotalOptions)

		w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tTYPE\tTENANT_ID")
		for _, o := range summary.AccessOptions {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Name, o.AccessType, o.TenantID)
		}
		return w.Flush()
	},
}

var signinCmd = &cobra.Command{
	Use:   "signin [email] [option-id]",
	Short: "Run the sign-in flow, optionally selecting an option",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			res signin.Result
			err error
		)

		c := getClient()
		if len(args) == 2 {
			err = c.do(cmd.Context(), http.MethodPost, "/api/v0/signin/select", signin.SelectRequest{Email: args[0], OptionID: args[1]}, &res)
		} else {
			err = c.do(cmd.Context(), http.MethodPost, "/api/v0/signin", signin.SignInRequest{Email: args[0]}, &res)
		}
		if err != nil {
			return fmt.Errorf("failed to sign in: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %s\n", res.Outcome, res.Message)
		if res.RedirectURL != "" {
			fmt.Fprintln(out, res.RedirectURL)
		}
		for _, o := range res.Options {
			fmt.Fprintf(out, "  %s\t%s\n", o.ID, o.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(accessCmd)
	accessCmd.AddCommand(checkAccessCmd)
	rootCmd.AddCommand(signinCmd)
}
