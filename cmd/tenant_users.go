// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/canonical/voluntold-service/pkg/admin"
)

var resetTenantID string

var adminsCmd = &cobra.Command{
	Use:   "admins",
	Short: "Manage tenant administrators",
}

var inviteAdminCmd = &cobra.Command{
	Use:   "invite [tenant-id] [email] [first-name] [last-name]",
	Short: "Invite a tenant admin",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		var res admin.InvitationResult
		err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/admin/invitations", admin.InvitationRequest{
			TenantID:  args[0],
			Email:     args[1],
			FirstName: args[2],
			LastName:  args[3],
		}, &res)
		if err != nil {
			return fmt.Errorf("failed to invite admin: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		fmt.Fprintf(cmd.OutOrStdout(), "Setup link: %s\n", res.InvitationURL)
		return nil
	},
}

var resetPasswordCmd = &cobra.Command{
	Use:   "reset-password [email]",
	Short: "Request a password reset email for an admin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := admin.PasswordResetRequest{Email: args[0]}
		if resetTenantID != "" {
			req.TenantID = &resetTenantID
		}

		var res admin.PasswordResetResult
		if err := getClient().do(cmd.Context(), http.MethodPost, "/api/v0/admin/password-reset", req, &res); err != nil {
			return fmt.Errorf("failed to request password reset: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminsCmd)
	adminsCmd.AddCommand(inviteAdminCmd)
	adminsCmd.AddCommand(resetPasswordCmd)

	resetPasswordCmd.Flags().StringVar(&resetTenantID, "tenant-id", "", "Only reset the admin record of this tenant")
}
