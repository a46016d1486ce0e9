// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// logoutCmd clears the local session.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the saved session token",
	Long: `The logout command forgets the current session: the access token is removed
from the OS keychain. The API is not contacted.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		had := a.state.Token() != ""
		a.svc.Logout()
		if had {
			pterm.Success.Println("Logged out. The saved token has been removed.")
		} else {
			pterm.Info.Println("No saved session; nothing to do.")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
