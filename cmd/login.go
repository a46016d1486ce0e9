// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"roomieflow/cli/internal/auth"
	"roomieflow/cli/internal/backend"
)

var loginUsername string

// loginCmd signs in with a username (or email) and password.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth", "signin"},
	Short:   "Sign in with your username or email",
	Long: `The login command signs in to the RoomieFlow API with your username (or email)
and password. The password is read without echo. On success the access token is
stored in the OS keychain and reused by the other commands.

If a saved session is still valid, the command says so and does nothing.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		if a.state.Token() != "" {
			a.restore(ctx)
			if a.state.IsAuthenticated() {
				pterm.Info.Printf("Already logged in as %s\n", a.state.User().DisplayName())
				return nil
			}
		}

		creds := backend.Credentials{}
		if creds.Username, err = a.prompt.LineOr(loginUsername, "Username or email"); err != nil {
			return err
		}
		if creds.Password, err = a.prompt.Secret("Password"); err != nil {
			return err
		}
		if err := auth.ValidateCredentials(creds); err != nil {
			pterm.Error.Println(err.Error())
			return errReported
		}

		done := spin("Signing in")
		res := a.svc.Login(ctx, creds)
		done()
		if !res.Success {
			return a.fail(res, "signing in")
		}
		pterm.Success.Printf("Welcome back, %s!\n", a.state.User().DisplayName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username or email (prompted when omitted)")
}
