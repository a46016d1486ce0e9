package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"roomieflow/cli/internal/auth"
	"roomieflow/cli/internal/backend"
)

var (
	registerUsername string
	registerEmail    string
)

// registerCmd creates an account and signs in with it.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Create a RoomieFlow account",
	Long: `The register command creates a new account and signs you in with it.

Input is checked locally first: usernames are 1-50 characters, the email must be
valid, and the password needs at least 8 characters with an uppercase letter,
a lowercase letter and a number.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}

		reg := backend.Registration{}
		if reg.Username, err = a.prompt.LineOr(registerUsername, "Username"); err != nil {
			return err
		}
		if reg.Email, err = a.prompt.LineOr(registerEmail, "Email"); err != nil {
			return err
		}
		if reg.Password, err = a.prompt.Secret("Password"); err != nil {
			return err
		}
		if a.prompt.Interactive() {
			confirm, err := a.prompt.Secret("Confirm password")
			if err != nil {
				return err
			}
			if confirm != reg.Password {
				pterm.Error.Println("Passwords do not match")
				return errReported
			}
		}

		reg = auth.NormalizeRegistration(reg)
		if err := auth.ValidateRegistration(reg); err != nil {
			pterm.Error.Println(err.Error())
			return errReported
		}

		done := spin("Creating account")
		res := a.svc.Register(cmd.Context(), reg)
		done()
		if !res.Success {
			return a.fail(res, "creating your account")
		}
		pterm.Success.Printf("Account created. Welcome, %s!\n", a.state.User().DisplayName())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Username (prompted when omitted)")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address (prompted when omitted)")
}
