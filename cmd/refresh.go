package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// refreshCmd exchanges the saved token for a new one.
var refreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Renew the access token",
	Long: `The refresh command asks the API for a new access token using the current one.
If the API refuses, you are logged out and need to run 'roomieflow login' again.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if a.state.Token() == "" {
			notLoggedIn()
			return nil
		}

		done := spin("Refreshing token")
		res := a.svc.RefreshToken(cmd.Context())
		done()
		if !res.Success {
			pterm.Warning.Println("Your session could not be renewed and has been cleared.")
			return a.fail(res, "refreshing the token")
		}
		pterm.Success.Println("Token refreshed")
		if c, err := a.svc.Claims(); err == nil && c.HasExpiry() {
			pterm.Printf("Valid until %s\n", c.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd)
}
