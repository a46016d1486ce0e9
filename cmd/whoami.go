package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"roomieflow/cli/internal/backend"
)

// whoamiCmd validates the saved session and shows the signed-in user.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show the signed-in user",
	Long: `The whoami command checks the saved session with the API and shows the
account it belongs to. A session the API no longer accepts is removed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if a.state.Token() == "" {
			notLoggedIn()
			return nil
		}

		a.restore(cmd.Context())
		if !a.state.IsAuthenticated() {
			pterm.Warning.Println("Your saved session is no longer valid.")
			notLoggedIn()
			return nil
		}
		return renderUser(a.state.User())
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

// renderUser prints the fields the API commonly returns for a user.
func renderUser(u backend.User) error {
	rows := pterm.TableData{{"Field", "Value"}}
	add := func(k, v string) {
		if v != "" {
			rows = append(rows, []string{k, v})
		}
	}
	add("ID", u.ID())
	add("Username", u.Username())
	add("Email", u.Email())
	add("Role", u.Role())
	if u.EmailVerified() {
		add("Email verified", "yes")
	}
	if t, ok := u.LastLogin(); ok {
		add("Last login", t.Local().Format("2006-01-02 15:04"))
	}
	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
