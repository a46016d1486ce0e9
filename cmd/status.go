package cmd

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	statusOffline       bool
	statusRefreshWithin time.Duration
)

// statusCmd summarizes the session and the token's lifetime.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show session and token status",
	Long: `The status command shows whether you are signed in and when the access token
expires. By default the session is checked with the API first; --offline only
decodes the saved token.

With --refresh-within, a token that expires inside the given window is renewed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd)
		if err != nil {
			return err
		}
		if a.state.Token() == "" {
			notLoggedIn()
			return nil
		}
		ctx := cmd.Context()

		if !statusOffline {
			a.restore(ctx)
			if !a.state.IsAuthenticated() {
				pterm.Warning.Println("Your saved session is no longer valid.")
				notLoggedIn()
				return nil
			}
		}

		if statusRefreshWithin > 0 {
			res, refreshed := a.svc.EnsureFresh(ctx, statusRefreshWithin)
			if !res.Success {
				pterm.Warning.Println("Your session could not be renewed and has been cleared.")
				return a.fail(res, "refreshing the token")
			}
			if refreshed {
				pterm.Success.Println("Token refreshed")
			}
		}

		rows := [][]string{{"API", a.cfg.APIURL}}
		if statusOffline {
			rows = append(rows, []string{"Session", "saved (not checked)"})
		} else {
			rows = append(rows, []string{"Signed in as", a.state.User().DisplayName()})
		}

		claims, err := a.svc.Claims()
		switch {
		case err != nil:
			rows = append(rows, []string{"Token", "opaque"})
			a.log.Debug("token not decodable", "error", err)
		case claims.HasExpiry():
			left := time.Until(claims.ExpiresAt).Round(time.Second)
			state := "expires in " + left.String()
			if left <= 0 {
				state = "expired"
			}
			rows = append(rows,
				[]string{"Token subject", claims.Subject},
				[]string{"Expires", claims.ExpiresAt.Local().Format("2006-01-02 15:04:05") + " (" + state + ")"},
			)
		default:
			rows = append(rows, []string{"Token subject", claims.Subject}, []string{"Expires", "never"})
		}
		if !claims.IssuedAt.IsZero() {
			rows = append(rows, []string{"Issued", claims.IssuedAt.Local().Format("2006-01-02 15:04:05")})
		}

		return pterm.DefaultTable.WithData(rows).Render()
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusOffline, "offline", false, "Do not contact the API; only decode the saved token")
	statusCmd.Flags().DurationVar(&statusRefreshWithin, "refresh-within", 0, "Refresh the token when it expires within this window, e.g. 10m")
}
