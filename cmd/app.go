package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"roomieflow/cli/internal/auth"
	"roomieflow/cli/internal/backend"
	"roomieflow/cli/internal/config"
	"roomieflow/cli/internal/httperrors"
	"roomieflow/cli/internal/keychain"
	"roomieflow/cli/internal/logging"
	"roomieflow/cli/internal/session"
	"roomieflow/cli/internal/terminal"
)

// app is everything a command needs, wired once per invocation.
type app struct {
	cfg    config.Config
	log    *slog.Logger
	state  *session.State
	client *backend.Client
	svc    *auth.Service
	prompt *terminal.Prompter
}

// newApp loads configuration, applies the global flags and wires the
// keychain, session state, API client and auth service together.
func newApp(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("api-url") {
		cfg.APIURL = flagAPIURL
	}
	if flags.Changed("timeout") {
		cfg.Timeout.Duration = flagTimeout
	}
	if flagVerbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logging.New(os.Stderr, cfg.LogLevel)
	if flagVerbose {
		// keep pterm's own debug printers in step with the logger
		pterm.EnableDebugMessages()
	}

	store, err := keychain.NewManager(keychain.Options{
		Backend: cfg.Keyring.Backend,
		FileDir: cfg.Keyring.FileDir,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	state := session.New(store, log)
	client := backend.New(backend.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout.Duration,
		Logger:  log,
	}, state)

	log.Debug("client ready", "api_url", cfg.APIURL, "timeout", cfg.Timeout.Duration)
	return &app{
		cfg:    cfg,
		log:    log,
		state:  state,
		client: client,
		svc:    auth.NewService(state, client, log),
		prompt: terminal.Stdio(),
	}, nil
}

// restore validates the persisted session before a command uses it.
func (a *app) restore(ctx context.Context) {
	done := spin("Checking session")
	a.svc.InitializeSession(ctx)
	done()
}

// spin shows a spinner until the returned func is called.
func spin(text string) func() {
	s, err := pterm.DefaultSpinner.WithRemoveWhenDone(true).Start(text)
	if err != nil {
		return func() {}
	}
	return func() { _ = s.Stop() }
}

// fail shows a failed result and returns errReported. Network problems get
// troubleshooting hints instead of the bare message.
func (a *app) fail(res auth.Result, action string) error {
	if httperrors.IsNetwork(res.Err) {
		_ = httperrors.FormatNetworkError(res.Err, action, a.cfg.APIURL)
		return errReported
	}
	msg := res.Error
	if msg == "" {
		msg = "Request failed"
	}
	pterm.Error.Println(msg)
	if res.Err != nil {
		a.log.Debug(logging.PresentError(action, res.Err))
	}
	return errReported
}

func notLoggedIn() {
	pterm.Info.Println("You're not logged in.")
	pterm.Println("   Run 'roomieflow login' to get started.")
}
