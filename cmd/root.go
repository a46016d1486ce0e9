// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the RoomieFlow CLI.
// It implements the session subcommands (login, register, logout, whoami,
// refresh, status) on top of the auth service using the Cobra CLI framework,
// with pterm for spinners and styled output.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
)

var (
	showVersion bool

	flagAPIURL  string
	flagTimeout time.Duration
	flagVerbose bool
)

// errReported marks a failure that has already been shown to the user.
var errReported = errors.New("reported")

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "roomieflow",
	Short:         "RoomieFlow CLI for signing in to the RoomieFlow API",
	Long:          `RoomieFlow is a command-line client that manages your RoomieFlow session: it signs you in, keeps the access token in the OS keychain and refreshes it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			return runVersion(cmd)
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Interrupts cancel the command's context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version and API health")

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagAPIURL, "api-url", "", "Base URL of the RoomieFlow API (env ROOMIEFLOW_API_URL)")
	pf.DurationVar(&flagTimeout, "timeout", 0, "Request timeout, e.g. 5s (default from config, 10s)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging (env ROOMIEFLOW_VERBOSE=1)")
}
