// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show CLI version and API health",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVersion(cmd)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// runVersion prints the CLI version and whatever the API's health endpoint says.
// An unreachable API is reported but is not an error.
func runVersion(cmd *cobra.Command) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	fmt.Printf("roomieflow %s\n", Version)

	health, err := a.client.Health(cmd.Context())
	if err != nil {
		a.log.Debug("health check failed", "error", err)
		fmt.Printf("api        %s (unreachable)\n", a.cfg.APIURL)
		return nil
	}
	fmt.Printf("api        %s (%s)\n", a.cfg.APIURL, health.Status)
	if health.Message != "" {
		pterm.Debug.Println(health.Message)
	}
	return nil
}
