// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging provides the structured logger used across the CLI and utilities
// for keeping secrets out of log lines and error messages.
//
// Log records go through log/slog with pterm's slog handler so that debug output
// matches the rest of the terminal UI. Anything that may carry a bearer token or a
// password is passed through Mask first.
package logging

import (
	"regexp"
)

var (
	rePassword = regexp.MustCompile(`(?i)(password=)([^\s;&]+)`)
	reToken    = regexp.MustCompile(`(?i)(token=|bearer\s+)([A-Za-z0-9._~+/=-]+)`)
	reJSONPass = regexp.MustCompile(`(?i)("password"\s*:\s*")([^"]*)(")`)
	reJSONTok  = regexp.MustCompile(`(?i)("(?:access_token|token)"\s*:\s*")([^"]*)(")`)
)

// Mask replaces sensitive values in the input string with "***".
// It understands query/form pairs, Authorization header values and JSON bodies.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = reToken.ReplaceAllString(out, "$1***")
	out = reJSONPass.ReplaceAllString(out, "$1***$3")
	out = reJSONTok.ReplaceAllString(out, "$1***$3")
	return out
}
