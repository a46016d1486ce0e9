// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns failed API calls into troubleshooting hints for the terminal.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	apperr "roomieflow/cli/internal/errors"
)

// Category is the kind of network problem behind a failed call.
type Category int

const (
	Generic Category = iota
	Timeout
	DNS
	Refused
	TLS
	Server
)

func (c Category) String() string {
	switch c {
	case Timeout:
		return "timeout"
	case DNS:
		return "dns"
	case Refused:
		return "refused"
	case TLS:
		return "tls"
	case Server:
		return "server"
	default:
		return "generic"
	}
}

// IsNetwork reports whether err should be presented with FormatNetworkError
// rather than as the API's own message: the request never got a response, or
// the server answered with a 5xx and nothing to say.
func IsNetwork(err error) bool {
	if err == nil {
		return false
	}
	if apperr.KindOf(err) == apperr.Transport {
		return true
	}
	return apperr.StatusOf(err) >= 500 && apperr.ServerMessage(err) == ""
}

// Classify inspects err for the usual suspects.
func Classify(err error) Category {
	if err == nil {
		return Generic
	}
	if apperr.StatusOf(err) >= 500 {
		return Server
	}

	var netErr net.Error
	lower := strings.ToLower(err.Error())
	if (errors.As(err, &netErr) && netErr.Timeout()) ||
		strings.Contains(lower, "timeout") ||
		strings.Contains(lower, "deadline exceeded") {
		return Timeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return DNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) || strings.Contains(lower, "connection refused") {
		return Refused
	}

	for _, s := range []string{"tls", "x509", "certificate", "handshake"} {
		if strings.Contains(lower, s) {
			return TLS
		}
	}
	return Generic
}

// FormatNetworkError prints a hint for err while performing action against
// apiURL and returns err wrapped for the caller.
func FormatNetworkError(err error, action, apiURL string) error {
	if err == nil {
		return nil
	}
	host := ExtractHostFromURL(apiURL)

	switch Classify(err) {
	case Timeout:
		pterm.Warning.Printf("Connection timeout while %s\n", action)
		pterm.Println("The server took too long to respond. Try again, or raise --timeout.")
	case DNS:
		pterm.Error.Printf("Cannot resolve %s while %s\n", host, action)
		pterm.Println("Check your internet connection and the --api-url setting.")
	case Refused:
		pterm.Error.Printf("Connection refused by %s while %s\n", host, action)
		pterm.Println("Is the RoomieFlow API running? Check the address and port in --api-url.")
	case TLS:
		pterm.Error.Printf("Secure connection to %s failed while %s\n", host, action)
		pterm.Println("Check the server certificate, proxy settings and your system clock.")
	case Server:
		pterm.Error.Printf("Server error while %s\n", action)
		pterm.Println("The RoomieFlow API ran into a problem. Please try again in a few minutes.")
	default:
		pterm.Error.Printf("Cannot reach the RoomieFlow API at %s while %s\n", host, action)
		details := err.Error()
		if len(details) > 100 {
			details = details[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", details)
	}

	return fmt.Errorf("network error: %w", err)
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
