package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	apperr "roomieflow/cli/internal/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"deadline", apperr.Wrap(apperr.Transport, "request", context.DeadlineExceeded), Timeout},
		{"client timeout text", errors.New("Client.Timeout exceeded while awaiting headers"), Timeout},
		{"dns", apperr.Wrap(apperr.Transport, "request", &net.DNSError{Err: "no such host", Name: "api.invalid"}), DNS},
		{"refused", apperr.Wrap(apperr.Transport, "request", &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}), Refused},
		{"tls", errors.New("tls: failed to verify certificate: x509: unknown authority"), TLS},
		{"5xx", apperr.Response(502, ""), Server},
		{"other", errors.New("boom"), Generic},
		{"nil", nil, Generic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNetwork(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{apperr.Wrap(apperr.Transport, "request", errors.New("eof")), true},
		{apperr.Response(503, ""), true},
		{apperr.Response(500, "Database unavailable"), false},
		{apperr.Response(400, ""), false},
		{apperr.Response(401, "Token has expired"), false},
		{nil, false},
	}
	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			if got := IsNetwork(tt.err); got != tt.want {
				t.Errorf("IsNetwork(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExtractHostFromURL(t *testing.T) {
	if got := ExtractHostFromURL("http://localhost:5000/api"); got != "localhost:5000" {
		t.Errorf("got %q", got)
	}
	if got := ExtractHostFromURL("::"); got != "server" {
		t.Errorf("got %q", got)
	}
}
