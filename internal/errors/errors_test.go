package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestResponseKind(t *testing.T) {
	tests := []struct {
		status int
		want   Kind
	}{
		{401, Unauthorized},
		{400, Rejected},
		{404, Rejected},
		{500, Rejected},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			if got := Response(tt.status, "").Kind; got != tt.want {
				t.Errorf("Response(%d).Kind = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestServerMessage(t *testing.T) {
	wrapped := fmt.Errorf("login: %w", Response(400, "Invalid credentials"))
	if got := ServerMessage(wrapped); got != "Invalid credentials" {
		t.Errorf("ServerMessage() = %q, want %q", got, "Invalid credentials")
	}
	if got := StatusOf(wrapped); got != 400 {
		t.Errorf("StatusOf() = %d, want 400", got)
	}

	transport := Wrap(Transport, "POST /auth/login", stderrors.New("connection refused"))
	if got := ServerMessage(transport); got != "" {
		t.Errorf("ServerMessage(transport) = %q, want empty", got)
	}
	if got := KindOf(transport); got != Transport {
		t.Errorf("KindOf(transport) = %v, want %v", got, Transport)
	}
	if got := KindOf(stderrors.New("plain")); got != "" {
		t.Errorf("KindOf(plain) = %v, want empty", got)
	}
}

func TestUnwrap(t *testing.T) {
	base := stderrors.New("boom")
	err := Wrap(Storage, "save token", base)
	if !stderrors.Is(err, base) {
		t.Error("errors.Is should find the wrapped error")
	}
	if got := err.Error(); got != "storage: save token: boom" {
		t.Errorf("Error() = %q", got)
	}
	if got := Response(401, "Token expired").Error(); got != "unauthorized: 401 Token expired" {
		t.Errorf("Error() = %q", got)
	}
}
