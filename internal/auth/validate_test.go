package auth

import (
	"strings"
	"testing"

	"roomieflow/cli/internal/backend"
)

func TestValidateCredentials(t *testing.T) {
	tests := []struct {
		name    string
		in      backend.Credentials
		wantErr string
	}{
		{"ok", backend.Credentials{Username: "alice", Password: "x"}, ""},
		{"email as username", backend.Credentials{Username: "a@b.io", Password: "x"}, ""},
		{"missing username", backend.Credentials{Password: "x"}, "username or email is required"},
		{"missing password", backend.Credentials{Username: "alice"}, "password is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCredentials(tt.in)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRegistration(t *testing.T) {
	valid := backend.Registration{Username: "alice", Email: "alice@example.com", Password: "Passw0rd"}

	tests := []struct {
		name    string
		mutate  func(*backend.Registration)
		wantErr string
	}{
		{"ok", func(*backend.Registration) {}, ""},
		{"missing username", func(r *backend.Registration) { r.Username = "" }, "username is required"},
		{"long username", func(r *backend.Registration) { r.Username = strings.Repeat("a", 51) }, "username"},
		{"bad email", func(r *backend.Registration) { r.Email = "not-an-email" }, "email"},
		{"short password", func(r *backend.Registration) { r.Password = "Pa1" }, "at least 8 characters"},
		{"no upper", func(r *backend.Registration) { r.Password = "passw0rd" }, "uppercase"},
		{"no lower", func(r *backend.Registration) { r.Password = "PASSW0RD" }, "lowercase"},
		{"no digit", func(r *backend.Registration) { r.Password = "Password" }, "number"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := valid
			tt.mutate(&r)
			err := ValidateRegistration(r)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeRegistration(t *testing.T) {
	got := NormalizeRegistration(backend.Registration{Username: "  alice ", Email: " Alice@Example.COM ", Password: " keep "})
	if got.Username != "alice" || got.Email != "alice@example.com" || got.Password != " keep " {
		t.Errorf("NormalizeRegistration() = %+v", got)
	}
}
