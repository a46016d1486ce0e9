package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"roomieflow/cli/internal/backend"
)

var epoch = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func signed(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(err)
	}
	return tok
}

func TestParseClaims(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantSub string
		wantExp time.Time
		wantErr bool
	}{
		{
			name:    "string subject",
			token:   signed(t, jwt.MapClaims{"sub": "42", "iat": epoch.Unix(), "exp": epoch.Add(time.Hour).Unix()}),
			wantSub: "42",
			wantExp: epoch.Add(time.Hour),
		},
		{
			name:    "numeric subject",
			token:   signed(t, jwt.MapClaims{"sub": 7}),
			wantSub: "7",
		},
		{name: "empty", token: "", wantErr: true},
		{name: "garbage", token: "not.a.jwt", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClaims(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseClaims() err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got.Subject != tt.wantSub {
				t.Errorf("Subject = %q, want %q", got.Subject, tt.wantSub)
			}
			if !got.ExpiresAt.Equal(tt.wantExp) {
				t.Errorf("ExpiresAt = %v, want %v", got.ExpiresAt, tt.wantExp)
			}
			if got.HasExpiry() != !tt.wantExp.IsZero() {
				t.Errorf("HasExpiry() = %v", got.HasExpiry())
			}
		})
	}
}

func TestEnsureFresh(t *testing.T) {
	tests := []struct {
		name        string
		token       string
		wantRefresh bool
		wantToken   string
	}{
		{
			name:      "far from expiry",
			token:     signed(t, jwt.MapClaims{"sub": "1", "exp": epoch.Add(2 * time.Hour).Unix()}),
			wantToken: "",
		},
		{
			name:        "inside window",
			token:       signed(t, jwt.MapClaims{"sub": "1", "exp": epoch.Add(2 * time.Minute).Unix()}),
			wantRefresh: true,
			wantToken:   "NEW",
		},
		{
			name:        "already expired",
			token:       signed(t, jwt.MapClaims{"sub": "1", "exp": epoch.Add(-time.Minute).Unix()}),
			wantRefresh: true,
			wantToken:   "NEW",
		},
		{
			name:  "no expiry",
			token: signed(t, jwt.MapClaims{"sub": "1"}),
		},
		{
			name:  "opaque token",
			token: "opaque",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, "")
			h.svc.now = func() time.Time { return epoch }
			h.state.Establish(backend.User{"id": 1.0}, tt.token)
			h.api.on("/api/auth/refresh", http.StatusOK, authBody(1, "NEW"))

			res, refreshed := h.svc.EnsureFresh(context.Background(), 5*time.Minute)

			if !res.Success {
				t.Fatalf("EnsureFresh() = %+v", res)
			}
			if refreshed != tt.wantRefresh {
				t.Errorf("refreshed = %v, want %v", refreshed, tt.wantRefresh)
			}
			want := tt.wantToken
			if want == "" {
				want = tt.token
			}
			if h.state.Token() != want {
				t.Errorf("Token() = %q, want %q", h.state.Token(), want)
			}
		})
	}
}

func TestEnsureFreshWithoutSession(t *testing.T) {
	h := newHarness(t, "")
	res, refreshed := h.svc.EnsureFresh(context.Background(), time.Minute)
	if res.Success || refreshed || res.Error != MsgNotLoggedIn {
		t.Errorf("EnsureFresh() = %+v, %v", res, refreshed)
	}
	if h.api.total.Load() != 0 {
		t.Error("no request expected")
	}
}
