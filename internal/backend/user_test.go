package backend

import (
	"encoding/json"
	"testing"
)

func TestUserAccessors(t *testing.T) {
	var u User
	raw := `{"id":"7b0c","username":"alice","email":"alice@example.com","role":"admin",
		"last_login":"2025-03-01T09:30:00.123456","email_verified":true}`
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		t.Fatal(err)
	}
	if u.ID() != "7b0c" || u.Username() != "alice" || u.Email() != "alice@example.com" || u.Role() != "admin" {
		t.Errorf("unexpected accessors: %v %v %v %v", u.ID(), u.Username(), u.Email(), u.Role())
	}
	if !u.EmailVerified() {
		t.Error("EmailVerified() = false")
	}
	ts, ok := u.LastLogin()
	if !ok || ts.Year() != 2025 || ts.Minute() != 30 {
		t.Errorf("LastLogin() = %v, %v", ts, ok)
	}
}

func TestUserDisplayName(t *testing.T) {
	tests := []struct {
		name string
		user User
		want string
	}{
		{"username wins", User{"username": "bob", "email": "b@x.io", "id": 3.0}, "bob"},
		{"email next", User{"email": "b@x.io", "id": 3.0}, "b@x.io"},
		{"numeric id", User{"id": 3.0}, "3"},
		{"empty", User{}, "user"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
