// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	apperr "roomieflow/cli/internal/errors"
)

// User is the account object returned by the API. It is kept as a generic JSON
// object; the accessors below read the fields the server is known to send
// (id, username, email, role, created_at, last_login, email_verified).
type User map[string]any

// ID returns the user id as a string whatever its JSON type.
func (u User) ID() string {
	switch v := u["id"].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func (u User) Username() string { return u.str("username") }
func (u User) Email() string    { return u.str("email") }
func (u User) Role() string     { return u.str("role") }

// EmailVerified reports the email_verified flag; absent means false.
func (u User) EmailVerified() bool {
	v, _ := u["email_verified"].(bool)
	return v
}

// LastLogin parses last_login. The server sends ISO-8601 without a zone.
func (u User) LastLogin() (time.Time, bool) {
	s := u.str("last_login")
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DisplayName picks the best human identifier: username, then email, then id.
func (u User) DisplayName() string {
	for _, s := range []string{u.Username(), u.Email(), u.ID()} {
		if s != "" {
			return s
		}
	}
	return "user"
}

func (u User) str(key string) string {
	s, _ := u[key].(string)
	return s
}

// Me calls GET /auth/me and returns the "user" object of the response.
func (c *Client) Me(ctx context.Context) (User, error) {
	var out struct {
		User User `json:"user"`
	}
	if err := c.do(ctx, http.MethodGet, c.endpoints.Me, nil, &out); err != nil {
		return nil, err
	}
	if len(out.User) == 0 {
		return nil, apperr.New(apperr.Decode, "no user in response")
	}
	return out.User, nil
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health calls GET /health. No authentication required; this can be used to
// check connectivity to the API.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.do(ctx, http.MethodGet, c.endpoints.Health, nil, &out); err != nil {
		return nil, err
	}
	if out.Status == "" {
		out.Status = "unknown"
	}
	return &out, nil
}
