// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"net/http"

	apperr "roomieflow/cli/internal/errors"
)

// Credentials is the body of POST /auth/login. Username may also be an email address.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the body of POST /auth/register.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by login, register and refresh.
type AuthResponse struct {
	Message     string `json:"message,omitempty"`
	User        User   `json:"user"`
	AccessToken string `json:"access_token"`
}

// Login calls POST /auth/login.
func (c *Client) Login(ctx context.Context, creds Credentials) (*AuthResponse, error) {
	return c.authCall(ctx, c.endpoints.Login, creds)
}

// Register calls POST /auth/register.
func (c *Client) Register(ctx context.Context, reg Registration) (*AuthResponse, error) {
	return c.authCall(ctx, c.endpoints.Register, reg)
}

// Refresh calls POST /auth/refresh. The current token goes in the Authorization
// header through the bearer interceptor; there is no body.
func (c *Client) Refresh(ctx context.Context) (*AuthResponse, error) {
	return c.authCall(ctx, c.endpoints.Refresh, nil)
}

// authCall posts to one of the token-issuing endpoints and checks that both
// the user and the access token came back.
func (c *Client) authCall(ctx context.Context, path string, in any) (*AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, path, in, &out); err != nil {
		return nil, err
	}
	if out.AccessToken == "" {
		return nil, apperr.New(apperr.Decode, "no access_token in response")
	}
	if len(out.User) == 0 {
		return nil, apperr.New(apperr.Decode, "no user in response")
	}
	return &out, nil
}
