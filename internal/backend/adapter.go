// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend is the CLI's only network egress point: a shared HTTP client for
// the RoomieFlow REST API with outbound and inbound interceptor chains.
//
// The default outbound chain stamps the session's bearer token and a request id on
// every request; the default inbound chain clears the session when the API answers
// 401 while the session is authenticated. Endpoint helpers (Login, Register, Me,
// Refresh, Health) decode the JSON bodies the API returns.
package backend

import "context"

// API defines backend operations the session service depends on.
// Implementations may call real HTTP endpoints or provide fakes for tests.
type API interface {
	// Login exchanges credentials for a user and an access token.
	Login(ctx context.Context, creds Credentials) (*AuthResponse, error)
	// Register creates an account and returns it with an access token.
	Register(ctx context.Context, reg Registration) (*AuthResponse, error)
	// Me returns the user the current bearer token belongs to.
	Me(ctx context.Context) (User, error)
	// Refresh issues a new access token for the current bearer token.
	Refresh(ctx context.Context) (*AuthResponse, error)
	// Health reports whether the API is up. No authentication required.
	Health(ctx context.Context) (*HealthStatus, error)
}

// Session is the view of the session state the interceptors need.
// It is satisfied by *session.State.
type Session interface {
	Token() string
	IsAuthenticated() bool
	Clear()
}
