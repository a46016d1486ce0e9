// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package auth provides the session operations of the CLI: startup initialization,
// login, registration, fetching the current user, token refresh and logout.
//
// Every operation reports its outcome as a Result instead of an error: failures from
// the network or the API are caught here and turned into a message suitable for the
// user, taken from the API's "error" field when it sent one. Forced logout on 401 is
// not handled here; the backend client's inbound interceptor does that for every call.
package auth

import (
	"context"
	"log/slog"
	"time"

	"roomieflow/cli/internal/backend"
	apperr "roomieflow/cli/internal/errors"
	"roomieflow/cli/internal/logging"
	"roomieflow/cli/internal/session"
)

// Default messages used when the API did not say why a call failed.
const (
	MsgLoginFailed        = "Login failed"
	MsgRegistrationFailed = "Registration failed"
	MsgFetchUserFailed    = "Failed to fetch user"
	MsgNotLoggedIn        = "Not logged in"
)

// Result is the outcome of a session operation.
type Result struct {
	Success bool
	// Error is a human-readable reason; empty on success and after a failed refresh.
	Error string
	// Err is the underlying failure, for diagnostics.
	Err error
}

func succeeded() Result { return Result{Success: true} }

// failed builds a failure result, preferring the server's message over fallback.
func failed(err error, fallback string) Result {
	msg := apperr.ServerMessage(err)
	if msg == "" {
		msg = fallback
	}
	return Result{Error: msg, Err: err}
}

// Service centralizes session operations against the API and the session state.
type Service struct {
	state *session.State
	api   backend.API
	log   *slog.Logger
	now   func() time.Time
}

// NewService constructs a Service. The api is normally a *backend.Client bound
// to the same state.
func NewService(state *session.State, api backend.API, log *slog.Logger) *Service {
	if log == nil {
		log = logging.Discard()
	}
	return &Service{state: state, api: api, log: log, now: time.Now}
}

// State returns the session state the service mutates.
func (s *Service) State() *session.State { return s.state }

// InitializeSession validates a saved token at startup. When a token is present
// the current user is fetched; if that fails the session is cleared. The state
// is marked initialized whatever happens.
func (s *Service) InitializeSession(ctx context.Context) {
	defer s.state.MarkInitialized()

	if s.state.Token() == "" {
		return
	}
	if res := s.FetchUser(ctx); !res.Success {
		s.log.Debug("saved session rejected", "reason", res.Error)
		s.Logout()
	}
}

// Login submits credentials and adopts the returned user and token.
// On failure the prior session is left as it was.
func (s *Service) Login(ctx context.Context, creds backend.Credentials) Result {
	resp, err := s.api.Login(ctx, creds)
	if err != nil {
		s.log.Debug("login failed", "error", logging.Mask(err.Error()))
		return failed(err, MsgLoginFailed)
	}
	s.state.Establish(resp.User, resp.AccessToken)
	s.log.Debug("logged in", "user", resp.User.DisplayName())
	return succeeded()
}

// Register creates an account and adopts the returned user and token.
// On failure the prior session is left as it was.
func (s *Service) Register(ctx context.Context, reg backend.Registration) Result {
	resp, err := s.api.Register(ctx, reg)
	if err != nil {
		s.log.Debug("registration failed", "error", logging.Mask(err.Error()))
		return failed(err, MsgRegistrationFailed)
	}
	s.state.Establish(resp.User, resp.AccessToken)
	s.log.Debug("registered", "user", resp.User.DisplayName())
	return succeeded()
}

// FetchUser refreshes the user object from the API; the token is not touched.
// A failure leaves the session as it was (apart from the client's 401 handling).
func (s *Service) FetchUser(ctx context.Context) Result {
	user, err := s.api.Me(ctx)
	if err != nil {
		s.log.Debug("fetch user failed", "error", logging.Mask(err.Error()))
		return failed(err, MsgFetchUserFailed)
	}
	s.state.SetUser(user)
	return succeeded()
}

// RefreshToken exchanges the current token for a new one. Any failure logs the
// user out and is reported without a message.
func (s *Service) RefreshToken(ctx context.Context) Result {
	resp, err := s.api.Refresh(ctx)
	if err != nil {
		s.log.Debug("token refresh failed", "error", logging.Mask(err.Error()))
		s.Logout()
		return Result{Err: err}
	}
	s.state.Establish(resp.User, resp.AccessToken)
	return succeeded()
}

// Logout clears the session and the persisted token. It makes no network call.
func (s *Service) Logout() {
	s.state.Clear()
}
