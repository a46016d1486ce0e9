// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session holds the in-memory authentication state of the CLI: the
// current user, their bearer token and whether the startup check has run.
//
// A State is created explicitly and handed to whatever needs it (the HTTP client
// interceptors and the auth service); there is no package-level instance. The
// token is mirrored into a TokenStore on every change so that the next process
// starts with it.
package session

import (
	"log/slog"
	"maps"
	"sync"

	"roomieflow/cli/internal/backend"
	"roomieflow/cli/internal/logging"
)

// State is the session record. The zero value is not usable; call New.
type State struct {
	mu          sync.RWMutex
	user        backend.User
	token       string
	initialized bool

	store TokenStore
	log   *slog.Logger
}

var _ backend.Session = (*State)(nil)

// Snapshot is a consistent copy of the session fields.
type Snapshot struct {
	User          backend.User
	Token         string
	Initialized   bool
	Authenticated bool
}

// New builds a State seeded with the token found in store, if any.
// A store read failure is logged and treated as "no token".
func New(store TokenStore, log *slog.Logger) *State {
	if log == nil {
		log = logging.Discard()
	}
	if store == nil {
		store = NopStore{}
	}
	s := &State{store: store, log: log}
	token, err := store.LoadToken()
	if err != nil {
		log.Warn("could not read saved session", "error", logging.Mask(err.Error()))
	}
	s.token = token
	return s
}

// Token returns the current bearer token, or "".
func (s *State) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current user, or nil.
func (s *State) User() backend.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.user)
}

// IsAuthenticated reports whether both a token and a user are present.
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated()
}

func (s *State) authenticated() bool {
	return s.token != "" && len(s.user) > 0
}

// Initialized reports whether the startup check has completed.
func (s *State) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.initialized
}

// MarkInitialized records that the startup check completed. It never reverts.
func (s *State) MarkInitialized() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initialized = true
}

// Snapshot returns all fields under one lock.
func (s *State) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		User:          maps.Clone(s.user),
		Token:         s.token,
		Initialized:   s.initialized,
		Authenticated: s.authenticated(),
	}
}

// Establish adopts a user and token together and persists the token.
// The persisted write happens under the same lock so the store ends up with
// the token of whichever call wrote last.
func (s *State) Establish(user backend.User, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = maps.Clone(user)
	s.token = token
	if err := s.store.SaveToken(token); err != nil {
		s.log.Warn("could not persist session token", "error", logging.Mask(err.Error()))
	}
}

// SetUser replaces the user and leaves the token alone.
func (s *State) SetUser(user backend.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = maps.Clone(user)
}

// Clear drops user and token and removes the persisted token. It cannot fail;
// a store error is only logged.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.token = ""
	if err := s.store.DeleteToken(); err != nil {
		s.log.Warn("could not remove saved session token", "error", logging.Mask(err.Error()))
	}
}
