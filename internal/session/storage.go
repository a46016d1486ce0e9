// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

// TokenStore persists the bearer token between runs.
// It is satisfied by *keychain.Manager.
type TokenStore interface {
	LoadToken() (string, error)
	SaveToken(token string) error
	DeleteToken() error
}

// NopStore keeps nothing; a State built on it forgets the token on exit.
type NopStore struct{}

func (NopStore) LoadToken() (string, error) { return "", nil }
func (NopStore) SaveToken(string) error     { return nil }
func (NopStore) DeleteToken() error         { return nil }
