// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain persists the session token in the OS keychain/credential store.
//
// It is the CLI's counterpart of browser local storage: one key, "token", holding the
// raw bearer token. Native stores are preferred (macOS Keychain, Windows Credential
// Manager, Secret Service/KWallet on Linux); when none is reachable an encrypted file
// store under the XDG data dir is used. An in-memory ring backs tests.
package keychain

import (
	"errors"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/99designs/keyring"

	apperr "roomieflow/cli/internal/errors"
	"roomieflow/cli/internal/xdg"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "roomieflow"

// KeyToken is the single entry the session is mirrored into.
const KeyToken = "token"

// errNotFound is returned by native backends for a missing key.
var errNotFound = errors.New("key not found")

// Manager provides thread-safe access to the persisted token.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
	log     *slog.Logger
}

// keychainBackend defines the interface for native command-line keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Options selects the storage backend.
type Options struct {
	// Backend is "auto", "file" or "memory". Empty means "auto".
	Backend string
	// FileDir overrides the file backend directory (default: XDG data dir).
	FileDir string
	Logger  *slog.Logger
}

// NewManager opens the credential store described by opts.
func NewManager(opts Options) (*Manager, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	switch opts.Backend {
	case "memory":
		return NewMemory(), nil
	case "", "auto":
		// Native security command first on macOS; falls through to keyring if missing.
		if runtime.GOOS == "darwin" {
			if backend, err := newSecurityBackend(log); err == nil {
				return &Manager{backend: backend, log: log}, nil
			}
		}
	}

	ring, err := openRing(opts)
	if err != nil {
		return nil, apperr.Wrap(apperr.Storage, "open credential store", err)
	}
	return &Manager{ring: ring, log: log}, nil
}

// NewWithRing wraps an already opened keyring.
func NewWithRing(ring keyring.Keyring) *Manager {
	return &Manager{ring: ring, log: slog.New(slog.DiscardHandler)}
}

// NewMemory returns a Manager backed by a process-local ring.
func NewMemory() *Manager {
	return NewWithRing(keyring.NewArrayKeyring(nil))
}

// openRing opens the keyring with the native backends of the current OS,
// followed by the encrypted file backend unless a native store was demanded.
func openRing(opts Options) (keyring.Keyring, error) {
	var allowed []keyring.BackendType
	if opts.Backend != "file" {
		switch runtime.GOOS {
		case "darwin":
			allowed = append(allowed, keyring.KeychainBackend, keyring.PassBackend)
		case "windows":
			allowed = append(allowed, keyring.WinCredBackend)
		default:
			allowed = append(allowed, keyring.SecretServiceBackend, keyring.KWalletBackend, keyring.PassBackend)
		}
	}
	allowed = append(allowed, keyring.FileBackend)

	dir := opts.FileDir
	if dir == "" {
		d, err := xdg.DataDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowed,
		PassPrefix:      ServiceName,
		WinCredPrefix:   ServiceName,
		FileDir:         dir,
		// The file store is a fallback for hosts with no native store;
		// its fixed passphrase only keeps the token out of plain sight.
		FilePasswordFunc: keyring.FixedStringPrompt(ServiceName),
	}
	return keyring.Open(cfg)
}

// SaveToken stores the bearer token.
func (m *Manager) SaveToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	if m.backend != nil {
		err = m.backend.Set(KeyToken, token)
	} else {
		err = m.ring.Set(keyring.Item{Key: KeyToken, Data: []byte(token), Label: ServiceName + " session"})
	}
	if err != nil {
		return apperr.Wrap(apperr.Storage, "save token", err)
	}
	return nil
}

// LoadToken returns the stored token, or "" when none is stored.
func (m *Manager) LoadToken() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		token, err := m.backend.Get(KeyToken)
		if errors.Is(err, errNotFound) {
			return "", nil
		}
		if err != nil {
			return "", apperr.Wrap(apperr.Storage, "load token", err)
		}
		return token, nil
	}

	it, err := m.ring.Get(KeyToken)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", apperr.Wrap(apperr.Storage, "load token", err)
	}
	return string(it.Data), nil
}

// DeleteToken removes the stored token. A missing token is not an error.
func (m *Manager) DeleteToken() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var err error
	if m.backend != nil {
		err = m.backend.Delete(KeyToken)
	} else {
		err = m.ring.Remove(KeyToken)
	}
	if err != nil && !errors.Is(err, keyring.ErrKeyNotFound) && !errors.Is(err, errNotFound) && !errors.Is(err, os.ErrNotExist) {
		return apperr.Wrap(apperr.Storage, "delete token", err)
	}
	return nil
}
