// Copyright (c) 2025 RoomieFlow
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"sync"
	"testing"

	"github.com/99designs/keyring"
)

func TestTokenLifecycle(t *testing.T) {
	m := NewMemory()

	tok, err := m.LoadToken()
	if err != nil {
		t.Fatalf("LoadToken() on empty store error = %v", err)
	}
	if tok != "" {
		t.Fatalf("LoadToken() on empty store = %q, want empty", tok)
	}

	if err := m.SaveToken("T1"); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}
	if err := m.SaveToken("T2"); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}
	if tok, _ := m.LoadToken(); tok != "T2" {
		t.Errorf("LoadToken() = %q, want T2", tok)
	}

	if err := m.DeleteToken(); err != nil {
		t.Fatalf("DeleteToken() error = %v", err)
	}
	if tok, _ := m.LoadToken(); tok != "" {
		t.Errorf("LoadToken() after delete = %q, want empty", tok)
	}
	if err := m.DeleteToken(); err != nil {
		t.Errorf("DeleteToken() on empty store error = %v", err)
	}
}

func TestNewWithRingSeesExistingItem(t *testing.T) {
	ring := keyring.NewArrayKeyring([]keyring.Item{{Key: KeyToken, Data: []byte("persisted")}})
	m := NewWithRing(ring)
	if tok, _ := m.LoadToken(); tok != "persisted" {
		t.Errorf("LoadToken() = %q, want persisted", tok)
	}
}

func TestNewManagerMemoryBackend(t *testing.T) {
	m, err := NewManager(Options{Backend: "memory"})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if err := m.SaveToken("x"); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}
}

func TestNewManagerFileBackend(t *testing.T) {
	dir := t.TempDir()
	m, err := NewManager(Options{Backend: "file", FileDir: dir})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	if err := m.SaveToken("file-token"); err != nil {
		t.Fatalf("SaveToken() error = %v", err)
	}

	reopened, err := NewManager(Options{Backend: "file", FileDir: dir})
	if err != nil {
		t.Fatalf("NewManager() reopen error = %v", err)
	}
	if tok, _ := reopened.LoadToken(); tok != "file-token" {
		t.Errorf("LoadToken() after reopen = %q, want file-token", tok)
	}
}

func TestConcurrentSaves(t *testing.T) {
	m := NewMemory()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.SaveToken("tok")
			_, _ = m.LoadToken()
		}()
	}
	wg.Wait()
	if tok, _ := m.LoadToken(); tok != "tok" {
		t.Errorf("LoadToken() = %q, want tok", tok)
	}
}
