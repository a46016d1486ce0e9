// Package xdg provides helpers to resolve XDG Base Directory paths for roomieflow.
// It implements the XDG Base Directory specification for determining where the
// configuration file and the file-backed credential store live.
//
// The package falls back to the traditional locations when the XDG environment
// variables are not set and creates the directories with private permissions.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under every XDG base.
const AppName = "roomieflow"

// ConfigDir returns the XDG config directory for roomieflow.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/roomieflow when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return resolve("XDG_CONFIG_HOME", ".config")
}

// DataDir returns the XDG data directory for roomieflow.
// The file credential backend keeps its encrypted items here.
// It falls back to ~/.local/share/roomieflow when XDG_DATA_HOME is unset.
func DataDir() (string, error) {
	return resolve("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func resolve(env, fallback string) (string, error) {
	base := os.Getenv(env)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, fallback)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
