// Package config loads and stores CLI configuration in the XDG config dir.
// Only non-secret settings are kept here; the session token goes to the OS keychain.
//
// The file is config.json by default; config.yaml is read when no JSON file exists.
// Environment variables and command-line flags override whatever the file says.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"roomieflow/cli/internal/xdg"
)

const (
	// DefaultAPIURL is the base every endpoint path is appended to.
	DefaultAPIURL = "http://localhost:5000/api"
	// DefaultTimeout bounds every request made by the shared client.
	DefaultTimeout = 10 * time.Second

	envAPIURL  = "ROOMIEFLOW_API_URL"
	envVerbose = "ROOMIEFLOW_VERBOSE"
)

// Config holds non-sensitive CLI settings.
type Config struct {
	APIURL   string        `json:"api_url" yaml:"api_url"`
	Timeout  Duration      `json:"timeout" yaml:"timeout"`
	LogLevel string        `json:"log_level" yaml:"log_level"`
	Keyring  KeyringConfig `json:"keyring" yaml:"keyring"`
}

// KeyringConfig selects where the session token is persisted.
type KeyringConfig struct {
	// Backend is "auto" (native store, file fallback), "file" or "memory".
	Backend string `json:"backend" yaml:"backend"`
	// FileDir overrides the directory used by the file backend.
	FileDir string `json:"file_dir,omitempty" yaml:"file_dir,omitempty"`
}

// Duration is a time.Duration that reads and writes as "10s" in both formats.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		// bare numbers are seconds
		var secs float64
		if nerr := json.Unmarshal(b, &secs); nerr != nil {
			return fmt.Errorf("timeout: %w", err)
		}
		d.Duration = time.Duration(secs * float64(time.Second))
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return d.String(), nil
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("timeout: line %d: %w", node.Line, err)
	}
	d.Duration = v
	return nil
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		APIURL:   DefaultAPIURL,
		Timeout:  Duration{DefaultTimeout},
		LogLevel: "info",
		Keyring:  KeyringConfig{Backend: "auto"},
	}
}

// path returns the path to the JSON config file.
func path() (string, error) {
	dir, err := xdg.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads configuration; missing file returns defaults.
// Environment overrides are applied on top.
func Load() (Config, error) {
	p, err := path()
	if err != nil {
		return Default(), err
	}
	c, err := LoadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		c, err = LoadFile(strings.TrimSuffix(p, ".json") + ".yaml")
	}
	if errors.Is(err, os.ErrNotExist) {
		c, err = Default(), nil
	}
	if err != nil {
		return c, err
	}
	c.ApplyEnv()
	return c, nil
}

// LoadFile reads one config file, choosing the decoder by extension.
// Fields absent from the file keep their defaults.
func LoadFile(p string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(p)
	if err != nil {
		return c, err
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	default:
		err = json.Unmarshal(data, &c)
	}
	if err != nil {
		return c, fmt.Errorf("parse %s: %w", filepath.Base(p), err)
	}
	return c, c.Validate()
}

// ApplyEnv overrides settings from ROOMIEFLOW_* environment variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv(envAPIURL)); v != "" {
		c.APIURL = v
	}
	if os.Getenv(envVerbose) == "1" {
		c.LogLevel = "debug"
	}
}

// Validate rejects settings the client cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIURL) == "" {
		return errors.New("api_url must not be empty")
	}
	if c.Timeout.Duration <= 0 {
		return errors.New("timeout must be positive")
	}
	switch c.Keyring.Backend {
	case "", "auto", "file", "memory":
	default:
		return fmt.Errorf("unknown keyring backend %q", c.Keyring.Backend)
	}
	return nil
}

// Save writes configuration with 0600 permissions.
func Save(c Config) error {
	p, err := path()
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(p, b, 0o600)
}
