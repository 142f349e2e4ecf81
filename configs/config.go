// Package configs provides configuration management for lgm.
//
// Configuration is stored as YAML in ~/.config/lgm/config.yaml and
// covers the admin service endpoint, authentication, and a few user
// preferences that persist between sessions.
package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the connection settings and user preferences.
type Config struct {
	// AdminURL is the base URL of the Pulsar admin web service,
	// e.g. http://localhost:8080.
	AdminURL string `yaml:"admin_url"`

	// DefaultTenant, when set, is pre-selected on startup.
	DefaultTenant string `yaml:"default_tenant,omitempty"`

	// LastTenant is the tenant selected when the previous session
	// ended. Used as a fallback when DefaultTenant is empty.
	LastTenant string `yaml:"last_tenant,omitempty"`

	// Auth selects how admin API calls are authenticated.
	// A zero value means unauthenticated requests.
	Auth AuthConfig `yaml:"auth,omitempty"`

	// RequestTimeout bounds each admin API call, in seconds.
	RequestTimeout int `yaml:"request_timeout_seconds,omitempty"`

	// LogFile is where diagnostics are written while the TUI owns
	// the terminal.
	LogFile string `yaml:"log_file,omitempty"`

	// Trace enables structured trace entries in the log file.
	Trace bool `yaml:"trace,omitempty"`
}

// AuthConfig holds the credential material. Token and OAuth2 are
// mutually exclusive; Token wins when both are set.
type AuthConfig struct {
	// Token is a static bearer token.
	Token string `yaml:"token,omitempty"`

	// OAuth2 configures the client-credentials flow.
	OAuth2 *OAuth2Config `yaml:"oauth2,omitempty"`
}

// OAuth2Config carries the client-credentials grant parameters.
type OAuth2Config struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	TokenURL     string `yaml:"token_url"`
	Audience     string `yaml:"audience,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults for a local
// standalone broker.
func DefaultConfig() *Config {
	return &Config{
		AdminURL:       "http://localhost:8080",
		RequestTimeout: 10,
	}
}

// DefaultPath returns the configuration file location following XDG
// conventions: ~/.config/lgm/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "lgm", "config.yaml"), nil
}

// Load reads the configuration from disk. A missing file yields the
// defaults without error so the application always starts; a present
// but malformed file is reported, since silently ignoring credentials
// would be confusing.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads the configuration from an explicit path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10
	}
	return cfg, nil
}

// SaveLastTenant re-reads the file at path and persists only the
// last-visited tenant into it. Session state from flags or in-memory
// edits never leaks into the file this way: whatever the user wrote
// there stays as written.
func SaveLastTenant(path, tenant string) error {
	if tenant == "" {
		return nil
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		return err
	}
	cfg.LastTenant = tenant
	return cfg.SaveTo(path)
}

// SaveTo persists the configuration to an explicit path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// StartTenant returns the tenant to pre-select on startup: the
// configured default first, then the tenant from the last session.
func (c *Config) StartTenant() string {
	if c.DefaultTenant != "" {
		return c.DefaultTenant
	}
	return c.LastTenant
}

// SetLastTenant records the tenant selected in this session.
func (c *Config) SetLastTenant(tenant string) {
	c.LastTenant = tenant
}
