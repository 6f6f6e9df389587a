// ABOUTME: App configuration with storage backend selection.
// ABOUTME: JSON config at the XDG config path; factory opens the chosen store backend.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stslabs/motiv8r/internal/store"
)

// Config stores motiv8r configuration.
type Config struct {
	// Backend selects the storage backend: "kv" (default, Charm KV with
	// cloud sync) or "sqlite".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for sqlite data. Supports ~ expansion.
	// Defaults to the XDG data directory.
	DataDir string `json:"data_dir,omitempty"`

	// ListenAddr is where `motiv8r serve` binds. Defaults to :8487.
	ListenAddr string `json:"listen_addr,omitempty"`
}

// GetBackend returns the configured backend, defaulting to "kv".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "kv"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetListenAddr returns the configured serve address.
func (c *Config) GetListenAddr() string {
	if c.ListenAddr == "" {
		return ":8487"
	}
	return c.ListenAddr
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "motiv8r")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates a Store over the configured backend.
func (c *Config) OpenStore() (*store.Store, error) {
	switch c.GetBackend() {
	case "kv":
		b, err := store.OpenKV()
		if err != nil {
			return nil, err
		}
		return store.New(b), nil
	case "sqlite":
		b, err := store.OpenSQLite(filepath.Join(c.GetDataDir(), "motiv8r.db"))
		if err != nil {
			return nil, err
		}
		return store.New(b), nil
	default:
		return nil, fmt.Errorf("unknown backend: %q", c.GetBackend())
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "motiv8r", "config.json")
}

// Load reads config from disk. A missing file is an empty config.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
