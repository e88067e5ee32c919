package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "artpick"

type Config struct {
	// Search API settings
	API APIConfig `koanf:"api"`

	// Debounce and validation of typed queries
	Search SearchConfig `koanf:"search"`

	Log LogConfig `koanf:"log"`
}

// APIConfig holds the artist search endpoint configuration.
type APIConfig struct {
	BaseURL           string  `koanf:"base_url"`            // e.g., "https://api.artic.edu"
	UserAgent         string  `koanf:"user_agent"`          // sent with every request
	TimeoutSeconds    int     `koanf:"timeout_seconds"`     // per request (default: 30)
	RequestsPerSecond float64 `koanf:"requests_per_second"` // pacing, 0 disables (default: 0)
}

// SearchConfig holds query handling settings.
type SearchConfig struct {
	DebounceMs     int `koanf:"debounce_ms"`      // delay after last keystroke (default: 400)
	MinQueryLength int `koanf:"min_query_length"` // shorter queries are not sent (default: 3)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info", "warn", "error" (default: "info")
	File  string `koanf:"file"`  // log file path (default: $XDG_STATE_HOME/artpick/artpick.log)
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given config files, skipping those that do not exist.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	// Normalize base URL (remove trailing slash)
	cfg.API.BaseURL = strings.TrimSuffix(strings.TrimSpace(cfg.API.BaseURL), "/")

	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/artpick/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// Timeout returns the per-request timeout.
func (c APIConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Debounce returns the delay between the last keystroke and the request.
func (c SearchConfig) Debounce() time.Duration {
	if c.DebounceMs <= 0 {
		return 400 * time.Millisecond
	}
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// MinLength returns the minimum number of characters a query needs.
func (c SearchConfig) MinLength() int {
	if c.MinQueryLength <= 0 {
		return 3
	}
	return c.MinQueryLength
}

// LevelName returns the configured log level, defaulting to "info".
func (c LogConfig) LevelName() string {
	if c.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Level)
}

// FilePath returns the log file path, defaulting to the XDG state directory.
func (c LogConfig) FilePath() (string, error) {
	if c.File != "" {
		return c.File, nil
	}
	return xdg.StateFile(filepath.Join(appName, appName+".log"))
}
