//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/logs/artpick.log",
			expected: filepath.Join(home, "logs", "artpick.log"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/var/log/artpick.log",
			expected: "/var/log/artpick.log",
		},
		{
			name:     "relative path unchanged",
			input:    "logs/artpick.log",
			expected: "logs/artpick.log",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
		{
			name:     "tilde only",
			input:    "~",
			expected: home,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}

	// Last path should be local config.toml
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
	if filepath.Base(paths[0]) != "config.toml" || filepath.Base(filepath.Dir(paths[0])) != appName {
		t.Errorf("first config path = %q, want .../%s/config.toml", paths[0], appName)
	}
}

func TestLoadFrom_MissingFilesGiveDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.API.BaseURL != "" {
		t.Errorf("BaseURL = %q, want empty", cfg.API.BaseURL)
	}
	if got := cfg.API.Timeout(); got != 30*time.Second {
		t.Errorf("Timeout() = %v, want 30s", got)
	}
	if got := cfg.Search.Debounce(); got != 400*time.Millisecond {
		t.Errorf("Debounce() = %v, want 400ms", got)
	}
	if got := cfg.Search.MinLength(); got != 3 {
		t.Errorf("MinLength() = %d, want 3", got)
	}
	if got := cfg.Log.LevelName(); got != "info" {
		t.Errorf("LevelName() = %q, want info", got)
	}
}

func TestLoadFrom_ReadsValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.toml", `
[api]
base_url = "http://localhost:8080/"
user_agent = "test-agent"
timeout_seconds = 5
requests_per_second = 2.5

[search]
debounce_ms = 250
min_query_length = 4

[log]
level = "DEBUG"
file = "/tmp/artpick-test.log"
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Errorf("BaseURL = %q, want trailing slash trimmed", cfg.API.BaseURL)
	}
	if cfg.API.UserAgent != "test-agent" {
		t.Errorf("UserAgent = %q, want test-agent", cfg.API.UserAgent)
	}
	if got := cfg.API.Timeout(); got != 5*time.Second {
		t.Errorf("Timeout() = %v, want 5s", got)
	}
	if cfg.API.RequestsPerSecond != 2.5 {
		t.Errorf("RequestsPerSecond = %v, want 2.5", cfg.API.RequestsPerSecond)
	}
	if got := cfg.Search.Debounce(); got != 250*time.Millisecond {
		t.Errorf("Debounce() = %v, want 250ms", got)
	}
	if got := cfg.Search.MinLength(); got != 4 {
		t.Errorf("MinLength() = %d, want 4", got)
	}
	if got := cfg.Log.LevelName(); got != "debug" {
		t.Errorf("LevelName() = %q, want debug", got)
	}
	if got, err := cfg.Log.FilePath(); err != nil || got != "/tmp/artpick-test.log" {
		t.Errorf("FilePath() = %q, %v, want /tmp/artpick-test.log", got, err)
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	global := writeConfig(t, dir, "global.toml", `
[search]
debounce_ms = 800
min_query_length = 5
`)
	local := writeConfig(t, dir, "local.toml", `
[search]
debounce_ms = 100
`)

	cfg, err := LoadFrom(global, local)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.Search.DebounceMs != 100 {
		t.Errorf("DebounceMs = %d, want 100 (local overrides)", cfg.Search.DebounceMs)
	}
	if cfg.Search.MinQueryLength != 5 {
		t.Errorf("MinQueryLength = %d, want 5 (kept from global)", cfg.Search.MinQueryLength)
	}
}

func TestLoadFrom_InvalidTOML(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bad.toml", "[api\nbase_url = ")

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() with invalid TOML should fail")
	}
}
