package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/openrobot/openrobot-go/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_CONFIG_HOME", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "openrobot", "config.toml")
	if resolved != want {
		t.Fatalf("resolved = %q, want %q", resolved, want)
	}
	if !cfg.HandleRateLimit {
		t.Fatal("expected rate limit handling enabled by default")
	}
	if cfg.Tries != 5 {
		t.Fatalf("Tries = %d, want 5", cfg.Tries)
	}
	if cfg.TimeoutDuration() != 30*time.Second {
		t.Fatalf("TimeoutDuration = %v, want 30s", cfg.TimeoutDuration())
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openrobot.toml")

	payload := map[string]any{
		"token":            "  secret-token  ",
		"handle_ratelimit": false,
		"tries":            -1,
		"timeout":          "5s",
		"base_url":         "https://mirror.example.com/api/",
	}
	data, err := toml.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists = %v", resolved, exists)
	}
	if cfg.Token != "secret-token" {
		t.Fatalf("Token = %q", cfg.Token)
	}
	if cfg.HandleRateLimit {
		t.Fatal("expected handle_ratelimit false")
	}
	if cfg.Tries != -1 {
		t.Fatalf("Tries = %d, want -1", cfg.Tries)
	}
	if cfg.TimeoutDuration() != 5*time.Second {
		t.Fatalf("TimeoutDuration = %v", cfg.TimeoutDuration())
	}
	if cfg.BaseURL != "https://mirror.example.com/api" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("token = \"abc\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.HandleRateLimit || cfg.Tries != 5 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("token = \n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, _, _, err := config.Load(path)
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero tries", func(c *config.Config) { c.Tries = 0 }},
		{"negative tries", func(c *config.Config) { c.Tries = -2 }},
		{"bad timeout", func(c *config.Config) { c.Timeout = "soon" }},
		{"negative timeout", func(c *config.Config) { c.Timeout = "-1s" }},
		{"bad base url", func(c *config.Config) { c.BaseURL = "ftp://x" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Tries != 5 || !cfg.HandleRateLimit {
		t.Fatalf("sample config values unexpected: %+v", cfg)
	}

	if err := config.CreateSample(path); err == nil {
		t.Fatal("expected error when sample already exists")
	}
}

func TestLoadHonoursXDGConfigHome(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	want := filepath.Join(xdg, "openrobot", "config.toml")
	if err := os.MkdirAll(filepath.Dir(want), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(want, []byte("token = \"xdg-token\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	defaultPath, err := config.DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath returned error: %v", err)
	}
	if defaultPath != want {
		t.Fatalf("DefaultConfigPath = %q, want %q", defaultPath, want)
	}

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != want {
		t.Fatalf("resolved = %q (exists=%v), want %q", resolved, exists, want)
	}
	if cfg.Token != "xdg-token" {
		t.Fatalf("Token = %q, want xdg-token", cfg.Token)
	}
}
