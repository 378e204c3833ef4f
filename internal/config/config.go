package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

const (
	defaultConfigPath = "~/.config/openrobot/config.toml"
	configRelPath     = "openrobot/config.toml"
)

// Config holds every setting the client and CLI accept from file.
type Config struct {
	Token           string `toml:"token"`
	IgnoreWarning   bool   `toml:"ignore_warning"`
	HandleRateLimit bool   `toml:"handle_ratelimit"`
	Tries           int    `toml:"tries"`
	Timeout         string `toml:"timeout"`
	BaseURL         string `toml:"base_url"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		HandleRateLimit: true,
		Tries:           5,
		Timeout:         "30s",
	}
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
// $XDG_CONFIG_HOME/openrobot/config.toml is used when XDG_CONFIG_HOME is set.
func DefaultConfigPath() (string, error) {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return expandPath(filepath.Join(xdg, configRelPath))
	}
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error; defaults are returned with exists set to false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// TimeoutDuration returns the parsed timeout, or zero when unset.
func (c *Config) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// CreateSample writes the annotated sample configuration to path.
func CreateSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config already exists at %s", expanded)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(expanded, []byte(sampleConfig), 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Token = strings.TrimSpace(c.Token)
	c.Timeout = strings.TrimSpace(c.Timeout)
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
}

func resolveConfigPath(path string) (string, bool, error) {
	var expanded string
	var err error
	if path == "" {
		expanded, err = DefaultConfigPath()
	} else {
		expanded, err = expandPath(path)
	}
	if err != nil {
		return "", false, err
	}

	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

func expandPath(pathValue string) (string, error) {
	pathValue = strings.TrimSpace(pathValue)
	if pathValue == "" {
		return "", nil
	}
	if pathValue == "~" || strings.HasPrefix(pathValue, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		pathValue = filepath.Join(home, strings.TrimPrefix(pathValue, "~"))
	}
	return filepath.Abs(pathValue)
}
