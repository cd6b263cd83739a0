// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for nearby configuration.
	DefaultConfigDir = ".nearby"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultGitHubURL is the base URL of the profile search API.
	DefaultGitHubURL = "https://api.github.com"
	// DefaultGenderizeURL is the base URL of the classification API.
	DefaultGenderizeURL = "https://api.genderize.io"
)

// Config holds static configuration (read-only after load).
type Config struct {
	GitHub    GitHubConfig    `yaml:"github,omitempty"`
	Genderize GenderizeConfig `yaml:"genderize,omitempty"`
	HTTP      HTTPConfig      `yaml:"http,omitempty"`
	Log       LogConfig       `yaml:"log,omitempty"`
}

// GitHubConfig holds configuration for the profile search endpoint.
type GitHubConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// GenderizeConfig holds configuration for the classification endpoint.
type GenderizeConfig struct {
	BaseURL string `yaml:"base_url,omitempty"`
}

// HTTPConfig holds settings shared by both HTTP clients.
type HTTPConfig struct {
	// Timeout is a Go duration string. Empty means no timeout.
	Timeout   string `yaml:"timeout,omitempty"`
	UserAgent string `yaml:"user_agent,omitempty"`
}

// LogConfig holds configuration for the diagnostic log.
type LogConfig struct {
	// File is the diagnostic log path, relative to the working directory
	// unless absolute. Empty disables logging.
	File string `yaml:"file,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			BaseURL: DefaultGitHubURL,
		},
		Genderize: GenderizeConfig{
			BaseURL: DefaultGenderizeURL,
		},
		HTTP: HTTPConfig{
			UserAgent: "nearby",
		},
		Log: LogConfig{
			File: filepath.Join(DefaultConfigDir, "logs", "nearby.log"),
		},
	}
}

// Load loads configuration from the .nearby directory in the given path.
// A missing config file is not an error: defaults and environment overrides apply.
func Load(basePath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(ConfigFilePath(basePath))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvOverrides()

	if _, err := cfg.HTTP.TimeoutDuration(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("NEARBY_GITHUB_URL"); v != "" {
		c.GitHub.BaseURL = v
	}
	if v := os.Getenv("NEARBY_GENDERIZE_URL"); v != "" {
		c.Genderize.BaseURL = v
	}
	if v, ok := os.LookupEnv("NEARBY_LOG_FILE"); ok {
		c.Log.File = v
	}
}

// TimeoutDuration parses Timeout. An empty value yields zero (no timeout).
func (h HTTPConfig) TimeoutDuration() (time.Duration, error) {
	if h.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(h.Timeout)
	if err != nil {
		return 0, fmt.Errorf("parsing http.timeout %q: %w", h.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("http.timeout must not be negative, got %s", h.Timeout)
	}
	return d, nil
}

// LogPath resolves the log file against basePath. Empty means disabled.
func (c *Config) LogPath(basePath string) string {
	if c.Log.File == "" || filepath.IsAbs(c.Log.File) {
		return c.Log.File
	}
	return filepath.Join(basePath, c.Log.File)
}

// ConfigDir returns the path to the .nearby config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a nearby config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
