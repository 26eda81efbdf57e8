package config

import (
	"errors"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".internhunt"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk configuration format.
// All fields are optional; unset fields keep their defaults.
type File struct {
	// BaseURL overrides the backend REST API base path.
	BaseURL string `yaml:"base_url"`

	// Timeout overrides the per-request timeout, e.g. "45s".
	Timeout time.Duration `yaml:"timeout"`

	// UserAgent overrides the User-Agent header.
	UserAgent string `yaml:"user_agent"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error appropriately based on whether the config file path was
// explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	return &cf, nil
}

// Apply merges file settings into the config. Only set fields override.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.BaseURL != "" {
		cfg.BaseURL = f.BaseURL
	}
	if f.Timeout > 0 {
		cfg.Timeout = f.Timeout
	}
	if f.UserAgent != "" {
		cfg.UserAgent = f.UserAgent
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .internhunt in the current directory
//  3. Look for .internhunt in the XDG config directory
//  4. Look for .internhunt in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var dirs []string
	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, cwd)
	}
	dirs = append(dirs, XDGConfigDir())
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return findConfigIn(dirs...)
}

// findConfigIn returns the first existing DefaultConfigFile in dirs.
func findConfigIn(dirs ...string) string {
	for _, dir := range dirs {
		path := filepath.Join(dir, DefaultConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
