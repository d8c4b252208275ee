// Copyright 2025 Shortsync, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for shortsync with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files with automatic discovery
// in standard locations, and resolves the API key from the environment
// with a .env fallback for local development.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .shortsync.yaml (current directory)
//   - .shortsync.yml (current directory)
//   - ~/.shortsync/config.yaml
//   - ~/.shortsync/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides. Path expansion (~ and environment variables) is
// performed on directory paths.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".shortsync.yaml",
			".shortsync.yml",
			filepath.Join(os.Getenv("HOME"), ".shortsync", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".shortsync", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	cfg.Defaults.StateDir = expandPath(cfg.Defaults.StateDir)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("SHORTIO_API_ENDPOINT"); endpoint != "" {
		cfg.Shortio.APIEndpoint = endpoint
	}
	if stateDir := os.Getenv("SHORTSYNC_STATE_DIR"); stateDir != "" {
		cfg.Defaults.StateDir = stateDir
	}
}

// ResolveAPIKey returns the API key for the service, checking sources in
// precedence order: the explicit flag value, the configured environment
// variable, and finally a .env file in the working directory. An empty
// result means no key was found anywhere.
func ResolveAPIKey(flagKey string, cfg *Config) string {
	if flagKey != "" {
		return flagKey
	}
	if key := os.Getenv(cfg.Shortio.APIKeyEnv); key != "" {
		return key
	}

	// Best effort: a missing .env file is not an error
	if err := godotenv.Load(); err == nil {
		return os.Getenv(cfg.Shortio.APIKeyEnv)
	}
	return ""
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// Validate checks if the configuration contains valid values. This should
// be called after loading configuration to catch invalid settings early.
func (c *Config) Validate() error {
	if c.Shortio.APIEndpoint == "" {
		return fmt.Errorf("short.io API endpoint cannot be empty")
	}
	if c.Shortio.APIKeyEnv == "" {
		return fmt.Errorf("API key environment variable name cannot be empty")
	}
	return nil
}
