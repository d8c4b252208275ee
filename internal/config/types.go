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

// Package config types define the configuration structures used throughout
// shortsync: tool settings loaded from YAML files and environment
// variables, and the declarative links catalog that states the desired
// remote state.
package config

// Config represents the complete tool configuration. It consolidates
// settings from the config file, environment variables, and built-in
// defaults.
type Config struct {
	Shortio  ShortioConfig  `yaml:"shortio"`
	Defaults DefaultsConfig `yaml:"defaults"`
}

// ShortioConfig contains service-specific settings: the API endpoint and
// the name of the environment variable holding the API key. Token storage
// itself stays outside the tool; only the variable name is configured.
type ShortioConfig struct {
	APIEndpoint string `yaml:"api_endpoint"`
	APIKeyEnv   string `yaml:"api_key_env"`
}

// DefaultsConfig contains default settings that apply to every sync run
// unless overridden by command-line flags.
type DefaultsConfig struct {
	StateDir string `yaml:"state_dir"`
}

// LinkSpec is one entry of the links catalog file: the destination URL and
// domain a short link should point at, plus optional title and tags. The
// entry's map key becomes the link's path.
type LinkSpec struct {
	URL    string   `yaml:"url"`
	Domain string   `yaml:"domain"`
	Title  string   `yaml:"title,omitempty"`
	Tags   []string `yaml:"tags,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases.
func DefaultConfig() *Config {
	return &Config{
		Shortio: ShortioConfig{
			APIEndpoint: "https://api.short.io",
			APIKeyEnv:   "SHORTIO_API_KEY",
		},
		Defaults: DefaultsConfig{
			StateDir: "~/.shortsync/state",
		},
	}
}
