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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "https://api.short.io", cfg.Shortio.APIEndpoint)
	assert.Equal(t, "SHORTIO_API_KEY", cfg.Shortio.APIKeyEnv)
	assert.NotEmpty(t, cfg.Defaults.StateDir)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
shortio:
  api_endpoint: https://shortio.internal.example.com
  api_key_env: MY_KEY
defaults:
  state_dir: /var/lib/shortsync
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://shortio.internal.example.com", cfg.Shortio.APIEndpoint)
	assert.Equal(t, "MY_KEY", cfg.Shortio.APIKeyEnv)
	assert.Equal(t, "/var/lib/shortsync", cfg.Defaults.StateDir)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SHORTIO_API_ENDPOINT", "https://override.example.com")
	t.Setenv("SHORTSYNC_STATE_DIR", "/tmp/shortsync-state")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "https://override.example.com", cfg.Shortio.APIEndpoint)
	assert.Equal(t, "/tmp/shortsync-state", cfg.Defaults.StateDir)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  state_dir: /custom\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.short.io", cfg.Shortio.APIEndpoint)
	assert.Equal(t, "/custom", cfg.Defaults.StateDir)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty endpoint", func(c *Config) { c.Shortio.APIEndpoint = "" }, true},
		{"empty key env", func(c *Config) { c.Shortio.APIKeyEnv = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResolveAPIKey(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shortio.APIKeyEnv = "SHORTSYNC_TEST_KEY"

	// Flag takes precedence over the environment
	t.Setenv("SHORTSYNC_TEST_KEY", "from-env")
	assert.Equal(t, "from-flag", ResolveAPIKey("from-flag", cfg))
	assert.Equal(t, "from-env", ResolveAPIKey("", cfg))

	// Nothing anywhere yields empty
	t.Setenv("SHORTSYNC_TEST_KEY", "")
	assert.Empty(t, ResolveAPIKey("", cfg))
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/home/tester/.shortsync/state", expandPath("~/.shortsync/state"))
	assert.Equal(t, "/absolute/path", expandPath("/absolute/path"))
}
