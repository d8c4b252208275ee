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

package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleState() *SyncState {
	return &SyncState{
		Catalog:      "links.yaml",
		Domains:      []string{"x.io", "y.io"},
		LastSyncTime: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Created:      2,
		Updated:      1,
		Deleted:      0,
		Failed:       0,
	}
}

func TestGetStateFilePath(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
		want    string
	}{
		{"yaml extension stripped", "links.yaml", "/state/links.state"},
		{"yml extension stripped", "links.yml", "/state/links.state"},
		{"nested path uses base name", "/etc/shortsync/prod.yaml", "/state/prod.state"},
		{"no extension", "links", "/state/links.state"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetStateFilePath("/state", tt.catalog))
		})
	}
}

func TestSaveAndLoadState(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "sub", "links.state")

	saved := sampleState()
	require.NoError(t, SaveState(saved, stateFile))

	loaded, err := LoadState(stateFile)
	require.NoError(t, err)

	assert.Equal(t, CurrentVersion, loaded.Version)
	assert.NotEmpty(t, loaded.Checksum)
	assert.Equal(t, saved.Catalog, loaded.Catalog)
	assert.Equal(t, saved.Domains, loaded.Domains)
	assert.True(t, saved.LastSyncTime.Equal(loaded.LastSyncTime))
	assert.Equal(t, 2, loaded.Created)
	assert.Equal(t, 1, loaded.Updated)
}

func TestSaveState_LeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	stateFile := filepath.Join(dir, "links.state")

	require.NoError(t, SaveState(sampleState(), stateFile))

	_, err := os.Stat(stateFile + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestLoadState_NotFound(t *testing.T) {
	_, err := LoadState(filepath.Join(t.TempDir(), "missing.state"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no previous sync state found")
}

func TestLoadState_InvalidJSON(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "links.state")
	require.NoError(t, os.WriteFile(stateFile, []byte("{not json"), 0o600))

	_, err := LoadState(stateFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupted")
}

func TestLoadState_ChecksumMismatch(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "links.state")
	require.NoError(t, SaveState(sampleState(), stateFile))

	// Tamper with a counter without updating the checksum
	data, err := os.ReadFile(stateFile)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["created"] = 99
	tampered, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(stateFile, tampered, 0o600))

	_, err = LoadState(stateFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum mismatch")
}

func TestLoadState_VersionMismatch(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "links.state")

	saved := sampleState()
	require.NoError(t, SaveState(saved, stateFile))

	data, err := os.ReadFile(stateFile)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	raw["version"] = CurrentVersion + 1
	tampered, err := json.Marshal(raw)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(stateFile, tampered, 0o600))

	_, err = LoadState(stateFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incompatible")
}

func TestDeleteState(t *testing.T) {
	stateFile := filepath.Join(t.TempDir(), "links.state")
	require.NoError(t, SaveState(sampleState(), stateFile))

	require.NoError(t, DeleteState(stateFile))
	_, err := os.Stat(stateFile)
	assert.True(t, os.IsNotExist(err))

	// Deleting a missing file is not an error
	assert.NoError(t, DeleteState(stateFile))
}
