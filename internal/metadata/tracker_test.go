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

package metadata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortsynchq/shortsync/internal/reconcile"
	"github.com/shortsynchq/shortsync/internal/shortio"
)

func TestTracker_Finalize(t *testing.T) {
	tracker := NewTracker("links.yaml", []string{"x.io"}, false)

	plan := reconcile.Plan{
		Creates: []reconcile.DesiredLink{{Path: "a", URL: "https://a.example.com", Domain: "x.io"}},
		Deletes: []shortio.Link{{ID: "1", Path: "b", Domain: "x.io"}},
	}
	outcome := reconcile.Outcome{Created: 1, Errors: []string{"delete x.io/b: boom"}}

	meta := tracker.Finalize(plan, outcome)

	assert.NotEmpty(t, meta.RunID)
	assert.Equal(t, "links.yaml", meta.Parameters.Catalog)
	assert.Equal(t, []string{"x.io"}, meta.Parameters.Domains)
	assert.False(t, meta.Parameters.DryRun)

	assert.Equal(t, 2, meta.Results.Planned)
	assert.Equal(t, 1, meta.Results.Created)
	assert.Equal(t, 1, meta.Results.Failed)
	assert.False(t, meta.Results.CompletedAt.Before(meta.Results.StartedAt))
	assert.NotEmpty(t, meta.Results.Duration)
}

func TestTracker_RunIDsAreUnique(t *testing.T) {
	a := NewTracker("links.yaml", nil, false)
	b := NewTracker("links.yaml", nil, false)
	assert.NotEqual(t, a.Finalize(reconcile.Plan{}, reconcile.Outcome{}).RunID,
		b.Finalize(reconcile.Plan{}, reconcile.Outcome{}).RunID)
}

func TestSyncMetadata_Save(t *testing.T) {
	tracker := NewTracker("links.yaml", []string{"x.io"}, true)
	meta := tracker.Finalize(reconcile.Plan{}, reconcile.Outcome{})

	path := filepath.Join(t.TempDir(), "runs", "links.metadata.json")
	require.NoError(t, meta.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var loaded SyncMetadata
	require.NoError(t, json.Unmarshal(data, &loaded))
	assert.Equal(t, meta.RunID, loaded.RunID)
	assert.True(t, loaded.Parameters.DryRun)
}
