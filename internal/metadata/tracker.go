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

// Package metadata provides functionality for recording metadata about
// sync runs. Metadata is saved as JSON files alongside state files,
// allowing external tools to analyze sync history.
package metadata

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shortsynchq/shortsync/internal/reconcile"
	"github.com/shortsynchq/shortsync/pkg/version"
)

// Tracker collects statistics during a sync run and generates the metadata
// record. Create one at the start of a run and finalize it at the end.
type Tracker struct {
	startTime time.Time
	runID     string
	params    SyncParams
}

// NewTracker starts tracking a sync run.
func NewTracker(catalog string, domains []string, dryRun bool) *Tracker {
	return &Tracker{
		startTime: time.Now().UTC(),
		runID:     newRunID(),
		params: SyncParams{
			Catalog: catalog,
			Domains: domains,
			DryRun:  dryRun,
		},
	}
}

// Finalize builds the metadata record for a completed run.
func (t *Tracker) Finalize(plan reconcile.Plan, outcome reconcile.Outcome) *SyncMetadata {
	completed := time.Now().UTC()

	return &SyncMetadata{
		ToolVersion: version.Version,
		RunID:       t.runID,
		Parameters:  t.params,
		Results: SyncResults{
			Planned:     plan.Size(),
			Created:     outcome.Created,
			Updated:     outcome.Updated,
			Deleted:     outcome.Deleted,
			Failed:      len(outcome.Errors),
			Duration:    completed.Sub(t.startTime).Round(time.Millisecond).String(),
			StartedAt:   t.startTime,
			CompletedAt: completed,
		},
	}
}

// Save writes the metadata record as JSON to the given path, creating
// parent directories as needed.
func (m *SyncMetadata) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create metadata directory: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}
	return nil
}

// newRunID generates a short random identifier for correlation.
func newRunID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(buf)
}
