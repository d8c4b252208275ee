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
	"time"
)

// CurrentVersion is the current state schema version.
// Increment this when making breaking changes to the SyncState structure.
const CurrentVersion = 1

// SyncState records the result of the last successful sync run for one
// links catalog. It is informational: the reconciliation itself always
// works from the live remote state, so a missing or stale state file never
// changes what a sync does, only what the CLI can report about drift.
type SyncState struct {
	// Version indicates the schema version of this state file.
	Version int `json:"version"`

	// Checksum is the SHA256 hash of the state content (excluding this field).
	// Used to detect corruption or tampering.
	Checksum string `json:"checksum"`

	// Catalog is the links catalog file this state belongs to.
	Catalog string `json:"catalog"`

	// Domains lists the domains the catalog covered at sync time.
	Domains []string `json:"domains"`

	// LastSyncTime records when the sync completed successfully.
	LastSyncTime time.Time `json:"last_sync_time"`

	// Counters from the last run.
	Created int `json:"created"`
	Updated int `json:"updated"`
	Deleted int `json:"deleted"`
	Failed  int `json:"failed"`
}
