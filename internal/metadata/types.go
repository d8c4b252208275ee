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

// Package metadata types define the structures used for recording
// information about sync runs. Each run produces one metadata record
// capturing what was synced and how it went, for auditing and
// troubleshooting.
package metadata

import (
	"time"
)

// SyncMetadata represents the complete metadata record for a single sync
// run.
type SyncMetadata struct {
	ToolVersion string      `json:"tool_version"`
	RunID       string      `json:"run_id"`
	Parameters  SyncParams  `json:"parameters"`
	Results     SyncResults `json:"results"`
}

// SyncParams captures the input parameters of a sync run.
type SyncParams struct {
	Catalog string   `json:"catalog"`
	Domains []string `json:"domains"`
	DryRun  bool     `json:"dry_run"`
}

// SyncResults contains statistics about a completed sync run.
type SyncResults struct {
	Planned     int       `json:"planned_operations"`
	Created     int       `json:"created"`
	Updated     int       `json:"updated"`
	Deleted     int       `json:"deleted"`
	Failed      int       `json:"failed"`
	Duration    string    `json:"duration"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}
