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

// Package main implements the shortsync command-line interface.
// The tool reconciles a declaratively maintained short-link catalog
// against the live state of a short.io account.
//
// The CLI supports:
//   - Computing and printing the reconciliation plan without mutating
//     anything (plan command, or sync --dry-run)
//   - Applying the plan with partial-failure tolerance (sync command)
//   - NDJSON action records on stdout for machine consumption
//   - API key authentication via flag, environment variable or .env file
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	shortsync sync <links.yaml> [flags]
//	shortsync plan <links.yaml> [flags]
//
// Example:
//
//	export SHORTIO_API_KEY=your_key
//	shortsync sync links.yaml
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Authentication error or unknown domain
//   - 3: Network error
//   - 4: Sync completed but some operations failed
package main
