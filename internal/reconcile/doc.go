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

// Package reconcile contains the diff and apply halves of a sync run.
//
// ComputeDiff is a pure function: given the desired link set from
// configuration and the actual link set fetched from the service, it
// produces a plan of creations, updates and deletions. Links are matched
// by their (domain, path) identity. The three plan buckets partition the
// work: a desired link lands in at most one bucket, and every remote link
// with no desired counterpart lands in the delete bucket exactly once.
//
// Executor consumes the plan and drives the client's mutating calls,
// tolerating per-item failures: one rejected operation is recorded in the
// outcome and the rest of the batch proceeds. Re-running the whole sync is
// the only retry mechanism, and a fully successful apply makes the next
// diff empty.
package reconcile
