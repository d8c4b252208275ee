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

package reconcile

import "github.com/shortsynchq/shortsync/internal/shortio"

// DesiredLink is one entry of the declarative link catalog. The
// configuration entry's unique key becomes the link's path within its
// domain.
type DesiredLink struct {
	Path   string
	URL    string
	Domain string
	Title  string
	Tags   []string
}

// Identity is the (domain, path) pair used to match desired and remote
// links. Two entries describe the same link iff their identities are equal.
type Identity struct {
	Domain string
	Path   string
}

// String renders the identity as "domain/path".
func (id Identity) String() string {
	return id.Domain + "/" + id.Path
}

// Identity returns the link's (domain, path) identity.
func (d DesiredLink) Identity() Identity {
	return Identity{Domain: d.Domain, Path: d.Path}
}

// UpdatePair couples a desired link with the remote record it should
// replace.
type UpdatePair struct {
	Desired DesiredLink
	Remote  shortio.Link
}

// Plan is the create/update/delete triple computed by ComputeDiff for one
// sync invocation. The buckets are disjoint by construction.
type Plan struct {
	Creates []DesiredLink
	Updates []UpdatePair
	Deletes []shortio.Link
}

// Empty reports whether the plan contains no work.
func (p Plan) Empty() bool {
	return len(p.Creates) == 0 && len(p.Updates) == 0 && len(p.Deletes) == 0
}

// Size returns the total number of planned operations.
func (p Plan) Size() int {
	return len(p.Creates) + len(p.Updates) + len(p.Deletes)
}

// Outcome summarizes one apply run. Counters reflect exactly the
// operations that succeeded; Errors enumerates every operation that did
// not, in execution order.
type Outcome struct {
	Created int
	Updated int
	Deleted int
	Errors  []string
}

// Failed reports whether any individual operation failed.
func (o Outcome) Failed() bool {
	return len(o.Errors) > 0
}
