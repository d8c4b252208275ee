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

// ComputeDiff compares the desired link set against the live remote set and
// produces the minimal reconciliation plan. It is pure and deterministic:
// no I/O, no mutation of its inputs, same plan for same inputs.
//
// A desired link with no remote counterpart is planned for creation; one
// whose counterpart differs in URL, title or tags is planned for update;
// a remote link with no desired counterpart is planned for deletion.
// Remote links that already match their desired entry appear in no bucket.
func ComputeDiff(desired []DesiredLink, actual []shortio.Link) Plan {
	remote := make(map[Identity]shortio.Link, len(actual))
	for _, link := range actual {
		remote[Identity{Domain: link.Domain, Path: link.Path}] = link
	}

	wanted := make(map[Identity]struct{}, len(desired))

	var plan Plan
	for _, d := range desired {
		id := d.Identity()
		wanted[id] = struct{}{}

		current, ok := remote[id]
		if !ok {
			plan.Creates = append(plan.Creates, d)
			continue
		}
		if !inSync(d, current) {
			plan.Updates = append(plan.Updates, UpdatePair{Desired: d, Remote: current})
		}
	}

	// Deletions preserve service-return order for deterministic output.
	for _, link := range actual {
		if _, ok := wanted[Identity{Domain: link.Domain, Path: link.Path}]; !ok {
			plan.Deletes = append(plan.Deletes, link)
		}
	}

	return plan
}

// inSync reports whether a remote record already matches its desired entry.
// An absent title and an empty-string title are equivalent, as are absent
// tags and an empty tag sequence.
func inSync(d DesiredLink, r shortio.Link) bool {
	if d.URL != r.OriginalURL {
		return false
	}
	if d.Title != r.Title {
		return false
	}
	return equalTagSets(d.Tags, r.Tags)
}

// equalTagSets compares tags with multiset semantics. The service renders
// tags as an unordered badge collection, so a pure reordering is not a
// material change and must not trigger an update.
func equalTagSets(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	counts := make(map[string]int, len(a))
	for _, tag := range a {
		counts[tag]++
	}
	for _, tag := range b {
		counts[tag]--
		if counts[tag] < 0 {
			return false
		}
	}
	return true
}
