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

package output

import (
	"fmt"
	"io"

	"github.com/shortsynchq/shortsync/internal/reconcile"
)

// ActionRecord is one planned or executed sync operation in NDJSON output.
type ActionRecord struct {
	Action string   `json:"action"` // create, update, delete
	Domain string   `json:"domain"`
	Path   string   `json:"path"`
	URL    string   `json:"url,omitempty"`
	Title  string   `json:"title,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

// WritePlan writes one action record per planned operation, creations
// first, then updates, then deletions, matching execution order.
func WritePlan(w OutputWriter, plan reconcile.Plan) error {
	for _, d := range plan.Creates {
		record := ActionRecord{Action: "create", Domain: d.Domain, Path: d.Path, URL: d.URL, Title: d.Title, Tags: d.Tags}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	for _, pair := range plan.Updates {
		d := pair.Desired
		record := ActionRecord{Action: "update", Domain: d.Domain, Path: d.Path, URL: d.URL, Title: d.Title, Tags: d.Tags}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	for _, link := range plan.Deletes {
		record := ActionRecord{Action: "delete", Domain: link.Domain, Path: link.Path, URL: link.OriginalURL}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

// PrintPlan renders a human-readable plan summary.
func PrintPlan(w io.Writer, plan reconcile.Plan) {
	if plan.Empty() {
		fmt.Fprintln(w, "Everything is in sync, nothing to do")
		return
	}

	for _, d := range plan.Creates {
		fmt.Fprintf(w, "  + create %s/%s -> %s\n", d.Domain, d.Path, d.URL)
	}
	for _, pair := range plan.Updates {
		d := pair.Desired
		fmt.Fprintf(w, "  ~ update %s/%s -> %s\n", d.Domain, d.Path, d.URL)
	}
	for _, link := range plan.Deletes {
		fmt.Fprintf(w, "  - delete %s/%s (was %s)\n", link.Domain, link.Path, link.OriginalURL)
	}
	fmt.Fprintf(w, "Plan: %d to create, %d to update, %d to delete\n",
		len(plan.Creates), len(plan.Updates), len(plan.Deletes))
}

// PrintOutcome renders a human-readable outcome summary, including every
// per-item failure recorded during the run.
func PrintOutcome(w io.Writer, outcome reconcile.Outcome) {
	fmt.Fprintf(w, "Sync complete: %d created, %d updated, %d deleted\n",
		outcome.Created, outcome.Updated, outcome.Deleted)

	if outcome.Failed() {
		fmt.Fprintf(w, "%d operations failed:\n", len(outcome.Errors))
		for _, msg := range outcome.Errors {
			fmt.Fprintf(w, "  ! %s\n", msg)
		}
	}
}
