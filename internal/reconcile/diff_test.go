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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortsynchq/shortsync/internal/shortio"
)

func TestComputeDiff_CreateOnly(t *testing.T) {
	desired := []DesiredLink{{Path: "a", URL: "https://a.com", Domain: "x.io"}}

	plan := ComputeDiff(desired, nil)

	require.Len(t, plan.Creates, 1)
	assert.Equal(t, "a", plan.Creates[0].Path)
	assert.Empty(t, plan.Updates)
	assert.Empty(t, plan.Deletes)
}

func TestComputeDiff_DeleteOnly(t *testing.T) {
	actual := []shortio.Link{{ID: "lnk_1", Domain: "x.io", Path: "a", OriginalURL: "https://old.com"}}

	plan := ComputeDiff(nil, actual)

	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, "lnk_1", plan.Deletes[0].ID)
	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.Updates)
}

func TestComputeDiff_InSync(t *testing.T) {
	tests := []struct {
		name    string
		desired DesiredLink
		actual  shortio.Link
	}{
		{
			name:    "identical fields",
			desired: DesiredLink{Path: "a", URL: "https://a.com", Domain: "x.io", Title: "A", Tags: []string{"t1"}},
			actual:  shortio.Link{Path: "a", OriginalURL: "https://a.com", Domain: "x.io", Title: "A", Tags: []string{"t1"}},
		},
		{
			name:    "absent title equals empty title",
			desired: DesiredLink{Path: "a", URL: "https://a.com", Domain: "x.io"},
			actual:  shortio.Link{Path: "a", OriginalURL: "https://a.com", Domain: "x.io", Title: ""},
		},
		{
			name:    "absent tags equal empty tags",
			desired: DesiredLink{Path: "a", URL: "https://a.com", Domain: "x.io", Tags: nil},
			actual:  shortio.Link{Path: "a", OriginalURL: "https://a.com", Domain: "x.io", Tags: []string{}},
		},
		{
			name:    "reordered tags are not a change",
			desired: DesiredLink{Path: "a", URL: "https://a.com", Domain: "x.io", Tags: []string{"a", "b"}},
			actual:  shortio.Link{Path: "a", OriginalURL: "https://a.com", Domain: "x.io", Tags: []string{"b", "a"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := ComputeDiff([]DesiredLink{tt.desired}, []shortio.Link{tt.actual})
			assert.True(t, plan.Empty(), "expected empty plan, got %+v", plan)
		})
	}
}

func TestComputeDiff_Update(t *testing.T) {
	tests := []struct {
		name    string
		desired DesiredLink
		actual  shortio.Link
	}{
		{
			name:    "url changed",
			desired: DesiredLink{Path: "a", URL: "https://new.com", Domain: "x.io"},
			actual:  shortio.Link{ID: "lnk_1", Path: "a", OriginalURL: "https://old.com", Domain: "x.io"},
		},
		{
			name:    "title cleared",
			desired: DesiredLink{Path: "a", URL: "https://a.com", Domain: "x.io"},
			actual:  shortio.Link{ID: "lnk_1", Path: "a", OriginalURL: "https://a.com", Domain: "x.io", Title: "Old title"},
		},
		{
			name:    "tag set changed",
			desired: DesiredLink{Path: "a", URL: "https://a.com", Domain: "x.io", Tags: []string{"a", "b"}},
			actual:  shortio.Link{ID: "lnk_1", Path: "a", OriginalURL: "https://a.com", Domain: "x.io", Tags: []string{"a", "c"}},
		},
		{
			name:    "duplicate tag counts differ",
			desired: DesiredLink{Path: "a", URL: "https://a.com", Domain: "x.io", Tags: []string{"a", "a"}},
			actual:  shortio.Link{ID: "lnk_1", Path: "a", OriginalURL: "https://a.com", Domain: "x.io", Tags: []string{"a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := ComputeDiff([]DesiredLink{tt.desired}, []shortio.Link{tt.actual})

			require.Len(t, plan.Updates, 1)
			assert.Equal(t, tt.desired, plan.Updates[0].Desired)
			assert.Equal(t, tt.actual, plan.Updates[0].Remote)
			assert.Empty(t, plan.Creates)
			assert.Empty(t, plan.Deletes)
		})
	}
}

func TestComputeDiff_SameDomainDifferentPath(t *testing.T) {
	// Identity is (domain, path): the same path under another domain is a
	// different link.
	desired := []DesiredLink{{Path: "a", URL: "https://a.com", Domain: "x.io"}}
	actual := []shortio.Link{{ID: "lnk_1", Path: "a", OriginalURL: "https://a.com", Domain: "y.io"}}

	plan := ComputeDiff(desired, actual)

	require.Len(t, plan.Creates, 1)
	require.Len(t, plan.Deletes, 1)
	assert.Empty(t, plan.Updates)
}

func TestComputeDiff_PartitionProperty(t *testing.T) {
	desired := []DesiredLink{
		{Path: "keep", URL: "https://keep.com", Domain: "x.io"},
		{Path: "change", URL: "https://new.com", Domain: "x.io"},
		{Path: "add", URL: "https://add.com", Domain: "x.io"},
		{Path: "other", URL: "https://other.com", Domain: "y.io"},
	}
	actual := []shortio.Link{
		{ID: "lnk_1", Path: "keep", OriginalURL: "https://keep.com", Domain: "x.io"},
		{ID: "lnk_2", Path: "change", OriginalURL: "https://old.com", Domain: "x.io"},
		{ID: "lnk_3", Path: "gone", OriginalURL: "https://gone.com", Domain: "x.io"},
	}

	plan := ComputeDiff(desired, actual)

	// Every desired link appears in exactly one of creates/updates, or in
	// neither when already in sync; never in both.
	seen := make(map[Identity]int)
	for _, d := range plan.Creates {
		seen[d.Identity()]++
	}
	for _, pair := range plan.Updates {
		seen[pair.Desired.Identity()]++
	}
	for id, count := range seen {
		assert.Equal(t, 1, count, "link %s appears in %d buckets", id, count)
	}

	// Every remote link without a desired counterpart appears exactly once
	// in deletes.
	require.Len(t, plan.Deletes, 1)
	assert.Equal(t, "gone", plan.Deletes[0].Path)

	assert.Len(t, plan.Creates, 2) // add, other
	assert.Len(t, plan.Updates, 1) // change
}

func TestComputeDiff_Deterministic(t *testing.T) {
	desired := []DesiredLink{
		{Path: "b", URL: "https://b.com", Domain: "x.io"},
		{Path: "a", URL: "https://a.com", Domain: "x.io"},
	}
	actual := []shortio.Link{
		{ID: "lnk_1", Path: "z", OriginalURL: "https://z.com", Domain: "x.io"},
		{ID: "lnk_2", Path: "y", OriginalURL: "https://y.com", Domain: "x.io"},
	}

	first := ComputeDiff(desired, actual)
	second := ComputeDiff(desired, actual)
	assert.Equal(t, first, second)

	// Input order is preserved bucket by bucket
	assert.Equal(t, "b", first.Creates[0].Path)
	assert.Equal(t, "z", first.Deletes[0].Path)
}
