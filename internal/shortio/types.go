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

package shortio

// Domain represents a hostname registered with the short.io account,
// together with the service-assigned numeric id that all link listing
// calls are keyed by.
type Domain struct {
	ID       int64  `json:"id"`
	Hostname string `json:"hostname"`
}

// Link is one short link as the service reports it. The service identifies
// links by an opaque id string; within a domain the path plays the role of
// the link's stable name.
//
// Domain and DomainID are not part of the listing payload. FetchAllLinks
// injects the resolved values into every record so downstream consumers
// always see a complete identity.
type Link struct {
	ID          string   `json:"idString"`
	OriginalURL string   `json:"originalURL"`
	Path        string   `json:"path"`
	Title       string   `json:"title,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Domain      string   `json:"-"`
	DomainID    int64    `json:"domainId,omitempty"`
}

// NewLink describes a link to be created.
type NewLink struct {
	OriginalURL string
	Domain      string
	Path        string
	Title       string
	Tags        []string
}

// LinkUpdate carries the mutable fields of a link. Domain and path cannot
// be changed through an update. Every field is transmitted literally on
// each call, including empty values: an empty Title clears the remote title
// and an empty Tags removes all tags. Omitting a field is not possible by
// design, so callers must always supply the full desired values.
type LinkUpdate struct {
	OriginalURL string   `json:"originalURL"`
	Title       string   `json:"title"`
	Tags        []string `json:"tags"`
}

// linkPage is one page of a paginated catalog listing. An empty
// NextPageToken means the listing is exhausted.
type linkPage struct {
	Links         []Link `json:"links"`
	NextPageToken string `json:"nextPageToken"`
}

// createLinkRequest is the wire shape of a link creation call.
type createLinkRequest struct {
	OriginalURL string   `json:"originalURL"`
	Domain      string   `json:"domain"`
	Path        string   `json:"path"`
	Title       string   `json:"title,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Default values for catalog fetches
const (
	// defaultPageSize is the fixed page size used when walking the link
	// catalog. short.io caps listing calls at 150 records per page.
	defaultPageSize = 150
)
