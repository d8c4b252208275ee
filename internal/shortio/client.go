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

import "context"

// Client defines the interface for interacting with the short.io API.
// This interface allows for easy mocking in tests.
type Client interface {
	// ListDomains fetches all domains registered with the account and
	// replaces the client's hostname-to-id cache wholesale.
	ListDomains(ctx context.Context) ([]Domain, error)

	// ResolveDomainID returns the numeric id for a hostname. A cache miss
	// triggers exactly one ListDomains refresh before the lookup is retried;
	// a hostname still unknown after that fails with a not-found error.
	ResolveDomainID(ctx context.Context, hostname string) (int64, error)

	// FetchAllLinks pages through the full link catalog of a domain and
	// returns it as one sequence in service order, with the resolved domain
	// name and id injected into every record. Any page failure fails the
	// whole fetch; partial results are never returned.
	FetchAllLinks(ctx context.Context, domain string) ([]Link, error)

	// CreateLink creates a new short link and returns the resulting record.
	CreateLink(ctx context.Context, link NewLink) (*Link, error)

	// UpdateLink updates the mutable fields of an existing link. Empty
	// values in the update are transmitted literally, clearing the
	// corresponding remote field.
	UpdateLink(ctx context.Context, id string, update LinkUpdate) (*Link, error)

	// DeleteLink removes a link by id.
	DeleteLink(ctx context.Context, id string) error
}
