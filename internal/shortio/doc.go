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

// Package shortio provides a client for the short.io REST API. It hides
// pagination, domain-name-to-id resolution with caching, and the service's
// heterogeneous error shapes behind a uniform Client interface.
//
// The package includes:
//   - A Client interface covering domain listing, full catalog fetches,
//     and link create/update/delete
//   - A REST implementation over net/http with an authenticating transport
//   - Mock client for testing
//   - Type definitions for domain and link records
//
// Basic usage:
//
//	client := shortio.NewRESTClient("your-api-key", "https://api.short.io")
//	links, err := client.FetchAllLinks(ctx, "go.example.com")
//	if err != nil {
//	    // Handle error
//	}
//	for _, link := range links {
//	    // Process link
//	}
package shortio
