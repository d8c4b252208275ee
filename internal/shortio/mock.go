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

import (
	"context"
	"fmt"

	syncerrors "github.com/shortsynchq/shortsync/internal/errors"
)

// MockClient is an in-memory implementation of the Client interface for
// testing. It behaves as a tiny link service: creates, updates and deletes
// mutate its state, so a fetch after a successful apply reflects the result.
// Individual operations can be made to fail through the error fields.
type MockClient struct {
	// Domains registered with the fake account.
	Domains []Domain

	// Links by domain hostname.
	Links map[string][]Link

	// Blanket errors per operation. When set, every call of that kind fails.
	ListDomainsErr error
	FetchErr       error
	CreateErr      error
	UpdateErr      error
	DeleteErr      error

	// FailPaths makes CreateLink fail for specific "domain/path" identities.
	FailPaths map[string]error

	// FailIDs makes UpdateLink and DeleteLink fail for specific link ids.
	FailIDs map[string]error

	// Call tracking for verification.
	ListDomainsCalls int
	FetchCalls       int
	CreateCalls      int
	UpdateCalls      int
	DeleteCalls      int

	nextID int
}

// NewMockClient creates a mock client with a single registered domain and
// no links.
func NewMockClient(hostname string) *MockClient {
	return &MockClient{
		Domains: []Domain{{ID: 1, Hostname: hostname}},
		Links:   map[string][]Link{hostname: {}},
	}
}

// ListDomains implements the Client interface.
func (m *MockClient) ListDomains(ctx context.Context) ([]Domain, error) {
	m.ListDomainsCalls++
	if m.ListDomainsErr != nil {
		return nil, m.ListDomainsErr
	}
	return m.Domains, nil
}

// ResolveDomainID implements the Client interface.
func (m *MockClient) ResolveDomainID(ctx context.Context, hostname string) (int64, error) {
	for _, d := range m.Domains {
		if d.Hostname == hostname {
			return d.ID, nil
		}
	}
	return 0, syncerrors.NewAPIError(
		fmt.Sprintf("domain %q not found in short.io account", hostname), 0,
	).Wrap(syncerrors.ErrDomainNotFound)
}

// FetchAllLinks implements the Client interface.
func (m *MockClient) FetchAllLinks(ctx context.Context, domain string) ([]Link, error) {
	m.FetchCalls++
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	id, err := m.ResolveDomainID(ctx, domain)
	if err != nil {
		return nil, err
	}

	links := make([]Link, len(m.Links[domain]))
	copy(links, m.Links[domain])
	for i := range links {
		links[i].Domain = domain
		links[i].DomainID = id
	}
	return links, nil
}

// CreateLink implements the Client interface.
func (m *MockClient) CreateLink(ctx context.Context, link NewLink) (*Link, error) {
	m.CreateCalls++
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	if err := m.FailPaths[link.Domain+"/"+link.Path]; err != nil {
		return nil, err
	}
	id, err := m.ResolveDomainID(ctx, link.Domain)
	if err != nil {
		return nil, err
	}

	m.nextID++
	created := Link{
		ID:          fmt.Sprintf("lnk_%d", m.nextID),
		OriginalURL: link.OriginalURL,
		Path:        link.Path,
		Title:       link.Title,
		Tags:        link.Tags,
		Domain:      link.Domain,
		DomainID:    id,
	}
	m.Links[link.Domain] = append(m.Links[link.Domain], created)
	return &created, nil
}

// UpdateLink implements the Client interface. Like the real service, the
// returned record carries an empty domain name.
func (m *MockClient) UpdateLink(ctx context.Context, id string, update LinkUpdate) (*Link, error) {
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	if err := m.FailIDs[id]; err != nil {
		return nil, err
	}

	for domain, links := range m.Links {
		for i := range links {
			if links[i].ID != id {
				continue
			}
			links[i].OriginalURL = update.OriginalURL
			links[i].Title = update.Title
			links[i].Tags = update.Tags
			m.Links[domain] = links

			updated := links[i]
			updated.Domain = ""
			updated.DomainID = 0
			return &updated, nil
		}
	}
	return nil, syncerrors.NewAPIError(fmt.Sprintf("link %s not found", id), 404)
}

// DeleteLink implements the Client interface.
func (m *MockClient) DeleteLink(ctx context.Context, id string) error {
	m.DeleteCalls++
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if err := m.FailIDs[id]; err != nil {
		return err
	}

	for domain, links := range m.Links {
		for i := range links {
			if links[i].ID == id {
				m.Links[domain] = append(links[:i:i], links[i+1:]...)
				return nil
			}
		}
	}
	return syncerrors.NewAPIError(fmt.Sprintf("link %s not found", id), 404)
}
