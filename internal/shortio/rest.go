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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	syncerrors "github.com/shortsynchq/shortsync/internal/errors"
	"github.com/shortsynchq/shortsync/internal/logging"
)

// RESTClient implements the short.io Client interface over the REST API.
// It owns a hostname-to-id cache that persists for the client's lifetime;
// the cache is populated wholesale by ListDomains and read by
// ResolveDomainID. The client is not safe for concurrent use without
// external synchronization around cache population.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client

	// domains maps hostname to the service-assigned domain id. Replaced
	// in full on every ListDomains call, never partially invalidated.
	domains map[string]int64

	log zerolog.Logger
}

// NewRESTClient creates a new short.io client with the provided API key and
// endpoint. The client is configured with:
//   - Authentication via the Authorization header on every request
//   - JSON content negotiation and a User-Agent header
//   - Response size limiting to prevent memory issues
//   - Optimized connection pooling for API performance
func NewRESTClient(apiKey, baseURL string) *RESTClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	httpClient := &http.Client{
		Transport: &authTransport{
			apiKey: apiKey,
			base:   transport,
		},
	}

	return &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		domains:    make(map[string]int64),
		log:        logging.GetLogger("shortio"),
	}
}

// ListDomains fetches all domains from the service and replaces the entire
// cache contents. Entries for domains no longer present server-side are
// dropped in the process.
func (c *RESTClient) ListDomains(ctx context.Context) ([]Domain, error) {
	var domains []Domain
	if err := c.do(ctx, http.MethodGet, "/domains", nil, &domains); err != nil {
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}

	cache := make(map[string]int64, len(domains))
	for _, d := range domains {
		cache[d.Hostname] = d.ID
	}
	c.domains = cache

	c.log.Debug().Int("count", len(domains)).Msg("domain cache refreshed")
	return domains, nil
}

// ResolveDomainID returns the cached id for a hostname, refreshing the
// cache via ListDomains exactly once on a miss. The cache is never
// refreshed implicitly once populated; a stale id requires an explicit
// ListDomains call.
func (c *RESTClient) ResolveDomainID(ctx context.Context, hostname string) (int64, error) {
	if id, ok := c.domains[hostname]; ok {
		return id, nil
	}

	if _, err := c.ListDomains(ctx); err != nil {
		return 0, err
	}

	if id, ok := c.domains[hostname]; ok {
		return id, nil
	}

	return 0, syncerrors.NewAPIError(
		fmt.Sprintf("domain %q not found in short.io account", hostname), 0,
	).Wrap(syncerrors.ErrDomainNotFound)
}

// FetchAllLinks pages through the full link catalog of a domain using a
// fixed page size, supplying each response's continuation token to the next
// request. All pages are accumulated into one sequence in service-return
// order; any page failure fails the whole fetch.
func (c *RESTClient) FetchAllLinks(ctx context.Context, domain string) ([]Link, error) {
	domainID, err := c.ResolveDomainID(ctx, domain)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch links for %s: %w", domain, err)
	}

	var (
		links     []Link
		pageToken string
		pageNum   int
	)

	for {
		pageNum++

		q := url.Values{}
		q.Set("domain_id", strconv.FormatInt(domainID, 10))
		q.Set("limit", strconv.Itoa(defaultPageSize))
		if pageToken != "" {
			q.Set("pageToken", pageToken)
		}

		var page linkPage
		if err := c.do(ctx, http.MethodGet, "/links?"+q.Encode(), nil, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch links for %s (page %d): %w", domain, pageNum, err)
		}

		for i := range page.Links {
			page.Links[i].Domain = domain
			page.Links[i].DomainID = domainID
		}
		links = append(links, page.Links...)

		c.log.Debug().
			Str("domain", domain).
			Int("page", pageNum).
			Int("records", len(page.Links)).
			Msg("fetched link page")

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return links, nil
}

// CreateLink creates a new short link and returns the record reported by
// the service, with the domain name filled in from the request.
func (c *RESTClient) CreateLink(ctx context.Context, link NewLink) (*Link, error) {
	req := createLinkRequest{
		OriginalURL: link.OriginalURL,
		Domain:      link.Domain,
		Path:        link.Path,
		Title:       link.Title,
		Tags:        link.Tags,
	}

	var created Link
	if err := c.do(ctx, http.MethodPost, "/links", req, &created); err != nil {
		return nil, fmt.Errorf("failed to create link %s/%s: %w", link.Domain, link.Path, err)
	}

	created.Domain = link.Domain
	return &created, nil
}

// UpdateLink updates the mutable fields of a link. All three fields are
// transmitted literally, including empty ones: this is how callers clear a
// title or remove all tags. A nil tag slice is normalized to an empty one
// so the wire body carries [] rather than null.
//
// The service reports an empty domain name in update responses regardless
// of the link's actual domain. The record is returned as reported; callers
// track link identity themselves and must not rely on the returned domain.
func (c *RESTClient) UpdateLink(ctx context.Context, id string, update LinkUpdate) (*Link, error) {
	if update.Tags == nil {
		update.Tags = []string{}
	}

	var updated Link
	if err := c.do(ctx, http.MethodPost, "/links/"+id, update, &updated); err != nil {
		return nil, fmt.Errorf("failed to update link %s: %w", id, err)
	}

	return &updated, nil
}

// DeleteLink removes a link by id.
func (c *RESTClient) DeleteLink(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/links/"+id, nil, nil); err != nil {
		return fmt.Errorf("failed to delete link %s: %w", id, err)
	}
	return nil
}

// do executes one JSON request against the service and decodes the response
// into out when non-nil. Every failure path surfaces as an *APIError.
func (c *RESTClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return syncerrors.NewAPIError(err.Error(), 0).Wrap(syncerrors.ErrNetworkFailure)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return syncerrors.NewAPIError(
			fmt.Sprintf("failed to read response: %v", err), resp.StatusCode,
		).Wrap(syncerrors.ErrNetworkFailure)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serviceError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return syncerrors.NewAPIError(
				fmt.Sprintf("failed to decode response: %v", err), resp.StatusCode,
			).WithBody(string(data))
		}
	}

	return nil
}

// serviceError normalizes a non-success response into an APIError. The
// service usually returns a structured {"error": "..."} body, some
// endpoints use {"message": "..."}, and proxies may return plain text;
// all three shapes collapse into the same error kind.
func serviceError(status int, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	message := ""
	if err := json.Unmarshal(body, &payload); err == nil {
		message = payload.Error
		if message == "" {
			message = payload.Message
		}
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = http.StatusText(status)
	}

	apiErr := syncerrors.NewAPIError(message, status).WithBody(string(body))
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return apiErr.Wrap(syncerrors.ErrInvalidAPIKey)
	}
	return apiErr
}
