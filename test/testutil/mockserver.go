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

// Package testutil provides common test helpers for shortsync
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// TestAPIKey is the key the stateful mock server accepts.
const TestAPIKey = "sk_test_key"

// ServerLink is one short link held by the mock service.
type ServerLink struct {
	ID          string   `json:"idString"`
	OriginalURL string   `json:"originalURL"`
	Path        string   `json:"path"`
	Title       string   `json:"title,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// LinkServer is a stateful in-process stand-in for the short.io API. It
// registers domains, serves the paginated link listing, and mutates its
// state on create, update and delete, so a full CLI run can be verified
// end to end against it.
type LinkServer struct {
	*httptest.Server

	mu       sync.Mutex
	domains  map[string]int64   // hostname -> id
	links    map[int64][]ServerLink
	nextID   int
	pageSize int

	// RequestCount tracks every request the server handled.
	RequestCount int
}

// NewLinkServer starts a mock service with the given domains registered
// and no links. The server is shut down automatically at test cleanup.
func NewLinkServer(t *testing.T, hostnames ...string) *LinkServer {
	t.Helper()

	s := &LinkServer{
		domains:  make(map[string]int64),
		links:    make(map[int64][]ServerLink),
		pageSize: 150,
	}
	for i, hostname := range hostnames {
		id := int64(i + 1)
		s.domains[hostname] = id
		s.links[id] = []ServerLink{}
	}

	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// SetPageSize lowers the listing page size so pagination paths can be
// exercised with small fixtures.
func (s *LinkServer) SetPageSize(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pageSize = n
}

// Seed adds links to a domain's catalog directly, bypassing the API.
func (s *LinkServer) Seed(t *testing.T, hostname string, links ...ServerLink) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.domains[hostname]
	if !ok {
		t.Fatalf("Seed: domain %q not registered", hostname)
	}
	for _, link := range links {
		s.nextID++
		if link.ID == "" {
			link.ID = fmt.Sprintf("lnk_%d", s.nextID)
		}
		s.links[id] = append(s.links[id], link)
	}
}

// LinksFor returns a copy of the current catalog of a domain.
func (s *LinkServer) LinksFor(t *testing.T, hostname string) []ServerLink {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.domains[hostname]
	if !ok {
		t.Fatalf("LinksFor: domain %q not registered", hostname)
	}
	out := make([]ServerLink, len(s.links[id]))
	copy(out, s.links[id])
	return out
}

func (s *LinkServer) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.RequestCount++

	if r.Header.Get("Authorization") != TestAPIKey {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/domains":
		s.handleDomains(w)
	case r.Method == http.MethodGet && r.URL.Path == "/links":
		s.handleList(w, r)
	case r.Method == http.MethodPost && r.URL.Path == "/links":
		s.handleCreate(w, r)
	case r.Method == http.MethodPost && strings.HasPrefix(r.URL.Path, "/links/"):
		s.handleUpdate(w, r)
	case r.Method == http.MethodDelete && strings.HasPrefix(r.URL.Path, "/links/"):
		s.handleDelete(w, r)
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Not Found"})
	}
}

func (s *LinkServer) handleDomains(w http.ResponseWriter) {
	type domain struct {
		ID       int64  `json:"id"`
		Hostname string `json:"hostname"`
	}
	var out []domain
	for hostname, id := range s.domains {
		out = append(out, domain{ID: id, Hostname: hostname})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *LinkServer) handleList(w http.ResponseWriter, r *http.Request) {
	domainID, err := strconv.ParseInt(r.URL.Query().Get("domain_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid domain_id"})
		return
	}
	links, ok := s.links[domainID]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "domain not found"})
		return
	}

	offset := 0
	if token := r.URL.Query().Get("pageToken"); token != "" {
		offset, err = strconv.Atoi(token)
		if err != nil || offset < 0 || offset > len(links) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid pageToken"})
			return
		}
	}

	end := offset + s.pageSize
	if end > len(links) {
		end = len(links)
	}

	resp := map[string]any{"links": links[offset:end]}
	if end < len(links) {
		resp["nextPageToken"] = strconv.Itoa(end)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *LinkServer) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ServerLink
		Domain string `json:"domain"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}
	domainID, ok := s.domains[req.Domain]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "domain not found"})
		return
	}
	for _, link := range s.links[domainID] {
		if link.Path == req.Path {
			writeJSON(w, http.StatusConflict, map[string]string{"error": "Link already exists"})
			return
		}
	}

	s.nextID++
	created := req.ServerLink
	created.ID = fmt.Sprintf("lnk_%d", s.nextID)
	s.links[domainID] = append(s.links[domainID], created)
	writeJSON(w, http.StatusOK, created)
}

func (s *LinkServer) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/links/")

	var req struct {
		OriginalURL string   `json:"originalURL"`
		Title       string   `json:"title"`
		Tags        []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid body"})
		return
	}

	for domainID, links := range s.links {
		for i := range links {
			if links[i].ID != id {
				continue
			}
			links[i].OriginalURL = req.OriginalURL
			links[i].Title = req.Title
			links[i].Tags = req.Tags
			s.links[domainID] = links
			writeJSON(w, http.StatusOK, links[i])
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Link not found"})
}

func (s *LinkServer) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/links/")

	for domainID, links := range s.links {
		for i := range links {
			if links[i].ID == id {
				s.links[domainID] = append(links[:i:i], links[i+1:]...)
				writeJSON(w, http.StatusOK, map[string]bool{"success": true})
				return
			}
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "Link not found"})
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(statusCode)
		_, _ = w.Write([]byte(http.StatusText(statusCode)))
	}))
	t.Cleanup(server.Close)
	return server
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
