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

package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/shortsynchq/shortsync/internal/reconcile"
)

// LoadLinks reads a links catalog file and converts it into the desired
// link sequence, one entry per key. Keys are unique by YAML map
// construction and become link paths; entry order in the file is not
// semantically significant, so the result is sorted by path for
// deterministic plans and output.
func LoadLinks(path string) ([]reconcile.DesiredLink, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read links file %s: %w", path, err)
	}

	var catalog map[string]LinkSpec
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse links file %s: %w", path, err)
	}

	keys := make([]string, 0, len(catalog))
	for key := range catalog {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	desired := make([]reconcile.DesiredLink, 0, len(catalog))
	for _, key := range keys {
		spec := catalog[key]
		if spec.URL == "" {
			return nil, fmt.Errorf("link %q: url is required", key)
		}
		if spec.Domain == "" {
			return nil, fmt.Errorf("link %q: domain is required", key)
		}

		desired = append(desired, reconcile.DesiredLink{
			Path:   key,
			URL:    spec.URL,
			Domain: spec.Domain,
			Title:  spec.Title,
			Tags:   spec.Tags,
		})
	}

	return desired, nil
}

// Domains returns the distinct domains referenced by a desired link
// sequence, sorted. The sync run fetches the live catalog of each.
func Domains(desired []reconcile.DesiredLink) []string {
	seen := make(map[string]struct{})
	var domains []string
	for _, d := range desired {
		if _, ok := seen[d.Domain]; !ok {
			seen[d.Domain] = struct{}{}
			domains = append(domains, d.Domain)
		}
	}
	sort.Strings(domains)
	return domains
}
