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

package shorterror

import (
	"errors"
	"fmt"
	"testing"

	syncerrors "github.com/shortsynchq/shortsync/internal/errors"
)

func TestInspector_IsAuthError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"401 api error", syncerrors.NewAPIError("Unauthorized", 401), true},
		{"403 api error", syncerrors.NewAPIError("Forbidden", 403), true},
		{"wrapped 401", fmt.Errorf("listing domains: %w", syncerrors.NewAPIError("Unauthorized", 401)), true},
		{"plain message", errors.New("invalid API key provided"), true},
		{"unrelated", syncerrors.NewAPIError("Not found", 404), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsAuthError(tt.err); got != tt.want {
				t.Errorf("IsAuthError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInspector_IsNotFoundError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"404 api error", syncerrors.NewAPIError("Not found", 404), true},
		{"message only", errors.New("domain 'x.io' not found"), true},
		{"server error", syncerrors.NewAPIError("boom", 500), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNotFoundError(tt.err); got != tt.want {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInspector_IsNetworkError(t *testing.T) {
	inspector := NewInspector()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil error", nil, false},
		{"connection refused", errors.New("dial tcp 127.0.0.1:443: connection refused"), true},
		{"dns failure", errors.New("lookup api.short.io: no such host"), true},
		{"timeout", errors.New("request timeout exceeded"), true},
		{"service error", syncerrors.NewAPIError("Not found", 404), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inspector.IsNetworkError(tt.err); got != tt.want {
				t.Errorf("IsNetworkError() = %v, want %v", got, tt.want)
			}
		})
	}
}
