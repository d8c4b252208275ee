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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{
			name: "with status code",
			err:  NewAPIError("Not found", 404),
			want: "short.io api error (status 404): Not found",
		},
		{
			name: "without status code",
			err:  NewAPIError("connection refused", 0),
			want: "short.io api error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestAPIError_Wrap(t *testing.T) {
	err := NewAPIError("domain 'x.io' not found", 404).Wrap(ErrDomainNotFound)

	assert.True(t, stderrors.Is(err, ErrDomainNotFound))
	assert.False(t, stderrors.Is(err, ErrInvalidAPIKey))

	// Wrapping again through fmt keeps the chain intact.
	wrapped := fmt.Errorf("resolving domain: %w", err)
	assert.True(t, stderrors.Is(wrapped, ErrDomainNotFound))

	var apiErr *APIError
	assert.True(t, stderrors.As(wrapped, &apiErr))
	assert.Equal(t, 404, apiErr.StatusCode)
}

func TestAPIError_WithBody(t *testing.T) {
	err := NewAPIError("Internal Server Error", 500).WithBody("upstream exploded")
	assert.Equal(t, "upstream exploded", err.Body)
}
