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

// Package errors defines the error shapes used for consistent error handling
// across the application. Every failure talking to the link service surfaces
// as an *APIError, optionally wrapping one of the sentinel errors that map
// to specific exit codes in the CLI for proper scripting support.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrInvalidAPIKey indicates short.io authentication failed.
	// Maps to exit code 2.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// ErrDomainNotFound indicates the requested domain is not registered
	// with the service account. Maps to exit code 2.
	ErrDomainNotFound = errors.New("domain not found")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrPartialSync indicates one or more individual sync operations
	// failed while the run itself completed. Maps to exit code 4.
	ErrPartialSync = errors.New("sync completed with errors")
)

// APIError is the single error kind raised for every link-service failure,
// whether the service returned a structured JSON error body, free text, or
// the transport failed outright. StatusCode is zero when no HTTP response
// was received; Body carries the raw response payload when one was.
type APIError struct {
	Message    string
	StatusCode int
	Body       string

	// wrapped is an optional sentinel for errors.Is matching.
	wrapped error
}

// NewAPIError creates an APIError with a message and HTTP status code.
// A zero statusCode means the failure happened before a response arrived.
func NewAPIError(message string, statusCode int) *APIError {
	return &APIError{Message: message, StatusCode: statusCode}
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("short.io api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("short.io api error: %s", e.Message)
}

// Unwrap exposes the wrapped sentinel, if any, to errors.Is.
func (e *APIError) Unwrap() error {
	return e.wrapped
}

// WithBody attaches the raw response payload and returns the error.
func (e *APIError) WithBody(body string) *APIError {
	e.Body = body
	return e
}

// Wrap attaches a sentinel error and returns the error, so callers can
// classify failures with errors.Is while still seeing the service message.
func (e *APIError) Wrap(sentinel error) *APIError {
	e.wrapped = sentinel
	return e
}
