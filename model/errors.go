// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrorKind is the closed set of failure categories every backend folds into.
type ErrorKind string

const (
	KindHTTP            ErrorKind = "http"
	KindParse           ErrorKind = "parse"
	KindIO              ErrorKind = "io"
	KindIssueNotFound   ErrorKind = "issue_not_found"
	KindProjectNotFound ErrorKind = "project_not_found"
	KindNotFound        ErrorKind = "not_found"
	KindUnauthorized    ErrorKind = "unauthorized"
	KindRateLimited     ErrorKind = "rate_limited"
	KindAPI             ErrorKind = "api"
	KindUnsupported     ErrorKind = "unsupported"
	KindInvalidInput    ErrorKind = "invalid_input"
	KindMockMiss        ErrorKind = "mock_miss"
)

// TrackerError is the only error type returned across the backend boundary.
type TrackerError struct {
	Kind   ErrorKind              `json:"kind"`
	ID     string                 `json:"id,omitempty"`     // entity for the not-found kinds
	Status int                    `json:"status,omitempty"` // HTTP status for api errors
	Detail string                 `json:"detail,omitempty"` // server message or transport detail
	Field  string                 `json:"field,omitempty"`
	Op     string                 `json:"op,omitempty"`
	Args   map[string]interface{} `json:"args,omitempty"`
	Err    error                  `json:"-"`
}

func (e *TrackerError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return "HTTP error: " + e.Detail
	case KindParse:
		return "Parse error: " + e.Detail
	case KindIO:
		return "IO error: " + e.Detail
	case KindIssueNotFound:
		return "Issue not found: " + e.ID
	case KindProjectNotFound:
		return "Project not found: " + e.ID
	case KindNotFound:
		return "Resource not found: " + e.ID
	case KindUnauthorized:
		if e.Detail != "" {
			return "Authentication failed: " + e.Detail
		}
		return "Authentication failed"
	case KindRateLimited:
		if e.Detail != "" {
			return "Rate limited: " + e.Detail
		}
		return "Rate limited"
	case KindAPI:
		return fmt.Sprintf("API error (%d): %s", e.Status, e.Detail)
	case KindUnsupported:
		return "Operation not supported by this backend: " + e.Op
	case KindInvalidInput:
		if e.Field != "" {
			return "Invalid input: " + e.Field + ": " + e.Detail
		}
		return "Invalid input: " + e.Detail
	case KindMockMiss:
		return fmt.Sprintf("No mock response for %s(%s)", e.Op, formatArgs(e.Args))
	}
	return string(e.Kind) + ": " + e.Detail
}

func (e *TrackerError) Unwrap() error {
	return e.Err
}

// WithCause records the underlying error without changing the kind.
func (e *TrackerError) WithCause(err error) *TrackerError {
	e.Err = err
	return e
}

// ToJSON renders the error the way the command line prints it in JSON mode.
func (e *TrackerError) ToJSON() string {
	payload := map[string]interface{}{
		"kind":    e.Kind,
		"message": e.Error(),
	}
	if e.ID != "" {
		payload["id"] = e.ID
	}
	if e.Status != 0 {
		payload["status"] = e.Status
	}
	if e.Field != "" {
		payload["field"] = e.Field
	}
	if e.Op != "" {
		payload["op"] = e.Op
	}
	if len(e.Args) > 0 {
		payload["args"] = e.Args
	}
	b, err := json.Marshal(map[string]interface{}{"error": payload})
	if err != nil {
		return ""
	}
	return string(b)
}

func NewHTTPError(detail string, cause error) *TrackerError {
	return &TrackerError{Kind: KindHTTP, Detail: detail, Err: cause}
}

func NewParseError(detail string, cause error) *TrackerError {
	return &TrackerError{Kind: KindParse, Detail: detail, Err: cause}
}

func NewIOError(detail string, cause error) *TrackerError {
	return &TrackerError{Kind: KindIO, Detail: detail, Err: cause}
}

func NewIssueNotFound(id string) *TrackerError {
	return &TrackerError{Kind: KindIssueNotFound, ID: id}
}

func NewProjectNotFound(id string) *TrackerError {
	return &TrackerError{Kind: KindProjectNotFound, ID: id}
}

func NewNotFound(what string) *TrackerError {
	return &TrackerError{Kind: KindNotFound, ID: what}
}

func NewUnauthorized(detail string) *TrackerError {
	return &TrackerError{Kind: KindUnauthorized, Detail: detail}
}

func NewRateLimited(detail string) *TrackerError {
	return &TrackerError{Kind: KindRateLimited, Detail: detail}
}

func NewAPIError(status int, message string) *TrackerError {
	return &TrackerError{Kind: KindAPI, Status: status, Detail: message}
}

func NewUnsupported(op string) *TrackerError {
	return &TrackerError{Kind: KindUnsupported, Op: op}
}

func NewInvalidInput(field, reason string) *TrackerError {
	return &TrackerError{Kind: KindInvalidInput, Field: field, Detail: reason}
}

func NewMockMiss(op string, args map[string]interface{}) *TrackerError {
	return &TrackerError{Kind: KindMockMiss, Op: op, Args: args}
}

// AsTrackerError extracts the first TrackerError in the chain.
func AsTrackerError(err error) (*TrackerError, bool) {
	var te *TrackerError
	if errors.As(err, &te) {
		return te, true
	}
	return nil, false
}

// KindOf returns the kind of the first TrackerError in the chain, or an empty kind.
func KindOf(err error) ErrorKind {
	if te, ok := AsTrackerError(err); ok {
		return te.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}

func formatArgs(args map[string]interface{}) string {
	keys := make([]string, 0, len(args))
	for k := range args {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, args[k]))
	}
	return strings.Join(parts, ", ")
}
