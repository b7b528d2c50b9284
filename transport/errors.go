// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-track/model"
)

const maxRawMessage = 512

type ResourceKind int

const (
	ResourceNone ResourceKind = iota
	ResourceIssue
	ResourceProject
	ResourceNamed
)

// Resource tells MapStatus what a 404 refers to.
type Resource struct {
	Kind ResourceKind
	ID   string
}

func IssueResource(id string) Resource   { return Resource{Kind: ResourceIssue, ID: id} }
func ProjectResource(id string) Resource { return Resource{Kind: ResourceProject, ID: id} }
func NamedResource(what string) Resource { return Resource{Kind: ResourceNamed, ID: what} }

// MapStatus folds an HTTP error response into the neutral taxonomy.
func MapStatus(status int, header http.Header, body []byte, res Resource) *model.TrackerError {
	msg := ExtractMessage(body)
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized:
		return model.NewUnauthorized(msg)
	case status == http.StatusTooManyRequests:
		return model.NewRateLimited(msg)
	case status == http.StatusForbidden:
		if isRateLimited(header, msg) {
			return model.NewRateLimited(msg)
		}
		return model.NewUnauthorized(msg)
	case status == http.StatusNotFound:
		switch res.Kind {
		case ResourceIssue:
			return model.NewIssueNotFound(res.ID)
		case ResourceProject:
			return model.NewProjectNotFound(res.ID)
		case ResourceNamed:
			return model.NewNotFound(res.ID)
		}
	}
	return model.NewAPIError(status, msg)
}

func isRateLimited(header http.Header, msg string) bool {
	if header != nil {
		if header.Get("X-RateLimit-Remaining") == "0" || header.Get("RateLimit-Remaining") == "0" {
			return true
		}
		if header.Get("Retry-After") != "" {
			return true
		}
	}
	return strings.Contains(strings.ToLower(msg), "rate limit")
}

// MapRequestError folds a failed round trip into an http error.
func MapRequestError(err error) *model.TrackerError {
	if te, ok := model.AsTrackerError(err); ok {
		return te
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return model.NewHTTPError("timeout", err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return model.NewHTTPError("timeout", err)
	}
	return model.NewHTTPError(err.Error(), err)
}

// ExtractMessage pulls the human message out of an error body. It knows the
// shapes used by the supported trackers and falls back to the raw body.
func ExtractMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return truncate(trimmed)
	}

	if m, ok := payload["message"]; ok {
		if s := flatten(m); s != "" {
			return s
		}
	}
	if list, ok := payload["errors"].([]interface{}); ok && len(list) > 0 {
		switch first := list[0].(type) {
		case map[string]interface{}:
			if s, ok := first["message"].(string); ok && s != "" {
				return s
			}
		case string:
			return first
		}
	}
	if s := jiraMessages(payload); s != "" {
		return s
	}
	if s, ok := payload["error_description"].(string); ok && s != "" {
		return s
	}
	if e, ok := payload["error"]; ok {
		if s := flatten(e); s != "" {
			return s
		}
	}
	return truncate(trimmed)
}

func jiraMessages(payload map[string]interface{}) string {
	var parts []string
	if list, ok := payload["errorMessages"].([]interface{}); ok {
		for _, m := range list {
			if s, ok := m.(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
	}
	if fields, ok := payload["errors"].(map[string]interface{}); ok {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %v", k, fields[k]))
		}
	}
	return strings.Join(parts, "; ")
}

// flatten renders string, list, and object messages. GitLab reports
// validation failures as {"message": {"title": ["can't be blank"]}}.
func flatten(v interface{}) string {
	switch m := v.(type) {
	case string:
		return m
	case []interface{}:
		parts := make([]string, 0, len(m))
		for _, item := range m {
			if s := flatten(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case map[string]interface{}:
		if s, ok := m["message"].(string); ok {
			return s
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, k+" "+flatten(m[k]))
		}
		return strings.Join(parts, "; ")
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

func truncate(s string) string {
	if len(s) > maxRawMessage {
		return s[:maxRawMessage] + "..."
	}
	return s
}
