// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"encoding/json"
	"io"
	"strings"
	"time"
)

// State is the neutral issue state: open, closed, or any other workflow name.
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// ParseState folds the common spellings of open and closed and keeps
// everything else as a custom state.
func ParseState(s string) State {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open", "opened", "reopen", "reopened":
		return StateOpen
	case "closed", "close":
		return StateClosed
	}
	return State(strings.TrimSpace(s))
}

func (s State) IsOpen() bool   { return s == StateOpen }
func (s State) IsClosed() bool { return s == StateClosed }

// IsCustom reports whether the state is neither open nor closed.
func (s State) IsCustom() bool { return s != "" && !s.IsOpen() && !s.IsClosed() }

type UserRef struct {
	ID    string `json:"id"`
	Login string `json:"login"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Display returns the best human handle for the user.
func (u *UserRef) Display() string {
	if u == nil {
		return ""
	}
	if u.Name != "" {
		return u.Name
	}
	if u.Login != "" {
		return u.Login
	}
	return u.ID
}

type Issue struct {
	ID            string       `json:"id"`
	Key           string       `json:"key"`
	Number        int          `json:"number,omitempty"`
	Title         string       `json:"title"`
	Body          string       `json:"body,omitempty"`
	State         State        `json:"state"`
	Status        string       `json:"status,omitempty"` // backend workflow name, when it has one
	Labels        StringArray  `json:"labels"`
	Assignees     []UserRef    `json:"assignees"`
	Reporter      *UserRef     `json:"reporter,omitempty"`
	Milestone     string       `json:"milestone,omitempty"`
	Project       *ProjectRef  `json:"project,omitempty"`
	Parent        string       `json:"parent,omitempty"`
	IsPullRequest bool         `json:"is_pull_request,omitempty"`
	CustomFields  []FieldValue `json:"custom_fields,omitempty"`
	URL           string       `json:"url,omitempty"`
	Created       *time.Time   `json:"created,omitempty"`
	Updated       *time.Time   `json:"updated,omitempty"`
	Closed        *time.Time   `json:"closed,omitempty"`
}

// Normalize enforces the read-side invariants: closed is present iff the
// state is closed, and the collections are never nil.
func (o *Issue) Normalize() *Issue {
	if o.State == "" {
		o.State = StateOpen
	}
	if !o.State.IsClosed() {
		o.Closed = nil
	} else if o.Closed == nil {
		o.Closed = closedFallback(o)
	}
	o.Labels = o.Labels.Dedup()
	if o.Assignees == nil {
		o.Assignees = []UserRef{}
	}
	return o
}

// closedFallback approximates the close time of a closed issue whose
// tracker does not report one: last update, then creation, then the epoch.
func closedFallback(o *Issue) *time.Time {
	closed := time.Unix(0, 0).UTC()
	switch {
	case o.Updated != nil:
		closed = *o.Updated
	case o.Created != nil:
		closed = *o.Created
	}
	return &closed
}

// CustomField returns the value of the named custom field, if present.
func (o *Issue) CustomField(name string) (FieldValue, bool) {
	for _, f := range o.CustomFields {
		if strings.EqualFold(f.Name, name) {
			return f, true
		}
	}
	return FieldValue{}, false
}

func (o *Issue) ToJSON() (string, error) {
	b, err := json.Marshal(o)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func IssueFromJSON(data io.Reader) (*Issue, error) {
	var issue Issue
	err := json.NewDecoder(data).Decode(&issue)
	if err != nil {
		return nil, err
	}

	return issue.Normalize(), nil
}

// CreateIssue is the neutral intent for a new issue.
type CreateIssue struct {
	ProjectID    string            `json:"project_id"`
	Title        string            `json:"title"`
	Body         string            `json:"body,omitempty"`
	Labels       []string          `json:"labels,omitempty"`
	Assignees    []string          `json:"assignees,omitempty"`
	State        State             `json:"state,omitempty"`
	Milestone    string            `json:"milestone,omitempty"`
	Parent       string            `json:"parent,omitempty"`
	Type         string            `json:"type,omitempty"`
	Priority     string            `json:"priority,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

func (c *CreateIssue) Validate() error {
	if strings.TrimSpace(c.ProjectID) == "" {
		return NewInvalidInput("project", "is required")
	}
	if strings.TrimSpace(c.Title) == "" {
		return NewInvalidInput("title", "is required")
	}
	return nil
}

// UpdateIssue is a partial update: nil fields are left unchanged.
type UpdateIssue struct {
	Title        *string           `json:"title,omitempty"`
	Body         *string           `json:"body,omitempty"`
	State        *State            `json:"state,omitempty"`
	Labels       *[]string         `json:"labels,omitempty"`
	Assignees    *[]string         `json:"assignees,omitempty"`
	Milestone    *string           `json:"milestone,omitempty"`
	Priority     *string           `json:"priority,omitempty"`
	CustomFields map[string]string `json:"custom_fields,omitempty"`
}

func (u *UpdateIssue) IsEmpty() bool {
	return u.Title == nil && u.Body == nil && u.State == nil && u.Labels == nil &&
		u.Assignees == nil && u.Milestone == nil && u.Priority == nil && len(u.CustomFields) == 0
}

func (u *UpdateIssue) Validate() error {
	if u.IsEmpty() {
		return NewInvalidInput("update", "no fields to change")
	}
	if u.Title != nil && strings.TrimSpace(*u.Title) == "" {
		return NewInvalidInput("title", "cannot be empty")
	}
	return nil
}

// Apply merges the update into a copy of the issue. Used by backends
// that answer without returning the updated entity.
func (u *UpdateIssue) Apply(issue *Issue, now time.Time) *Issue {
	out := *issue
	if u.Title != nil {
		out.Title = *u.Title
	}
	if u.Body != nil {
		out.Body = *u.Body
	}
	if u.Labels != nil {
		out.Labels = StringArray(*u.Labels).Dedup()
	}
	if u.Assignees != nil {
		out.Assignees = make([]UserRef, 0, len(*u.Assignees))
		for _, a := range *u.Assignees {
			out.Assignees = append(out.Assignees, UserRef{ID: a, Login: a})
		}
	}
	if u.Milestone != nil {
		out.Milestone = *u.Milestone
	}
	if u.State != nil && *u.State != out.State {
		out.State = *u.State
		if out.State.IsClosed() {
			closed := now
			out.Closed = &closed
		}
	}
	if out.Updated == nil || now.After(*out.Updated) {
		updated := now
		out.Updated = &updated
	}
	return out.Normalize()
}

type Comment struct {
	ID      string          `json:"id"`
	Body    string          `json:"body"`
	Rich    json.RawMessage `json:"rich,omitempty"`
	Author  *UserRef        `json:"author,omitempty"`
	Created *time.Time      `json:"created,omitempty"`
	Updated *time.Time      `json:"updated,omitempty"`
	System  bool            `json:"system,omitempty"`
}
