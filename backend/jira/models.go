// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package jira

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// defaultFields is requested on every issue read.
var defaultFields = []string{
	"summary",
	"description",
	"status",
	"priority",
	"issuetype",
	"project",
	"assignee",
	"reporter",
	"labels",
	"fixVersions",
	"created",
	"updated",
	"resolutiondate",
	"subtasks",
	"parent",
	"issuelinks",
}

const timeLayout = "2006-01-02T15:04:05.000-0700"

// Time decodes the offset format Jira uses, which lacks the colon RFC 3339
// requires.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}
	for _, layout := range []string{timeLayout, time.RFC3339Nano} {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return &time.ParseError{Layout: timeLayout, Value: s}
}

func (t *Time) ptr() *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	c := t.Time
	return &c
}

type named struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type statusCategory struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

type status struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	StatusCategory *statusCategory `json:"statusCategory"`
}

type user struct {
	AccountID    string `json:"accountId"`
	DisplayName  string `json:"displayName"`
	EmailAddress string `json:"emailAddress"`
}

type projectRef struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

type project struct {
	ID          string `json:"id"`
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Lead        *user  `json:"lead"`
	Self        string `json:"self"`
}

type issueRef struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Fields *struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

func (r *issueRef) summary() string {
	if r.Fields == nil {
		return ""
	}
	return r.Fields.Summary
}

type linkType struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Inward  string `json:"inward"`
	Outward string `json:"outward"`
}

type issueLink struct {
	ID           string    `json:"id"`
	Type         linkType  `json:"type"`
	InwardIssue  *issueRef `json:"inwardIssue"`
	OutwardIssue *issueRef `json:"outwardIssue"`
}

type fields struct {
	Summary        string          `json:"summary"`
	Description    json.RawMessage `json:"description"`
	Status         *status         `json:"status"`
	Priority       *named          `json:"priority"`
	IssueType      *named          `json:"issuetype"`
	Project        *projectRef     `json:"project"`
	Assignee       *user           `json:"assignee"`
	Reporter       *user           `json:"reporter"`
	Labels         []string        `json:"labels"`
	FixVersions    []named         `json:"fixVersions"`
	Created        *Time           `json:"created"`
	Updated        *Time           `json:"updated"`
	ResolutionDate *Time           `json:"resolutiondate"`
	Parent         *issueRef       `json:"parent"`
	Subtasks       []issueRef      `json:"subtasks"`
	IssueLinks     []issueLink     `json:"issuelinks"`
}

type issue struct {
	ID     string `json:"id"`
	Key    string `json:"key"`
	Fields fields `json:"fields"`
}

type searchResult struct {
	Issues     []issue `json:"issues"`
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
}

type createdIssue struct {
	ID  string `json:"id"`
	Key string `json:"key"`
}

type comment struct {
	ID      string          `json:"id"`
	Author  *user           `json:"author"`
	Body    json.RawMessage `json:"body"`
	Created *Time           `json:"created"`
	Updated *Time           `json:"updated"`
}

type commentList struct {
	Comments   []comment `json:"comments"`
	StartAt    int       `json:"startAt"`
	MaxResults int       `json:"maxResults"`
	Total      int       `json:"total"`
}

type transition struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	To   status `json:"to"`
}

type transitionList struct {
	Transitions []transition `json:"transitions"`
}

type labelPage struct {
	Values     []string `json:"values"`
	StartAt    int      `json:"startAt"`
	MaxResults int      `json:"maxResults"`
	IsLast     bool     `json:"isLast"`
}

type linkTypeList struct {
	IssueLinkTypes []linkType `json:"issueLinkTypes"`
}

type keyRef struct {
	Key string `json:"key"`
}

type createLink struct {
	Type         named  `json:"type"`
	InwardIssue  keyRef `json:"inwardIssue"`
	OutwardIssue keyRef `json:"outwardIssue"`
}

// adfNode is a node of an Atlassian Document Format tree.
type adfNode struct {
	Type    string                 `json:"type"`
	Version int                    `json:"version,omitempty"`
	Text    string                 `json:"text,omitempty"`
	Attrs   map[string]interface{} `json:"attrs,omitempty"`
	Content []adfNode              `json:"content,omitempty"`
}

var adfBlocks = map[string]bool{
	"paragraph":   true,
	"heading":     true,
	"codeBlock":   true,
	"blockquote":  true,
	"bulletList":  true,
	"orderedList": true,
	"listItem":    true,
	"panel":       true,
	"rule":        true,
	"table":       true,
	"tableRow":    true,
}

func (n *adfNode) text() string {
	switch n.Type {
	case "text":
		return n.Text
	case "hardBreak":
		return "\n"
	case "mention", "emoji":
		if s, ok := n.Attrs["text"].(string); ok {
			return s
		}
	}
	parts := make([]string, 0, len(n.Content))
	sep := ""
	for i := range n.Content {
		if adfBlocks[n.Content[i].Type] {
			sep = "\n"
		}
		parts = append(parts, n.Content[i].text())
	}
	return strings.Join(parts, sep)
}

// textFromADF flattens a document to plain text. Plain JSON strings, as
// older servers send them, are returned unchanged.
func textFromADF(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var doc adfNode
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ""
	}
	return strings.TrimSpace(doc.text())
}

// textToADF lifts plain text into a single-paragraph document.
func textToADF(text string) *adfNode {
	para := adfNode{Type: "paragraph"}
	if text != "" {
		para.Content = []adfNode{{Type: "text", Text: text}}
	}
	return &adfNode{Type: "doc", Version: 1, Content: []adfNode{para}}
}
