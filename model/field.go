// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import "strings"

type FieldType string

const (
	FieldEnum      FieldType = "enum"
	FieldMultiEnum FieldType = "multi-enum"
	FieldState     FieldType = "state"
	FieldUser      FieldType = "user"
	FieldText      FieldType = "text"
	FieldInteger   FieldType = "integer"
	FieldFloat     FieldType = "float"
	FieldDate      FieldType = "date"
	FieldPeriod    FieldType = "period"
	FieldUnknown   FieldType = "unknown"
)

// ParseFieldType folds backend type names into the neutral set. Unrecognized
// names decode as unknown rather than failing.
func ParseFieldType(s string) FieldType {
	t := strings.ToLower(s)
	switch {
	case strings.HasPrefix(t, "enum[*]"), strings.Contains(t, "multi"), t == "array":
		return FieldMultiEnum
	case strings.Contains(t, "state"), t == "status":
		return FieldState
	case strings.Contains(t, "user"), t == "assignee":
		return FieldUser
	case strings.Contains(t, "enum"), strings.Contains(t, "option"), t == "priority", t == "milestone":
		return FieldEnum
	case strings.Contains(t, "text"), t == "string", t == "label", t == "labels":
		return FieldText
	case strings.Contains(t, "integer"), t == "int":
		return FieldInteger
	case strings.Contains(t, "float"), t == "number":
		return FieldFloat
	case strings.Contains(t, "date"):
		return FieldDate
	case strings.Contains(t, "period"):
		return FieldPeriod
	}
	return FieldUnknown
}

type BundleRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// CustomField is a field bound to a project.
type CustomField struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      FieldType  `json:"type"`
	Required  bool       `json:"required"`
	EmptyText string     `json:"empty_text,omitempty"`
	Bundle    *BundleRef `json:"bundle,omitempty"`
	Values    []string   `json:"values,omitempty"`
}

// FieldValue is a custom field as read from an issue.
type FieldValue struct {
	Name  string      `json:"name"`
	Type  FieldType   `json:"type"`
	Value interface{} `json:"value"`
}

// AttachField binds an existing custom field to a project. FieldType and
// BundleType are backend enumerants and default when empty.
type AttachField struct {
	FieldID    string `json:"field_id"`
	FieldType  string `json:"field_type,omitempty"`
	BundleID   string `json:"bundle_id,omitempty"`
	BundleType string `json:"bundle_type,omitempty"`
	Required   bool   `json:"required"`
	EmptyText  string `json:"empty_text,omitempty"`
}

func (a *AttachField) Validate() error {
	if strings.TrimSpace(a.FieldID) == "" {
		return NewInvalidInput("field", "is required")
	}
	return nil
}
