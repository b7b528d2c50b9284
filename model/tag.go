// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"regexp"
	"strings"
)

const DefaultTagColor = "ededed"

var hexColorPattern = regexp.MustCompile(`^[0-9a-f]{6}$`)

type Tag struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// TagInput carries a tag create or update. Empty fields are left unchanged on update.
type TagInput struct {
	Name        string `json:"name,omitempty"`
	Color       string `json:"color,omitempty"`
	Description string `json:"description,omitempty"`
}

// NormalizeColor returns the canonical form of a hex color: six lowercase
// digits without the leading hash.
func NormalizeColor(color string) (string, error) {
	c := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(color), "#"))
	if !hexColorPattern.MatchString(c) {
		return "", NewInvalidInput("color", "expected 6 hex digits, got "+color)
	}
	return c, nil
}

// Normalize validates the input and canonicalizes the color. A create
// requires a name; an update does not.
func (t *TagInput) Normalize(create bool) error {
	t.Name = strings.TrimSpace(t.Name)
	if create && t.Name == "" {
		return NewInvalidInput("name", "is required")
	}
	if t.Color != "" {
		c, err := NormalizeColor(t.Color)
		if err != nil {
			return err
		}
		t.Color = c
	}
	return nil
}

// CanonicalColor folds whatever a backend reports into the canonical form,
// leaving unparseable values empty.
func CanonicalColor(color string) string {
	c, err := NormalizeColor(color)
	if err != nil {
		return ""
	}
	return c
}
