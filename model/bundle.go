// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"strings"
)

// BundleType names a family of value sets. The values double as the
// bundle path segment of trackers that have admin APIs for them.
type BundleType string

const (
	BundleEnum       BundleType = "enum"
	BundleState      BundleType = "state"
	BundleOwnedField BundleType = "ownedField"
	BundleVersion    BundleType = "version"
	BundleBuild      BundleType = "build"
	BundleUser       BundleType = "user"
)

var bundleTypes = []BundleType{BundleEnum, BundleState, BundleOwnedField, BundleVersion, BundleBuild, BundleUser}

// ParseBundleType is case-insensitive and accepts "owned" for ownedField.
func ParseBundleType(s string) (BundleType, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "owned" || t == "owned-field" {
		return BundleOwnedField, nil
	}
	for _, bt := range bundleTypes {
		if strings.ToLower(string(bt)) == t {
			return bt, nil
		}
	}
	return "", NewInvalidInput("bundle_type", "expected one of enum, state, ownedField, version, build, user, got "+s)
}

// BundleFor returns the bundle type backing a field type, if any.
func BundleFor(t FieldType) (BundleType, bool) {
	switch t {
	case FieldEnum, FieldMultiEnum:
		return BundleEnum, true
	case FieldState:
		return BundleState, true
	case FieldUser:
		return BundleUser, true
	}
	return "", false
}

type BundleValue struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// Resolved is only meaningful in state bundles.
	Resolved *bool `json:"resolved,omitempty"`
	Ordinal  *int  `json:"ordinal,omitempty"`
}

type Bundle struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Type   BundleType     `json:"type"`
	Values []*BundleValue `json:"values"`
}

// ValueNames lists the bundle's values in order.
func (b *Bundle) ValueNames() []string {
	names := make([]string, 0, len(b.Values))
	for _, v := range b.Values {
		names = append(names, v.Name)
	}
	return names
}

type CreateBundle struct {
	Name   string         `json:"name"`
	Type   BundleType     `json:"type"`
	Values []*BundleValue `json:"values,omitempty"`
}

func (c *CreateBundle) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewInvalidInput("name", "is required")
	}
	if _, err := ParseBundleType(string(c.Type)); err != nil {
		return err
	}
	return validateValueNames(c.Values)
}

// NewBundleValues numbers names in order. In a state bundle every value is
// marked resolved or not according to resolved.
func NewBundleValues(t BundleType, names, resolved []string) []*BundleValue {
	done := map[string]bool{}
	for _, r := range resolved {
		done[strings.TrimSpace(r)] = true
	}
	values := make([]*BundleValue, 0, len(names))
	for i, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		v := &BundleValue{Name: n}
		ordinal := i
		v.Ordinal = &ordinal
		if t == BundleState {
			r := done[n]
			v.Resolved = &r
		}
		values = append(values, v)
	}
	return values
}

func validateValueNames(values []*BundleValue) error {
	seen := map[string]bool{}
	for _, v := range values {
		if strings.TrimSpace(v.Name) == "" {
			return NewInvalidInput("values", "value names must not be empty")
		}
		if seen[v.Name] {
			return NewInvalidInput("values", "duplicate value "+v.Name)
		}
		seen[v.Name] = true
	}
	return nil
}

// ValidateBundleValues checks a batch of values to add to an existing bundle.
func ValidateBundleValues(values []*BundleValue) error {
	if len(values) == 0 {
		return NewInvalidInput("values", "at least one value is required")
	}
	return validateValueNames(values)
}

// CustomFieldDefinition is an instance-wide custom field, independent of
// the projects it is attached to.
type CustomFieldDefinition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      FieldType `json:"type"`
	TypeID    string    `json:"type_id,omitempty"`
	Instances int       `json:"instances"`
}

type CreateCustomField struct {
	Name string    `json:"name"`
	Type FieldType `json:"type"`
}

func (c *CreateCustomField) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return NewInvalidInput("name", "is required")
	}
	if c.Type == "" || c.Type == FieldUnknown {
		return NewInvalidInput("type", "expected one of enum, multi-enum, state, user, text, integer, float, date, period")
	}
	return nil
}

// ParseCreatableFieldType accepts the neutral field type names only.
func ParseCreatableFieldType(s string) (FieldType, error) {
	t := FieldType(strings.ToLower(strings.TrimSpace(s)))
	switch t {
	case FieldEnum, FieldMultiEnum, FieldState, FieldUser, FieldText, FieldInteger, FieldFloat, FieldDate, FieldPeriod:
		return t, nil
	}
	return "", NewInvalidInput("type", "expected one of enum, multi-enum, state, user, text, integer, float, date, period, got "+s)
}
