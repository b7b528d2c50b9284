// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import (
	"encoding/json"
	"sort"
	"strings"
)

// StringArray is an unordered set of strings, used for labels and tags.
// It always serializes as a JSON array, never as null.
type StringArray []string

func (sa StringArray) MarshalJSON() ([]byte, error) {
	if sa == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(sa))
}

// Has reports whether the set contains s.
func (sa StringArray) Has(s string) bool {
	for _, v := range sa {
		if v == s {
			return true
		}
	}
	return false
}

// Dedup drops blank entries and duplicates, keeping first-seen order.
func (sa StringArray) Dedup() StringArray {
	out := StringArray{}
	seen := make(map[string]bool, len(sa))
	for _, v := range sa {
		v = strings.TrimSpace(v)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}

// Equal compares the two arrays as sets.
func (sa StringArray) Equal(other StringArray) bool {
	a, b := sa.Dedup(), other.Dedup()
	if len(a) != len(b) {
		return false
	}
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Join renders the set in the comma-joined wire form.
func (sa StringArray) Join() string {
	return strings.Join(sa.Dedup(), ",")
}

// SplitStringArray parses a comma-joined label list.
func SplitStringArray(s string) StringArray {
	return StringArray(strings.Split(s, ",")).Dedup()
}
