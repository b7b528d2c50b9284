// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package model

import "strings"

type Direction string

const (
	DirectionOutward Direction = "OUTWARD"
	DirectionInward  Direction = "INWARD"
	DirectionBoth    Direction = "BOTH"
)

const LinkTypeSubtask = "Subtask"

// ParseDirection accepts the direction names case-insensitively. An empty
// value defaults to outward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "OUTWARD", "OUT":
		return DirectionOutward, nil
	case "INWARD", "IN":
		return DirectionInward, nil
	case "BOTH":
		return DirectionBoth, nil
	}
	return "", NewInvalidInput("direction", "expected OUTWARD, INWARD or BOTH, got "+s)
}

type Link struct {
	ID          string    `json:"id,omitempty"`
	Source      string    `json:"source"`
	Target      string    `json:"target"`
	TargetKey   string    `json:"target_key,omitempty"`
	TargetTitle string    `json:"target_title,omitempty"`
	Type        string    `json:"type"`
	Direction   Direction `json:"direction"`
}

type LinkType struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Outward  string `json:"outward,omitempty"`
	Inward   string `json:"inward,omitempty"`
	Directed bool   `json:"directed"`
}
