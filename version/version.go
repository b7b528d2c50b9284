// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package version reports which track binary is running. Release builds
// stamp the variables below with -ldflags "-X".
package version

import (
	"fmt"
	"time"
)

const devRelease = "v0.1.0-dev"

var (
	release   string
	commit    string
	builtAt   string
	startedAt = time.Now().UTC()
)

// Build identifies a track binary in `track version` output and in the
// User-Agent sent to trackers.
type Build struct {
	Release string `json:"release"`
	Commit  string `json:"commit"`
	BuiltAt string `json:"built_at"`
}

// Current returns the stamped build, with placeholders for local builds.
func Current() *Build {
	b := &Build{Release: release, Commit: commit, BuiltAt: builtAt}
	if b.Release == "" {
		b.Release = devRelease
	}
	if b.Commit == "" {
		b.Commit = "unknown"
	}
	if b.BuiltAt == "" {
		b.BuiltAt = startedAt.Format(time.RFC3339)
	}
	return b
}

func (b *Build) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", b.Release, b.Commit, b.BuiltAt)
}

// UserAgent is the product token trackers see, e.g. "track/v0.1.0-dev".
func (b *Build) UserAgent() string {
	return "track/" + b.Release
}
