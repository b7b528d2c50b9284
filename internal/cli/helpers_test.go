// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
)

func TestExitCode(t *testing.T) {
	ctx := context.Background()
	for name, tc := range map[string]struct {
		err  error
		code int
	}{
		"nil":            {nil, ExitOK},
		"usage":          {errors.New("unknown flag: --nope"), ExitUser},
		"not found":      {model.NewIssueNotFound("X-1"), ExitUser},
		"unsupported":    {model.NewUnsupported("create_project"), ExitUser},
		"mock miss":      {model.NewMockMiss("get_issue", nil), ExitUser},
		"unauthorized":   {model.NewUnauthorized(""), ExitAuth},
		"api":            {model.NewAPIError(500, "boom"), ExitAPI},
		"rate limited":   {model.NewRateLimited(""), ExitAPI},
		"network":        {model.NewHTTPError("timeout", nil), ExitNetwork},
		"parse":          {model.NewParseError("bad json", nil), ExitNetwork},
		"wrapped":        {errors.Wrap(model.NewUnauthorized(""), "get issue"), ExitAuth},
		"context cancel": {context.Canceled, ExitInterrupted},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.code, ExitCode(ctx, tc.err))
		})
	}

	t.Run("Should report an interrupt when the context was cancelled", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		assert.Equal(t, ExitInterrupted, ExitCode(cancelled, model.NewHTTPError("request aborted", nil)))
	})
}

func TestQualifyQuery(t *testing.T) {
	for _, tc := range []struct {
		backend, project, query, want string
	}{
		{tracker.YouTrack, "", "#Unresolved", "#Unresolved"},
		{tracker.YouTrack, "PROJ", "#Unresolved", "project: PROJ #Unresolved"},
		{tracker.Mock, "PROJ", "", "project: PROJ"},
		{tracker.GitHub, "mattermost/track", "is:open", "repo:mattermost/track is:open"},
		{tracker.GitLab, "group/app", "crash", "project:group/app crash"},
		{tracker.Jira, "PROJ", "status = Open", "project = PROJ AND (status = Open)"},
		{tracker.Jira, "PROJ", "login fails", `project = PROJ AND text ~ "login fails"`},
		{tracker.Jira, "PROJ", "", "project = PROJ"},
	} {
		assert.Equal(t, tc.want, qualifyQuery(tc.backend, tc.project, tc.query), "%s %q", tc.backend, tc.query)
	}
}

func TestParseFields(t *testing.T) {
	fields, err := parseFields([]string{"Priority=Major", " Due = 2024-01-15 ", "Note="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"Priority": "Major", "Due": "2024-01-15", "Note": ""}, fields)

	fields, err = parseFields(nil)
	require.NoError(t, err)
	assert.Nil(t, fields)

	_, err = parseFields([]string{"Priority"})
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindInvalidInput))
}

func TestPrinter(t *testing.T) {
	issue := &model.Issue{
		ID:        "2-1",
		Key:       "PROJ-1",
		Title:     "Login fails",
		State:     model.StateOpen,
		Labels:    model.StringArray{"bug"},
		Assignees: []model.UserRef{{Login: "jdoe"}},
	}

	t.Run("Should render plain text without a terminal", func(t *testing.T) {
		var buf bytes.Buffer
		p, err := NewPrinter(&buf, outputText, colorAuto)
		require.NoError(t, err)
		require.NoError(t, p.Issue(issue))
		assert.Contains(t, buf.String(), "PROJ-1  Login fails")
		assert.Contains(t, buf.String(), "jdoe")
		assert.NotContains(t, buf.String(), "\x1b[")
	})

	t.Run("Should colorize when forced", func(t *testing.T) {
		var buf bytes.Buffer
		p, err := NewPrinter(&buf, outputText, colorAlways)
		require.NoError(t, err)
		require.NoError(t, p.Issues([]*model.Issue{issue}))
		assert.Contains(t, buf.String(), "\x1b[")
	})

	t.Run("Should write snake case JSON", func(t *testing.T) {
		var buf bytes.Buffer
		p, err := NewPrinter(&buf, outputJSON, colorAlways)
		require.NoError(t, err)
		require.NoError(t, p.Issue(issue))
		assert.Contains(t, buf.String(), `"key": "PROJ-1"`)
		assert.NotContains(t, buf.String(), "\x1b[")
	})

	t.Run("Should print tag colors with a hash", func(t *testing.T) {
		var buf bytes.Buffer
		p, err := NewPrinter(&buf, outputText, colorNever)
		require.NoError(t, err)
		require.NoError(t, p.Tags([]*model.Tag{{Name: "bug", Color: "fc2929"}}))
		assert.Contains(t, buf.String(), "#fc2929")
	})

	t.Run("Should reject an unknown color mode", func(t *testing.T) {
		_, err := NewPrinter(&bytes.Buffer{}, outputText, "rainbow")
		assert.True(t, model.IsKind(err, model.KindInvalidInput))
	})
}
