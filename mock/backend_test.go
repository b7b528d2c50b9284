// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"context"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
)

const backendManifest = `
[[responses]]
method = "get_issue"
args = { id = "PROJ-1" }
file = "issue_1.json"

[[responses]]
method = "get_issue"
args = { id = "GONE-1" }
status = 404

[[responses]]
method = "get_issue"
args = { id = "SLOW-1" }
file = "issue_1.json"
delay_ms = 5000

[[responses]]
method = "list_projects"
file = "projects.json"

[[responses]]
method = "search_issues"
args = { query = "*" }
file = "search.json"

[[responses]]
method = "create_issue"
args = { project = "0-1", title = "*" }
sequence = ["created_42.json", "created_43.json"]

[[responses]]
method = "delete_issue"
args = { id = "PROJ-1" }

[[responses]]
method = "list_tags"
file = "tags.json"

[[responses]]
method = "get_comments"
args = { issue_id = "PROJ-1" }
`

var backendResponses = map[string]string{
	"issue_1.json": `{"id": "2-1", "key": "PROJ-1", "title": "First", "state": "open", "labels": ["a", "a"]}`,
	"projects.json": `[
		{"id": "0-1", "short_name": "PROJ", "name": "Project"},
		{"id": "0-2", "short_name": "DEMO", "name": "Demo"}
	]`,
	"search.json": `[
		{"id": "2-1", "key": "PROJ-1", "title": "First", "state": "open"},
		{"id": "2-2", "key": "PROJ-2", "title": "Second", "state": "closed", "updated": "2024-01-15T10:00:00Z"},
		{"id": "2-3", "key": "PROJ-3", "title": "Third", "state": "open"}
	]`,
	"created_42.json": `{"id": "2-42", "key": "PROJ-42", "title": "New", "state": "open"}`,
	"created_43.json": `{"id": "2-43", "key": "PROJ-43", "title": "New", "state": "open"}`,
	"tags.json":       `[{"id": "6-1", "name": "bug", "color": "#FF0000"}, {"id": "6-2", "name": "odd", "color": "red"}]`,
}

func writeScenario(t *testing.T, manifest string, responses map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ResponsesDir), 0755))
	for name, body := range responses {
		require.NoError(t, ioutil.WriteFile(filepath.Join(dir, ResponsesDir, name), []byte(body), 0644))
	}
	return dir
}

func newTestBackend(t *testing.T) *Backend {
	t.Helper()
	b, err := New(writeScenario(t, backendManifest, backendResponses))
	require.NoError(t, err)
	return b
}

func readLog(t *testing.T, b *Backend) []*Entry {
	t.Helper()
	entries, err := ReadCallLog(b.Dir())
	require.NoError(t, err)
	return entries
}

func TestNew(t *testing.T) {
	t.Run("missing manifest is an io error", func(t *testing.T) {
		_, err := New(t.TempDir())
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindIO))
	})

	t.Run("name", func(t *testing.T) {
		assert.Equal(t, tracker.Mock, newTestBackend(t).Name())
	})
}

func TestGetIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("serves and normalizes the mapped file", func(t *testing.T) {
		b := newTestBackend(t)
		issue, err := b.GetIssue(ctx, "PROJ-1")
		require.NoError(t, err)
		assert.Equal(t, "PROJ-1", issue.Key)
		assert.Equal(t, model.StringArray{"a"}, issue.Labels)
		assert.NotNil(t, issue.Assignees)

		entries := readLog(t, b)
		require.Len(t, entries, 1)
		assert.Equal(t, "get_issue", entries[0].Op)
		assert.Equal(t, "PROJ-1", entries[0].Args["id"])
		assert.Equal(t, ResultOK, entries[0].ResultKind)
		require.NotNil(t, entries[0].Matched)
		assert.Equal(t, 0, entries[0].Matched.Index)
		assert.Equal(t, "issue_1.json", entries[0].Matched.File)
	})

	t.Run("a miss is issue not found and logged as mock_miss", func(t *testing.T) {
		b := newTestBackend(t)
		_, err := b.GetIssue(ctx, "MISSING")
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindIssueNotFound))
		assert.Equal(t, "Issue not found: MISSING", err.Error())

		entries := readLog(t, b)
		require.Len(t, entries, 1)
		assert.Equal(t, "mock_miss", entries[0].ResultKind)
		assert.Nil(t, entries[0].Matched)
		assert.True(t, entries[0].Failed())
	})

	t.Run("mapped status maps like the real backends", func(t *testing.T) {
		b := newTestBackend(t)
		_, err := b.GetIssue(ctx, "GONE-1")
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindIssueNotFound))

		entries := readLog(t, b)
		require.Len(t, entries, 1)
		assert.Equal(t, "issue_not_found", entries[0].ResultKind)
		require.NotNil(t, entries[0].Matched)
		assert.Equal(t, 1, entries[0].Matched.Index)
	})

	t.Run("delay honours cancellation", func(t *testing.T) {
		b := newTestBackend(t)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		start := time.Now()
		_, err := b.GetIssue(ctx, "SLOW-1")
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindHTTP))
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("missing response file is an io error", func(t *testing.T) {
		dir := writeScenario(t, backendManifest, nil)
		b, err := New(dir)
		require.NoError(t, err)
		_, err = b.GetIssue(ctx, "PROJ-1")
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindIO))
	})
}

func TestSearchIssues(t *testing.T) {
	b := newTestBackend(t)
	issues, err := b.SearchIssues(context.Background(), "project: PROJ", 2, 0)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	assert.Equal(t, "PROJ-2", issues[1].Key)
	assert.NotNil(t, issues[1].Closed)

	entries := readLog(t, b)
	require.Len(t, entries, 1)
	assert.Equal(t, "2", entries[0].Args["limit"])
	assert.Equal(t, "0", entries[0].Args["skip"])
}

func TestCreateIssueSequence(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	first, err := b.CreateIssue(ctx, &model.CreateIssue{ProjectID: "0-1", Title: "New"})
	require.NoError(t, err)
	second, err := b.CreateIssue(ctx, &model.CreateIssue{ProjectID: "0-1", Title: "New"})
	require.NoError(t, err)
	third, err := b.CreateIssue(ctx, &model.CreateIssue{ProjectID: "0-1", Title: "New"})
	require.NoError(t, err)

	assert.Equal(t, "PROJ-42", first.Key)
	assert.Equal(t, "PROJ-43", second.Key)
	assert.Equal(t, "PROJ-43", third.Key)

	t.Run("invalid input is not logged", func(t *testing.T) {
		_, err := b.CreateIssue(ctx, &model.CreateIssue{ProjectID: "0-1"})
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindInvalidInput))
		assert.Len(t, readLog(t, b), 3)
	})
}

func TestResolveProjectID(t *testing.T) {
	ctx := context.Background()

	t.Run("falls back to list_projects", func(t *testing.T) {
		b := newTestBackend(t)
		id, err := b.ResolveProjectID(ctx, "PROJ")
		require.NoError(t, err)
		assert.Equal(t, "0-1", id)

		entries := readLog(t, b)
		require.Len(t, entries, 2)
		assert.Equal(t, "resolve_project_id", entries[0].Op)
		assert.Equal(t, ResultFallback, entries[0].ResultKind)
		assert.False(t, entries[0].Failed())
		assert.Equal(t, "list_projects", entries[1].Op)
	})

	t.Run("opaque id resolves to itself", func(t *testing.T) {
		b := newTestBackend(t)
		id, err := b.ResolveProjectID(ctx, "0-2")
		require.NoError(t, err)
		assert.Equal(t, "0-2", id)
	})

	t.Run("unknown project", func(t *testing.T) {
		b := newTestBackend(t)
		_, err := b.ResolveProjectID(ctx, "NOPE")
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindProjectNotFound))
	})

	t.Run("mapped string response", func(t *testing.T) {
		dir := writeScenario(t, `
[[responses]]
method = "resolve_project_id"
args = { identifier = "PROJ" }
file = "id.json"
`, map[string]string{"id.json": `"0-9"`})
		b, err := New(dir)
		require.NoError(t, err)
		id, err := b.ResolveProjectID(ctx, "PROJ")
		require.NoError(t, err)
		assert.Equal(t, "0-9", id)
	})
}

func TestFallbacks(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	users, err := b.ListProjectUsers(ctx, "0-1")
	require.NoError(t, err)
	assert.Empty(t, users)

	types, err := b.ListLinkTypes(ctx)
	require.NoError(t, err)
	assert.Empty(t, types)

	for _, e := range readLog(t, b) {
		assert.Equal(t, ResultFallback, e.ResultKind)
	}
}

func TestNoContentResponses(t *testing.T) {
	b := newTestBackend(t)
	ctx := context.Background()

	require.NoError(t, b.DeleteIssue(ctx, "PROJ-1"))

	_, err := b.GetComments(ctx, "PROJ-1")
	require.Error(t, err)
	assert.True(t, model.IsKind(err, model.KindParse))
}

func TestListTagsCanonicalizesColors(t *testing.T) {
	b := newTestBackend(t)
	tags, err := b.ListTags(context.Background())
	require.NoError(t, err)
	require.Len(t, tags, 2)
	assert.Equal(t, "ff0000", tags[0].Color)
	assert.Equal(t, "", tags[1].Color)
}

func TestLogCommand(t *testing.T) {
	b := newTestBackend(t)
	b.LogCommand([]string{"issue", "get", "PROJ-1"})
	_, err := b.GetIssue(context.Background(), "PROJ-1")
	require.NoError(t, err)

	entries := readLog(t, b)
	require.Len(t, entries, 2)
	assert.Equal(t, OpCLI, entries[0].Op)
	assert.Equal(t, []interface{}{"issue", "get", "PROJ-1"}, entries[0].Args["argv"])
	assert.Equal(t, "get_issue", entries[1].Op)
}

func TestDeterminism(t *testing.T) {
	run := func() []*Entry {
		b := newTestBackend(t)
		ctx := context.Background()
		_, _ = b.GetIssue(ctx, "PROJ-1")
		_, _ = b.GetIssue(ctx, "MISSING")
		_, _ = b.ResolveProjectID(ctx, "DEMO")
		return readLog(t, b)
	}
	first, second := run(), run()
	require.Len(t, first, 4)
	if diff := cmp.Diff(first, second, cmpopts.IgnoreFields(Entry{}, "Timestamp")); diff != "" {
		t.Errorf("call logs differ (-first +second):\n%s", diff)
	}
}

func TestClearCallLog(t *testing.T) {
	b := newTestBackend(t)
	_, _ = b.GetIssue(context.Background(), "PROJ-1")
	require.Len(t, readLog(t, b), 1)

	require.NoError(t, ClearCallLog(b.Dir()))
	assert.Empty(t, readLog(t, b))
	require.NoError(t, ClearCallLog(b.Dir()))
}

func TestReadCallLogSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	data := `{"timestamp":"2024-01-15T10:00:00Z","op":"get_issue","args":{"id":"X-1"},"matched":null,"result_kind":"mock_miss","error":"boom"}
not json
{"timestamp":"2024-01-15T10:00:01Z","op":"list_projects","args":{},"matched":{"index":0,"file":"p.json"},"result_kind":"ok"}
`
	require.NoError(t, ioutil.WriteFile(filepath.Join(dir, CallLogFile), []byte(data), 0644))

	entries, err := ReadCallLog(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Failed())
	assert.Equal(t, "p.json", entries[1].Matched.File)
}

func TestIssueStateRoundTrip(t *testing.T) {
	dir := writeScenario(t, `
[[responses]]
method = "update_issue"
args = { id = "PROJ-1", state = "closed" }
file = "closed.json"

[[responses]]
method = "update_issue"
args = { id = "PROJ-1", state = "open" }
file = "reopened.json"
`, map[string]string{
		"closed.json":   `{"id": "2-1", "key": "PROJ-1", "title": "First", "state": "closed"}`,
		"reopened.json": `{"id": "2-1", "key": "PROJ-1", "title": "First", "state": "open", "closed": "2024-01-15T10:00:00Z"}`,
	})
	b, err := New(dir)
	require.NoError(t, err)
	ctx := context.Background()

	closed := model.StateClosed
	issue, err := b.UpdateIssue(ctx, "PROJ-1", &model.UpdateIssue{State: &closed})
	require.NoError(t, err)
	assert.Equal(t, model.StateClosed, issue.State)
	require.NotNil(t, issue.Closed)

	open := model.StateOpen
	issue, err = b.UpdateIssue(ctx, "PROJ-1", &model.UpdateIssue{State: &open})
	require.NoError(t, err)
	assert.Equal(t, model.StateOpen, issue.State)
	assert.Nil(t, issue.Closed)
}
