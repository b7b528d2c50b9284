// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `
[[responses]]
method = "get_issue"
args = { id = "PROJ-1" }
file = "issue_1.json"

[[responses]]
method = "get_issue"
args = { id = "*" }
file = "any_issue.json"

[[responses]]
method = "search_issues"
args = { query = ["project: PROJ", "#Unresolved"] }
file = "search.json"

[[responses]]
method = "create_issue"
args = { labels = ["bug", "ui"] }
file = "created_labeled.json"

[[responses]]
method = "create_issue"
args = { project = "0-1" }
when = { body_contains = "urgent" }
file = "created_urgent.json"

[[responses]]
method = "create_issue"
args = { project = "0-1" }
sequence = ["created_1.json", "created_2.json"]

[[responses]]
method = "delete_issue"
args = { id = "PROJ-9" }
status = 403
`

func TestParseManifest(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	require.NoError(t, err)
	require.Len(t, m.Responses, 7)

	t.Run("status defaults to 200", func(t *testing.T) {
		assert.Equal(t, 200, m.Responses[0].Status)
		assert.Equal(t, 403, m.Responses[6].Status)
	})

	t.Run("missing method is rejected", func(t *testing.T) {
		_, err := ParseManifest([]byte("[[responses]]\nfile = \"x.json\"\n"))
		require.Error(t, err)
	})

	t.Run("invalid toml is rejected", func(t *testing.T) {
		_, err := ParseManifest([]byte("[[responses]\n"))
		require.Error(t, err)
	})

	t.Run("duplicates are kept and the first wins", func(t *testing.T) {
		dup, err := ParseManifest([]byte(`
[[responses]]
method = "list_projects"
file = "a.json"

[[responses]]
method = "list_projects"
file = "b.json"
`))
		require.NoError(t, err)
		require.Len(t, dup.Responses, 2)
		r, idx := dup.Find("list_projects", map[string]interface{}{}, "")
		require.NotNil(t, r)
		assert.Equal(t, 0, idx)
		assert.Equal(t, "a.json", r.File)
	})
}

func TestFind(t *testing.T) {
	m, err := ParseManifest([]byte(testManifest))
	require.NoError(t, err)

	t.Run("exact argument wins over a later wildcard", func(t *testing.T) {
		r, idx := m.Find("get_issue", map[string]interface{}{"id": "PROJ-1"}, "")
		require.NotNil(t, r)
		assert.Equal(t, 0, idx)
	})

	t.Run("wildcard matches any value", func(t *testing.T) {
		r, idx := m.Find("get_issue", map[string]interface{}{"id": "OTHER-3"}, "")
		require.NotNil(t, r)
		assert.Equal(t, 1, idx)
		assert.Equal(t, "any_issue.json", r.File)
	})

	t.Run("wildcard never matches a missing argument", func(t *testing.T) {
		r, idx := m.Find("get_issue", map[string]interface{}{}, "")
		assert.Nil(t, r)
		assert.Equal(t, -1, idx)
	})

	t.Run("array constraint is membership for a scalar argument", func(t *testing.T) {
		r, _ := m.Find("search_issues", map[string]interface{}{"query": "#Unresolved"}, "")
		require.NotNil(t, r)
		r, _ = m.Find("search_issues", map[string]interface{}{"query": "#Resolved"}, "")
		assert.Nil(t, r)
	})

	t.Run("array constraint is a subset of a list argument", func(t *testing.T) {
		args := map[string]interface{}{"project": "0-1", "labels": []string{"ui", "bug", "p1"}}
		r, idx := m.Find("create_issue", args, "")
		require.NotNil(t, r)
		assert.Equal(t, 3, idx)

		args["labels"] = []string{"ui"}
		r, idx = m.Find("create_issue", args, "")
		require.NotNil(t, r)
		assert.Equal(t, 5, idx)
	})

	t.Run("scalar constraint is containment for a list argument", func(t *testing.T) {
		assert.True(t, argMatches("bug", []interface{}{"bug", "ui"}))
		assert.False(t, argMatches("p1", []interface{}{"bug", "ui"}))
	})

	t.Run("body condition", func(t *testing.T) {
		args := map[string]interface{}{"project": "0-1"}
		r, _ := m.Find("create_issue", args, `{"title":"urgent fix"}`)
		require.NotNil(t, r)
		assert.Equal(t, "created_urgent.json", r.File)

		r, _ = m.Find("create_issue", args, `{"title":"later"}`)
		require.NotNil(t, r)
		assert.Len(t, r.Sequence, 2)
	})

	t.Run("unknown method", func(t *testing.T) {
		r, idx := m.Find("get_article", map[string]interface{}{"id": "A-1"}, "")
		assert.Nil(t, r)
		assert.Equal(t, -1, idx)
	})
}

func TestResponseFile(t *testing.T) {
	t.Run("single file", func(t *testing.T) {
		r := &Mapping{File: "a.json"}
		assert.Equal(t, "a.json", r.ResponseFile(0))
		assert.Equal(t, "a.json", r.ResponseFile(5))
	})

	t.Run("sequence repeats its last entry", func(t *testing.T) {
		r := &Mapping{Sequence: []string{"1.json", "2.json"}}
		assert.Equal(t, "1.json", r.ResponseFile(0))
		assert.Equal(t, "2.json", r.ResponseFile(1))
		assert.Equal(t, "2.json", r.ResponseFile(2))
	})
}

func TestRequestKey(t *testing.T) {
	a := requestKey("get_issue", map[string]interface{}{"id": "X-1", "b": "2"})
	b := requestKey("get_issue", map[string]interface{}{"b": "2", "id": "X-1"})
	assert.Equal(t, a, b)
	assert.Equal(t, "list_projects", requestKey("list_projects", nil))
}
