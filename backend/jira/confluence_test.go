// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package jira

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
)

const testWiki = testSite + "/wiki"

const pageJSON = `{
  "id": "123",
  "title": "Runbook",
  "status": "current",
  "spaceId": "9",
  "parentId": "100",
  "createdAt": "2024-02-01T08:00:00.000Z",
  "version": {"number": 4, "createdAt": "2024-02-03T08:00:00.000Z"},
  "body": {"storage": {"representation": "storage", "value": "<p>First &amp; foremost</p><p>Second</p>"}},
  "_links": {"webui": "/spaces/OPS/pages/123"}
}`

func newTestWiki(t *testing.T) (tracker.KnowledgeBase, *httpmock.MockTransport) {
	t.Helper()
	b, mock := newTestBackend(t)
	kb, err := tracker.KnowledgeBaseOf(b)
	require.NoError(t, err)
	return kb, mock
}

func TestStorageFormat(t *testing.T) {
	assert.Equal(t, "<p>a &lt;b&gt;</p><p>line<br/>break</p>", toStorage("a <b>\n\nline\nbreak"))
	assert.Equal(t, "<p></p>", toStorage(""))
	assert.Equal(t, "First & foremost\nSecond", fromStorage("<p>First &amp; foremost</p><p>Second</p>"))
}

func TestGetArticle(t *testing.T) {
	kb, mock := newTestWiki(t)

	mock.RegisterResponder("GET", testWiki+"/api/v2/pages/123", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "storage", req.URL.Query().Get("body-format"))
		return httpmock.NewStringResponse(200, pageJSON), nil
	})

	a, err := kb.GetArticle(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, "Runbook", a.Title)
	assert.Equal(t, "First & foremost\nSecond", a.Content)
	assert.Equal(t, "100", a.ParentID)
	assert.Equal(t, "9", a.Project.ID)
	assert.Equal(t, testWiki+"/spaces/OPS/pages/123", a.URL)
	assert.Equal(t, 3, a.Updated.Day())
}

func TestUpdateArticleBumpsVersion(t *testing.T) {
	kb, mock := newTestWiki(t)

	mock.RegisterResponder("GET", testWiki+"/api/v2/pages/123", httpmock.NewStringResponder(200, pageJSON))
	mock.RegisterResponder("PUT", testWiki+"/api/v2/pages/123", func(req *http.Request) (*http.Response, error) {
		body := decodeBody(t, req)
		assert.Equal(t, "Runbook", body["title"])
		assert.EqualValues(t, 5, body["version"].(map[string]interface{})["number"])
		assert.Equal(t, "<p>New text</p>", body["body"].(map[string]interface{})["value"])
		return httpmock.NewStringResponse(200, pageJSON), nil
	})

	content := "New text"
	_, err := kb.UpdateArticle(context.Background(), "123", &model.UpdateArticle{Content: &content})
	require.NoError(t, err)
}

func TestListArticlesFollowsCursor(t *testing.T) {
	kb, mock := newTestWiki(t)

	mock.RegisterResponder("GET", testWiki+"/api/v2/pages", func(req *http.Request) (*http.Response, error) {
		q := req.URL.Query()
		assert.Equal(t, "9", q.Get("space-id"))
		if q.Get("cursor") == "" {
			return httpmock.NewStringResponse(200, `{"results":[{"id":"1","title":"One"},{"id":"2","title":"Two"}],
				"_links":{"next":"/wiki/api/v2/pages?cursor=abc&limit=3"}}`), nil
		}
		assert.Equal(t, "abc", q.Get("cursor"))
		return httpmock.NewStringResponse(200, `{"results":[{"id":"3","title":"Three"}],"_links":{}}`), nil
	})

	articles, err := kb.ListArticles(context.Background(), "9", 2, 1)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "2", articles[0].ID)
	assert.Equal(t, "3", articles[1].ID)
}

func TestArticleEdgeCases(t *testing.T) {
	kb, mock := newTestWiki(t)
	ctx := context.Background()

	t.Run("Reparenting is rejected", func(t *testing.T) {
		_, err := kb.MoveArticle(ctx, "123", "200")
		assert.True(t, model.IsKind(err, model.KindInvalidInput))
	})

	t.Run("Missing page", func(t *testing.T) {
		mock.RegisterResponder("GET", testWiki+"/api/v2/pages/404", httpmock.NewStringResponder(404, `{"errors":[{"status":404,"title":"Not Found"}]}`))
		_, err := kb.GetArticle(ctx, "404")
		assert.True(t, model.IsKind(err, model.KindNotFound))
	})

	t.Run("Search uses CQL", func(t *testing.T) {
		mock.RegisterResponder("GET", testWiki+"/rest/api/search", func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, `type=page AND text~"deploy" AND space="OPS"`, req.URL.Query().Get("cql"))
			return httpmock.NewStringResponse(200, `{"results":[{"content":{"id":"7","title":"Deploy","space":{"key":"OPS"}},"excerpt":"how to @@@hl@@@deploy"}]}`), nil
		})
		articles, err := kb.SearchArticles(ctx, "deploy", "OPS", 10)
		require.NoError(t, err)
		require.Len(t, articles, 1)
		assert.Equal(t, "OPS", articles[0].Project.ShortName)
	})

	t.Run("Comments are sent in storage format", func(t *testing.T) {
		mock.RegisterResponder("POST", testWiki+"/api/v2/footer-comments", func(req *http.Request) (*http.Response, error) {
			body := decodeBody(t, req)
			assert.Equal(t, "123", body["pageId"])
			assert.Equal(t, "<p>LGTM</p>", body["body"].(map[string]interface{})["value"])
			return httpmock.NewStringResponse(200, `{"id":"c1","body":{"storage":{"value":"<p>LGTM</p>"}}}`), nil
		})
		c, err := kb.AddArticleComment(ctx, "123", "LGTM")
		require.NoError(t, err)
		assert.Equal(t, "LGTM", c.Body)
	})
}
