// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package transport

import (
	"context"
	"io/ioutil"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-track/metrics"
	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/version"
)

func TestMapStatus(t *testing.T) {
	for name, tc := range map[string]struct {
		status int
		header http.Header
		body   string
		res    Resource
		kind   model.ErrorKind
		msg    string
	}{
		"Unauthorized":            {status: 401, body: `{"message":"Bad credentials"}`, kind: model.KindUnauthorized},
		"Forbidden without limit": {status: 403, body: `{}`, kind: model.KindUnauthorized},
		"Forbidden with limit": {
			status: 403,
			header: http.Header{"X-Ratelimit-Remaining": []string{"0"}},
			kind:   model.KindRateLimited,
		},
		"Too many requests": {status: 429, kind: model.KindRateLimited},
		"Issue 404":         {status: 404, res: IssueResource("PROJ-1"), kind: model.KindIssueNotFound, msg: "Issue not found: PROJ-1"},
		"Project 404":       {status: 404, res: ProjectResource("PROJ"), kind: model.KindProjectNotFound, msg: "Project not found: PROJ"},
		"Named 404":         {status: 404, res: NamedResource("tag urgent"), kind: model.KindNotFound},
		"Anonymous 404":     {status: 404, body: "nope", kind: model.KindAPI, msg: "API error (404): nope"},
		"Workflow refusal": {
			status: 422,
			body:   `{"errors":[{"message":"Transition not allowed"}]}`,
			kind:   model.KindAPI,
			msg:    "API error (422): Transition not allowed",
		},
		"Jira field errors": {
			status: 400,
			body:   `{"errorMessages":["Bad request"],"errors":{"summary":"required"}}`,
			kind:   model.KindAPI,
			msg:    "API error (400): Bad request; summary: required",
		},
		"OAuth error": {
			status: 400,
			body:   `{"error":"invalid_grant","error_description":"Token expired"}`,
			kind:   model.KindAPI,
			msg:    "API error (400): Token expired",
		},
		"Empty body": {status: 500, kind: model.KindAPI, msg: "API error (500): Internal Server Error"},
	} {
		t.Run(name, func(t *testing.T) {
			err := MapStatus(tc.status, tc.header, []byte(tc.body), tc.res)
			require.Equal(t, tc.kind, err.Kind)
			if tc.msg != "" {
				require.Equal(t, tc.msg, err.Error())
			}
		})
	}
}

func TestExtractMessage(t *testing.T) {
	assert.Equal(t, "title can't be blank", ExtractMessage([]byte(`{"message":{"title":["can't be blank"]}}`)))
	assert.Equal(t, "plain text", ExtractMessage([]byte("plain text")))
	assert.Equal(t, "", ExtractMessage(nil))
}

func TestClient(t *testing.T) {
	mock := httpmock.NewMockTransport()
	client := NewClient("youtrack", "https://yt.example.com/", BearerAuth("secret"), &http.Client{Transport: mock})
	ctx := context.Background()

	t.Run("Sends auth and decodes the reply", func(t *testing.T) {
		mock.RegisterResponder("GET", "https://yt.example.com/api/issues/DEMO-1",
			func(req *http.Request) (*http.Response, error) {
				require.Equal(t, "Bearer secret", req.Header.Get("Authorization"))
				require.Equal(t, "idReadable", req.URL.Query().Get("fields"))
				return httpmock.NewStringResponse(200, `{"idReadable":"DEMO-1"}`), nil
			})

		var out struct {
			IDReadable string `json:"idReadable"`
		}
		err := client.Get(ctx, Path("/api/issues/%s", "DEMO-1"), url.Values{"fields": {"idReadable"}}, IssueResource("DEMO-1"), &out)
		require.NoError(t, err)
		require.Equal(t, "DEMO-1", out.IDReadable)
	})

	t.Run("Maps 404 on the resource", func(t *testing.T) {
		mock.RegisterResponder("GET", "https://yt.example.com/api/issues/MISSING",
			httpmock.NewStringResponder(404, `{"error":"Not Found"}`))

		err := client.Get(ctx, "/api/issues/MISSING", nil, IssueResource("MISSING"), nil)
		require.Equal(t, "Issue not found: MISSING", err.Error())
	})

	t.Run("Reports undecodable replies as parse errors", func(t *testing.T) {
		mock.RegisterResponder("GET", "https://yt.example.com/api/broken",
			httpmock.NewStringResponder(200, `{"id":`))

		var out map[string]interface{}
		err := client.Get(ctx, "/api/broken", nil, Resource{}, &out)
		require.True(t, model.IsKind(err, model.KindParse))
	})

	t.Run("Sends the JSON body", func(t *testing.T) {
		mock.RegisterResponder("POST", "https://yt.example.com/api/issueTags",
			func(req *http.Request) (*http.Response, error) {
				b, _ := ioutil.ReadAll(req.Body)
				require.JSONEq(t, `{"name":"urgent"}`, string(b))
				require.Equal(t, "application/json", req.Header.Get("Content-Type"))
				return httpmock.NewStringResponse(200, `{"id":"6-1"}`), nil
			})

		var out map[string]string
		err := client.Post(ctx, "/api/issueTags", nil, map[string]string{"name": "urgent"}, Resource{}, &out)
		require.NoError(t, err)
		require.Equal(t, "6-1", out["id"])
	})
}

func TestBasicAuth(t *testing.T) {
	req, err := http.NewRequest("GET", "https://example.atlassian.net", nil)
	require.NoError(t, err)
	BasicAuth{Email: "me@example.com", Token: "tok"}.Apply(req)
	email, token, ok := req.BasicAuth()
	require.True(t, ok)
	require.Equal(t, "me@example.com", email)
	require.Equal(t, "tok", token)

	HeaderAuth{Name: "PRIVATE-TOKEN", Value: "glpat"}.Apply(req)
	require.Equal(t, "glpat", req.Header.Get("PRIVATE-TOKEN"))
}

func TestTimeout(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder("GET", "https://slow.example.com/api",
		func(req *http.Request) (*http.Response, error) {
			<-req.Context().Done()
			return nil, req.Context().Err()
		})
	client := NewClient("jira", "https://slow.example.com", nil, NewHTTPClient(Options{
		Backend: "jira",
		Base:    mock,
		Timeout: 50 * time.Millisecond,
		Metrics: metrics.NewPrometheusProvider(),
	}))

	err := client.Get(context.Background(), "/api", nil, Resource{}, nil)
	te, ok := model.AsTrackerError(err)
	require.True(t, ok)
	require.Equal(t, model.KindHTTP, te.Kind)
	require.Equal(t, "HTTP error: timeout", te.Error())
}

func TestThrottleTransport(t *testing.T) {
	mock := httpmock.NewMockTransport()
	mock.RegisterResponder("GET", "https://example.com/", httpmock.NewStringResponder(200, "ok"))

	t.Run("Should pass requests within the burst", func(t *testing.T) {
		client := NewHTTPClient(Options{Backend: "youtrack", Base: mock, RateLimit: 1000, Burst: 2})
		for i := 0; i < 3; i++ {
			resp, err := client.Get("https://example.com/")
			require.NoError(t, err)
			resp.Body.Close()
		}
		require.Equal(t, 3, mock.GetTotalCallCount())
	})

	t.Run("Should identify the track build", func(t *testing.T) {
		var agent string
		agentMock := httpmock.NewMockTransport()
		agentMock.RegisterResponder("GET", "https://example.com/", func(req *http.Request) (*http.Response, error) {
			agent = req.Header.Get("User-Agent")
			return httpmock.NewStringResponse(200, "ok"), nil
		})
		resp, err := NewHTTPClient(Options{Base: agentMock}).Get("https://example.com/")
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, version.Current().UserAgent(), agent)
	})

	t.Run("Should report rate limited when the wait outlasts the deadline", func(t *testing.T) {
		mock.ZeroCallCounters()
		client := NewHTTPClient(Options{Backend: "youtrack", Base: mock, RateLimit: 0.01, Burst: 1})
		resp, err := client.Get("https://example.com/")
		require.NoError(t, err)
		resp.Body.Close()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://example.com/", nil)
		require.NoError(t, err)
		_, err = client.Do(req)
		require.Error(t, err)
		assert.True(t, model.IsKind(err, model.KindRateLimited))
		assert.Equal(t, 1, mock.GetTotalCallCount())
	})
}
