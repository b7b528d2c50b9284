// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package github

import (
	"context"
	"net/http"
	"net/url"
	"reflect"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/go-github/v39/github"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-track/backend/github/mocks"
	"github.com/mattermost/mattermost-track/model"
)

const (
	testOwner = "mattermosttest"
	testRepo  = "track"
)

func notFound() error {
	return &github.ErrorResponse{
		Response: &http.Response{
			StatusCode: http.StatusNotFound,
			Header:     http.Header{},
			Request:    &http.Request{Method: http.MethodGet, URL: &url.URL{Path: "/repos"}},
		},
		Message: "Not Found",
	}
}

func newTestBackend(ctrl *gomock.Controller) (*Backend, *mocks.MockIssuesService, *mocks.MockSearchService, *mocks.MockRepositoriesService) {
	is := mocks.NewMockIssuesService(ctrl)
	ss := mocks.NewMockSearchService(ctrl)
	rs := mocks.NewMockRepositoriesService(ctrl)
	client := &Client{Issues: is, Search: ss, Repositories: rs}
	return New(client, testOwner, testRepo), is, ss, rs
}

func TestGetIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctxInterface := reflect.TypeOf((*context.Context)(nil)).Elem()
	b, is, _, _ := newTestBackend(ctrl)
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("Converts the issue", func(t *testing.T) {
		is.EXPECT().Get(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 42).Times(1).Return(&github.Issue{
			ID:        github.Int64(1001),
			Number:    github.Int(42),
			Title:     github.String("Demo"),
			State:     github.String("open"),
			Labels:    []*github.Label{{Name: github.String("bug")}},
			Assignee:  &github.User{ID: github.Int64(7), Login: github.String("octocat")},
			User:      &github.User{ID: github.Int64(8), Login: github.String("reporter")},
			CreatedAt: &created,
			ClosedAt:  &created,
		}, nil, nil)

		issue, err := b.GetIssue(context.Background(), "#42")
		require.NoError(t, err)
		require.Equal(t, "1001", issue.ID)
		require.Equal(t, "mattermosttest/track#42", issue.Key)
		require.Equal(t, 42, issue.Number)
		require.Equal(t, model.StateOpen, issue.State)
		require.Equal(t, model.StringArray{"bug"}, issue.Labels)
		require.Equal(t, "octocat", issue.Assignees[0].Login)
		require.Equal(t, "reporter", issue.Reporter.Login)
		require.Nil(t, issue.Closed)
	})

	t.Run("Pull requests are not issues", func(t *testing.T) {
		is.EXPECT().Get(gomock.AssignableToTypeOf(ctxInterface), "other", "repo", 7).Times(1).Return(&github.Issue{
			Number:           github.Int(7),
			PullRequestLinks: &github.PullRequestLinks{URL: github.String("https://api.github.com/pulls/7")},
		}, nil, nil)

		_, err := b.GetIssue(context.Background(), "other/repo#7")
		require.True(t, model.IsKind(err, model.KindIssueNotFound))
	})

	t.Run("Missing issue", func(t *testing.T) {
		is.EXPECT().Get(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 99).Times(1).Return(nil, nil, notFound())

		_, err := b.GetIssue(context.Background(), "99")
		require.Error(t, err)
		require.Equal(t, "Issue not found: 99", err.Error())
	})

	t.Run("Malformed id", func(t *testing.T) {
		_, err := b.GetIssue(context.Background(), "MISSING")
		require.True(t, model.IsKind(err, model.KindInvalidInput))
	})
}

func TestSearchIssues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctxInterface := reflect.TypeOf((*context.Context)(nil)).Elem()
	b, _, ss, _ := newTestBackend(ctrl)

	ss.EXPECT().Issues(gomock.AssignableToTypeOf(ctxInterface), "repo:mattermosttest/track label:bug is:issue", &github.SearchOptions{
		ListOptions: github.ListOptions{Page: 2, PerPage: 10},
	}).Times(1).Return(&github.IssuesSearchResult{
		Issues: []*github.Issue{
			{Number: github.Int(1), Title: github.String("One"), State: github.String("open")},
			{Number: github.Int(2), PullRequestLinks: &github.PullRequestLinks{}},
			{Number: github.Int(3), Title: github.String("Three"), State: github.String("closed"),
				RepositoryURL: github.String("https://api.github.com/repos/acme/widgets")},
		},
	}, &github.Response{}, nil)

	issues, err := b.SearchIssues(context.Background(), "label:bug", 10, 10)
	require.NoError(t, err)
	require.Len(t, issues, 2)
	require.Equal(t, "mattermosttest/track#1", issues[0].Key)
	require.Equal(t, "acme/widgets#3", issues[1].Key)
	require.Equal(t, model.StateClosed, issues[1].State)
}

func TestQualifyQuery(t *testing.T) {
	b := New(&Client{}, testOwner, testRepo)
	require.Equal(t, "repo:mattermosttest/track is:issue", b.qualifyQuery(""))
	require.Equal(t, "repo:acme/x is:open is:issue", b.qualifyQuery("repo:acme/x is:open"))
	require.Equal(t, "repo:mattermosttest/track is:pr", b.qualifyQuery("is:pr"))
}

func TestResolveProjectID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctxInterface := reflect.TypeOf((*context.Context)(nil)).Elem()
	b, _, _, rs := newTestBackend(ctrl)

	t.Run("Numeric ids are returned as is", func(t *testing.T) {
		id, err := b.ResolveProjectID(context.Background(), "77945341")
		require.NoError(t, err)
		require.Equal(t, "77945341", id)
	})

	t.Run("Repository path resolves to its id", func(t *testing.T) {
		rs.EXPECT().Get(gomock.AssignableToTypeOf(ctxInterface), "acme", "widgets").Times(1).
			Return(&github.Repository{ID: github.Int64(77945341)}, nil, nil)

		id, err := b.ResolveProjectID(context.Background(), "acme/widgets")
		require.NoError(t, err)
		require.Equal(t, "77945341", id)
	})

	t.Run("Bare name uses the configured owner", func(t *testing.T) {
		rs.EXPECT().Get(gomock.AssignableToTypeOf(ctxInterface), testOwner, "nope").Times(1).Return(nil, nil, notFound())

		_, err := b.ResolveProjectID(context.Background(), "nope")
		require.Equal(t, "Project not found: nope", err.Error())
	})
}

func TestTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctxInterface := reflect.TypeOf((*context.Context)(nil)).Elem()
	b, is, _, _ := newTestBackend(ctrl)

	for _, input := range []string{"fc2929", "#fc2929", "FC2929"} {
		t.Run("Color "+input+" is canonicalized", func(t *testing.T) {
			is.EXPECT().CreateLabel(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, &github.Label{
				Name:  github.String("urgent"),
				Color: github.String("fc2929"),
			}).Times(1).Return(&github.Label{Name: github.String("urgent"), Color: github.String("fc2929")}, nil, nil)

			tag, err := b.CreateTag(context.Background(), &model.TagInput{Name: "urgent", Color: input})
			require.NoError(t, err)
			require.Equal(t, "fc2929", tag.Color)
		})
	}

	t.Run("Default color", func(t *testing.T) {
		is.EXPECT().CreateLabel(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, &github.Label{
			Name:  github.String("plain"),
			Color: github.String(model.DefaultTagColor),
		}).Times(1).Return(&github.Label{Name: github.String("plain"), Color: github.String("EDEDED")}, nil, nil)

		tag, err := b.CreateTag(context.Background(), &model.TagInput{Name: "plain"})
		require.NoError(t, err)
		require.Equal(t, "ededed", tag.Color)
	})

	t.Run("List reports canonical colors", func(t *testing.T) {
		is.EXPECT().ListLabels(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, &github.ListOptions{PerPage: 100}).Times(1).
			Return([]*github.Label{{Name: github.String("urgent"), Color: github.String("FC2929")}}, &github.Response{}, nil)

		tags, err := b.ListTags(context.Background())
		require.NoError(t, err)
		require.Len(t, tags, 1)
		require.Equal(t, "fc2929", tags[0].Color)
	})

	t.Run("Rename by current name", func(t *testing.T) {
		is.EXPECT().EditLabel(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, "urgent", &github.Label{
			Name: github.String("critical"),
		}).Times(1).Return(&github.Label{Name: github.String("critical"), Color: github.String("fc2929")}, nil, nil)

		tag, err := b.UpdateTag(context.Background(), "urgent", &model.TagInput{Name: "critical"})
		require.NoError(t, err)
		require.Equal(t, "critical", tag.Name)
	})
}

func TestUpdateIssue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctxInterface := reflect.TypeOf((*context.Context)(nil)).Elem()
	b, is, _, _ := newTestBackend(ctrl)
	now := time.Now()

	t.Run("Only supplied fields are sent", func(t *testing.T) {
		closed := model.StateClosed
		is.EXPECT().Edit(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 5, &github.IssueRequest{
			State: github.String("closed"),
		}).Times(1).Return(&github.Issue{
			Number:    github.Int(5),
			Title:     github.String("Unchanged"),
			State:     github.String("closed"),
			UpdatedAt: &now,
		}, nil, nil)

		issue, err := b.UpdateIssue(context.Background(), "5", &model.UpdateIssue{State: &closed})
		require.NoError(t, err)
		require.Equal(t, "Unchanged", issue.Title)
		require.Equal(t, model.StateClosed, issue.State)
		require.NotNil(t, issue.Closed)
	})

	t.Run("Custom states are rejected", func(t *testing.T) {
		custom := model.State("In Review")
		_, err := b.UpdateIssue(context.Background(), "5", &model.UpdateIssue{State: &custom})
		require.True(t, model.IsKind(err, model.KindInvalidInput))
	})
}

func TestEmulatedLinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctxInterface := reflect.TypeOf((*context.Context)(nil)).Elem()
	b, is, _, _ := newTestBackend(ctrl)

	is.EXPECT().CreateComment(gomock.AssignableToTypeOf(ctxInterface), testOwner, testRepo, 3, &github.IssueComment{
		Body: github.String("Subtask of #1"),
	}).Times(1).Return(&github.IssueComment{ID: github.Int64(1)}, nil, nil)

	require.NoError(t, b.LinkSubtask(context.Background(), "3", "#1"))
	require.True(t, model.IsKind(b.DeleteIssue(context.Background(), "3"), model.KindUnsupported))
}

func TestGetIssueCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctxInterface := reflect.TypeOf((*context.Context)(nil)).Elem()
	b, _, ss, _ := newTestBackend(ctrl)

	ss.EXPECT().Issues(gomock.AssignableToTypeOf(ctxInterface), "repo:mattermosttest/track is:open is:issue", &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	}).Times(1).Return(&github.IssuesSearchResult{Total: github.Int(31), Issues: []*github.Issue{{Number: github.Int(1)}}}, &github.Response{}, nil)

	n, err := b.GetIssueCount(context.Background(), "is:open")
	require.NoError(t, err)
	require.Equal(t, 31, n)

	_, err = b.ListBundles(context.Background(), model.BundleEnum)
	require.True(t, model.IsKind(err, model.KindUnsupported))
}
