// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package tracker_test

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
	"github.com/mattermost/mattermost-track/tracker/mocks"
)

func issues(from, n int) []*model.Issue {
	out := make([]*model.Issue, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &model.Issue{ID: fmt.Sprint(from + i)})
	}
	return out
}

func TestFetchAllIssues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctxInterface := reflect.TypeOf((*context.Context)(nil)).Elem()

	t.Run("Stops on a short page", func(t *testing.T) {
		b := mocks.NewMockBackend(ctrl)
		gomock.InOrder(
			b.EXPECT().SearchIssues(gomock.AssignableToTypeOf(ctxInterface), "state: open", 100, 0).Return(issues(0, 100), nil),
			b.EXPECT().SearchIssues(gomock.AssignableToTypeOf(ctxInterface), "state: open", 100, 100).Return(issues(100, 7), nil),
		)

		all, err := tracker.FetchAllIssues(context.Background(), b, "state: open")
		require.NoError(t, err)
		require.Len(t, all, 107)
	})

	t.Run("Honors the result cap", func(t *testing.T) {
		t.Setenv(tracker.MaxResultsEnv, "150")
		b := mocks.NewMockBackend(ctrl)
		gomock.InOrder(
			b.EXPECT().SearchIssues(gomock.AssignableToTypeOf(ctxInterface), "", 100, 0).Return(issues(0, 100), nil),
			b.EXPECT().SearchIssues(gomock.AssignableToTypeOf(ctxInterface), "", 50, 100).Return(issues(100, 50), nil),
		)

		all, err := tracker.FetchAllIssues(context.Background(), b, "")
		require.NoError(t, err)
		require.Len(t, all, 150)
	})

	t.Run("Propagates backend errors", func(t *testing.T) {
		b := mocks.NewMockBackend(ctrl)
		b.EXPECT().SearchIssues(gomock.Any(), "x", 100, 0).Return(nil, model.NewUnauthorized(""))

		_, err := tracker.FetchAllIssues(context.Background(), b, "x")
		require.True(t, model.IsKind(err, model.KindUnauthorized))
	})
}

func TestKnowledgeBaseOf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := tracker.KnowledgeBaseOf(mocks.NewMockBackend(ctrl))
	require.True(t, model.IsKind(err, model.KindUnsupported))
}

func TestMaxResults(t *testing.T) {
	t.Setenv(tracker.MaxResultsEnv, "not-a-number")
	require.Equal(t, 1000, tracker.MaxResults())
	t.Setenv(tracker.MaxResultsEnv, "25")
	require.Equal(t, 25, tracker.MaxResults())
}
