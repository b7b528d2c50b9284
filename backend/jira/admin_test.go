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
)

func TestGetIssueCount(t *testing.T) {
	b, mock := newTestBackend(t)
	mock.RegisterResponder("POST", testAPI+"/search/approximate-count", func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "project = PROJ AND (status = Open)", decodeBody(t, req)["jql"])
		return httpmock.NewStringResponse(200, `{"count":17}`), nil
	})

	n, err := b.GetIssueCount(context.Background(), "project = PROJ AND (status = Open) ORDER BY created DESC")
	require.NoError(t, err)
	assert.Equal(t, 17, n)
}

func TestCustomFieldDefinitions(t *testing.T) {
	b, mock := newTestBackend(t)
	ctx := context.Background()

	t.Run("Lists only custom fields", func(t *testing.T) {
		mock.RegisterResponder("GET", testAPI+"/field", httpmock.NewStringResponder(200, `[
			{"id":"status","name":"Status","custom":false,"schema":{"type":"status","system":"status"}},
			{"id":"customfield_10010","name":"Severity","custom":true,
			 "schema":{"type":"option","custom":"com.atlassian.jira.plugin.system.customfieldtypes:select","customId":10010}},
			{"id":"customfield_10011","name":"Reviewers","custom":true,
			 "schema":{"type":"array","items":"user","custom":"com.atlassian.jira.plugin.system.customfieldtypes:multiuserpicker"}},
			{"id":"customfield_10012","name":"Story points","custom":true,
			 "schema":{"type":"number","custom":"com.atlassian.jira.plugin.system.customfieldtypes:float"}}
		]`))

		defs, err := b.ListCustomFieldDefinitions(ctx)
		require.NoError(t, err)
		require.Len(t, defs, 3)
		assert.Equal(t, model.FieldEnum, defs[0].Type)
		assert.Equal(t, model.FieldMultiEnum, defs[1].Type)
		assert.Equal(t, model.FieldFloat, defs[2].Type)
		assert.Equal(t, "com.atlassian.jira.plugin.system.customfieldtypes:float", defs[2].TypeID)
	})

	t.Run("Creates a select field with its searcher", func(t *testing.T) {
		mock.RegisterResponder("POST", testAPI+"/field", func(req *http.Request) (*http.Response, error) {
			body := decodeBody(t, req)
			assert.Equal(t, "Severity", body["name"])
			assert.Equal(t, "com.atlassian.jira.plugin.system.customfieldtypes:select", body["type"])
			assert.Equal(t, "com.atlassian.jira.plugin.system.customfieldtypes:multiselectsearcher", body["searcherKey"])
			return httpmock.NewStringResponse(201, `{"id":"customfield_10020","name":"Severity","custom":true,
				"schema":{"type":"option","custom":"com.atlassian.jira.plugin.system.customfieldtypes:select"}}`), nil
		})

		def, err := b.CreateCustomField(ctx, &model.CreateCustomField{Name: "Severity", Type: model.FieldEnum})
		require.NoError(t, err)
		assert.Equal(t, "customfield_10020", def.ID)
		assert.Equal(t, model.FieldEnum, def.Type)
	})

	t.Run("Refuses state fields", func(t *testing.T) {
		_, err := b.CreateCustomField(ctx, &model.CreateCustomField{Name: "Stage", Type: model.FieldState})
		assert.True(t, model.IsKind(err, model.KindInvalidInput))
	})

	t.Run("Has no bundles", func(t *testing.T) {
		_, err := b.ListBundles(ctx, model.BundleEnum)
		assert.True(t, model.IsKind(err, model.KindUnsupported))
	})
}
