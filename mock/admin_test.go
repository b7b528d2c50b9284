// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattermost/mattermost-track/model"
)

const adminManifest = `
[[responses]]
method = "get_issue_count"
args = { query = "*" }
file = "count.json"

[[responses]]
method = "list_custom_field_definitions"
file = "fields.json"

[[responses]]
method = "create_custom_field"
args = { name = "Stage", type = "state" }
file = "field_stage.json"

[[responses]]
method = "list_bundles"
args = { bundle_type = "state" }
file = "bundles.json"

[[responses]]
method = "create_bundle"
args = { name = "Stage values", bundle_type = "state", values = ["Develop", "Done"] }
file = "bundle.json"

[[responses]]
method = "add_bundle_values"
args = { bundle_id = "71-2", name = "Review" }
file = "value_review.json"

[[responses]]
method = "add_bundle_values"
args = { bundle_id = "71-2", name = "QA" }
file = "value_qa.json"
`

var adminResponses = map[string]string{
	"count.json":        `{"count": 7}`,
	"fields.json":       `[{"id": "58-1", "name": "Priority", "type": "enum", "instances": 3}]`,
	"field_stage.json":  `{"id": "58-2", "name": "Stage", "type": "state"}`,
	"bundles.json":      `[{"id": "71-1", "name": "States", "type": "state", "values": [{"id": "72-1", "name": "Open"}]}]`,
	"bundle.json":       `{"id": "71-2", "name": "Stage values", "type": "state", "values": [{"name": "Develop"}, {"name": "Done", "resolved": true}]}`,
	"value_review.json": `{"id": "72-5", "name": "Review"}`,
	"value_qa.json":     `{"id": "72-6", "name": "QA"}`,
}

func TestAdminOperations(t *testing.T) {
	b, err := New(writeScenario(t, adminManifest, adminResponses))
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("Counts issues", func(t *testing.T) {
		n, err := b.GetIssueCount(ctx, "project: PROJ #Unresolved")
		require.NoError(t, err)
		assert.Equal(t, 7, n)
	})

	t.Run("Lists and creates field definitions", func(t *testing.T) {
		defs, err := b.ListCustomFieldDefinitions(ctx)
		require.NoError(t, err)
		require.Len(t, defs, 1)
		assert.Equal(t, 3, defs[0].Instances)

		def, err := b.CreateCustomField(ctx, &model.CreateCustomField{Name: "Stage", Type: model.FieldState})
		require.NoError(t, err)
		assert.Equal(t, "58-2", def.ID)
	})

	t.Run("Creates a bundle and extends it", func(t *testing.T) {
		bundle, err := b.CreateBundle(ctx, &model.CreateBundle{
			Name:   "Stage values",
			Type:   model.BundleState,
			Values: model.NewBundleValues(model.BundleState, []string{"Develop", "Done"}, []string{"Done"}),
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"Develop", "Done"}, bundle.ValueNames())

		added, err := b.AddBundleValues(ctx, model.BundleState, bundle.ID, model.NewBundleValues(model.BundleState, []string{"Review", "QA"}, nil))
		require.NoError(t, err)
		require.Len(t, added, 2)
		assert.Equal(t, "72-5", added[0].ID)
		assert.Equal(t, "72-6", added[1].ID)
	})

	t.Run("Validates before logging", func(t *testing.T) {
		before := len(readLog(t, b))
		_, err := b.ListBundles(ctx, "colors")
		assert.True(t, model.IsKind(err, model.KindInvalidInput))
		_, err = b.AddBundleValues(ctx, model.BundleEnum, "71-2", nil)
		assert.True(t, model.IsKind(err, model.KindInvalidInput))
		assert.Len(t, readLog(t, b), before)
	})

	t.Run("Logs the bundle arguments", func(t *testing.T) {
		var ops []string
		for _, e := range readLog(t, b) {
			ops = append(ops, e.Op)
			if e.Op == "create_bundle" {
				assert.Equal(t, "state", e.Args["bundle_type"])
				assert.Equal(t, []interface{}{"Develop", "Done"}, e.Args["values"])
			}
		}
		assert.Equal(t, []string{
			"get_issue_count",
			"list_custom_field_definitions",
			"create_custom_field",
			"create_bundle",
			"add_bundle_values",
			"add_bundle_values",
		}, ops)
	})
}
