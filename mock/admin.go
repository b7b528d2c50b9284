// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package mock

import (
	"context"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/transport"
)

// issueCount is the response shape of get_issue_count mappings.
type issueCount struct {
	Count int `json:"count"`
}

func (b *Backend) GetIssueCount(ctx context.Context, query string) (int, error) {
	var res issueCount
	if err := b.respond(ctx, call{op: "get_issue_count", args: args("query", query)}, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

func (b *Backend) ListCustomFieldDefinitions(ctx context.Context) ([]*model.CustomFieldDefinition, error) {
	defs := []*model.CustomFieldDefinition{}
	if err := b.respond(ctx, call{op: "list_custom_field_definitions", args: args()}, &defs); err != nil {
		return nil, err
	}
	return defs, nil
}

func (b *Backend) CreateCustomField(ctx context.Context, in *model.CreateCustomField) (*model.CustomFieldDefinition, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var def model.CustomFieldDefinition
	c := call{op: "create_custom_field", args: args("name", in.Name, "type", string(in.Type)), body: jsonBody(in), res: transport.NamedResource("field " + in.Name)}
	if err := b.respond(ctx, c, &def); err != nil {
		return nil, err
	}
	return &def, nil
}

func (b *Backend) ListBundles(ctx context.Context, bundleType model.BundleType) ([]*model.Bundle, error) {
	t, err := model.ParseBundleType(string(bundleType))
	if err != nil {
		return nil, err
	}
	bundles := []*model.Bundle{}
	if err := b.respond(ctx, call{op: "list_bundles", args: args("bundle_type", string(t))}, &bundles); err != nil {
		return nil, err
	}
	return bundles, nil
}

func (b *Backend) CreateBundle(ctx context.Context, in *model.CreateBundle) (*model.Bundle, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := args("name", in.Name, "bundle_type", string(in.Type))
	names := make([]string, 0, len(in.Values))
	for _, v := range in.Values {
		names = append(names, v.Name)
	}
	setListIf(a, "values", names)

	var created model.Bundle
	c := call{op: "create_bundle", args: a, body: jsonBody(in), res: transport.NamedResource("bundle " + in.Name)}
	if err := b.respond(ctx, c, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (b *Backend) AddBundleValues(ctx context.Context, bundleType model.BundleType, bundleID string, values []*model.BundleValue) ([]*model.BundleValue, error) {
	t, err := model.ParseBundleType(string(bundleType))
	if err != nil {
		return nil, err
	}
	if err = model.ValidateBundleValues(values); err != nil {
		return nil, err
	}
	out := make([]*model.BundleValue, 0, len(values))
	for _, v := range values {
		a := args("bundle_type", string(t), "bundle_id", bundleID, "name", v.Name)
		var created model.BundleValue
		c := call{op: "add_bundle_values", args: a, body: jsonBody(v), res: transport.NamedResource("bundle " + bundleID)}
		if err := b.respond(ctx, c, &created); err != nil {
			return nil, err
		}
		out = append(out, &created)
	}
	return out, nil
}
