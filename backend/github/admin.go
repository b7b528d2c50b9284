// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package github

import (
	"context"

	"github.com/google/go-github/v39/github"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/transport"
)

// GetIssueCount reads the total of a one-item search page.
func (b *Backend) GetIssueCount(ctx context.Context, query string) (int, error) {
	res, _, err := b.client.Search.Issues(ctx, b.qualifyQuery(query), &github.SearchOptions{
		ListOptions: github.ListOptions{PerPage: 1},
	})
	if err != nil {
		return 0, mapError(err, transport.Resource{})
	}
	return res.GetTotal(), nil
}

// Repositories have no custom fields; labels and milestones cover them.
func (b *Backend) ListCustomFieldDefinitions(ctx context.Context) ([]*model.CustomFieldDefinition, error) {
	return nil, model.NewUnsupported("list_custom_field_definitions")
}

func (b *Backend) CreateCustomField(ctx context.Context, in *model.CreateCustomField) (*model.CustomFieldDefinition, error) {
	return nil, model.NewUnsupported("create_custom_field")
}

func (b *Backend) ListBundles(ctx context.Context, bundleType model.BundleType) ([]*model.Bundle, error) {
	return nil, model.NewUnsupported("list_bundles")
}

func (b *Backend) CreateBundle(ctx context.Context, in *model.CreateBundle) (*model.Bundle, error) {
	return nil, model.NewUnsupported("create_bundle")
}

func (b *Backend) AddBundleValues(ctx context.Context, bundleType model.BundleType, bundleID string, values []*model.BundleValue) ([]*model.BundleValue, error) {
	return nil, model.NewUnsupported("add_bundle_values")
}
