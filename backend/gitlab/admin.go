// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package gitlab

import (
	"context"

	"github.com/xanzy/go-gitlab"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/transport"
)

// GetIssueCount reads X-Total from a one-item page. GitLab drops the header
// past 10,000 matches.
func (b *Backend) GetIssueCount(ctx context.Context, query string) (int, error) {
	opts, project := searchOptions(query)
	project, err := b.projectFor(project)
	if err != nil {
		return 0, err
	}
	opts.PerPage = 1
	issues, resp, err := b.client.Issues.ListProjectIssues(project, opts, gitlab.WithContext(ctx))
	if err != nil {
		return 0, mapError(err, transport.ProjectResource(project))
	}
	if resp == nil || (resp.TotalItems == 0 && len(issues) > 0) {
		return 0, model.NewUnsupported("get_issue_count")
	}
	return resp.TotalItems, nil
}

// Projects have no custom fields; labels, milestones and weights cover them.
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
