// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package jira

import (
	"context"
	"strings"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/transport"
)

const customFieldTypePrefix = "com.atlassian.jira.plugin.system.customfieldtypes:"

type fieldSchema struct {
	Type   string `json:"type"`
	Items  string `json:"items,omitempty"`
	Custom string `json:"custom,omitempty"`
}

type fieldDefinition struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Custom bool         `json:"custom"`
	Schema *fieldSchema `json:"schema"`
}

type createFieldRequest struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	SearcherKey string `json:"searcherKey"`
}

type countRequest struct {
	JQL string `json:"jql"`
}

type countResponse struct {
	Count int `json:"count"`
}

// customFieldTypes maps neutral field types onto Jira custom field type
// keys and their searchers. Jira has no state or period custom fields.
var customFieldTypes = map[model.FieldType][2]string{
	model.FieldEnum:      {"select", "multiselectsearcher"},
	model.FieldMultiEnum: {"multiselect", "multiselectsearcher"},
	model.FieldUser:      {"userpicker", "userpickergroupsearcher"},
	model.FieldText:      {"textarea", "textsearcher"},
	model.FieldInteger:   {"float", "exactnumber"},
	model.FieldFloat:     {"float", "exactnumber"},
	model.FieldDate:      {"datepicker", "daterange"},
}

// GetIssueCount asks for an approximate count, the only count the
// enhanced search API offers.
func (b *Backend) GetIssueCount(ctx context.Context, query string) (int, error) {
	jql := toJQL(query)
	if i := strings.Index(strings.ToUpper(jql), "ORDER BY"); i >= 0 {
		jql = strings.TrimSpace(jql[:i])
	}
	var res countResponse
	if err := b.client.Post(ctx, "/search/approximate-count", nil, countRequest{JQL: jql}, transport.Resource{}, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

// ListCustomFieldDefinitions lists custom fields only; system fields such
// as status are not admin-managed.
func (b *Backend) ListCustomFieldDefinitions(ctx context.Context) ([]*model.CustomFieldDefinition, error) {
	var list []fieldDefinition
	if err := b.client.Get(ctx, "/field", nil, transport.Resource{}, &list); err != nil {
		return nil, err
	}
	out := []*model.CustomFieldDefinition{}
	for i := range list {
		if list[i].Custom {
			out = append(out, convertFieldDefinition(&list[i]))
		}
	}
	return out, nil
}

func (b *Backend) CreateCustomField(ctx context.Context, in *model.CreateCustomField) (*model.CustomFieldDefinition, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	keys, ok := customFieldTypes[in.Type]
	if !ok {
		return nil, model.NewInvalidInput("type", "Jira has no "+string(in.Type)+" custom fields")
	}
	req := createFieldRequest{
		Name:        in.Name,
		Type:        customFieldTypePrefix + keys[0],
		SearcherKey: customFieldTypePrefix + keys[1],
	}
	var def fieldDefinition
	if err := b.client.Post(ctx, "/field", nil, req, transport.NamedResource("field "+in.Name), &def); err != nil {
		return nil, err
	}
	return convertFieldDefinition(&def), nil
}

// Select options live in per-field contexts rather than shared bundles.
func (b *Backend) ListBundles(ctx context.Context, bundleType model.BundleType) ([]*model.Bundle, error) {
	return nil, model.NewUnsupported("list_bundles")
}

func (b *Backend) CreateBundle(ctx context.Context, in *model.CreateBundle) (*model.Bundle, error) {
	return nil, model.NewUnsupported("create_bundle")
}

func (b *Backend) AddBundleValues(ctx context.Context, bundleType model.BundleType, bundleID string, values []*model.BundleValue) ([]*model.BundleValue, error) {
	return nil, model.NewUnsupported("add_bundle_values")
}

func convertFieldDefinition(d *fieldDefinition) *model.CustomFieldDefinition {
	out := &model.CustomFieldDefinition{ID: d.ID, Name: d.Name, Type: model.FieldUnknown}
	if d.Schema == nil {
		return out
	}
	out.TypeID = d.Schema.Custom
	if out.TypeID == "" {
		out.TypeID = d.Schema.Type
	}
	custom := strings.TrimPrefix(d.Schema.Custom, customFieldTypePrefix)
	for t, keys := range customFieldTypes {
		if custom == keys[0] && t != model.FieldInteger {
			out.Type = t
			return out
		}
	}
	if d.Schema.Type == "array" && d.Schema.Items != "" {
		out.Type = model.FieldMultiEnum
		return out
	}
	out.Type = model.ParseFieldType(d.Schema.Type)
	return out
}
