// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package youtrack

import (
	"context"
	"strings"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/transport"
)

const (
	fieldDefinitionFields = "id,name,fieldType(id,presentation),instances(id)"
	bundleFields          = "id,name,$type,values(id,name,description,isResolved,ordinal)"
	bundleValueFields     = "id,name,description,isResolved,ordinal"

	countAttempts = 5
)

// countRetryInterval spaces out polls while YouTrack is still counting.
var countRetryInterval = 500 * time.Millisecond

type fieldDefinition struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	FieldType fieldType `json:"fieldType"`
	Instances []idRef   `json:"instances"`
}

type createFieldRequest struct {
	Name      string `json:"name"`
	FieldType idRef  `json:"fieldType"`
}

type bundleValue struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsResolved  *bool  `json:"isResolved,omitempty"`
	Ordinal     *int   `json:"ordinal,omitempty"`
}

type bundle struct {
	ID     string        `json:"id,omitempty"`
	Name   string        `json:"name"`
	Type   string        `json:"$type,omitempty"`
	Values []bundleValue `json:"values,omitempty"`
}

type countRequest struct {
	Query string `json:"query"`
}

type countResponse struct {
	Count int `json:"count"`
}

// fieldTypeIDs maps neutral field types onto YouTrack field type ids.
var fieldTypeIDs = map[model.FieldType]string{
	model.FieldEnum:      "enum[1]",
	model.FieldMultiEnum: "enum[*]",
	model.FieldState:     "state[1]",
	model.FieldUser:      "user[1]",
	model.FieldText:      "text",
	model.FieldInteger:   "integer",
	model.FieldFloat:     "float",
	model.FieldDate:      "date",
	model.FieldPeriod:    "period",
}

// GetIssueCount polls the count endpoint, which answers -1 until the
// server has finished counting.
func (b *Backend) GetIssueCount(ctx context.Context, query string) (int, error) {
	req := countRequest{Query: strings.TrimSpace(query)}
	for attempt := 1; ; attempt++ {
		var resp countResponse
		if err := b.client.Post(ctx, "/issuesGetter/count", fields("count"), req, transport.Resource{}, &resp); err != nil {
			return 0, err
		}
		if resp.Count >= 0 {
			return resp.Count, nil
		}
		if attempt == countAttempts {
			return 0, model.NewAPIError(503, "issue count is still being computed")
		}
		mlog.Debug("Issue count not ready", mlog.Int("attempt", attempt))

		t := time.NewTimer(countRetryInterval)
		select {
		case <-ctx.Done():
			t.Stop()
			return 0, ctx.Err()
		case <-t.C:
		}
	}
}

func (b *Backend) ListCustomFieldDefinitions(ctx context.Context) ([]*model.CustomFieldDefinition, error) {
	out := []*model.CustomFieldDefinition{}
	for skip := 0; ; skip += pageSize {
		var page []fieldDefinition
		if err := b.client.Get(ctx, "/admin/customFieldSettings/customFields", paged(fieldDefinitionFields, pageSize, skip), transport.Resource{}, &page); err != nil {
			return nil, err
		}
		for i := range page {
			out = append(out, convertFieldDefinition(&page[i]))
		}
		if len(page) < pageSize {
			return out, nil
		}
	}
}

func (b *Backend) CreateCustomField(ctx context.Context, in *model.CreateCustomField) (*model.CustomFieldDefinition, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	typeID, ok := fieldTypeIDs[in.Type]
	if !ok {
		return nil, model.NewInvalidInput("type", "unsupported field type "+string(in.Type))
	}
	var def fieldDefinition
	req := createFieldRequest{Name: in.Name, FieldType: idRef{ID: typeID}}
	if err := b.client.Post(ctx, "/admin/customFieldSettings/customFields", fields(fieldDefinitionFields), req, transport.NamedResource("field "+in.Name), &def); err != nil {
		return nil, err
	}
	return convertFieldDefinition(&def), nil
}

func (b *Backend) ListBundles(ctx context.Context, bundleType model.BundleType) ([]*model.Bundle, error) {
	t, err := model.ParseBundleType(string(bundleType))
	if err != nil {
		return nil, err
	}
	out := []*model.Bundle{}
	for skip := 0; ; skip += pageSize {
		var page []bundle
		if err := b.client.Get(ctx, transport.Path("/admin/customFieldSettings/bundles/%s", string(t)), paged(bundleFields, pageSize, skip), transport.Resource{}, &page); err != nil {
			return nil, err
		}
		for i := range page {
			out = append(out, convertBundle(t, &page[i]))
		}
		if len(page) < pageSize {
			return out, nil
		}
	}
}

func (b *Backend) CreateBundle(ctx context.Context, in *model.CreateBundle) (*model.Bundle, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	t, _ := model.ParseBundleType(string(in.Type))
	req := bundle{Name: in.Name}
	for _, v := range in.Values {
		req.Values = append(req.Values, writeBundleValue(t, v))
	}
	var created bundle
	if err := b.client.Post(ctx, transport.Path("/admin/customFieldSettings/bundles/%s", string(t)), fields(bundleFields), req, transport.NamedResource("bundle "+in.Name), &created); err != nil {
		return nil, err
	}
	return convertBundle(t, &created), nil
}

// AddBundleValues posts the values one at a time and stops at the first
// failure.
func (b *Backend) AddBundleValues(ctx context.Context, bundleType model.BundleType, bundleID string, values []*model.BundleValue) ([]*model.BundleValue, error) {
	t, err := model.ParseBundleType(string(bundleType))
	if err != nil {
		return nil, err
	}
	if err = model.ValidateBundleValues(values); err != nil {
		return nil, err
	}
	path := transport.Path("/admin/customFieldSettings/bundles/%s/%s/values", string(t), bundleID)
	out := make([]*model.BundleValue, 0, len(values))
	for _, v := range values {
		var created bundleValue
		if err := b.client.Post(ctx, path, fields(bundleValueFields), writeBundleValue(t, v), transport.NamedResource("bundle "+bundleID), &created); err != nil {
			return nil, err
		}
		out = append(out, convertBundleValue(&created))
	}
	return out, nil
}

func writeBundleValue(t model.BundleType, v *model.BundleValue) bundleValue {
	w := bundleValue{Name: v.Name, Description: v.Description, Ordinal: v.Ordinal}
	if t == model.BundleState {
		resolved := v.Resolved != nil && *v.Resolved
		w.IsResolved = &resolved
	}
	return w
}

func convertFieldDefinition(d *fieldDefinition) *model.CustomFieldDefinition {
	return &model.CustomFieldDefinition{
		ID:        d.ID,
		Name:      d.Name,
		Type:      schemaFieldType(d.FieldType.ID),
		TypeID:    d.FieldType.ID,
		Instances: len(d.Instances),
	}
}

func convertBundle(t model.BundleType, in *bundle) *model.Bundle {
	out := &model.Bundle{ID: in.ID, Name: in.Name, Type: t, Values: []*model.BundleValue{}}
	for i := range in.Values {
		out.Values = append(out.Values, convertBundleValue(&in.Values[i]))
	}
	return out
}

func convertBundleValue(v *bundleValue) *model.BundleValue {
	return &model.BundleValue{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Resolved:    v.IsResolved,
		Ordinal:     v.Ordinal,
	}
}
