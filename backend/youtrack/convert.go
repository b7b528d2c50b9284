// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package youtrack

import (
	"strconv"
	"strings"

	"github.com/mattermost/mattermost-track/model"
)

const (
	stateField     = "State"
	assigneeField  = "Assignee"
	priorityField  = "Priority"
	typeField      = "Type"
	milestoneField = "Fix versions"

	defaultProjectFieldType = "EnumProjectCustomField"
	defaultBundleType       = "EnumBundle"
)

func convertUser(u *user) *model.UserRef {
	if u == nil || (u.Login == "" && u.ID == "") {
		return nil
	}
	return &model.UserRef{ID: u.ID, Login: u.Login, Name: u.FullName, Email: u.Email}
}

// valueName flattens a decoded field value to its display text.
func valueName(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case map[string]interface{}:
		for _, key := range []string{"name", "fullName", "login", "text", "presentation"} {
			if s, ok := val[key].(string); ok && s != "" {
				return s
			}
		}
	case []interface{}:
		names := make([]string, 0, len(val))
		for _, item := range val {
			if n := valueName(item); n != "" {
				names = append(names, n)
			}
		}
		return strings.Join(names, ", ")
	}
	return ""
}

func fieldValueOf(f *issueField) interface{} {
	switch val := f.Value.(type) {
	case []interface{}:
		names := make([]string, 0, len(val))
		for _, item := range val {
			if n := valueName(item); n != "" {
				names = append(names, n)
			}
		}
		return names
	case float64:
		if strings.HasPrefix(f.Type, "Date") {
			return Millis(val).ptr()
		}
		return val
	case nil:
		return nil
	}
	return valueName(f.Value)
}

// issueFieldType maps an issue field $type such as SingleEnumIssueCustomField.
func issueFieldType(f *issueField) model.FieldType {
	kind := strings.TrimSuffix(f.Type, "IssueCustomField")
	if kind == "Simple" {
		switch v := f.Value.(type) {
		case float64:
			if v == float64(int64(v)) {
				return model.FieldInteger
			}
			return model.FieldFloat
		case string:
			return model.FieldText
		}
		return model.FieldUnknown
	}
	return model.ParseFieldType(kind)
}

// schemaFieldType maps a field type id such as enum[1], user[*] or integer.
func schemaFieldType(id string) model.FieldType {
	if strings.HasSuffix(id, "[*]") {
		return model.FieldMultiEnum
	}
	if t := model.ParseFieldType(id); t != model.FieldUnknown {
		return t
	}
	if strings.HasPrefix(id, "version") || strings.HasPrefix(id, "ownedField") || strings.HasPrefix(id, "build") {
		return model.FieldEnum
	}
	return model.FieldUnknown
}

func issueNumber(idReadable string) int {
	if i := strings.LastIndex(idReadable, "-"); i >= 0 {
		if n, err := strconv.Atoi(idReadable[i+1:]); err == nil {
			return n
		}
	}
	return 0
}

func tagNames(tags []issueTag) model.StringArray {
	names := make(model.StringArray, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

func (b *Backend) convertIssue(yi *issue) *model.Issue {
	out := &model.Issue{
		ID:       yi.ID,
		Key:      yi.IDReadable,
		Number:   issueNumber(yi.IDReadable),
		Title:    yi.Summary,
		Body:     yi.Description,
		State:    model.StateOpen,
		Labels:   tagNames(yi.Tags),
		Reporter: convertUser(yi.Reporter),
		URL:      b.baseURL + "/issue/" + yi.IDReadable,
		Created:  yi.Created.ptr(),
		Updated:  yi.Updated.ptr(),
	}
	if yi.Project != nil {
		out.Project = &model.ProjectRef{ID: yi.Project.ID, ShortName: yi.Project.ShortName, Name: yi.Project.Name}
	}

	hasState := false
	for i := range yi.CustomFields {
		f := &yi.CustomFields[i]
		out.CustomFields = append(out.CustomFields, model.FieldValue{Name: f.Name, Type: issueFieldType(f), Value: fieldValueOf(f)})

		switch {
		case strings.HasPrefix(f.Type, "State"):
			hasState = true
			if v, ok := f.Value.(map[string]interface{}); ok {
				out.Status = valueName(v)
				if resolved, _ := v["isResolved"].(bool); resolved {
					out.State = model.StateClosed
				}
			}
		case strings.HasSuffix(f.Type, "UserIssueCustomField") && strings.EqualFold(f.Name, assigneeField):
			out.Assignees = append(out.Assignees, usersOf(f.Value)...)
		case strings.EqualFold(f.Name, milestoneField):
			if names, ok := fieldValueOf(f).([]string); ok && len(names) > 0 {
				out.Milestone = names[0]
			} else if s, ok := fieldValueOf(f).(string); ok {
				out.Milestone = s
			}
		}
	}
	if !hasState && yi.Resolved != 0 {
		out.State = model.StateClosed
	}
	if out.State.IsClosed() {
		out.Closed = yi.Resolved.ptr()
	}
	return out.Normalize()
}

func usersOf(v interface{}) []model.UserRef {
	var items []interface{}
	switch val := v.(type) {
	case []interface{}:
		items = val
	case map[string]interface{}:
		items = []interface{}{val}
	}
	users := make([]model.UserRef, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		login, _ := m["login"].(string)
		name, _ := m["fullName"].(string)
		if name == "" {
			name, _ = m["name"].(string)
		}
		users = append(users, model.UserRef{ID: login, Login: login, Name: name})
	}
	return users
}

func (b *Backend) convertProject(p *project) *model.Project {
	out := &model.Project{
		ID:          p.ID,
		ShortName:   p.ShortName,
		Name:        p.Name,
		Description: p.Description,
		URL:         b.baseURL + "/projects/" + p.ShortName,
	}
	if p.Leader != nil {
		out.Owner = p.Leader.Login
	}
	return out
}

func convertProjectField(pf *projectField) *model.CustomField {
	out := &model.CustomField{
		ID:        pf.ID,
		Type:      model.FieldUnknown,
		Required:  !pf.CanBeEmpty,
		EmptyText: pf.EmptyFieldText,
	}
	if pf.Field != nil {
		out.Name = pf.Field.Name
		if pf.Field.FieldType != nil {
			out.Type = schemaFieldType(pf.Field.FieldType.ID)
		}
	}
	if pf.Bundle != nil {
		out.Bundle = &model.BundleRef{ID: pf.Bundle.ID, Name: pf.Bundle.Name, Type: pf.Bundle.Type}
		for _, v := range pf.Bundle.Values {
			out.Values = append(out.Values, v.Name)
		}
	}
	return out
}

func convertTag(t *issueTag) *model.Tag {
	out := &model.Tag{ID: t.ID, Name: t.Name}
	if t.Color != nil {
		out.Color = model.CanonicalColor(t.Color.Background)
	}
	return out
}

func convertLinkType(lt *linkType) *model.LinkType {
	return &model.LinkType{
		ID:       lt.ID,
		Name:     lt.Name,
		Outward:  lt.SourceToTarget,
		Inward:   lt.TargetToSource,
		Directed: lt.Directed,
	}
}

// convertLinks flattens the per-type link groups into one entry per linked
// issue.
func convertLinks(source string, groups []issueLink) []*model.Link {
	links := []*model.Link{}
	for _, g := range groups {
		dir, err := model.ParseDirection(g.Direction)
		if err != nil {
			dir = model.DirectionBoth
		}
		for _, li := range g.Issues {
			links = append(links, &model.Link{
				ID:          g.ID,
				Source:      source,
				Target:      li.ID,
				TargetKey:   li.IDReadable,
				TargetTitle: li.Summary,
				Type:        g.LinkType.Name,
				Direction:   dir,
			})
		}
	}
	return links
}

func convertComment(c *comment) *model.Comment {
	return &model.Comment{
		ID:      c.ID,
		Body:    c.Text,
		Author:  convertUser(c.Author),
		Created: c.Created.ptr(),
		Updated: c.Updated.ptr(),
	}
}

func (b *Backend) convertArticle(a *article) *model.Article {
	out := &model.Article{
		ID:          a.ID,
		Key:         a.IDReadable,
		Title:       a.Summary,
		Content:     a.Content,
		HasChildren: a.HasChildren,
		Tags:        tagNames(a.Tags),
		Reporter:    convertUser(a.Reporter),
		Created:     a.Created.ptr(),
		Updated:     a.Updated.ptr(),
	}
	if a.IDReadable != "" {
		out.URL = b.baseURL + "/articles/" + a.IDReadable
	}
	if a.Project != nil {
		out.Project = &model.ProjectRef{ID: a.Project.ID, ShortName: a.Project.ShortName, Name: a.Project.Name}
	}
	if a.ParentArticle != nil {
		out.ParentID = a.ParentArticle.ID
	}
	return out
}

func convertAttachment(a *attachment) *model.Attachment {
	return &model.Attachment{
		ID:       a.ID,
		Name:     a.Name,
		Size:     a.Size,
		MimeType: a.MimeType,
		URL:      a.URL,
		Created:  a.Created.ptr(),
	}
}

// projectFieldType picks the project field $type for a field type name.
func projectFieldType(fieldType string) string {
	if fieldType == "" {
		return defaultProjectFieldType
	}
	if strings.HasSuffix(fieldType, "ProjectCustomField") {
		return fieldType
	}
	switch schemaFieldType(fieldType) {
	case model.FieldState:
		return "StateProjectCustomField"
	case model.FieldUser:
		return "UserProjectCustomField"
	case model.FieldText:
		return "TextProjectCustomField"
	case model.FieldPeriod:
		return "PeriodProjectCustomField"
	case model.FieldInteger, model.FieldFloat, model.FieldDate:
		return "SimpleProjectCustomField"
	}
	if strings.HasPrefix(fieldType, "version") {
		return "VersionProjectCustomField"
	}
	return defaultProjectFieldType
}

// bundleType picks the bundle $type from an explicit bundle kind or, when
// none is given, from the field type.
func bundleType(kind, fieldType string) string {
	if strings.HasSuffix(kind, "Bundle") {
		return kind
	}
	from := kind
	if from == "" {
		from = fieldType
	}
	switch lower := strings.ToLower(from); {
	case strings.HasPrefix(lower, "version"):
		return "VersionBundle"
	case strings.HasPrefix(lower, "owned"):
		return "OwnedBundle"
	case strings.HasPrefix(lower, "build"):
		return "BuildBundle"
	}
	switch schemaFieldType(from) {
	case model.FieldState:
		return "StateBundle"
	case model.FieldUser:
		return "UserBundle"
	}
	return defaultBundleType
}
