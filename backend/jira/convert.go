// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package jira

import (
	"encoding/json"

	"github.com/mattermost/mattermost-track/model"
)

func convertUser(u *user) *model.UserRef {
	if u == nil {
		return nil
	}
	return &model.UserRef{ID: u.AccountID, Login: u.AccountID, Name: u.DisplayName, Email: u.EmailAddress}
}

func (b *Backend) convertIssue(ji *issue) *model.Issue {
	f := &ji.Fields
	out := &model.Issue{
		ID:       ji.ID,
		Key:      ji.Key,
		Title:    f.Summary,
		Body:     textFromADF(f.Description),
		State:    model.StateOpen,
		Labels:   model.StringArray(f.Labels),
		Reporter: convertUser(f.Reporter),
		URL:      b.baseURL + "/browse/" + ji.Key,
		Created:  f.Created.ptr(),
		Updated:  f.Updated.ptr(),
	}
	if f.Status != nil {
		out.Status = f.Status.Name
		out.CustomFields = append(out.CustomFields, model.FieldValue{Name: "Status", Type: model.FieldState, Value: f.Status.Name})
		if f.Status.StatusCategory != nil && f.Status.StatusCategory.Key == "done" {
			out.State = model.StateClosed
			out.Closed = f.ResolutionDate.ptr()
		}
	}
	if f.Priority != nil {
		out.CustomFields = append(out.CustomFields, model.FieldValue{Name: "Priority", Type: model.FieldEnum, Value: f.Priority.Name})
	}
	if f.IssueType != nil {
		out.CustomFields = append(out.CustomFields, model.FieldValue{Name: "Type", Type: model.FieldEnum, Value: f.IssueType.Name})
	}
	if a := convertUser(f.Assignee); a != nil {
		out.Assignees = append(out.Assignees, *a)
		out.CustomFields = append(out.CustomFields, model.FieldValue{Name: "Assignee", Type: model.FieldUser, Value: a.Name})
	}
	if len(f.FixVersions) > 0 {
		out.Milestone = f.FixVersions[0].Name
	}
	if f.Project != nil {
		out.Project = &model.ProjectRef{ID: f.Project.ID, ShortName: f.Project.Key, Name: f.Project.Name}
	}
	if f.Parent != nil {
		out.Parent = f.Parent.Key
	}
	return out.Normalize()
}

func (b *Backend) convertProject(p *project) *model.Project {
	out := &model.Project{
		ID:          p.ID,
		ShortName:   p.Key,
		Name:        p.Name,
		Description: p.Description,
		URL:         b.baseURL + "/browse/" + p.Key,
	}
	if p.Lead != nil {
		out.Owner = p.Lead.DisplayName
	}
	return out
}

func convertComment(c *comment) *model.Comment {
	out := &model.Comment{
		ID:      c.ID,
		Body:    textFromADF(c.Body),
		Author:  convertUser(c.Author),
		Created: c.Created.ptr(),
		Updated: c.Updated.ptr(),
	}
	if len(c.Body) > 0 && c.Body[0] == '{' {
		out.Rich = json.RawMessage(c.Body)
	}
	return out
}

// convertLinks reports issue links plus the parent and subtask relations,
// which Jira keeps in separate fields.
func convertLinks(ji *issue) []*model.Link {
	links := []*model.Link{}
	for _, l := range ji.Fields.IssueLinks {
		link := &model.Link{ID: l.ID, Source: ji.Key, Type: l.Type.Name}
		switch {
		case l.OutwardIssue != nil:
			link.Target, link.TargetKey, link.TargetTitle = l.OutwardIssue.ID, l.OutwardIssue.Key, l.OutwardIssue.summary()
			link.Direction = model.DirectionOutward
		case l.InwardIssue != nil:
			link.Target, link.TargetKey, link.TargetTitle = l.InwardIssue.ID, l.InwardIssue.Key, l.InwardIssue.summary()
			link.Direction = model.DirectionInward
		default:
			continue
		}
		if l.Type.Inward == l.Type.Outward {
			link.Direction = model.DirectionBoth
		}
		links = append(links, link)
	}
	if p := ji.Fields.Parent; p != nil {
		links = append(links, &model.Link{
			Source: ji.Key, Target: p.ID, TargetKey: p.Key, TargetTitle: p.summary(),
			Type: model.LinkTypeSubtask, Direction: model.DirectionInward,
		})
	}
	for i := range ji.Fields.Subtasks {
		s := &ji.Fields.Subtasks[i]
		links = append(links, &model.Link{
			Source: ji.Key, Target: s.ID, TargetKey: s.Key, TargetTitle: s.summary(),
			Type: model.LinkTypeSubtask, Direction: model.DirectionOutward,
		})
	}
	return links
}
