// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package gitlab

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xanzy/go-gitlab"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/transport"
)

const (
	linkRelatesTo   = "relates_to"
	linkBlocks      = "blocks"
	linkIsBlockedBy = "is_blocked_by"
)

func issueKey(iid int) string {
	return "#" + strconv.Itoa(iid)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func convertIssueUser(id int, username, name string) model.UserRef {
	return model.UserRef{ID: strconv.Itoa(id), Login: username, Name: name}
}

func convertIssue(gi *gitlab.Issue) *model.Issue {
	issue := &model.Issue{
		ID:      strconv.Itoa(gi.ID),
		Key:     issueKey(gi.IID),
		Number:  gi.IID,
		Title:   gi.Title,
		Body:    gi.Description,
		State:   model.ParseState(gi.State),
		Labels:  model.StringArray(gi.Labels).Dedup(),
		URL:     gi.WebURL,
		Created: copyTime(gi.CreatedAt),
		Updated: copyTime(gi.UpdatedAt),
		Closed:  copyTime(gi.ClosedAt),
		Project: &model.ProjectRef{ID: strconv.Itoa(gi.ProjectID)},
	}
	if gi.Author != nil {
		reporter := convertIssueUser(gi.Author.ID, gi.Author.Username, gi.Author.Name)
		issue.Reporter = &reporter
	}
	for _, a := range gi.Assignees {
		issue.Assignees = append(issue.Assignees, convertIssueUser(a.ID, a.Username, a.Name))
	}
	if len(issue.Assignees) == 0 && gi.Assignee != nil {
		issue.Assignees = append(issue.Assignees, convertIssueUser(gi.Assignee.ID, gi.Assignee.Username, gi.Assignee.Name))
	}
	if gi.Milestone != nil {
		issue.Milestone = gi.Milestone.Title
	}
	return issue.Normalize()
}

func convertProject(p *gitlab.Project) *model.Project {
	project := &model.Project{
		ID:          strconv.Itoa(p.ID),
		ShortName:   p.PathWithNamespace,
		Name:        p.Name,
		Description: p.Description,
		URL:         p.WebURL,
	}
	if p.Namespace != nil {
		project.Owner = p.Namespace.FullPath
	}
	return project
}

func convertLabel(l *gitlab.Label) *model.Tag {
	return &model.Tag{
		ID:          strconv.Itoa(l.ID),
		Name:        l.Name,
		Color:       model.CanonicalColor(l.Color),
		Description: l.Description,
	}
}

func convertNote(n *gitlab.Note) *model.Comment {
	c := &model.Comment{
		ID:      strconv.Itoa(n.ID),
		Body:    n.Body,
		Created: copyTime(n.CreatedAt),
		Updated: copyTime(n.UpdatedAt),
		System:  n.System,
	}
	if n.Author.Username != "" {
		c.Author = &model.UserRef{
			ID:    strconv.Itoa(n.Author.ID),
			Login: n.Author.Username,
			Name:  n.Author.Name,
			Email: n.Author.Email,
		}
	}
	return c
}

func convertRelation(source string, r *IssueRelation) *model.Link {
	return &model.Link{
		ID:          strconv.Itoa(r.IssueLinkID),
		Source:      source,
		Target:      strconv.Itoa(r.IID),
		TargetKey:   issueKey(r.IID),
		TargetTitle: r.Title,
		Type:        r.LinkType,
		Direction:   linkDirection(r.LinkType),
	}
}

func linkDirection(linkType string) model.Direction {
	switch linkType {
	case linkBlocks:
		return model.DirectionOutward
	case linkIsBlockedBy:
		return model.DirectionInward
	}
	return model.DirectionBoth
}

// linkType folds the link names people type into GitLab's three link types.
// An inward direction flips blocking relations.
func linkType(name string, direction model.Direction) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.NewReplacer(" ", "_", "-", "_").Replace(n)

	t := linkRelatesTo
	switch {
	case n == linkIsBlockedBy, n == "blocked", n == "blocked_by", n == "required", n == "is_required_by":
		t = linkIsBlockedBy
	case n == linkBlocks, n == "block", n == "depend", n == "depends", n == "depends_on", n == "dependency":
		t = linkBlocks
	}

	if direction == model.DirectionInward {
		switch t {
		case linkBlocks:
			return linkIsBlockedBy
		case linkIsBlockedBy:
			return linkBlocks
		}
	}
	return t
}

func stateEvent(s model.State) (string, error) {
	switch {
	case s.IsOpen():
		return "reopen", nil
	case s.IsClosed():
		return "close", nil
	}
	return "", model.NewInvalidInput("state", "GitLab issues are either open or closed, got "+string(s))
}

func labelOptions(labels []string) gitlab.Labels {
	return gitlab.Labels(model.StringArray(labels).Dedup())
}

// mapError folds go-gitlab errors into the neutral taxonomy.
func mapError(err error, res transport.Resource) error {
	if err == nil {
		return nil
	}
	var respErr *gitlab.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return transport.MapStatus(respErr.Response.StatusCode, respErr.Response.Header, respErr.Body, res).WithCause(err)
	}
	return transport.MapRequestError(err)
}
