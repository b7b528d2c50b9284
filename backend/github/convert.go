// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package github

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/go-github/v39/github"
	"github.com/pkg/errors"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/transport"
)

func issueKey(owner, repo string, number int) string {
	return owner + "/" + repo + "#" + strconv.Itoa(number)
}

func convertUser(u *github.User) *model.UserRef {
	if u == nil {
		return nil
	}
	return &model.UserRef{
		ID:    strconv.FormatInt(u.GetID(), 10),
		Login: u.GetLogin(),
		Name:  u.GetName(),
		Email: u.GetEmail(),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

func convertIssue(owner, repo string, gi *github.Issue) *model.Issue {
	issue := &model.Issue{
		ID:            strconv.FormatInt(gi.GetID(), 10),
		Key:           issueKey(owner, repo, gi.GetNumber()),
		Number:        gi.GetNumber(),
		Title:         gi.GetTitle(),
		Body:          gi.GetBody(),
		State:         model.ParseState(gi.GetState()),
		Reporter:      convertUser(gi.User),
		IsPullRequest: gi.IsPullRequest(),
		URL:           gi.GetHTMLURL(),
		Created:       copyTime(gi.CreatedAt),
		Updated:       copyTime(gi.UpdatedAt),
		Closed:        copyTime(gi.ClosedAt),
		Project:       &model.ProjectRef{ShortName: owner + "/" + repo, Name: repo},
	}
	if gi.Repository != nil {
		issue.Project.ID = strconv.FormatInt(gi.Repository.GetID(), 10)
	}
	for _, l := range gi.Labels {
		issue.Labels = append(issue.Labels, l.GetName())
	}
	for _, a := range gi.Assignees {
		issue.Assignees = append(issue.Assignees, *convertUser(a))
	}
	if len(issue.Assignees) == 0 && gi.Assignee != nil {
		issue.Assignees = append(issue.Assignees, *convertUser(gi.Assignee))
	}
	if gi.Milestone != nil {
		issue.Milestone = gi.Milestone.GetTitle()
	}
	return issue.Normalize()
}

func convertRepository(r *github.Repository) *model.Project {
	return &model.Project{
		ID:          strconv.FormatInt(r.GetID(), 10),
		ShortName:   r.GetFullName(),
		Name:        r.GetName(),
		Description: r.GetDescription(),
		Owner:       r.GetOwner().GetLogin(),
		URL:         r.GetHTMLURL(),
	}
}

func convertLabel(l *github.Label) *model.Tag {
	return &model.Tag{
		ID:          strconv.FormatInt(l.GetID(), 10),
		Name:        l.GetName(),
		Color:       model.CanonicalColor(l.GetColor()),
		Description: l.GetDescription(),
	}
}

func convertComment(c *github.IssueComment) *model.Comment {
	return &model.Comment{
		ID:      strconv.FormatInt(c.GetID(), 10),
		Body:    c.GetBody(),
		Author:  convertUser(c.User),
		Created: copyTime(c.CreatedAt),
		Updated: copyTime(c.UpdatedAt),
	}
}

// issueState maps the neutral state onto the two states GitHub knows.
func issueState(s model.State) (string, error) {
	switch {
	case s.IsOpen():
		return "open", nil
	case s.IsClosed():
		return "closed", nil
	}
	return "", model.NewInvalidInput("state", "GitHub issues are either open or closed, got "+string(s))
}

// mapError folds go-github errors into the neutral taxonomy.
func mapError(err error, res transport.Resource) error {
	if err == nil {
		return nil
	}
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return model.NewRateLimited(rateErr.Message).WithCause(err)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return model.NewRateLimited(abuseErr.Message).WithCause(err)
	}
	var respErr *github.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		msg := respErr.Message
		if len(respErr.Errors) > 0 && respErr.Errors[0].Message != "" {
			msg += ": " + respErr.Errors[0].Message
		}
		body, _ := json.Marshal(map[string]string{"message": msg})
		return transport.MapStatus(respErr.Response.StatusCode, respErr.Response.Header, body, res).WithCause(err)
	}
	return transport.MapRequestError(err)
}
