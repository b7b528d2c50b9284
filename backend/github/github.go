// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package github

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-github/v39/github"
	"github.com/mattermost/mattermost-server/v6/shared/mlog"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
	"github.com/mattermost/mattermost-track/transport"
)

const maxPerPage = 100

var (
	issueRefPattern = regexp.MustCompile(`^(?:([\w.-]+)/([\w.-]+))?#?(\d+)$`)
	digitsPattern   = regexp.MustCompile(`^\d+$`)
)

// Backend serves issues from a single default repository. Projects map to
// repositories; labels live at repository scope.
type Backend struct {
	client *Client
	owner  string
	repo   string
}

var _ tracker.Backend = (*Backend)(nil)

func New(client *Client, owner, repo string) *Backend {
	return &Backend{client: client, owner: owner, repo: repo}
}

func (b *Backend) Name() string { return tracker.GitHub }

// parseIssueID accepts "42", "#42" and "owner/repo#42".
func (b *Backend) parseIssueID(id string) (owner, repo string, number int, err error) {
	m := issueRefPattern.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil {
		return "", "", 0, model.NewInvalidInput("id", "expected <number>, #<number> or owner/repo#<number>, got "+id)
	}
	number, _ = strconv.Atoi(m[3])
	if m[1] != "" {
		return m[1], m[2], number, nil
	}
	if b.owner == "" || b.repo == "" {
		return "", "", 0, model.NewInvalidInput("repo", "no default repository configured")
	}
	return b.owner, b.repo, number, nil
}

// repoFor turns a project identifier into owner and repository name.
func (b *Backend) repoFor(ctx context.Context, projectID string) (string, string, error) {
	switch {
	case projectID == "":
		if b.owner == "" || b.repo == "" {
			return "", "", model.NewInvalidInput("project", "no default repository configured")
		}
		return b.owner, b.repo, nil
	case digitsPattern.MatchString(projectID):
		id, _ := strconv.ParseInt(projectID, 10, 64)
		r, _, err := b.client.Repositories.GetByID(ctx, id)
		if err != nil {
			return "", "", mapError(err, transport.ProjectResource(projectID))
		}
		return r.GetOwner().GetLogin(), r.GetName(), nil
	case strings.Contains(projectID, "/"):
		parts := strings.SplitN(projectID, "/", 2)
		return parts[0], parts[1], nil
	}
	return b.owner, projectID, nil
}

func (b *Backend) GetIssue(ctx context.Context, id string) (*model.Issue, error) {
	owner, repo, number, err := b.parseIssueID(id)
	if err != nil {
		return nil, err
	}
	gi, _, err := b.client.Issues.Get(ctx, owner, repo, number)
	if err != nil {
		return nil, mapError(err, transport.IssueResource(id))
	}
	// Pull requests share the issue namespace but are not issues.
	if gi.IsPullRequest() {
		return nil, model.NewIssueNotFound(id)
	}
	return convertIssue(owner, repo, gi), nil
}

// qualifyQuery scopes a search to the default repository and to issues,
// unless the query already says otherwise.
func (b *Backend) qualifyQuery(query string) string {
	q := strings.TrimSpace(query)
	if !strings.Contains(q, "repo:") && !strings.Contains(q, "org:") && !strings.Contains(q, "user:") && b.owner != "" && b.repo != "" {
		q = strings.TrimSpace("repo:" + b.owner + "/" + b.repo + " " + q)
	}
	if !strings.Contains(q, "is:issue") && !strings.Contains(q, "is:pr") && !strings.Contains(q, "type:") {
		q += " is:issue"
	}
	return q
}

func (b *Backend) SearchIssues(ctx context.Context, query string, limit, skip int) ([]*model.Issue, error) {
	if limit <= 0 {
		return []*model.Issue{}, nil
	}
	q := b.qualifyQuery(query)

	perPage := maxPerPage
	if limit <= maxPerPage && skip%limit == 0 {
		perPage = limit
	}
	page := skip/perPage + 1
	offset := skip % perPage

	out := []*model.Issue{}
	for len(out) < limit {
		res, resp, err := b.client.Search.Issues(ctx, q, &github.SearchOptions{
			ListOptions: github.ListOptions{Page: page, PerPage: perPage},
		})
		if err != nil {
			return nil, mapError(err, transport.Resource{})
		}
		items := res.Issues
		if offset > 0 {
			if offset >= len(items) {
				items = nil
			} else {
				items = items[offset:]
			}
			offset = 0
		}
		for _, gi := range items {
			if gi.IsPullRequest() {
				continue
			}
			owner, repo := b.owner, b.repo
			if gi.Repository != nil {
				owner, repo = gi.Repository.GetOwner().GetLogin(), gi.Repository.GetName()
			} else if o, r, ok := repoFromURL(gi.GetRepositoryURL()); ok {
				owner, repo = o, r
			}
			out = append(out, convertIssue(owner, repo, gi))
			if len(out) == limit {
				break
			}
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}
	return out, nil
}

// repoFromURL reads owner and name from an API repository URL.
func repoFromURL(u string) (string, string, bool) {
	const marker = "/repos/"
	i := strings.Index(u, marker)
	if i < 0 {
		return "", "", false
	}
	parts := strings.Split(u[i+len(marker):], "/")
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

func (b *Backend) milestoneNumber(ctx context.Context, owner, repo, title string) (int, error) {
	opts := &github.MilestoneListOptions{State: "all", ListOptions: github.ListOptions{PerPage: maxPerPage}}
	for {
		milestones, resp, err := b.client.Issues.ListMilestones(ctx, owner, repo, opts)
		if err != nil {
			return 0, mapError(err, transport.ProjectResource(owner+"/"+repo))
		}
		for _, m := range milestones {
			if m.GetTitle() == title {
				return m.GetNumber(), nil
			}
		}
		if resp == nil || resp.NextPage == 0 {
			return 0, model.NewInvalidInput("milestone", "no milestone titled "+title)
		}
		opts.Page = resp.NextPage
	}
}

func (b *Backend) CreateIssue(ctx context.Context, in *model.CreateIssue) (*model.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	owner, repo, err := b.repoFor(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	req := &github.IssueRequest{
		Title: github.String(in.Title),
	}
	if in.Body != "" {
		req.Body = github.String(in.Body)
	}
	if len(in.Labels) > 0 {
		labels := []string(model.StringArray(in.Labels).Dedup())
		req.Labels = &labels
	}
	if len(in.Assignees) > 0 {
		assignees := append([]string{}, in.Assignees...)
		req.Assignees = &assignees
	}
	if in.Milestone != "" {
		n, mErr := b.milestoneNumber(ctx, owner, repo, in.Milestone)
		if mErr != nil {
			return nil, mErr
		}
		req.Milestone = github.Int(n)
	}

	gi, _, err := b.client.Issues.Create(ctx, owner, repo, req)
	if err != nil {
		return nil, mapError(err, transport.ProjectResource(in.ProjectID))
	}
	issue := convertIssue(owner, repo, gi)

	if in.State.IsClosed() {
		closed := model.StateClosed
		issue, err = b.UpdateIssue(ctx, issue.Key, &model.UpdateIssue{State: &closed})
		if err != nil {
			return nil, err
		}
	}
	if in.Parent != "" {
		if err = b.LinkSubtask(ctx, issue.Key, in.Parent); err != nil {
			return nil, err
		}
		issue.Parent = in.Parent
	}
	return issue, nil
}

func (b *Backend) UpdateIssue(ctx context.Context, id string, in *model.UpdateIssue) (*model.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	owner, repo, number, err := b.parseIssueID(id)
	if err != nil {
		return nil, err
	}

	req := &github.IssueRequest{
		Title:     in.Title,
		Body:      in.Body,
		Assignees: in.Assignees,
	}
	if in.Labels != nil {
		labels := []string(model.StringArray(*in.Labels).Dedup())
		req.Labels = &labels
	}
	if in.State != nil {
		state, sErr := issueState(*in.State)
		if sErr != nil {
			return nil, sErr
		}
		req.State = github.String(state)
	}
	if in.Milestone != nil {
		if *in.Milestone == "" {
			return nil, model.NewInvalidInput("milestone", "clearing a milestone is not supported")
		}
		n, mErr := b.milestoneNumber(ctx, owner, repo, *in.Milestone)
		if mErr != nil {
			return nil, mErr
		}
		req.Milestone = github.Int(n)
	}

	gi, _, err := b.client.Issues.Edit(ctx, owner, repo, number, req)
	if err != nil {
		return nil, mapError(err, transport.IssueResource(id))
	}
	return convertIssue(owner, repo, gi), nil
}

func (b *Backend) DeleteIssue(ctx context.Context, id string) error {
	return model.NewUnsupported("delete_issue")
}

func (b *Backend) ListProjects(ctx context.Context) ([]*model.Project, error) {
	opts := &github.RepositoryListOptions{Sort: "updated", ListOptions: github.ListOptions{PerPage: maxPerPage}}
	projects := []*model.Project{}
	for {
		repos, resp, err := b.client.Repositories.List(ctx, "", opts)
		if err != nil {
			return nil, mapError(err, transport.Resource{})
		}
		for _, r := range repos {
			projects = append(projects, convertRepository(r))
		}
		if resp == nil || resp.NextPage == 0 {
			return projects, nil
		}
		opts.Page = resp.NextPage
	}
}

func (b *Backend) GetProject(ctx context.Context, id string) (*model.Project, error) {
	if digitsPattern.MatchString(id) {
		n, _ := strconv.ParseInt(id, 10, 64)
		r, _, err := b.client.Repositories.GetByID(ctx, n)
		if err != nil {
			return nil, mapError(err, transport.ProjectResource(id))
		}
		return convertRepository(r), nil
	}
	owner, repo, err := b.repoFor(ctx, id)
	if err != nil {
		return nil, err
	}
	r, _, err := b.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return nil, mapError(err, transport.ProjectResource(id))
	}
	return convertRepository(r), nil
}

func (b *Backend) CreateProject(ctx context.Context, in *model.CreateProject) (*model.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	desc := in.Description
	if desc == "" {
		desc = in.Name
	}
	r, _, err := b.client.Repositories.Create(ctx, "", &github.Repository{
		Name:        github.String(in.ShortName),
		Description: github.String(desc),
	})
	if err != nil {
		return nil, mapError(err, transport.Resource{})
	}
	return convertRepository(r), nil
}

// ResolveProjectID returns the numeric repository id. Repository paths are
// directly addressable, so no listing is needed.
func (b *Backend) ResolveProjectID(ctx context.Context, identifier string) (string, error) {
	if digitsPattern.MatchString(identifier) {
		return identifier, nil
	}
	owner, repo, err := b.repoFor(ctx, identifier)
	if err != nil {
		return "", err
	}
	r, _, err := b.client.Repositories.Get(ctx, owner, repo)
	if err != nil {
		return "", mapError(err, transport.ProjectResource(identifier))
	}
	return strconv.FormatInt(r.GetID(), 10), nil
}

// GetProjectCustomFields reports the fixed field set every repository has.
func (b *Backend) GetProjectCustomFields(ctx context.Context, projectID string) ([]*model.CustomField, error) {
	return []*model.CustomField{
		{ID: "state", Name: "Status", Type: model.FieldState, Required: true, Values: []string{"open", "closed"}},
		{ID: "assignees", Name: "Assignee", Type: model.FieldUser},
		{ID: "labels", Name: "Labels", Type: model.FieldMultiEnum},
		{ID: "milestone", Name: "Milestone", Type: model.FieldEnum},
	}, nil
}

func (b *Backend) ListProjectUsers(ctx context.Context, projectID string) ([]*model.UserRef, error) {
	owner, repo, err := b.repoFor(ctx, projectID)
	if err != nil {
		return nil, err
	}
	opts := &github.ListOptions{PerPage: maxPerPage}
	users := []*model.UserRef{}
	for {
		page, resp, err := b.client.Issues.ListAssignees(ctx, owner, repo, opts)
		if err != nil {
			return nil, mapError(err, transport.ProjectResource(projectID))
		}
		for _, u := range page {
			users = append(users, convertUser(u))
		}
		if resp == nil || resp.NextPage == 0 {
			return users, nil
		}
		opts.Page = resp.NextPage
	}
}

func (b *Backend) AttachField(ctx context.Context, projectID string, in *model.AttachField) (*model.CustomField, error) {
	return nil, model.NewUnsupported("attach_field")
}

func (b *Backend) ListTags(ctx context.Context) ([]*model.Tag, error) {
	owner, repo, err := b.repoFor(ctx, "")
	if err != nil {
		return nil, err
	}
	opts := &github.ListOptions{PerPage: maxPerPage}
	tags := []*model.Tag{}
	for {
		labels, resp, err := b.client.Issues.ListLabels(ctx, owner, repo, opts)
		if err != nil {
			return nil, mapError(err, transport.ProjectResource(owner+"/"+repo))
		}
		for _, l := range labels {
			tags = append(tags, convertLabel(l))
		}
		if resp == nil || resp.NextPage == 0 {
			return tags, nil
		}
		opts.Page = resp.NextPage
	}
}

func (b *Backend) CreateTag(ctx context.Context, in *model.TagInput) (*model.Tag, error) {
	if err := in.Normalize(true); err != nil {
		return nil, err
	}
	owner, repo, err := b.repoFor(ctx, "")
	if err != nil {
		return nil, err
	}
	color := in.Color
	if color == "" {
		color = model.DefaultTagColor
	}
	label := &github.Label{Name: github.String(in.Name), Color: github.String(color)}
	if in.Description != "" {
		label.Description = github.String(in.Description)
	}
	l, _, err := b.client.Issues.CreateLabel(ctx, owner, repo, label)
	if err != nil {
		return nil, mapError(err, transport.Resource{})
	}
	return convertLabel(l), nil
}

func (b *Backend) UpdateTag(ctx context.Context, currentName string, in *model.TagInput) (*model.Tag, error) {
	if err := in.Normalize(false); err != nil {
		return nil, err
	}
	owner, repo, err := b.repoFor(ctx, "")
	if err != nil {
		return nil, err
	}
	label := &github.Label{}
	if in.Name != "" {
		label.Name = github.String(in.Name)
	}
	if in.Color != "" {
		label.Color = github.String(in.Color)
	}
	if in.Description != "" {
		label.Description = github.String(in.Description)
	}
	l, _, err := b.client.Issues.EditLabel(ctx, owner, repo, currentName, label)
	if err != nil {
		return nil, mapError(err, transport.NamedResource("label "+currentName))
	}
	return convertLabel(l), nil
}

func (b *Backend) DeleteTag(ctx context.Context, name string) error {
	owner, repo, err := b.repoFor(ctx, "")
	if err != nil {
		return err
	}
	if _, err = b.client.Issues.DeleteLabel(ctx, owner, repo, name); err != nil {
		return mapError(err, transport.NamedResource("label "+name))
	}
	return nil
}

// ListLinkTypes reports the relations emulated through comments.
func (b *Backend) ListLinkTypes(ctx context.Context) ([]*model.LinkType, error) {
	return []*model.LinkType{
		{ID: "relates", Name: "Relates", Outward: "relates to", Inward: "relates to"},
		{ID: "subtask", Name: model.LinkTypeSubtask, Outward: "parent of", Inward: "subtask of", Directed: true},
	}, nil
}

// GetIssueLinks returns no links: GitHub has no link API and the
// comment-based relations are not parsed back.
func (b *Backend) GetIssueLinks(ctx context.Context, id string) ([]*model.Link, error) {
	if _, _, _, err := b.parseIssueID(id); err != nil {
		return nil, err
	}
	return []*model.Link{}, nil
}

// LinkIssues records the relation as a comment on the source issue.
func (b *Backend) LinkIssues(ctx context.Context, source, target, linkType string, direction model.Direction) error {
	_, _, number, err := b.parseIssueID(target)
	if err != nil {
		return err
	}
	verb := "Relates to"
	if linkType != "" && !strings.EqualFold(linkType, "relates") {
		verb = linkType
	}
	_, err = b.AddComment(ctx, source, fmt.Sprintf("%s #%d", verb, number))
	return err
}

func (b *Backend) LinkSubtask(ctx context.Context, child, parent string) error {
	_, _, number, err := b.parseIssueID(parent)
	if err != nil {
		return err
	}
	_, err = b.AddComment(ctx, child, fmt.Sprintf("Subtask of #%d", number))
	if err == nil {
		mlog.Debug("Emulated subtask link with a comment", mlog.String("child", child), mlog.String("parent", parent))
	}
	return err
}

func (b *Backend) AddComment(ctx context.Context, issueID, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.NewInvalidInput("text", "is required")
	}
	owner, repo, number, err := b.parseIssueID(issueID)
	if err != nil {
		return nil, err
	}
	c, _, err := b.client.Issues.CreateComment(ctx, owner, repo, number, &github.IssueComment{Body: github.String(text)})
	if err != nil {
		return nil, mapError(err, transport.IssueResource(issueID))
	}
	return convertComment(c), nil
}

func (b *Backend) GetComments(ctx context.Context, issueID string) ([]*model.Comment, error) {
	owner, repo, number, err := b.parseIssueID(issueID)
	if err != nil {
		return nil, err
	}
	opts := &github.IssueListCommentsOptions{ListOptions: github.ListOptions{PerPage: maxPerPage}}
	comments := []*model.Comment{}
	for {
		page, resp, err := b.client.Issues.ListComments(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, mapError(err, transport.IssueResource(issueID))
		}
		for _, c := range page {
			comments = append(comments, convertComment(c))
		}
		if resp == nil || resp.NextPage == 0 {
			return comments, nil
		}
		opts.Page = resp.NextPage
	}
}
