// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package gitlab

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/xanzy/go-gitlab"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
	"github.com/mattermost/mattermost-track/transport"
)

const maxPerPage = 100

var (
	issueRefPattern = regexp.MustCompile(`^(?:([\w.-]+(?:/[\w.-]+)+))?#?(\d+)$`)
	digitsPattern   = regexp.MustCompile(`^\d+$`)
)

// Backend serves issues of one default project. Projects may be addressed
// by numeric id or by their namespaced path.
type Backend struct {
	client  *Client
	project string
}

var _ tracker.Backend = (*Backend)(nil)

func New(client *Client, project string) *Backend {
	return &Backend{client: client, project: project}
}

func (b *Backend) Name() string { return tracker.GitLab }

// parseIssueID accepts "42", "#42" and "group/project#42".
func (b *Backend) parseIssueID(id string) (project string, iid int, err error) {
	m := issueRefPattern.FindStringSubmatch(strings.TrimSpace(id))
	if m == nil {
		return "", 0, model.NewInvalidInput("id", "expected <iid>, #<iid> or group/project#<iid>, got "+id)
	}
	iid, _ = strconv.Atoi(m[2])
	if m[1] != "" {
		return m[1], iid, nil
	}
	if b.project == "" {
		return "", 0, model.NewInvalidInput("project", "no default project configured")
	}
	return b.project, iid, nil
}

func (b *Backend) projectFor(projectID string) (string, error) {
	if projectID != "" {
		return projectID, nil
	}
	if b.project == "" {
		return "", model.NewInvalidInput("project", "no default project configured")
	}
	return b.project, nil
}

func (b *Backend) GetIssue(ctx context.Context, id string) (*model.Issue, error) {
	project, iid, err := b.parseIssueID(id)
	if err != nil {
		return nil, err
	}
	gi, _, err := b.client.Issues.GetIssue(project, iid, gitlab.WithContext(ctx))
	if err != nil {
		return nil, mapError(err, transport.IssueResource(id))
	}
	return convertIssue(gi), nil
}

// searchOptions reads "state:", "milestone:", "sort:" and "project:" tokens
// out of the query. Everything else is free text.
func searchOptions(query string) (opts *gitlab.ListProjectIssuesOptions, project string) {
	opts = &gitlab.ListProjectIssuesOptions{}
	var text []string
	for _, tok := range strings.Fields(query) {
		key, value, ok := strings.Cut(tok, ":")
		if !ok || value == "" {
			text = append(text, tok)
			continue
		}
		switch strings.ToLower(key) {
		case "state", "is":
			state := strings.ToLower(value)
			if state == "open" {
				state = "opened"
			}
			opts.State = gitlab.String(state)
		case "milestone":
			opts.Milestone = gitlab.String(value)
		case "sort":
			opts.Sort = gitlab.String(strings.ToLower(value))
		case "project":
			project = value
		default:
			text = append(text, tok)
		}
	}
	if len(text) > 0 {
		opts.Search = gitlab.String(strings.Join(text, " "))
	}
	return opts, project
}

func (b *Backend) SearchIssues(ctx context.Context, query string, limit, skip int) ([]*model.Issue, error) {
	if limit <= 0 {
		return []*model.Issue{}, nil
	}
	opts, project := searchOptions(query)
	project, err := b.projectFor(project)
	if err != nil {
		return nil, err
	}

	perPage := maxPerPage
	if limit <= maxPerPage && skip%limit == 0 {
		perPage = limit
	}
	opts.PerPage = perPage
	opts.Page = skip/perPage + 1
	offset := skip % perPage

	out := []*model.Issue{}
	for len(out) < limit {
		issues, resp, err := b.client.Issues.ListProjectIssues(project, opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, mapError(err, transport.ProjectResource(project))
		}
		if offset > 0 {
			if offset >= len(issues) {
				issues = nil
			} else {
				issues = issues[offset:]
			}
			offset = 0
		}
		for _, gi := range issues {
			out = append(out, convertIssue(gi))
			if len(out) == limit {
				break
			}
		}
		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return out, nil
}

func (b *Backend) userIDs(ctx context.Context, usernames []string) ([]int, error) {
	ids := make([]int, 0, len(usernames))
	for _, name := range model.StringArray(usernames).Dedup() {
		name = strings.TrimPrefix(name, "@")
		if digitsPattern.MatchString(name) {
			id, _ := strconv.Atoi(name)
			ids = append(ids, id)
			continue
		}
		users, _, err := b.client.Users.ListUsers(&gitlab.ListUsersOptions{Username: gitlab.String(name)}, gitlab.WithContext(ctx))
		if err != nil {
			return nil, mapError(err, transport.NamedResource("user "+name))
		}
		if len(users) == 0 {
			return nil, model.NewInvalidInput("assignees", "no user named "+name)
		}
		ids = append(ids, users[0].ID)
	}
	return ids, nil
}

func (b *Backend) milestoneID(ctx context.Context, project, title string) (int, error) {
	opts := &gitlab.ListMilestonesOptions{
		Search:      gitlab.String(title),
		ListOptions: gitlab.ListOptions{PerPage: maxPerPage},
	}
	for {
		milestones, resp, err := b.client.Milestones.ListMilestones(project, opts, gitlab.WithContext(ctx))
		if err != nil {
			return 0, mapError(err, transport.ProjectResource(project))
		}
		for _, m := range milestones {
			if m.Title == title {
				return m.ID, nil
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
	project, err := b.projectFor(in.ProjectID)
	if err != nil {
		return nil, err
	}

	opts := &gitlab.CreateIssueOptions{
		Title: gitlab.String(in.Title),
	}
	if in.Body != "" {
		opts.Description = gitlab.String(in.Body)
	}
	if len(in.Labels) > 0 {
		opts.Labels = labelOptions(in.Labels)
	}
	if len(in.Assignees) > 0 {
		if opts.AssigneeIDs, err = b.userIDs(ctx, in.Assignees); err != nil {
			return nil, err
		}
	}
	if in.Milestone != "" {
		id, mErr := b.milestoneID(ctx, project, in.Milestone)
		if mErr != nil {
			return nil, mErr
		}
		opts.MilestoneID = gitlab.Int(id)
	}

	gi, _, err := b.client.Issues.CreateIssue(project, opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, mapError(err, transport.ProjectResource(project))
	}
	issue := convertIssue(gi)
	ref := fmt.Sprintf("%s#%d", project, gi.IID)

	if in.State.IsClosed() {
		closed := model.StateClosed
		if issue, err = b.UpdateIssue(ctx, ref, &model.UpdateIssue{State: &closed}); err != nil {
			return nil, err
		}
	}
	if in.Parent != "" {
		if err = b.LinkSubtask(ctx, ref, in.Parent); err != nil {
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
	project, iid, err := b.parseIssueID(id)
	if err != nil {
		return nil, err
	}

	opts := &gitlab.UpdateIssueOptions{
		Title:       in.Title,
		Description: in.Body,
	}
	if in.Labels != nil {
		opts.Labels = labelOptions(*in.Labels)
	}
	if in.Assignees != nil {
		if opts.AssigneeIDs, err = b.userIDs(ctx, *in.Assignees); err != nil {
			return nil, err
		}
	}
	if in.State != nil {
		event, sErr := stateEvent(*in.State)
		if sErr != nil {
			return nil, sErr
		}
		opts.StateEvent = gitlab.String(event)
	}
	if in.Milestone != nil {
		id := 0
		if *in.Milestone != "" {
			if id, err = b.milestoneID(ctx, project, *in.Milestone); err != nil {
				return nil, err
			}
		}
		opts.MilestoneID = gitlab.Int(id)
	}

	gi, _, err := b.client.Issues.UpdateIssue(project, iid, opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, mapError(err, transport.IssueResource(id))
	}
	return convertIssue(gi), nil
}

func (b *Backend) DeleteIssue(ctx context.Context, id string) error {
	project, iid, err := b.parseIssueID(id)
	if err != nil {
		return err
	}
	if _, err = b.client.Issues.DeleteIssue(project, iid, gitlab.WithContext(ctx)); err != nil {
		return mapError(err, transport.IssueResource(id))
	}
	return nil
}

func (b *Backend) ListProjects(ctx context.Context) ([]*model.Project, error) {
	opts := &gitlab.ListProjectsOptions{
		Membership:  gitlab.Bool(true),
		OrderBy:     gitlab.String("last_activity_at"),
		ListOptions: gitlab.ListOptions{PerPage: maxPerPage},
	}
	projects := []*model.Project{}
	for {
		page, resp, err := b.client.Projects.ListProjects(opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, mapError(err, transport.Resource{})
		}
		for _, p := range page {
			projects = append(projects, convertProject(p))
		}
		if resp == nil || resp.NextPage == 0 {
			return projects, nil
		}
		opts.Page = resp.NextPage
	}
}

func (b *Backend) GetProject(ctx context.Context, id string) (*model.Project, error) {
	project, err := b.projectFor(id)
	if err != nil {
		return nil, err
	}
	p, _, err := b.client.Projects.GetProject(project, nil, gitlab.WithContext(ctx))
	if err != nil {
		return nil, mapError(err, transport.ProjectResource(project))
	}
	return convertProject(p), nil
}

func (b *Backend) CreateProject(ctx context.Context, in *model.CreateProject) (*model.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	opts := &gitlab.CreateProjectOptions{
		Name: gitlab.String(in.Name),
		Path: gitlab.String(in.ShortName),
	}
	if in.Description != "" {
		opts.Description = gitlab.String(in.Description)
	}
	p, _, err := b.client.Projects.CreateProject(opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, mapError(err, transport.Resource{})
	}
	return convertProject(p), nil
}

// ResolveProjectID returns the numeric project id. Namespaced paths are
// directly addressable, so no listing is needed.
func (b *Backend) ResolveProjectID(ctx context.Context, identifier string) (string, error) {
	if digitsPattern.MatchString(identifier) {
		return identifier, nil
	}
	p, _, err := b.client.Projects.GetProject(identifier, nil, gitlab.WithContext(ctx))
	if err != nil {
		return "", mapError(err, transport.ProjectResource(identifier))
	}
	return strconv.Itoa(p.ID), nil
}

func (b *Backend) GetProjectCustomFields(ctx context.Context, projectID string) ([]*model.CustomField, error) {
	return []*model.CustomField{
		{ID: "state", Name: "Status", Type: model.FieldState, Required: true, Values: []string{"opened", "closed"}},
		{ID: "assignees", Name: "Assignee", Type: model.FieldUser},
		{ID: "labels", Name: "Labels", Type: model.FieldMultiEnum},
		{ID: "milestone", Name: "Milestone", Type: model.FieldEnum},
	}, nil
}

func (b *Backend) ListProjectUsers(ctx context.Context, projectID string) ([]*model.UserRef, error) {
	project, err := b.projectFor(projectID)
	if err != nil {
		return nil, err
	}
	opts := &gitlab.ListProjectMembersOptions{ListOptions: gitlab.ListOptions{PerPage: maxPerPage}}
	users := []*model.UserRef{}
	for {
		members, resp, err := b.client.ProjectMembers.ListAllProjectMembers(project, opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, mapError(err, transport.ProjectResource(project))
		}
		for _, m := range members {
			users = append(users, &model.UserRef{ID: strconv.Itoa(m.ID), Login: m.Username, Name: m.Name, Email: m.Email})
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
	project, err := b.projectFor("")
	if err != nil {
		return nil, err
	}
	opts := &gitlab.ListLabelsOptions{ListOptions: gitlab.ListOptions{PerPage: maxPerPage}}
	tags := []*model.Tag{}
	for {
		labels, resp, err := b.client.Labels.ListLabels(project, opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, mapError(err, transport.ProjectResource(project))
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
	project, err := b.projectFor("")
	if err != nil {
		return nil, err
	}
	color := in.Color
	if color == "" {
		color = model.DefaultTagColor
	}
	opts := &gitlab.CreateLabelOptions{
		Name:  gitlab.String(in.Name),
		Color: gitlab.String("#" + color),
	}
	if in.Description != "" {
		opts.Description = gitlab.String(in.Description)
	}
	l, _, err := b.client.Labels.CreateLabel(project, opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, mapError(err, transport.Resource{})
	}
	return convertLabel(l), nil
}

func (b *Backend) UpdateTag(ctx context.Context, currentName string, in *model.TagInput) (*model.Tag, error) {
	if err := in.Normalize(false); err != nil {
		return nil, err
	}
	project, err := b.projectFor("")
	if err != nil {
		return nil, err
	}
	opts := &gitlab.UpdateLabelOptions{Name: gitlab.String(currentName)}
	if in.Name != "" && in.Name != currentName {
		opts.NewName = gitlab.String(in.Name)
	}
	if in.Color != "" {
		opts.Color = gitlab.String("#" + in.Color)
	}
	if in.Description != "" {
		opts.Description = gitlab.String(in.Description)
	}
	l, _, err := b.client.Labels.UpdateLabel(project, opts, gitlab.WithContext(ctx))
	if err != nil {
		return nil, mapError(err, transport.NamedResource("label "+currentName))
	}
	return convertLabel(l), nil
}

func (b *Backend) DeleteTag(ctx context.Context, name string) error {
	project, err := b.projectFor("")
	if err != nil {
		return err
	}
	_, err = b.client.Labels.DeleteLabel(project, &gitlab.DeleteLabelOptions{Name: gitlab.String(name)}, gitlab.WithContext(ctx))
	if err != nil {
		return mapError(err, transport.NamedResource("label "+name))
	}
	return nil
}

func (b *Backend) ListLinkTypes(ctx context.Context) ([]*model.LinkType, error) {
	return []*model.LinkType{
		{ID: linkRelatesTo, Name: "Relates", Outward: "relates to", Inward: "relates to"},
		{ID: linkBlocks, Name: "Blocks", Outward: "blocks", Inward: "is blocked by", Directed: true},
		{ID: linkIsBlockedBy, Name: "Is blocked by", Outward: "is blocked by", Inward: "blocks", Directed: true},
	}, nil
}

func (b *Backend) GetIssueLinks(ctx context.Context, id string) ([]*model.Link, error) {
	project, iid, err := b.parseIssueID(id)
	if err != nil {
		return nil, err
	}
	relations, _, err := b.client.Relations.ListIssueRelations(project, iid, gitlab.WithContext(ctx))
	if err != nil {
		return nil, mapError(err, transport.IssueResource(id))
	}
	links := make([]*model.Link, 0, len(relations))
	for _, r := range relations {
		links = append(links, convertRelation(issueKey(iid), r))
	}
	return links, nil
}

func (b *Backend) LinkIssues(ctx context.Context, source, target, name string, direction model.Direction) error {
	project, iid, err := b.parseIssueID(source)
	if err != nil {
		return err
	}
	targetProject, targetIID, err := b.parseIssueID(target)
	if err != nil {
		return err
	}
	_, _, err = b.client.IssueLinks.CreateIssueLink(project, iid, &gitlab.CreateIssueLinkOptions{
		TargetProjectID: gitlab.String(targetProject),
		TargetIssueIID:  gitlab.String(strconv.Itoa(targetIID)),
		LinkType:        gitlab.String(linkType(name, direction)),
	}, gitlab.WithContext(ctx))
	if err != nil {
		return mapError(err, transport.IssueResource(source))
	}
	return nil
}

// LinkSubtask relates the two issues and leaves a note on the child, since
// GitLab issues have no parent.
func (b *Backend) LinkSubtask(ctx context.Context, child, parent string) error {
	if err := b.LinkIssues(ctx, child, parent, linkRelatesTo, model.DirectionBoth); err != nil {
		return err
	}
	_, iid, err := b.parseIssueID(parent)
	if err != nil {
		return err
	}
	if _, err = b.AddComment(ctx, child, fmt.Sprintf("Subtask of #%d", iid)); err != nil {
		return err
	}
	mlog.Debug("Emulated subtask link with a relation and a note", mlog.String("child", child), mlog.String("parent", parent))
	return nil
}

func (b *Backend) AddComment(ctx context.Context, issueID, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.NewInvalidInput("text", "is required")
	}
	project, iid, err := b.parseIssueID(issueID)
	if err != nil {
		return nil, err
	}
	n, _, err := b.client.Notes.CreateIssueNote(project, iid, &gitlab.CreateIssueNoteOptions{Body: gitlab.String(text)}, gitlab.WithContext(ctx))
	if err != nil {
		return nil, mapError(err, transport.IssueResource(issueID))
	}
	return convertNote(n), nil
}

func (b *Backend) GetComments(ctx context.Context, issueID string) ([]*model.Comment, error) {
	project, iid, err := b.parseIssueID(issueID)
	if err != nil {
		return nil, err
	}
	opts := &gitlab.ListIssueNotesOptions{
		OrderBy:     gitlab.String("created_at"),
		Sort:        gitlab.String("asc"),
		ListOptions: gitlab.ListOptions{PerPage: maxPerPage},
	}
	comments := []*model.Comment{}
	for {
		notes, resp, err := b.client.Notes.ListIssueNotes(project, iid, opts, gitlab.WithContext(ctx))
		if err != nil {
			return nil, mapError(err, transport.IssueResource(issueID))
		}
		for _, n := range notes {
			comments = append(comments, convertNote(n))
		}
		if resp == nil || resp.NextPage == 0 {
			return comments, nil
		}
		opts.Page = resp.NextPage
	}
}
