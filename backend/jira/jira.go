// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package jira

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
	"github.com/mattermost/mattermost-track/transport"
)

const (
	apiPath          = "/rest/api/3"
	defaultIssueType = "Task"
	pageSize         = 100
)

var (
	digitsPattern = regexp.MustCompile(`^\d+$`)
	jqlMarkers    = []string{"=", "~", " AND ", " OR ", "ORDER BY"}
)

// Backend talks to Jira Cloud REST v3. The knowledge base is served by a
// Confluence client on the same site, when one is configured.
type Backend struct {
	client  *transport.Client
	baseURL string
	wiki    *Confluence
}

var (
	_ tracker.Backend               = (*Backend)(nil)
	_ tracker.KnowledgeBaseProvider = (*Backend)(nil)
)

// New builds a backend for the site at baseURL, e.g. https://acme.atlassian.net.
func New(baseURL, email, token string, httpClient *http.Client) *Backend {
	baseURL = strings.TrimRight(baseURL, "/")
	auth := transport.BasicAuth{Email: email, Token: token}
	return &Backend{
		client:  transport.NewClient(tracker.Jira, baseURL+apiPath, auth, httpClient),
		baseURL: baseURL,
		wiki:    NewConfluence(baseURL+"/wiki", email, token, httpClient),
	}
}

func (b *Backend) Name() string { return tracker.Jira }

func (b *Backend) KnowledgeBase() (tracker.KnowledgeBase, error) {
	if b.wiki == nil {
		return nil, model.NewUnsupported("knowledge_base")
	}
	return b.wiki, nil
}

func fieldsQuery() url.Values {
	return url.Values{"fields": {strings.Join(defaultFields, ",")}}
}

func (b *Backend) fetchIssue(ctx context.Context, id string) (*issue, error) {
	var ji issue
	err := b.client.Get(ctx, transport.Path("/issue/%s", id), fieldsQuery(), transport.IssueResource(id), &ji)
	if err != nil {
		return nil, err
	}
	return &ji, nil
}

func (b *Backend) GetIssue(ctx context.Context, id string) (*model.Issue, error) {
	ji, err := b.fetchIssue(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, err
	}
	return b.convertIssue(ji), nil
}

func isJQL(query string) bool {
	for _, m := range jqlMarkers {
		if strings.Contains(query, m) {
			return true
		}
	}
	return false
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// toJQL passes JQL through and translates the short form
// "project:KEY #open words".
func toJQL(query string) string {
	q := strings.TrimSpace(query)
	if q == "" {
		return "ORDER BY updated DESC"
	}
	if isJQL(q) {
		return q
	}

	var clauses, words []string
	for _, tok := range strings.Fields(q) {
		switch {
		case strings.HasPrefix(tok, "project:") && len(tok) > len("project:"):
			clauses = append(clauses, "project = "+quote(strings.TrimPrefix(tok, "project:")))
		case strings.HasPrefix(tok, "#") && len(tok) > 1:
			switch state := strings.ToLower(tok[1:]); state {
			case "open", "unresolved":
				clauses = append(clauses, "statusCategory != Done")
			case "closed", "resolved", "done":
				clauses = append(clauses, "statusCategory = Done")
			default:
				clauses = append(clauses, "status = "+quote(tok[1:]))
			}
		default:
			words = append(words, tok)
		}
	}
	if len(words) > 0 {
		clauses = append(clauses, "text ~ "+quote(strings.Join(words, " ")))
	}
	return strings.Join(clauses, " AND ")
}

func (b *Backend) SearchIssues(ctx context.Context, query string, limit, skip int) ([]*model.Issue, error) {
	if limit <= 0 {
		return []*model.Issue{}, nil
	}
	q := fieldsQuery()
	q.Set("jql", toJQL(query))
	q.Set("startAt", strconv.Itoa(skip))
	q.Set("maxResults", strconv.Itoa(limit))

	var res searchResult
	if err := b.client.Get(ctx, "/search/jql", q, transport.Resource{}, &res); err != nil {
		return nil, err
	}
	out := make([]*model.Issue, 0, len(res.Issues))
	for i := range res.Issues {
		out = append(out, b.convertIssue(&res.Issues[i]))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func projectField(projectID string) map[string]string {
	if digitsPattern.MatchString(projectID) {
		return map[string]string{"id": projectID}
	}
	return map[string]string{"key": projectID}
}

func assigneeField(assignees []string) interface{} {
	for _, a := range assignees {
		if a = strings.TrimSpace(a); a != "" {
			return map[string]string{"accountId": a}
		}
	}
	return nil
}

func (b *Backend) CreateIssue(ctx context.Context, in *model.CreateIssue) (*model.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	issueType := in.Type
	if issueType == "" {
		issueType = defaultIssueType
	}
	f := map[string]interface{}{
		"project":   projectField(in.ProjectID),
		"summary":   in.Title,
		"issuetype": named{Name: issueType},
	}
	if in.Body != "" {
		f["description"] = textToADF(in.Body)
	}
	if len(in.Labels) > 0 {
		f["labels"] = []string(model.StringArray(in.Labels).Dedup())
	}
	if len(in.Assignees) > 0 {
		f["assignee"] = assigneeField(in.Assignees)
	}
	if in.Priority != "" {
		f["priority"] = named{Name: in.Priority}
	}
	if in.Milestone != "" {
		f["fixVersions"] = []named{{Name: in.Milestone}}
	}
	if in.Parent != "" {
		f["parent"] = keyRef{Key: in.Parent}
	}
	for k, v := range in.CustomFields {
		f[k] = v
	}

	var created createdIssue
	err := b.client.Post(ctx, "/issue", nil, map[string]interface{}{"fields": f}, transport.ProjectResource(in.ProjectID), &created)
	if err != nil {
		return nil, err
	}
	if in.State != "" && !in.State.IsOpen() {
		if err = b.transition(ctx, created.Key, in.State); err != nil {
			return nil, err
		}
	}
	return b.GetIssue(ctx, created.Key)
}

func (b *Backend) UpdateIssue(ctx context.Context, id string, in *model.UpdateIssue) (*model.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	f := map[string]interface{}{}
	if in.Title != nil {
		f["summary"] = *in.Title
	}
	if in.Body != nil {
		f["description"] = textToADF(*in.Body)
	}
	if in.Labels != nil {
		f["labels"] = []string(model.StringArray(*in.Labels).Dedup())
	}
	if in.Assignees != nil {
		f["assignee"] = assigneeField(*in.Assignees)
	}
	if in.Priority != nil {
		f["priority"] = named{Name: *in.Priority}
	}
	if in.Milestone != nil {
		versions := []named{}
		if *in.Milestone != "" {
			versions = append(versions, named{Name: *in.Milestone})
		}
		f["fixVersions"] = versions
	}
	for k, v := range in.CustomFields {
		f[k] = v
	}

	if len(f) > 0 {
		err := b.client.Put(ctx, transport.Path("/issue/%s", id), map[string]interface{}{"fields": f}, transport.IssueResource(id), nil)
		if err != nil {
			return nil, err
		}
	}
	if in.State != nil {
		if err := b.transition(ctx, id, *in.State); err != nil {
			return nil, err
		}
	}
	return b.GetIssue(ctx, id)
}

// matchTransition picks the transition leading to the wanted state: a
// status or transition name match first, then the status category for the
// neutral open and closed states.
func matchTransition(transitions []transition, want model.State) (*transition, bool) {
	for i := range transitions {
		t := &transitions[i]
		if strings.EqualFold(t.To.Name, string(want)) || strings.EqualFold(t.Name, string(want)) {
			return t, true
		}
	}
	if want.IsCustom() {
		return nil, false
	}
	for i := range transitions {
		t := &transitions[i]
		done := t.To.StatusCategory != nil && t.To.StatusCategory.Key == "done"
		if done == want.IsClosed() {
			return t, true
		}
	}
	return nil, false
}

func (b *Backend) transition(ctx context.Context, id string, want model.State) error {
	path := transport.Path("/issue/%s/transitions", id)
	var list transitionList
	if err := b.client.Get(ctx, path, nil, transport.IssueResource(id), &list); err != nil {
		return err
	}
	t, ok := matchTransition(list.Transitions, want)
	if !ok {
		return model.NewInvalidInput("state", fmt.Sprintf("no transition from %s leads to %s", id, want))
	}
	mlog.Debug("Transitioning Jira issue", mlog.String("issue", id), mlog.String("transition", t.Name), mlog.String("status", t.To.Name))
	body := map[string]interface{}{"transition": map[string]string{"id": t.ID}}
	return b.client.Post(ctx, path, nil, body, transport.IssueResource(id), nil)
}

func (b *Backend) DeleteIssue(ctx context.Context, id string) error {
	return b.client.Delete(ctx, transport.Path("/issue/%s", id), transport.IssueResource(id))
}

func (b *Backend) ListProjects(ctx context.Context) ([]*model.Project, error) {
	var projects []project
	if err := b.client.Get(ctx, "/project", nil, transport.Resource{}, &projects); err != nil {
		return nil, err
	}
	out := make([]*model.Project, 0, len(projects))
	for i := range projects {
		out = append(out, b.convertProject(&projects[i]))
	}
	return out, nil
}

func (b *Backend) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var p project
	if err := b.client.Get(ctx, transport.Path("/project/%s", id), nil, transport.ProjectResource(id), &p); err != nil {
		return nil, err
	}
	return b.convertProject(&p), nil
}

func (b *Backend) CreateProject(ctx context.Context, in *model.CreateProject) (*model.Project, error) {
	return nil, model.NewUnsupported("create_project")
}

// ResolveProjectID returns the numeric project id. Project keys are
// directly addressable.
func (b *Backend) ResolveProjectID(ctx context.Context, identifier string) (string, error) {
	if digitsPattern.MatchString(identifier) {
		return identifier, nil
	}
	p, err := b.GetProject(ctx, identifier)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func (b *Backend) GetProjectCustomFields(ctx context.Context, projectID string) ([]*model.CustomField, error) {
	return []*model.CustomField{
		{ID: "status", Name: "Status", Type: model.FieldState, Required: true},
		{ID: "priority", Name: "Priority", Type: model.FieldEnum},
		{ID: "assignee", Name: "Assignee", Type: model.FieldUser},
		{ID: "issuetype", Name: "Type", Type: model.FieldEnum, Required: true},
		{ID: "labels", Name: "Labels", Type: model.FieldMultiEnum},
	}, nil
}

func (b *Backend) ListProjectUsers(ctx context.Context, projectID string) ([]*model.UserRef, error) {
	var users []user
	q := url.Values{"project": {projectID}}
	if err := b.client.Get(ctx, "/user/assignable/search", q, transport.ProjectResource(projectID), &users); err != nil {
		return nil, err
	}
	out := make([]*model.UserRef, 0, len(users))
	for i := range users {
		out = append(out, convertUser(&users[i]))
	}
	return out, nil
}

func (b *Backend) AttachField(ctx context.Context, projectID string, in *model.AttachField) (*model.CustomField, error) {
	return nil, model.NewUnsupported("attach_field")
}

// ListTags lists the labels in use on the site. Jira labels carry no color.
func (b *Backend) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags := []*model.Tag{}
	for startAt := 0; ; {
		var page labelPage
		q := url.Values{"startAt": {strconv.Itoa(startAt)}, "maxResults": {strconv.Itoa(pageSize)}}
		if err := b.client.Get(ctx, "/label", q, transport.Resource{}, &page); err != nil {
			return nil, err
		}
		for _, name := range page.Values {
			tags = append(tags, &model.Tag{ID: name, Name: name})
		}
		if page.IsLast || len(page.Values) == 0 {
			return tags, nil
		}
		startAt += len(page.Values)
	}
}

// Labels come into existence when an issue uses them; there is no API to
// manage them directly.
func (b *Backend) CreateTag(ctx context.Context, in *model.TagInput) (*model.Tag, error) {
	return nil, model.NewUnsupported("create_tag")
}

func (b *Backend) UpdateTag(ctx context.Context, currentName string, in *model.TagInput) (*model.Tag, error) {
	return nil, model.NewUnsupported("update_tag")
}

func (b *Backend) DeleteTag(ctx context.Context, name string) error {
	return model.NewUnsupported("delete_tag")
}

func (b *Backend) ListLinkTypes(ctx context.Context) ([]*model.LinkType, error) {
	var list linkTypeList
	if err := b.client.Get(ctx, "/issueLinkType", nil, transport.Resource{}, &list); err != nil {
		return nil, err
	}
	out := make([]*model.LinkType, 0, len(list.IssueLinkTypes))
	for _, lt := range list.IssueLinkTypes {
		out = append(out, &model.LinkType{
			ID:       lt.ID,
			Name:     lt.Name,
			Outward:  lt.Outward,
			Inward:   lt.Inward,
			Directed: lt.Inward != lt.Outward,
		})
	}
	return out, nil
}

func (b *Backend) GetIssueLinks(ctx context.Context, id string) ([]*model.Link, error) {
	ji, err := b.fetchIssue(ctx, id)
	if err != nil {
		return nil, err
	}
	return convertLinks(ji), nil
}

// linkTypeName maps the common relation names onto Jira's default link
// types. Other names are taken to be link types of the site.
func linkTypeName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "relates", "related", "relates to", "relates_to":
		return "Relates"
	case "depends", "dependency", "blocks", "required":
		return "Blocks"
	case "duplicate", "duplicates", "duplicated-by":
		return "Duplicate"
	case "subtask", "parent":
		return model.LinkTypeSubtask
	}
	return name
}

func (b *Backend) LinkIssues(ctx context.Context, source, target, name string, direction model.Direction) error {
	link := createLink{
		Type:         named{Name: linkTypeName(name)},
		InwardIssue:  keyRef{Key: target},
		OutwardIssue: keyRef{Key: source},
	}
	if direction == model.DirectionInward {
		link.InwardIssue, link.OutwardIssue = link.OutwardIssue, link.InwardIssue
	}
	return b.client.Post(ctx, "/issueLink", nil, link, transport.IssueResource(source), nil)
}

// LinkSubtask sets the parent field of the child.
func (b *Backend) LinkSubtask(ctx context.Context, child, parent string) error {
	body := map[string]interface{}{"fields": map[string]interface{}{"parent": keyRef{Key: parent}}}
	return b.client.Put(ctx, transport.Path("/issue/%s", child), body, transport.IssueResource(child), nil)
}

func (b *Backend) AddComment(ctx context.Context, issueID, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.NewInvalidInput("text", "is required")
	}
	var c comment
	body := map[string]interface{}{"body": textToADF(text)}
	if err := b.client.Post(ctx, transport.Path("/issue/%s/comment", issueID), nil, body, transport.IssueResource(issueID), &c); err != nil {
		return nil, err
	}
	return convertComment(&c), nil
}

func (b *Backend) GetComments(ctx context.Context, issueID string) ([]*model.Comment, error) {
	path := transport.Path("/issue/%s/comment", issueID)
	comments := []*model.Comment{}
	for startAt := 0; ; {
		var page commentList
		q := url.Values{"startAt": {strconv.Itoa(startAt)}, "maxResults": {strconv.Itoa(pageSize)}}
		if err := b.client.Get(ctx, path, q, transport.IssueResource(issueID), &page); err != nil {
			return nil, err
		}
		for i := range page.Comments {
			comments = append(comments, convertComment(&page.Comments[i]))
		}
		startAt += len(page.Comments)
		if len(page.Comments) == 0 || startAt >= page.Total {
			return comments, nil
		}
	}
}
