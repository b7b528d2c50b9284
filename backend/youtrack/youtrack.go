// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package youtrack

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
	pageSize = 100

	openStateName   = "Open"
	closedStateName = "Done"
)

// opaqueIDPattern matches internal entity ids such as 0-2 or 2-117.
var opaqueIDPattern = regexp.MustCompile(`^\d+-\d+$`)

// Backend talks to the YouTrack REST API. It serves the knowledge base from
// the same client.
type Backend struct {
	client  *transport.Client
	baseURL string
}

var (
	_ tracker.Backend       = (*Backend)(nil)
	_ tracker.KnowledgeBase = (*Backend)(nil)
)

// New builds a backend for the instance at baseURL, e.g.
// https://acme.youtrack.cloud.
func New(baseURL, token string, httpClient *http.Client) *Backend {
	baseURL = strings.TrimRight(baseURL, "/")
	return &Backend{
		client:  transport.NewClient(tracker.YouTrack, baseURL+"/api", transport.BearerAuth(token), httpClient),
		baseURL: baseURL,
	}
}

func (b *Backend) Name() string { return tracker.YouTrack }

func fields(f string) url.Values {
	return url.Values{"fields": {f}}
}

func paged(f string, limit, skip int) url.Values {
	q := fields(f)
	q.Set("$top", strconv.Itoa(limit))
	q.Set("$skip", strconv.Itoa(skip))
	return q
}

func (b *Backend) GetIssue(ctx context.Context, id string) (*model.Issue, error) {
	id = strings.TrimSpace(id)
	var yi issue
	if err := b.client.Get(ctx, transport.Path("/issues/%s", id), fields(issueFields), transport.IssueResource(id), &yi); err != nil {
		return nil, err
	}
	return b.convertIssue(&yi), nil
}

// SearchIssues passes the query through; YouTrack's own query language
// already covers "project: X #Unresolved words".
func (b *Backend) SearchIssues(ctx context.Context, query string, limit, skip int) ([]*model.Issue, error) {
	if limit <= 0 {
		return []*model.Issue{}, nil
	}
	q := paged(issueFields, limit, skip)
	if query = strings.TrimSpace(query); query != "" {
		q.Set("query", query)
	}
	var list []issue
	if err := b.client.Get(ctx, "/issues", q, transport.Resource{}, &list); err != nil {
		return nil, err
	}
	out := make([]*model.Issue, 0, len(list))
	for i := range list {
		out = append(out, b.convertIssue(&list[i]))
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func stateName(s model.State) string {
	switch {
	case s.IsOpen():
		return openStateName
	case s.IsClosed():
		return closedStateName
	}
	return string(s)
}

// fieldUpdateFor builds the write form of a named field. Unknown names are
// sent as single enum values, the most common custom field shape.
func fieldUpdateFor(name, value string) fieldUpdate {
	switch {
	case strings.EqualFold(name, stateField):
		return fieldUpdate{Type: "StateIssueCustomField", Name: stateField, Value: named{Name: value}}
	case strings.EqualFold(name, assigneeField):
		if value == "" {
			return fieldUpdate{Type: "SingleUserIssueCustomField", Name: assigneeField}
		}
		return fieldUpdate{Type: "SingleUserIssueCustomField", Name: assigneeField, Value: loginRef{Login: strings.TrimPrefix(value, "@")}}
	case strings.EqualFold(name, milestoneField):
		versions := []named{}
		if value != "" {
			versions = append(versions, named{Name: value})
		}
		return fieldUpdate{Type: "MultiVersionIssueCustomField", Name: milestoneField, Value: versions}
	}
	if value == "" {
		return fieldUpdate{Type: "SingleEnumIssueCustomField", Name: name}
	}
	return fieldUpdate{Type: "SingleEnumIssueCustomField", Name: name, Value: named{Name: value}}
}

func tagRefs(labels []string) []tagRef {
	refs := []tagRef{}
	for _, l := range model.StringArray(labels).Dedup() {
		refs = append(refs, tagRef{Type: "IssueTag", Name: l})
	}
	return refs
}

func firstAssignee(assignees []string) string {
	for _, a := range assignees {
		if a = strings.TrimSpace(a); a != "" {
			return a
		}
	}
	return ""
}

func (b *Backend) CreateIssue(ctx context.Context, in *model.CreateIssue) (*model.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	projectID, err := b.ResolveProjectID(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	w := writeIssue{Project: &idRef{ID: projectID}, Summary: &in.Title}
	if in.Body != "" {
		w.Description = &in.Body
	}
	if len(in.Labels) > 0 {
		w.Tags = tagRefs(in.Labels)
	}
	if in.State != "" && !in.State.IsOpen() {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(stateField, stateName(in.State)))
	}
	if a := firstAssignee(in.Assignees); a != "" {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(assigneeField, a))
	}
	if in.Priority != "" {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(priorityField, in.Priority))
	}
	if in.Type != "" {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(typeField, in.Type))
	}
	if in.Milestone != "" {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(milestoneField, in.Milestone))
	}
	for name, value := range in.CustomFields {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(name, value))
	}

	var yi issue
	if err = b.client.Post(ctx, "/issues", fields(issueFields), w, transport.ProjectResource(in.ProjectID), &yi); err != nil {
		return nil, err
	}
	created := b.convertIssue(&yi)
	if in.Parent != "" {
		if err = b.LinkSubtask(ctx, created.Key, in.Parent); err != nil {
			return nil, err
		}
		created.Parent = in.Parent
	}
	return created, nil
}

func (b *Backend) UpdateIssue(ctx context.Context, id string, in *model.UpdateIssue) (*model.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	w := writeIssue{Summary: in.Title, Description: in.Body}
	if in.Labels != nil {
		w.Tags = tagRefs(*in.Labels)
	}
	if in.State != nil {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(stateField, stateName(*in.State)))
	}
	if in.Assignees != nil {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(assigneeField, firstAssignee(*in.Assignees)))
	}
	if in.Priority != nil {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(priorityField, *in.Priority))
	}
	if in.Milestone != nil {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(milestoneField, *in.Milestone))
	}
	for name, value := range in.CustomFields {
		w.CustomFields = append(w.CustomFields, fieldUpdateFor(name, value))
	}

	var yi issue
	if err := b.client.Post(ctx, transport.Path("/issues/%s", id), fields(issueFields), w, transport.IssueResource(id), &yi); err != nil {
		return nil, err
	}
	return b.convertIssue(&yi), nil
}

func (b *Backend) DeleteIssue(ctx context.Context, id string) error {
	return b.client.Delete(ctx, transport.Path("/issues/%s", id), transport.IssueResource(id))
}

func (b *Backend) ListProjects(ctx context.Context) ([]*model.Project, error) {
	out := []*model.Project{}
	for skip := 0; ; skip += pageSize {
		var page []project
		if err := b.client.Get(ctx, "/admin/projects", paged(projectFields, pageSize, skip), transport.Resource{}, &page); err != nil {
			return nil, err
		}
		for i := range page {
			out = append(out, b.convertProject(&page[i]))
		}
		if len(page) < pageSize {
			return out, nil
		}
	}
}

func (b *Backend) GetProject(ctx context.Context, id string) (*model.Project, error) {
	if !opaqueIDPattern.MatchString(id) {
		resolved, err := b.ResolveProjectID(ctx, id)
		if err != nil {
			return nil, err
		}
		id = resolved
	}
	var p project
	if err := b.client.Get(ctx, transport.Path("/admin/projects/%s", id), fields(projectFields), transport.ProjectResource(id), &p); err != nil {
		return nil, err
	}
	return b.convertProject(&p), nil
}

func (b *Backend) CreateProject(ctx context.Context, in *model.CreateProject) (*model.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	body := map[string]interface{}{
		"name":      in.Name,
		"shortName": in.ShortName,
	}
	if in.Description != "" {
		body["description"] = in.Description
	}
	if in.Leader != "" {
		body["leader"] = loginRef{Login: in.Leader}
	}
	var p project
	if err := b.client.Post(ctx, "/admin/projects", fields(projectFields), body, transport.Resource{}, &p); err != nil {
		return nil, err
	}
	mlog.Info("Created YouTrack project", mlog.String("short_name", p.ShortName), mlog.String("id", p.ID))
	return b.convertProject(&p), nil
}

// ResolveProjectID maps a short name to the internal project id. Internal
// ids pass through unchanged.
func (b *Backend) ResolveProjectID(ctx context.Context, identifier string) (string, error) {
	identifier = strings.TrimSpace(identifier)
	if opaqueIDPattern.MatchString(identifier) {
		return identifier, nil
	}
	projects, err := b.ListProjects(ctx)
	if err != nil {
		return "", err
	}
	for _, p := range projects {
		if p.ShortName == identifier {
			return p.ID, nil
		}
	}
	return "", model.NewProjectNotFound(identifier)
}

func (b *Backend) GetProjectCustomFields(ctx context.Context, projectID string) ([]*model.CustomField, error) {
	id, err := b.ResolveProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var list []projectField
	if err = b.client.Get(ctx, transport.Path("/admin/projects/%s/customFields", id), fields(customFieldFields), transport.ProjectResource(projectID), &list); err != nil {
		return nil, err
	}
	out := make([]*model.CustomField, 0, len(list))
	for i := range list {
		out = append(out, convertProjectField(&list[i]))
	}
	return out, nil
}

func (b *Backend) ListProjectUsers(ctx context.Context, projectID string) ([]*model.UserRef, error) {
	id, err := b.ResolveProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	var users []user
	if err = b.client.Get(ctx, transport.Path("/admin/projects/%s/team/users", id), fields(userFields), transport.ProjectResource(projectID), &users); err != nil {
		return nil, err
	}
	out := make([]*model.UserRef, 0, len(users))
	for i := range users {
		if u := convertUser(&users[i]); u != nil {
			out = append(out, u)
		}
	}
	return out, nil
}

// AttachField adds an existing custom field to a project.
func (b *Backend) AttachField(ctx context.Context, projectID string, in *model.AttachField) (*model.CustomField, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	id, err := b.ResolveProjectID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	req := attachFieldRequest{
		Type:           projectFieldType(in.FieldType),
		Field:          idRef{ID: in.FieldID},
		CanBeEmpty:     !in.Required,
		EmptyFieldText: in.EmptyText,
	}
	if in.BundleID != "" {
		req.Bundle = &bundleRef{Type: bundleType(in.BundleType, in.FieldType), ID: in.BundleID}
	}
	var pf projectField
	if err = b.client.Post(ctx, transport.Path("/admin/projects/%s/customFields", id), fields(customFieldFields), req, transport.ProjectResource(projectID), &pf); err != nil {
		return nil, err
	}
	return convertProjectField(&pf), nil
}

func (b *Backend) listTags(ctx context.Context) ([]issueTag, error) {
	var all []issueTag
	for skip := 0; ; skip += pageSize {
		var page []issueTag
		if err := b.client.Get(ctx, "/issueTags", paged(tagFields, pageSize, skip), transport.Resource{}, &page); err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

func (b *Backend) findTag(ctx context.Context, name string) (*issueTag, error) {
	tags, err := b.listTags(ctx)
	if err != nil {
		return nil, err
	}
	for i := range tags {
		if tags[i].Name == name {
			return &tags[i], nil
		}
	}
	return nil, model.NewNotFound("tag " + name)
}

func (b *Backend) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags, err := b.listTags(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Tag, 0, len(tags))
	for i := range tags {
		out = append(out, convertTag(&tags[i]))
	}
	return out, nil
}

func tagBody(in *model.TagInput, name string) issueTag {
	t := issueTag{Name: name}
	if in.Color != "" {
		t.Color = &tagColor{Background: "#" + in.Color}
	}
	return t
}

func (b *Backend) CreateTag(ctx context.Context, in *model.TagInput) (*model.Tag, error) {
	if err := in.Normalize(true); err != nil {
		return nil, err
	}
	var t issueTag
	if err := b.client.Post(ctx, "/issueTags", fields(tagFields), tagBody(in, in.Name), transport.Resource{}, &t); err != nil {
		return nil, err
	}
	return convertTag(&t), nil
}

func (b *Backend) UpdateTag(ctx context.Context, currentName string, in *model.TagInput) (*model.Tag, error) {
	if err := in.Normalize(false); err != nil {
		return nil, err
	}
	existing, err := b.findTag(ctx, currentName)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = existing.Name
	}
	var t issueTag
	path := transport.Path("/issueTags/%s", existing.ID)
	if err = b.client.Post(ctx, path, fields(tagFields), tagBody(in, name), transport.NamedResource("tag "+currentName), &t); err != nil {
		return nil, err
	}
	return convertTag(&t), nil
}

func (b *Backend) DeleteTag(ctx context.Context, name string) error {
	existing, err := b.findTag(ctx, name)
	if err != nil {
		return err
	}
	return b.client.Delete(ctx, transport.Path("/issueTags/%s", existing.ID), transport.NamedResource("tag "+name))
}

func (b *Backend) ListLinkTypes(ctx context.Context) ([]*model.LinkType, error) {
	var types []linkType
	if err := b.client.Get(ctx, "/issueLinkTypes", fields(linkTypeFields), transport.Resource{}, &types); err != nil {
		return nil, err
	}
	out := make([]*model.LinkType, 0, len(types))
	for i := range types {
		out = append(out, convertLinkType(&types[i]))
	}
	return out, nil
}

func (b *Backend) issueLinks(ctx context.Context, id string) ([]issueLink, error) {
	var groups []issueLink
	if err := b.client.Get(ctx, transport.Path("/issues/%s/links", id), fields(linkFields), transport.IssueResource(id), &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (b *Backend) GetIssueLinks(ctx context.Context, id string) ([]*model.Link, error) {
	groups, err := b.issueLinks(ctx, id)
	if err != nil {
		return nil, err
	}
	return convertLinks(id, groups), nil
}

func linkTypeName(name string) string {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "relates", "related", "relates to", "relates_to":
		return "Relates"
	case "depends", "depend", "dependency", "blocks", "required":
		return "Depend"
	case "duplicate", "duplicates", "duplicated-by":
		return "Duplicate"
	case "subtask", "parent":
		return model.LinkTypeSubtask
	}
	return name
}

// findLinkID returns the id of the link slot on an issue for a link type
// and direction, e.g. 142-3t. Undirected types only offer a BOTH slot.
func (b *Backend) findLinkID(ctx context.Context, id, name string, direction model.Direction) (string, error) {
	groups, err := b.issueLinks(ctx, id)
	if err != nil {
		return "", err
	}
	for _, g := range groups {
		lt := g.LinkType
		if !strings.EqualFold(lt.Name, name) && !strings.EqualFold(lt.SourceToTarget, name) && !strings.EqualFold(lt.TargetToSource, name) {
			continue
		}
		if strings.EqualFold(g.Direction, string(direction)) || (!lt.Directed && g.Direction == string(model.DirectionBoth)) {
			return g.ID, nil
		}
	}
	return "", model.NewNotFound(fmt.Sprintf("link type %s (%s) on %s", name, direction, id))
}

func issueRef(id string) map[string]string {
	if opaqueIDPattern.MatchString(id) {
		return map[string]string{"id": id}
	}
	return map[string]string{"idReadable": id}
}

func (b *Backend) LinkIssues(ctx context.Context, source, target, name string, direction model.Direction) error {
	linkID, err := b.findLinkID(ctx, source, linkTypeName(name), direction)
	if err != nil {
		return err
	}
	path := transport.Path("/issues/%s/links/%s/issues", source, linkID)
	return b.client.Post(ctx, path, nil, issueRef(target), transport.IssueResource(target), nil)
}

// LinkSubtask links the child to its parent through the child's inward
// Subtask slot.
func (b *Backend) LinkSubtask(ctx context.Context, child, parent string) error {
	return b.LinkIssues(ctx, child, parent, model.LinkTypeSubtask, model.DirectionInward)
}

func (b *Backend) AddComment(ctx context.Context, issueID, text string) (*model.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, model.NewInvalidInput("comment", "cannot be empty")
	}
	var c comment
	path := transport.Path("/issues/%s/comments", issueID)
	if err := b.client.Post(ctx, path, fields(commentFields), map[string]string{"text": text}, transport.IssueResource(issueID), &c); err != nil {
		return nil, err
	}
	return convertComment(&c), nil
}

func (b *Backend) GetComments(ctx context.Context, issueID string) ([]*model.Comment, error) {
	out := []*model.Comment{}
	path := transport.Path("/issues/%s/comments", issueID)
	for skip := 0; ; skip += pageSize {
		var page []comment
		if err := b.client.Get(ctx, path, paged(commentFields, pageSize, skip), transport.IssueResource(issueID), &page); err != nil {
			return nil, err
		}
		for i := range page {
			out = append(out, convertComment(&page[i]))
		}
		if len(page) < pageSize {
			return out, nil
		}
	}
}
