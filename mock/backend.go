// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

// Package mock replays canned tracker responses from a scenario directory
// and records every call in call_log.jsonl for later evaluation.
package mock

import (
	"context"
	"encoding/json"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
	"github.com/mattermost/mattermost-track/transport"
)

// DirEnv selects the mock backend and names its scenario directory.
const DirEnv = "TRACK_MOCK_DIR"

// Backend implements tracker.Backend and tracker.KnowledgeBase from a
// scenario's manifest.
type Backend struct {
	dir      string
	manifest *Manifest
	log      *CallLog

	mu     sync.Mutex
	counts map[string]int
}

var (
	_ tracker.Backend       = (*Backend)(nil)
	_ tracker.KnowledgeBase = (*Backend)(nil)
)

// New loads the manifest of the scenario in dir.
func New(dir string) (*Backend, error) {
	m, err := LoadManifest(dir)
	if err != nil {
		return nil, model.NewIOError(err.Error(), err)
	}
	return &Backend{
		dir:      dir,
		manifest: m,
		log:      NewCallLog(dir),
		counts:   map[string]int{},
	}, nil
}

func (b *Backend) Name() string { return tracker.Mock }

func (b *Backend) Dir() string { return b.dir }

// LogCommand records a command line invocation.
func (b *Backend) LogCommand(argv []string) {
	b.log.record(&Entry{
		Op:         OpCLI,
		Args:       map[string]interface{}{"argv": argv},
		ResultKind: ResultOK,
	})
}

type call struct {
	op       string
	args     map[string]interface{}
	body     string
	res      transport.Resource
	fallback bool
}

func args(kv ...string) map[string]interface{} {
	out := make(map[string]interface{}, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out[kv[i]] = kv[i+1]
	}
	return out
}

func setIf(a map[string]interface{}, name, value string) {
	if value != "" {
		a[name] = value
	}
}

func setListIf(a map[string]interface{}, name string, values []string) {
	if len(values) > 0 {
		a[name] = values
	}
}

func jsonBody(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func (b *Backend) nextCall(key string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := b.counts[key]
	b.counts[key] = n + 1
	return n
}

// respond serves one call from the manifest and logs it. A miss returns a
// mock_miss error; for fallback calls the log records the miss as a
// fallback rather than a failure.
func (b *Backend) respond(ctx context.Context, c call, out interface{}) error {
	n := b.nextCall(requestKey(c.op, c.args))
	entry := &Entry{Op: c.op, Args: c.args}

	mapping, index := b.manifest.Find(c.op, c.args, c.body)
	if mapping == nil {
		miss := model.NewMockMiss(c.op, c.args)
		if c.fallback {
			entry.ResultKind = ResultFallback
		} else {
			mlog.Warn("No mock mapping matched", mlog.String("op", c.op), mlog.Any("args", c.args))
			entry.ResultKind = string(model.KindMockMiss)
			entry.Error = miss.Error()
		}
		b.log.record(entry)
		return miss
	}

	file := mapping.ResponseFile(n)
	entry.Matched = &Match{Index: index, File: file}
	err := b.serve(ctx, c, mapping, file, out)
	if err != nil {
		entry.ResultKind = string(model.KindOf(err))
		entry.Error = err.Error()
	} else {
		entry.ResultKind = ResultOK
	}
	b.log.record(entry)
	return err
}

func (b *Backend) serve(ctx context.Context, c call, m *Mapping, file string, out interface{}) error {
	if m.DelayMS > 0 {
		timer := time.NewTimer(time.Duration(m.DelayMS) * time.Millisecond)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return transport.MapRequestError(ctx.Err())
		case <-timer.C:
		}
	}

	var data []byte
	if file != "" {
		path := filepath.Join(b.dir, ResponsesDir, file)
		var err error
		if data, err = ioutil.ReadFile(path); err != nil {
			return model.NewIOError("failed to read mock response "+path, err)
		}
	}

	if m.Status >= 400 {
		return transport.MapStatus(m.Status, nil, data, c.res)
	}
	if out == nil {
		return nil
	}
	if file == "" {
		return model.NewParseError("mock mapping for "+c.op+" has no response file", nil)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return model.NewParseError("failed to parse mock response "+file+": "+err.Error(), err)
	}
	return nil
}

func normalizeIssues(issues []*model.Issue) []*model.Issue {
	out := make([]*model.Issue, 0, len(issues))
	for _, i := range issues {
		if i != nil {
			out = append(out, i.Normalize())
		}
	}
	return out
}

func (b *Backend) GetIssue(ctx context.Context, id string) (*model.Issue, error) {
	var issue model.Issue
	err := b.respond(ctx, call{op: "get_issue", args: args("id", id), res: transport.IssueResource(id)}, &issue)
	if model.IsKind(err, model.KindMockMiss) {
		return nil, model.NewIssueNotFound(id).WithCause(err)
	}
	if err != nil {
		return nil, err
	}
	return issue.Normalize(), nil
}

func (b *Backend) SearchIssues(ctx context.Context, query string, limit, skip int) ([]*model.Issue, error) {
	a := args("query", query, "limit", strconv.Itoa(limit), "skip", strconv.Itoa(skip))
	var issues []*model.Issue
	if err := b.respond(ctx, call{op: "search_issues", args: a}, &issues); err != nil {
		return nil, err
	}
	if limit >= 0 && len(issues) > limit {
		issues = issues[:limit]
	}
	return normalizeIssues(issues), nil
}

func (b *Backend) CreateIssue(ctx context.Context, in *model.CreateIssue) (*model.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := args("project", in.ProjectID, "title", in.Title)
	setIf(a, "state", string(in.State))
	setIf(a, "parent", in.Parent)
	setIf(a, "type", in.Type)
	setIf(a, "priority", in.Priority)
	setListIf(a, "labels", in.Labels)
	setListIf(a, "assignees", in.Assignees)

	var issue model.Issue
	c := call{op: "create_issue", args: a, body: jsonBody(in), res: transport.ProjectResource(in.ProjectID)}
	if err := b.respond(ctx, c, &issue); err != nil {
		return nil, err
	}
	return issue.Normalize(), nil
}

func (b *Backend) UpdateIssue(ctx context.Context, id string, in *model.UpdateIssue) (*model.Issue, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	a := args("id", id)
	if in.State != nil {
		a["state"] = string(*in.State)
	}
	fields := make([]string, 0, len(in.CustomFields))
	for name := range in.CustomFields {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	setListIf(a, "fields", fields)

	var issue model.Issue
	c := call{op: "update_issue", args: a, body: jsonBody(in), res: transport.IssueResource(id)}
	if err := b.respond(ctx, c, &issue); err != nil {
		return nil, err
	}
	return issue.Normalize(), nil
}

func (b *Backend) DeleteIssue(ctx context.Context, id string) error {
	return b.respond(ctx, call{op: "delete_issue", args: args("id", id), res: transport.IssueResource(id)}, nil)
}

func (b *Backend) ListProjects(ctx context.Context) ([]*model.Project, error) {
	projects := []*model.Project{}
	if err := b.respond(ctx, call{op: "list_projects", args: args()}, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (b *Backend) GetProject(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := b.respond(ctx, call{op: "get_project", args: args("id", id), res: transport.ProjectResource(id)}, &p)
	if model.IsKind(err, model.KindMockMiss) {
		return nil, model.NewProjectNotFound(id).WithCause(err)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (b *Backend) CreateProject(ctx context.Context, in *model.CreateProject) (*model.Project, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var p model.Project
	c := call{op: "create_project", args: args("name", in.Name, "short_name", in.ShortName), body: jsonBody(in)}
	if err := b.respond(ctx, c, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// ResolveProjectID serves resolve_project_id mappings, which may hold a
// JSON string or a project object. Without one it matches against
// list_projects.
func (b *Backend) ResolveProjectID(ctx context.Context, identifier string) (string, error) {
	var raw json.RawMessage
	c := call{op: "resolve_project_id", args: args("identifier", identifier), res: transport.ProjectResource(identifier), fallback: true}
	err := b.respond(ctx, c, &raw)
	if err == nil {
		var id string
		if json.Unmarshal(raw, &id) == nil {
			return id, nil
		}
		var p model.Project
		if perr := json.Unmarshal(raw, &p); perr != nil || p.ID == "" {
			return "", model.NewParseError("resolve_project_id response is neither an id nor a project", perr)
		}
		return p.ID, nil
	}
	if !model.IsKind(err, model.KindMockMiss) {
		return "", err
	}

	projects, err := b.ListProjects(ctx)
	if err != nil {
		return "", err
	}
	if p := model.FindProject(projects, identifier); p != nil {
		return p.ID, nil
	}
	return "", model.NewProjectNotFound(identifier)
}

func (b *Backend) GetProjectCustomFields(ctx context.Context, projectID string) ([]*model.CustomField, error) {
	fields := []*model.CustomField{}
	c := call{op: "get_project_custom_fields", args: args("project_id", projectID), res: transport.ProjectResource(projectID)}
	if err := b.respond(ctx, c, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}

func (b *Backend) ListProjectUsers(ctx context.Context, projectID string) ([]*model.UserRef, error) {
	users := []*model.UserRef{}
	c := call{op: "list_project_users", args: args("project_id", projectID), res: transport.ProjectResource(projectID), fallback: true}
	err := b.respond(ctx, c, &users)
	if model.IsKind(err, model.KindMockMiss) {
		return []*model.UserRef{}, nil
	}
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (b *Backend) AttachField(ctx context.Context, projectID string, in *model.AttachField) (*model.CustomField, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var f model.CustomField
	c := call{op: "attach_field", args: args("project_id", projectID, "field_id", in.FieldID), body: jsonBody(in), res: transport.ProjectResource(projectID)}
	if err := b.respond(ctx, c, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func canonicalTag(t *model.Tag) *model.Tag {
	if t.Color != "" {
		t.Color = model.CanonicalColor(t.Color)
	}
	return t
}

func (b *Backend) ListTags(ctx context.Context) ([]*model.Tag, error) {
	tags := []*model.Tag{}
	if err := b.respond(ctx, call{op: "list_tags", args: args()}, &tags); err != nil {
		return nil, err
	}
	for _, t := range tags {
		canonicalTag(t)
	}
	return tags, nil
}

func (b *Backend) CreateTag(ctx context.Context, in *model.TagInput) (*model.Tag, error) {
	if err := in.Normalize(true); err != nil {
		return nil, err
	}
	a := args("name", in.Name)
	setIf(a, "color", in.Color)
	var t model.Tag
	if err := b.respond(ctx, call{op: "create_tag", args: a, body: jsonBody(in)}, &t); err != nil {
		return nil, err
	}
	return canonicalTag(&t), nil
}

func (b *Backend) UpdateTag(ctx context.Context, currentName string, in *model.TagInput) (*model.Tag, error) {
	if err := in.Normalize(false); err != nil {
		return nil, err
	}
	a := args("name", currentName)
	setIf(a, "new_name", in.Name)
	setIf(a, "color", in.Color)
	var t model.Tag
	if err := b.respond(ctx, call{op: "update_tag", args: a, body: jsonBody(in), res: transport.NamedResource("tag " + currentName)}, &t); err != nil {
		return nil, err
	}
	return canonicalTag(&t), nil
}

func (b *Backend) DeleteTag(ctx context.Context, name string) error {
	return b.respond(ctx, call{op: "delete_tag", args: args("name", name), res: transport.NamedResource("tag " + name)}, nil)
}

func (b *Backend) ListLinkTypes(ctx context.Context) ([]*model.LinkType, error) {
	types := []*model.LinkType{}
	err := b.respond(ctx, call{op: "list_link_types", args: args(), fallback: true}, &types)
	if model.IsKind(err, model.KindMockMiss) {
		return []*model.LinkType{}, nil
	}
	if err != nil {
		return nil, err
	}
	return types, nil
}

func (b *Backend) GetIssueLinks(ctx context.Context, id string) ([]*model.Link, error) {
	links := []*model.Link{}
	if err := b.respond(ctx, call{op: "get_issue_links", args: args("issue_id", id), res: transport.IssueResource(id)}, &links); err != nil {
		return nil, err
	}
	return links, nil
}

func (b *Backend) LinkIssues(ctx context.Context, source, target, linkType string, direction model.Direction) error {
	a := args("source", source, "target", target, "link_type", linkType, "direction", string(direction))
	return b.respond(ctx, call{op: "link_issues", args: a, res: transport.IssueResource(source)}, nil)
}

func (b *Backend) LinkSubtask(ctx context.Context, child, parent string) error {
	return b.respond(ctx, call{op: "link_subtask", args: args("child", child, "parent", parent), res: transport.IssueResource(child)}, nil)
}

func (b *Backend) AddComment(ctx context.Context, issueID, text string) (*model.Comment, error) {
	var c model.Comment
	if err := b.respond(ctx, call{op: "add_comment", args: args("issue_id", issueID, "text", text), body: text, res: transport.IssueResource(issueID)}, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (b *Backend) GetComments(ctx context.Context, issueID string) ([]*model.Comment, error) {
	comments := []*model.Comment{}
	if err := b.respond(ctx, call{op: "get_comments", args: args("issue_id", issueID), res: transport.IssueResource(issueID)}, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
