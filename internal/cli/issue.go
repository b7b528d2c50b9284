// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/tracker"
)

const defaultSearchLimit = 20

func newIssueCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issue",
		Aliases: []string{"i"},
		Short:   "Read and change issues",
	}
	cmd.AddCommand(
		newIssueGetCmd(a),
		newIssueSearchCmd(a),
		newIssueCountCmd(a),
		newIssueCreateCmd(a),
		newIssueUpdateCmd(a),
		newIssueDeleteCmd(a),
		newIssueStartCmd(a),
		newIssueCompleteCmd(a),
		newIssueCommentCmd(a),
		newIssueCommentsCmd(a),
		newIssueLinkCmd(a),
		newIssueLinksCmd(a),
		newIssueLinkTypesCmd(a),
		newIssueSubtaskCmd(a),
	)
	return cmd
}

func newIssueGetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			issue, err := b.GetIssue(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer.Issue(issue)
		},
	}
}

// looksLikeJQL reports whether a Jira query is already structured.
func looksLikeJQL(q string) bool {
	for _, op := range []string{"=", "~", " AND ", " OR ", " ORDER BY ", " IN ("} {
		if strings.Contains(strings.ToUpper(q), op) {
			return true
		}
	}
	return false
}

// qualifyQuery restricts a free query to a project in the syntax of the
// backend.
func qualifyQuery(backend, project, query string) string {
	query = strings.TrimSpace(query)
	if project == "" {
		return query
	}
	var q string
	switch backend {
	case tracker.Jira:
		switch {
		case query == "":
			q = fmt.Sprintf("project = %s", project)
		case looksLikeJQL(query):
			q = fmt.Sprintf("project = %s AND (%s)", project, query)
		default:
			q = fmt.Sprintf("project = %s AND text ~ %q", project, query)
		}
		return q
	case tracker.GitHub:
		q = "repo:" + project
	case tracker.GitLab:
		q = "project:" + project
	default:
		q = "project: " + project
	}
	if query != "" {
		q += " " + query
	}
	return q
}

func newIssueSearchCmd(a *App) *cobra.Command {
	var (
		project string
		limit   int
		skip    int
		all     bool
	)
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search issues with the native query language of the backend",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return model.NewInvalidInput("limit", "must be positive")
			}
			if skip < 0 {
				return model.NewInvalidInput("skip", "cannot be negative")
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			query = qualifyQuery(b.Name(), project, query)

			var issues []*model.Issue
			if all {
				issues, err = tracker.FetchAllIssues(cmd.Context(), b, query)
			} else {
				issues, err = b.SearchIssues(cmd.Context(), query, limit, skip)
			}
			if err != nil {
				return err
			}
			return a.printer.Issues(issues)
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", "restrict the search to a project")
	cmd.Flags().IntVar(&limit, "limit", defaultSearchLimit, "maximum number of issues")
	cmd.Flags().IntVar(&skip, "skip", 0, "number of issues to skip")
	cmd.Flags().BoolVar(&all, "all", false, "fetch every page up to "+tracker.MaxResultsEnv)
	return cmd
}

// parseFields turns name=value pairs into a map.
func parseFields(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, value, ok := strings.Cut(p, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, model.NewInvalidInput("field", "expected name=value, got "+p)
		}
		out[name] = strings.TrimSpace(value)
	}
	return out, nil
}

func newIssueCreateCmd(a *App) *cobra.Command {
	var (
		in      model.CreateIssue
		project string
		state   string
		fields  []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an issue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(in.Title) == "" {
				return model.NewInvalidInput("summary", "is required")
			}
			custom, err := parseFields(fields)
			if err != nil {
				return err
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			projectID, err := a.resolveProject(cmd.Context(), b, project)
			if err != nil {
				return err
			}
			in.ProjectID = projectID
			in.CustomFields = custom
			if state != "" {
				in.State = model.ParseState(state)
			}
			issue, err := b.CreateIssue(cmd.Context(), &in)
			if err != nil {
				return err
			}
			return a.printer.Render(issue, func(w io.Writer) {
				fmt.Fprintf(w, "Created %s  %s\n", a.printer.bold(issueKey(issue)), issue.Title)
				if issue.URL != "" {
					fmt.Fprintln(w, issue.URL)
				}
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&project, "project", "p", "", "project short name or id (default: the saved default project)")
	f.StringVarP(&in.Title, "summary", "s", "", "issue summary")
	f.StringVarP(&in.Body, "description", "d", "", "issue description")
	f.StringSliceVarP(&in.Labels, "tag", "t", nil, "tag or label, repeatable")
	f.StringSliceVar(&in.Assignees, "assignee", nil, "assignee login, repeatable")
	f.StringVar(&state, "state", "", "initial state")
	f.StringVar(&in.Milestone, "milestone", "", "milestone or fix version")
	f.StringVar(&in.Parent, "parent", "", "parent issue id")
	f.StringVar(&in.Type, "type", "", "issue type")
	f.StringVar(&in.Priority, "priority", "", "priority")
	f.StringArrayVarP(&fields, "field", "f", nil, "custom field as name=value, repeatable")
	return cmd
}

func newIssueUpdateCmd(a *App) *cobra.Command {
	var (
		title, body, state, milestone, priority string
		labels, assignees, fields               []string
	)
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change fields of an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in model.UpdateIssue
			f := cmd.Flags()
			if f.Changed("summary") {
				in.Title = &title
			}
			if f.Changed("description") {
				in.Body = &body
			}
			if f.Changed("state") {
				s := model.ParseState(state)
				in.State = &s
			}
			if f.Changed("tag") {
				in.Labels = &labels
			}
			if f.Changed("assignee") {
				in.Assignees = &assignees
			}
			if f.Changed("milestone") {
				in.Milestone = &milestone
			}
			if f.Changed("priority") {
				in.Priority = &priority
			}
			custom, err := parseFields(fields)
			if err != nil {
				return err
			}
			in.CustomFields = custom
			if err := in.Validate(); err != nil {
				return err
			}

			b, err := a.Backend()
			if err != nil {
				return err
			}
			issue, err := b.UpdateIssue(cmd.Context(), args[0], &in)
			if err != nil {
				return err
			}
			return a.printer.Issue(issue)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&title, "summary", "s", "", "new summary")
	f.StringVarP(&body, "description", "d", "", "new description")
	f.StringVar(&state, "state", "", "new state")
	f.StringSliceVarP(&labels, "tag", "t", nil, "replace tags or labels, repeatable")
	f.StringSliceVar(&assignees, "assignee", nil, "replace assignees, repeatable")
	f.StringVar(&milestone, "milestone", "", "milestone or fix version")
	f.StringVar(&priority, "priority", "", "priority")
	f.StringArrayVarP(&fields, "field", "f", nil, "custom field as name=value, repeatable")
	return cmd
}

func newIssueDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			if err := b.DeleteIssue(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.printer.Message("Deleted issue %s", args[0])
		},
	}
}

func newIssueCommentCmd(a *App) *cobra.Command {
	var message string
	cmd := &cobra.Command{
		Use:   "comment <id>",
		Short: "Comment on an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(message) == "" {
				return model.NewInvalidInput("message", "is required")
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			c, err := b.AddComment(cmd.Context(), args[0], message)
			if err != nil {
				return err
			}
			return a.printer.Comment(c)
		},
	}
	cmd.Flags().StringVarP(&message, "message", "m", "", "comment text")
	return cmd
}

func newIssueCommentsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "comments <id>",
		Short: "List the comments of an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			comments, err := b.GetComments(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer.Comments(comments)
		},
	}
}

func newIssueLinkCmd(a *App) *cobra.Command {
	var (
		linkType  string
		direction string
	)
	cmd := &cobra.Command{
		Use:   "link <source> <target>",
		Short: "Link two issues",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := model.ParseDirection(direction)
			if err != nil {
				return err
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			if err := b.LinkIssues(cmd.Context(), args[0], args[1], linkType, dir); err != nil {
				return err
			}
			return a.printer.Message("Linked %s to %s (%s)", args[0], args[1], linkType)
		},
	}
	cmd.Flags().StringVarP(&linkType, "type", "t", "relates", "link type name")
	cmd.Flags().StringVar(&direction, "direction", "outward", "outward, inward or both")
	return cmd
}

func newIssueLinksCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "links <id>",
		Short: "List the links of an issue",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			links, err := b.GetIssueLinks(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return a.printer.Links(links)
		},
	}
}

func newIssueLinkTypesCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "link-types",
		Short: "List the available link types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			types, err := b.ListLinkTypes(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.LinkTypes(types)
		},
	}
}

func newIssueSubtaskCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "subtask <child> <parent>",
		Short: "Make an issue a subtask of another",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			if err := b.LinkSubtask(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			return a.printer.Message("%s is now a subtask of %s", args[0], args[1])
		},
	}
}
