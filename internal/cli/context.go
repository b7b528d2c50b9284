// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/model"
	"github.com/mattermost/mattermost-track/store"
)

// trackerContext is the cached tracker metadata, narrowed to one project
// when one is selected.
type trackerContext struct {
	Backend        string               `json:"backend"`
	Project        *model.Project       `json:"project,omitempty"`
	Projects       []*model.Project     `json:"projects"`
	Fields         []*model.CustomField `json:"fields,omitempty"`
	Tags           []*model.Tag         `json:"tags"`
	LinkTypes      []*model.LinkType    `json:"link_types"`
	Issues         []*model.Issue       `json:"issues,omitempty"`
	CacheUpdatedAt time.Time            `json:"cache_updated_at"`
}

func newContextCmd(a *App) *cobra.Command {
	var (
		project       string
		refresh       bool
		includeIssues bool
		limit         int
	)
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Summarize projects, fields, tags and link types from the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return model.NewInvalidInput("limit", "must be positive")
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			c, err := a.store.Cache().Get()
			if err != nil {
				return err
			}
			if !refresh {
				refresh, err = c.IsStale(a.cfg.Cache.RefreshSchedule, time.Now())
				if err != nil {
					return err
				}
				refresh = refresh || c.Backend != b.Name()
			}
			if refresh {
				mlog.Debug("Refreshing tracker cache for context", mlog.String("backend", b.Name()))
				if c, err = store.Refresh(ctx, b, time.Now()); err != nil {
					return err
				}
				if err = a.store.Cache().Save(c); err != nil {
					return err
				}
			}

			out := &trackerContext{
				Backend:        c.Backend,
				Projects:       c.Projects,
				Tags:           c.Tags,
				LinkTypes:      c.LinkTypes,
				CacheUpdatedAt: c.UpdatedAt,
			}
			identifier, err := a.defaultProject(project)
			if err != nil {
				return err
			}
			if identifier != "" {
				out.Project = c.Project(identifier)
				if out.Project == nil {
					return model.NewProjectNotFound(identifier)
				}
				out.Fields = c.ProjectFields[out.Project.ID]
			}

			if includeIssues {
				var scope string
				if out.Project != nil {
					scope = out.Project.ShortName
				}
				out.Issues, err = b.SearchIssues(ctx, qualifyQuery(b.Name(), scope, ""), limit, 0)
				if err != nil {
					return err
				}
			}
			return a.printer.Context(out)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&project, "project", "p", "", "focus on a project (default: the saved default project)")
	f.BoolVar(&refresh, "refresh", false, "refresh the cache first even when it is fresh")
	f.BoolVar(&includeIssues, "include-issues", false, "also list recent issues of the project")
	f.IntVar(&limit, "limit", defaultSearchLimit, "maximum number of issues with --include-issues")
	return cmd
}
