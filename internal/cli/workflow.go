// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/model"
)

const defaultStartState = "In Progress"

func newIssueCountCmd(a *App) *cobra.Command {
	var project string
	cmd := &cobra.Command{
		Use:   "count [query]",
		Short: "Count the issues matching a query",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			query = qualifyQuery(b.Name(), project, query)
			n, err := b.GetIssueCount(cmd.Context(), query)
			if err != nil {
				return err
			}
			return a.printer.Count(query, n)
		},
	}
	cmd.Flags().StringVarP(&project, "project", "p", "", "restrict the count to a project")
	return cmd
}

// stateResult is the outcome of moving one issue.
type stateResult struct {
	ID    string       `json:"id"`
	Issue *model.Issue `json:"issue,omitempty"`
	Error string       `json:"error,omitempty"`
}

// newIssueMoveCmd builds a shortcut that moves each given issue to one
// state. With --field the state is written to that custom field instead
// of the issue state.
func newIssueMoveCmd(a *App, use, short, defaultState string, aliases ...string) *cobra.Command {
	var state, field string
	cmd := &cobra.Command{
		Use:     use + " <id>[,<id>...]",
		Aliases: aliases,
		Short:   short,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ids model.StringArray
			for _, arg := range args {
				ids = append(ids, model.SplitStringArray(arg)...)
			}
			ids = ids.Dedup()
			if len(ids) == 0 {
				return model.NewInvalidInput("id", "at least one issue id is required")
			}
			if state == "" {
				return model.NewInvalidInput("state", "is required")
			}
			var in model.UpdateIssue
			if field != "" {
				in.CustomFields = map[string]string{field: state}
			} else {
				s := model.ParseState(state)
				in.State = &s
			}

			b, err := a.Backend()
			if err != nil {
				return err
			}
			var (
				results  []*stateResult
				firstErr error
				failed   int
			)
			for _, id := range ids {
				issue, err := b.UpdateIssue(cmd.Context(), id, &in)
				if err != nil {
					mlog.Debug("Failed to move issue", mlog.String("id", id), mlog.Err(err))
					results = append(results, &stateResult{ID: id, Error: err.Error()})
					if firstErr == nil {
						firstErr = err
					}
					failed++
					continue
				}
				results = append(results, &stateResult{ID: id, Issue: issue})
			}
			if err := a.printer.StateResults(results, state); err != nil {
				return err
			}
			if firstErr != nil {
				return errors.Wrapf(firstErr, "%d of %d issues failed", failed, len(ids))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", defaultState, "target state")
	cmd.Flags().StringVar(&field, "field", "", "custom field that holds the state, such as Stage")
	return cmd
}

func newIssueStartCmd(a *App) *cobra.Command {
	return newIssueMoveCmd(a, "start", "Move issues to an in-progress state", defaultStartState)
}

func newIssueCompleteCmd(a *App) *cobra.Command {
	return newIssueMoveCmd(a, "complete", "Close issues or move them to a resolved state", string(model.StateClosed), "done", "resolve")
}
