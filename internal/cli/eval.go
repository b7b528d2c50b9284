// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/mock"
	"github.com/mattermost/mattermost-track/model"
)

func newEvalCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "eval",
		Short:       "Score mock call logs against scenarios",
		Annotations: map[string]string{annotationNoMockLog: "true"},
	}
	cmd.AddCommand(
		newEvalRunCmd(a),
		newEvalClearCmd(a),
		newEvalListCmd(a),
	)
	return cmd
}

func newEvalRunCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "run <dir>",
		Short: "Evaluate the call log of a scenario directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := mock.EvaluateDir(args[0])
			if err != nil {
				return model.NewIOError(err.Error(), err)
			}
			return a.printer.Report(report)
		},
	}
}

func newEvalClearCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear <dir>",
		Short: "Delete the call log of a scenario directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := mock.ClearCallLog(args[0]); err != nil {
				return model.NewIOError(err.Error(), err)
			}
			return a.printer.Message("Cleared call log in %s", args[0])
		},
	}
}

func newEvalListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [root]",
		Short: "List the scenarios under a directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			scenarios, err := mock.ListScenarios(root)
			if err != nil {
				return model.NewIOError(err.Error(), err)
			}
			return a.printer.Scenarios(scenarios)
		},
	}
}
