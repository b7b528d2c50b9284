// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/store"
)

func newConfigCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"cfg"},
		Short:   "Manage local preferences such as the default project",
	}
	cmd.AddCommand(
		newConfigProjectCmd(a),
		newConfigShowCmd(a),
		newConfigClearCmd(a),
		newConfigPathCmd(a),
	)
	return cmd
}

func newConfigProjectCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "project <project>",
		Short: "Set the default project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			id, err := b.ResolveProjectID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p, err := b.GetProject(cmd.Context(), id)
			if err != nil {
				return err
			}
			prefs := &store.Prefs{DefaultProjectID: p.ID, DefaultProjectName: p.ShortName}
			if err := a.store.Prefs().Save(prefs); err != nil {
				return err
			}
			return a.printer.Prefs(prefs, a.store.Prefs().Path())
		},
	}
}

func newConfigShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the local preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := a.store.Prefs().Get()
			if err != nil {
				return err
			}
			return a.printer.Prefs(prefs, a.store.Prefs().Path())
		},
	}
}

func newConfigClearCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the local preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.store.Prefs().Clear(); err != nil {
				return err
			}
			return a.printer.Message("Cleared %s", a.store.Prefs().Path())
		},
	}
}

func printPath(p *Printer, path string) error {
	return p.Render(map[string]string{"path": path}, func(w io.Writer) {
		fmt.Fprintln(w, path)
	})
}

func newConfigPathCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path of the local preferences file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPath(a.printer, a.store.Prefs().Path())
		},
	}
}
