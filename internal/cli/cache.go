// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"time"

	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/store"
)

func newCacheCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local tracker metadata cache",
	}
	cmd.AddCommand(
		newCacheRefreshCmd(a),
		newCacheShowCmd(a),
		newCachePathCmd(a),
	)
	return cmd
}

func newCacheRefreshCmd(a *App) *cobra.Command {
	var ifStale bool
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch projects, custom fields, tags and link types into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if ifStale {
				current, err := a.store.Cache().Get()
				if err != nil {
					return err
				}
				stale, err := current.IsStale(a.cfg.Cache.RefreshSchedule, now)
				if err != nil {
					return err
				}
				if !stale {
					mlog.Debug("Cache is fresh", mlog.String("schedule", a.cfg.Cache.RefreshSchedule))
					return a.printer.Cache(current)
				}
			}

			b, err := a.Backend()
			if err != nil {
				return err
			}
			c, err := store.Refresh(cmd.Context(), b, now)
			if err != nil {
				return err
			}
			if err := a.store.Cache().Save(c); err != nil {
				return err
			}
			return a.printer.Cache(c)
		},
	}
	cmd.Flags().BoolVar(&ifStale, "if-stale", false, "refresh only when the cache is older than cache.refresh_schedule allows")
	return cmd
}

func newCacheShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cached metadata",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.store.Cache().Get()
			if err != nil {
				return err
			}
			if c == nil {
				return a.printer.Message("No cache at %s, run track cache refresh", a.store.Cache().Path())
			}
			return a.printer.Cache(c)
		},
	}
}

func newCachePathCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the path of the cache file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPath(a.printer, a.store.Cache().Path())
		},
	}
}
