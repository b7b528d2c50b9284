// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/model"
)

func newTagCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tag",
		Aliases: []string{"t", "tags"},
		Short:   "Manage tags and labels",
	}
	cmd.AddCommand(
		newTagListCmd(a),
		newTagCreateCmd(a),
		newTagUpdateCmd(a),
		newTagDeleteCmd(a),
	)
	return cmd
}

func newTagListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			tags, err := b.ListTags(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.Tags(tags)
		},
	}
}

func tagFlags(cmd *cobra.Command, in *model.TagInput) {
	f := cmd.Flags()
	f.StringVarP(&in.Name, "name", "n", "", "tag name")
	f.StringVarP(&in.Color, "color", "c", "", "hex color such as fc2929 or #fc2929")
	f.StringVarP(&in.Description, "description", "d", "", "tag description")
}

func newTagCreateCmd(a *App) *cobra.Command {
	var in model.TagInput
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := in.Normalize(true); err != nil {
				return err
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			tag, err := b.CreateTag(cmd.Context(), &in)
			if err != nil {
				return err
			}
			return a.printer.Tag(tag)
		},
	}
	tagFlags(cmd, &in)
	return cmd
}

func newTagUpdateCmd(a *App) *cobra.Command {
	var in model.TagInput
	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Rename or recolor a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := in.Normalize(false); err != nil {
				return err
			}
			if in.Name == "" && in.Color == "" && in.Description == "" {
				return model.NewInvalidInput("update", "no fields to change")
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			tag, err := b.UpdateTag(cmd.Context(), args[0], &in)
			if err != nil {
				return err
			}
			return a.printer.Tag(tag)
		},
	}
	tagFlags(cmd, &in)
	return cmd
}

func newTagDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a tag",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			if err := b.DeleteTag(cmd.Context(), args[0]); err != nil {
				return err
			}
			return a.printer.Message("Deleted tag %s", args[0])
		},
	}
}
