// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/model"
)

func newProjectCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"p"},
		Short:   "Inspect and create projects",
	}
	cmd.AddCommand(
		newProjectListCmd(a),
		newProjectGetCmd(a),
		newProjectCreateCmd(a),
		newProjectResolveCmd(a),
		newProjectFieldsCmd(a),
		newProjectUsersCmd(a),
		newProjectAttachFieldCmd(a),
	)
	return cmd
}

func newProjectListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			projects, err := b.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.Projects(projects)
		},
	}
}

func newProjectGetCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <project>",
		Short: "Show a project by short name or id",
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
			return a.printer.Project(p)
		},
	}
}

func newProjectCreateCmd(a *App) *cobra.Command {
	var in model.CreateProject
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := in.Validate(); err != nil {
				return err
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			p, err := b.CreateProject(cmd.Context(), &in)
			if err != nil {
				return err
			}
			return a.printer.Project(p)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in.Name, "name", "n", "", "project name")
	f.StringVarP(&in.ShortName, "short-name", "s", "", "project short name or key")
	f.StringVarP(&in.Description, "description", "d", "", "project description")
	f.StringVar(&in.Leader, "leader", "", "project leader login")
	return cmd
}

func newProjectResolveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <project>",
		Short: "Print the id of a project short name",
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
			return a.printer.Render(map[string]string{"identifier": args[0], "id": id}, func(w io.Writer) {
				fmt.Fprintln(w, id)
			})
		},
	}
}

func newProjectFieldsCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <project>",
		Short: "List the custom fields of a project",
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
			fields, err := b.GetProjectCustomFields(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printer.Fields(fields)
		},
	}
}

func newProjectUsersCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "users <project>",
		Short: "List the users of a project",
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
			users, err := b.ListProjectUsers(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.printer.Users(users)
		},
	}
}

func newProjectAttachFieldCmd(a *App) *cobra.Command {
	var in model.AttachField
	cmd := &cobra.Command{
		Use:   "attach-field <project>",
		Short: "Attach an existing custom field to a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := in.Validate(); err != nil {
				return err
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			id, err := b.ResolveProjectID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			field, err := b.AttachField(cmd.Context(), id, &in)
			if err != nil {
				return err
			}
			return a.printer.Field(field)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&in.FieldID, "field", "f", "", "custom field id")
	f.StringVar(&in.FieldType, "field-type", "", "project field type, backend specific")
	f.StringVar(&in.BundleID, "bundle", "", "value bundle id")
	f.StringVar(&in.BundleType, "bundle-type", "", "value bundle type, backend specific")
	f.BoolVar(&in.Required, "required", false, "the field cannot be empty")
	f.StringVar(&in.EmptyText, "empty-text", "", "text shown when the field is empty")
	return cmd
}
