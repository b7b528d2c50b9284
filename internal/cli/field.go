// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"github.com/mattermost/mattermost-server/v6/shared/mlog"
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/model"
)

func newFieldCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "field",
		Aliases: []string{"fields"},
		Short:   "Manage instance-wide custom field definitions",
	}
	cmd.AddCommand(
		newFieldListCmd(a),
		newFieldCreateCmd(a),
		newFieldNewCmd(a),
	)
	return cmd
}

func newFieldListCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List custom field definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.Backend()
			if err != nil {
				return err
			}
			defs, err := b.ListCustomFieldDefinitions(cmd.Context())
			if err != nil {
				return err
			}
			return a.printer.FieldDefinitions(defs)
		},
	}
}

func newFieldCreateCmd(a *App) *cobra.Command {
	var name, fieldType string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a custom field definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseCreatableFieldType(fieldType)
			if err != nil {
				return err
			}
			in := &model.CreateCustomField{Name: name, Type: t}
			if err = in.Validate(); err != nil {
				return err
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			def, err := b.CreateCustomField(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.printer.FieldDefinition(def)
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "field name")
	cmd.Flags().StringVar(&fieldType, "type", "", "enum, multi-enum, state, user, text, integer, float, date or period")
	return cmd
}

// newFieldNewCmd creates a value bundle when the type needs one, the field
// definition, and attaches the field to a project.
func newFieldNewCmd(a *App) *cobra.Command {
	var (
		name, fieldType, project, bundleName, emptyText string
		values, resolved                                []string
		required                                        bool
	)
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a custom field with its values and attach it to a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseCreatableFieldType(fieldType)
			if err != nil {
				return err
			}
			in := &model.CreateCustomField{Name: name, Type: t}
			if err = in.Validate(); err != nil {
				return err
			}
			bt, hasBundle := model.BundleFor(t)
			if hasBundle && t != model.FieldUser && len(values) == 0 {
				return model.NewInvalidInput("value", "at least one value is required for "+string(t)+" fields")
			}
			if !hasBundle && len(values) > 0 {
				return model.NewInvalidInput("value", string(t)+" fields have no values")
			}

			b, err := a.Backend()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			projectID, err := a.resolveProject(ctx, b, project)
			if err != nil {
				return err
			}

			attach := &model.AttachField{Required: required, EmptyText: emptyText}
			if len(values) > 0 {
				if bundleName == "" {
					bundleName = name
				}
				bundle, err := b.CreateBundle(ctx, &model.CreateBundle{
					Name:   bundleName,
					Type:   bt,
					Values: model.NewBundleValues(bt, values, resolved),
				})
				if err != nil {
					return err
				}
				attach.BundleID = bundle.ID
				attach.BundleType = string(bt)
				mlog.Debug("Created value bundle", mlog.String("bundle_id", bundle.ID), mlog.Int("values", len(bundle.Values)))
			}

			def, err := b.CreateCustomField(ctx, in)
			if err != nil {
				return err
			}
			attach.FieldID = def.ID
			attach.FieldType = def.TypeID
			if attach.FieldType == "" {
				attach.FieldType = string(def.Type)
			}
			field, err := b.AttachField(ctx, projectID, attach)
			if err != nil {
				return err
			}
			return a.printer.Field(field)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&name, "name", "n", "", "field name")
	f.StringVar(&fieldType, "type", "", "enum, multi-enum, state, user, text, integer, float, date or period")
	f.StringVarP(&project, "project", "p", "", "project to attach the field to (default: the saved default project)")
	f.StringSliceVar(&values, "value", nil, "bundle value, repeatable")
	f.StringSliceVar(&resolved, "resolved", nil, "state value that resolves issues, repeatable")
	f.StringVar(&bundleName, "bundle-name", "", "name of the created bundle (default: the field name)")
	f.BoolVar(&required, "required", false, "the field cannot be empty")
	f.StringVar(&emptyText, "empty-text", "", "text shown when the field is empty")
	return cmd
}
