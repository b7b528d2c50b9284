// Copyright (c) 2017-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package cli

import (
	"github.com/spf13/cobra"

	"github.com/mattermost/mattermost-track/model"
)

func newBundleCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "bundle",
		Aliases: []string{"bundles"},
		Short:   "Manage value bundles of enum, state and other custom fields",
	}
	cmd.AddCommand(
		newBundleListCmd(a),
		newBundleCreateCmd(a),
		newBundleAddValueCmd(a),
	)
	return cmd
}

const bundleTypeUsage = "bundle type: enum, state, ownedField, version, build or user"

func newBundleListCmd(a *App) *cobra.Command {
	var bundleType string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bundles of one type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseBundleType(bundleType)
			if err != nil {
				return err
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			bundles, err := b.ListBundles(cmd.Context(), t)
			if err != nil {
				return err
			}
			return a.printer.Bundles(bundles)
		},
	}
	cmd.Flags().StringVar(&bundleType, "type", string(model.BundleEnum), bundleTypeUsage)
	return cmd
}

func newBundleCreateCmd(a *App) *cobra.Command {
	var (
		name, bundleType string
		values, resolved []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a bundle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseBundleType(bundleType)
			if err != nil {
				return err
			}
			in := &model.CreateBundle{Name: name, Type: t, Values: model.NewBundleValues(t, values, resolved)}
			if err = in.Validate(); err != nil {
				return err
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			bundle, err := b.CreateBundle(cmd.Context(), in)
			if err != nil {
				return err
			}
			return a.printer.Bundle(bundle)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&name, "name", "n", "", "bundle name")
	f.StringVar(&bundleType, "type", string(model.BundleEnum), bundleTypeUsage)
	f.StringSliceVar(&values, "value", nil, "value, repeatable")
	f.StringSliceVar(&resolved, "resolved", nil, "state value that resolves issues, repeatable")
	return cmd
}

func newBundleAddValueCmd(a *App) *cobra.Command {
	var (
		bundleType       string
		values, resolved []string
	)
	cmd := &cobra.Command{
		Use:   "add-value <bundle-id>",
		Short: "Add values to an existing bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := model.ParseBundleType(bundleType)
			if err != nil {
				return err
			}
			added := model.NewBundleValues(t, values, resolved)
			for _, v := range added {
				v.Ordinal = nil
			}
			if err = model.ValidateBundleValues(added); err != nil {
				return err
			}
			b, err := a.Backend()
			if err != nil {
				return err
			}
			added, err = b.AddBundleValues(cmd.Context(), t, args[0], added)
			if err != nil {
				return err
			}
			return a.printer.BundleValues(added)
		},
	}
	f := cmd.Flags()
	f.StringVar(&bundleType, "type", string(model.BundleEnum), bundleTypeUsage)
	f.StringSliceVar(&values, "value", nil, "value, repeatable")
	f.StringSliceVar(&resolved, "resolved", nil, "state value that resolves issues, repeatable")
	return cmd
}
