// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/generator"
	"github.com/MKhiriev/go-saforia/internal/store"
)

func (c *CLI) entriesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "entries",
		Aliases: []string{"entry"},
		Short:   "Manage saved postfixes",
		Long: `Manage saved postfixes. Entries are bound to the vault that was active
when they were added; entries without a vault are shown under every vault.`,
	}

	cmd.AddCommand(
		c.entriesListCommand(),
		c.entriesAddCommand(),
		c.entriesDeleteCommand(),
		c.entriesEditCommand(),
		c.entriesReorderCommand(),
		c.entriesBindCommand(),
		c.entriesGenerateCommand(),
	)

	return cmd
}

func (c *CLI) entriesListCommand() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries visible under the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			if all {
				renderEntries(cmd.OutOrStdout(), env.Storages.EntryCatalog.List(ctx))
				return nil
			}

			active, err := c.visibilityFilter(ctx, env)
			if err != nil {
				return err
			}
			renderEntries(cmd.OutOrStdout(), env.Storages.EntryCatalog.ListVisible(ctx, active))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "list every entry in file order")

	return cmd
}

func (c *CLI) entriesAddCommand() *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "add <label> <postfix>",
		Short: "Save a postfix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			active, err := c.visibilityFilter(ctx, env)
			if err != nil {
				return err
			}

			e, err := env.Storages.EntryCatalog.Add(ctx, args[0], args[1], method, active)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "entry %s added\n", e.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", generator.DefaultMethodID, "generation method (see \"saforia methods\")")

	return cmd
}

func (c *CLI) entriesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved postfix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			deleted, err := env.Storages.EntryCatalog.Delete(ctx, args[0])
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("%w: %s", store.ErrEntryNotFound, args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "entry %s deleted\n", args[0])
			return nil
		},
	}
}

func (c *CLI) entriesEditCommand() *cobra.Command {
	var label, postfix, method string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change an entry's label, postfix or method",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if label == "" && postfix == "" && method == "" {
				return ErrNothingToUpdate
			}

			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			e, err := env.Storages.EntryCatalog.Update(ctx, args[0], label, postfix, method)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "entry %s updated\n", e.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&label, "label", "", "new label")
	cmd.Flags().StringVar(&postfix, "postfix", "", "new postfix")
	cmd.Flags().StringVarP(&method, "method", "m", "", "new generation method")

	return cmd
}

func (c *CLI) entriesReorderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reorder <id>...",
		Short: "Put entries first, in the given order",
		Long: `Put the listed entries first, in the given order. Entries that are not
listed keep their relative order after them.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			active, err := c.visibilityFilter(ctx, env)
			if err != nil {
				return err
			}

			if err := env.Storages.EntryCatalog.Reorder(ctx, active, args); err != nil {
				return err
			}

			renderEntries(cmd.OutOrStdout(), env.Storages.EntryCatalog.ListVisible(ctx, active))
			return nil
		},
	}
}

func (c *CLI) entriesBindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bind",
		Short: "Bind every unbound entry to the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			fp, err := c.activeVault(ctx, env)
			if err != nil {
				return err
			}

			n, err := env.Storages.EntryCatalog.BindUnboundTo(ctx, fp)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d entries bound to %s\n", n, fp)
			return nil
		},
	}
}

func (c *CLI) entriesGenerateCommand() *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "generate <id>",
		Short: "Generate the password for a saved postfix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			fp, err := c.activeVault(ctx, env)
			if err != nil {
				return err
			}

			viewer, err := c.viewerPassword()
			if err != nil {
				return err
			}
			defer crypto.Zero(viewer)

			password, err := env.Services.VaultService.GenerateSaved(ctx, viewer, fp, args[0])
			if err != nil {
				return err
			}

			return c.emitPassword(cmd, password, toClipboard)
		},
	}

	cmd.Flags().BoolVar(&toClipboard, "copy", false, "copy to the clipboard instead of printing")

	return cmd
}
