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

func (c *CLI) setupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Store a new master secret",
		Long: `Store a new master secret encrypted under a viewer password.

The first vault created on a machine adopts every entry that is not yet
bound to a vault.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			master, err := c.newSecret("Master secret")
			if err != nil {
				return err
			}
			defer crypto.Zero(master)

			viewer, err := c.newSecret("Viewer password")
			if err != nil {
				return err
			}
			defer crypto.Zero(viewer)

			fp, err := env.Services.VaultService.Setup(ctx, viewer, master)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "vault %s created\n", fp)
			return nil
		},
	}
}

func (c *CLI) vaultsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vaults",
		Short: "List vaults and how many entries each one holds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			fingerprints, err := env.Storages.MasterVault.ListFingerprints(ctx)
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			for _, fc := range env.Storages.EntryCatalog.CountByFingerprint(ctx) {
				counts[fc.Fingerprint] = fc.Count
			}

			rows := make([][]string, 0, len(fingerprints)+1)
			for _, fp := range fingerprints {
				rows = append(rows, []string{fp, fmt.Sprint(counts[fp])})
			}
			if n := counts[""]; n > 0 {
				rows = append(rows, []string{unboundLabel, fmt.Sprint(n)})
			}

			renderTable(cmd.OutOrStdout(), []string{"FINGERPRINT", "ENTRIES"}, rows)
			return nil
		},
	}
}

func (c *CLI) vaultCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage a single vault",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "delete <fingerprint>",
			Short: "Delete a vault's encrypted master secret",
			Long: `Delete a vault's encrypted master secret. Entries bound to it are kept
and can be rebound by importing a backup with --map.`,
			Args: cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				ctx, env, err := c.environment(cmd)
				if err != nil {
					return err
				}

				deleted, err := env.Storages.MasterVault.DeleteMaster(ctx, args[0])
				if err != nil {
					return err
				}
				if !deleted {
					return fmt.Errorf("%w: %s", store.ErrMasterNotFound, args[0])
				}

				fmt.Fprintf(cmd.OutOrStdout(), "vault %s deleted\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "path <fingerprint>",
			Short: "Print where a vault's master secret is stored",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				_, env, err := c.environment(cmd)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), env.Storages.MasterVault.MasterPath(args[0]))
				return nil
			},
		},
	)

	return cmd
}

func (c *CLI) fingerprintCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Decrypt the vault and print the fingerprint of its master secret",
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

			viewer, err := c.viewerPassword()
			if err != nil {
				return err
			}
			defer crypto.Zero(viewer)

			got, err := env.Storages.MasterVault.FingerprintOf(ctx, viewer, fp)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), got)
			return nil
		},
	}
}

func (c *CLI) generateCommand() *cobra.Command {
	var (
		method      string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "generate <postfix>",
		Short: "Generate the password for a postfix",
		Long: `Generate the password for a postfix from the vault's master secret.
Nothing is saved; use "entries add" to remember the postfix.`,
		Args: cobra.ExactArgs(1),
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

			password, err := env.Services.VaultService.GeneratePassword(ctx, viewer, fp, args[0], method)
			if err != nil {
				return err
			}

			return c.emitPassword(cmd, password, toClipboard)
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", generator.DefaultMethodID, "generation method (see \"saforia methods\")")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "copy to the clipboard instead of printing")

	return cmd
}

// emitPassword prints password or puts it on the clipboard.
func (c *CLI) emitPassword(cmd *cobra.Command, password string, toClipboard bool) error {
	if !toClipboard {
		fmt.Fprintln(cmd.OutOrStdout(), password)
		return nil
	}

	if err := c.writeClipboard(password); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), helpStyle.Render("copied to clipboard"))
	return nil
}

func (c *CLI) methodsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List generation methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			methods := generator.Methods()
			rows := make([][]string, 0, len(methods))
			for _, m := range methods {
				rows = append(rows, []string{m.ID, m.Name})
			}
			renderTable(cmd.OutOrStdout(), []string{"ID", "DESCRIPTION"}, rows)
			return nil
		},
	}
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderBuildInfo(cmd.OutOrStdout(), c.buildInfo)
			return nil
		},
	}
}
