// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/service"
	"github.com/MKhiriev/go-saforia/models"
)

const mappingHelp = `Without --map, entries bound to a vault that exists on this machine keep
their binding, unbound entries stay unbound and everything else is skipped.
With --map, only the listed sources are imported: SOURCE=TARGET rebinds a
source fingerprint to a local vault, "-" as SOURCE selects unbound entries
and an empty TARGET skips the source. Use "preview" to list the sources.`

// importFlags are shared by "backup import" and "csv import".
type importFlags struct {
	mapping   []string
	overwrite bool
}

func (f *importFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.mapping, "map", nil, "rebind SOURCE=TARGET (repeatable)")
	cmd.Flags().BoolVar(&f.overwrite, "overwrite", false, "replace the catalog instead of merging")
}

// resolve parses and validates --map. A nil mapping means none was given.
func (f *importFlags) resolve(ctx context.Context, backups service.BackupService) (models.FingerprintMapping, error) {
	if len(f.mapping) == 0 {
		return nil, nil
	}

	mapping, err := parseMapping(f.mapping)
	if err != nil {
		return nil, err
	}
	if err := backups.ValidateMapping(ctx, mapping); err != nil {
		return nil, err
	}
	return mapping, nil
}

func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export and import encrypted backups of the entry catalog",
		Long: `Export and import backups of the entry catalog. Backups hold entry
metadata only; master secrets never leave their vault files.`,
	}

	cmd.AddCommand(
		c.backupExportCommand(),
		c.backupImportCommand(),
		c.backupPreviewCommand(),
	)

	return cmd
}

func (c *CLI) backupExportCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Write every entry to a backup file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			var passphrase []byte
			if !plain {
				passphrase, err = c.newSecret("Backup passphrase")
				if err != nil {
					return err
				}
				defer crypto.Zero(passphrase)
			}

			entries := env.Storages.EntryCatalog.List(ctx)
			data, err := env.Services.BackupService.ExportEncrypted(ctx, entries, passphrase)
			if err != nil {
				return err
			}
			if err := service.ExportFile(args[0], data); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d entries exported to %s\n", len(entries), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "write unencrypted JSON without asking for a passphrase")

	return cmd
}

func (c *CLI) backupImportCommand() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import entries from a backup file",
		Long:  "Import entries from a backup file.\n\n" + mappingHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}
			backups := env.Services.BackupService

			data, err := service.ImportFile(args[0])
			if err != nil {
				return err
			}
			mapping, err := flags.resolve(ctx, backups)
			if err != nil {
				return err
			}

			var n int
			err = c.withPassphrase(func(passphrase []byte) error {
				if mapping != nil {
					n, err = backups.ImportWithMapping(ctx, data, passphrase, mapping, flags.overwrite)
					return err
				}

				entries, err := backups.ImportDecrypted(ctx, data, passphrase)
				if err != nil {
					return err
				}
				n, err = backups.ImportRawPayload(ctx, entries, flags.overwrite)
				return err
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d entries imported\n", n)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func (c *CLI) backupPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <path>",
		Short: "Count a backup's entries per source vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			data, err := service.ImportFile(args[0])
			if err != nil {
				return err
			}

			var counts []models.FingerprintCount
			err = c.withPassphrase(func(passphrase []byte) error {
				counts, err = env.Services.BackupService.PreviewFingerprints(ctx, data, passphrase)
				return err
			})
			if err != nil {
				return err
			}

			renderCounts(cmd.OutOrStdout(), counts)
			return nil
		},
	}
}

// withPassphrase runs fn without a passphrase first and asks for one only
// when the backup turns out to be encrypted.
func (c *CLI) withPassphrase(fn func(passphrase []byte) error) error {
	err := fn(nil)
	if !errors.Is(err, service.ErrPassphraseRequired) {
		return err
	}

	passphrase, err := c.prompter.ReadSecret("Backup passphrase: ")
	if err != nil {
		return err
	}
	defer crypto.Zero(passphrase)

	return fn(passphrase)
}

func (c *CLI) csvCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export and import the entry catalog as plaintext CSV",
	}

	cmd.AddCommand(
		c.csvExportCommand(),
		c.csvImportCommand(),
		c.csvPreviewCommand(),
	)

	return cmd
}

func (c *CLI) csvExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write every entry to a CSV file",
		Long: `Write every entry to a CSV file. The file is not encrypted; labels
and postfixes containing commas do not survive a round trip.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			entries := env.Storages.EntryCatalog.List(ctx)
			if err := service.ExportFile(args[0], service.ExportCSV(entries)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d entries exported to %s\n", len(entries), args[0])
			return nil
		},
	}
}

func (c *CLI) csvImportCommand() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Import entries from a CSV file",
		Long:  "Import entries from a CSV file.\n\n" + mappingHelp,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}
			backups := env.Services.BackupService

			data, err := service.ImportFile(args[0])
			if err != nil {
				return err
			}
			mapping, err := flags.resolve(ctx, backups)
			if err != nil {
				return err
			}

			var n int
			if mapping != nil {
				n, err = backups.ImportCSVWithMapping(ctx, data, mapping, flags.overwrite)
			} else {
				n, err = backups.ImportRawPayload(ctx, service.ParseCSV(data), flags.overwrite)
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%d entries imported\n", n)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func (c *CLI) csvPreviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <path>",
		Short: "Count a CSV file's entries per source vault",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, env, err := c.environment(cmd)
			if err != nil {
				return err
			}

			data, err := service.ImportFile(args[0])
			if err != nil {
				return err
			}

			renderCounts(cmd.OutOrStdout(), env.Services.BackupService.PreviewCSV(ctx, data))
			return nil
		},
	}
}
