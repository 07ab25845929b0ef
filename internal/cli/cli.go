// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the saforia command line on top of the client
// services.
//
// Commands are thin: they read secrets through a [Prompter], call one
// service or store operation and render the result. Configuration is
// resolved lazily through an [Opener] so that commands which need no data
// directory (methods, version) work without one.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-saforia/internal/config"
	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/internal/service"
	"github.com/MKhiriev/go-saforia/internal/store"
	"github.com/MKhiriev/go-saforia/models"
)

// Env is everything a command runs against once configuration is resolved.
type Env struct {
	Storages *store.ClientStorages
	Services *service.ClientServices
	Logger   *logger.Logger
}

// Opener resolves configuration from the parsed global flags and builds an
// [Env].
type Opener func(flags *config.Flags) (*Env, error)

// Option configures a [CLI].
type Option func(*CLI)

// WithPrompter replaces the terminal prompter.
func WithPrompter(p Prompter) Option {
	return func(c *CLI) {
		c.prompter = p
	}
}

// WithClipboard replaces the system clipboard writer used by --copy.
func WithClipboard(write func(string) error) Option {
	return func(c *CLI) {
		c.writeClipboard = write
	}
}

// WithBuildInfo sets what the version command prints.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(c *CLI) {
		c.buildInfo = info
	}
}

// CLI holds the state shared by all commands of one invocation.
type CLI struct {
	flags       config.Flags
	fingerprint string

	open Opener
	env  *Env

	prompter       Prompter
	writeClipboard func(string) error
	buildInfo      models.AppBuildInfo
}

// New returns a CLI that builds its environment with open.
func New(open Opener, opts ...Option) *CLI {
	c := &CLI{
		open:           open,
		prompter:       NewStdPrompter(),
		writeClipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Command builds the root command with every subcommand attached.
func (c *CLI) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   "saforia",
		Short: "Offline deterministic password vault",
		Long: `saforia keeps master secrets encrypted under a viewer password and
regenerates site passwords from a master secret and a postfix. Only the
encrypted masters and entry metadata are ever written to disk.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.flags.Register(root.PersistentFlags())
	root.PersistentFlags().StringVarP(&c.fingerprint, "fingerprint", "f", "", "vault to work with (required when more than one exists)")

	root.AddCommand(
		c.setupCommand(),
		c.vaultsCommand(),
		c.vaultCommand(),
		c.fingerprintCommand(),
		c.generateCommand(),
		c.entriesCommand(),
		c.backupCommand(),
		c.csvCommand(),
		c.methodsCommand(),
		c.versionCommand(),
	)

	return root
}

// environment opens the environment on first use and returns a context
// carrying its logger.
func (c *CLI) environment(cmd *cobra.Command) (context.Context, *Env, error) {
	if c.env == nil {
		env, err := c.open(&c.flags)
		if err != nil {
			return nil, nil, err
		}
		c.env = env
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return c.env.Logger.WithContext(ctx), c.env, nil
}

// activeVault resolves the vault a command works with: the --fingerprint
// flag, or the only vault when exactly one exists.
func (c *CLI) activeVault(ctx context.Context, env *Env) (string, error) {
	fingerprints, err := env.Storages.MasterVault.ListFingerprints(ctx)
	if err != nil {
		return "", err
	}

	if c.fingerprint != "" {
		for _, fp := range fingerprints {
			if fp == c.fingerprint {
				return fp, nil
			}
		}
		return "", fmt.Errorf("%w: %s", store.ErrMasterNotFound, c.fingerprint)
	}

	switch len(fingerprints) {
	case 0:
		return "", ErrNoVault
	case 1:
		return fingerprints[0], nil
	default:
		return "", ErrAmbiguousVault
	}
}

// visibilityFilter is like activeVault but never fails for lack of a
// choice: with no vault or several unselected ones every entry is shown.
func (c *CLI) visibilityFilter(ctx context.Context, env *Env) (*string, error) {
	fp, err := c.activeVault(ctx, env)
	switch {
	case err == nil:
		return &fp, nil
	case c.fingerprint == "" && (errors.Is(err, ErrNoVault) || errors.Is(err, ErrAmbiguousVault)):
		return nil, nil
	default:
		return nil, err
	}
}
