// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-saforia/internal/cli"
	"github.com/MKhiriev/go-saforia/internal/config"
	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/internal/service"
	"github.com/MKhiriev/go-saforia/internal/store"
	"github.com/MKhiriev/go-saforia/models"
)

const loggerRole = "saforia"

// App runs one command line invocation.
type App struct {
	buildInfo models.AppBuildInfo
	opts      []cli.Option
}

// NewApp returns an [App] reporting buildInfo from its version command.
// opts are passed on to the command line.
func NewApp(buildInfo models.AppBuildInfo, opts ...cli.Option) *App {
	return &App{
		buildInfo: buildInfo,
		opts:      opts,
	}
}

// Run parses args and executes the selected command.
func (a *App) Run(ctx context.Context, args []string) error {
	opts := append([]cli.Option{cli.WithBuildInfo(a.buildInfo)}, a.opts...)

	root := cli.New(Open, opts...).Command()
	root.SetArgs(args)

	return root.ExecuteContext(ctx)
}

// Open resolves configuration and wires the stores and services for one
// invocation. It is the [cli.Opener] used by [App].
func Open(flags *config.Flags) (*cli.Env, error) {
	cfg, err := config.GetClientConfig(flags)
	if err != nil {
		return nil, err
	}

	log := logger.NewClientLogger(loggerRole, cfg.Storage.DataDir)
	log.Logger = log.Level(cfg.App.LogLevel)

	keychain := crypto.NewKeyChainService(cfg.Crypto.Params)

	storages, err := store.NewClientStorages(cfg.Storage, keychain, log)
	if err != nil {
		log.Err(err).Msg("create local storage")
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	return &cli.Env{
		Storages: storages,
		Services: service.NewClientServices(storages, keychain),
		Logger:   log,
	}, nil
}
