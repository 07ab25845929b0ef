// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-saforia/internal/crypto"
)

// ClientApp holds resolved process-level settings.
type ClientApp struct {
	LogLevel zerolog.Level
}

// ClientStorage holds the resolved data directory.
type ClientStorage struct {
	DataDir string
}

// ClientCrypto holds the KDF parameters used for every new encryption.
type ClientCrypto struct {
	Params crypto.KDFParams
}

// ClientConfig is the fully resolved configuration the CLI runs with.
// Unlike [StructuredConfig] it carries no empty "use the default" values.
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	Crypto  ClientCrypto
}

// GetClientConfig loads the structured config and resolves defaults:
// the per-platform data directory, the build's KDF profile and the "info"
// log level.
func GetClientConfig(flags *Flags) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(flags)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	dataDir := cfg.Storage.DataDir
	if dataDir == "" {
		dir, err := DefaultDataDir()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
		}
		dataDir = dir
	}
	dataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	params, err := crypto.ParamsFor(cfg.Crypto.KDFProfile)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCryptoConfigs, err)
	}

	level := zerolog.InfoLevel
	if cfg.App.LogLevel != "" {
		level, err = zerolog.ParseLevel(cfg.App.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			LogLevel: level,
		},
		Storage: ClientStorage{
			DataDir: dataDir,
		},
		Crypto: ClientCrypto{
			Params: params,
		},
	}

	return clientCfg, clientCfg.validate()
}
