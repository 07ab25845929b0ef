// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-saforia/internal/config"
	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/internal/utils"
)

// ClientStorages groups the file-backed stores into a single value that can
// be passed to the service layer.
type ClientStorages struct {
	// MasterVault holds the encrypted master secrets.
	MasterVault MasterVault
	// EntryCatalog holds entry metadata.
	EntryCatalog EntryCatalog
}

// NewClientStorages creates the data directory when needed and wires both
// stores to it. keychain seals new master records.
func NewClientStorages(cfg config.ClientStorage, keychain crypto.KeyChainService, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("data_dir", cfg.DataDir).Msg("creating new storages...")

	if err := os.MkdirAll(cfg.DataDir, dirPerm); err != nil {
		return nil, fmt.Errorf("%w: create data directory: %w", ErrIO, err)
	}

	return &ClientStorages{
		MasterVault:  NewMasterVault(cfg.DataDir, keychain, logger),
		EntryCatalog: NewEntryCatalog(cfg.DataDir, utils.NewUUIDGenerator(), logger),
	}, nil
}
