// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"

	"github.com/MKhiriev/go-saforia/internal/crypto"
)

// validate checks the merged structured config. Only values that can never
// become valid are rejected here; defaults are resolved by
// [GetClientConfig].
func (cfg *StructuredConfig) validate() error {
	if _, err := crypto.ParamsFor(cfg.Crypto.KDFProfile); err != nil {
		return ErrInvalidCryptoConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DataDir == "" || !filepath.IsAbs(cfg.Storage.DataDir) {
		return ErrInvalidStorageConfigs
	}

	if err := cfg.Crypto.Params.Validate(); err != nil {
		return ErrInvalidCryptoConfigs
	}

	return nil
}
