// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when no usable data directory can
	// be resolved.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidCryptoConfigs is returned for an unknown KDF profile.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")

	// ErrInvalidAppConfigs is returned for an unparsable log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
