// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the parent of every error caused by caller input
	// rather than by the data on disk.
	ErrValidation = errors.New("validation failed")

	ErrPassphraseRequired       = fmt.Errorf("%w: passphrase required", ErrValidation)
	ErrUnknownTargetFingerprint = fmt.Errorf("%w: unknown target fingerprint", ErrValidation)
	ErrViewerPasswordRequired   = fmt.Errorf("%w: viewer password required", ErrValidation)
	ErrMasterSecretRequired     = fmt.Errorf("%w: master secret required", ErrValidation)

	// ErrInvalidBackup is returned for data that is neither a backup
	// container nor a plain snapshot, or whose decrypted content is not a
	// snapshot.
	ErrInvalidBackup = errors.New("invalid backup file")
)
