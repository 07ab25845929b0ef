// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrAuthentication is returned when AEAD authentication fails. A wrong
	// password and a corrupted ciphertext are deliberately reported the same
	// way.
	ErrAuthentication = errors.New("decryption failed")

	// ErrUnknownCipher is returned for a cipher id that is not registered.
	ErrUnknownCipher = errors.New("unknown cipher")

	// ErrInvalidKDFParams is returned for KDF parameters that are missing,
	// out of range or name an unsupported function.
	ErrInvalidKDFParams = errors.New("invalid kdf parameters")

	// ErrRandomSource is returned when the OS CSPRNG cannot be read.
	ErrRandomSource = errors.New("random source unavailable")
)
