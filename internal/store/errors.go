// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by store methods. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrIO is returned when a file in the data directory cannot be read,
	// written or removed for a reason other than not existing.
	ErrIO = errors.New("storage i/o error")

	// ErrMalformedRecord is returned when a master record is not valid JSON,
	// carries undecodable base64, an unknown version or unusable KDF
	// parameters.
	ErrMalformedRecord = errors.New("malformed master record")

	// ErrMasterNotFound is returned when no master record exists for the
	// requested fingerprint.
	ErrMasterNotFound = errors.New("master record not found")

	// ErrEntryNotFound is returned when no catalog entry has the requested
	// id.
	ErrEntryNotFound = errors.New("entry not found")
)
