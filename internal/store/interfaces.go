// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-saforia/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// FingerprintLister enumerates the vaults present on this machine. Backup
// import uses it to refuse binding entries to a vault that does not exist.
type FingerprintLister interface {
	// ListFingerprints returns the fingerprints of all stored master
	// records, sorted ascending.
	ListFingerprints(ctx context.Context) ([]string, error)
}

// MasterVault stores master secrets encrypted under a viewer password, one
// file per secret named by its fingerprint.
//
// Every read and write error is surfaced; nothing is swallowed.
type MasterVault interface {
	FingerprintLister

	// SaveMaster encrypts masterSecret under viewerPassword with the current
	// format and returns its fingerprint. An existing record for the same
	// secret is overwritten.
	SaveMaster(ctx context.Context, viewerPassword, masterSecret []byte) (string, error)

	// LoadMaster decrypts the record named fingerprint. Records in an older
	// format are rewritten in the current format after a successful load.
	// The caller owns the returned slice and should zero it.
	LoadMaster(ctx context.Context, viewerPassword []byte, fingerprint string) ([]byte, error)

	// HasMaster reports whether at least one record exists.
	HasMaster(ctx context.Context) bool

	// DeleteMaster removes the record. It reports false when there was
	// nothing to remove. Entries bound to the fingerprint are left alone.
	DeleteMaster(ctx context.Context, fingerprint string) (bool, error)

	// FingerprintOf loads the record and recomputes the fingerprint from the
	// decrypted secret.
	FingerprintOf(ctx context.Context, viewerPassword []byte, fingerprint string) (string, error)

	// MasterPath returns the file path of the record for fingerprint.
	MasterPath(fingerprint string) string
}

// EntryCatalog persists entry metadata in a single JSON file. Every mutation
// reads the whole file, changes it in memory and rewrites it.
//
// Read paths treat a missing or malformed file as an empty catalog.
type EntryCatalog interface {
	// ListVisible returns the entries bound to active plus all unbound
	// entries (everything when active is nil) in display order.
	ListVisible(ctx context.Context, active *string) []models.Entry

	// List returns every entry in file order.
	List(ctx context.Context) []models.Entry

	// Add creates an entry bound to active (unbound when nil) and stores it
	// as the newest one.
	Add(ctx context.Context, label, postfix, methodID string, active *string) (models.Entry, error)

	// Delete removes the entry with id and reports whether it existed.
	Delete(ctx context.Context, id string) (bool, error)

	// Get returns the entry with id.
	Get(ctx context.Context, id string) (models.Entry, bool)

	// Update changes the label, postfix and method of an entry. Empty
	// arguments keep the current value.
	Update(ctx context.Context, id, label, postfix, methodID string) (models.Entry, error)

	// Reorder assigns explicit positions to the entries visible under
	// active, in the order of orderedIDs. Visible entries missing from
	// orderedIDs are placed after them, keeping their relative order.
	Reorder(ctx context.Context, active *string, orderedIDs []string) error

	// BindUnboundTo binds every unbound entry to fingerprint and returns how
	// many were bound.
	BindUnboundTo(ctx context.Context, fingerprint string) (int, error)

	// ReplaceAll discards the catalog and stores entries instead.
	ReplaceAll(ctx context.Context, entries []models.Entry) (int, error)

	// MergeNonConflicting appends the entries whose ids are not yet present
	// and returns how many were added.
	MergeNonConflicting(ctx context.Context, entries []models.Entry) (int, error)

	// CountByFingerprint returns the number of entries per fingerprint, ""
	// for unbound, sorted by fingerprint.
	CountByFingerprint(ctx context.Context) []models.FingerprintCount
}

// IDGenerator produces unique entry ids.
type IDGenerator interface {
	Generate() string
}
