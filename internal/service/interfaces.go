// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-saforia/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BackupService moves whole catalog snapshots in and out of the data
// directory: encrypted or plain JSON backups, and the CSV table.
//
// Passphrases are trimmed of surrounding whitespace before use. Imports
// never bind an entry to a vault that is not present on this machine.
type BackupService interface {
	// ExportEncrypted serializes entries. With a passphrase the snapshot is
	// encrypted into a versioned container; without one it is written as
	// plain JSON.
	ExportEncrypted(ctx context.Context, entries []models.Entry, passphrase []byte) ([]byte, error)

	// ImportDecrypted decodes a backup written by any released version.
	// An encrypted backup without a passphrase fails with
	// [ErrPassphraseRequired]; a wrong passphrase fails with
	// crypto.ErrAuthentication.
	ImportDecrypted(ctx context.Context, data, passphrase []byte) ([]models.Entry, error)

	// PreviewFingerprints decodes a backup without committing it and counts
	// its entries per source fingerprint ("" for unbound).
	PreviewFingerprints(ctx context.Context, data, passphrase []byte) ([]models.FingerprintCount, error)

	// ImportWithMapping decodes a backup, rebinds every entry through
	// mapping and commits the survivors. Entries whose source fingerprint
	// is unmapped, mapped to nothing or mapped to an unknown vault are
	// dropped. overwrite replaces the catalog instead of merging into it.
	ImportWithMapping(ctx context.Context, data, passphrase []byte, mapping models.FingerprintMapping, overwrite bool) (int, error)

	// ImportRawPayload commits entries handed over directly. Unbound
	// entries are kept; bound ones only when their vault is known.
	ImportRawPayload(ctx context.Context, entries []models.Entry, overwrite bool) (int, error)

	// PreviewCSV counts the rows of a CSV export per source fingerprint.
	PreviewCSV(ctx context.Context, data []byte) []models.FingerprintCount

	// ImportCSVWithMapping is [BackupService.ImportWithMapping] for CSV
	// exports.
	ImportCSVWithMapping(ctx context.Context, data []byte, mapping models.FingerprintMapping, overwrite bool) (int, error)

	// ValidateMapping fails with [ErrUnknownTargetFingerprint] when a target
	// in mapping is not a vault on this machine.
	ValidateMapping(ctx context.Context, mapping models.FingerprintMapping) error
}

// VaultService is the front door for everything that needs a decrypted
// master secret. Secrets never leave it; only generated credentials do.
type VaultService interface {
	// Setup stores a new master secret under viewerPassword and returns its
	// fingerprint. When it is the first vault on this machine all unbound
	// entries are bound to it.
	Setup(ctx context.Context, viewerPassword, masterSecret []byte) (string, error)

	// GeneratePassword derives the credential for postfix and methodID
	// from the vault's master secret. An empty methodID selects the
	// default method.
	GeneratePassword(ctx context.Context, viewerPassword []byte, fingerprint, postfix, methodID string) (string, error)

	// GenerateSaved derives the credential for a catalog entry visible
	// under fingerprint.
	GenerateSaved(ctx context.Context, viewerPassword []byte, fingerprint, entryID string) (string, error)
}
