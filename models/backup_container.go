// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Backup container versions. They are numbered independently from
// [MasterRecord] versions.
const (
	// BackupVersionLegacy is ChaCha20-Poly1305 without embedded KDF parameters.
	BackupVersionLegacy = 1
	// BackupVersionCurrent embeds KDF parameters and the cipher id.
	BackupVersionCurrent = 2
)

// BackupContainer wraps an encrypted [EntriesFile]. A backup written without
// a passphrase is a bare EntriesFile instead.
type BackupContainer struct {
	Version     uint32 `json:"version"`
	KDF         string `json:"kdf,omitempty"`
	MemKiB      uint32 `json:"mem_kib,omitempty"`
	Iterations  uint32 `json:"iterations,omitempty"`
	Parallelism uint8  `json:"parallelism,omitempty"`
	Cipher      string `json:"cipher,omitempty"`

	SaltB64       string `json:"salt_b64"`
	NonceB64      string `json:"nonce_b64"`
	CiphertextB64 string `json:"ciphertext_b64"`
}

// FingerprintCount is one row of a backup preview: how many entries in the
// file belong to a source fingerprint ("" for unbound).
type FingerprintCount struct {
	Fingerprint string `json:"fingerprint"`
	Count       int    `json:"count"`
}

// FingerprintMapping maps a source fingerprint found in a backup ("" for
// unbound) to a target vault fingerprint. A nil target, or a missing key,
// drops the entries on import.
type FingerprintMapping map[string]*string
