// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Master record format versions. Every version ever written stays readable.
const (
	// MasterVersionChaCha is the oldest format: ChaCha20-Poly1305 with the
	// KDF parameters implied by the platform that wrote it.
	MasterVersionChaCha = 1
	// MasterVersionAESImplicit is AES-256-GCM, still without stored KDF
	// parameters.
	MasterVersionAESImplicit = 2
	// MasterVersionCurrent stores KDF parameters and the cipher id.
	MasterVersionCurrent = 3
)

// MasterRecord is the JSON body of masters/<fingerprint>.enc. Binary fields
// are unpadded standard base64. KDF fields are present from
// [MasterVersionCurrent] on.
type MasterRecord struct {
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

// HasExplicitParams reports whether the record carries its own KDF
// parameters.
func (r MasterRecord) HasExplicitParams() bool {
	return r.KDF != "" && r.MemKiB > 0 && r.Iterations > 0 && r.Parallelism > 0
}
