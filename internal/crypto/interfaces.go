// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns every password-based encryption in the vault: master
// records and encrypted backups both go through it. It knows nothing about
// files or JSON; callers persist the returned [Envelope].
//
// Scheme:
//
//	Salt  = 16 random bytes                        (fresh per Seal)
//	Key   = Argon2id(password, Salt, Params)        (32 bytes, zeroed after use)
//	Nonce = random, sized for the cipher            (fresh per Seal)
//	CT    = AEAD(Cipher).Seal(Key, Nonce, plaintext)
type KeyChainService interface {
	// Seal encrypts plaintext under a key derived from password with a fresh
	// salt, the service's KDF parameters and the current cipher.
	Seal(password, plaintext []byte) (Envelope, error)

	// SealWithSalt re-encrypts plaintext keeping an existing salt and KDF
	// parameters. Only the nonce is fresh. Used by in-place format
	// migration.
	SealWithSalt(password, salt []byte, params KDFParams, plaintext []byte) (Envelope, error)

	// Open decrypts env. When candidates is empty the parameters stored in
	// env are used; otherwise each candidate is tried in order until one
	// authenticates. The parameters that worked are returned alongside the
	// plaintext. Every failure is reported as [ErrAuthentication].
	Open(password []byte, env Envelope, candidates ...KDFParams) ([]byte, KDFParams, error)

	// Params returns the KDF parameters used for new encryptions.
	Params() KDFParams

	// Cipher returns the cipher used for new encryptions.
	Cipher() CipherID
}

// Envelope is the decoded form of an encrypted container: everything needed
// to decrypt except the password.
type Envelope struct {
	Params     KDFParams
	Cipher     CipherID
	Salt       []byte
	Nonce      []byte
	Ciphertext []byte
}
