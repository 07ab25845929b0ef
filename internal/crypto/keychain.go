// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id cost for new encryptions. Fixed per build target, never
	// negotiated with the file being written.
	params KDFParams
	cipher CipherID
}

// NewKeyChainService constructs a [KeyChainService] that writes with params
// and AES-256-GCM. Reads honour whatever the envelope or the candidate list
// says.
func NewKeyChainService(params KDFParams) KeyChainService {
	return &keyChainService{
		params: params,
		cipher: CipherAES256GCM,
	}
}

// Params implements [KeyChainService].
func (k *keyChainService) Params() KDFParams {
	return k.params
}

// Cipher implements [KeyChainService].
func (k *keyChainService) Cipher() CipherID {
	return k.cipher
}

// Seal implements [KeyChainService].
func (k *keyChainService) Seal(password, plaintext []byte) (Envelope, error) {
	salt, err := GenerateSalt()
	if err != nil {
		return Envelope{}, err
	}
	return k.SealWithSalt(password, salt, k.params, plaintext)
}

// SealWithSalt implements [KeyChainService].
func (k *keyChainService) SealWithSalt(password, salt []byte, params KDFParams, plaintext []byte) (Envelope, error) {
	if err := params.Validate(); err != nil {
		return Envelope{}, err
	}

	key := DeriveKey(password, salt, params)
	defer Zero(key)

	aead, err := newAEAD(k.cipher, key)
	if err != nil {
		return Envelope{}, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return Envelope{}, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	return Envelope{
		Params:     params,
		Cipher:     k.cipher,
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: aead.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Open implements [KeyChainService].
func (k *keyChainService) Open(password []byte, env Envelope, candidates ...KDFParams) ([]byte, KDFParams, error) {
	if len(candidates) == 0 {
		candidates = []KDFParams{env.Params}
	}

	var lastErr error
	for _, params := range candidates {
		if err := params.Validate(); err != nil {
			lastErr = err
			continue
		}
		plaintext, err := openWith(password, env, params)
		if err == nil {
			return plaintext, params, nil
		}
		lastErr = err
	}

	if errors.Is(lastErr, ErrInvalidKDFParams) || errors.Is(lastErr, ErrUnknownCipher) {
		return nil, KDFParams{}, lastErr
	}
	return nil, KDFParams{}, ErrAuthentication
}

func openWith(password []byte, env Envelope, params KDFParams) ([]byte, error) {
	key := DeriveKey(password, env.Salt, params)
	defer Zero(key)

	aead, err := newAEAD(env.Cipher, key)
	if err != nil {
		return nil, err
	}

	// Open panics on a wrong nonce size; a truncated nonce is just corruption.
	if len(env.Nonce) != aead.NonceSize() {
		return nil, ErrAuthentication
	}

	plaintext, err := aead.Open(nil, env.Nonce, env.Ciphertext, nil)
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

// DeriveKey derives a [KeyLen]-byte key from password and salt with
// Argon2id. The caller owns the returned slice and should [Zero] it.
func DeriveKey(password, salt []byte, params KDFParams) []byte {
	return argon2.IDKey(
		password,
		salt,
		params.Iterations,
		params.MemoryKiB,
		params.Parallelism,
		KeyLen,
	)
}

// GenerateSalt reads [SaltLen] random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return salt, nil
}

// Zero overwrites b with zeros. Best effort only: the runtime may have
// copied the bytes elsewhere.
func Zero(b []byte) {
	clear(b)
}
