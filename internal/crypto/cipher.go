// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// CipherID names an AEAD construction in stored files.
type CipherID string

const (
	// CipherAES256GCM is the cipher written by the current formats.
	CipherAES256GCM CipherID = "aes-256-gcm"
	// CipherChaCha20Poly1305 is the cipher of the oldest master records and
	// of every backup written before AES-GCM became the default.
	CipherChaCha20Poly1305 CipherID = "chacha20poly1305"
)

var ciphers = map[CipherID]func(key []byte) (cipher.AEAD, error){
	CipherAES256GCM: func(key []byte) (cipher.AEAD, error) {
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	},
	CipherChaCha20Poly1305: chacha20poly1305.New,
}

// ParseCipherID validates a cipher id read from a file.
func ParseCipherID(s string) (CipherID, error) {
	id := CipherID(s)
	if _, ok := ciphers[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCipher, s)
	}
	return id, nil
}

// newAEAD builds the AEAD for id keyed with key.
func newAEAD(id CipherID, key []byte) (cipher.AEAD, error) {
	ctor, ok := ciphers[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, id)
	}
	return ctor(key)
}
