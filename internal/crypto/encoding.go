// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// EncodeBase64 encodes b as unpadded standard base64, the encoding of every
// binary field in master records and backups.
func EncodeBase64(b []byte) string {
	return base64.RawStdEncoding.EncodeToString(b)
}

// DecodeBase64 decodes unpadded standard base64. Padding is tolerated
// because some exporters add it back.
func DecodeBase64(s string) ([]byte, error) {
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(s, "="))
}

// Fingerprint is the content identifier of a master secret: lowercase hex
// MD5 of the plaintext. It names master record files and binds entries; it
// never gates access to anything.
func Fingerprint(secret []byte) string {
	sum := md5.Sum(secret)
	return hex.EncodeToString(sum[:])
}
