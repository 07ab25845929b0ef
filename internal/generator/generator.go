// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package generator derives credentials from a master secret, a per-entry
// postfix and a method id.
//
// Generated credentials are never stored anywhere, so every method must keep
// producing byte-identical output for the same inputs forever. Do not change
// an existing method; add a new id instead.
package generator

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

var legacyV2Replacer = strings.NewReplacer("=", ".", "+", "-", "/", "_")

// Generate returns the credential for (master, postfix, methodID). It is
// pure and deterministic.
func Generate(master, postfix, methodID string) string {
	m := ParseMethod(methodID)

	switch m.Kind {
	case KindLegacyV1:
		return legacyV1(master, postfix)
	case KindLegacyV2:
		return legacyV2(master, postfix)
	case KindLength:
		return fixedLength(master, postfix, m)
	default:
		return Generate(master, postfix, DefaultMethodID)
	}
}

// legacyV1 is MD5(master ‖ postfix) as standard base64 without padding.
func legacyV1(master, postfix string) string {
	h := md5.New()
	h.Write([]byte(master))
	h.Write([]byte(postfix))
	return base64.RawStdEncoding.EncodeToString(h.Sum(nil))
}

// legacyV2 is SHA-256(master ‖ postfix) as standard base64 with the
// padding and the two non-alphanumeric characters substituted.
func legacyV2(master, postfix string) string {
	h := sha256.New()
	h.Write([]byte(master))
	h.Write([]byte(postfix))
	return legacyV2Replacer.Replace(base64.StdEncoding.EncodeToString(h.Sum(nil)))
}

// fixedLength maps a hash stream seeded by (master, postfix, method id) onto
// the method's alphabet.
func fixedLength(master, postfix string, m Method) string {
	seed := make([]byte, 0, len(master)+len(postfix)+len(m.ID)+4)
	seed = append(seed, master...)
	seed = append(seed, "::"...)
	seed = append(seed, postfix...)
	seed = append(seed, "::"...)
	seed = append(seed, m.ID...)

	digest := sha256.Sum256(seed)
	stream := extendStream(digest[:], m.Length*2)

	alphabet := alnumAlphabet
	if m.Strong {
		alphabet = strongAlphabet
	}
	return mapToAlphabet(stream, alphabet, m.Length)
}
