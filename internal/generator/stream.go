// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"crypto/sha256"
	"encoding/binary"
	"strings"
)

const (
	alnumAlphabet  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	strongAlphabet = alnumAlphabet + "!@#$%^&*()-_=+[]{};:,.?/<>~"
)

// extendStream grows stream to exactly need bytes by appending
// SHA-256(last 32 bytes ‖ little-endian uint32 counter), counter starting
// at 1. A stream longer than need is truncated.
func extendStream(stream []byte, need int) []byte {
	out := make([]byte, len(stream), max(need, len(stream)))
	copy(out, stream)

	var counter uint32 = 1
	var ctr [4]byte
	for len(out) < need {
		binary.LittleEndian.PutUint32(ctr[:], counter)

		h := sha256.New()
		h.Write(out[max(len(out)-32, 0):])
		h.Write(ctr[:])
		out = h.Sum(out)

		counter++
	}
	return out[:need]
}

// mapToAlphabet consumes stream bytes in order, rejecting values at or above
// the largest multiple of len(alphabet) that fits in a byte so that every
// character is equally likely. An exhausted stream is extended by one more
// block, never restarted.
func mapToAlphabet(stream []byte, alphabet string, size int) string {
	m := len(alphabet)
	limit := (255 / m) * m

	var b strings.Builder
	b.Grow(size)

	for idx := 0; b.Len() < size; idx++ {
		if idx >= len(stream) {
			stream = extendStream(stream, len(stream)+32)
		}
		v := int(stream[idx])
		if v < limit {
			b.WriteByte(alphabet[v%m])
		}
	}
	return b.String()
}
