// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package generator

import (
	"strconv"
	"strings"
)

// DefaultMethodID is used for new entries and for every unrecognised id.
const DefaultMethodID = "len36_strong"

const (
	defaultLength = 36
	// maxLength bounds ids read from imported files; longer ones are
	// treated as unparsable.
	maxLength     = 4096
	lengthPrefix  = "len"
	strongSuffix  = "strong"
)

// Kind is the closed set of derivation families.
type Kind int

const (
	// KindFallback marks an id nobody recognises; it derives as
	// [DefaultMethodID].
	KindFallback Kind = iota
	// KindLegacyV1 is MD5 + unpadded base64, kept for the predecessor tool.
	KindLegacyV1
	// KindLegacyV2 is SHA-256 + filename-safe base64.
	KindLegacyV2
	// KindLength is the deterministic fixed-length generator.
	KindLength
)

func (k Kind) String() string {
	switch k {
	case KindLegacyV1:
		return "legacy_v1"
	case KindLegacyV2:
		return "legacy_v2"
	case KindLength:
		return "length"
	default:
		return "fallback"
	}
}

// Method is a parsed method id.
type Method struct {
	// ID is the id as stored on the entry. For [KindLength] it is part of the
	// derivation seed, so it must be kept verbatim.
	ID   string
	Kind Kind
	// Length and Strong are meaningful for [KindLength] only.
	Length int
	Strong bool
}

// ParseMethod classifies id. It never fails: unknown ids become
// [KindFallback].
func ParseMethod(id string) Method {
	switch {
	case id == "legacy_v1":
		return Method{ID: id, Kind: KindLegacyV1}
	case id == "legacy_v2":
		return Method{ID: id, Kind: KindLegacyV2}
	case strings.HasPrefix(id, lengthPrefix):
		parts := strings.Split(id, "_")
		length, err := strconv.Atoi(strings.TrimPrefix(parts[0], lengthPrefix))
		if err != nil || length < 0 || length > maxLength {
			length = defaultLength
		}
		strong := len(parts) > 1 && parts[1] == strongSuffix
		return Method{ID: id, Kind: KindLength, Length: length, Strong: strong}
	default:
		return Method{ID: id, Kind: KindFallback}
	}
}

// MethodInfo describes a method offered to users.
type MethodInfo struct {
	ID   string
	Name string
}

// Methods returns the catalogue of methods offered for new entries.
func Methods() []MethodInfo {
	return []MethodInfo{
		{ID: "legacy_v1", Name: "Legacy v1 (MD5, Base64)"},
		{ID: "legacy_v2", Name: "Legacy v2 (SHA256, URL-safe)"},
		{ID: "len10_alnum", Name: "10 chars (A-Z, a-z, 0-9)"},
		{ID: "len20_alnum", Name: "20 chars (A-Z, a-z, 0-9)"},
		{ID: "len36_alnum", Name: "36 chars (A-Z, a-z, 0-9)"},
		{ID: "len10_strong", Name: "10 chars + symbols"},
		{ID: "len20_strong", Name: "20 chars + symbols"},
		{ID: DefaultMethodID, Name: "36 chars + symbols (default)"},
	}
}
