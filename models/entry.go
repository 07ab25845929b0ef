// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Entry is a single saved postfix in the catalog. It carries only the
// metadata needed to regenerate a credential: the secret never lives here.
//
// Fingerprint is nil for legacy (unbound) entries. Unbound entries are
// visible under every vault until they are bound explicitly.
//
// Order == 0 means the entry has no custom position; it is listed after all
// custom-ordered entries, newest first.
type Entry struct {
	// ID is globally unique and immutable, assigned at creation.
	ID string `json:"id"`
	// Label is the user-visible name of the entry.
	Label string `json:"label"`
	// Postfix is mixed into derivation to make outputs distinct per entry.
	Postfix string `json:"postfix"`
	// MethodID selects the derivation algorithm (see package generator).
	MethodID string `json:"method_id"`
	// CreatedAt is a unix timestamp in seconds.
	CreatedAt int64 `json:"created_at"`
	// Order is the explicit display position; zero means unordered.
	Order int64 `json:"order,omitempty"`
	// Fingerprint identifies the owning master secret.
	Fingerprint *string `json:"fingerprint,omitempty"`
}

// IsBound reports whether the entry belongs to a specific vault.
func (e Entry) IsBound() bool {
	return e.Fingerprint != nil
}

// FingerprintValue returns the owning fingerprint or "" for unbound entries.
func (e Entry) FingerprintValue() string {
	if e.Fingerprint == nil {
		return ""
	}
	return *e.Fingerprint
}

// VisibleUnder reports whether the entry is listed while active is the
// selected vault. A nil active fingerprint shows everything.
func (e Entry) VisibleUnder(active *string) bool {
	if active == nil || e.Fingerprint == nil {
		return true
	}
	return *e.Fingerprint == *active
}

// WithFingerprint returns a copy of e bound to fp. An empty fp unbinds.
func (e Entry) WithFingerprint(fp string) Entry {
	if fp == "" {
		e.Fingerprint = nil
		return e
	}
	e.Fingerprint = &fp
	return e
}

// EntriesFile is the on-disk and in-backup snapshot of the whole catalog.
type EntriesFile struct {
	Entries []Entry `json:"entries"`
}

// NormalizeEntries rewrites empty-string fingerprints coming from external
// files (older web exports write "" instead of null) to unbound.
func NormalizeEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		if e.Fingerprint != nil && *e.Fingerprint == "" {
			e.Fingerprint = nil
		}
		out[i] = e
	}
	return out
}

// StringPtr is a small helper for building optional fingerprints.
func StringPtr(s string) *string {
	return &s
}
