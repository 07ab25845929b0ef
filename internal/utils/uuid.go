// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small general-purpose helpers used across saforia.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces entry ids. Version 7 UUIDs sort by creation time,
// which keeps ids of entries created on one machine roughly ordered.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 string, or a random UUIDv4 when the clock
// based generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
