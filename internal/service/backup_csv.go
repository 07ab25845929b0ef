// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-saforia/internal/generator"
	"github.com/MKhiriev/go-saforia/models"
)

// CSVHeader is the first line of every CSV export.
const CSVHeader = "fingerprint,label,postfix,method_id,created_at,id"

const csvFields = 6

// ExportCSV renders entries as the plaintext CSV table. Fields are joined
// with commas as they are; commas or quotes inside labels and postfixes are
// not escaped.
func ExportCSV(entries []models.Entry) []byte {
	var b bytes.Buffer
	b.WriteString(CSVHeader)
	b.WriteByte('\n')

	for _, e := range entries {
		b.WriteString(strings.Join([]string{
			e.FingerprintValue(),
			e.Label,
			e.Postfix,
			e.MethodID,
			strconv.FormatInt(e.CreatedAt, 10),
			e.ID,
		}, ","))
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// ParseCSV reads a CSV export. The first non-blank line is the header.
// Rows with fewer than six fields are skipped; a missing id becomes the
// row's line number among non-blank lines, a missing method the default
// one, and an unparsable timestamp zero. An empty fingerprint is unbound.
func ParseCSV(data []byte) []models.Entry {
	var entries []models.Entry

	idx := 0
	for line := range strings.SplitSeq(string(data), "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		rowIdx := idx
		idx++
		if rowIdx == 0 {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) < csvFields {
			continue
		}

		e := models.Entry{
			ID:       parts[5],
			Label:    parts[1],
			Postfix:  parts[2],
			MethodID: parts[3],
		}
		if e.ID == "" {
			e.ID = strconv.Itoa(rowIdx)
		}
		if e.MethodID == "" {
			e.MethodID = generator.DefaultMethodID
		}
		if createdAt, err := strconv.ParseInt(parts[4], 10, 64); err == nil {
			e.CreatedAt = createdAt
		}
		entries = append(entries, e.WithFingerprint(parts[0]))
	}

	return entries
}
