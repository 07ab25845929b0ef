// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-saforia/internal/store"
)

const exportFilePerm = 0o600

// ExportFile writes an export to path, replacing any existing file.
func ExportFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, exportFilePerm); err != nil {
		return fmt.Errorf("%w: write %s: %w", store.ErrIO, path, err)
	}
	return nil
}

// ImportFile reads an export from path.
func ImportFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", store.ErrIO, path, err)
	}
	return data, nil
}
