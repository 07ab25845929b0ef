// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-saforia/models"
)

// unboundSource names the unbound entries of a backup in a --map flag.
const unboundSource = "-"

// parseMapping reads --map values of the form SOURCE=TARGET. SOURCE "-"
// selects unbound entries; an empty TARGET drops the source's entries.
func parseMapping(values []string) (models.FingerprintMapping, error) {
	mapping := make(models.FingerprintMapping, len(values))

	for _, v := range values {
		source, target, ok := strings.Cut(v, "=")
		source, target = strings.TrimSpace(source), strings.TrimSpace(target)
		if !ok || source == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMapping, v)
		}
		if source == unboundSource {
			source = ""
		}
		if _, dup := mapping[source]; dup {
			return nil, fmt.Errorf("%w: source %q mapped twice", ErrInvalidMapping, v)
		}

		if target == "" {
			mapping[source] = nil
			continue
		}
		mapping[source] = models.StringPtr(target)
	}

	return mapping, nil
}
