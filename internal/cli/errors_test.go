// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-saforia/internal/config"
	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/service"
	"github.com/MKhiriev/go-saforia/internal/store"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "auth", err: fmt.Errorf("load: %w", crypto.ErrAuthentication), want: MsgWrongPassword},
		{name: "vault", err: fmt.Errorf("%w: abc", store.ErrMasterNotFound), want: MsgVaultNotFound},
		{name: "entry", err: store.ErrEntryNotFound, want: MsgEntryNotFound},
		{name: "record", err: store.ErrMalformedRecord, want: MsgMalformedRecord},
		{name: "backup", err: service.ErrInvalidBackup, want: MsgInvalidBackup},
		{name: "passphrase", err: service.ErrPassphraseRequired, want: MsgPassphraseMissing},
		{name: "target", err: service.ErrUnknownTargetFingerprint, want: MsgUnknownTarget},
		{name: "config", err: config.ErrInvalidCryptoConfigs, want: "configuration error: " + config.ErrInvalidCryptoConfigs.Error()},
		{name: "other", err: errors.New("boom"), want: "boom"},
		{name: "cli", err: ErrAmbiguousVault, want: ErrAmbiguousVault.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}
