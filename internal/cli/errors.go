// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"

	"github.com/MKhiriev/go-saforia/internal/config"
	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/service"
	"github.com/MKhiriev/go-saforia/internal/store"
)

var (
	ErrNoVault         = errors.New("no vault found, run setup first")
	ErrAmbiguousVault  = errors.New("several vaults found, choose one with --fingerprint")
	ErrSecretMismatch  = errors.New("entries do not match")
	ErrInvalidMapping  = errors.New("invalid mapping, expected SOURCE=TARGET")
	ErrNothingToUpdate = errors.New("nothing to update, pass --label, --postfix or --method")
)

// Messages shown instead of the wrapped error chain for well-known failures.
const (
	MsgWrongPassword     = "wrong password or corrupted data"
	MsgVaultNotFound     = "vault not found"
	MsgEntryNotFound     = "entry not found"
	MsgMalformedRecord   = "vault file is damaged or was written by an unsupported version"
	MsgInvalidBackup     = "not a saforia backup"
	MsgPassphraseMissing = "this backup is encrypted, a passphrase is required"
	MsgUnknownTarget     = "mapping target is not a vault on this machine"
)

// UserMessage turns err into the line printed to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, crypto.ErrAuthentication):
		return MsgWrongPassword
	case errors.Is(err, store.ErrMasterNotFound):
		return MsgVaultNotFound
	case errors.Is(err, store.ErrEntryNotFound):
		return MsgEntryNotFound
	case errors.Is(err, store.ErrMalformedRecord):
		return MsgMalformedRecord
	case errors.Is(err, service.ErrInvalidBackup):
		return MsgInvalidBackup
	case errors.Is(err, service.ErrPassphraseRequired):
		return MsgPassphraseMissing
	case errors.Is(err, service.ErrUnknownTargetFingerprint):
		return MsgUnknownTarget
	case errors.Is(err, config.ErrInvalidStorageConfigs),
		errors.Is(err, config.ErrInvalidCryptoConfigs),
		errors.Is(err, config.ErrInvalidAppConfigs):
		return "configuration error: " + err.Error()
	default:
		return err.Error()
	}
}
