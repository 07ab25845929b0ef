// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/internal/store"
	"github.com/MKhiriev/go-saforia/models"
)

type backupService struct {
	catalog  store.EntryCatalog
	vaults   store.FingerprintLister
	keychain crypto.KeyChainService
}

// NewBackupService returns a [BackupService] committing into catalog and
// checking remap targets against vaults. keychain seals new backups.
func NewBackupService(catalog store.EntryCatalog, vaults store.FingerprintLister, keychain crypto.KeyChainService) BackupService {
	return &backupService{
		catalog:  catalog,
		vaults:   vaults,
		keychain: keychain,
	}
}

func (b *backupService) ExportEncrypted(ctx context.Context, entries []models.Entry, passphrase []byte) ([]byte, error) {
	log := logger.FromContext(ctx)

	if entries == nil {
		entries = []models.Entry{}
	}
	snapshot, err := json.MarshalIndent(models.EntriesFile{Entries: entries}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	pass := bytes.TrimSpace(passphrase)
	if len(pass) == 0 {
		log.Info().
			Str("func", "backupService.ExportEncrypted").
			Int("count", len(entries)).
			Bool("encrypted", false).
			Msg("backup exported")
		return snapshot, nil
	}
	defer crypto.Zero(snapshot)

	env, err := b.keychain.Seal(pass, snapshot)
	if err != nil {
		log.Err(err).
			Str("func", "backupService.ExportEncrypted").
			Msg("failed to encrypt backup")
		return nil, fmt.Errorf("encrypt snapshot: %w", err)
	}

	container := models.BackupContainer{
		Version:       models.BackupVersionCurrent,
		KDF:           crypto.KDFArgon2id,
		MemKiB:        env.Params.MemoryKiB,
		Iterations:    env.Params.Iterations,
		Parallelism:   env.Params.Parallelism,
		Cipher:        string(env.Cipher),
		SaltB64:       crypto.EncodeBase64(env.Salt),
		NonceB64:      crypto.EncodeBase64(env.Nonce),
		CiphertextB64: crypto.EncodeBase64(env.Ciphertext),
	}
	out, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode container: %w", err)
	}

	log.Info().
		Str("func", "backupService.ExportEncrypted").
		Int("count", len(entries)).
		Bool("encrypted", true).
		Msg("backup exported")
	return out, nil
}

func (b *backupService) ImportDecrypted(ctx context.Context, data, passphrase []byte) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	var container models.BackupContainer
	if err := json.Unmarshal(data, &container); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}

	if container.CiphertextB64 == "" {
		return decodeSnapshot(data)
	}

	pass := bytes.TrimSpace(passphrase)
	if len(pass) == 0 {
		return nil, ErrPassphraseRequired
	}

	env, candidates, err := envelopeFromContainer(container)
	if err != nil {
		log.Err(err).
			Str("func", "backupService.ImportDecrypted").
			Uint32("version", container.Version).
			Msg("unsupported backup container")
		return nil, err
	}

	plaintext, _, err := b.keychain.Open(pass, env, candidates...)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "backupService.ImportDecrypted").
			Uint32("version", container.Version).
			Msg("failed to decrypt backup")
		if errors.Is(err, crypto.ErrInvalidKDFParams) || errors.Is(err, crypto.ErrUnknownCipher) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
		}
		return nil, err
	}
	defer crypto.Zero(plaintext)

	return decodeSnapshot(plaintext)
}

func (b *backupService) PreviewFingerprints(ctx context.Context, data, passphrase []byte) ([]models.FingerprintCount, error) {
	entries, err := b.ImportDecrypted(ctx, data, passphrase)
	if err != nil {
		return nil, err
	}
	return store.CountByFingerprint(entries), nil
}

func (b *backupService) ImportWithMapping(ctx context.Context, data, passphrase []byte, mapping models.FingerprintMapping, overwrite bool) (int, error) {
	entries, err := b.ImportDecrypted(ctx, data, passphrase)
	if err != nil {
		return 0, err
	}

	kept, err := b.remap(ctx, entries, mapping)
	if err != nil {
		return 0, err
	}
	return b.commit(ctx, "backupService.ImportWithMapping", kept, overwrite)
}

func (b *backupService) ImportRawPayload(ctx context.Context, entries []models.Entry, overwrite bool) (int, error) {
	known, err := b.knownFingerprints(ctx)
	if err != nil {
		return 0, err
	}

	kept := make([]models.Entry, 0, len(entries))
	for _, e := range models.NormalizeEntries(entries) {
		if e.IsBound() {
			if _, ok := known[*e.Fingerprint]; !ok {
				continue
			}
		}
		kept = append(kept, e)
	}

	return b.commit(ctx, "backupService.ImportRawPayload", kept, overwrite)
}

func (b *backupService) PreviewCSV(_ context.Context, data []byte) []models.FingerprintCount {
	return store.CountByFingerprint(ParseCSV(data))
}

func (b *backupService) ImportCSVWithMapping(ctx context.Context, data []byte, mapping models.FingerprintMapping, overwrite bool) (int, error) {
	kept, err := b.remap(ctx, ParseCSV(data), mapping)
	if err != nil {
		return 0, err
	}
	return b.commit(ctx, "backupService.ImportCSVWithMapping", kept, overwrite)
}

func (b *backupService) ValidateMapping(ctx context.Context, mapping models.FingerprintMapping) error {
	known, err := b.knownFingerprints(ctx)
	if err != nil {
		return err
	}

	for source, target := range mapping {
		if target == nil || *target == "" {
			continue
		}
		if _, ok := known[*target]; !ok {
			return fmt.Errorf("%w: %q (mapped from %q)", ErrUnknownTargetFingerprint, *target, source)
		}
	}
	return nil
}

// remap rebinds entries through mapping. Unmapped sources, empty targets and
// targets that are not vaults on this machine drop the entry.
func (b *backupService) remap(ctx context.Context, entries []models.Entry, mapping models.FingerprintMapping) ([]models.Entry, error) {
	log := logger.FromContext(ctx)

	known, err := b.knownFingerprints(ctx)
	if err != nil {
		return nil, err
	}

	kept := make([]models.Entry, 0, len(entries))
	for _, e := range entries {
		target, ok := mapping[e.FingerprintValue()]
		if !ok || target == nil || *target == "" {
			continue
		}
		if _, ok := known[*target]; !ok {
			continue
		}
		kept = append(kept, e.WithFingerprint(*target))
	}

	log.Debug().
		Str("func", "backupService.remap").
		Int("kept", len(kept)).
		Int("dropped", len(entries)-len(kept)).
		Msg("entries remapped")
	return kept, nil
}

func (b *backupService) commit(ctx context.Context, caller string, entries []models.Entry, overwrite bool) (int, error) {
	log := logger.FromContext(ctx)

	var (
		n   int
		err error
	)
	if overwrite {
		n, err = b.catalog.ReplaceAll(ctx, entries)
	} else {
		n, err = b.catalog.MergeNonConflicting(ctx, entries)
	}
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Bool("overwrite", overwrite).
			Msg("failed to commit imported entries")
		return 0, fmt.Errorf("commit imported entries: %w", err)
	}

	log.Info().
		Str("func", caller).
		Bool("overwrite", overwrite).
		Int("count", n).
		Msg("entries imported")
	return n, nil
}

func (b *backupService) knownFingerprints(ctx context.Context) (map[string]struct{}, error) {
	fingerprints, err := b.vaults.ListFingerprints(ctx)
	if err != nil {
		return nil, fmt.Errorf("list known vaults: %w", err)
	}

	known := make(map[string]struct{}, len(fingerprints))
	for _, fp := range fingerprints {
		known[fp] = struct{}{}
	}
	return known, nil
}

func decodeSnapshot(data []byte) ([]models.Entry, error) {
	var file models.EntriesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
	}
	if file.Entries == nil {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidBackup)
	}
	return models.NormalizeEntries(file.Entries), nil
}

// envelopeFromContainer decodes a container and returns the parameter sets
// to try. Current containers usually carry their own; when the memory cost
// is missing the historical ones are tried with the stored time cost.
func envelopeFromContainer(c models.BackupContainer) (crypto.Envelope, []crypto.KDFParams, error) {
	salt, err := crypto.DecodeBase64(c.SaltB64)
	if err != nil {
		return crypto.Envelope{}, nil, fmt.Errorf("%w: salt: %w", ErrInvalidBackup, err)
	}
	nonce, err := crypto.DecodeBase64(c.NonceB64)
	if err != nil {
		return crypto.Envelope{}, nil, fmt.Errorf("%w: nonce: %w", ErrInvalidBackup, err)
	}
	ciphertext, err := crypto.DecodeBase64(c.CiphertextB64)
	if err != nil {
		return crypto.Envelope{}, nil, fmt.Errorf("%w: ciphertext: %w", ErrInvalidBackup, err)
	}

	env := crypto.Envelope{
		Cipher:     crypto.CipherChaCha20Poly1305,
		Salt:       salt,
		Nonce:      nonce,
		Ciphertext: ciphertext,
	}

	switch c.Version {
	case models.BackupVersionCurrent:
		if c.KDF != "" && c.KDF != crypto.KDFArgon2id {
			return crypto.Envelope{}, nil, fmt.Errorf("%w: unsupported kdf %q", ErrInvalidBackup, c.KDF)
		}
		if c.Cipher != "" {
			id, err := crypto.ParseCipherID(c.Cipher)
			if err != nil {
				return crypto.Envelope{}, nil, fmt.Errorf("%w: %w", ErrInvalidBackup, err)
			}
			env.Cipher = id
		}

		iterations, parallelism := c.Iterations, c.Parallelism
		if iterations == 0 {
			iterations = crypto.DesktopParams.Iterations
		}
		if parallelism == 0 {
			parallelism = crypto.DesktopParams.Parallelism
		}

		if c.MemKiB > 0 {
			return env, []crypto.KDFParams{{MemoryKiB: c.MemKiB, Iterations: iterations, Parallelism: parallelism}}, nil
		}
		var candidates []crypto.KDFParams
		for _, p := range crypto.HistoricalParams() {
			candidates = append(candidates, crypto.KDFParams{MemoryKiB: p.MemoryKiB, Iterations: iterations, Parallelism: parallelism})
		}
		return env, candidates, nil
	case models.BackupVersionLegacy, 0:
		return env, crypto.HistoricalParams(), nil
	default:
		return crypto.Envelope{}, nil, fmt.Errorf("%w: unknown container version %d", ErrInvalidBackup, c.Version)
	}
}
