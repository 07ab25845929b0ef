// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/models"
)

const (
	mastersDirName  = "masters"
	masterExtension = ".enc"
)

type masterVault struct {
	dir      string
	keychain crypto.KeyChainService
	logger   *logger.Logger
}

// NewMasterVault returns a [MasterVault] keeping its records under
// <dataDir>/masters. New records are sealed with keychain's parameters.
func NewMasterVault(dataDir string, keychain crypto.KeyChainService, logger *logger.Logger) MasterVault {
	return &masterVault{
		dir:      filepath.Join(dataDir, mastersDirName),
		keychain: keychain,
		logger:   logger.GetChildLogger("master_vault"),
	}
}

func (m *masterVault) MasterPath(fingerprint string) string {
	return filepath.Join(m.dir, fingerprint+masterExtension)
}

func (m *masterVault) SaveMaster(ctx context.Context, viewerPassword, masterSecret []byte) (string, error) {
	log := m.loggerFor(ctx)

	env, err := m.keychain.Seal(viewerPassword, masterSecret)
	if err != nil {
		log.Err(err).
			Str("func", "masterVault.SaveMaster").
			Msg("failed to seal master secret")
		return "", fmt.Errorf("failed to encrypt master secret: %w", err)
	}

	fingerprint := crypto.Fingerprint(masterSecret)
	if err := writeJSONFile(m.MasterPath(fingerprint), recordFromEnvelope(env)); err != nil {
		log.Err(err).
			Str("func", "masterVault.SaveMaster").
			Str("fingerprint", fingerprint).
			Msg("failed to write master record")
		return "", err
	}

	log.Info().
		Str("func", "masterVault.SaveMaster").
		Str("fingerprint", fingerprint).
		Msg("master record saved")
	return fingerprint, nil
}

func (m *masterVault) LoadMaster(ctx context.Context, viewerPassword []byte, fingerprint string) ([]byte, error) {
	log := m.loggerFor(ctx)

	record, err := m.readRecord(fingerprint)
	if err != nil {
		log.Err(err).
			Str("func", "masterVault.LoadMaster").
			Str("fingerprint", fingerprint).
			Msg("failed to read master record")
		return nil, err
	}

	env, candidates, err := envelopeFromRecord(record)
	if err != nil {
		log.Err(err).
			Str("func", "masterVault.LoadMaster").
			Str("fingerprint", fingerprint).
			Uint32("version", record.Version).
			Msg("unsupported master record")
		return nil, err
	}

	plaintext, used, err := m.keychain.Open(viewerPassword, env, candidates...)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "masterVault.LoadMaster").
			Str("fingerprint", fingerprint).
			Uint32("version", record.Version).
			Msg("failed to decrypt master record")
		if errors.Is(err, crypto.ErrInvalidKDFParams) || errors.Is(err, crypto.ErrUnknownCipher) {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		return nil, err
	}

	// Master secrets are text. Non-UTF-8 plaintext counts as a failed
	// decryption.
	if !utf8.Valid(plaintext) {
		crypto.Zero(plaintext)
		return nil, crypto.ErrAuthentication
	}

	if record.Version != models.MasterVersionCurrent && len(plaintext) > 0 {
		m.migrate(ctx, viewerPassword, fingerprint, env.Salt, used, plaintext, record.Version)
	}

	return plaintext, nil
}

// migrate rewrites a legacy record in the current format keeping its salt
// and the parameters that authenticated. Failures are only logged: the
// secret has already been recovered and the old record is still intact.
func (m *masterVault) migrate(ctx context.Context, viewerPassword []byte, fingerprint string, salt []byte, params crypto.KDFParams, plaintext []byte, from uint32) {
	log := m.loggerFor(ctx)

	env, err := m.keychain.SealWithSalt(viewerPassword, salt, params, plaintext)
	if err != nil {
		log.Warn().
			Err(err).
			Str("func", "masterVault.migrate").
			Str("fingerprint", fingerprint).
			Msg("failed to re-encrypt legacy master record")
		return
	}

	if err := writeJSONFile(m.MasterPath(fingerprint), recordFromEnvelope(env)); err != nil {
		log.Warn().
			Err(err).
			Str("func", "masterVault.migrate").
			Str("fingerprint", fingerprint).
			Msg("failed to write migrated master record")
		return
	}

	log.Info().
		Str("func", "masterVault.migrate").
		Str("fingerprint", fingerprint).
		Uint32("from_version", from).
		Uint32("to_version", models.MasterVersionCurrent).
		Msg("master record migrated")
}

func (m *masterVault) ListFingerprints(ctx context.Context) ([]string, error) {
	log := m.loggerFor(ctx)

	dirEntries, err := os.ReadDir(m.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "masterVault.ListFingerprints").
			Msg("failed to read masters directory")
		return nil, fmt.Errorf("%w: list masters: %w", ErrIO, err)
	}

	// os.ReadDir returns entries sorted by name.
	fingerprints := make([]string, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if !de.Type().IsRegular() || !strings.HasSuffix(name, masterExtension) {
			continue
		}
		fp := strings.TrimSuffix(name, masterExtension)
		if !isFingerprint(fp) {
			continue
		}
		fingerprints = append(fingerprints, fp)
	}

	return fingerprints, nil
}

func (m *masterVault) HasMaster(ctx context.Context) bool {
	fingerprints, err := m.ListFingerprints(ctx)
	return err == nil && len(fingerprints) > 0
}

func (m *masterVault) DeleteMaster(ctx context.Context, fingerprint string) (bool, error) {
	log := m.loggerFor(ctx)

	if !isFingerprint(fingerprint) {
		return false, nil
	}

	err := os.Remove(m.MasterPath(fingerprint))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "masterVault.DeleteMaster").
			Str("fingerprint", fingerprint).
			Msg("failed to remove master record")
		return false, fmt.Errorf("%w: remove master %s: %w", ErrIO, fingerprint, err)
	}

	log.Info().
		Str("func", "masterVault.DeleteMaster").
		Str("fingerprint", fingerprint).
		Msg("master record deleted")
	return true, nil
}

func (m *masterVault) FingerprintOf(ctx context.Context, viewerPassword []byte, fingerprint string) (string, error) {
	secret, err := m.LoadMaster(ctx, viewerPassword, fingerprint)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(secret)

	return crypto.Fingerprint(secret), nil
}

func (m *masterVault) readRecord(fingerprint string) (models.MasterRecord, error) {
	if !isFingerprint(fingerprint) {
		return models.MasterRecord{}, fmt.Errorf("%w: invalid fingerprint %q", ErrMasterNotFound, fingerprint)
	}

	data, err := os.ReadFile(m.MasterPath(fingerprint))
	if errors.Is(err, fs.ErrNotExist) {
		return models.MasterRecord{}, fmt.Errorf("%w: %s", ErrMasterNotFound, fingerprint)
	}
	if err != nil {
		return models.MasterRecord{}, fmt.Errorf("%w: read master %s: %w", ErrIO, fingerprint, err)
	}

	var record models.MasterRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.MasterRecord{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}
	return record, nil
}

// envelopeFromRecord decodes a record of any known version. For versions
// without stored parameters it also returns the historical parameter sets
// to try, the platform's own first.
func envelopeFromRecord(r models.MasterRecord) (crypto.Envelope, []crypto.KDFParams, error) {
	salt, err := crypto.DecodeBase64(r.SaltB64)
	if err != nil {
		return crypto.Envelope{}, nil, fmt.Errorf("%w: salt: %w", ErrMalformedRecord, err)
	}
	nonce, err := crypto.DecodeBase64(r.NonceB64)
	if err != nil {
		return crypto.Envelope{}, nil, fmt.Errorf("%w: nonce: %w", ErrMalformedRecord, err)
	}
	ciphertext, err := crypto.DecodeBase64(r.CiphertextB64)
	if err != nil {
		return crypto.Envelope{}, nil, fmt.Errorf("%w: ciphertext: %w", ErrMalformedRecord, err)
	}

	env := crypto.Envelope{Salt: salt, Nonce: nonce, Ciphertext: ciphertext}

	switch r.Version {
	case models.MasterVersionCurrent:
		if !r.HasExplicitParams() || r.KDF != crypto.KDFArgon2id {
			return crypto.Envelope{}, nil, fmt.Errorf("%w: missing or unsupported kdf parameters", ErrMalformedRecord)
		}
		cipherID, err := crypto.ParseCipherID(r.Cipher)
		if err != nil {
			return crypto.Envelope{}, nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}
		env.Cipher = cipherID
		env.Params = crypto.KDFParams{
			MemoryKiB:   r.MemKiB,
			Iterations:  r.Iterations,
			Parallelism: r.Parallelism,
		}
		return env, nil, nil
	case models.MasterVersionAESImplicit:
		env.Cipher = crypto.CipherAES256GCM
		return env, crypto.HistoricalParams(), nil
	case models.MasterVersionChaCha:
		env.Cipher = crypto.CipherChaCha20Poly1305
		return env, crypto.HistoricalParams(), nil
	default:
		return crypto.Envelope{}, nil, fmt.Errorf("%w: unknown version %d", ErrMalformedRecord, r.Version)
	}
}

func recordFromEnvelope(env crypto.Envelope) models.MasterRecord {
	return models.MasterRecord{
		Version:       models.MasterVersionCurrent,
		KDF:           crypto.KDFArgon2id,
		MemKiB:        env.Params.MemoryKiB,
		Iterations:    env.Params.Iterations,
		Parallelism:   env.Params.Parallelism,
		Cipher:        string(env.Cipher),
		SaltB64:       crypto.EncodeBase64(env.Salt),
		NonceB64:      crypto.EncodeBase64(env.Nonce),
		CiphertextB64: crypto.EncodeBase64(env.Ciphertext),
	}
}

// isFingerprint accepts lowercase hex only, which also keeps fingerprints
// from escaping the masters directory.
func isFingerprint(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}

// loggerFor returns the request logger from ctx, or the store's own logger
// when ctx carries none.
func (m *masterVault) loggerFor(ctx context.Context) *logger.Logger {
	return logger.FromContextOr(ctx, m.logger)
}
