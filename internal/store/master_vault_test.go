// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/models"
)

// Cheap parameters for records written by the vault under test. Legacy
// records always use the real historical parameters.
var fastParams = crypto.KDFParams{MemoryKiB: 64, Iterations: 1, Parallelism: 1}

func newTestVault(t *testing.T) (*masterVault, string) {
	t.Helper()
	dir := t.TempDir()
	v := NewMasterVault(dir, crypto.NewKeyChainService(fastParams), logger.Nop())
	return v.(*masterVault), dir
}

func TestMasterVault_LogsToOwnLoggerWithoutContextLogger(t *testing.T) {
	var buf bytes.Buffer
	v := NewMasterVault(t.TempDir(), crypto.NewKeyChainService(fastParams), logger.NewLogger("test", &buf))

	fp, err := v.SaveMaster(context.Background(), []byte("viewer"), []byte("secret"))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "master record saved")
	assert.Contains(t, buf.String(), `"component":"master_vault"`)
	assert.Contains(t, buf.String(), fp)
	assert.NotContains(t, buf.String(), "secret")
}

func readRecordFile(t *testing.T, path string) models.MasterRecord {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var r models.MasterRecord
	require.NoError(t, json.Unmarshal(data, &r))
	return r
}

func writeRecordFile(t *testing.T, path string, v any) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

// writeLegacyRecord writes a record without stored parameters the way older
// releases did.
func writeLegacyRecord(t *testing.T, v *masterVault, version uint32, params crypto.KDFParams, password, secret string) string {
	t.Helper()

	salt, err := crypto.GenerateSalt()
	require.NoError(t, err)
	key := crypto.DeriveKey([]byte(password), salt, params)

	var aead cipher.AEAD
	switch version {
	case models.MasterVersionChaCha:
		aead, err = chacha20poly1305.New(key)
	case models.MasterVersionAESImplicit:
		var block cipher.Block
		block, err = aes.NewCipher(key)
		require.NoError(t, err)
		aead, err = cipher.NewGCM(block)
	}
	require.NoError(t, err)

	nonce := make([]byte, aead.NonceSize())
	for i := range nonce {
		nonce[i] = byte(i + 1)
	}

	fp := crypto.Fingerprint([]byte(secret))
	writeRecordFile(t, v.MasterPath(fp), map[string]any{
		"version":        version,
		"salt_b64":       crypto.EncodeBase64(salt),
		"nonce_b64":      crypto.EncodeBase64(nonce),
		"ciphertext_b64": crypto.EncodeBase64(aead.Seal(nil, nonce, []byte(secret), nil)),
	})
	return fp
}

// ── SaveMaster / LoadMaster ──

func TestMasterVault_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	v, dir := newTestVault(t)

	fp, err := v.SaveMaster(ctx, []byte("viewer"), []byte("my master secret"))
	require.NoError(t, err)
	assert.Equal(t, crypto.Fingerprint([]byte("my master secret")), fp)
	assert.Equal(t, filepath.Join(dir, "masters", fp+".enc"), v.MasterPath(fp))

	secret, err := v.LoadMaster(ctx, []byte("viewer"), fp)
	require.NoError(t, err)
	assert.Equal(t, []byte("my master secret"), secret)
}

func TestMasterVault_SaveWritesCurrentFormat(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	fp, err := v.SaveMaster(ctx, []byte("viewer"), []byte("secret"))
	require.NoError(t, err)

	r := readRecordFile(t, v.MasterPath(fp))
	assert.Equal(t, uint32(models.MasterVersionCurrent), r.Version)
	assert.Equal(t, crypto.KDFArgon2id, r.KDF)
	assert.Equal(t, fastParams.MemoryKiB, r.MemKiB)
	assert.Equal(t, fastParams.Iterations, r.Iterations)
	assert.Equal(t, fastParams.Parallelism, r.Parallelism)
	assert.Equal(t, string(crypto.CipherAES256GCM), r.Cipher)
	assert.NotContains(t, r.SaltB64, "=")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(v.MasterPath(fp))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}
}

func TestMasterVault_SaveTwiceUsesFreshSalt(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	fp1, err := v.SaveMaster(ctx, []byte("viewer"), []byte("secret"))
	require.NoError(t, err)
	first := readRecordFile(t, v.MasterPath(fp1))

	fp2, err := v.SaveMaster(ctx, []byte("other viewer"), []byte("secret"))
	require.NoError(t, err)
	second := readRecordFile(t, v.MasterPath(fp2))

	assert.Equal(t, fp1, fp2)
	assert.NotEqual(t, first.SaltB64, second.SaltB64)
	assert.NotEqual(t, first.NonceB64, second.NonceB64)

	fps, err := v.ListFingerprints(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{fp1}, fps)
}

func TestMasterVault_LoadWrongPassword(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	fp, err := v.SaveMaster(ctx, []byte("viewer"), []byte("secret"))
	require.NoError(t, err)

	_, err = v.LoadMaster(ctx, []byte("wrong"), fp)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestMasterVault_LoadCorruptedCiphertext(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	fp, err := v.SaveMaster(ctx, []byte("viewer"), []byte("secret"))
	require.NoError(t, err)

	r := readRecordFile(t, v.MasterPath(fp))
	ct, err := crypto.DecodeBase64(r.CiphertextB64)
	require.NoError(t, err)
	ct[0] ^= 0xff
	r.CiphertextB64 = crypto.EncodeBase64(ct)
	writeRecordFile(t, v.MasterPath(fp), r)

	_, err = v.LoadMaster(ctx, []byte("viewer"), fp)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

func TestMasterVault_LoadNotFound(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	_, err := v.LoadMaster(ctx, []byte("viewer"), "0123456789abcdef0123456789abcdef")
	assert.ErrorIs(t, err, ErrMasterNotFound)

	_, err = v.LoadMaster(ctx, []byte("viewer"), "../../etc/passwd")
	assert.ErrorIs(t, err, ErrMasterNotFound)

	_, err = v.LoadMaster(ctx, []byte("viewer"), "")
	assert.ErrorIs(t, err, ErrMasterNotFound)
}

func TestMasterVault_LoadMalformed(t *testing.T) {
	const fp = "0123456789abcdef0123456789abcdef"

	valid := models.MasterRecord{
		Version:       models.MasterVersionCurrent,
		KDF:           crypto.KDFArgon2id,
		MemKiB:        64,
		Iterations:    1,
		Parallelism:   1,
		Cipher:        string(crypto.CipherAES256GCM),
		SaltB64:       crypto.EncodeBase64(make([]byte, 16)),
		NonceB64:      crypto.EncodeBase64(make([]byte, 12)),
		CiphertextB64: crypto.EncodeBase64(make([]byte, 32)),
	}

	tests := []struct {
		name   string
		mutate func(r *models.MasterRecord)
		raw    string
	}{
		{name: "not json", raw: "{not json"},
		{name: "unknown version", mutate: func(r *models.MasterRecord) { r.Version = 9 }},
		{name: "bad salt base64", mutate: func(r *models.MasterRecord) { r.SaltB64 = "!!!" }},
		{name: "bad nonce base64", mutate: func(r *models.MasterRecord) { r.NonceB64 = "*" }},
		{name: "current without params", mutate: func(r *models.MasterRecord) { r.MemKiB = 0 }},
		{name: "unsupported kdf", mutate: func(r *models.MasterRecord) { r.KDF = "scrypt" }},
		{name: "unknown cipher", mutate: func(r *models.MasterRecord) { r.Cipher = "rot13" }},
		{name: "absurd memory cost", mutate: func(r *models.MasterRecord) { r.MemKiB = 1 << 30 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestVault(t)
			path := v.MasterPath(fp)

			if tt.raw != "" {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
				require.NoError(t, os.WriteFile(path, []byte(tt.raw), 0o600))
			} else {
				r := valid
				tt.mutate(&r)
				writeRecordFile(t, path, r)
			}

			_, err := v.LoadMaster(context.Background(), []byte("viewer"), fp)
			assert.ErrorIs(t, err, ErrMalformedRecord)
		})
	}
}

// ── legacy formats ──

func TestMasterVault_MigratesChaChaRecord(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	// Written on a phone: the desktop parameters are tried first and fail.
	fp := writeLegacyRecord(t, v, models.MasterVersionChaCha, crypto.MobileParams, "viewer", "legacy secret")
	before := readRecordFile(t, v.MasterPath(fp))

	secret, err := v.LoadMaster(ctx, []byte("viewer"), fp)
	require.NoError(t, err)
	assert.Equal(t, []byte("legacy secret"), secret)

	after := readRecordFile(t, v.MasterPath(fp))
	assert.Equal(t, uint32(models.MasterVersionCurrent), after.Version)
	assert.Equal(t, crypto.KDFArgon2id, after.KDF)
	assert.Equal(t, crypto.MobileParams.MemoryKiB, after.MemKiB)
	assert.Equal(t, crypto.MobileParams.Iterations, after.Iterations)
	assert.Equal(t, crypto.MobileParams.Parallelism, after.Parallelism)
	assert.Equal(t, string(crypto.CipherAES256GCM), after.Cipher)
	assert.Equal(t, before.SaltB64, after.SaltB64)
	assert.NotEqual(t, before.NonceB64, after.NonceB64)

	again, err := v.LoadMaster(ctx, []byte("viewer"), fp)
	require.NoError(t, err)
	assert.Equal(t, []byte("legacy secret"), again)
}

func TestMasterVault_MigratesImplicitAESRecord(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	fp := writeLegacyRecord(t, v, models.MasterVersionAESImplicit, crypto.DesktopParams, "viewer", "aes secret")

	secret, err := v.LoadMaster(ctx, []byte("viewer"), fp)
	require.NoError(t, err)
	assert.Equal(t, []byte("aes secret"), secret)

	after := readRecordFile(t, v.MasterPath(fp))
	assert.Equal(t, uint32(models.MasterVersionCurrent), after.Version)
	assert.Equal(t, crypto.DesktopParams.MemoryKiB, after.MemKiB)
}

func TestMasterVault_LegacyWrongPasswordLeavesRecord(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	fp := writeLegacyRecord(t, v, models.MasterVersionChaCha, crypto.DesktopParams, "viewer", "legacy secret")

	_, err := v.LoadMaster(ctx, []byte("wrong"), fp)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)

	r := readRecordFile(t, v.MasterPath(fp))
	assert.Equal(t, uint32(models.MasterVersionChaCha), r.Version)
}

// ── listing / deletion ──

func TestMasterVault_ListFingerprints(t *testing.T) {
	ctx := context.Background()
	v, dir := newTestVault(t)

	fps, err := v.ListFingerprints(ctx)
	require.NoError(t, err)
	assert.Empty(t, fps)
	assert.False(t, v.HasMaster(ctx))

	fpB, err := v.SaveMaster(ctx, []byte("viewer"), []byte("bbb"))
	require.NoError(t, err)
	fpA, err := v.SaveMaster(ctx, []byte("viewer"), []byte("aaa"))
	require.NoError(t, err)

	masters := filepath.Join(dir, "masters")
	require.NoError(t, os.WriteFile(filepath.Join(masters, "notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(masters, "Not-Hex.enc"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(masters, "abc.enc"), 0o700))

	fps, err = v.ListFingerprints(ctx)
	require.NoError(t, err)

	want := []string{fpA, fpB}
	if want[0] > want[1] {
		want[0], want[1] = want[1], want[0]
	}
	assert.Equal(t, want, fps)
	assert.True(t, v.HasMaster(ctx))
}

func TestMasterVault_DeleteMaster(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	fp, err := v.SaveMaster(ctx, []byte("viewer"), []byte("secret"))
	require.NoError(t, err)

	ok, err := v.DeleteMaster(ctx, fp)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = v.DeleteMaster(ctx, fp)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = v.DeleteMaster(ctx, "../escape")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = v.LoadMaster(ctx, []byte("viewer"), fp)
	assert.ErrorIs(t, err, ErrMasterNotFound)
}

func TestMasterVault_FingerprintOf(t *testing.T) {
	ctx := context.Background()
	v, _ := newTestVault(t)

	fp, err := v.SaveMaster(ctx, []byte("viewer"), []byte("test"))
	require.NoError(t, err)
	assert.Equal(t, "098f6bcd4621d373cade4e832627b4f6", fp)

	got, err := v.FingerprintOf(ctx, []byte("viewer"), fp)
	require.NoError(t, err)
	assert.Equal(t, fp, got)

	_, err = v.FingerprintOf(ctx, []byte("wrong"), fp)
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}
