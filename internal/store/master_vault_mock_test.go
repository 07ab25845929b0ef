// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/internal/mock"
	"github.com/MKhiriev/go-saforia/models"
)

func newMockedVault(t *testing.T) (*masterVault, *mock.MockKeyChainService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	keychain := mock.NewMockKeyChainService(ctrl)
	v := NewMasterVault(t.TempDir(), keychain, logger.Nop())
	return v.(*masterVault), keychain
}

func TestMasterVault_SaveSealFailure(t *testing.T) {
	v, keychain := newMockedVault(t)
	ctx := context.Background()

	keychain.EXPECT().
		Seal([]byte("viewer"), []byte("secret")).
		Return(crypto.Envelope{}, crypto.ErrRandomSource)

	_, err := v.SaveMaster(ctx, []byte("viewer"), []byte("secret"))
	require.ErrorIs(t, err, crypto.ErrRandomSource)
	assert.False(t, v.HasMaster(ctx))
}

func TestMasterVault_MigrationFailureIsNotSurfaced(t *testing.T) {
	v, keychain := newMockedVault(t)
	ctx := context.Background()

	fp := crypto.Fingerprint([]byte("secret"))
	writeRecordFile(t, v.MasterPath(fp), models.MasterRecord{
		Version:       models.MasterVersionChaCha,
		SaltB64:       crypto.EncodeBase64(make([]byte, crypto.SaltLen)),
		NonceB64:      crypto.EncodeBase64(make([]byte, 12)),
		CiphertextB64: crypto.EncodeBase64([]byte("opaque")),
	})

	gomock.InOrder(
		keychain.EXPECT().
			Open([]byte("viewer"), gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]byte("secret"), crypto.DesktopParams, nil),
		keychain.EXPECT().
			SealWithSalt([]byte("viewer"), make([]byte, crypto.SaltLen), crypto.DesktopParams, []byte("secret")).
			Return(crypto.Envelope{}, errors.New("sealing failed")),
	)

	got, err := v.LoadMaster(ctx, []byte("viewer"), fp)
	require.NoError(t, err)
	assert.Equal(t, "secret", string(got))

	assert.Equal(t, uint32(models.MasterVersionChaCha), readRecordFile(t, v.MasterPath(fp)).Version)
}

func TestMasterVault_EmptyPlaintextIsNotMigrated(t *testing.T) {
	v, keychain := newMockedVault(t)
	ctx := context.Background()

	fp := crypto.Fingerprint(nil)
	writeRecordFile(t, v.MasterPath(fp), models.MasterRecord{
		Version:       models.MasterVersionAESImplicit,
		SaltB64:       crypto.EncodeBase64(make([]byte, crypto.SaltLen)),
		NonceB64:      crypto.EncodeBase64(make([]byte, 12)),
		CiphertextB64: crypto.EncodeBase64([]byte("opaque")),
	})

	keychain.EXPECT().
		Open([]byte("viewer"), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte{}, crypto.DesktopParams, nil)

	got, err := v.LoadMaster(ctx, []byte("viewer"), fp)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, uint32(models.MasterVersionAESImplicit), readRecordFile(t, v.MasterPath(fp)).Version)
}
