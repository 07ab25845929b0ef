// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/generator"
	"github.com/MKhiriev/go-saforia/internal/mock"
	"github.com/MKhiriev/go-saforia/internal/store"
	"github.com/MKhiriev/go-saforia/models"
)

func newTestVaultSvc(t *testing.T) (*vaultService, *mock.MockMasterVault, *mock.MockEntryCatalog) {
	t.Helper()
	ctrl := gomock.NewController(t)
	vault := mock.NewMockMasterVault(ctrl)
	catalog := mock.NewMockEntryCatalog(ctrl)
	return NewVaultService(vault, catalog).(*vaultService), vault, catalog
}

// ── Setup ────────────────────────────────────────────────────────────────────

func TestVaultService_Setup_FirstVaultBindsEntries(t *testing.T) {
	svc, vault, catalog := newTestVaultSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		vault.EXPECT().HasMaster(ctx).Return(false),
		vault.EXPECT().SaveMaster(ctx, []byte("viewer"), []byte("secret")).Return(fpA, nil),
		catalog.EXPECT().BindUnboundTo(ctx, fpA).Return(3, nil),
	)

	fp, err := svc.Setup(ctx, []byte("viewer"), []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, fpA, fp)
}

func TestVaultService_Setup_SecondVaultLeavesEntries(t *testing.T) {
	svc, vault, _ := newTestVaultSvc(t)
	ctx := context.Background()

	vault.EXPECT().HasMaster(ctx).Return(true)
	vault.EXPECT().SaveMaster(ctx, []byte("viewer"), []byte("secret")).Return(fpB, nil)

	fp, err := svc.Setup(ctx, []byte("viewer"), []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, fpB, fp)
}

func TestVaultService_Setup_Validation(t *testing.T) {
	svc, _, _ := newTestVaultSvc(t)
	ctx := context.Background()

	_, err := svc.Setup(ctx, nil, []byte("secret"))
	assert.ErrorIs(t, err, ErrViewerPasswordRequired)

	_, err = svc.Setup(ctx, []byte("viewer"), []byte{})
	assert.ErrorIs(t, err, ErrMasterSecretRequired)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestVaultService_Setup_SaveFails(t *testing.T) {
	svc, vault, _ := newTestVaultSvc(t)
	ctx := context.Background()

	vault.EXPECT().HasMaster(ctx).Return(false)
	vault.EXPECT().SaveMaster(ctx, gomock.Any(), gomock.Any()).Return("", store.ErrIO)

	_, err := svc.Setup(ctx, []byte("viewer"), []byte("secret"))
	assert.ErrorIs(t, err, store.ErrIO)
}

// ── GeneratePassword ────────────────────────────────────────────────────────

func TestVaultService_GeneratePassword(t *testing.T) {
	svc, vault, _ := newTestVaultSvc(t)
	ctx := context.Background()

	vault.EXPECT().LoadMaster(ctx, []byte("viewer"), fpA).Return([]byte("master"), nil)

	got, err := svc.GeneratePassword(ctx, []byte("viewer"), fpA, "example.com", "len20_alnum")
	require.NoError(t, err)
	assert.Equal(t, generator.Generate("master", "example.com", "len20_alnum"), got)
	assert.Len(t, got, 20)
}

func TestVaultService_GeneratePassword_DefaultMethod(t *testing.T) {
	svc, vault, _ := newTestVaultSvc(t)
	ctx := context.Background()

	vault.EXPECT().LoadMaster(ctx, gomock.Any(), fpA).Return([]byte("master"), nil)

	got, err := svc.GeneratePassword(ctx, []byte("viewer"), fpA, "example.com", "")
	require.NoError(t, err)
	assert.Equal(t, generator.Generate("master", "example.com", generator.DefaultMethodID), got)
}

func TestVaultService_GeneratePassword_ZeroesMaster(t *testing.T) {
	svc, vault, _ := newTestVaultSvc(t)
	ctx := context.Background()

	master := []byte("master")
	vault.EXPECT().LoadMaster(ctx, gomock.Any(), fpA).Return(master, nil)

	_, err := svc.GeneratePassword(ctx, []byte("viewer"), fpA, "example.com", "legacy_v1")
	require.NoError(t, err)
	assert.Equal(t, make([]byte, len(master)), master)
}

func TestVaultService_GeneratePassword_WrongPassword(t *testing.T) {
	svc, vault, _ := newTestVaultSvc(t)
	ctx := context.Background()

	vault.EXPECT().LoadMaster(ctx, gomock.Any(), fpA).Return(nil, crypto.ErrAuthentication)

	_, err := svc.GeneratePassword(ctx, []byte("nope"), fpA, "example.com", "")
	assert.ErrorIs(t, err, crypto.ErrAuthentication)
}

// ── GenerateSaved ───────────────────────────────────────────────────────────

func TestVaultService_GenerateSaved(t *testing.T) {
	svc, vault, catalog := newTestVaultSvc(t)
	ctx := context.Background()

	entry := models.Entry{ID: "e1", Postfix: "bank.example", MethodID: "legacy_v2", Fingerprint: models.StringPtr(fpA)}
	catalog.EXPECT().Get(ctx, "e1").Return(entry, true)
	vault.EXPECT().LoadMaster(ctx, []byte("viewer"), fpA).Return([]byte("master"), nil)

	got, err := svc.GenerateSaved(ctx, []byte("viewer"), fpA, "e1")
	require.NoError(t, err)
	assert.Equal(t, generator.Generate("master", "bank.example", "legacy_v2"), got)
}

func TestVaultService_GenerateSaved_UnboundEntry(t *testing.T) {
	svc, vault, catalog := newTestVaultSvc(t)
	ctx := context.Background()

	catalog.EXPECT().Get(ctx, "e1").Return(models.Entry{ID: "e1", Postfix: "p", MethodID: "len10_strong"}, true)
	vault.EXPECT().LoadMaster(ctx, gomock.Any(), fpB).Return([]byte("master"), nil)

	got, err := svc.GenerateSaved(ctx, []byte("viewer"), fpB, "e1")
	require.NoError(t, err)
	assert.Len(t, got, 10)
}

func TestVaultService_GenerateSaved_NotFound(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		svc, _, catalog := newTestVaultSvc(t)
		ctx := context.Background()

		catalog.EXPECT().Get(ctx, "missing").Return(models.Entry{}, false)

		_, err := svc.GenerateSaved(ctx, []byte("viewer"), fpA, "missing")
		assert.ErrorIs(t, err, store.ErrEntryNotFound)
	})

	t.Run("bound to another vault", func(t *testing.T) {
		svc, _, catalog := newTestVaultSvc(t)
		ctx := context.Background()

		catalog.EXPECT().Get(ctx, "e1").Return(models.Entry{ID: "e1", Fingerprint: models.StringPtr(fpB)}, true)

		_, err := svc.GenerateSaved(ctx, []byte("viewer"), fpA, "e1")
		assert.ErrorIs(t, err, store.ErrEntryNotFound)
	})
}
