// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/generator"
	"github.com/MKhiriev/go-saforia/internal/logger"
	"github.com/MKhiriev/go-saforia/internal/store"
)

type vaultService struct {
	vault   store.MasterVault
	catalog store.EntryCatalog
}

func NewVaultService(vault store.MasterVault, catalog store.EntryCatalog) VaultService {
	return &vaultService{
		vault:   vault,
		catalog: catalog,
	}
}

func (v *vaultService) Setup(ctx context.Context, viewerPassword, masterSecret []byte) (string, error) {
	log := logger.FromContext(ctx)

	if len(viewerPassword) == 0 {
		return "", ErrViewerPasswordRequired
	}
	if len(masterSecret) == 0 {
		return "", ErrMasterSecretRequired
	}

	first := !v.vault.HasMaster(ctx)

	fingerprint, err := v.vault.SaveMaster(ctx, viewerPassword, masterSecret)
	if err != nil {
		return "", fmt.Errorf("save master: %w", err)
	}

	if first {
		bound, err := v.catalog.BindUnboundTo(ctx, fingerprint)
		if err != nil {
			log.Err(err).
				Str("func", "vaultService.Setup").
				Str("fingerprint", fingerprint).
				Msg("failed to bind existing entries to first vault")
			return fingerprint, fmt.Errorf("bind entries: %w", err)
		}
		log.Info().
			Str("func", "vaultService.Setup").
			Str("fingerprint", fingerprint).
			Int("bound", bound).
			Msg("first vault created")
	}

	return fingerprint, nil
}

func (v *vaultService) GeneratePassword(ctx context.Context, viewerPassword []byte, fingerprint, postfix, methodID string) (string, error) {
	if methodID == "" {
		methodID = generator.DefaultMethodID
	}

	master, err := v.vault.LoadMaster(ctx, viewerPassword, fingerprint)
	if err != nil {
		return "", err
	}
	defer crypto.Zero(master)

	logger.FromContext(ctx).Debug().
		Str("func", "vaultService.GeneratePassword").
		Str("fingerprint", fingerprint).
		Str("method", methodID).
		Msg("generating password")

	return generator.Generate(string(master), postfix, methodID), nil
}

func (v *vaultService) GenerateSaved(ctx context.Context, viewerPassword []byte, fingerprint, entryID string) (string, error) {
	entry, ok := v.catalog.Get(ctx, entryID)
	if !ok || !entry.VisibleUnder(&fingerprint) {
		return "", fmt.Errorf("%w: %s", store.ErrEntryNotFound, entryID)
	}

	return v.GeneratePassword(ctx, viewerPassword, fingerprint, entry.Postfix, entry.MethodID)
}
