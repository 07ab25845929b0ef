// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-saforia/internal/crypto"
	"github.com/MKhiriev/go-saforia/internal/store"
)

// ClientServices groups the services the command line works with.
type ClientServices struct {
	VaultService  VaultService
	BackupService BackupService
}

func NewClientServices(storages *store.ClientStorages, keychain crypto.KeyChainService) *ClientServices {
	return &ClientServices{
		VaultService:  NewVaultService(storages.MasterVault, storages.EntryCatalog),
		BackupService: NewBackupService(storages.EntryCatalog, storages.MasterVault, keychain),
	}
}
