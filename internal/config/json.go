// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON config file.
//
// Example:
//
//	{
//	  "app":     { "log_level": "debug" },
//	  "storage": { "data_dir": "/home/me/.saforia" },
//	  "crypto":  { "kdf_profile": "mobile" }
//	}
type StructuredJSONConfig struct {
	App struct {
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DataDir string `json:"data_dir"`
	} `json:"storage,omitempty"`

	Crypto struct {
		KDFProfile string `json:"kdf_profile"`
	} `json:"crypto,omitempty"`
}

// parseJSON reads the file at jsonFilePath and converts it into a
// *StructuredConfig. JSONFilePath is left empty on the result so the file
// cannot point at another file.
func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DataDir: jsonCfg.Storage.DataDir,
		},
		Crypto: Crypto{
			KDFProfile: jsonCfg.Crypto.KDFProfile,
		},
	}

	return cfg, nil
}
