// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/spf13/pflag"

// Flags holds the configuration values that can be set on the command line.
// Register binds them to a flag set (typically a cobra command's persistent
// flags); the values are read after the command line has been parsed.
type Flags struct {
	DataDir    string
	ConfigPath string
	KDFProfile string
	LogLevel   string
}

// Register binds f to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.DataDir, "data-dir", "", "vault data directory (env "+EnvPrefix+"DATA_DIR)")
	fs.StringVarP(&f.ConfigPath, "config", "c", "", "JSON config file path (env "+EnvPrefix+"CONFIG)")
	fs.StringVar(&f.KDFProfile, "kdf-profile", "", "key derivation cost for new encryptions: desktop or mobile")
	fs.StringVar(&f.LogLevel, "log-level", "", "log level: debug, info, warn, error")
}

func (f *Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel: f.LogLevel,
		},
		Storage: Storage{
			DataDir: f.DataDir,
		},
		Crypto: Crypto{
			KDFProfile: f.KDFProfile,
		},
		JSONFilePath: f.ConfigPath,
	}
}
