// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable the application
// reads, e.g. SAFORIA_DATA_DIR.
const EnvPrefix = "SAFORIA_"

// StructuredConfig is the top-level configuration container for saforia.
// It aggregates all sub-configurations and is populated by merging values
// from command-line flags, environment variables, and an optional JSON file.
//
// Struct tags:
//   - env: variable name without [EnvPrefix] (caarlos0/env).
type StructuredConfig struct {
	// App holds process-level settings.
	App App

	// Storage holds the location of the on-disk vault data.
	Storage Storage

	// Crypto selects the key-derivation cost used for new encryptions.
	Crypto Crypto

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via SAFORIA_CONFIG or the --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: SAFORIA_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage holds the location of the on-disk vault data.
type Storage struct {
	// DataDir is the directory holding masters/ and postfixes.json.
	// Empty means the per-platform default, see [DefaultDataDir].
	// Env: SAFORIA_DATA_DIR
	DataDir string `env:"DATA_DIR"`
}

// Crypto selects the key-derivation cost used for new encryptions.
type Crypto struct {
	// KDFProfile is "desktop", "mobile" or empty for the build default.
	// Env: SAFORIA_KDF_PROFILE
	KDFProfile string `env:"KDF_PROFILE"`
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources. For every field the first non-zero value wins, in
// this order:
//  1. Command-line flags (flags may be nil)
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		build()
}
