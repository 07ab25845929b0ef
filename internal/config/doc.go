// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for saforia.
//
// Configuration is assembled from multiple sources; for every field the
// first source that sets it wins:
//  1. Command-line flags
//  2. SAFORIA_-prefixed environment variables
//  3. JSON config file
//
// The main entry point is [GetClientConfig], which also resolves the
// per-platform data directory and the KDF profile.
package config
