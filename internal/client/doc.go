// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the saforia client application runtime.
//
// It resolves configuration, wires the file-backed stores and the services
// on top of them, and hands the result to the command line.
package client
