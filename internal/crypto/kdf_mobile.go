// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build android || ios

package crypto

var platformParams = MobileParams
