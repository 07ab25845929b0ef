// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appDirName    = "saforia"
	macOSBundleID = "com.Saforia.Saforia"
)

// DefaultDataDir returns the per-platform data directory used when neither
// a flag, SAFORIA_DATA_DIR nor the JSON file names one. The paths match the
// ones earlier releases wrote to, so existing vaults are found.
func DefaultDataDir() (string, error) {
	return defaultDataDir(runtime.GOOS, os.Getenv, os.UserHomeDir)
}

func defaultDataDir(goos string, getenv func(string) string, home func() (string, error)) (string, error) {
	switch goos {
	case "windows":
		appData := getenv("APPDATA")
		if appData == "" {
			return "", errors.New("APPDATA is not set")
		}
		return filepath.Join(appData, "Saforia", "Saforia", "data"), nil
	case "darwin", "ios":
		h, err := home()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		return filepath.Join(h, "Library", "Application Support", macOSBundleID), nil
	default:
		if xdg := getenv("XDG_DATA_HOME"); xdg != "" && filepath.IsAbs(xdg) {
			return filepath.Join(xdg, appDirName), nil
		}
		h, err := home()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		return filepath.Join(h, ".local", "share", appDirName), nil
	}
}
