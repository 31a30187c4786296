// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package config provides the location and key set of eureka's per-user configuration
package config

import (
	"os"
	"path/filepath"
)

// DirName is the name of the configuration directory inside the user's home directory
const DirName = ".eureka"

// DirEnvVar overrides the configuration directory when set
const DirEnvVar = "EUREKA_CONFIG_DIR"

// DefaultDirectory returns the default directory for eureka configuration ($HOME/.eureka)
//
// The home directory is looked up on every call and never cached
func DefaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, DirName), nil
}
