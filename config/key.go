// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Key names a single stored configuration value
type Key string

var _ pflag.Value = (*Key)(nil)

const (
	// KeyRepo is the path to the repository ideas are written to
	KeyRepo Key = "repo"
	// KeyEditor is the path to the editor binary
	KeyEditor Key = "editor"
)

// Keys returns every known key, in display order
func Keys() []Key {
	return []Key{KeyRepo, KeyEditor}
}

// AvailableKeys returns the string form of every known key
func AvailableKeys() []string {
	keys := Keys()
	all := make([]string, 0, len(keys))
	for _, k := range keys {
		all = append(all, string(k))
	}
	return all
}

// FileName returns the name of the file backing the key
//
// An unknown key returns an empty string
func (k Key) FileName() string {
	switch k {
	case KeyRepo:
		return "repo_path"
	case KeyEditor:
		return "editor_path"
	default:
		return ""
	}
}

// Valid reports whether k is one of the known keys
func (k Key) Valid() bool {
	return k.FileName() != ""
}

// ParseKey converts a string into a Key
func ParseKey(s string) (Key, error) {
	var k Key
	if err := k.Set(s); err != nil {
		return "", err
	}
	return k, nil
}

// String implements the pflag.Value and fmt.Stringer interfaces
func (k *Key) String() string {
	return string(*k)
}

// Set implements the pflag.Value interface
func (k *Key) Set(value string) error {
	switch Key(value) {
	case KeyRepo:
		*k = KeyRepo
	case KeyEditor:
		*k = KeyEditor
	default:
		return fmt.Errorf("invalid config key: %q", value)
	}
	return nil
}

// Type implements the pflag.Value interface
func (k *Key) Type() string {
	return "string"
}
