// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package eureka provides the flat-file store behind eureka's per-user configuration.
package eureka

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/defenseunicorns/eureka/config"
)

// Store reads and writes single-value config files inside one directory.
//
// Every operation goes straight to the filesystem, nothing is cached and nothing is locked.
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore creates a store rooted at dir. The directory does not need to exist yet.
func NewStore(fsys afero.Fs, dir string) *Store {
	return &Store{
		fs:  fsys,
		dir: filepath.Clean(dir),
	}
}

// NewDefaultStore creates a store on the OS filesystem at config.DefaultDirectory().
func NewDefaultStore() (*Store, error) {
	dir, err := config.DefaultDirectory()
	if err != nil {
		return nil, newError(ErrEnvironment, "", err, "could not resolve your $HOME directory")
	}
	return NewStore(afero.NewOsFs(), dir), nil
}

// Dir returns the configuration directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the file backing key.
func (s *Store) Path(key config.Key) (string, error) {
	if !key.Valid() {
		return "", fmt.Errorf("invalid config key: %q", key)
	}
	return filepath.Join(s.dir, key.FileName()), nil
}

// CreateDirectory creates the configuration directory and any missing parents.
//
// Calling it on an existing directory is not an error.
func (s *Store) CreateDirectory() error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return newError(ErrIO, s.dir, err, "couldn't create %s", s.dir)
	}
	return nil
}

// DirectoryExists reports whether the configuration directory currently exists.
func (s *Store) DirectoryExists() bool {
	return s.PathExists(s.dir)
}

// PathExists reports whether anything exists at path.
func (s *Store) PathExists(path string) bool {
	_, err := s.fs.Stat(path)
	return err == nil
}

// Read returns the value stored for key, minus a single trailing newline.
func (s *Store) Read(key config.Key) (string, error) {
	p, err := s.Path(key)
	if err != nil {
		return "", err
	}

	f, err := s.fs.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newError(ErrNotFound, p, err, "config file not found")
		}
		return "", newError(ErrIO, p, err, "unable to open %s", p)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return "", newError(ErrIO, p, err, "unable to read file at: %s", p)
	}

	if !utf8.Valid(b) {
		return "", newError(ErrEncoding, p, nil, "file at %s is not valid UTF-8 text", p)
	}

	value, _ := strings.CutSuffix(string(b), "\n")
	return value, nil
}

// Write replaces the file for key with value, byte for byte.
//
// No trailing newline is added.
func (s *Store) Write(key config.Key, value string) error {
	p, err := s.Path(key)
	if err != nil {
		return err
	}

	f, err := s.fs.Create(p)
	if err != nil {
		return newError(ErrIO, p, err, "couldn't create %s", p)
	}

	_, werr := f.WriteString(value)
	if err := errors.Join(werr, f.Close()); err != nil {
		return newError(ErrIO, p, err, "couldn't write to %s", p)
	}
	return nil
}

// Remove deletes the file for key.
func (s *Store) Remove(key config.Key) error {
	p, err := s.Path(key)
	if err != nil {
		return err
	}

	if !s.PathExists(p) {
		return newError(ErrNotFound, p, nil, "path does not exist: %s", p)
	}

	if err := s.fs.Remove(p); err != nil {
		return newError(ErrIO, p, err, "couldn't remove %s", p)
	}
	return nil
}

// Values returns every stored value in config.Keys() order.
//
// Keys without a file are skipped; any other failure is returned.
func (s *Store) Values() ([]Value, error) {
	values := make([]Value, 0, len(config.Keys()))
	for _, k := range config.Keys() {
		v, err := s.Read(k)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		values = append(values, Value{Key: k, Value: v})
	}
	return values, nil
}

// Value is a key and its stored value
type Value struct {
	Key   config.Key
	Value string
}
