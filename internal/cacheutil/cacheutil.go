// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package cacheutil is a small file cache for slow changing service
// listings, such as the Lex builtin catalog. Entries are keyed by a clear
// text string and stored under its sha256.
package cacheutil

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/tfctl/awsctl/internal/log"
)

const (
	EnvDir     = "AWSCTL_CACHE_DIR"
	EnvEnabled = "AWSCTL_CACHE"
)

// Entry is a cached artifact on disk.
type Entry struct {
	Key     string
	Path    string
	ModTime time.Time
	Data    []byte
}

// Age is how long ago the entry was written.
func (e *Entry) Age() time.Duration {
	return time.Since(e.ModTime)
}

// Dir resolves the base cache directory: EnvDir when set, otherwise
// os.UserCacheDir()/awsctl. It returns false when neither resolves.
func Dir() (string, bool) {
	if c := os.Getenv(EnvDir); c != "" {
		return c, true
	}
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, "awsctl"), true
	}
	return "", false
}

// Enabled is true unless EnvEnabled is "0" or "false".
func Enabled() bool {
	v := os.Getenv(EnvEnabled)
	return v != "0" && v != "false"
}

// EntryPath returns where key would live beneath subdirs and whether a file
// is there now.
func EntryPath(subdirs []string, key string) (string, bool) {
	base, ok := Dir()
	if !ok {
		return "", false
	}
	p := filepath.Join(append(append([]string{base}, subdirs...), encodeKey(key))...)
	_, err := os.Stat(p)
	return p, err == nil
}

// Read returns the entry for key, or false on a miss or when caching is off.
func Read(subdirs []string, key string) (*Entry, bool) {
	if !Enabled() {
		return nil, false
	}
	p, ok := EntryPath(subdirs, key)
	if !ok {
		return nil, false
	}
	fi, err := os.Stat(p)
	if err != nil {
		return nil, false
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return nil, false
	}
	log.Debugf("cache hit: key=%s", key)
	return &Entry{Key: key, Path: p, ModTime: fi.ModTime(), Data: b}, true
}

// Write stores data for key beneath subdirs.
func Write(subdirs []string, key string, data []byte) error {
	if !Enabled() {
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}
	dir := filepath.Join(append([]string{base}, subdirs...)...)
	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("create cache directory: %w", err)
	}
	p := filepath.Join(dir, encodeKey(key))
	if err := os.WriteFile(p, data, 0o600); err != nil { //nolint:mnd
		return fmt.Errorf("write cache: %w", err)
	}
	log.Debugf("cache write: key=%s", key)
	return nil
}

// Fetch returns the JSON cached for key when it is younger than ttl (any
// age when ttl <= 0), and otherwise calls fill and caches its result. Cache
// failures are logged and never fail the call.
func Fetch[T any](subdirs []string, key string, ttl time.Duration, fill func() (T, error)) (T, error) {
	if e, ok := Read(subdirs, key); ok && (ttl <= 0 || e.Age() < ttl) {
		var v T
		if err := json.Unmarshal(e.Data, &v); err == nil {
			return v, nil
		}
		log.Warnf("discarding corrupt cache entry %s", e.Path)
	}

	v, err := fill()
	if err != nil {
		return v, err
	}
	if b, err := json.Marshal(v); err != nil {
		log.WithError(err).Warnf("cache encode: key=%s", key)
	} else if err := Write(subdirs, key, b); err != nil {
		log.WithError(err).Warnf("cache write: key=%s", key)
	}
	return v, nil
}

// Purge removes entries older than maxAge. maxAge <= 0 disables purging.
func Purge(maxAge time.Duration) error {
	if maxAge <= 0 {
		log.Debug("cache cleaning disabled")
		return nil
	}
	base, ok := Dir()
	if !ok {
		return nil
	}

	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Concurrent runs may remove entries under us.
			if errors.Is(walkErr, fs.ErrNotExist) {
				return nil
			}
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if time.Since(info.ModTime()) > maxAge {
			if err := os.Remove(path); err != nil {
				log.WithError(err).Warnf("failed to remove cache file %s", path)
			} else {
				log.Debugf("removed cache file %s", path)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	return nil
}

func encodeKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}
