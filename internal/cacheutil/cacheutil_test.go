// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withCacheDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(EnvDir, dir)
	t.Setenv(EnvEnabled, "")
	return dir
}

func TestDir(t *testing.T) {
	dir := withCacheDir(t)
	got, ok := Dir()
	assert.True(t, ok)
	assert.Equal(t, dir, got)

	t.Setenv(EnvDir, "")
	got, ok = Dir()
	if ok {
		assert.Equal(t, "awsctl", filepath.Base(got))
	}
}

func TestEnabled(t *testing.T) {
	for v, want := range map[string]bool{"": true, "1": true, "true": true, "0": false, "false": false} {
		t.Setenv(EnvEnabled, v)
		assert.Equal(t, want, Enabled(), v)
	}
}

func TestWriteRead(t *testing.T) {
	dir := withCacheDir(t)

	_, ok := Read([]string{"lex"}, "builtins/en-US")
	assert.False(t, ok)

	require.NoError(t, Write([]string{"lex"}, "builtins/en-US", []byte(`["AMAZON.Number"]`)))

	e, ok := Read([]string{"lex"}, "builtins/en-US")
	require.True(t, ok)
	assert.Equal(t, `["AMAZON.Number"]`, string(e.Data))
	assert.Equal(t, "builtins/en-US", e.Key)
	assert.Equal(t, filepath.Join(dir, "lex", encodeKey("builtins/en-US")), e.Path)
	assert.Less(t, e.Age(), time.Minute)

	p, exists := EntryPath([]string{"lex"}, "builtins/en-US")
	assert.True(t, exists)
	assert.Equal(t, e.Path, p)
}

func TestDisabled(t *testing.T) {
	dir := withCacheDir(t)
	t.Setenv(EnvEnabled, "false")

	require.NoError(t, Write(nil, "k", []byte("v")))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, ok := Read(nil, "k")
	assert.False(t, ok)
}

func TestFetch(t *testing.T) {
	withCacheDir(t)

	calls := 0
	fill := func() ([]string, error) {
		calls++
		return []string{"AMAZON.Number", "AMAZON.Date"}, nil
	}

	got, err := Fetch([]string{"lex"}, "k", time.Hour, fill)
	require.NoError(t, err)
	assert.Equal(t, []string{"AMAZON.Number", "AMAZON.Date"}, got)

	got, err = Fetch([]string{"lex"}, "k", time.Hour, fill)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, calls, "second call is served from disk")

	p, _ := EntryPath([]string{"lex"}, "k")
	old := time.Now().Add(-2 * time.Hour)
	require.NoError(t, os.Chtimes(p, old, old))
	_, err = Fetch([]string{"lex"}, "k", time.Hour, fill)
	require.NoError(t, err)
	assert.Equal(t, 2, calls, "stale entry is refilled")
}

func TestFetchErrorNotCached(t *testing.T) {
	withCacheDir(t)

	_, err := Fetch(nil, "k", time.Hour, func() (int, error) { return 0, errors.New("throttled") })
	assert.EqualError(t, err, "throttled")
	_, ok := Read(nil, "k")
	assert.False(t, ok)
}

func TestFetchCorruptEntry(t *testing.T) {
	withCacheDir(t)
	require.NoError(t, Write(nil, "k", []byte("{not json")))

	got, err := Fetch(nil, "k", 0, func() (map[string]int, error) { return map[string]int{"a": 1}, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, got["a"])
}

func TestPurge(t *testing.T) {
	withCacheDir(t)
	require.NoError(t, Write([]string{"a"}, "old", []byte("1")))
	require.NoError(t, Write([]string{"a"}, "new", []byte("2")))

	oldPath, _ := EntryPath([]string{"a"}, "old")
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	require.NoError(t, Purge(0))
	_, ok := EntryPath([]string{"a"}, "old")
	assert.True(t, ok, "zero max age disables purging")

	require.NoError(t, Purge(24*time.Hour))
	_, ok = EntryPath([]string{"a"}, "old")
	assert.False(t, ok)
	_, ok = EntryPath([]string{"a"}, "new")
	assert.True(t, ok)
}

func TestPurgeMissingDir(t *testing.T) {
	t.Setenv(EnvDir, filepath.Join(t.TempDir(), "missing"))
	assert.NoError(t, Purge(time.Hour))
}
