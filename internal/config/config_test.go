// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
region: eu-west-1
output: json
cache:
  clean: 24
  ttl: 90m
  enabled: true
lex:
  region: us-east-1
  attrs:
    - name
    - status
ssm:
  params:
    attrs: name,type
big: 3000000000
ratio: 1.5
`

func withConfig(t *testing.T, body string) {
	t.Helper()
	file := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(file, []byte(body), 0o600))
	t.Setenv(EnvFile, file)
	Config = Type{}
	t.Cleanup(func() { Config = Type{} })
}

func TestLoad(t *testing.T) {
	withConfig(t, testYAML)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, os.Getenv(EnvFile), cfg.Source)
	assert.Equal(t, "eu-west-1", cfg.Data["region"])
	assert.Equal(t, cfg, Config)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing env file", func(t *testing.T) {
		t.Setenv(EnvFile, filepath.Join(t.TempDir(), "nope.yaml"))
		_, err := Load()
		assert.ErrorContains(t, err, EnvFile)
	})

	t.Run("env points at directory", func(t *testing.T) {
		t.Setenv(EnvFile, t.TempDir())
		_, err := Load()
		assert.ErrorContains(t, err, "directory")
	})

	t.Run("bad yaml", func(t *testing.T) {
		withConfig(t, "region: [unterminated")
		_, err := Load()
		assert.ErrorContains(t, err, "parse")
	})
}

func TestGetString(t *testing.T) {
	withConfig(t, testYAML)

	tests := []struct {
		name      string
		namespace string
		key       string
		def       []string
		want      string
		wantErr   bool
	}{
		{"top level", "", "region", nil, "eu-west-1", false},
		{"nested", "", "cache.ttl", nil, "90m", false},
		{"namespace wins", "lex", "region", nil, "us-east-1", false},
		{"namespace falls back", "lex", "output", nil, "json", false},
		{"dotted namespace", "ssm.params", "attrs", nil, "name,type", false},
		{"number as string", "", "cache.clean", nil, "24", false},
		{"missing with default", "", "nope", []string{"dflt"}, "dflt", false},
		{"missing", "", "nope", nil, "", true},
		{"not a string", "", "cache", nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			SetNamespace(tt.namespace)
			got, err := GetString(tt.key, tt.def...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetIntAndBool(t *testing.T) {
	withConfig(t, testYAML)

	n, err := GetInt("cache.clean")
	require.NoError(t, err)
	assert.Equal(t, 24, n)

	n, err = GetInt("big")
	require.NoError(t, err)
	assert.Equal(t, 3000000000, n)

	n, err = GetInt("ratio")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = GetInt("nope", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = GetInt("region")
	assert.Error(t, err)

	b, err := GetBool("cache.enabled")
	require.NoError(t, err)
	assert.True(t, b)

	_, err = GetBool("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestGetDuration(t *testing.T) {
	withConfig(t, testYAML)

	d, err := GetDuration("cache.clean")
	require.NoError(t, err)
	assert.Equal(t, 24*time.Hour, d)

	d, err = GetDuration("cache.ttl")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	d, err = GetDuration("ratio")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	d, err = GetDuration("nope", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, testYAML)

	SetNamespace("lex")
	got, err := GetStringSlice("attrs")
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "status"}, got)

	got, err = GetStringSlice("region")
	require.NoError(t, err)
	assert.Equal(t, []string{"us-east-1"}, got)

	got, err = GetStringSlice("nope", []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)

	_, err = GetStringSlice("cache")
	assert.Error(t, err)
}

func TestLazyLoad(t *testing.T) {
	withConfig(t, testYAML)
	require.Nil(t, Config.Data)

	got, err := GetString("region")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", got)
	assert.NotEmpty(t, Config.Source)
}
