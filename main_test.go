// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsctl/internal/command"
	"github.com/tfctl/awsctl/internal/config"
)

func TestDeduplicateFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "empty args",
			args:     []string{},
			expected: []string{},
		},
		{
			name:     "only program and group",
			args:     []string{"awsctl", "ssm"},
			expected: []string{"awsctl", "ssm"},
		},
		{
			name:     "no duplicates",
			args:     []string{"awsctl", "ssm", "params", "--output", "text", "--titles"},
			expected: []string{"awsctl", "ssm", "params", "--output", "text", "--titles"},
		},
		{
			name:     "duplicate flag with value - last wins",
			args:     []string{"awsctl", "ssm", "params", "--output", "json", "--titles", "--output", "text"},
			expected: []string{"awsctl", "ssm", "params", "--titles", "--output", "text"},
		},
		{
			name:     "duplicate flag with equals syntax",
			args:     []string{"awsctl", "fh", "ls", "--region=us-east-1", "--titles", "--region=eu-west-1"},
			expected: []string{"awsctl", "fh", "ls", "--titles", "--region=eu-west-1"},
		},
		{
			name:     "mixed equals and space syntax",
			args:     []string{"awsctl", "fh", "ls", "--output=json", "--output", "text"},
			expected: []string{"awsctl", "fh", "ls", "--output", "text"},
		},
		{
			name:     "positional args preserved",
			args:     []string{"awsctl", "ssm", "params", "--output", "json", "/app/prod", "--output", "text"},
			expected: []string{"awsctl", "ssm", "params", "/app/prod", "--output", "text"},
		},
		{
			name:     "short flags deduplicated",
			args:     []string{"awsctl", "lex", "bots", "-o", "json", "-o", "text"},
			expected: []string{"awsctl", "lex", "bots", "-o", "text"},
		},
		{
			name:     "different flags not affected",
			args:     []string{"awsctl", "lex", "bots", "--color", "--titles"},
			expected: []string{"awsctl", "lex", "bots", "--color", "--titles"},
		},
		{
			name:     "triple duplicate",
			args:     []string{"awsctl", "ssm", "params", "--limit", "1", "--limit", "2", "--limit", "3"},
			expected: []string{"awsctl", "ssm", "params", "--limit", "3"},
		},
		{
			name:     "everything after -- is kept",
			args:     []string{"awsctl", "fh", "put", "clicks", "--", "-o", "-o"},
			expected: []string{"awsctl", "fh", "put", "clicks", "--", "-o", "-o"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args, nil))
		})
	}
}

func TestDeduplicateFlagsValueless(t *testing.T) {
	valueless := map[string]bool{"decrypt": true, "d": true, "no-newline": true}
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "bool flag keeps the following positional",
			args:     []string{"awsctl", "ssm", "params", "--decrypt", "/app", "--decrypt"},
			expected: []string{"awsctl", "ssm", "params", "/app", "--decrypt"},
		},
		{
			name:     "short bool flag",
			args:     []string{"awsctl", "ssm", "get", "-d", "/app/db", "-d"},
			expected: []string{"awsctl", "ssm", "get", "/app/db", "-d"},
		},
		{
			name:     "records survive a repeated bool flag",
			args:     []string{"awsctl", "fh", "put", "--no-newline", "clicks", "{}", "--no-newline"},
			expected: []string{"awsctl", "fh", "put", "clicks", "{}", "--no-newline"},
		},
		{
			name:     "value flags still pair with their value",
			args:     []string{"awsctl", "ssm", "params", "--decrypt", "--output", "json", "/app", "--output", "text"},
			expected: []string{"awsctl", "ssm", "params", "--decrypt", "/app", "--output", "text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, deduplicateFlags(tt.args, valueless))
		})
	}
}

func TestInsertEntries(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		entries   []string
		insertIdx int
		expected  []string
	}{
		{
			name:      "no entries",
			args:      []string{"awsctl", "ssm", "params"},
			insertIdx: 3,
			expected:  []string{"awsctl", "ssm", "params"},
		},
		{
			name:      "multi-word entry split",
			args:      []string{"awsctl", "ssm", "params", "/app"},
			entries:   []string{"--output json", "--titles"},
			insertIdx: 3,
			expected:  []string{"awsctl", "ssm", "params", "--output", "json", "--titles", "/app"},
		},
		{
			name:      "index past the end appends",
			args:      []string{"awsctl", "ssm"},
			entries:   []string{"params"},
			insertIdx: 5,
			expected:  []string{"awsctl", "ssm", "params"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, insertEntries(tt.args, tt.entries, tt.insertIdx))
		})
	}
}

func TestProcessSets(t *testing.T) {
	file := filepath.Join(t.TempDir(), "awsctl.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`
ssm:
  defaults:
    - --region us-west-2
  prod:
    - --profile prod --decrypt
`), 0o600))
	_, err := config.Load(file)
	require.NoError(t, err)
	t.Cleanup(func() { config.Config = config.Type{} })

	got := processSets([]string{"awsctl", "ssm", "params", "@prod", "/app"})
	assert.Equal(t, []string{"awsctl", "ssm", "params", "--profile", "prod", "--decrypt", "/app"}, got)

	got = processSets([]string{"awsctl", "ssm", "params", "/app"})
	assert.Equal(t, []string{"awsctl", "ssm", "params", "--region", "us-west-2", "/app"}, got)

	got = processSets([]string{"awsctl", "ssm", "params", "@missing"})
	assert.Equal(t, []string{"awsctl", "ssm", "params"}, got)

	got = processSets([]string{"awsctl", "fh", "ls"})
	assert.Equal(t, []string{"awsctl", "fh", "ls"}, got)
}

func TestProcessCommandArgsCommandLineWins(t *testing.T) {
	file := filepath.Join(t.TempDir(), "awsctl.yaml")
	require.NoError(t, os.WriteFile(file, []byte("lex:\n  defaults: [\"--output json\"]\n"), 0o600))
	t.Setenv(config.EnvFile, file)
	_, err := config.Load()
	require.NoError(t, err)
	t.Cleanup(func() { config.Config = config.Type{} })

	got := processCommandArgs(context.Background(), []string{"awsctl", "lex", "bots", "--output", "yaml"})
	assert.Equal(t, []string{"awsctl", "lex", "bots", "--output", "yaml"}, got)

	got = processCommandArgs(context.Background(), []string{"awsctl", "completion", "@x"})
	assert.Equal(t, []string{"awsctl", "completion", "@x"}, got)
}

func TestProcessCommandArgsKeepsPositionals(t *testing.T) {
	file := filepath.Join(t.TempDir(), "awsctl.yaml")
	require.NoError(t, os.WriteFile(file, []byte("ssm:\n  defaults: [\"--decrypt\"]\n"), 0o600))
	t.Setenv(config.EnvFile, file)
	_, err := config.Load()
	require.NoError(t, err)
	t.Cleanup(func() { config.Config = config.Type{} })

	got := processCommandArgs(context.Background(), []string{"awsctl", "ssm", "params", "/app", "--decrypt"})
	assert.Equal(t, []string{"awsctl", "ssm", "params", "/app", "--decrypt"}, got)
}

func TestValuelessFlags(t *testing.T) {
	t.Setenv(config.EnvFile, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Cleanup(func() { config.Config = config.Type{} })

	args := []string{"awsctl", "ssm", "params", "/app"}
	app, err := command.InitApp(context.Background(), args)
	require.NoError(t, err)

	got := valuelessFlags(app, args)
	assert.True(t, got["decrypt"])
	assert.True(t, got["d"])
	assert.True(t, got["chop"])
	assert.True(t, got["version"])
	assert.False(t, got["output"])
	assert.False(t, got["limit"])
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"awsctl", "--help"}, handleNakedCommand([]string{"awsctl"}))
	assert.Equal(t, []string{"awsctl", "ssm"}, handleNakedCommand([]string{"awsctl", "ssm"}))
}
