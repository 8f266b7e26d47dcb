// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsctl/internal/command"
)

func TestCollectAndRender(t *testing.T) {
	t.Setenv("AWSCTL_CFG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	app, err := command.InitApp(context.Background(), []string{"awsctl"})
	require.NoError(t, err)

	examples := map[string][]Example{
		"ssm params": {{Command: "awsctl ssm params --chop /app/prod", Description: "Show the values under a path"}},
	}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	pages := collect(app, examples, now, "1.2.3")

	byID := map[string]Page{}
	for _, p := range pages {
		byID[p.ID] = p
	}
	for _, id := range []string{"fh-ls", "fh-put", "fh-peek", "lex-bots", "lex-diff", "ssm-params", "ssm-put", "ssm-rm"} {
		assert.Contains(t, byID, id)
	}
	assert.NotContains(t, byID, "completion-completion")

	params := byID["ssm-params"]
	var names []string
	for _, f := range params.Flags {
		names = append(names, f.Names[0])
		assert.NotEqual(t, "padding", f.Names[0], "hidden flags stay out of the docs")
	}
	assert.Contains(t, names, "chop")
	assert.Contains(t, names, "region")

	var md bytes.Buffer
	require.NoError(t, render(&md, markdownTemplate, params))
	assert.Contains(t, md.String(), "# awsctl ssm params")
	assert.Contains(t, md.String(), "`--output, -o`")
	assert.Contains(t, md.String(), "_1.2.3, March 1, 2026_")

	var tldr bytes.Buffer
	require.NoError(t, render(&tldr, tldrTemplate, params))
	assert.Contains(t, tldr.String(), "- Show the values under a path:")
	assert.Contains(t, tldr.String(), "`awsctl ssm params --chop /app/prod`")
}

func TestRun(t *testing.T) {
	t.Setenv("AWSCTL_CFG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	docs := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(docs, "examples.yaml"),
		[]byte("fh put:\n  - command: awsctl fh put clicks < events.ndjson\n    description: Send a file of events\n"), 0o600))

	require.NoError(t, run(docs))

	b, err := os.ReadFile(filepath.Join(docs, "tldr", "awsctl-fh-put.md"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Send a file of events")
	assert.FileExists(t, filepath.Join(docs, "commands", "lex-builtins.md"))
}
