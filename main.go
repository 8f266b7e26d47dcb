// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/cacheutil"
	"github.com/tfctl/awsctl/internal/command"
	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/version"
)

// defaultCacheClean is how old a cache entry gets before it is purged when
// cache.clean is not configured.
const defaultCacheClean = 7 * 24 * time.Hour

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles config set expansion and flag deduplication.
func processCommandArgs(ctx context.Context, args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		return args
	}

	args = processSets(args)
	log.Debugf("args after set processing: args=%v", args)

	var valueless map[string]bool
	if app, err := command.InitApp(ctx, args); err == nil {
		valueless = valuelessFlags(app, args)
	}
	return deduplicateFlags(args, valueless)
}

// processSets expands an explicit @set argument from the <group>.<set>
// config entry, in place. Without one, <group>.defaults is injected right
// after the subcommand.
func processSets(args []string) []string {
	if len(args) < 3 {
		return args
	}

	for i := 2; i < len(args); i++ {
		if strings.HasPrefix(args[i], "@") && len(args[i]) > 1 {
			set := args[i][1:]
			args = append(args[:i:i], args[i+1:]...)
			return injectConfigSet(args, args[1]+"."+set, i)
		}
	}

	if strings.HasPrefix(args[2], "-") {
		return args
	}
	return injectConfigSet(args, args[1]+".defaults", 3)
}

// injectConfigSet inserts the entries of the config list at key into args
// at insertIdx. Multi-word entries are split on whitespace.
func injectConfigSet(args []string, key string, insertIdx int) []string {
	entries, err := config.GetStringSlice(key)
	if err != nil {
		return args
	}
	return insertEntries(args, entries, insertIdx)
}

func insertEntries(args, entries []string, insertIdx int) []string {
	var expanded []string
	for _, e := range entries {
		expanded = append(expanded, strings.Fields(e)...)
	}
	if len(expanded) == 0 {
		return args
	}
	insertIdx = min(insertIdx, len(args))

	out := make([]string, 0, len(args)+len(expanded))
	out = append(out, args[:insertIdx]...)
	out = append(out, expanded...)
	return append(out, args[insertIdx:]...)
}

// valuelessFlags returns the names of the flags that take no value on the
// command selected by args and on each of its parents.
func valuelessFlags(app *cli.Command, args []string) map[string]bool {
	names := map[string]bool{}
	add := func(cmd *cli.Command) {
		for _, f := range cmd.Flags {
			if tv, ok := f.(interface{ TakesValue() bool }); ok && !tv.TakesValue() {
				for _, n := range f.Names() {
					names[n] = true
				}
			}
		}
	}

	cmd := app
	add(cmd)
	for _, a := range args[min(1, len(args)):] {
		if sub := cmd.Command(a); sub != nil {
			cmd = sub
			add(cmd)
		}
	}
	return names
}

// deduplicateFlags keeps only the last occurrence of each flag after the
// command words, so a flag on the command line overrides one injected from
// a config set. A flag named in valueless never takes a value. Any other
// flag without = takes the following argument as its value unless that
// argument is itself a flag.
func deduplicateFlags(args []string, valueless map[string]bool) []string {
	if len(args) <= 2 {
		return args
	}

	type group struct {
		name  string
		words []string
	}

	var groups []group
	rest := args[2:]
	for i := 0; i < len(rest); i++ {
		a := rest[i]
		if !strings.HasPrefix(a, "-") || a == "-" {
			groups = append(groups, group{words: []string{a}})
			continue
		}
		if a == "--" {
			groups = append(groups, group{words: rest[i:]})
			break
		}

		name, _, hasValue := strings.Cut(a, "=")
		g := group{name: name, words: []string{a}}
		if !hasValue && !valueless[strings.TrimLeft(name, "-")] &&
			i+1 < len(rest) && !strings.HasPrefix(rest[i+1], "-") {
			g.words = append(g.words, rest[i+1])
			i++
		}
		groups = append(groups, g)
	}

	last := map[string]int{}
	for i, g := range groups {
		if g.name != "" {
			last[g.name] = i
		}
	}

	out := append([]string{}, args[:2]...)
	for i, g := range groups {
		if g.name != "" && last[g.name] != i {
			continue
		}
		out = append(out, g.words...)
	}
	return out
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(ctx context.Context, args []string) int {
	if cacheutil.Enabled() {
		clean, _ := config.GetDuration("cache.clean", defaultCacheClean)
		if err := cacheutil.Purge(clean); err != nil {
			log.Debugf("cache purge err: err=%v", err)
		}
	}

	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(ctx, args)
	}

	return initAndRunApp(ctx, args)
}
