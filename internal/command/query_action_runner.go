// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"reflect"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/config"
	"github.com/tfctl/awsctl/internal/log"
)

// QueryActionRunner[T] encapsulates the common action pattern of the list
// subcommands. It handles the short-circuit checks, attribute building and
// output emission, with data fetching provided by FetchFn.
type QueryActionRunner[T any] struct {
	CommandName  string
	SchemaType   reflect.Type
	DefaultAttrs []string
	FetchFn      func(context.Context, *cli.Command) ([]T, error)
	// PostProcess, if set, sees the final rows of text output.
	PostProcess func([]map[string]any) error
}

// Run executes the query action with the provided context and command.
func (qar *QueryActionRunner[T]) Run(
	ctx context.Context,
	cmd *cli.Command,
) error {
	m := GetMeta(cmd)
	log.Debugf("executing action: cmd=%s args=%v", qar.CommandName, m.Args)

	if ShortCircuitTLDR(ctx, cmd, qar.CommandName) {
		return nil
	}
	if DumpSchemaIfRequested(cmd, qar.SchemaType) {
		return nil
	}

	// A <ns>.<cmd>.attrs config entry replaces the built in defaults.
	defaults := qar.DefaultAttrs
	if cfgAttrs, err := config.GetStringSlice(cmd.Name + ".attrs"); err == nil && len(cfgAttrs) > 0 {
		defaults = cfgAttrs
	}
	attrs := BuildAttrs(cmd, defaults...)
	log.Debugf("attrs: %v", attrs.String())

	results, err := qar.FetchFn(ctx, cmd)
	if err != nil {
		return err
	}

	return EmitJSONSlice(results, attrs, cmd, qar.PostProcess)
}

// NewQueryActionRunner creates a QueryActionRunner with the provided
// configuration.
func NewQueryActionRunner[T any](
	commandName string,
	schemaType reflect.Type,
	defaultAttrs []string,
	fetchFn func(context.Context, *cli.Command) ([]T, error),
) *QueryActionRunner[T] {
	return &QueryActionRunner[T]{
		CommandName:  commandName,
		SchemaType:   schemaType,
		DefaultAttrs: defaultAttrs,
		FetchFn:      fetchFn,
	}
}
