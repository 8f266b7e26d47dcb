// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/meta"
)

// QueryCommandBuilder constructs a cli.Command for a service subcommand using
// a consistent pattern. The builder wires metadata, adds the AWS, tldr,
// schema and output flags, and sets up validators. Namespace is the service
// group (fh, lex, ssm) whose config file entries feed the AWS flags.
type QueryCommandBuilder struct {
	Name      string
	Namespace string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	flags := append([]cli.Flag{}, qcb.Flags...)
	flags = append(flags, NewAWSFlags(qcb.Namespace, qcb.Meta.Config.Source)...)
	flags = append(flags, tldrFlag, schemaFlag)
	flags = append(flags, NewGlobalFlags(qcb.Name)...)

	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}
