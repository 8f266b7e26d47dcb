// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/filters"
	"github.com/tfctl/awsctl/internal/log"
)

// Augmenter[T] is a callback function that customizes an input before
// each API call. It receives the context, command, and a pointer to the
// input, allowing mutation based on command flags or other context. Return
// an error to abort pagination.
type Augmenter[T any] func(
	context.Context,
	*cli.Command,
	*T,
) error

// NameContainsAugmenter copies a _name server side filter into the
// NameContains field that the Lex list inputs share.
func NameContainsAugmenter[T any](_ context.Context, cmd *cli.Command, in *T) error {
	for _, f := range filters.ServerSide(cmd.String("filter")) {
		if f.Key == "name" && f.Value != "" {
			setField(in, "NameContains", aws.String(f.Value))
		}
	}
	log.Debugf("input after augmentation: %+v", in)
	return nil
}
