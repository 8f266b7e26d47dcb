// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/filters"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator rejects flag combinations no command can honor.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.String("output") != "text" && c.Bool("titles") {
		return fmt.Errorf("--titles only applies to text output")
	}
	for _, f := range filters.BuildFilters(c.String("filter")) {
		if f.ServerSide && f.Negate {
			return fmt.Errorf("server side filter %q cannot be negated", f.Key)
		}
	}
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "raw", "yaml"}
	if s, ok := value.(string); !ok || !slices.Contains(validOutputFlagValues, s) {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

func NonNegativeValidator(value any) error {
	if n, ok := value.(int); !ok || n < 0 {
		return fmt.Errorf("must be zero or greater")
	}
	return nil
}
