// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var (
	schemaFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "schema",
		Usage:       "dump the schema",
		HideDefault: true,
	}

	tldrFlag *cli.BoolFlag = &cli.BoolFlag{
		Name:        "tldr",
		Usage:       "show tldr page",
		Hidden:      !pathHas("tldr"),
		HideDefault: true,
	}
)

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show local timestamps",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:   "padding",
			Usage:  "cell padding for text output",
			Hidden: true,
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewAWSFlags constructs the --profile, --region and --endpoint flags. When
// params carries a command namespace and a config file, the flags also read
// <ns>.<flag> and <flag> from that file.
func NewAWSFlags(params ...string) []cli.Flag {
	profile := &cli.StringFlag{
		Name:  "profile",
		Usage: "shared config profile",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSCTL_PROFILE"),
			cli.EnvVar("AWS_PROFILE"),
		),
	}
	region := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region. Overrides the profile",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSCTL_REGION"),
			cli.EnvVar("AWS_REGION"),
		),
	}
	endpoint := &cli.StringFlag{
		Name:  "endpoint",
		Usage: "base endpoint URL, for emulators and private endpoints",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWSCTL_ENDPOINT"),
		),
	}

	if len(params) == 2 && params[1] != "" {
		for _, f := range []*cli.StringFlag{profile, region, endpoint} {
			NameSpacedValueChainFlagFromConfigFile(params[0], params[1], f)
		}
	}

	return []cli.Flag{profile, region, endpoint}
}

// NewLimitFlag constructs the --limit flag of list commands. Zero means no
// limit.
func NewLimitFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:  "limit",
		Usage: "maximum number of results",
		Validator: func(value int) error {
			return FlagValidators(value, NonNegativeValidator)
		},
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas reports whether target is an executable on PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
