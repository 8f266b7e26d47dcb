// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/awsctl/internal/filters"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/service/ssm"
)

var (
	ssmParamsDefaultAttrs      = []string{"Name", "Type", "Version", "LastModifiedDate:modified:t"}
	ssmPathParamsDefaultAttrs  = []string{"Name", "Type", "Value:value:-48", "Version"}
	ssmCommandsDefaultAttrs    = []string{"CommandId:id", "DocumentName:document", "Status", "RequestedDateTime:requested:t", "ErrorCount:errors"}
	ssmDocsDefaultAttrs        = []string{"Name", "Owner", "DocumentType:type", "DocumentVersion:version", "DocumentFormat:format"}
	ssmAutomationsDefaultAttrs = []string{"AutomationExecutionId:id", "DocumentName:document", "AutomationExecutionStatus:status", "ExecutionStartTime:started:t"}
)

// deleteParametersChunk is the DeleteParameters name limit.
const deleteParametersChunk = 10

func newSSMClient(ctx context.Context, cmd *cli.Command) (*ssm.Client, error) {
	cfg, err := LoadAWSConfig(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return ssm.NewFromConfig(cfg), nil
}

// parameterFilters maps _ server side filters onto ParameterStringFilters.
// = is Equals, ^ BeginsWith and @ Contains; a bare key leaves the option to
// the service.
func parameterFilters(spec string) ([]ssm.ParameterStringFilter, error) {
	var out []ssm.ParameterStringFilter
	for _, f := range filters.ServerSide(spec) {
		psf := ssm.ParameterStringFilter{Key: awsv2.String(f.Key)}
		switch f.Operand {
		case "":
		case "=":
			psf.Option = awsv2.String("Equals")
		case "^":
			psf.Option = awsv2.String("BeginsWith")
		case "@":
			psf.Option = awsv2.String("Contains")
		default:
			return nil, fmt.Errorf("server side filter %q: operator %s is not supported", f.Key, f.Operand)
		}
		if f.Value != "" {
			psf.Values = []string{f.Value}
		}
		out = append(out, psf)
	}
	return out, nil
}

// matchEnum finds the enum value that equals key ignoring case.
func matchEnum[E ~string](key string, values []E) (E, bool) {
	for _, v := range values {
		if strings.EqualFold(string(v), key) {
			return v, true
		}
	}
	return "", false
}

// ssmParamsCommandAction browses Parameter Store. With a path it reads the
// values below it, otherwise it lists parameter metadata.
func ssmParamsCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return ssmPathParams(ctx, cmd, cmd.Args().First())
	}

	fn := func(ctx context.Context, cmd *cli.Command) ([]ssm.ParameterMetadata, error) {
		client, err := newSSMClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		psf, err := parameterFilters(cmd.String("filter"))
		if err != nil {
			return nil, err
		}
		return PaginateTokens(ctx, cmd, &ssm.DescribeParametersInput{ParameterFilters: psf}, "NextToken",
			func(ctx context.Context, in *ssm.DescribeParametersInput) ([]ssm.ParameterMetadata, *string, error) {
				out, err := client.DescribeParameters(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "describe parameters")
				}
				return out.Parameters, out.NextToken, nil
			},
			nil,
		)
	}

	return NewQueryActionRunner(
		"ssm params",
		reflect.TypeOf((*ssm.ParameterMetadata)(nil)).Elem(),
		ssmParamsDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

func ssmPathParams(ctx context.Context, cmd *cli.Command, path string) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]ssm.Parameter, error) {
		client, err := newSSMClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		psf, err := parameterFilters(cmd.String("filter"))
		if err != nil {
			return nil, err
		}
		in := &ssm.GetParametersByPathInput{
			Path:             awsv2.String(path),
			Recursive:        awsv2.Bool(!cmd.Bool("shallow")),
			WithDecryption:   awsv2.Bool(cmd.Bool("decrypt")),
			ParameterFilters: psf,
		}
		return PaginateTokens(ctx, cmd, in, "NextToken",
			func(ctx context.Context, in *ssm.GetParametersByPathInput) ([]ssm.Parameter, *string, error) {
				out, err := client.GetParametersByPath(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "get parameters under "+path)
				}
				return out.Parameters, out.NextToken, nil
			},
			nil,
		)
	}

	qar := NewQueryActionRunner(
		"ssm params",
		reflect.TypeOf((*ssm.Parameter)(nil)).Elem(),
		ssmPathParamsDefaultAttrs,
		fn,
	)
	if cmd.Bool("chop") {
		qar.PostProcess = func(rows []map[string]any) error {
			chopPrefix(rows, "Name", "/")
			return nil
		}
	}
	return qar.Run(ctx, cmd)
}

// ssmGetCommandAction reads one parameter. --value prints only its value,
// the form scripts want.
func ssmGetCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("missing parameter name")
	}
	name := cmd.Args().First()

	getParameter := func(ctx context.Context, cmd *cli.Command) ([]ssm.Parameter, error) {
		client, err := newSSMClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           awsv2.String(name),
			WithDecryption: awsv2.Bool(cmd.Bool("decrypt")),
		})
		if err != nil {
			return nil, Friendly(err, "get parameter "+name)
		}
		if out.Parameter == nil {
			return nil, nil
		}
		return []ssm.Parameter{*out.Parameter}, nil
	}

	if cmd.Bool("value") {
		params, err := getParameter(ctx, cmd)
		if err != nil {
			return err
		}
		for _, p := range params {
			fmt.Fprintln(Stdout(cmd), awsv2.ToString(p.Value))
		}
		return nil
	}

	return NewQueryActionRunner(
		"ssm get",
		reflect.TypeOf((*ssm.Parameter)(nil)).Elem(),
		ssmPathParamsDefaultAttrs,
		getParameter,
	).Run(ctx, cmd)
}

// ssmPutCommandAction writes a parameter. A missing value is read from
// stdin, through a hidden prompt when stdin is a terminal and the value is
// secure.
func ssmPutCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("missing parameter name")
	}
	name := cmd.Args().First()

	typ, err := ssm.ParseParameterType(cmd.String("type"))
	if err != nil {
		return err
	}
	if cmd.Bool("secure") {
		typ = ssm.ParameterTypeSecureString
	}

	value := cmd.Args().Get(1)
	if cmd.Args().Len() < 2 {
		value, err = readValue(cmd, name, typ == ssm.ParameterTypeSecureString)
		if err != nil {
			return err
		}
	}

	in := &ssm.PutParameterInput{
		Name:      awsv2.String(name),
		Value:     awsv2.String(value),
		Type:      typ,
		Overwrite: awsv2.Bool(cmd.Bool("overwrite")),
	}
	if d := cmd.String("description"); d != "" {
		in.Description = awsv2.String(d)
	}
	if k := cmd.String("key-id"); k != "" {
		in.KeyId = awsv2.String(k)
	}
	if t := cmd.String("tier"); t != "" {
		if in.Tier, err = ssm.ParseParameterTier(t); err != nil {
			return err
		}
	}

	client, err := newSSMClient(ctx, cmd)
	if err != nil {
		return err
	}
	out, err := client.PutParameter(ctx, in)
	if err != nil {
		return Friendly(err, "put parameter "+name)
	}

	fmt.Fprintf(Stdout(cmd), "%s version %d (%s)\n", name, awsv2.ToInt64(out.Version), nonEmpty(string(out.Tier), string(ssm.ParameterTierStandard)))
	return nil
}

func readValue(cmd *cli.Command, name string, secure bool) (string, error) {
	in := Stdin(cmd)
	if f, ok := in.(*os.File); ok && secure && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintf(os.Stderr, "Value for %s: ", name)
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("read value: %w", err)
		}
		return string(b), nil
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read value: %w", err)
	}
	value := strings.TrimRight(string(b), "\r\n")
	if value == "" {
		return "", fmt.Errorf("empty value for %s", name)
	}
	return value, nil
}

// ssmRmCommandAction deletes parameters. Names the service does not know
// are reported and fail the command.
func ssmRmCommandAction(ctx context.Context, cmd *cli.Command) error {
	names := cmd.Args().Slice()
	if len(names) == 0 {
		return fmt.Errorf("missing parameter name")
	}

	client, err := newSSMClient(ctx, cmd)
	if err != nil {
		return err
	}
	w := Stdout(cmd)

	if len(names) == 1 {
		if _, err := client.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: awsv2.String(names[0])}); err != nil {
			return Friendly(err, "delete parameter "+names[0])
		}
		fmt.Fprintf(w, "deleted %s\n", names[0])
		return nil
	}

	var invalid []string
	for start := 0; start < len(names); start += deleteParametersChunk {
		end := min(start+deleteParametersChunk, len(names))
		out, err := client.DeleteParameters(ctx, &ssm.DeleteParametersInput{Names: names[start:end]})
		if err != nil {
			return Friendly(err, "delete parameters")
		}
		for _, n := range out.DeletedParameters {
			fmt.Fprintf(w, "deleted %s\n", n)
		}
		invalid = append(invalid, out.InvalidParameters...)
	}
	if len(invalid) > 0 {
		return fmt.Errorf("not found: %s", strings.Join(invalid, ", "))
	}
	return nil
}

func ssmCommandsCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]ssm.Command, error) {
		in := &ssm.ListCommandsInput{}
		if id := cmd.String("instance"); id != "" {
			in.InstanceId = awsv2.String(id)
		}
		for _, f := range filters.ServerSide(cmd.String("filter")) {
			key, ok := matchEnum(f.Key, ssm.CommandFilterKey("").Values())
			if !ok {
				return nil, fmt.Errorf("unknown command filter %q", f.Key)
			}
			in.Filters = append(in.Filters, ssm.CommandFilter{Key: key, Value: awsv2.String(f.Value)})
		}

		client, err := newSSMClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return PaginateTokens(ctx, cmd, in, "NextToken",
			func(ctx context.Context, in *ssm.ListCommandsInput) ([]ssm.Command, *string, error) {
				out, err := client.ListCommands(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "list commands")
				}
				return out.Commands, out.NextToken, nil
			},
			nil,
		)
	}

	return NewQueryActionRunner(
		"ssm commands",
		reflect.TypeOf((*ssm.Command)(nil)).Elem(),
		ssmCommandsDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

// ssmDocsCommandAction lists documents, or with a name writes that document
// drilled into by the optional path.
func ssmDocsCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		name := cmd.Args().First()
		client, err := newSSMClient(ctx, cmd)
		if err != nil {
			return err
		}
		out, err := client.GetDocument(ctx, &ssm.GetDocumentInput{Name: awsv2.String(name)})
		if err != nil {
			return Friendly(err, "get document "+name)
		}
		return EmitDocument(cmd, out, cmd.Args().Get(1))
	}

	fn := func(ctx context.Context, cmd *cli.Command) ([]ssm.DocumentIdentifier, error) {
		in := &ssm.ListDocumentsInput{}
		for _, f := range filters.ServerSide(cmd.String("filter")) {
			in.Filters = append(in.Filters, ssm.DocumentKeyValuesFilter{Key: awsv2.String(f.Key), Values: []string{f.Value}})
		}

		client, err := newSSMClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return PaginateTokens(ctx, cmd, in, "NextToken",
			func(ctx context.Context, in *ssm.ListDocumentsInput) ([]ssm.DocumentIdentifier, *string, error) {
				out, err := client.ListDocuments(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "list documents")
				}
				return out.DocumentIdentifiers, out.NextToken, nil
			},
			nil,
		)
	}

	return NewQueryActionRunner(
		"ssm docs",
		reflect.TypeOf((*ssm.DocumentIdentifier)(nil)).Elem(),
		ssmDocsDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

func ssmAutomationsCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]ssm.AutomationExecutionMetadata, error) {
		in := &ssm.DescribeAutomationExecutionsInput{}
		for _, f := range filters.ServerSide(cmd.String("filter")) {
			key, ok := matchEnum(f.Key, ssm.AutomationExecutionFilterKey("").Values())
			if !ok {
				return nil, fmt.Errorf("unknown automation filter %q", f.Key)
			}
			in.Filters = append(in.Filters, ssm.AutomationExecutionFilter{Key: key, Values: []string{f.Value}})
		}
		log.Debugf("automation filters: %+v", in.Filters)

		client, err := newSSMClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		return PaginateTokens(ctx, cmd, in, "NextToken",
			func(ctx context.Context, in *ssm.DescribeAutomationExecutionsInput) ([]ssm.AutomationExecutionMetadata, *string, error) {
				out, err := client.DescribeAutomationExecutions(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "describe automation executions")
				}
				return out.AutomationExecutionMetadataList, out.NextToken, nil
			},
			nil,
		)
	}

	return NewQueryActionRunner(
		"ssm automations",
		reflect.TypeOf((*ssm.AutomationExecutionMetadata)(nil)).Elem(),
		ssmAutomationsDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

func ssmCommandBuilder(meta meta.Meta) *cli.Command {
	build := func(name, usage, usageText string, action cli.ActionFunc, flags ...cli.Flag) *cli.Command {
		return (&QueryCommandBuilder{
			Name:      name,
			Namespace: "ssm",
			Usage:     usage,
			UsageText: usageText,
			Flags:     flags,
			Action:    action,
			Meta:      meta,
		}).Build()
	}
	decryptFlag := func() cli.Flag {
		return &cli.BoolFlag{
			Name:    "decrypt",
			Aliases: []string{"d"},
			Usage:   "decrypt SecureString values",
		}
	}

	return &cli.Command{
		Name:  "ssm",
		Usage: "Systems Manager",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			build("params", "list parameters, or the values under a path", "awsctl ssm params [options] [PATH]", ssmParamsCommandAction,
				NewLimitFlag(),
				decryptFlag(),
				&cli.BoolFlag{
					Name:  "shallow",
					Usage: "do not descend below PATH",
				},
				&cli.BoolFlag{
					Name:  "chop",
					Usage: "chop the common path prefix from names",
				},
			),
			build("get", "read a parameter", "awsctl ssm get [options] NAME", ssmGetCommandAction,
				decryptFlag(),
				&cli.BoolFlag{
					Name:  "value",
					Usage: "print only the value",
				},
			),
			build("put", "write a parameter", "awsctl ssm put [options] NAME [VALUE]", ssmPutCommandAction,
				&cli.StringFlag{
					Name:  "type",
					Usage: "String, StringList or SecureString",
					Value: string(ssm.ParameterTypeString),
				},
				&cli.BoolFlag{
					Name:  "secure",
					Usage: "store as SecureString, prompting for the value",
				},
				&cli.BoolFlag{
					Name:  "overwrite",
					Usage: "replace an existing value",
				},
				&cli.StringFlag{
					Name:  "description",
					Usage: "parameter description",
				},
				&cli.StringFlag{
					Name:  "key-id",
					Usage: "KMS key for SecureString values",
				},
				&cli.StringFlag{
					Name:  "tier",
					Usage: "Standard, Advanced or Intelligent-Tiering",
				},
			),
			build("rm", "delete parameters", "awsctl ssm rm [options] NAME...", ssmRmCommandAction),
			build("commands", "list Run Command invocations", "awsctl ssm commands [options]", ssmCommandsCommandAction,
				NewLimitFlag(),
				&cli.StringFlag{
					Name:  "instance",
					Usage: "only commands sent to this instance",
				},
			),
			build("docs", "list documents, or show one", "awsctl ssm docs [options] [NAME [PATH]]", ssmDocsCommandAction, NewLimitFlag()),
			build("automations", "list automation executions", "awsctl ssm automations [options]", ssmAutomationsCommandAction, NewLimitFlag()),
		},
	}
}
