// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"reflect"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/awsctl/internal/attrs"
	"github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/driller"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/internal/output"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults ...string) (al attrs.AttrList) {
	//nolint:errcheck
	{
		for _, d := range defaults {
			al.Set(d)
		}
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// DumpSchemaIfRequested writes the attribute paths of t when --schema is set,
// and returns true if it handled the request.
func DumpSchemaIfRequested(cmd *cli.Command, t reflect.Type) bool {
	if cmd.Bool("schema") {
		output.DumpSchema(t, Stdout(cmd))
		return true
	}
	return false
}

// EmitJSONSlice marshals results and passes them to the common output
// routine.
func EmitJSONSlice(results any, al attrs.AttrList, cmd *cli.Command, postProcess func([]map[string]any) error) error {
	raw, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	return output.SliceDiceSpit(raw, al, output.OptionsFromCommand(cmd), "", Stdout(cmd), postProcess)
}

// GetMeta returns the meta.Meta stored in the command's Metadata, looking
// through parents. If missing it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil {
		return meta.Meta{}
	}
	for _, c := range cmd.Lineage() {
		if m, ok := c.Metadata["meta"].(meta.Meta); ok {
			return m
		}
	}
	return meta.Meta{}
}

// Stdout is the writer command output goes to.
func Stdout(cmd *cli.Command) io.Writer {
	if cmd != nil {
		if w := cmd.Root().Writer; w != nil {
			return w
		}
	}
	return os.Stdout
}

// Stdin is the reader commands take records and values from.
func Stdin(cmd *cli.Command) io.Reader {
	if cmd != nil {
		if r := cmd.Root().Reader; r != nil {
			return r
		}
	}
	return os.Stdin
}

// LoadAWSConfig resolves the AWS config from --profile, --region and
// --endpoint on top of the default chain.
func LoadAWSConfig(ctx context.Context, cmd *cli.Command) (awsv2.Config, error) {
	var opts []aws.Option
	if p := cmd.String("profile"); p != "" {
		opts = append(opts, aws.WithProfile(p))
	}
	if r := cmd.String("region"); r != "" {
		opts = append(opts, aws.WithRegion(r))
	}
	if e := cmd.String("endpoint"); e != "" {
		opts = append(opts, aws.WithEndpoint(e))
	}

	cfg, err := aws.LoadAWSConfig(ctx, opts...)
	if err != nil {
		return cfg, Friendly(err, "load config")
	}
	return cfg, nil
}

// PaginateTokens drives a token paginated list call. tokenField names the
// input field that carries the continuation token; fetcher returns one page
// and the token for the next, nil when done. The augmenter, if given, runs
// before each call. Collection stops at --limit results when it is set.
func PaginateTokens[T, I any](
	ctx context.Context,
	cmd *cli.Command,
	input *I,
	tokenField string,
	fetcher func(context.Context, *I) ([]T, *string, error),
	augmenter Augmenter[I],
) ([]T, error) {
	var results []T
	limit := cmd.Int("limit")

	for page := 1; ; page++ {
		if augmenter != nil {
			if err := augmenter(ctx, cmd, input); err != nil {
				return nil, err
			}
		}

		items, next, err := fetcher(ctx, input)
		if err != nil {
			return nil, err
		}
		results = append(results, items...)
		log.Debugf("page %d: items=%d total=%d", page, len(items), len(results))

		if limit > 0 && len(results) >= limit {
			return results[:limit], nil
		}
		if next == nil || *next == "" {
			break
		}
		if !setField(input, tokenField, next) {
			return nil, fmt.Errorf("%T has no %s field", input, tokenField)
		}
	}

	return results, nil
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr awsctl <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "awsctl", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}

// setField uses reflection to assign value to the named field of the struct
// options points at. It reports whether the field exists and accepts value.
func setField(options any, name string, value any) bool {
	v := reflect.ValueOf(options)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return false
	}
	f := v.Elem().FieldByName(name)
	val := reflect.ValueOf(value)
	if !f.IsValid() || !f.CanSet() || !val.Type().AssignableTo(f.Type()) {
		return false
	}
	f.Set(val)
	return true
}

// EmitDocument writes one document, optionally drilled into by path, as
// indented JSON or, with --output yaml, as YAML.
func EmitDocument(cmd *cli.Command, doc any, path string) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	res := driller.Driller(string(raw), path)
	if !res.Exists() {
		return fmt.Errorf("path %q not found", path)
	}

	w := Stdout(cmd)
	switch cmd.String("output") {
	case "yaml":
		var v any
		if err := json.Unmarshal([]byte(res.Raw), &v); err != nil {
			return fmt.Errorf("yaml output: %w", err)
		}
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("yaml output: %w", err)
		}
		_, err = w.Write(b)
		return err
	case "raw":
		_, err = fmt.Fprintln(w, res.String())
		return err
	default:
		_, err = fmt.Fprintln(w, gjson.Get(res.Raw, "@pretty").String())
		return err
	}
}
