// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bufio"
	"context"
	"fmt"
	"reflect"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/awsctl/internal/aws"
	"github.com/tfctl/awsctl/internal/filters"
	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/meta"
	"github.com/tfctl/awsctl/service/firehose"
)

var fhLsDefaultAttrs = []string{
	"DeliveryStreamName:name",
	"DeliveryStreamStatus:status",
	"DeliveryStreamType:type",
	"CreateTimestamp:created:t",
}

var fhPeekDefaultAttrs = []string{"key", "bytes", "lastModified:modified:t"}

// s3Object is one row of fh peek.
type s3Object struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	Bytes        string    `json:"bytes"`
	LastModified time.Time `json:"lastModified"`
	StorageClass string    `json:"storageClass,omitempty"`
}

func newFirehoseClient(ctx context.Context, cmd *cli.Command) (*firehose.Client, awsv2.Config, error) {
	cfg, err := LoadAWSConfig(ctx, cmd)
	if err != nil {
		return nil, cfg, err
	}
	return firehose.NewFromConfig(cfg), cfg, nil
}

// fhLsCommandAction lists delivery streams and describes each one.
func fhLsCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]firehose.DeliveryStreamDescription, error) {
		client, _, err := newFirehoseClient(ctx, cmd)
		if err != nil {
			return nil, err
		}

		names, err := PaginateTokens(ctx, cmd, &firehose.ListDeliveryStreamsInput{},
			"ExclusiveStartDeliveryStreamName",
			func(ctx context.Context, in *firehose.ListDeliveryStreamsInput) ([]string, *string, error) {
				out, err := client.ListDeliveryStreams(ctx, in)
				if err != nil {
					return nil, nil, Friendly(err, "list delivery streams")
				}
				var next *string
				if awsv2.ToBool(out.HasMoreDeliveryStreams) && len(out.DeliveryStreamNames) > 0 {
					next = awsv2.String(out.DeliveryStreamNames[len(out.DeliveryStreamNames)-1])
				}
				return out.DeliveryStreamNames, next, nil
			},
			fhTypeAugmenter,
		)
		if err != nil {
			return nil, err
		}

		streams := make([]firehose.DeliveryStreamDescription, 0, len(names))
		for _, name := range names {
			d, err := describeStream(ctx, client, name)
			if err != nil {
				return nil, err
			}
			streams = append(streams, *d)
		}
		return streams, nil
	}

	return NewQueryActionRunner(
		"fh ls",
		reflect.TypeOf((*firehose.DeliveryStreamDescription)(nil)).Elem(),
		fhLsDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

// fhTypeAugmenter maps a _type server side filter onto DeliveryStreamType.
func fhTypeAugmenter(_ context.Context, cmd *cli.Command, in *firehose.ListDeliveryStreamsInput) error {
	for _, f := range filters.ServerSide(cmd.String("filter")) {
		if f.Key != "type" {
			continue
		}
		t, err := firehose.ParseDeliveryStreamType(f.Value)
		if err != nil {
			return err
		}
		in.DeliveryStreamType = t
	}
	return nil
}

func describeStream(ctx context.Context, client *firehose.Client, name string) (*firehose.DeliveryStreamDescription, error) {
	out, err := client.DescribeDeliveryStream(ctx, &firehose.DescribeDeliveryStreamInput{
		DeliveryStreamName: awsv2.String(name),
	})
	if err != nil {
		return nil, Friendly(err, "describe delivery stream "+name)
	}
	if out.DeliveryStreamDescription == nil {
		return nil, fmt.Errorf("describe delivery stream %s: empty response", name)
	}
	return out.DeliveryStreamDescription, nil
}

// fhDescribeCommandAction writes one stream description, optionally drilled
// into by the second argument.
func fhDescribeCommandAction(ctx context.Context, cmd *cli.Command) error {
	if ShortCircuitTLDR(ctx, cmd, "fh describe") {
		return nil
	}
	if DumpSchemaIfRequested(cmd, reflect.TypeOf((*firehose.DeliveryStreamDescription)(nil)).Elem()) {
		return nil
	}
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("missing delivery stream name")
	}

	client, _, err := newFirehoseClient(ctx, cmd)
	if err != nil {
		return err
	}
	d, err := describeStream(ctx, client, cmd.Args().First())
	if err != nil {
		return err
	}
	return EmitDocument(cmd, d, cmd.Args().Get(1))
}

// fhPutCommandAction sends the remaining arguments, or stdin line by line,
// as records. Rejected records are counted and reported, never resent.
func fhPutCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 {
		return fmt.Errorf("missing delivery stream name")
	}
	name := cmd.Args().First()

	var lines []string
	if cmd.Args().Len() > 1 {
		lines = cmd.Args().Tail()
	} else {
		sc := bufio.NewScanner(Stdin(cmd))
		sc.Buffer(make([]byte, 64*1024), firehose.MaxRecordBytes)
		for sc.Scan() {
			if sc.Text() != "" {
				lines = append(lines, sc.Text())
			}
		}
		if err := sc.Err(); err != nil {
			return fmt.Errorf("read records: %w", err)
		}
	}
	if len(lines) == 0 {
		return fmt.Errorf("no records to put")
	}

	records := make([]firehose.Record, 0, len(lines))
	for _, l := range lines {
		if !cmd.Bool("no-newline") {
			l += "\n"
		}
		records = append(records, firehose.Record{Data: []byte(l)})
	}

	client, _, err := newFirehoseClient(ctx, cmd)
	if err != nil {
		return err
	}

	failed := 0
	for i, batch := range firehose.Batches(records) {
		in := &firehose.PutRecordBatchInput{DeliveryStreamName: awsv2.String(name), Records: batch}
		out, err := client.PutRecordBatch(ctx, in)
		if err != nil {
			return Friendly(err, fmt.Sprintf("put batch %d to %s", i+1, name))
		}
		for _, r := range out.RequestResponses {
			if r.ErrorCode != nil {
				log.Debugf("record rejected: code=%s msg=%s", awsv2.ToString(r.ErrorCode), awsv2.ToString(r.ErrorMessage))
			}
		}
		failed += len(firehose.FailedRecords(in, out))
	}

	fmt.Fprintf(Stdout(cmd), "put %d records to %s, %d failed\n", len(records), name, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d records failed", failed, len(records))
	}
	return nil
}

// fhPeekCommandAction lists the newest objects the stream delivered to its
// S3 destination.
func fhPeekCommandAction(ctx context.Context, cmd *cli.Command) error {
	fn := func(ctx context.Context, cmd *cli.Command) ([]s3Object, error) {
		if cmd.Args().Len() < 1 {
			return nil, fmt.Errorf("missing delivery stream name")
		}
		name := cmd.Args().First()

		client, cfg, err := newFirehoseClient(ctx, cmd)
		if err != nil {
			return nil, err
		}
		d, err := describeStream(ctx, client, name)
		if err != nil {
			return nil, err
		}

		bucketARN, prefix, ok := s3Destination(d)
		if !ok {
			return nil, fmt.Errorf("delivery stream %s has no S3 destination", name)
		}
		bucket, err := aws.BucketFromARN(bucketARN)
		if err != nil {
			return nil, err
		}

		objects, err := aws.RecentObjects(ctx, aws.NewS3(cfg), bucket, prefix, cmd.Int("limit"))
		if err != nil {
			return nil, Friendly(err, "peek "+name)
		}

		rows := make([]s3Object, 0, len(objects))
		for _, o := range objects {
			size := awsv2.ToInt64(o.Size)
			rows = append(rows, s3Object{
				Key:          awsv2.ToString(o.Key),
				Size:         size,
				Bytes:        humanize.IBytes(uint64(size)),
				LastModified: awsv2.ToTime(o.LastModified),
				StorageClass: string(o.StorageClass),
			})
		}
		return rows, nil
	}

	return NewQueryActionRunner(
		"fh peek",
		reflect.TypeOf(s3Object{}),
		fhPeekDefaultAttrs,
		fn,
	).Run(ctx, cmd)
}

// s3Destination returns the bucket ARN and prefix of the first S3 or
// extended S3 destination.
func s3Destination(d *firehose.DeliveryStreamDescription) (bucketARN, prefix string, ok bool) {
	for _, dest := range d.Destinations {
		if e := dest.ExtendedS3DestinationDescription; e != nil && e.BucketARN != nil {
			return *e.BucketARN, awsv2.ToString(e.Prefix), true
		}
		if s := dest.S3DestinationDescription; s != nil && s.BucketARN != nil {
			return *s.BucketARN, awsv2.ToString(s.Prefix), true
		}
	}
	return "", "", false
}

func fhCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:  "fh",
		Usage: "Kinesis Firehose delivery streams",
		Metadata: map[string]any{
			"meta": meta,
		},
		Commands: []*cli.Command{
			(&QueryCommandBuilder{
				Name:      "ls",
				Namespace: "fh",
				Usage:     "list delivery streams",
				UsageText: "awsctl fh ls [options]",
				Flags:     []cli.Flag{NewLimitFlag()},
				Action:    fhLsCommandAction,
				Meta:      meta,
			}).Build(),
			(&QueryCommandBuilder{
				Name:      "describe",
				Namespace: "fh",
				Usage:     "describe a delivery stream",
				UsageText: "awsctl fh describe [options] NAME [PATH]",
				Action:    fhDescribeCommandAction,
				Meta:      meta,
			}).Build(),
			(&QueryCommandBuilder{
				Name:      "put",
				Namespace: "fh",
				Usage:     "put records, one per argument or stdin line",
				UsageText: "awsctl fh put [options] NAME [RECORD...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "no-newline",
						Usage: "do not terminate each record with a newline",
					},
				},
				Action: fhPutCommandAction,
				Meta:   meta,
			}).Build(),
			(&QueryCommandBuilder{
				Name:      "peek",
				Namespace: "fh",
				Usage:     "list the newest objects in the S3 destination",
				UsageText: "awsctl fh peek [options] NAME",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "number of objects to show",
						Value: 10,
					},
				},
				Action: fhPeekCommandAction,
				Meta:   meta,
			}).Build(),
		},
	}
}
