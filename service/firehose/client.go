// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package firehose is a client for Amazon Kinesis Data Firehose
// (API 2015-08-04, AWS JSON 1.1).
package firehose

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/tfctl/awsctl/core"
)

const (
	ServiceName = "Firehose"
	APIVersion  = "2015-08-04"
)

// Info describes the Firehose API to the dispatcher.
var Info = core.ServiceInfo{
	Name:           ServiceName,
	SigningName:    "firehose",
	EndpointPrefix: "firehose",
	APIVersion:     APIVersion,
	TargetPrefix:   "Firehose_20150804",
	Errors:         errorRegistry,
}

// API is the set of Firehose operations. *Client satisfies it; command code
// and tests depend on the interface.
type API interface {
	CreateDeliveryStream(context.Context, *CreateDeliveryStreamInput, ...func(*core.Options)) (*CreateDeliveryStreamOutput, error)
	DeleteDeliveryStream(context.Context, *DeleteDeliveryStreamInput, ...func(*core.Options)) (*DeleteDeliveryStreamOutput, error)
	DescribeDeliveryStream(context.Context, *DescribeDeliveryStreamInput, ...func(*core.Options)) (*DescribeDeliveryStreamOutput, error)
	ListDeliveryStreams(context.Context, *ListDeliveryStreamsInput, ...func(*core.Options)) (*ListDeliveryStreamsOutput, error)
	ListTagsForDeliveryStream(context.Context, *ListTagsForDeliveryStreamInput, ...func(*core.Options)) (*ListTagsForDeliveryStreamOutput, error)
	PutRecord(context.Context, *PutRecordInput, ...func(*core.Options)) (*PutRecordOutput, error)
	PutRecordBatch(context.Context, *PutRecordBatchInput, ...func(*core.Options)) (*PutRecordBatchOutput, error)
	StartDeliveryStreamEncryption(context.Context, *StartDeliveryStreamEncryptionInput, ...func(*core.Options)) (*StartDeliveryStreamEncryptionOutput, error)
	StopDeliveryStreamEncryption(context.Context, *StopDeliveryStreamEncryptionInput, ...func(*core.Options)) (*StopDeliveryStreamEncryptionOutput, error)
	TagDeliveryStream(context.Context, *TagDeliveryStreamInput, ...func(*core.Options)) (*TagDeliveryStreamOutput, error)
	UntagDeliveryStream(context.Context, *UntagDeliveryStreamInput, ...func(*core.Options)) (*UntagDeliveryStreamOutput, error)
	UpdateDestination(context.Context, *UpdateDestinationInput, ...func(*core.Options)) (*UpdateDestinationOutput, error)
}

var _ API = (*Client)(nil)

// Client is safe for concurrent use.
type Client struct {
	client *core.Client
}

// New returns a client configured by opts.
func New(opts core.Options, optFns ...func(*core.Options)) *Client {
	return &Client{client: core.New(Info, opts, optFns...)}
}

// NewFromConfig returns a client configured from a loaded aws.Config.
func NewFromConfig(cfg aws.Config, optFns ...func(*core.Options)) *Client {
	return New(core.OptionsFromConfig(cfg), optFns...)
}

// Options returns a copy of the client options.
func (c *Client) Options() core.Options {
	return c.client.Options()
}

func invoke[O any](ctx context.Context, c *Client, op string, in any, optFns []func(*core.Options)) (*O, error) {
	out := new(O)
	if err := c.client.InvokeJSON(ctx, core.Operation{Name: op}, in, out, optFns...); err != nil {
		return nil, err
	}
	return out, nil
}
