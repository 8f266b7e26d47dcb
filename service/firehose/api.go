// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package firehose

import (
	"context"

	"github.com/tfctl/awsctl/core"
)

// CreateDeliveryStream creates a delivery stream. The stream starts in
// CREATING and becomes ACTIVE asynchronously. Exactly one destination
// configuration must be set.
func (c *Client) CreateDeliveryStream(ctx context.Context, params *CreateDeliveryStreamInput, optFns ...func(*core.Options)) (*CreateDeliveryStreamOutput, error) {
	return invoke[CreateDeliveryStreamOutput](ctx, c, "CreateDeliveryStream", params, optFns)
}

type CreateDeliveryStreamInput struct {
	DeliveryStreamName                         *string                                     `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	DeliveryStreamType                         DeliveryStreamType                          `json:"DeliveryStreamType,omitempty"`
	KinesisStreamSourceConfiguration           *KinesisStreamSourceConfiguration           `json:"KinesisStreamSourceConfiguration,omitempty"`
	DeliveryStreamEncryptionConfigurationInput *DeliveryStreamEncryptionConfigurationInput `json:"DeliveryStreamEncryptionConfigurationInput,omitempty"`
	S3DestinationConfiguration                 *S3DestinationConfiguration                 `json:"S3DestinationConfiguration,omitempty"`
	ExtendedS3DestinationConfiguration         *ExtendedS3DestinationConfiguration         `json:"ExtendedS3DestinationConfiguration,omitempty"`
	RedshiftDestinationConfiguration           *RedshiftDestinationConfiguration           `json:"RedshiftDestinationConfiguration,omitempty"`
	ElasticsearchDestinationConfiguration      *ElasticsearchDestinationConfiguration      `json:"ElasticsearchDestinationConfiguration,omitempty"`
	SplunkDestinationConfiguration             *SplunkDestinationConfiguration             `json:"SplunkDestinationConfiguration,omitempty"`
	Tags                                       []Tag                                       `json:"Tags,omitempty" min:"1" max:"50"`
}

type CreateDeliveryStreamOutput struct {
	DeliveryStreamARN *string `json:"DeliveryStreamARN,omitempty"`
}

// DeleteDeliveryStream deletes a delivery stream and its data. Records still
// buffered are lost.
func (c *Client) DeleteDeliveryStream(ctx context.Context, params *DeleteDeliveryStreamInput, optFns ...func(*core.Options)) (*DeleteDeliveryStreamOutput, error) {
	return invoke[DeleteDeliveryStreamOutput](ctx, c, "DeleteDeliveryStream", params, optFns)
}

type DeleteDeliveryStreamInput struct {
	DeliveryStreamName *string `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	AllowForceDelete   *bool   `json:"AllowForceDelete,omitempty"`
}

type DeleteDeliveryStreamOutput struct{}

// DescribeDeliveryStream describes a stream and up to Limit of its
// destinations.
func (c *Client) DescribeDeliveryStream(ctx context.Context, params *DescribeDeliveryStreamInput, optFns ...func(*core.Options)) (*DescribeDeliveryStreamOutput, error) {
	return invoke[DescribeDeliveryStreamOutput](ctx, c, "DescribeDeliveryStream", params, optFns)
}

type DescribeDeliveryStreamInput struct {
	DeliveryStreamName          *string `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	Limit                       *int32  `json:"Limit,omitempty" min:"1" max:"10000"`
	ExclusiveStartDestinationId *string `json:"ExclusiveStartDestinationId,omitempty" min:"1" max:"100"`
}

type DescribeDeliveryStreamOutput struct {
	DeliveryStreamDescription *DeliveryStreamDescription `json:"DeliveryStreamDescription,omitempty"`
}

// ListDeliveryStreams lists stream names. Page with
// ExclusiveStartDeliveryStreamName while HasMoreDeliveryStreams is true.
func (c *Client) ListDeliveryStreams(ctx context.Context, params *ListDeliveryStreamsInput, optFns ...func(*core.Options)) (*ListDeliveryStreamsOutput, error) {
	return invoke[ListDeliveryStreamsOutput](ctx, c, "ListDeliveryStreams", params, optFns)
}

type ListDeliveryStreamsInput struct {
	Limit                            *int32             `json:"Limit,omitempty" min:"1" max:"10000"`
	DeliveryStreamType               DeliveryStreamType `json:"DeliveryStreamType,omitempty"`
	ExclusiveStartDeliveryStreamName *string            `json:"ExclusiveStartDeliveryStreamName,omitempty" min:"1" max:"64"`
}

type ListDeliveryStreamsOutput struct {
	DeliveryStreamNames    []string `json:"DeliveryStreamNames,omitempty"`
	HasMoreDeliveryStreams *bool    `json:"HasMoreDeliveryStreams,omitempty"`
}

// ListTagsForDeliveryStream lists the tags of a stream.
func (c *Client) ListTagsForDeliveryStream(ctx context.Context, params *ListTagsForDeliveryStreamInput, optFns ...func(*core.Options)) (*ListTagsForDeliveryStreamOutput, error) {
	return invoke[ListTagsForDeliveryStreamOutput](ctx, c, "ListTagsForDeliveryStream", params, optFns)
}

type ListTagsForDeliveryStreamInput struct {
	DeliveryStreamName   *string `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	ExclusiveStartTagKey *string `json:"ExclusiveStartTagKey,omitempty" min:"1" max:"128"`
	Limit                *int32  `json:"Limit,omitempty" min:"1" max:"50"`
}

type ListTagsForDeliveryStreamOutput struct {
	Tags        []Tag `json:"Tags,omitempty"`
	HasMoreTags *bool `json:"HasMoreTags,omitempty"`
}

// PutRecord writes one record to a stream.
func (c *Client) PutRecord(ctx context.Context, params *PutRecordInput, optFns ...func(*core.Options)) (*PutRecordOutput, error) {
	return invoke[PutRecordOutput](ctx, c, "PutRecord", params, optFns)
}

type PutRecordInput struct {
	DeliveryStreamName *string `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	Record             *Record `json:"Record,omitempty" required:"true"`
}

type PutRecordOutput struct {
	RecordId  *string `json:"RecordId,omitempty"`
	Encrypted *bool   `json:"Encrypted,omitempty"`
}

// PutRecordBatch writes up to 500 records in one call. Individual records can
// fail while the call succeeds; see FailedPutCount and FailedRecords.
func (c *Client) PutRecordBatch(ctx context.Context, params *PutRecordBatchInput, optFns ...func(*core.Options)) (*PutRecordBatchOutput, error) {
	return invoke[PutRecordBatchOutput](ctx, c, "PutRecordBatch", params, optFns)
}

type PutRecordBatchInput struct {
	DeliveryStreamName *string  `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	Records            []Record `json:"Records,omitempty" required:"true" min:"1" max:"500"`
}

type PutRecordBatchOutput struct {
	FailedPutCount   *int32                        `json:"FailedPutCount,omitempty"`
	Encrypted        *bool                         `json:"Encrypted,omitempty"`
	RequestResponses []PutRecordBatchResponseEntry `json:"RequestResponses,omitempty"`
}

// StartDeliveryStreamEncryption enables server-side encryption for a stream.
func (c *Client) StartDeliveryStreamEncryption(ctx context.Context, params *StartDeliveryStreamEncryptionInput, optFns ...func(*core.Options)) (*StartDeliveryStreamEncryptionOutput, error) {
	return invoke[StartDeliveryStreamEncryptionOutput](ctx, c, "StartDeliveryStreamEncryption", params, optFns)
}

type StartDeliveryStreamEncryptionInput struct {
	DeliveryStreamName                         *string                                     `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	DeliveryStreamEncryptionConfigurationInput *DeliveryStreamEncryptionConfigurationInput `json:"DeliveryStreamEncryptionConfigurationInput,omitempty"`
}

type StartDeliveryStreamEncryptionOutput struct{}

// StopDeliveryStreamEncryption disables server-side encryption for a stream.
func (c *Client) StopDeliveryStreamEncryption(ctx context.Context, params *StopDeliveryStreamEncryptionInput, optFns ...func(*core.Options)) (*StopDeliveryStreamEncryptionOutput, error) {
	return invoke[StopDeliveryStreamEncryptionOutput](ctx, c, "StopDeliveryStreamEncryption", params, optFns)
}

type StopDeliveryStreamEncryptionInput struct {
	DeliveryStreamName *string `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
}

type StopDeliveryStreamEncryptionOutput struct{}

// TagDeliveryStream adds or updates tags on a stream.
func (c *Client) TagDeliveryStream(ctx context.Context, params *TagDeliveryStreamInput, optFns ...func(*core.Options)) (*TagDeliveryStreamOutput, error) {
	return invoke[TagDeliveryStreamOutput](ctx, c, "TagDeliveryStream", params, optFns)
}

type TagDeliveryStreamInput struct {
	DeliveryStreamName *string `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	Tags               []Tag   `json:"Tags,omitempty" required:"true" min:"1" max:"50"`
}

type TagDeliveryStreamOutput struct{}

// UntagDeliveryStream removes tags from a stream.
func (c *Client) UntagDeliveryStream(ctx context.Context, params *UntagDeliveryStreamInput, optFns ...func(*core.Options)) (*UntagDeliveryStreamOutput, error) {
	return invoke[UntagDeliveryStreamOutput](ctx, c, "UntagDeliveryStream", params, optFns)
}

type UntagDeliveryStreamInput struct {
	DeliveryStreamName *string  `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	TagKeys            []string `json:"TagKeys,omitempty" required:"true" min:"1" max:"50"`
}

type UntagDeliveryStreamOutput struct{}

// UpdateDestination updates one destination of a stream.
// CurrentDeliveryStreamVersionId guards against concurrent updates; a stale
// id fails with ConcurrentModificationException.
func (c *Client) UpdateDestination(ctx context.Context, params *UpdateDestinationInput, optFns ...func(*core.Options)) (*UpdateDestinationOutput, error) {
	return invoke[UpdateDestinationOutput](ctx, c, "UpdateDestination", params, optFns)
}

type UpdateDestinationInput struct {
	DeliveryStreamName             *string                         `json:"DeliveryStreamName,omitempty" required:"true" min:"1" max:"64"`
	CurrentDeliveryStreamVersionId *string                         `json:"CurrentDeliveryStreamVersionId,omitempty" required:"true" min:"1" max:"50"`
	DestinationId                  *string                         `json:"DestinationId,omitempty" required:"true" min:"1" max:"100"`
	S3DestinationUpdate            *S3DestinationUpdate            `json:"S3DestinationUpdate,omitempty"`
	ExtendedS3DestinationUpdate    *ExtendedS3DestinationUpdate    `json:"ExtendedS3DestinationUpdate,omitempty"`
	RedshiftDestinationUpdate      *RedshiftDestinationUpdate      `json:"RedshiftDestinationUpdate,omitempty"`
	ElasticsearchDestinationUpdate *ElasticsearchDestinationUpdate `json:"ElasticsearchDestinationUpdate,omitempty"`
	SplunkDestinationUpdate        *SplunkDestinationUpdate        `json:"SplunkDestinationUpdate,omitempty"`
}

type UpdateDestinationOutput struct{}
