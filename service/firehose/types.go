// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package firehose

import "github.com/tfctl/awsctl/core"

// BufferingHints controls how much data an S3 destination buffers before
// delivery. Whichever threshold is reached first triggers delivery.
type BufferingHints struct {
	IntervalInSeconds *int32 `json:"IntervalInSeconds,omitempty" min:"60" max:"900"`
	SizeInMBs         *int32 `json:"SizeInMBs,omitempty" min:"1" max:"128"`
}

// CloudWatchLoggingOptions configures delivery error logging.
type CloudWatchLoggingOptions struct {
	Enabled       *bool   `json:"Enabled,omitempty"`
	LogGroupName  *string `json:"LogGroupName,omitempty" max:"512"`
	LogStreamName *string `json:"LogStreamName,omitempty" max:"512"`
}

type CopyCommand struct {
	DataTableName    *string `json:"DataTableName,omitempty" required:"true" min:"1"`
	DataTableColumns *string `json:"DataTableColumns,omitempty"`
	CopyOptions      *string `json:"CopyOptions,omitempty"`
}

// DeliveryStreamDescription is the full state of a delivery stream, as
// returned by DescribeDeliveryStream.
type DeliveryStreamDescription struct {
	DeliveryStreamName                    *string                                `json:"DeliveryStreamName,omitempty"`
	DeliveryStreamARN                     *string                                `json:"DeliveryStreamARN,omitempty"`
	DeliveryStreamStatus                  DeliveryStreamStatus                   `json:"DeliveryStreamStatus,omitempty"`
	FailureDescription                    *FailureDescription                    `json:"FailureDescription,omitempty"`
	DeliveryStreamEncryptionConfiguration *DeliveryStreamEncryptionConfiguration `json:"DeliveryStreamEncryptionConfiguration,omitempty"`
	DeliveryStreamType                    DeliveryStreamType                     `json:"DeliveryStreamType,omitempty"`
	VersionId                             *string                                `json:"VersionId,omitempty"`
	CreateTimestamp                       *core.Timestamp                        `json:"CreateTimestamp,omitempty"`
	LastUpdateTimestamp                   *core.Timestamp                        `json:"LastUpdateTimestamp,omitempty"`
	Source                                *SourceDescription                     `json:"Source,omitempty"`
	Destinations                          []DestinationDescription               `json:"Destinations,omitempty"`
	HasMoreDestinations                   *bool                                  `json:"HasMoreDestinations,omitempty"`
}

type DeliveryStreamEncryptionConfiguration struct {
	KeyARN             *string                        `json:"KeyARN,omitempty"`
	KeyType            KeyType                        `json:"KeyType,omitempty"`
	Status             DeliveryStreamEncryptionStatus `json:"Status,omitempty"`
	FailureDescription *FailureDescription            `json:"FailureDescription,omitempty"`
}

// DeliveryStreamEncryptionConfigurationInput requests server-side encryption.
// KeyARN is only set for CUSTOMER_MANAGED_CMK.
type DeliveryStreamEncryptionConfigurationInput struct {
	KeyARN  *string `json:"KeyARN,omitempty" min:"1" max:"512"`
	KeyType KeyType `json:"KeyType,omitempty" required:"true"`
}

// DestinationDescription describes one destination of a stream. Exactly one
// of the description members is set.
type DestinationDescription struct {
	DestinationId                       *string                              `json:"DestinationId,omitempty" required:"true" min:"1" max:"100"`
	S3DestinationDescription            *S3DestinationDescription            `json:"S3DestinationDescription,omitempty"`
	ExtendedS3DestinationDescription    *ExtendedS3DestinationDescription    `json:"ExtendedS3DestinationDescription,omitempty"`
	RedshiftDestinationDescription      *RedshiftDestinationDescription      `json:"RedshiftDestinationDescription,omitempty"`
	ElasticsearchDestinationDescription *ElasticsearchDestinationDescription `json:"ElasticsearchDestinationDescription,omitempty"`
	SplunkDestinationDescription        *SplunkDestinationDescription        `json:"SplunkDestinationDescription,omitempty"`
}

type ElasticsearchBufferingHints struct {
	IntervalInSeconds *int32 `json:"IntervalInSeconds,omitempty" min:"60" max:"900"`
	SizeInMBs         *int32 `json:"SizeInMBs,omitempty" min:"1" max:"100"`
}

type ElasticsearchDestinationConfiguration struct {
	RoleARN                  *string                          `json:"RoleARN,omitempty" required:"true" min:"1" max:"512"`
	DomainARN                *string                          `json:"DomainARN,omitempty" min:"1" max:"512"`
	ClusterEndpoint          *string                          `json:"ClusterEndpoint,omitempty" min:"1" max:"512"`
	IndexName                *string                          `json:"IndexName,omitempty" required:"true" min:"1" max:"80"`
	TypeName                 *string                          `json:"TypeName,omitempty" max:"100"`
	IndexRotationPeriod      ElasticsearchIndexRotationPeriod `json:"IndexRotationPeriod,omitempty"`
	BufferingHints           *ElasticsearchBufferingHints     `json:"BufferingHints,omitempty"`
	RetryOptions             *ElasticsearchRetryOptions       `json:"RetryOptions,omitempty"`
	S3BackupMode             ElasticsearchS3BackupMode        `json:"S3BackupMode,omitempty"`
	S3Configuration          *S3DestinationConfiguration      `json:"S3Configuration,omitempty" required:"true"`
	ProcessingConfiguration  *ProcessingConfiguration         `json:"ProcessingConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions        `json:"CloudWatchLoggingOptions,omitempty"`
}

type ElasticsearchDestinationDescription struct {
	RoleARN                  *string                          `json:"RoleARN,omitempty"`
	DomainARN                *string                          `json:"DomainARN,omitempty"`
	ClusterEndpoint          *string                          `json:"ClusterEndpoint,omitempty"`
	IndexName                *string                          `json:"IndexName,omitempty"`
	TypeName                 *string                          `json:"TypeName,omitempty"`
	IndexRotationPeriod      ElasticsearchIndexRotationPeriod `json:"IndexRotationPeriod,omitempty"`
	BufferingHints           *ElasticsearchBufferingHints     `json:"BufferingHints,omitempty"`
	RetryOptions             *ElasticsearchRetryOptions       `json:"RetryOptions,omitempty"`
	S3BackupMode             ElasticsearchS3BackupMode        `json:"S3BackupMode,omitempty"`
	S3DestinationDescription *S3DestinationDescription        `json:"S3DestinationDescription,omitempty"`
	ProcessingConfiguration  *ProcessingConfiguration         `json:"ProcessingConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions        `json:"CloudWatchLoggingOptions,omitempty"`
}

type ElasticsearchDestinationUpdate struct {
	RoleARN                  *string                          `json:"RoleARN,omitempty" min:"1" max:"512"`
	DomainARN                *string                          `json:"DomainARN,omitempty" min:"1" max:"512"`
	ClusterEndpoint          *string                          `json:"ClusterEndpoint,omitempty" min:"1" max:"512"`
	IndexName                *string                          `json:"IndexName,omitempty" min:"1" max:"80"`
	TypeName                 *string                          `json:"TypeName,omitempty" max:"100"`
	IndexRotationPeriod      ElasticsearchIndexRotationPeriod `json:"IndexRotationPeriod,omitempty"`
	BufferingHints           *ElasticsearchBufferingHints     `json:"BufferingHints,omitempty"`
	RetryOptions             *ElasticsearchRetryOptions       `json:"RetryOptions,omitempty"`
	S3Update                 *S3DestinationUpdate             `json:"S3Update,omitempty"`
	ProcessingConfiguration  *ProcessingConfiguration         `json:"ProcessingConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions        `json:"CloudWatchLoggingOptions,omitempty"`
}

type ElasticsearchRetryOptions struct {
	DurationInSeconds *int32 `json:"DurationInSeconds,omitempty" max:"7200"`
}

// EncryptionConfiguration selects KMS encryption for delivered objects, or
// NoEncryption. Setting both is rejected by the service.
type EncryptionConfiguration struct {
	NoEncryptionConfig  NoEncryptionConfig   `json:"NoEncryptionConfig,omitempty"`
	KMSEncryptionConfig *KMSEncryptionConfig `json:"KMSEncryptionConfig,omitempty"`
}

type ExtendedS3DestinationConfiguration struct {
	RoleARN                  *string                     `json:"RoleARN,omitempty" required:"true" min:"1" max:"512"`
	BucketARN                *string                     `json:"BucketARN,omitempty" required:"true" min:"1" max:"2048"`
	Prefix                   *string                     `json:"Prefix,omitempty" max:"1024"`
	ErrorOutputPrefix        *string                     `json:"ErrorOutputPrefix,omitempty" max:"1024"`
	BufferingHints           *BufferingHints             `json:"BufferingHints,omitempty"`
	CompressionFormat        CompressionFormat           `json:"CompressionFormat,omitempty"`
	EncryptionConfiguration  *EncryptionConfiguration    `json:"EncryptionConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions   `json:"CloudWatchLoggingOptions,omitempty"`
	ProcessingConfiguration  *ProcessingConfiguration    `json:"ProcessingConfiguration,omitempty"`
	S3BackupMode             S3BackupMode                `json:"S3BackupMode,omitempty"`
	S3BackupConfiguration    *S3DestinationConfiguration `json:"S3BackupConfiguration,omitempty"`
}

type ExtendedS3DestinationDescription struct {
	RoleARN                  *string                   `json:"RoleARN,omitempty"`
	BucketARN                *string                   `json:"BucketARN,omitempty"`
	Prefix                   *string                   `json:"Prefix,omitempty"`
	ErrorOutputPrefix        *string                   `json:"ErrorOutputPrefix,omitempty"`
	BufferingHints           *BufferingHints           `json:"BufferingHints,omitempty"`
	CompressionFormat        CompressionFormat         `json:"CompressionFormat,omitempty"`
	EncryptionConfiguration  *EncryptionConfiguration  `json:"EncryptionConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
	ProcessingConfiguration  *ProcessingConfiguration  `json:"ProcessingConfiguration,omitempty"`
	S3BackupMode             S3BackupMode              `json:"S3BackupMode,omitempty"`
	S3BackupDescription      *S3DestinationDescription `json:"S3BackupDescription,omitempty"`
}

type ExtendedS3DestinationUpdate struct {
	RoleARN                  *string                   `json:"RoleARN,omitempty" min:"1" max:"512"`
	BucketARN                *string                   `json:"BucketARN,omitempty" min:"1" max:"2048"`
	Prefix                   *string                   `json:"Prefix,omitempty" max:"1024"`
	ErrorOutputPrefix        *string                   `json:"ErrorOutputPrefix,omitempty" max:"1024"`
	BufferingHints           *BufferingHints           `json:"BufferingHints,omitempty"`
	CompressionFormat        CompressionFormat         `json:"CompressionFormat,omitempty"`
	EncryptionConfiguration  *EncryptionConfiguration  `json:"EncryptionConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
	ProcessingConfiguration  *ProcessingConfiguration  `json:"ProcessingConfiguration,omitempty"`
	S3BackupMode             S3BackupMode              `json:"S3BackupMode,omitempty"`
	S3BackupUpdate           *S3DestinationUpdate      `json:"S3BackupUpdate,omitempty"`
}

type FailureDescription struct {
	Type    DeliveryStreamFailureType `json:"Type,omitempty" required:"true"`
	Details *string                   `json:"Details,omitempty" required:"true" min:"1"`
}

type KinesisStreamSourceConfiguration struct {
	KinesisStreamARN *string `json:"KinesisStreamARN,omitempty" required:"true" min:"1" max:"512"`
	RoleARN          *string `json:"RoleARN,omitempty" required:"true" min:"1" max:"512"`
}

type KinesisStreamSourceDescription struct {
	KinesisStreamARN       *string         `json:"KinesisStreamARN,omitempty"`
	RoleARN                *string         `json:"RoleARN,omitempty"`
	DeliveryStartTimestamp *core.Timestamp `json:"DeliveryStartTimestamp,omitempty"`
}

type KMSEncryptionConfig struct {
	AWSKMSKeyARN *string `json:"AWSKMSKeyARN,omitempty" required:"true" min:"1" max:"512"`
}

type ProcessingConfiguration struct {
	Enabled    *bool       `json:"Enabled,omitempty"`
	Processors []Processor `json:"Processors,omitempty"`
}

// Processor is a data transformation step, today always a Lambda function.
type Processor struct {
	Type       ProcessorType        `json:"Type,omitempty" required:"true"`
	Parameters []ProcessorParameter `json:"Parameters,omitempty"`
}

type ProcessorParameter struct {
	ParameterName  ProcessorParameterName `json:"ParameterName,omitempty" required:"true"`
	ParameterValue *string                `json:"ParameterValue,omitempty" required:"true" min:"1" max:"512"`
}

// PutRecordBatchResponseEntry is the outcome for one record of a batch. A
// failed record has ErrorCode and ErrorMessage set and no RecordId.
type PutRecordBatchResponseEntry struct {
	RecordId     *string `json:"RecordId,omitempty"`
	ErrorCode    *string `json:"ErrorCode,omitempty"`
	ErrorMessage *string `json:"ErrorMessage,omitempty"`
}

// Record is a single data blob. Data travels base64 encoded and is limited to
// 1,000 KiB before encoding.
type Record struct {
	Data []byte `json:"Data,omitempty" required:"true" max:"1024000"`
}

type RedshiftDestinationConfiguration struct {
	RoleARN                  *string                     `json:"RoleARN,omitempty" required:"true" min:"1" max:"512"`
	ClusterJDBCURL           *string                     `json:"ClusterJDBCURL,omitempty" required:"true" min:"1" max:"512"`
	CopyCommand              *CopyCommand                `json:"CopyCommand,omitempty" required:"true"`
	Username                 *string                     `json:"Username,omitempty" required:"true" min:"1" max:"512"`
	Password                 *string                     `json:"Password,omitempty" required:"true" min:"6" max:"512"`
	RetryOptions             *RedshiftRetryOptions       `json:"RetryOptions,omitempty"`
	S3Configuration          *S3DestinationConfiguration `json:"S3Configuration,omitempty" required:"true"`
	ProcessingConfiguration  *ProcessingConfiguration    `json:"ProcessingConfiguration,omitempty"`
	S3BackupMode             RedshiftS3BackupMode        `json:"S3BackupMode,omitempty"`
	S3BackupConfiguration    *S3DestinationConfiguration `json:"S3BackupConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions   `json:"CloudWatchLoggingOptions,omitempty"`
}

type RedshiftDestinationDescription struct {
	RoleARN                  *string                   `json:"RoleARN,omitempty"`
	ClusterJDBCURL           *string                   `json:"ClusterJDBCURL,omitempty"`
	CopyCommand              *CopyCommand              `json:"CopyCommand,omitempty"`
	Username                 *string                   `json:"Username,omitempty"`
	RetryOptions             *RedshiftRetryOptions     `json:"RetryOptions,omitempty"`
	S3DestinationDescription *S3DestinationDescription `json:"S3DestinationDescription,omitempty"`
	ProcessingConfiguration  *ProcessingConfiguration  `json:"ProcessingConfiguration,omitempty"`
	S3BackupMode             RedshiftS3BackupMode      `json:"S3BackupMode,omitempty"`
	S3BackupDescription      *S3DestinationDescription `json:"S3BackupDescription,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
}

type RedshiftDestinationUpdate struct {
	RoleARN                  *string                   `json:"RoleARN,omitempty" min:"1" max:"512"`
	ClusterJDBCURL           *string                   `json:"ClusterJDBCURL,omitempty" min:"1" max:"512"`
	CopyCommand              *CopyCommand              `json:"CopyCommand,omitempty"`
	Username                 *string                   `json:"Username,omitempty" min:"1" max:"512"`
	Password                 *string                   `json:"Password,omitempty" min:"6" max:"512"`
	RetryOptions             *RedshiftRetryOptions     `json:"RetryOptions,omitempty"`
	S3Update                 *S3DestinationUpdate      `json:"S3Update,omitempty"`
	ProcessingConfiguration  *ProcessingConfiguration  `json:"ProcessingConfiguration,omitempty"`
	S3BackupMode             RedshiftS3BackupMode      `json:"S3BackupMode,omitempty"`
	S3BackupUpdate           *S3DestinationUpdate      `json:"S3BackupUpdate,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
}

type RedshiftRetryOptions struct {
	DurationInSeconds *int32 `json:"DurationInSeconds,omitempty" max:"7200"`
}

type S3DestinationConfiguration struct {
	RoleARN                  *string                   `json:"RoleARN,omitempty" required:"true" min:"1" max:"512"`
	BucketARN                *string                   `json:"BucketARN,omitempty" required:"true" min:"1" max:"2048"`
	Prefix                   *string                   `json:"Prefix,omitempty" max:"1024"`
	ErrorOutputPrefix        *string                   `json:"ErrorOutputPrefix,omitempty" max:"1024"`
	BufferingHints           *BufferingHints           `json:"BufferingHints,omitempty"`
	CompressionFormat        CompressionFormat         `json:"CompressionFormat,omitempty"`
	EncryptionConfiguration  *EncryptionConfiguration  `json:"EncryptionConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
}

type S3DestinationDescription struct {
	RoleARN                  *string                   `json:"RoleARN,omitempty"`
	BucketARN                *string                   `json:"BucketARN,omitempty"`
	Prefix                   *string                   `json:"Prefix,omitempty"`
	ErrorOutputPrefix        *string                   `json:"ErrorOutputPrefix,omitempty"`
	BufferingHints           *BufferingHints           `json:"BufferingHints,omitempty"`
	CompressionFormat        CompressionFormat         `json:"CompressionFormat,omitempty"`
	EncryptionConfiguration  *EncryptionConfiguration  `json:"EncryptionConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
}

type S3DestinationUpdate struct {
	RoleARN                  *string                   `json:"RoleARN,omitempty" min:"1" max:"512"`
	BucketARN                *string                   `json:"BucketARN,omitempty" min:"1" max:"2048"`
	Prefix                   *string                   `json:"Prefix,omitempty" max:"1024"`
	ErrorOutputPrefix        *string                   `json:"ErrorOutputPrefix,omitempty" max:"1024"`
	BufferingHints           *BufferingHints           `json:"BufferingHints,omitempty"`
	CompressionFormat        CompressionFormat         `json:"CompressionFormat,omitempty"`
	EncryptionConfiguration  *EncryptionConfiguration  `json:"EncryptionConfiguration,omitempty"`
	CloudWatchLoggingOptions *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
}

type SourceDescription struct {
	KinesisStreamSourceDescription *KinesisStreamSourceDescription `json:"KinesisStreamSourceDescription,omitempty"`
}

type SplunkDestinationConfiguration struct {
	HECEndpoint                       *string                     `json:"HECEndpoint,omitempty" required:"true" max:"2048"`
	HECEndpointType                   HECEndpointType             `json:"HECEndpointType,omitempty" required:"true"`
	HECToken                          *string                     `json:"HECToken,omitempty" required:"true" max:"2048"`
	HECAcknowledgmentTimeoutInSeconds *int32                      `json:"HECAcknowledgmentTimeoutInSeconds,omitempty" min:"180" max:"600"`
	RetryOptions                      *SplunkRetryOptions         `json:"RetryOptions,omitempty"`
	S3BackupMode                      SplunkS3BackupMode          `json:"S3BackupMode,omitempty"`
	S3Configuration                   *S3DestinationConfiguration `json:"S3Configuration,omitempty" required:"true"`
	ProcessingConfiguration           *ProcessingConfiguration    `json:"ProcessingConfiguration,omitempty"`
	CloudWatchLoggingOptions          *CloudWatchLoggingOptions   `json:"CloudWatchLoggingOptions,omitempty"`
}

type SplunkDestinationDescription struct {
	HECEndpoint                       *string                   `json:"HECEndpoint,omitempty"`
	HECEndpointType                   HECEndpointType           `json:"HECEndpointType,omitempty"`
	HECToken                          *string                   `json:"HECToken,omitempty"`
	HECAcknowledgmentTimeoutInSeconds *int32                    `json:"HECAcknowledgmentTimeoutInSeconds,omitempty"`
	RetryOptions                      *SplunkRetryOptions       `json:"RetryOptions,omitempty"`
	S3BackupMode                      SplunkS3BackupMode        `json:"S3BackupMode,omitempty"`
	S3DestinationDescription          *S3DestinationDescription `json:"S3DestinationDescription,omitempty"`
	ProcessingConfiguration           *ProcessingConfiguration  `json:"ProcessingConfiguration,omitempty"`
	CloudWatchLoggingOptions          *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
}

type SplunkDestinationUpdate struct {
	HECEndpoint                       *string                   `json:"HECEndpoint,omitempty" max:"2048"`
	HECEndpointType                   HECEndpointType           `json:"HECEndpointType,omitempty"`
	HECToken                          *string                   `json:"HECToken,omitempty" max:"2048"`
	HECAcknowledgmentTimeoutInSeconds *int32                    `json:"HECAcknowledgmentTimeoutInSeconds,omitempty" min:"180" max:"600"`
	RetryOptions                      *SplunkRetryOptions       `json:"RetryOptions,omitempty"`
	S3BackupMode                      SplunkS3BackupMode        `json:"S3BackupMode,omitempty"`
	S3Update                          *S3DestinationUpdate      `json:"S3Update,omitempty"`
	ProcessingConfiguration           *ProcessingConfiguration  `json:"ProcessingConfiguration,omitempty"`
	CloudWatchLoggingOptions          *CloudWatchLoggingOptions `json:"CloudWatchLoggingOptions,omitempty"`
}

type SplunkRetryOptions struct {
	DurationInSeconds *int32 `json:"DurationInSeconds,omitempty" max:"7200"`
}

type Tag struct {
	Key   *string `json:"Key,omitempty" required:"true" min:"1" max:"128"`
	Value *string `json:"Value,omitempty" max:"256"`
}
