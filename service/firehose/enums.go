// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package firehose

import "github.com/tfctl/awsctl/core"

type CompressionFormat string

// Enum values for CompressionFormat
const (
	CompressionFormatUncompressed CompressionFormat = "UNCOMPRESSED"
	CompressionFormatGzip         CompressionFormat = "GZIP"
	CompressionFormatZip          CompressionFormat = "ZIP"
	CompressionFormatSnappy       CompressionFormat = "Snappy"
	CompressionFormatHadoopSnappy CompressionFormat = "HADOOP_SNAPPY"
)

// Values returns every known CompressionFormat.
func (CompressionFormat) Values() []CompressionFormat {
	return []CompressionFormat{
		CompressionFormatUncompressed,
		CompressionFormatGzip,
		CompressionFormatZip,
		CompressionFormatSnappy,
		CompressionFormatHadoopSnappy,
	}
}

// ParseCompressionFormat maps s onto a CompressionFormat, failing with a
// *core.EnumError for unknown values.
func ParseCompressionFormat(s string) (CompressionFormat, error) {
	return core.ParseEnum("CompressionFormat", s, CompressionFormat("").Values())
}

type DeliveryStreamEncryptionStatus string

// Enum values for DeliveryStreamEncryptionStatus
const (
	DeliveryStreamEncryptionStatusEnabled         DeliveryStreamEncryptionStatus = "ENABLED"
	DeliveryStreamEncryptionStatusEnabling        DeliveryStreamEncryptionStatus = "ENABLING"
	DeliveryStreamEncryptionStatusEnablingFailed  DeliveryStreamEncryptionStatus = "ENABLING_FAILED"
	DeliveryStreamEncryptionStatusDisabled        DeliveryStreamEncryptionStatus = "DISABLED"
	DeliveryStreamEncryptionStatusDisabling       DeliveryStreamEncryptionStatus = "DISABLING"
	DeliveryStreamEncryptionStatusDisablingFailed DeliveryStreamEncryptionStatus = "DISABLING_FAILED"
)

// Values returns every known DeliveryStreamEncryptionStatus.
func (DeliveryStreamEncryptionStatus) Values() []DeliveryStreamEncryptionStatus {
	return []DeliveryStreamEncryptionStatus{
		DeliveryStreamEncryptionStatusEnabled,
		DeliveryStreamEncryptionStatusEnabling,
		DeliveryStreamEncryptionStatusEnablingFailed,
		DeliveryStreamEncryptionStatusDisabled,
		DeliveryStreamEncryptionStatusDisabling,
		DeliveryStreamEncryptionStatusDisablingFailed,
	}
}

// ParseDeliveryStreamEncryptionStatus maps s onto a
// DeliveryStreamEncryptionStatus, failing with a *core.EnumError for unknown
// values.
func ParseDeliveryStreamEncryptionStatus(s string) (DeliveryStreamEncryptionStatus, error) {
	return core.ParseEnum("DeliveryStreamEncryptionStatus", s, DeliveryStreamEncryptionStatus("").Values())
}

type DeliveryStreamFailureType string

// Enum values for DeliveryStreamFailureType
const (
	DeliveryStreamFailureTypeRetireKmsGrantFailed      DeliveryStreamFailureType = "RETIRE_KMS_GRANT_FAILED"
	DeliveryStreamFailureTypeCreateKmsGrantFailed      DeliveryStreamFailureType = "CREATE_KMS_GRANT_FAILED"
	DeliveryStreamFailureTypeKmsAccessDenied           DeliveryStreamFailureType = "KMS_ACCESS_DENIED"
	DeliveryStreamFailureTypeDisabledKmsKey            DeliveryStreamFailureType = "DISABLED_KMS_KEY"
	DeliveryStreamFailureTypeInvalidKmsKey             DeliveryStreamFailureType = "INVALID_KMS_KEY"
	DeliveryStreamFailureTypeKmsKeyNotFound            DeliveryStreamFailureType = "KMS_KEY_NOT_FOUND"
	DeliveryStreamFailureTypeKmsOptInRequired          DeliveryStreamFailureType = "KMS_OPT_IN_REQUIRED"
	DeliveryStreamFailureTypeCreateEniFailed           DeliveryStreamFailureType = "CREATE_ENI_FAILED"
	DeliveryStreamFailureTypeDeleteEniFailed           DeliveryStreamFailureType = "DELETE_ENI_FAILED"
	DeliveryStreamFailureTypeSubnetNotFound            DeliveryStreamFailureType = "SUBNET_NOT_FOUND"
	DeliveryStreamFailureTypeSecurityGroupNotFound     DeliveryStreamFailureType = "SECURITY_GROUP_NOT_FOUND"
	DeliveryStreamFailureTypeEniAccessDenied           DeliveryStreamFailureType = "ENI_ACCESS_DENIED"
	DeliveryStreamFailureTypeSubnetAccessDenied        DeliveryStreamFailureType = "SUBNET_ACCESS_DENIED"
	DeliveryStreamFailureTypeSecurityGroupAccessDenied DeliveryStreamFailureType = "SECURITY_GROUP_ACCESS_DENIED"
	DeliveryStreamFailureTypeUnknownError              DeliveryStreamFailureType = "UNKNOWN_ERROR"
)

// Values returns every known DeliveryStreamFailureType.
func (DeliveryStreamFailureType) Values() []DeliveryStreamFailureType {
	return []DeliveryStreamFailureType{
		DeliveryStreamFailureTypeRetireKmsGrantFailed,
		DeliveryStreamFailureTypeCreateKmsGrantFailed,
		DeliveryStreamFailureTypeKmsAccessDenied,
		DeliveryStreamFailureTypeDisabledKmsKey,
		DeliveryStreamFailureTypeInvalidKmsKey,
		DeliveryStreamFailureTypeKmsKeyNotFound,
		DeliveryStreamFailureTypeKmsOptInRequired,
		DeliveryStreamFailureTypeCreateEniFailed,
		DeliveryStreamFailureTypeDeleteEniFailed,
		DeliveryStreamFailureTypeSubnetNotFound,
		DeliveryStreamFailureTypeSecurityGroupNotFound,
		DeliveryStreamFailureTypeEniAccessDenied,
		DeliveryStreamFailureTypeSubnetAccessDenied,
		DeliveryStreamFailureTypeSecurityGroupAccessDenied,
		DeliveryStreamFailureTypeUnknownError,
	}
}

// ParseDeliveryStreamFailureType maps s onto a DeliveryStreamFailureType,
// failing with a *core.EnumError for unknown values.
func ParseDeliveryStreamFailureType(s string) (DeliveryStreamFailureType, error) {
	return core.ParseEnum("DeliveryStreamFailureType", s, DeliveryStreamFailureType("").Values())
}

// DeliveryStreamStatus is the lifecycle state of a stream. Only ACTIVE
// streams accept records.
type DeliveryStreamStatus string

// Enum values for DeliveryStreamStatus
const (
	DeliveryStreamStatusCreating       DeliveryStreamStatus = "CREATING"
	DeliveryStreamStatusCreatingFailed DeliveryStreamStatus = "CREATING_FAILED"
	DeliveryStreamStatusDeleting       DeliveryStreamStatus = "DELETING"
	DeliveryStreamStatusDeletingFailed DeliveryStreamStatus = "DELETING_FAILED"
	DeliveryStreamStatusActive         DeliveryStreamStatus = "ACTIVE"
)

// Values returns every known DeliveryStreamStatus.
func (DeliveryStreamStatus) Values() []DeliveryStreamStatus {
	return []DeliveryStreamStatus{
		DeliveryStreamStatusCreating,
		DeliveryStreamStatusCreatingFailed,
		DeliveryStreamStatusDeleting,
		DeliveryStreamStatusDeletingFailed,
		DeliveryStreamStatusActive,
	}
}

// ParseDeliveryStreamStatus maps s onto a DeliveryStreamStatus, failing with
// a *core.EnumError for unknown values.
func ParseDeliveryStreamStatus(s string) (DeliveryStreamStatus, error) {
	return core.ParseEnum("DeliveryStreamStatus", s, DeliveryStreamStatus("").Values())
}

// DeliveryStreamType tells whether producers write to the stream directly or
// it reads from a Kinesis data stream.
type DeliveryStreamType string

// Enum values for DeliveryStreamType
const (
	DeliveryStreamTypeDirectPut             DeliveryStreamType = "DirectPut"
	DeliveryStreamTypeKinesisStreamAsSource DeliveryStreamType = "KinesisStreamAsSource"
)

// Values returns every known DeliveryStreamType.
func (DeliveryStreamType) Values() []DeliveryStreamType {
	return []DeliveryStreamType{
		DeliveryStreamTypeDirectPut,
		DeliveryStreamTypeKinesisStreamAsSource,
	}
}

// ParseDeliveryStreamType maps s onto a DeliveryStreamType, failing with a
// *core.EnumError for unknown values.
func ParseDeliveryStreamType(s string) (DeliveryStreamType, error) {
	return core.ParseEnum("DeliveryStreamType", s, DeliveryStreamType("").Values())
}

type ElasticsearchIndexRotationPeriod string

// Enum values for ElasticsearchIndexRotationPeriod
const (
	ElasticsearchIndexRotationPeriodNoRotation ElasticsearchIndexRotationPeriod = "NoRotation"
	ElasticsearchIndexRotationPeriodOneHour    ElasticsearchIndexRotationPeriod = "OneHour"
	ElasticsearchIndexRotationPeriodOneDay     ElasticsearchIndexRotationPeriod = "OneDay"
	ElasticsearchIndexRotationPeriodOneWeek    ElasticsearchIndexRotationPeriod = "OneWeek"
	ElasticsearchIndexRotationPeriodOneMonth   ElasticsearchIndexRotationPeriod = "OneMonth"
)

// Values returns every known ElasticsearchIndexRotationPeriod.
func (ElasticsearchIndexRotationPeriod) Values() []ElasticsearchIndexRotationPeriod {
	return []ElasticsearchIndexRotationPeriod{
		ElasticsearchIndexRotationPeriodNoRotation,
		ElasticsearchIndexRotationPeriodOneHour,
		ElasticsearchIndexRotationPeriodOneDay,
		ElasticsearchIndexRotationPeriodOneWeek,
		ElasticsearchIndexRotationPeriodOneMonth,
	}
}

// ParseElasticsearchIndexRotationPeriod maps s onto a
// ElasticsearchIndexRotationPeriod, failing with a *core.EnumError for
// unknown values.
func ParseElasticsearchIndexRotationPeriod(s string) (ElasticsearchIndexRotationPeriod, error) {
	return core.ParseEnum("ElasticsearchIndexRotationPeriod", s, ElasticsearchIndexRotationPeriod("").Values())
}

type ElasticsearchS3BackupMode string

// Enum values for ElasticsearchS3BackupMode
const (
	ElasticsearchS3BackupModeFailedDocumentsOnly ElasticsearchS3BackupMode = "FailedDocumentsOnly"
	ElasticsearchS3BackupModeAllDocuments        ElasticsearchS3BackupMode = "AllDocuments"
)

// Values returns every known ElasticsearchS3BackupMode.
func (ElasticsearchS3BackupMode) Values() []ElasticsearchS3BackupMode {
	return []ElasticsearchS3BackupMode{
		ElasticsearchS3BackupModeFailedDocumentsOnly,
		ElasticsearchS3BackupModeAllDocuments,
	}
}

// ParseElasticsearchS3BackupMode maps s onto a ElasticsearchS3BackupMode,
// failing with a *core.EnumError for unknown values.
func ParseElasticsearchS3BackupMode(s string) (ElasticsearchS3BackupMode, error) {
	return core.ParseEnum("ElasticsearchS3BackupMode", s, ElasticsearchS3BackupMode("").Values())
}

type HECEndpointType string

// Enum values for HECEndpointType
const (
	HECEndpointTypeRaw   HECEndpointType = "Raw"
	HECEndpointTypeEvent HECEndpointType = "Event"
)

// Values returns every known HECEndpointType.
func (HECEndpointType) Values() []HECEndpointType {
	return []HECEndpointType{
		HECEndpointTypeRaw,
		HECEndpointTypeEvent,
	}
}

// ParseHECEndpointType maps s onto a HECEndpointType, failing with a
// *core.EnumError for unknown values.
func ParseHECEndpointType(s string) (HECEndpointType, error) {
	return core.ParseEnum("HECEndpointType", s, HECEndpointType("").Values())
}

type KeyType string

// Enum values for KeyType
const (
	KeyTypeAwsOwnedCmk        KeyType = "AWS_OWNED_CMK"
	KeyTypeCustomerManagedCmk KeyType = "CUSTOMER_MANAGED_CMK"
)

// Values returns every known KeyType.
func (KeyType) Values() []KeyType {
	return []KeyType{
		KeyTypeAwsOwnedCmk,
		KeyTypeCustomerManagedCmk,
	}
}

// ParseKeyType maps s onto a KeyType, failing with a *core.EnumError for
// unknown values.
func ParseKeyType(s string) (KeyType, error) {
	return core.ParseEnum("KeyType", s, KeyType("").Values())
}

type NoEncryptionConfig string

// Enum values for NoEncryptionConfig
const (
	NoEncryptionConfigNoEncryption NoEncryptionConfig = "NoEncryption"
)

// Values returns every known NoEncryptionConfig.
func (NoEncryptionConfig) Values() []NoEncryptionConfig {
	return []NoEncryptionConfig{
		NoEncryptionConfigNoEncryption,
	}
}

// ParseNoEncryptionConfig maps s onto a NoEncryptionConfig, failing with a
// *core.EnumError for unknown values.
func ParseNoEncryptionConfig(s string) (NoEncryptionConfig, error) {
	return core.ParseEnum("NoEncryptionConfig", s, NoEncryptionConfig("").Values())
}

type ProcessorParameterName string

// Enum values for ProcessorParameterName
const (
	ProcessorParameterNameLambdaArn               ProcessorParameterName = "LambdaArn"
	ProcessorParameterNameNumberOfRetries         ProcessorParameterName = "NumberOfRetries"
	ProcessorParameterNameRoleArn                 ProcessorParameterName = "RoleArn"
	ProcessorParameterNameBufferSizeInMBs         ProcessorParameterName = "BufferSizeInMBs"
	ProcessorParameterNameBufferIntervalInSeconds ProcessorParameterName = "BufferIntervalInSeconds"
)

// Values returns every known ProcessorParameterName.
func (ProcessorParameterName) Values() []ProcessorParameterName {
	return []ProcessorParameterName{
		ProcessorParameterNameLambdaArn,
		ProcessorParameterNameNumberOfRetries,
		ProcessorParameterNameRoleArn,
		ProcessorParameterNameBufferSizeInMBs,
		ProcessorParameterNameBufferIntervalInSeconds,
	}
}

// ParseProcessorParameterName maps s onto a ProcessorParameterName, failing
// with a *core.EnumError for unknown values.
func ParseProcessorParameterName(s string) (ProcessorParameterName, error) {
	return core.ParseEnum("ProcessorParameterName", s, ProcessorParameterName("").Values())
}

type ProcessorType string

// Enum values for ProcessorType
const (
	ProcessorTypeLambda ProcessorType = "Lambda"
)

// Values returns every known ProcessorType.
func (ProcessorType) Values() []ProcessorType {
	return []ProcessorType{
		ProcessorTypeLambda,
	}
}

// ParseProcessorType maps s onto a ProcessorType, failing with a
// *core.EnumError for unknown values.
func ParseProcessorType(s string) (ProcessorType, error) {
	return core.ParseEnum("ProcessorType", s, ProcessorType("").Values())
}

type RedshiftS3BackupMode string

// Enum values for RedshiftS3BackupMode
const (
	RedshiftS3BackupModeDisabled RedshiftS3BackupMode = "Disabled"
	RedshiftS3BackupModeEnabled  RedshiftS3BackupMode = "Enabled"
)

// Values returns every known RedshiftS3BackupMode.
func (RedshiftS3BackupMode) Values() []RedshiftS3BackupMode {
	return []RedshiftS3BackupMode{
		RedshiftS3BackupModeDisabled,
		RedshiftS3BackupModeEnabled,
	}
}

// ParseRedshiftS3BackupMode maps s onto a RedshiftS3BackupMode, failing with
// a *core.EnumError for unknown values.
func ParseRedshiftS3BackupMode(s string) (RedshiftS3BackupMode, error) {
	return core.ParseEnum("RedshiftS3BackupMode", s, RedshiftS3BackupMode("").Values())
}

type S3BackupMode string

// Enum values for S3BackupMode
const (
	S3BackupModeDisabled S3BackupMode = "Disabled"
	S3BackupModeEnabled  S3BackupMode = "Enabled"
)

// Values returns every known S3BackupMode.
func (S3BackupMode) Values() []S3BackupMode {
	return []S3BackupMode{
		S3BackupModeDisabled,
		S3BackupModeEnabled,
	}
}

// ParseS3BackupMode maps s onto a S3BackupMode, failing with a
// *core.EnumError for unknown values.
func ParseS3BackupMode(s string) (S3BackupMode, error) {
	return core.ParseEnum("S3BackupMode", s, S3BackupMode("").Values())
}

type SplunkS3BackupMode string

// Enum values for SplunkS3BackupMode
const (
	SplunkS3BackupModeFailedEventsOnly SplunkS3BackupMode = "FailedEventsOnly"
	SplunkS3BackupModeAllEvents        SplunkS3BackupMode = "AllEvents"
)

// Values returns every known SplunkS3BackupMode.
func (SplunkS3BackupMode) Values() []SplunkS3BackupMode {
	return []SplunkS3BackupMode{
		SplunkS3BackupModeFailedEventsOnly,
		SplunkS3BackupModeAllEvents,
	}
}

// ParseSplunkS3BackupMode maps s onto a SplunkS3BackupMode, failing with a
// *core.EnumError for unknown values.
func ParseSplunkS3BackupMode(s string) (SplunkS3BackupMode, error) {
	return core.ParseEnum("SplunkS3BackupMode", s, SplunkS3BackupMode("").Values())
}
