// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ssm

import "github.com/tfctl/awsctl/core"

type Association struct {
	Name               *string              `json:"Name,omitempty"`
	InstanceId         *string              `json:"InstanceId,omitempty"`
	AssociationId      *string              `json:"AssociationId,omitempty"`
	AssociationVersion *string              `json:"AssociationVersion,omitempty"`
	DocumentVersion    *string              `json:"DocumentVersion,omitempty"`
	Targets            []Target             `json:"Targets,omitempty"`
	LastExecutionDate  *core.Timestamp      `json:"LastExecutionDate,omitempty"`
	Overview           *AssociationOverview `json:"Overview,omitempty"`
	ScheduleExpression *string              `json:"ScheduleExpression,omitempty"`
	AssociationName    *string              `json:"AssociationName,omitempty"`
}

// AssociationDescription is the full state of a State Manager association.
type AssociationDescription struct {
	Name                          *string                            `json:"Name,omitempty"`
	InstanceId                    *string                            `json:"InstanceId,omitempty"`
	AssociationVersion            *string                            `json:"AssociationVersion,omitempty"`
	Date                          *core.Timestamp                    `json:"Date,omitempty"`
	LastUpdateAssociationDate     *core.Timestamp                    `json:"LastUpdateAssociationDate,omitempty"`
	Status                        *AssociationStatus                 `json:"Status,omitempty"`
	Overview                      *AssociationOverview               `json:"Overview,omitempty"`
	DocumentVersion               *string                            `json:"DocumentVersion,omitempty"`
	AutomationTargetParameterName *string                            `json:"AutomationTargetParameterName,omitempty"`
	Parameters                    map[string][]string                `json:"Parameters,omitempty"`
	AssociationId                 *string                            `json:"AssociationId,omitempty"`
	Targets                       []Target                           `json:"Targets,omitempty"`
	ScheduleExpression            *string                            `json:"ScheduleExpression,omitempty"`
	OutputLocation                *InstanceAssociationOutputLocation `json:"OutputLocation,omitempty"`
	LastExecutionDate             *core.Timestamp                    `json:"LastExecutionDate,omitempty"`
	LastSuccessfulExecutionDate   *core.Timestamp                    `json:"LastSuccessfulExecutionDate,omitempty"`
	AssociationName               *string                            `json:"AssociationName,omitempty"`
	MaxErrors                     *string                            `json:"MaxErrors,omitempty"`
	MaxConcurrency                *string                            `json:"MaxConcurrency,omitempty"`
	ComplianceSeverity            AssociationComplianceSeverity      `json:"ComplianceSeverity,omitempty"`
	SyncCompliance                AssociationSyncCompliance          `json:"SyncCompliance,omitempty"`
	ApplyOnlyAtCronInterval       *bool                              `json:"ApplyOnlyAtCronInterval,omitempty"`
}

type AssociationFilter struct {
	Key   AssociationFilterKey `json:"Key,omitempty" required:"true"`
	Value *string              `json:"Value,omitempty" required:"true" min:"1"`
}

type AssociationOverview struct {
	Status                           *string          `json:"Status,omitempty"`
	DetailedStatus                   *string          `json:"DetailedStatus,omitempty"`
	AssociationStatusAggregatedCount map[string]int32 `json:"AssociationStatusAggregatedCount,omitempty"`
}

type AssociationStatus struct {
	Date           *core.Timestamp       `json:"Date,omitempty" required:"true"`
	Name           AssociationStatusName `json:"Name,omitempty" required:"true"`
	Message        *string               `json:"Message,omitempty" required:"true" min:"1" max:"1024"`
	AdditionalInfo *string               `json:"AdditionalInfo,omitempty" max:"1024"`
}

type AttachmentInformation struct {
	Name *string `json:"Name,omitempty"`
}

// AutomationExecution is the detailed state of one automation run, including
// every step executed so far.
type AutomationExecution struct {
	AutomationExecutionId       *string                   `json:"AutomationExecutionId,omitempty"`
	DocumentName                *string                   `json:"DocumentName,omitempty"`
	DocumentVersion             *string                   `json:"DocumentVersion,omitempty"`
	ExecutionStartTime          *core.Timestamp           `json:"ExecutionStartTime,omitempty"`
	ExecutionEndTime            *core.Timestamp           `json:"ExecutionEndTime,omitempty"`
	AutomationExecutionStatus   AutomationExecutionStatus `json:"AutomationExecutionStatus,omitempty"`
	StepExecutions              []StepExecution           `json:"StepExecutions,omitempty"`
	StepExecutionsTruncated     *bool                     `json:"StepExecutionsTruncated,omitempty"`
	Parameters                  map[string][]string       `json:"Parameters,omitempty"`
	Outputs                     map[string][]string       `json:"Outputs,omitempty"`
	FailureMessage              *string                   `json:"FailureMessage,omitempty"`
	Mode                        ExecutionMode             `json:"Mode,omitempty"`
	ParentAutomationExecutionId *string                   `json:"ParentAutomationExecutionId,omitempty"`
	ExecutedBy                  *string                   `json:"ExecutedBy,omitempty"`
	CurrentStepName             *string                   `json:"CurrentStepName,omitempty"`
	CurrentAction               *string                   `json:"CurrentAction,omitempty"`
	TargetParameterName         *string                   `json:"TargetParameterName,omitempty"`
	Targets                     []Target                  `json:"Targets,omitempty"`
	TargetMaps                  []map[string][]string     `json:"TargetMaps,omitempty"`
	ResolvedTargets             *ResolvedTargets          `json:"ResolvedTargets,omitempty"`
	MaxConcurrency              *string                   `json:"MaxConcurrency,omitempty"`
	MaxErrors                   *string                   `json:"MaxErrors,omitempty"`
	Target                      *string                   `json:"Target,omitempty"`
	TargetLocations             []TargetLocation          `json:"TargetLocations,omitempty"`
	ProgressCounters            *ProgressCounters         `json:"ProgressCounters,omitempty"`
}

type AutomationExecutionFilter struct {
	Key    AutomationExecutionFilterKey `json:"Key,omitempty" required:"true"`
	Values []string                     `json:"Values,omitempty" required:"true" min:"1" max:"10"`
}

type AutomationExecutionMetadata struct {
	AutomationExecutionId       *string                   `json:"AutomationExecutionId,omitempty"`
	DocumentName                *string                   `json:"DocumentName,omitempty"`
	DocumentVersion             *string                   `json:"DocumentVersion,omitempty"`
	AutomationExecutionStatus   AutomationExecutionStatus `json:"AutomationExecutionStatus,omitempty"`
	ExecutionStartTime          *core.Timestamp           `json:"ExecutionStartTime,omitempty"`
	ExecutionEndTime            *core.Timestamp           `json:"ExecutionEndTime,omitempty"`
	ExecutedBy                  *string                   `json:"ExecutedBy,omitempty"`
	LogFile                     *string                   `json:"LogFile,omitempty"`
	Outputs                     map[string][]string       `json:"Outputs,omitempty"`
	Mode                        ExecutionMode             `json:"Mode,omitempty"`
	ParentAutomationExecutionId *string                   `json:"ParentAutomationExecutionId,omitempty"`
	CurrentStepName             *string                   `json:"CurrentStepName,omitempty"`
	CurrentAction               *string                   `json:"CurrentAction,omitempty"`
	FailureMessage              *string                   `json:"FailureMessage,omitempty"`
	TargetParameterName         *string                   `json:"TargetParameterName,omitempty"`
	Targets                     []Target                  `json:"Targets,omitempty"`
	TargetMaps                  []map[string][]string     `json:"TargetMaps,omitempty"`
	ResolvedTargets             *ResolvedTargets          `json:"ResolvedTargets,omitempty"`
	MaxConcurrency              *string                   `json:"MaxConcurrency,omitempty"`
	MaxErrors                   *string                   `json:"MaxErrors,omitempty"`
	Target                      *string                   `json:"Target,omitempty"`
	AutomationType              AutomationType            `json:"AutomationType,omitempty"`
}

type CloudWatchOutputConfig struct {
	CloudWatchLogGroupName  *string `json:"CloudWatchLogGroupName,omitempty" min:"1" max:"512"`
	CloudWatchOutputEnabled *bool   `json:"CloudWatchOutputEnabled,omitempty"`
}

// Command is a Run Command request and its aggregate progress across all
// targeted instances.
type Command struct {
	CommandId              *string                 `json:"CommandId,omitempty"`
	DocumentName           *string                 `json:"DocumentName,omitempty"`
	DocumentVersion        *string                 `json:"DocumentVersion,omitempty"`
	Comment                *string                 `json:"Comment,omitempty"`
	ExpiresAfter           *core.Timestamp         `json:"ExpiresAfter,omitempty"`
	Parameters             map[string][]string     `json:"Parameters,omitempty"`
	InstanceIds            []string                `json:"InstanceIds,omitempty"`
	Targets                []Target                `json:"Targets,omitempty"`
	RequestedDateTime      *core.Timestamp         `json:"RequestedDateTime,omitempty"`
	Status                 CommandStatus           `json:"Status,omitempty"`
	StatusDetails          *string                 `json:"StatusDetails,omitempty"`
	OutputS3Region         *string                 `json:"OutputS3Region,omitempty"`
	OutputS3BucketName     *string                 `json:"OutputS3BucketName,omitempty"`
	OutputS3KeyPrefix      *string                 `json:"OutputS3KeyPrefix,omitempty"`
	MaxConcurrency         *string                 `json:"MaxConcurrency,omitempty"`
	MaxErrors              *string                 `json:"MaxErrors,omitempty"`
	TargetCount            *int32                  `json:"TargetCount,omitempty"`
	CompletedCount         *int32                  `json:"CompletedCount,omitempty"`
	ErrorCount             *int32                  `json:"ErrorCount,omitempty"`
	DeliveryTimedOutCount  *int32                  `json:"DeliveryTimedOutCount,omitempty"`
	ServiceRole            *string                 `json:"ServiceRole,omitempty"`
	NotificationConfig     *NotificationConfig     `json:"NotificationConfig,omitempty"`
	CloudWatchOutputConfig *CloudWatchOutputConfig `json:"CloudWatchOutputConfig,omitempty"`
	TimeoutSeconds         *int32                  `json:"TimeoutSeconds,omitempty"`
}

type CommandFilter struct {
	Key   CommandFilterKey `json:"Key,omitempty" required:"true"`
	Value *string          `json:"Value,omitempty" required:"true" min:"1" max:"128"`
}

// CommandInvocation is the state of a command on one instance.
type CommandInvocation struct {
	CommandId              *string                 `json:"CommandId,omitempty"`
	InstanceId             *string                 `json:"InstanceId,omitempty"`
	InstanceName           *string                 `json:"InstanceName,omitempty"`
	Comment                *string                 `json:"Comment,omitempty"`
	DocumentName           *string                 `json:"DocumentName,omitempty"`
	DocumentVersion        *string                 `json:"DocumentVersion,omitempty"`
	RequestedDateTime      *core.Timestamp         `json:"RequestedDateTime,omitempty"`
	Status                 CommandInvocationStatus `json:"Status,omitempty"`
	StatusDetails          *string                 `json:"StatusDetails,omitempty"`
	TraceOutput            *string                 `json:"TraceOutput,omitempty"`
	StandardOutputUrl      *string                 `json:"StandardOutputUrl,omitempty"`
	StandardErrorUrl       *string                 `json:"StandardErrorUrl,omitempty"`
	CommandPlugins         []CommandPlugin         `json:"CommandPlugins,omitempty"`
	ServiceRole            *string                 `json:"ServiceRole,omitempty"`
	NotificationConfig     *NotificationConfig     `json:"NotificationConfig,omitempty"`
	CloudWatchOutputConfig *CloudWatchOutputConfig `json:"CloudWatchOutputConfig,omitempty"`
}

// CommandPlugin is the output of one document step on one instance.
type CommandPlugin struct {
	Name                   *string             `json:"Name,omitempty"`
	Status                 CommandPluginStatus `json:"Status,omitempty"`
	StatusDetails          *string             `json:"StatusDetails,omitempty"`
	ResponseCode           *int32              `json:"ResponseCode,omitempty"`
	ResponseStartDateTime  *core.Timestamp     `json:"ResponseStartDateTime,omitempty"`
	ResponseFinishDateTime *core.Timestamp     `json:"ResponseFinishDateTime,omitempty"`
	Output                 *string             `json:"Output,omitempty"`
	StandardOutputUrl      *string             `json:"StandardOutputUrl,omitempty"`
	StandardErrorUrl       *string             `json:"StandardErrorUrl,omitempty"`
	OutputS3Region         *string             `json:"OutputS3Region,omitempty"`
	OutputS3BucketName     *string             `json:"OutputS3BucketName,omitempty"`
	OutputS3KeyPrefix      *string             `json:"OutputS3KeyPrefix,omitempty"`
}

type CreateAssociationBatchRequestEntry struct {
	Name                          *string                            `json:"Name,omitempty" required:"true"`
	InstanceId                    *string                            `json:"InstanceId,omitempty"`
	Parameters                    map[string][]string                `json:"Parameters,omitempty"`
	AutomationTargetParameterName *string                            `json:"AutomationTargetParameterName,omitempty" min:"1" max:"50"`
	DocumentVersion               *string                            `json:"DocumentVersion,omitempty"`
	Targets                       []Target                           `json:"Targets,omitempty" max:"5"`
	ScheduleExpression            *string                            `json:"ScheduleExpression,omitempty" min:"1" max:"256"`
	OutputLocation                *InstanceAssociationOutputLocation `json:"OutputLocation,omitempty"`
	AssociationName               *string                            `json:"AssociationName,omitempty"`
	MaxErrors                     *string                            `json:"MaxErrors,omitempty" min:"1" max:"7"`
	MaxConcurrency                *string                            `json:"MaxConcurrency,omitempty" min:"1" max:"7"`
	ComplianceSeverity            AssociationComplianceSeverity      `json:"ComplianceSeverity,omitempty"`
	SyncCompliance                AssociationSyncCompliance          `json:"SyncCompliance,omitempty"`
	ApplyOnlyAtCronInterval       *bool                              `json:"ApplyOnlyAtCronInterval,omitempty"`
}

// DocumentDescription describes one version of an SSM document.
type DocumentDescription struct {
	Sha1                   *string                 `json:"Sha1,omitempty"`
	Hash                   *string                 `json:"Hash,omitempty"`
	HashType               DocumentHashType        `json:"HashType,omitempty"`
	Name                   *string                 `json:"Name,omitempty"`
	VersionName            *string                 `json:"VersionName,omitempty"`
	Owner                  *string                 `json:"Owner,omitempty"`
	CreatedDate            *core.Timestamp         `json:"CreatedDate,omitempty"`
	Status                 DocumentStatus          `json:"Status,omitempty"`
	StatusInformation      *string                 `json:"StatusInformation,omitempty"`
	DocumentVersion        *string                 `json:"DocumentVersion,omitempty"`
	Description            *string                 `json:"Description,omitempty"`
	Parameters             []DocumentParameter     `json:"Parameters,omitempty"`
	PlatformTypes          []PlatformType          `json:"PlatformTypes,omitempty"`
	DocumentType           DocumentType            `json:"DocumentType,omitempty"`
	SchemaVersion          *string                 `json:"SchemaVersion,omitempty"`
	LatestVersion          *string                 `json:"LatestVersion,omitempty"`
	DefaultVersion         *string                 `json:"DefaultVersion,omitempty"`
	DocumentFormat         DocumentFormat          `json:"DocumentFormat,omitempty"`
	TargetType             *string                 `json:"TargetType,omitempty"`
	Tags                   []Tag                   `json:"Tags,omitempty"`
	AttachmentsInformation []AttachmentInformation `json:"AttachmentsInformation,omitempty"`
	Requires               []DocumentRequires      `json:"Requires,omitempty"`
}

// DocumentFilter is the legacy ListDocuments filter; its members are lower
// case on the wire.
type DocumentFilter struct {
	Key   DocumentFilterKey `json:"key,omitempty" required:"true"`
	Value *string           `json:"value,omitempty" required:"true" min:"1"`
}

type DocumentIdentifier struct {
	Name            *string            `json:"Name,omitempty"`
	Owner           *string            `json:"Owner,omitempty"`
	VersionName     *string            `json:"VersionName,omitempty"`
	PlatformTypes   []PlatformType     `json:"PlatformTypes,omitempty"`
	DocumentVersion *string            `json:"DocumentVersion,omitempty"`
	DocumentType    DocumentType       `json:"DocumentType,omitempty"`
	SchemaVersion   *string            `json:"SchemaVersion,omitempty"`
	DocumentFormat  DocumentFormat     `json:"DocumentFormat,omitempty"`
	TargetType      *string            `json:"TargetType,omitempty"`
	Tags            []Tag              `json:"Tags,omitempty"`
	Requires        []DocumentRequires `json:"Requires,omitempty"`
}

type DocumentKeyValuesFilter struct {
	Key    *string  `json:"Key,omitempty" min:"1" max:"128"`
	Values []string `json:"Values,omitempty"`
}

type DocumentParameter struct {
	Name         *string               `json:"Name,omitempty"`
	Type         DocumentParameterType `json:"Type,omitempty"`
	Description  *string               `json:"Description,omitempty"`
	DefaultValue *string               `json:"DefaultValue,omitempty"`
}

type DocumentRequires struct {
	Name    *string `json:"Name,omitempty" required:"true"`
	Version *string `json:"Version,omitempty"`
}

type FailedCreateAssociation struct {
	Entry   *CreateAssociationBatchRequestEntry `json:"Entry,omitempty"`
	Message *string                             `json:"Message,omitempty"`
	Fault   Fault                               `json:"Fault,omitempty"`
}

type FailureDetails struct {
	FailureStage *string             `json:"FailureStage,omitempty"`
	FailureType  *string             `json:"FailureType,omitempty"`
	Details      map[string][]string `json:"Details,omitempty"`
}

type InstanceAssociationOutputLocation struct {
	S3Location *S3OutputLocation `json:"S3Location,omitempty"`
}

type NotificationConfig struct {
	NotificationArn    *string             `json:"NotificationArn,omitempty"`
	NotificationEvents []NotificationEvent `json:"NotificationEvents,omitempty"`
	NotificationType   NotificationType    `json:"NotificationType,omitempty"`
}

// Parameter is a Parameter Store value. SecureString values are only plain
// text when requested WithDecryption.
type Parameter struct {
	Name             *string         `json:"Name,omitempty"`
	Type             ParameterType   `json:"Type,omitempty"`
	Value            *string         `json:"Value,omitempty"`
	Version          *int64          `json:"Version,omitempty"`
	Selector         *string         `json:"Selector,omitempty"`
	SourceResult     *string         `json:"SourceResult,omitempty"`
	LastModifiedDate *core.Timestamp `json:"LastModifiedDate,omitempty"`
	ARN              *string         `json:"ARN,omitempty"`
	DataType         *string         `json:"DataType,omitempty"`
}

type ParameterHistory struct {
	Name             *string                 `json:"Name,omitempty"`
	Type             ParameterType           `json:"Type,omitempty"`
	KeyId            *string                 `json:"KeyId,omitempty"`
	LastModifiedDate *core.Timestamp         `json:"LastModifiedDate,omitempty"`
	LastModifiedUser *string                 `json:"LastModifiedUser,omitempty"`
	Description      *string                 `json:"Description,omitempty"`
	Value            *string                 `json:"Value,omitempty"`
	AllowedPattern   *string                 `json:"AllowedPattern,omitempty"`
	Version          *int64                  `json:"Version,omitempty"`
	Labels           []string                `json:"Labels,omitempty"`
	Tier             ParameterTier           `json:"Tier,omitempty"`
	Policies         []ParameterInlinePolicy `json:"Policies,omitempty"`
	DataType         *string                 `json:"DataType,omitempty"`
}

type ParameterInlinePolicy struct {
	PolicyText   *string `json:"PolicyText,omitempty"`
	PolicyType   *string `json:"PolicyType,omitempty"`
	PolicyStatus *string `json:"PolicyStatus,omitempty"`
}

type ParameterMetadata struct {
	Name             *string                 `json:"Name,omitempty"`
	Type             ParameterType           `json:"Type,omitempty"`
	KeyId            *string                 `json:"KeyId,omitempty"`
	LastModifiedDate *core.Timestamp         `json:"LastModifiedDate,omitempty"`
	LastModifiedUser *string                 `json:"LastModifiedUser,omitempty"`
	Description      *string                 `json:"Description,omitempty"`
	AllowedPattern   *string                 `json:"AllowedPattern,omitempty"`
	Version          *int64                  `json:"Version,omitempty"`
	Tier             ParameterTier           `json:"Tier,omitempty"`
	Policies         []ParameterInlinePolicy `json:"Policies,omitempty"`
	DataType         *string                 `json:"DataType,omitempty"`
}

type ParametersFilter struct {
	Key    ParametersFilterKey `json:"Key,omitempty" required:"true"`
	Values []string            `json:"Values,omitempty" required:"true" min:"1" max:"50"`
}

// ParameterStringFilter filters parameters by Key, which is a metadata name
// such as Type or Path, or a tag as "tag:<key>".
type ParameterStringFilter struct {
	Key    *string  `json:"Key,omitempty" required:"true" min:"1" max:"132"`
	Option *string  `json:"Option,omitempty" min:"1" max:"10"`
	Values []string `json:"Values,omitempty" min:"1" max:"50"`
}

type ProgressCounters struct {
	TotalSteps     *int32 `json:"TotalSteps,omitempty"`
	SuccessSteps   *int32 `json:"SuccessSteps,omitempty"`
	FailedSteps    *int32 `json:"FailedSteps,omitempty"`
	CancelledSteps *int32 `json:"CancelledSteps,omitempty"`
	TimedOutSteps  *int32 `json:"TimedOutSteps,omitempty"`
}

type ResolvedTargets struct {
	ParameterValues []string `json:"ParameterValues,omitempty"`
	Truncated       *bool    `json:"Truncated,omitempty"`
}

type S3OutputLocation struct {
	OutputS3Region     *string `json:"OutputS3Region,omitempty" min:"3" max:"20"`
	OutputS3BucketName *string `json:"OutputS3BucketName,omitempty" min:"3" max:"63"`
	OutputS3KeyPrefix  *string `json:"OutputS3KeyPrefix,omitempty" max:"500"`
}

type StepExecution struct {
	StepName             *string                   `json:"StepName,omitempty"`
	Action               *string                   `json:"Action,omitempty"`
	TimeoutSeconds       *int64                    `json:"TimeoutSeconds,omitempty"`
	OnFailure            *string                   `json:"OnFailure,omitempty"`
	MaxAttempts          *int32                    `json:"MaxAttempts,omitempty"`
	ExecutionStartTime   *core.Timestamp           `json:"ExecutionStartTime,omitempty"`
	ExecutionEndTime     *core.Timestamp           `json:"ExecutionEndTime,omitempty"`
	StepStatus           AutomationExecutionStatus `json:"StepStatus,omitempty"`
	ResponseCode         *string                   `json:"ResponseCode,omitempty"`
	Inputs               map[string]string         `json:"Inputs,omitempty"`
	Outputs              map[string][]string       `json:"Outputs,omitempty"`
	Response             *string                   `json:"Response,omitempty"`
	FailureMessage       *string                   `json:"FailureMessage,omitempty"`
	FailureDetails       *FailureDetails           `json:"FailureDetails,omitempty"`
	StepExecutionId      *string                   `json:"StepExecutionId,omitempty"`
	OverriddenParameters map[string][]string       `json:"OverriddenParameters,omitempty"`
	IsEnd                *bool                     `json:"IsEnd,omitempty"`
	NextStep             *string                   `json:"NextStep,omitempty"`
	IsCritical           *bool                     `json:"IsCritical,omitempty"`
	ValidNextSteps       []string                  `json:"ValidNextSteps,omitempty"`
	Targets              []Target                  `json:"Targets,omitempty"`
	TargetLocation       *TargetLocation           `json:"TargetLocation,omitempty"`
}

type Tag struct {
	Key   *string `json:"Key,omitempty" required:"true" min:"1" max:"128"`
	Value *string `json:"Value,omitempty" required:"true" max:"256"`
}

// Target selects instances by tag ("tag:<key>"), by resource group or by
// instance id ("InstanceIds").
type Target struct {
	Key    *string  `json:"Key,omitempty" min:"1" max:"163"`
	Values []string `json:"Values,omitempty" max:"50"`
}

type TargetLocation struct {
	Accounts                     []string `json:"Accounts,omitempty" min:"1" max:"50"`
	Regions                      []string `json:"Regions,omitempty" min:"1" max:"50"`
	TargetLocationMaxConcurrency *string  `json:"TargetLocationMaxConcurrency,omitempty" min:"1" max:"7"`
	TargetLocationMaxErrors      *string  `json:"TargetLocationMaxErrors,omitempty" min:"1" max:"7"`
	ExecutionRoleName            *string  `json:"ExecutionRoleName,omitempty" min:"1" max:"64"`
}
