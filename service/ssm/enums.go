// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ssm

import "github.com/tfctl/awsctl/core"

type AssociationComplianceSeverity string

// Enum values for AssociationComplianceSeverity
const (
	AssociationComplianceSeverityCritical    AssociationComplianceSeverity = "CRITICAL"
	AssociationComplianceSeverityHigh        AssociationComplianceSeverity = "HIGH"
	AssociationComplianceSeverityMedium      AssociationComplianceSeverity = "MEDIUM"
	AssociationComplianceSeverityLow         AssociationComplianceSeverity = "LOW"
	AssociationComplianceSeverityUnspecified AssociationComplianceSeverity = "UNSPECIFIED"
)

// Values returns every known AssociationComplianceSeverity.
func (AssociationComplianceSeverity) Values() []AssociationComplianceSeverity {
	return []AssociationComplianceSeverity{
		AssociationComplianceSeverityCritical,
		AssociationComplianceSeverityHigh,
		AssociationComplianceSeverityMedium,
		AssociationComplianceSeverityLow,
		AssociationComplianceSeverityUnspecified,
	}
}

// ParseAssociationComplianceSeverity maps s onto a
// AssociationComplianceSeverity, failing with a *core.EnumError for unknown
// values.
func ParseAssociationComplianceSeverity(s string) (AssociationComplianceSeverity, error) {
	return core.ParseEnum("AssociationComplianceSeverity", s, AssociationComplianceSeverity("").Values())
}

type AssociationFilterKey string

// Enum values for AssociationFilterKey
const (
	AssociationFilterKeyInstanceId            AssociationFilterKey = "InstanceId"
	AssociationFilterKeyName                  AssociationFilterKey = "Name"
	AssociationFilterKeyAssociationId         AssociationFilterKey = "AssociationId"
	AssociationFilterKeyAssociationStatusName AssociationFilterKey = "AssociationStatusName"
	AssociationFilterKeyLastExecutedBefore    AssociationFilterKey = "LastExecutedBefore"
	AssociationFilterKeyLastExecutedAfter     AssociationFilterKey = "LastExecutedAfter"
	AssociationFilterKeyAssociationName       AssociationFilterKey = "AssociationName"
	AssociationFilterKeyResourceGroupName     AssociationFilterKey = "ResourceGroupName"
)

// Values returns every known AssociationFilterKey.
func (AssociationFilterKey) Values() []AssociationFilterKey {
	return []AssociationFilterKey{
		AssociationFilterKeyInstanceId,
		AssociationFilterKeyName,
		AssociationFilterKeyAssociationId,
		AssociationFilterKeyAssociationStatusName,
		AssociationFilterKeyLastExecutedBefore,
		AssociationFilterKeyLastExecutedAfter,
		AssociationFilterKeyAssociationName,
		AssociationFilterKeyResourceGroupName,
	}
}

// ParseAssociationFilterKey maps s onto a AssociationFilterKey, failing with
// a *core.EnumError for unknown values.
func ParseAssociationFilterKey(s string) (AssociationFilterKey, error) {
	return core.ParseEnum("AssociationFilterKey", s, AssociationFilterKey("").Values())
}

type AssociationStatusName string

// Enum values for AssociationStatusName
const (
	AssociationStatusNamePending AssociationStatusName = "Pending"
	AssociationStatusNameSuccess AssociationStatusName = "Success"
	AssociationStatusNameFailed  AssociationStatusName = "Failed"
)

// Values returns every known AssociationStatusName.
func (AssociationStatusName) Values() []AssociationStatusName {
	return []AssociationStatusName{
		AssociationStatusNamePending,
		AssociationStatusNameSuccess,
		AssociationStatusNameFailed,
	}
}

// ParseAssociationStatusName maps s onto a AssociationStatusName, failing
// with a *core.EnumError for unknown values.
func ParseAssociationStatusName(s string) (AssociationStatusName, error) {
	return core.ParseEnum("AssociationStatusName", s, AssociationStatusName("").Values())
}

type AssociationSyncCompliance string

// Enum values for AssociationSyncCompliance
const (
	AssociationSyncComplianceAuto   AssociationSyncCompliance = "AUTO"
	AssociationSyncComplianceManual AssociationSyncCompliance = "MANUAL"
)

// Values returns every known AssociationSyncCompliance.
func (AssociationSyncCompliance) Values() []AssociationSyncCompliance {
	return []AssociationSyncCompliance{
		AssociationSyncComplianceAuto,
		AssociationSyncComplianceManual,
	}
}

// ParseAssociationSyncCompliance maps s onto a AssociationSyncCompliance,
// failing with a *core.EnumError for unknown values.
func ParseAssociationSyncCompliance(s string) (AssociationSyncCompliance, error) {
	return core.ParseEnum("AssociationSyncCompliance", s, AssociationSyncCompliance("").Values())
}

type AutomationExecutionFilterKey string

// Enum values for AutomationExecutionFilterKey
const (
	AutomationExecutionFilterKeyDocumentNamePrefix AutomationExecutionFilterKey = "DocumentNamePrefix"
	AutomationExecutionFilterKeyExecutionStatus    AutomationExecutionFilterKey = "ExecutionStatus"
	AutomationExecutionFilterKeyExecutionId        AutomationExecutionFilterKey = "ExecutionId"
	AutomationExecutionFilterKeyParentExecutionId  AutomationExecutionFilterKey = "ParentExecutionId"
	AutomationExecutionFilterKeyCurrentAction      AutomationExecutionFilterKey = "CurrentAction"
	AutomationExecutionFilterKeyStartTimeBefore    AutomationExecutionFilterKey = "StartTimeBefore"
	AutomationExecutionFilterKeyStartTimeAfter     AutomationExecutionFilterKey = "StartTimeAfter"
	AutomationExecutionFilterKeyAutomationType     AutomationExecutionFilterKey = "AutomationType"
)

// Values returns every known AutomationExecutionFilterKey.
func (AutomationExecutionFilterKey) Values() []AutomationExecutionFilterKey {
	return []AutomationExecutionFilterKey{
		AutomationExecutionFilterKeyDocumentNamePrefix,
		AutomationExecutionFilterKeyExecutionStatus,
		AutomationExecutionFilterKeyExecutionId,
		AutomationExecutionFilterKeyParentExecutionId,
		AutomationExecutionFilterKeyCurrentAction,
		AutomationExecutionFilterKeyStartTimeBefore,
		AutomationExecutionFilterKeyStartTimeAfter,
		AutomationExecutionFilterKeyAutomationType,
	}
}

// ParseAutomationExecutionFilterKey maps s onto a
// AutomationExecutionFilterKey, failing with a *core.EnumError for unknown
// values.
func ParseAutomationExecutionFilterKey(s string) (AutomationExecutionFilterKey, error) {
	return core.ParseEnum("AutomationExecutionFilterKey", s, AutomationExecutionFilterKey("").Values())
}

type AutomationExecutionStatus string

// Enum values for AutomationExecutionStatus
const (
	AutomationExecutionStatusPending    AutomationExecutionStatus = "Pending"
	AutomationExecutionStatusInProgress AutomationExecutionStatus = "InProgress"
	AutomationExecutionStatusWaiting    AutomationExecutionStatus = "Waiting"
	AutomationExecutionStatusSuccess    AutomationExecutionStatus = "Success"
	AutomationExecutionStatusTimedOut   AutomationExecutionStatus = "TimedOut"
	AutomationExecutionStatusCancelling AutomationExecutionStatus = "Cancelling"
	AutomationExecutionStatusCancelled  AutomationExecutionStatus = "Cancelled"
	AutomationExecutionStatusFailed     AutomationExecutionStatus = "Failed"
)

// Values returns every known AutomationExecutionStatus.
func (AutomationExecutionStatus) Values() []AutomationExecutionStatus {
	return []AutomationExecutionStatus{
		AutomationExecutionStatusPending,
		AutomationExecutionStatusInProgress,
		AutomationExecutionStatusWaiting,
		AutomationExecutionStatusSuccess,
		AutomationExecutionStatusTimedOut,
		AutomationExecutionStatusCancelling,
		AutomationExecutionStatusCancelled,
		AutomationExecutionStatusFailed,
	}
}

// ParseAutomationExecutionStatus maps s onto a AutomationExecutionStatus,
// failing with a *core.EnumError for unknown values.
func ParseAutomationExecutionStatus(s string) (AutomationExecutionStatus, error) {
	return core.ParseEnum("AutomationExecutionStatus", s, AutomationExecutionStatus("").Values())
}

type AutomationType string

// Enum values for AutomationType
const (
	AutomationTypeCrossAccount AutomationType = "CrossAccount"
	AutomationTypeLocal        AutomationType = "Local"
)

// Values returns every known AutomationType.
func (AutomationType) Values() []AutomationType {
	return []AutomationType{
		AutomationTypeCrossAccount,
		AutomationTypeLocal,
	}
}

// ParseAutomationType maps s onto a AutomationType, failing with a
// *core.EnumError for unknown values.
func ParseAutomationType(s string) (AutomationType, error) {
	return core.ParseEnum("AutomationType", s, AutomationType("").Values())
}

type CommandFilterKey string

// Enum values for CommandFilterKey
const (
	CommandFilterKeyInvokedAfter   CommandFilterKey = "InvokedAfter"
	CommandFilterKeyInvokedBefore  CommandFilterKey = "InvokedBefore"
	CommandFilterKeyStatus         CommandFilterKey = "Status"
	CommandFilterKeyExecutionStage CommandFilterKey = "ExecutionStage"
	CommandFilterKeyDocumentName   CommandFilterKey = "DocumentName"
)

// Values returns every known CommandFilterKey.
func (CommandFilterKey) Values() []CommandFilterKey {
	return []CommandFilterKey{
		CommandFilterKeyInvokedAfter,
		CommandFilterKeyInvokedBefore,
		CommandFilterKeyStatus,
		CommandFilterKeyExecutionStage,
		CommandFilterKeyDocumentName,
	}
}

// ParseCommandFilterKey maps s onto a CommandFilterKey, failing with a
// *core.EnumError for unknown values.
func ParseCommandFilterKey(s string) (CommandFilterKey, error) {
	return core.ParseEnum("CommandFilterKey", s, CommandFilterKey("").Values())
}

type CommandInvocationStatus string

// Enum values for CommandInvocationStatus
const (
	CommandInvocationStatusPending    CommandInvocationStatus = "Pending"
	CommandInvocationStatusInProgress CommandInvocationStatus = "InProgress"
	CommandInvocationStatusDelayed    CommandInvocationStatus = "Delayed"
	CommandInvocationStatusSuccess    CommandInvocationStatus = "Success"
	CommandInvocationStatusCancelled  CommandInvocationStatus = "Cancelled"
	CommandInvocationStatusTimedOut   CommandInvocationStatus = "TimedOut"
	CommandInvocationStatusFailed     CommandInvocationStatus = "Failed"
	CommandInvocationStatusCancelling CommandInvocationStatus = "Cancelling"
)

// Values returns every known CommandInvocationStatus.
func (CommandInvocationStatus) Values() []CommandInvocationStatus {
	return []CommandInvocationStatus{
		CommandInvocationStatusPending,
		CommandInvocationStatusInProgress,
		CommandInvocationStatusDelayed,
		CommandInvocationStatusSuccess,
		CommandInvocationStatusCancelled,
		CommandInvocationStatusTimedOut,
		CommandInvocationStatusFailed,
		CommandInvocationStatusCancelling,
	}
}

// ParseCommandInvocationStatus maps s onto a CommandInvocationStatus, failing
// with a *core.EnumError for unknown values.
func ParseCommandInvocationStatus(s string) (CommandInvocationStatus, error) {
	return core.ParseEnum("CommandInvocationStatus", s, CommandInvocationStatus("").Values())
}

type CommandPluginStatus string

// Enum values for CommandPluginStatus
const (
	CommandPluginStatusPending    CommandPluginStatus = "Pending"
	CommandPluginStatusInProgress CommandPluginStatus = "InProgress"
	CommandPluginStatusSuccess    CommandPluginStatus = "Success"
	CommandPluginStatusTimedOut   CommandPluginStatus = "TimedOut"
	CommandPluginStatusCancelled  CommandPluginStatus = "Cancelled"
	CommandPluginStatusFailed     CommandPluginStatus = "Failed"
)

// Values returns every known CommandPluginStatus.
func (CommandPluginStatus) Values() []CommandPluginStatus {
	return []CommandPluginStatus{
		CommandPluginStatusPending,
		CommandPluginStatusInProgress,
		CommandPluginStatusSuccess,
		CommandPluginStatusTimedOut,
		CommandPluginStatusCancelled,
		CommandPluginStatusFailed,
	}
}

// ParseCommandPluginStatus maps s onto a CommandPluginStatus, failing with a
// *core.EnumError for unknown values.
func ParseCommandPluginStatus(s string) (CommandPluginStatus, error) {
	return core.ParseEnum("CommandPluginStatus", s, CommandPluginStatus("").Values())
}

// CommandStatus is the aggregate state of a command. Success, Cancelled,
// Failed and TimedOut are terminal.
type CommandStatus string

// Enum values for CommandStatus
const (
	CommandStatusPending    CommandStatus = "Pending"
	CommandStatusInProgress CommandStatus = "InProgress"
	CommandStatusSuccess    CommandStatus = "Success"
	CommandStatusCancelled  CommandStatus = "Cancelled"
	CommandStatusFailed     CommandStatus = "Failed"
	CommandStatusTimedOut   CommandStatus = "TimedOut"
	CommandStatusCancelling CommandStatus = "Cancelling"
)

// Values returns every known CommandStatus.
func (CommandStatus) Values() []CommandStatus {
	return []CommandStatus{
		CommandStatusPending,
		CommandStatusInProgress,
		CommandStatusSuccess,
		CommandStatusCancelled,
		CommandStatusFailed,
		CommandStatusTimedOut,
		CommandStatusCancelling,
	}
}

// ParseCommandStatus maps s onto a CommandStatus, failing with a
// *core.EnumError for unknown values.
func ParseCommandStatus(s string) (CommandStatus, error) {
	return core.ParseEnum("CommandStatus", s, CommandStatus("").Values())
}

type DocumentFilterKey string

// Enum values for DocumentFilterKey
const (
	DocumentFilterKeyName          DocumentFilterKey = "Name"
	DocumentFilterKeyOwner         DocumentFilterKey = "Owner"
	DocumentFilterKeyPlatformTypes DocumentFilterKey = "PlatformTypes"
	DocumentFilterKeyDocumentType  DocumentFilterKey = "DocumentType"
)

// Values returns every known DocumentFilterKey.
func (DocumentFilterKey) Values() []DocumentFilterKey {
	return []DocumentFilterKey{
		DocumentFilterKeyName,
		DocumentFilterKeyOwner,
		DocumentFilterKeyPlatformTypes,
		DocumentFilterKeyDocumentType,
	}
}

// ParseDocumentFilterKey maps s onto a DocumentFilterKey, failing with a
// *core.EnumError for unknown values.
func ParseDocumentFilterKey(s string) (DocumentFilterKey, error) {
	return core.ParseEnum("DocumentFilterKey", s, DocumentFilterKey("").Values())
}

type DocumentFormat string

// Enum values for DocumentFormat
const (
	DocumentFormatYaml DocumentFormat = "YAML"
	DocumentFormatJson DocumentFormat = "JSON"
	DocumentFormatText DocumentFormat = "TEXT"
)

// Values returns every known DocumentFormat.
func (DocumentFormat) Values() []DocumentFormat {
	return []DocumentFormat{
		DocumentFormatYaml,
		DocumentFormatJson,
		DocumentFormatText,
	}
}

// ParseDocumentFormat maps s onto a DocumentFormat, failing with a
// *core.EnumError for unknown values.
func ParseDocumentFormat(s string) (DocumentFormat, error) {
	return core.ParseEnum("DocumentFormat", s, DocumentFormat("").Values())
}

type DocumentHashType string

// Enum values for DocumentHashType
const (
	DocumentHashTypeSha256 DocumentHashType = "Sha256"
	DocumentHashTypeSha1   DocumentHashType = "Sha1"
)

// Values returns every known DocumentHashType.
func (DocumentHashType) Values() []DocumentHashType {
	return []DocumentHashType{
		DocumentHashTypeSha256,
		DocumentHashTypeSha1,
	}
}

// ParseDocumentHashType maps s onto a DocumentHashType, failing with a
// *core.EnumError for unknown values.
func ParseDocumentHashType(s string) (DocumentHashType, error) {
	return core.ParseEnum("DocumentHashType", s, DocumentHashType("").Values())
}

type DocumentParameterType string

// Enum values for DocumentParameterType
const (
	DocumentParameterTypeString     DocumentParameterType = "String"
	DocumentParameterTypeStringList DocumentParameterType = "StringList"
)

// Values returns every known DocumentParameterType.
func (DocumentParameterType) Values() []DocumentParameterType {
	return []DocumentParameterType{
		DocumentParameterTypeString,
		DocumentParameterTypeStringList,
	}
}

// ParseDocumentParameterType maps s onto a DocumentParameterType, failing
// with a *core.EnumError for unknown values.
func ParseDocumentParameterType(s string) (DocumentParameterType, error) {
	return core.ParseEnum("DocumentParameterType", s, DocumentParameterType("").Values())
}

type DocumentStatus string

// Enum values for DocumentStatus
const (
	DocumentStatusCreating DocumentStatus = "Creating"
	DocumentStatusActive   DocumentStatus = "Active"
	DocumentStatusUpdating DocumentStatus = "Updating"
	DocumentStatusDeleting DocumentStatus = "Deleting"
	DocumentStatusFailed   DocumentStatus = "Failed"
)

// Values returns every known DocumentStatus.
func (DocumentStatus) Values() []DocumentStatus {
	return []DocumentStatus{
		DocumentStatusCreating,
		DocumentStatusActive,
		DocumentStatusUpdating,
		DocumentStatusDeleting,
		DocumentStatusFailed,
	}
}

// ParseDocumentStatus maps s onto a DocumentStatus, failing with a
// *core.EnumError for unknown values.
func ParseDocumentStatus(s string) (DocumentStatus, error) {
	return core.ParseEnum("DocumentStatus", s, DocumentStatus("").Values())
}

type DocumentType string

// Enum values for DocumentType
const (
	DocumentTypeCommand                        DocumentType = "Command"
	DocumentTypePolicy                         DocumentType = "Policy"
	DocumentTypeAutomation                     DocumentType = "Automation"
	DocumentTypeSession                        DocumentType = "Session"
	DocumentTypePackage                        DocumentType = "Package"
	DocumentTypeApplicationConfiguration       DocumentType = "ApplicationConfiguration"
	DocumentTypeApplicationConfigurationSchema DocumentType = "ApplicationConfigurationSchema"
	DocumentTypeDeploymentStrategy             DocumentType = "DeploymentStrategy"
	DocumentTypeChangeCalendar                 DocumentType = "ChangeCalendar"
)

// Values returns every known DocumentType.
func (DocumentType) Values() []DocumentType {
	return []DocumentType{
		DocumentTypeCommand,
		DocumentTypePolicy,
		DocumentTypeAutomation,
		DocumentTypeSession,
		DocumentTypePackage,
		DocumentTypeApplicationConfiguration,
		DocumentTypeApplicationConfigurationSchema,
		DocumentTypeDeploymentStrategy,
		DocumentTypeChangeCalendar,
	}
}

// ParseDocumentType maps s onto a DocumentType, failing with a
// *core.EnumError for unknown values.
func ParseDocumentType(s string) (DocumentType, error) {
	return core.ParseEnum("DocumentType", s, DocumentType("").Values())
}

type ExecutionMode string

// Enum values for ExecutionMode
const (
	ExecutionModeAuto        ExecutionMode = "Auto"
	ExecutionModeInteractive ExecutionMode = "Interactive"
)

// Values returns every known ExecutionMode.
func (ExecutionMode) Values() []ExecutionMode {
	return []ExecutionMode{
		ExecutionModeAuto,
		ExecutionModeInteractive,
	}
}

// ParseExecutionMode maps s onto a ExecutionMode, failing with a
// *core.EnumError for unknown values.
func ParseExecutionMode(s string) (ExecutionMode, error) {
	return core.ParseEnum("ExecutionMode", s, ExecutionMode("").Values())
}

type Fault string

// Enum values for Fault
const (
	FaultClient  Fault = "Client"
	FaultServer  Fault = "Server"
	FaultUnknown Fault = "Unknown"
)

// Values returns every known Fault.
func (Fault) Values() []Fault {
	return []Fault{
		FaultClient,
		FaultServer,
		FaultUnknown,
	}
}

// ParseFault maps s onto a Fault, failing with a *core.EnumError for unknown
// values.
func ParseFault(s string) (Fault, error) {
	return core.ParseEnum("Fault", s, Fault("").Values())
}

type NotificationEvent string

// Enum values for NotificationEvent
const (
	NotificationEventAll        NotificationEvent = "All"
	NotificationEventInProgress NotificationEvent = "InProgress"
	NotificationEventSuccess    NotificationEvent = "Success"
	NotificationEventTimedOut   NotificationEvent = "TimedOut"
	NotificationEventCancelled  NotificationEvent = "Cancelled"
	NotificationEventFailed     NotificationEvent = "Failed"
)

// Values returns every known NotificationEvent.
func (NotificationEvent) Values() []NotificationEvent {
	return []NotificationEvent{
		NotificationEventAll,
		NotificationEventInProgress,
		NotificationEventSuccess,
		NotificationEventTimedOut,
		NotificationEventCancelled,
		NotificationEventFailed,
	}
}

// ParseNotificationEvent maps s onto a NotificationEvent, failing with a
// *core.EnumError for unknown values.
func ParseNotificationEvent(s string) (NotificationEvent, error) {
	return core.ParseEnum("NotificationEvent", s, NotificationEvent("").Values())
}

type NotificationType string

// Enum values for NotificationType
const (
	NotificationTypeCommand    NotificationType = "Command"
	NotificationTypeInvocation NotificationType = "Invocation"
)

// Values returns every known NotificationType.
func (NotificationType) Values() []NotificationType {
	return []NotificationType{
		NotificationTypeCommand,
		NotificationTypeInvocation,
	}
}

// ParseNotificationType maps s onto a NotificationType, failing with a
// *core.EnumError for unknown values.
func ParseNotificationType(s string) (NotificationType, error) {
	return core.ParseEnum("NotificationType", s, NotificationType("").Values())
}

type ParameterTier string

// Enum values for ParameterTier
const (
	ParameterTierStandard           ParameterTier = "Standard"
	ParameterTierAdvanced           ParameterTier = "Advanced"
	ParameterTierIntelligentTiering ParameterTier = "Intelligent-Tiering"
)

// Values returns every known ParameterTier.
func (ParameterTier) Values() []ParameterTier {
	return []ParameterTier{
		ParameterTierStandard,
		ParameterTierAdvanced,
		ParameterTierIntelligentTiering,
	}
}

// ParseParameterTier maps s onto a ParameterTier, failing with a
// *core.EnumError for unknown values.
func ParseParameterTier(s string) (ParameterTier, error) {
	return core.ParseEnum("ParameterTier", s, ParameterTier("").Values())
}

type ParameterType string

// Enum values for ParameterType
const (
	ParameterTypeString       ParameterType = "String"
	ParameterTypeStringList   ParameterType = "StringList"
	ParameterTypeSecureString ParameterType = "SecureString"
)

// Values returns every known ParameterType.
func (ParameterType) Values() []ParameterType {
	return []ParameterType{
		ParameterTypeString,
		ParameterTypeStringList,
		ParameterTypeSecureString,
	}
}

// ParseParameterType maps s onto a ParameterType, failing with a
// *core.EnumError for unknown values.
func ParseParameterType(s string) (ParameterType, error) {
	return core.ParseEnum("ParameterType", s, ParameterType("").Values())
}

type ParametersFilterKey string

// Enum values for ParametersFilterKey
const (
	ParametersFilterKeyName  ParametersFilterKey = "Name"
	ParametersFilterKeyType  ParametersFilterKey = "Type"
	ParametersFilterKeyKeyId ParametersFilterKey = "KeyId"
)

// Values returns every known ParametersFilterKey.
func (ParametersFilterKey) Values() []ParametersFilterKey {
	return []ParametersFilterKey{
		ParametersFilterKeyName,
		ParametersFilterKeyType,
		ParametersFilterKeyKeyId,
	}
}

// ParseParametersFilterKey maps s onto a ParametersFilterKey, failing with a
// *core.EnumError for unknown values.
func ParseParametersFilterKey(s string) (ParametersFilterKey, error) {
	return core.ParseEnum("ParametersFilterKey", s, ParametersFilterKey("").Values())
}

type PlatformType string

// Enum values for PlatformType
const (
	PlatformTypeWindows PlatformType = "Windows"
	PlatformTypeLinux   PlatformType = "Linux"
)

// Values returns every known PlatformType.
func (PlatformType) Values() []PlatformType {
	return []PlatformType{
		PlatformTypeWindows,
		PlatformTypeLinux,
	}
}

// ParsePlatformType maps s onto a PlatformType, failing with a
// *core.EnumError for unknown values.
func ParsePlatformType(s string) (PlatformType, error) {
	return core.ParseEnum("PlatformType", s, PlatformType("").Values())
}

type ResourceTypeForTagging string

// Enum values for ResourceTypeForTagging
const (
	ResourceTypeForTaggingDocument          ResourceTypeForTagging = "Document"
	ResourceTypeForTaggingManagedInstance   ResourceTypeForTagging = "ManagedInstance"
	ResourceTypeForTaggingMaintenanceWindow ResourceTypeForTagging = "MaintenanceWindow"
	ResourceTypeForTaggingParameter         ResourceTypeForTagging = "Parameter"
	ResourceTypeForTaggingPatchBaseline     ResourceTypeForTagging = "PatchBaseline"
	ResourceTypeForTaggingOpsItem           ResourceTypeForTagging = "OpsItem"
)

// Values returns every known ResourceTypeForTagging.
func (ResourceTypeForTagging) Values() []ResourceTypeForTagging {
	return []ResourceTypeForTagging{
		ResourceTypeForTaggingDocument,
		ResourceTypeForTaggingManagedInstance,
		ResourceTypeForTaggingMaintenanceWindow,
		ResourceTypeForTaggingParameter,
		ResourceTypeForTaggingPatchBaseline,
		ResourceTypeForTaggingOpsItem,
	}
}

// ParseResourceTypeForTagging maps s onto a ResourceTypeForTagging, failing
// with a *core.EnumError for unknown values.
func ParseResourceTypeForTagging(s string) (ResourceTypeForTagging, error) {
	return core.ParseEnum("ResourceTypeForTagging", s, ResourceTypeForTagging("").Values())
}

type StopType string

// Enum values for StopType
const (
	StopTypeComplete StopType = "Complete"
	StopTypeCancel   StopType = "Cancel"
)

// Values returns every known StopType.
func (StopType) Values() []StopType {
	return []StopType{
		StopTypeComplete,
		StopTypeCancel,
	}
}

// ParseStopType maps s onto a StopType, failing with a *core.EnumError for
// unknown values.
func ParseStopType(s string) (StopType, error) {
	return core.ParseEnum("StopType", s, StopType("").Values())
}
