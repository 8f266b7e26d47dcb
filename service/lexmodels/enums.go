// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import "github.com/tfctl/awsctl/core"

type ChannelStatus string

// Enum values for ChannelStatus
const (
	ChannelStatusInProgress ChannelStatus = "IN_PROGRESS"
	ChannelStatusCreated    ChannelStatus = "CREATED"
	ChannelStatusFailed     ChannelStatus = "FAILED"
)

// Values returns every known ChannelStatus.
func (ChannelStatus) Values() []ChannelStatus {
	return []ChannelStatus{
		ChannelStatusInProgress,
		ChannelStatusCreated,
		ChannelStatusFailed,
	}
}

// ParseChannelStatus maps s onto a ChannelStatus, failing with a
// *core.EnumError for unknown values.
func ParseChannelStatus(s string) (ChannelStatus, error) {
	return core.ParseEnum("ChannelStatus", s, ChannelStatus("").Values())
}

type ChannelType string

// Enum values for ChannelType
const (
	ChannelTypeFacebook  ChannelType = "Facebook"
	ChannelTypeSlack     ChannelType = "Slack"
	ChannelTypeTwilioSms ChannelType = "Twilio-Sms"
	ChannelTypeKik       ChannelType = "Kik"
)

// Values returns every known ChannelType.
func (ChannelType) Values() []ChannelType {
	return []ChannelType{
		ChannelTypeFacebook,
		ChannelTypeSlack,
		ChannelTypeTwilioSms,
		ChannelTypeKik,
	}
}

// ParseChannelType maps s onto a ChannelType, failing with a *core.EnumError
// for unknown values.
func ParseChannelType(s string) (ChannelType, error) {
	return core.ParseEnum("ChannelType", s, ChannelType("").Values())
}

type ContentType string

// Enum values for ContentType
const (
	ContentTypePlainText     ContentType = "PlainText"
	ContentTypeSsml          ContentType = "SSML"
	ContentTypeCustomPayload ContentType = "CustomPayload"
)

// Values returns every known ContentType.
func (ContentType) Values() []ContentType {
	return []ContentType{
		ContentTypePlainText,
		ContentTypeSsml,
		ContentTypeCustomPayload,
	}
}

// ParseContentType maps s onto a ContentType, failing with a *core.EnumError
// for unknown values.
func ParseContentType(s string) (ContentType, error) {
	return core.ParseEnum("ContentType", s, ContentType("").Values())
}

type Destination string

// Enum values for Destination
const (
	DestinationCloudwatchLogs Destination = "CLOUDWATCH_LOGS"
	DestinationS3             Destination = "S3"
)

// Values returns every known Destination.
func (Destination) Values() []Destination {
	return []Destination{
		DestinationCloudwatchLogs,
		DestinationS3,
	}
}

// ParseDestination maps s onto a Destination, failing with a *core.EnumError
// for unknown values.
func ParseDestination(s string) (Destination, error) {
	return core.ParseEnum("Destination", s, Destination("").Values())
}

type ExportStatus string

// Enum values for ExportStatus
const (
	ExportStatusInProgress ExportStatus = "IN_PROGRESS"
	ExportStatusReady      ExportStatus = "READY"
	ExportStatusFailed     ExportStatus = "FAILED"
)

// Values returns every known ExportStatus.
func (ExportStatus) Values() []ExportStatus {
	return []ExportStatus{
		ExportStatusInProgress,
		ExportStatusReady,
		ExportStatusFailed,
	}
}

// ParseExportStatus maps s onto a ExportStatus, failing with a
// *core.EnumError for unknown values.
func ParseExportStatus(s string) (ExportStatus, error) {
	return core.ParseEnum("ExportStatus", s, ExportStatus("").Values())
}

type ExportType string

// Enum values for ExportType
const (
	ExportTypeAlexaSkillsKit ExportType = "ALEXA_SKILLS_KIT"
	ExportTypeLex            ExportType = "LEX"
)

// Values returns every known ExportType.
func (ExportType) Values() []ExportType {
	return []ExportType{
		ExportTypeAlexaSkillsKit,
		ExportTypeLex,
	}
}

// ParseExportType maps s onto a ExportType, failing with a *core.EnumError
// for unknown values.
func ParseExportType(s string) (ExportType, error) {
	return core.ParseEnum("ExportType", s, ExportType("").Values())
}

type FulfillmentActivityType string

// Enum values for FulfillmentActivityType
const (
	FulfillmentActivityTypeReturnIntent FulfillmentActivityType = "ReturnIntent"
	FulfillmentActivityTypeCodeHook     FulfillmentActivityType = "CodeHook"
)

// Values returns every known FulfillmentActivityType.
func (FulfillmentActivityType) Values() []FulfillmentActivityType {
	return []FulfillmentActivityType{
		FulfillmentActivityTypeReturnIntent,
		FulfillmentActivityTypeCodeHook,
	}
}

// ParseFulfillmentActivityType maps s onto a FulfillmentActivityType, failing
// with a *core.EnumError for unknown values.
func ParseFulfillmentActivityType(s string) (FulfillmentActivityType, error) {
	return core.ParseEnum("FulfillmentActivityType", s, FulfillmentActivityType("").Values())
}

type ImportStatus string

// Enum values for ImportStatus
const (
	ImportStatusInProgress ImportStatus = "IN_PROGRESS"
	ImportStatusComplete   ImportStatus = "COMPLETE"
	ImportStatusFailed     ImportStatus = "FAILED"
)

// Values returns every known ImportStatus.
func (ImportStatus) Values() []ImportStatus {
	return []ImportStatus{
		ImportStatusInProgress,
		ImportStatusComplete,
		ImportStatusFailed,
	}
}

// ParseImportStatus maps s onto a ImportStatus, failing with a
// *core.EnumError for unknown values.
func ParseImportStatus(s string) (ImportStatus, error) {
	return core.ParseEnum("ImportStatus", s, ImportStatus("").Values())
}

type Locale string

// Enum values for Locale
const (
	LocaleDeDe  Locale = "de-DE"
	LocaleEnAu  Locale = "en-AU"
	LocaleEnGb  Locale = "en-GB"
	LocaleEnUs  Locale = "en-US"
	LocaleEs419 Locale = "es-419"
	LocaleEsEs  Locale = "es-ES"
	LocaleEsUs  Locale = "es-US"
	LocaleFrFr  Locale = "fr-FR"
	LocaleFrCa  Locale = "fr-CA"
	LocaleItIt  Locale = "it-IT"
)

// Values returns every known Locale.
func (Locale) Values() []Locale {
	return []Locale{
		LocaleDeDe,
		LocaleEnAu,
		LocaleEnGb,
		LocaleEnUs,
		LocaleEs419,
		LocaleEsEs,
		LocaleEsUs,
		LocaleFrFr,
		LocaleFrCa,
		LocaleItIt,
	}
}

// ParseLocale maps s onto a Locale, failing with a *core.EnumError for
// unknown values.
func ParseLocale(s string) (Locale, error) {
	return core.ParseEnum("Locale", s, Locale("").Values())
}

type LogType string

// Enum values for LogType
const (
	LogTypeAudio LogType = "AUDIO"
	LogTypeText  LogType = "TEXT"
)

// Values returns every known LogType.
func (LogType) Values() []LogType {
	return []LogType{
		LogTypeAudio,
		LogTypeText,
	}
}

// ParseLogType maps s onto a LogType, failing with a *core.EnumError for
// unknown values.
func ParseLogType(s string) (LogType, error) {
	return core.ParseEnum("LogType", s, LogType("").Values())
}

// MergeStrategy decides what StartImport does when a resource already exists.
type MergeStrategy string

// Enum values for MergeStrategy
const (
	MergeStrategyOverwriteLatest MergeStrategy = "OVERWRITE_LATEST"
	MergeStrategyFailOnConflict  MergeStrategy = "FAIL_ON_CONFLICT"
)

// Values returns every known MergeStrategy.
func (MergeStrategy) Values() []MergeStrategy {
	return []MergeStrategy{
		MergeStrategyOverwriteLatest,
		MergeStrategyFailOnConflict,
	}
}

// ParseMergeStrategy maps s onto a MergeStrategy, failing with a
// *core.EnumError for unknown values.
func ParseMergeStrategy(s string) (MergeStrategy, error) {
	return core.ParseEnum("MergeStrategy", s, MergeStrategy("").Values())
}

type ObfuscationSetting string

// Enum values for ObfuscationSetting
const (
	ObfuscationSettingNone               ObfuscationSetting = "NONE"
	ObfuscationSettingDefaultObfuscation ObfuscationSetting = "DEFAULT_OBFUSCATION"
)

// Values returns every known ObfuscationSetting.
func (ObfuscationSetting) Values() []ObfuscationSetting {
	return []ObfuscationSetting{
		ObfuscationSettingNone,
		ObfuscationSettingDefaultObfuscation,
	}
}

// ParseObfuscationSetting maps s onto a ObfuscationSetting, failing with a
// *core.EnumError for unknown values.
func ParseObfuscationSetting(s string) (ObfuscationSetting, error) {
	return core.ParseEnum("ObfuscationSetting", s, ObfuscationSetting("").Values())
}

// ProcessBehavior tells PutBot whether to build the bot after saving it.
type ProcessBehavior string

// Enum values for ProcessBehavior
const (
	ProcessBehaviorSave  ProcessBehavior = "SAVE"
	ProcessBehaviorBuild ProcessBehavior = "BUILD"
)

// Values returns every known ProcessBehavior.
func (ProcessBehavior) Values() []ProcessBehavior {
	return []ProcessBehavior{
		ProcessBehaviorSave,
		ProcessBehaviorBuild,
	}
}

// ParseProcessBehavior maps s onto a ProcessBehavior, failing with a
// *core.EnumError for unknown values.
func ParseProcessBehavior(s string) (ProcessBehavior, error) {
	return core.ParseEnum("ProcessBehavior", s, ProcessBehavior("").Values())
}

type ReferenceType string

// Enum values for ReferenceType
const (
	ReferenceTypeIntent     ReferenceType = "Intent"
	ReferenceTypeBot        ReferenceType = "Bot"
	ReferenceTypeBotAlias   ReferenceType = "BotAlias"
	ReferenceTypeBotChannel ReferenceType = "BotChannel"
)

// Values returns every known ReferenceType.
func (ReferenceType) Values() []ReferenceType {
	return []ReferenceType{
		ReferenceTypeIntent,
		ReferenceTypeBot,
		ReferenceTypeBotAlias,
		ReferenceTypeBotChannel,
	}
}

// ParseReferenceType maps s onto a ReferenceType, failing with a
// *core.EnumError for unknown values.
func ParseReferenceType(s string) (ReferenceType, error) {
	return core.ParseEnum("ReferenceType", s, ReferenceType("").Values())
}

type ResourceType string

// Enum values for ResourceType
const (
	ResourceTypeBot      ResourceType = "BOT"
	ResourceTypeIntent   ResourceType = "INTENT"
	ResourceTypeSlotType ResourceType = "SLOT_TYPE"
)

// Values returns every known ResourceType.
func (ResourceType) Values() []ResourceType {
	return []ResourceType{
		ResourceTypeBot,
		ResourceTypeIntent,
		ResourceTypeSlotType,
	}
}

// ParseResourceType maps s onto a ResourceType, failing with a
// *core.EnumError for unknown values.
func ParseResourceType(s string) (ResourceType, error) {
	return core.ParseEnum("ResourceType", s, ResourceType("").Values())
}

type SlotConstraint string

// Enum values for SlotConstraint
const (
	SlotConstraintRequired SlotConstraint = "Required"
	SlotConstraintOptional SlotConstraint = "Optional"
)

// Values returns every known SlotConstraint.
func (SlotConstraint) Values() []SlotConstraint {
	return []SlotConstraint{
		SlotConstraintRequired,
		SlotConstraintOptional,
	}
}

// ParseSlotConstraint maps s onto a SlotConstraint, failing with a
// *core.EnumError for unknown values.
func ParseSlotConstraint(s string) (SlotConstraint, error) {
	return core.ParseEnum("SlotConstraint", s, SlotConstraint("").Values())
}

type SlotValueSelectionStrategy string

// Enum values for SlotValueSelectionStrategy
const (
	SlotValueSelectionStrategyOriginalValue SlotValueSelectionStrategy = "ORIGINAL_VALUE"
	SlotValueSelectionStrategyTopResolution SlotValueSelectionStrategy = "TOP_RESOLUTION"
)

// Values returns every known SlotValueSelectionStrategy.
func (SlotValueSelectionStrategy) Values() []SlotValueSelectionStrategy {
	return []SlotValueSelectionStrategy{
		SlotValueSelectionStrategyOriginalValue,
		SlotValueSelectionStrategyTopResolution,
	}
}

// ParseSlotValueSelectionStrategy maps s onto a SlotValueSelectionStrategy,
// failing with a *core.EnumError for unknown values.
func ParseSlotValueSelectionStrategy(s string) (SlotValueSelectionStrategy, error) {
	return core.ParseEnum("SlotValueSelectionStrategy", s, SlotValueSelectionStrategy("").Values())
}

// Status is the build state of a bot.
type Status string

// Enum values for Status
const (
	StatusBuilding          Status = "BUILDING"
	StatusReady             Status = "READY"
	StatusReadyBasicTesting Status = "READY_BASIC_TESTING"
	StatusFailed            Status = "FAILED"
	StatusNotBuilt          Status = "NOT_BUILT"
)

// Values returns every known Status.
func (Status) Values() []Status {
	return []Status{
		StatusBuilding,
		StatusReady,
		StatusReadyBasicTesting,
		StatusFailed,
		StatusNotBuilt,
	}
}

// ParseStatus maps s onto a Status, failing with a *core.EnumError for
// unknown values.
func ParseStatus(s string) (Status, error) {
	return core.ParseEnum("Status", s, Status("").Values())
}

type StatusType string

// Enum values for StatusType
const (
	StatusTypeDetected StatusType = "Detected"
	StatusTypeMissed   StatusType = "Missed"
)

// Values returns every known StatusType.
func (StatusType) Values() []StatusType {
	return []StatusType{
		StatusTypeDetected,
		StatusTypeMissed,
	}
}

// ParseStatusType maps s onto a StatusType, failing with a *core.EnumError
// for unknown values.
func ParseStatusType(s string) (StatusType, error) {
	return core.ParseEnum("StatusType", s, StatusType("").Values())
}
