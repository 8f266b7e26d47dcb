// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import "github.com/tfctl/awsctl/core"

// BotAliasMetadata describes an alias and the bot version it points at.
type BotAliasMetadata struct {
	Name             *string                   `json:"name,omitempty"`
	Description      *string                   `json:"description,omitempty"`
	BotVersion       *string                   `json:"botVersion,omitempty"`
	BotName          *string                   `json:"botName,omitempty"`
	LastUpdatedDate  *core.Timestamp           `json:"lastUpdatedDate,omitempty"`
	CreatedDate      *core.Timestamp           `json:"createdDate,omitempty"`
	Checksum         *string                   `json:"checksum,omitempty"`
	ConversationLogs *ConversationLogsResponse `json:"conversationLogs,omitempty"`
}

// BotChannelAssociation links a bot alias to a messaging platform.
type BotChannelAssociation struct {
	Name             *string           `json:"name,omitempty"`
	Description      *string           `json:"description,omitempty"`
	BotAlias         *string           `json:"botAlias,omitempty"`
	BotName          *string           `json:"botName,omitempty"`
	CreatedDate      *core.Timestamp   `json:"createdDate,omitempty"`
	Type             ChannelType       `json:"type,omitempty"`
	BotConfiguration map[string]string `json:"botConfiguration,omitempty"`
	Status           ChannelStatus     `json:"status,omitempty"`
	FailureReason    *string           `json:"failureReason,omitempty"`
}

// BotDescription is the full definition of one bot version. It is shared by
// the outputs of GetBot, PutBot and CreateBotVersion.
type BotDescription struct {
	Name                         *string         `json:"name,omitempty"`
	Description                  *string         `json:"description,omitempty"`
	Intents                      []Intent        `json:"intents,omitempty"`
	EnableModelImprovements      *bool           `json:"enableModelImprovements,omitempty"`
	NluIntentConfidenceThreshold *float64        `json:"nluIntentConfidenceThreshold,omitempty"`
	ClarificationPrompt          *Prompt         `json:"clarificationPrompt,omitempty"`
	AbortStatement               *Statement      `json:"abortStatement,omitempty"`
	Status                       Status          `json:"status,omitempty"`
	FailureReason                *string         `json:"failureReason,omitempty"`
	LastUpdatedDate              *core.Timestamp `json:"lastUpdatedDate,omitempty"`
	CreatedDate                  *core.Timestamp `json:"createdDate,omitempty"`
	IdleSessionTTLInSeconds      *int32          `json:"idleSessionTTLInSeconds,omitempty"`
	VoiceId                      *string         `json:"voiceId,omitempty"`
	Checksum                     *string         `json:"checksum,omitempty"`
	Version                      *string         `json:"version,omitempty"`
	Locale                       Locale          `json:"locale,omitempty"`
	ChildDirected                *bool           `json:"childDirected,omitempty"`
	DetectSentiment              *bool           `json:"detectSentiment,omitempty"`
}

type BotMetadata struct {
	Name            *string         `json:"name,omitempty"`
	Description     *string         `json:"description,omitempty"`
	Status          Status          `json:"status,omitempty"`
	LastUpdatedDate *core.Timestamp `json:"lastUpdatedDate,omitempty"`
	CreatedDate     *core.Timestamp `json:"createdDate,omitempty"`
	Version         *string         `json:"version,omitempty"`
}

type BuiltinIntentMetadata struct {
	Signature        *string  `json:"signature,omitempty"`
	SupportedLocales []Locale `json:"supportedLocales,omitempty"`
}

type BuiltinIntentSlot struct {
	Name *string `json:"name,omitempty"`
}

type BuiltinSlotTypeMetadata struct {
	Signature        *string  `json:"signature,omitempty"`
	SupportedLocales []Locale `json:"supportedLocales,omitempty"`
}

// CodeHook is a Lambda function invoked during the conversation.
type CodeHook struct {
	Uri            *string `json:"uri,omitempty" required:"true" min:"20" max:"2048"`
	MessageVersion *string `json:"messageVersion,omitempty" required:"true" min:"1" max:"5"`
}

type ConversationLogsRequest struct {
	LogSettings []LogSettingsRequest `json:"logSettings,omitempty" required:"true"`
	IamRoleArn  *string              `json:"iamRoleArn,omitempty" required:"true" min:"20" max:"2048"`
}

type ConversationLogsResponse struct {
	LogSettings []LogSettingsResponse `json:"logSettings,omitempty"`
	IamRoleArn  *string               `json:"iamRoleArn,omitempty"`
}

type EnumerationValue struct {
	Value    *string  `json:"value,omitempty" required:"true" min:"1" max:"140"`
	Synonyms []string `json:"synonyms,omitempty"`
}

type FollowUpPrompt struct {
	Prompt             *Prompt    `json:"prompt,omitempty" required:"true"`
	RejectionStatement *Statement `json:"rejectionStatement,omitempty" required:"true"`
}

type FulfillmentActivity struct {
	Type     FulfillmentActivityType `json:"type,omitempty" required:"true"`
	CodeHook *CodeHook               `json:"codeHook,omitempty"`
}

// Intent references one version of an intent from a bot.
type Intent struct {
	IntentName    *string `json:"intentName,omitempty" required:"true" min:"1" max:"100"`
	IntentVersion *string `json:"intentVersion,omitempty" required:"true" min:"1" max:"64"`
}

// IntentDescription is the full definition of one intent version, shared by
// GetIntent, PutIntent and CreateIntentVersion.
type IntentDescription struct {
	Name                  *string              `json:"name,omitempty"`
	Description           *string              `json:"description,omitempty"`
	Slots                 []Slot               `json:"slots,omitempty"`
	SampleUtterances      []string             `json:"sampleUtterances,omitempty"`
	ConfirmationPrompt    *Prompt              `json:"confirmationPrompt,omitempty"`
	RejectionStatement    *Statement           `json:"rejectionStatement,omitempty"`
	FollowUpPrompt        *FollowUpPrompt      `json:"followUpPrompt,omitempty"`
	ConclusionStatement   *Statement           `json:"conclusionStatement,omitempty"`
	DialogCodeHook        *CodeHook            `json:"dialogCodeHook,omitempty"`
	FulfillmentActivity   *FulfillmentActivity `json:"fulfillmentActivity,omitempty"`
	ParentIntentSignature *string              `json:"parentIntentSignature,omitempty"`
	LastUpdatedDate       *core.Timestamp      `json:"lastUpdatedDate,omitempty"`
	CreatedDate           *core.Timestamp      `json:"createdDate,omitempty"`
	Version               *string              `json:"version,omitempty"`
	Checksum              *string              `json:"checksum,omitempty"`
	KendraConfiguration   *KendraConfiguration `json:"kendraConfiguration,omitempty"`
}

type IntentMetadata struct {
	Name            *string         `json:"name,omitempty"`
	Description     *string         `json:"description,omitempty"`
	LastUpdatedDate *core.Timestamp `json:"lastUpdatedDate,omitempty"`
	CreatedDate     *core.Timestamp `json:"createdDate,omitempty"`
	Version         *string         `json:"version,omitempty"`
}

type KendraConfiguration struct {
	KendraIndex       *string `json:"kendraIndex,omitempty" required:"true" min:"20" max:"2048"`
	QueryFilterString *string `json:"queryFilterString,omitempty"`
	Role              *string `json:"role,omitempty" required:"true" min:"20" max:"2048"`
}

type LogSettingsRequest struct {
	LogType     LogType     `json:"logType,omitempty" required:"true"`
	Destination Destination `json:"destination,omitempty" required:"true"`
	KmsKeyArn   *string     `json:"kmsKeyArn,omitempty" min:"20" max:"2048"`
	ResourceArn *string     `json:"resourceArn,omitempty" required:"true" min:"1" max:"2048"`
}

type LogSettingsResponse struct {
	LogType        LogType     `json:"logType,omitempty"`
	Destination    Destination `json:"destination,omitempty"`
	KmsKeyArn      *string     `json:"kmsKeyArn,omitempty"`
	ResourceArn    *string     `json:"resourceArn,omitempty"`
	ResourcePrefix *string     `json:"resourcePrefix,omitempty"`
}

// Message is one response the bot may use. Messages in the same group number
// are alternatives; groups are played in order.
type Message struct {
	ContentType ContentType `json:"contentType,omitempty" required:"true"`
	Content     *string     `json:"content,omitempty" required:"true" min:"1" max:"1000"`
	GroupNumber *int32      `json:"groupNumber,omitempty" min:"1" max:"5"`
}

// Prompt elicits information from the user.
type Prompt struct {
	Messages     []Message `json:"messages,omitempty" required:"true" min:"1" max:"15"`
	MaxAttempts  *int32    `json:"maxAttempts,omitempty" required:"true" min:"1" max:"5"`
	ResponseCard *string   `json:"responseCard,omitempty" min:"1" max:"50000"`
}

type ResourceReference struct {
	Name    *string `json:"name,omitempty"`
	Version *string `json:"version,omitempty"`
}

type Slot struct {
	Name                   *string            `json:"name,omitempty" required:"true" min:"1" max:"100"`
	Description            *string            `json:"description,omitempty" max:"200"`
	SlotConstraint         SlotConstraint     `json:"slotConstraint,omitempty" required:"true"`
	SlotType               *string            `json:"slotType,omitempty" min:"1" max:"100"`
	SlotTypeVersion        *string            `json:"slotTypeVersion,omitempty" min:"1" max:"64"`
	ValueElicitationPrompt *Prompt            `json:"valueElicitationPrompt,omitempty"`
	Priority               *int32             `json:"priority,omitempty" max:"100"`
	SampleUtterances       []string           `json:"sampleUtterances,omitempty" max:"10"`
	ResponseCard           *string            `json:"responseCard,omitempty" min:"1" max:"50000"`
	ObfuscationSetting     ObfuscationSetting `json:"obfuscationSetting,omitempty"`
}

type SlotTypeConfiguration struct {
	RegexConfiguration *SlotTypeRegexConfiguration `json:"regexConfiguration,omitempty"`
}

// SlotTypeDescription is the full definition of one slot type version, shared
// by GetSlotType, PutSlotType and CreateSlotTypeVersion.
type SlotTypeDescription struct {
	Name                    *string                    `json:"name,omitempty"`
	Description             *string                    `json:"description,omitempty"`
	EnumerationValues       []EnumerationValue         `json:"enumerationValues,omitempty"`
	LastUpdatedDate         *core.Timestamp            `json:"lastUpdatedDate,omitempty"`
	CreatedDate             *core.Timestamp            `json:"createdDate,omitempty"`
	Version                 *string                    `json:"version,omitempty"`
	Checksum                *string                    `json:"checksum,omitempty"`
	ValueSelectionStrategy  SlotValueSelectionStrategy `json:"valueSelectionStrategy,omitempty"`
	ParentSlotTypeSignature *string                    `json:"parentSlotTypeSignature,omitempty"`
	SlotTypeConfigurations  []SlotTypeConfiguration    `json:"slotTypeConfigurations,omitempty"`
}

type SlotTypeMetadata struct {
	Name            *string         `json:"name,omitempty"`
	Description     *string         `json:"description,omitempty"`
	LastUpdatedDate *core.Timestamp `json:"lastUpdatedDate,omitempty"`
	CreatedDate     *core.Timestamp `json:"createdDate,omitempty"`
	Version         *string         `json:"version,omitempty"`
}

type SlotTypeRegexConfiguration struct {
	Pattern *string `json:"pattern,omitempty" required:"true" min:"1" max:"100"`
}

// Statement is a message with no expected answer.
type Statement struct {
	Messages     []Message `json:"messages,omitempty" required:"true" min:"1" max:"15"`
	ResponseCard *string   `json:"responseCard,omitempty" min:"1" max:"50000"`
}

type Tag struct {
	Key   *string `json:"key,omitempty" required:"true" min:"1" max:"128"`
	Value *string `json:"value,omitempty" required:"true" max:"256"`
}

type UtteranceData struct {
	UtteranceString  *string         `json:"utteranceString,omitempty"`
	Count            *int32          `json:"count,omitempty"`
	DistinctUsers    *int32          `json:"distinctUsers,omitempty"`
	FirstUtteredDate *core.Timestamp `json:"firstUtteredDate,omitempty"`
	LastUtteredDate  *core.Timestamp `json:"lastUtteredDate,omitempty"`
}

type UtteranceList struct {
	BotVersion *string         `json:"botVersion,omitempty"`
	Utterances []UtteranceData `json:"utterances,omitempty"`
}
