// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import (
	"context"
	"net/http"

	"github.com/tfctl/awsctl/core"
)

// CreateBotVersion creates a numbered version from $LATEST. When checksum is
// set it must match $LATEST or the call fails with
// PreconditionFailedException.
func (c *Client) CreateBotVersion(ctx context.Context, params *CreateBotVersionInput, optFns ...func(*core.Options)) (*CreateBotVersionOutput, error) {
	op := core.Operation{
		Name:        "CreateBotVersion",
		Method:      http.MethodPost,
		Path:        "/bots/{name}/versions",
		SuccessCode: http.StatusCreated,
	}
	return invoke[CreateBotVersionOutput](ctx, c, op, params, optFns)
}

type CreateBotVersionInput struct {
	Name     *string `location:"uri" locationName:"name" json:"-" required:"true" min:"2" max:"50"`
	Checksum *string `json:"checksum,omitempty"`
}

type CreateBotVersionOutput struct {
	BotDescription
}

// DeleteBot deletes all versions of a bot. Aliases that reference the bot
// must be removed first.
func (c *Client) DeleteBot(ctx context.Context, params *DeleteBotInput, optFns ...func(*core.Options)) (*DeleteBotOutput, error) {
	op := core.Operation{
		Name:        "DeleteBot",
		Method:      http.MethodDelete,
		Path:        "/bots/{name}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[DeleteBotOutput](ctx, c, op, params, optFns)
}

type DeleteBotInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" required:"true" min:"2" max:"50"`
}

type DeleteBotOutput struct{}

// DeleteBotVersion deletes one numbered version of a bot.
func (c *Client) DeleteBotVersion(ctx context.Context, params *DeleteBotVersionInput, optFns ...func(*core.Options)) (*DeleteBotVersionOutput, error) {
	op := core.Operation{
		Name:        "DeleteBotVersion",
		Method:      http.MethodDelete,
		Path:        "/bots/{name}/versions/{version}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[DeleteBotVersionOutput](ctx, c, op, params, optFns)
}

type DeleteBotVersionInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" required:"true" min:"2" max:"50"`
	Version *string `location:"uri" locationName:"version" json:"-" required:"true" min:"1" max:"64"`
}

type DeleteBotVersionOutput struct{}

// GetBot returns one version of a bot. VersionOrAlias is a version number,
// $LATEST or an alias name.
func (c *Client) GetBot(ctx context.Context, params *GetBotInput, optFns ...func(*core.Options)) (*GetBotOutput, error) {
	op := core.Operation{
		Name:        "GetBot",
		Method:      http.MethodGet,
		Path:        "/bots/{name}/versions/{versionoralias}",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBotOutput](ctx, c, op, params, optFns)
}

type GetBotInput struct {
	Name           *string `location:"uri" locationName:"name" json:"-" required:"true" min:"2" max:"50"`
	VersionOrAlias *string `location:"uri" locationName:"versionoralias" json:"-" required:"true"`
}

type GetBotOutput struct {
	BotDescription
}

// GetBotVersions lists the versions of a bot.
func (c *Client) GetBotVersions(ctx context.Context, params *GetBotVersionsInput, optFns ...func(*core.Options)) (*GetBotVersionsOutput, error) {
	op := core.Operation{
		Name:        "GetBotVersions",
		Method:      http.MethodGet,
		Path:        "/bots/{name}/versions/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBotVersionsOutput](ctx, c, op, params, optFns)
}

type GetBotVersionsInput struct {
	Name       *string `location:"uri" locationName:"name" json:"-" required:"true" min:"2" max:"50"`
	NextToken  *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
}

type GetBotVersionsOutput struct {
	Bots      []BotMetadata `json:"bots,omitempty"`
	NextToken *string       `json:"nextToken,omitempty"`
}

// GetBots lists the $LATEST version of every bot, optionally filtered by
// NameContains.
func (c *Client) GetBots(ctx context.Context, params *GetBotsInput, optFns ...func(*core.Options)) (*GetBotsOutput, error) {
	op := core.Operation{
		Name:        "GetBots",
		Method:      http.MethodGet,
		Path:        "/bots/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBotsOutput](ctx, c, op, params, optFns)
}

type GetBotsInput struct {
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-" min:"2" max:"50"`
}

type GetBotsOutput struct {
	Bots      []BotMetadata `json:"bots,omitempty"`
	NextToken *string       `json:"nextToken,omitempty"`
}

// PutBot creates or replaces the $LATEST version of a bot. Updating an
// existing bot requires the checksum of the current $LATEST.
func (c *Client) PutBot(ctx context.Context, params *PutBotInput, optFns ...func(*core.Options)) (*PutBotOutput, error) {
	op := core.Operation{
		Name:        "PutBot",
		Method:      http.MethodPut,
		Path:        "/bots/{name}/versions/$LATEST",
		SuccessCode: http.StatusOK,
	}
	return invoke[PutBotOutput](ctx, c, op, params, optFns)
}

type PutBotInput struct {
	Name                         *string         `location:"uri" locationName:"name" json:"-" required:"true" min:"2" max:"50"`
	Description                  *string         `json:"description,omitempty" max:"200"`
	Intents                      []Intent        `json:"intents,omitempty"`
	EnableModelImprovements      *bool           `json:"enableModelImprovements,omitempty"`
	NluIntentConfidenceThreshold *float64        `json:"nluIntentConfidenceThreshold,omitempty"`
	ClarificationPrompt          *Prompt         `json:"clarificationPrompt,omitempty"`
	AbortStatement               *Statement      `json:"abortStatement,omitempty"`
	IdleSessionTTLInSeconds      *int32          `json:"idleSessionTTLInSeconds,omitempty" min:"60" max:"86400"`
	VoiceId                      *string         `json:"voiceId,omitempty"`
	Checksum                     *string         `json:"checksum,omitempty"`
	ProcessBehavior              ProcessBehavior `json:"processBehavior,omitempty"`
	Locale                       Locale          `json:"locale,omitempty" required:"true"`
	ChildDirected                *bool           `json:"childDirected,omitempty" required:"true"`
	DetectSentiment              *bool           `json:"detectSentiment,omitempty"`
	CreateVersion                *bool           `json:"createVersion,omitempty"`
	Tags                         []Tag           `json:"tags,omitempty" max:"200"`
}

type PutBotOutput struct {
	BotDescription

	CreateVersion *bool `json:"createVersion,omitempty"`
	Tags          []Tag `json:"tags,omitempty"`
}
