// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import (
	"context"
	"net/http"

	"github.com/tfctl/awsctl/core"
)

// DeleteBotAlias deletes an alias.
func (c *Client) DeleteBotAlias(ctx context.Context, params *DeleteBotAliasInput, optFns ...func(*core.Options)) (*DeleteBotAliasOutput, error) {
	op := core.Operation{
		Name:        "DeleteBotAlias",
		Method:      http.MethodDelete,
		Path:        "/bots/{botName}/aliases/{name}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[DeleteBotAliasOutput](ctx, c, op, params, optFns)
}

type DeleteBotAliasInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	BotName *string `location:"uri" locationName:"botName" json:"-" required:"true" min:"2" max:"50"`
}

type DeleteBotAliasOutput struct{}

// DeleteBotChannelAssociation removes the link between an alias and a
// messaging platform.
func (c *Client) DeleteBotChannelAssociation(ctx context.Context, params *DeleteBotChannelAssociationInput, optFns ...func(*core.Options)) (*DeleteBotChannelAssociationOutput, error) {
	op := core.Operation{
		Name:        "DeleteBotChannelAssociation",
		Method:      http.MethodDelete,
		Path:        "/bots/{botName}/aliases/{aliasName}/channels/{name}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[DeleteBotChannelAssociationOutput](ctx, c, op, params, optFns)
}

type DeleteBotChannelAssociationInput struct {
	Name     *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	BotName  *string `location:"uri" locationName:"botName" json:"-" required:"true" min:"2" max:"50"`
	BotAlias *string `location:"uri" locationName:"aliasName" json:"-" required:"true" min:"1" max:"100"`
}

type DeleteBotChannelAssociationOutput struct{}

// GetBotAlias describes an alias.
func (c *Client) GetBotAlias(ctx context.Context, params *GetBotAliasInput, optFns ...func(*core.Options)) (*GetBotAliasOutput, error) {
	op := core.Operation{
		Name:        "GetBotAlias",
		Method:      http.MethodGet,
		Path:        "/bots/{botName}/aliases/{name}",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBotAliasOutput](ctx, c, op, params, optFns)
}

type GetBotAliasInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	BotName *string `location:"uri" locationName:"botName" json:"-" required:"true" min:"2" max:"50"`
}

type GetBotAliasOutput struct {
	BotAliasMetadata
}

// GetBotAliases lists the aliases of a bot.
func (c *Client) GetBotAliases(ctx context.Context, params *GetBotAliasesInput, optFns ...func(*core.Options)) (*GetBotAliasesOutput, error) {
	op := core.Operation{
		Name:        "GetBotAliases",
		Method:      http.MethodGet,
		Path:        "/bots/{botName}/aliases/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBotAliasesOutput](ctx, c, op, params, optFns)
}

type GetBotAliasesInput struct {
	BotName      *string `location:"uri" locationName:"botName" json:"-" required:"true" min:"2" max:"50"`
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-" min:"1" max:"100"`
}

type GetBotAliasesOutput struct {
	BotAliases []BotAliasMetadata `json:"BotAliases,omitempty"`
	NextToken  *string            `json:"nextToken,omitempty"`
}

// GetBotChannelAssociation describes the link between an alias and a
// messaging platform.
func (c *Client) GetBotChannelAssociation(ctx context.Context, params *GetBotChannelAssociationInput, optFns ...func(*core.Options)) (*GetBotChannelAssociationOutput, error) {
	op := core.Operation{
		Name:        "GetBotChannelAssociation",
		Method:      http.MethodGet,
		Path:        "/bots/{botName}/aliases/{aliasName}/channels/{name}",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBotChannelAssociationOutput](ctx, c, op, params, optFns)
}

type GetBotChannelAssociationInput struct {
	Name     *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	BotName  *string `location:"uri" locationName:"botName" json:"-" required:"true" min:"2" max:"50"`
	BotAlias *string `location:"uri" locationName:"aliasName" json:"-" required:"true" min:"1" max:"100"`
}

type GetBotChannelAssociationOutput struct {
	BotChannelAssociation
}

// GetBotChannelAssociations lists the channel associations of an alias. A
// BotAlias of - lists them for every alias.
func (c *Client) GetBotChannelAssociations(ctx context.Context, params *GetBotChannelAssociationsInput, optFns ...func(*core.Options)) (*GetBotChannelAssociationsOutput, error) {
	op := core.Operation{
		Name:        "GetBotChannelAssociations",
		Method:      http.MethodGet,
		Path:        "/bots/{botName}/aliases/{aliasName}/channels/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBotChannelAssociationsOutput](ctx, c, op, params, optFns)
}

type GetBotChannelAssociationsInput struct {
	BotName      *string `location:"uri" locationName:"botName" json:"-" required:"true" min:"2" max:"50"`
	BotAlias     *string `location:"uri" locationName:"aliasName" json:"-" required:"true" min:"1" max:"100"`
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-" min:"1" max:"100"`
}

type GetBotChannelAssociationsOutput struct {
	BotChannelAssociations []BotChannelAssociation `json:"botChannelAssociations,omitempty"`
	NextToken              *string                 `json:"nextToken,omitempty"`
}

// PutBotAlias creates or updates an alias. Updating requires the checksum of
// the current alias.
func (c *Client) PutBotAlias(ctx context.Context, params *PutBotAliasInput, optFns ...func(*core.Options)) (*PutBotAliasOutput, error) {
	op := core.Operation{
		Name:        "PutBotAlias",
		Method:      http.MethodPut,
		Path:        "/bots/{botName}/aliases/{name}",
		SuccessCode: http.StatusOK,
	}
	return invoke[PutBotAliasOutput](ctx, c, op, params, optFns)
}

type PutBotAliasInput struct {
	Name             *string                  `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	BotName          *string                  `location:"uri" locationName:"botName" json:"-" required:"true" min:"2" max:"50"`
	Description      *string                  `json:"description,omitempty" max:"200"`
	BotVersion       *string                  `json:"botVersion,omitempty" required:"true" min:"1" max:"64"`
	Checksum         *string                  `json:"checksum,omitempty"`
	ConversationLogs *ConversationLogsRequest `json:"conversationLogs,omitempty"`
	Tags             []Tag                    `json:"tags,omitempty" max:"200"`
}

type PutBotAliasOutput struct {
	BotAliasMetadata

	Tags []Tag `json:"tags,omitempty"`
}
