// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package lexmodels is a client for the Amazon Lex Model Building Service
// (API 2017-04-19, REST-JSON). Input members tagged location:"uri",
// "querystring" or "header" travel in the request line and headers; all
// others form the JSON body.
package lexmodels

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/tfctl/awsctl/core"
)

const (
	ServiceName = "Lex Model Building Service"
	APIVersion  = "2017-04-19"

	// LatestVersion names the mutable draft of a bot, intent or slot type.
	LatestVersion = "$LATEST"
)

// Info describes the Lex model building API to the dispatcher.
var Info = core.ServiceInfo{
	Name:           ServiceName,
	SigningName:    "lex",
	EndpointPrefix: "models.lex",
	APIVersion:     APIVersion,
	Errors:         errorRegistry,
}

// API is the set of Lex model building operations.
type API interface {
	CreateBotVersion(context.Context, *CreateBotVersionInput, ...func(*core.Options)) (*CreateBotVersionOutput, error)
	CreateIntentVersion(context.Context, *CreateIntentVersionInput, ...func(*core.Options)) (*CreateIntentVersionOutput, error)
	CreateSlotTypeVersion(context.Context, *CreateSlotTypeVersionInput, ...func(*core.Options)) (*CreateSlotTypeVersionOutput, error)
	DeleteBot(context.Context, *DeleteBotInput, ...func(*core.Options)) (*DeleteBotOutput, error)
	DeleteBotAlias(context.Context, *DeleteBotAliasInput, ...func(*core.Options)) (*DeleteBotAliasOutput, error)
	DeleteBotChannelAssociation(context.Context, *DeleteBotChannelAssociationInput, ...func(*core.Options)) (*DeleteBotChannelAssociationOutput, error)
	DeleteBotVersion(context.Context, *DeleteBotVersionInput, ...func(*core.Options)) (*DeleteBotVersionOutput, error)
	DeleteIntent(context.Context, *DeleteIntentInput, ...func(*core.Options)) (*DeleteIntentOutput, error)
	DeleteIntentVersion(context.Context, *DeleteIntentVersionInput, ...func(*core.Options)) (*DeleteIntentVersionOutput, error)
	DeleteSlotType(context.Context, *DeleteSlotTypeInput, ...func(*core.Options)) (*DeleteSlotTypeOutput, error)
	DeleteSlotTypeVersion(context.Context, *DeleteSlotTypeVersionInput, ...func(*core.Options)) (*DeleteSlotTypeVersionOutput, error)
	DeleteUtterances(context.Context, *DeleteUtterancesInput, ...func(*core.Options)) (*DeleteUtterancesOutput, error)
	GetBot(context.Context, *GetBotInput, ...func(*core.Options)) (*GetBotOutput, error)
	GetBotAlias(context.Context, *GetBotAliasInput, ...func(*core.Options)) (*GetBotAliasOutput, error)
	GetBotAliases(context.Context, *GetBotAliasesInput, ...func(*core.Options)) (*GetBotAliasesOutput, error)
	GetBotChannelAssociation(context.Context, *GetBotChannelAssociationInput, ...func(*core.Options)) (*GetBotChannelAssociationOutput, error)
	GetBotChannelAssociations(context.Context, *GetBotChannelAssociationsInput, ...func(*core.Options)) (*GetBotChannelAssociationsOutput, error)
	GetBotVersions(context.Context, *GetBotVersionsInput, ...func(*core.Options)) (*GetBotVersionsOutput, error)
	GetBots(context.Context, *GetBotsInput, ...func(*core.Options)) (*GetBotsOutput, error)
	GetBuiltinIntent(context.Context, *GetBuiltinIntentInput, ...func(*core.Options)) (*GetBuiltinIntentOutput, error)
	GetBuiltinIntents(context.Context, *GetBuiltinIntentsInput, ...func(*core.Options)) (*GetBuiltinIntentsOutput, error)
	GetBuiltinSlotTypes(context.Context, *GetBuiltinSlotTypesInput, ...func(*core.Options)) (*GetBuiltinSlotTypesOutput, error)
	GetExport(context.Context, *GetExportInput, ...func(*core.Options)) (*GetExportOutput, error)
	GetImport(context.Context, *GetImportInput, ...func(*core.Options)) (*GetImportOutput, error)
	GetIntent(context.Context, *GetIntentInput, ...func(*core.Options)) (*GetIntentOutput, error)
	GetIntentVersions(context.Context, *GetIntentVersionsInput, ...func(*core.Options)) (*GetIntentVersionsOutput, error)
	GetIntents(context.Context, *GetIntentsInput, ...func(*core.Options)) (*GetIntentsOutput, error)
	GetSlotType(context.Context, *GetSlotTypeInput, ...func(*core.Options)) (*GetSlotTypeOutput, error)
	GetSlotTypeVersions(context.Context, *GetSlotTypeVersionsInput, ...func(*core.Options)) (*GetSlotTypeVersionsOutput, error)
	GetSlotTypes(context.Context, *GetSlotTypesInput, ...func(*core.Options)) (*GetSlotTypesOutput, error)
	GetUtterancesView(context.Context, *GetUtterancesViewInput, ...func(*core.Options)) (*GetUtterancesViewOutput, error)
	ListTagsForResource(context.Context, *ListTagsForResourceInput, ...func(*core.Options)) (*ListTagsForResourceOutput, error)
	PutBot(context.Context, *PutBotInput, ...func(*core.Options)) (*PutBotOutput, error)
	PutBotAlias(context.Context, *PutBotAliasInput, ...func(*core.Options)) (*PutBotAliasOutput, error)
	PutIntent(context.Context, *PutIntentInput, ...func(*core.Options)) (*PutIntentOutput, error)
	PutSlotType(context.Context, *PutSlotTypeInput, ...func(*core.Options)) (*PutSlotTypeOutput, error)
	StartImport(context.Context, *StartImportInput, ...func(*core.Options)) (*StartImportOutput, error)
	TagResource(context.Context, *TagResourceInput, ...func(*core.Options)) (*TagResourceOutput, error)
	UntagResource(context.Context, *UntagResourceInput, ...func(*core.Options)) (*UntagResourceOutput, error)
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

func invoke[O any](ctx context.Context, c *Client, op core.Operation, in any, optFns []func(*core.Options)) (*O, error) {
	out := new(O)
	if err := c.client.InvokeREST(ctx, op, in, out, optFns...); err != nil {
		return nil, err
	}
	return out, nil
}
