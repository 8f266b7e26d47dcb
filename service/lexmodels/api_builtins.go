// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import (
	"context"
	"net/http"

	"github.com/tfctl/awsctl/core"
)

// GetBuiltinIntent describes a built-in intent.
func (c *Client) GetBuiltinIntent(ctx context.Context, params *GetBuiltinIntentInput, optFns ...func(*core.Options)) (*GetBuiltinIntentOutput, error) {
	op := core.Operation{
		Name:        "GetBuiltinIntent",
		Method:      http.MethodGet,
		Path:        "/builtins/intents/{signature}",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBuiltinIntentOutput](ctx, c, op, params, optFns)
}

type GetBuiltinIntentInput struct {
	Signature *string `location:"uri" locationName:"signature" json:"-" required:"true"`
}

type GetBuiltinIntentOutput struct {
	Signature        *string             `json:"signature,omitempty"`
	SupportedLocales []Locale            `json:"supportedLocales,omitempty"`
	Slots            []BuiltinIntentSlot `json:"slots,omitempty"`
}

// GetBuiltinIntents lists the built-in intents that match the filters.
func (c *Client) GetBuiltinIntents(ctx context.Context, params *GetBuiltinIntentsInput, optFns ...func(*core.Options)) (*GetBuiltinIntentsOutput, error) {
	op := core.Operation{
		Name:        "GetBuiltinIntents",
		Method:      http.MethodGet,
		Path:        "/builtins/intents/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBuiltinIntentsOutput](ctx, c, op, params, optFns)
}

type GetBuiltinIntentsInput struct {
	Locale            Locale  `location:"querystring" locationName:"locale" json:"-"`
	SignatureContains *string `location:"querystring" locationName:"signatureContains" json:"-"`
	NextToken         *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults        *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
}

type GetBuiltinIntentsOutput struct {
	Intents   []BuiltinIntentMetadata `json:"intents,omitempty"`
	NextToken *string                 `json:"nextToken,omitempty"`
}

// GetBuiltinSlotTypes lists the built-in slot types that match the filters.
func (c *Client) GetBuiltinSlotTypes(ctx context.Context, params *GetBuiltinSlotTypesInput, optFns ...func(*core.Options)) (*GetBuiltinSlotTypesOutput, error) {
	op := core.Operation{
		Name:        "GetBuiltinSlotTypes",
		Method:      http.MethodGet,
		Path:        "/builtins/slottypes/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetBuiltinSlotTypesOutput](ctx, c, op, params, optFns)
}

type GetBuiltinSlotTypesInput struct {
	Locale            Locale  `location:"querystring" locationName:"locale" json:"-"`
	SignatureContains *string `location:"querystring" locationName:"signatureContains" json:"-"`
	NextToken         *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults        *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
}

type GetBuiltinSlotTypesOutput struct {
	SlotTypes []BuiltinSlotTypeMetadata `json:"slotTypes,omitempty"`
	NextToken *string                   `json:"nextToken,omitempty"`
}
