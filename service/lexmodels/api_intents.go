// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import (
	"context"
	"net/http"

	"github.com/tfctl/awsctl/core"
)

// CreateIntentVersion creates a numbered version from the $LATEST version of
// an intent.
func (c *Client) CreateIntentVersion(ctx context.Context, params *CreateIntentVersionInput, optFns ...func(*core.Options)) (*CreateIntentVersionOutput, error) {
	op := core.Operation{
		Name:        "CreateIntentVersion",
		Method:      http.MethodPost,
		Path:        "/intents/{name}/versions",
		SuccessCode: http.StatusCreated,
	}
	return invoke[CreateIntentVersionOutput](ctx, c, op, params, optFns)
}

type CreateIntentVersionInput struct {
	Name     *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	Checksum *string `json:"checksum,omitempty"`
}

type CreateIntentVersionOutput struct {
	IntentDescription
}

// DeleteIntent deletes all versions of an intent. Intents still used by a bot
// cannot be deleted.
func (c *Client) DeleteIntent(ctx context.Context, params *DeleteIntentInput, optFns ...func(*core.Options)) (*DeleteIntentOutput, error) {
	op := core.Operation{
		Name:        "DeleteIntent",
		Method:      http.MethodDelete,
		Path:        "/intents/{name}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[DeleteIntentOutput](ctx, c, op, params, optFns)
}

type DeleteIntentInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
}

type DeleteIntentOutput struct{}

// DeleteIntentVersion deletes one numbered version of an intent.
func (c *Client) DeleteIntentVersion(ctx context.Context, params *DeleteIntentVersionInput, optFns ...func(*core.Options)) (*DeleteIntentVersionOutput, error) {
	op := core.Operation{
		Name:        "DeleteIntentVersion",
		Method:      http.MethodDelete,
		Path:        "/intents/{name}/versions/{version}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[DeleteIntentVersionOutput](ctx, c, op, params, optFns)
}

type DeleteIntentVersionInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	Version *string `location:"uri" locationName:"version" json:"-" required:"true" min:"1" max:"64"`
}

type DeleteIntentVersionOutput struct{}

// GetIntent returns one version of an intent.
func (c *Client) GetIntent(ctx context.Context, params *GetIntentInput, optFns ...func(*core.Options)) (*GetIntentOutput, error) {
	op := core.Operation{
		Name:        "GetIntent",
		Method:      http.MethodGet,
		Path:        "/intents/{name}/versions/{version}",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetIntentOutput](ctx, c, op, params, optFns)
}

type GetIntentInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	Version *string `location:"uri" locationName:"version" json:"-" required:"true" min:"1" max:"64"`
}

type GetIntentOutput struct {
	IntentDescription
}

// GetIntentVersions lists the versions of an intent.
func (c *Client) GetIntentVersions(ctx context.Context, params *GetIntentVersionsInput, optFns ...func(*core.Options)) (*GetIntentVersionsOutput, error) {
	op := core.Operation{
		Name:        "GetIntentVersions",
		Method:      http.MethodGet,
		Path:        "/intents/{name}/versions/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetIntentVersionsOutput](ctx, c, op, params, optFns)
}

type GetIntentVersionsInput struct {
	Name       *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	NextToken  *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
}

type GetIntentVersionsOutput struct {
	Intents   []IntentMetadata `json:"intents,omitempty"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// GetIntents lists the $LATEST version of every intent.
func (c *Client) GetIntents(ctx context.Context, params *GetIntentsInput, optFns ...func(*core.Options)) (*GetIntentsOutput, error) {
	op := core.Operation{
		Name:        "GetIntents",
		Method:      http.MethodGet,
		Path:        "/intents/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetIntentsOutput](ctx, c, op, params, optFns)
}

type GetIntentsInput struct {
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-" min:"1" max:"100"`
}

type GetIntentsOutput struct {
	Intents   []IntentMetadata `json:"intents,omitempty"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// PutIntent creates or replaces the $LATEST version of an intent.
func (c *Client) PutIntent(ctx context.Context, params *PutIntentInput, optFns ...func(*core.Options)) (*PutIntentOutput, error) {
	op := core.Operation{
		Name:        "PutIntent",
		Method:      http.MethodPut,
		Path:        "/intents/{name}/versions/$LATEST",
		SuccessCode: http.StatusOK,
	}
	return invoke[PutIntentOutput](ctx, c, op, params, optFns)
}

type PutIntentInput struct {
	Name                  *string              `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	Description           *string              `json:"description,omitempty" max:"200"`
	Slots                 []Slot               `json:"slots,omitempty" max:"100"`
	SampleUtterances      []string             `json:"sampleUtterances,omitempty" max:"1500"`
	ConfirmationPrompt    *Prompt              `json:"confirmationPrompt,omitempty"`
	RejectionStatement    *Statement           `json:"rejectionStatement,omitempty"`
	FollowUpPrompt        *FollowUpPrompt      `json:"followUpPrompt,omitempty"`
	ConclusionStatement   *Statement           `json:"conclusionStatement,omitempty"`
	DialogCodeHook        *CodeHook            `json:"dialogCodeHook,omitempty"`
	FulfillmentActivity   *FulfillmentActivity `json:"fulfillmentActivity,omitempty"`
	ParentIntentSignature *string              `json:"parentIntentSignature,omitempty"`
	Checksum              *string              `json:"checksum,omitempty"`
	CreateVersion         *bool                `json:"createVersion,omitempty"`
	KendraConfiguration   *KendraConfiguration `json:"kendraConfiguration,omitempty"`
}

type PutIntentOutput struct {
	IntentDescription

	CreateVersion *bool `json:"createVersion,omitempty"`
}
