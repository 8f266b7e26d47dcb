// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import (
	"context"
	"net/http"

	"github.com/tfctl/awsctl/core"
)

// CreateSlotTypeVersion creates a numbered version from the $LATEST version
// of a slot type.
func (c *Client) CreateSlotTypeVersion(ctx context.Context, params *CreateSlotTypeVersionInput, optFns ...func(*core.Options)) (*CreateSlotTypeVersionOutput, error) {
	op := core.Operation{
		Name:        "CreateSlotTypeVersion",
		Method:      http.MethodPost,
		Path:        "/slottypes/{name}/versions",
		SuccessCode: http.StatusCreated,
	}
	return invoke[CreateSlotTypeVersionOutput](ctx, c, op, params, optFns)
}

type CreateSlotTypeVersionInput struct {
	Name     *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	Checksum *string `json:"checksum,omitempty"`
}

type CreateSlotTypeVersionOutput struct {
	SlotTypeDescription
}

// DeleteSlotType deletes all versions of a slot type.
func (c *Client) DeleteSlotType(ctx context.Context, params *DeleteSlotTypeInput, optFns ...func(*core.Options)) (*DeleteSlotTypeOutput, error) {
	op := core.Operation{
		Name:        "DeleteSlotType",
		Method:      http.MethodDelete,
		Path:        "/slottypes/{name}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[DeleteSlotTypeOutput](ctx, c, op, params, optFns)
}

type DeleteSlotTypeInput struct {
	Name *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
}

type DeleteSlotTypeOutput struct{}

// DeleteSlotTypeVersion deletes one numbered version of a slot type.
func (c *Client) DeleteSlotTypeVersion(ctx context.Context, params *DeleteSlotTypeVersionInput, optFns ...func(*core.Options)) (*DeleteSlotTypeVersionOutput, error) {
	op := core.Operation{
		Name:        "DeleteSlotTypeVersion",
		Method:      http.MethodDelete,
		Path:        "/slottypes/{name}/version/{version}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[DeleteSlotTypeVersionOutput](ctx, c, op, params, optFns)
}

type DeleteSlotTypeVersionInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	Version *string `location:"uri" locationName:"version" json:"-" required:"true" min:"1" max:"64"`
}

type DeleteSlotTypeVersionOutput struct{}

// GetSlotType returns one version of a slot type.
func (c *Client) GetSlotType(ctx context.Context, params *GetSlotTypeInput, optFns ...func(*core.Options)) (*GetSlotTypeOutput, error) {
	op := core.Operation{
		Name:        "GetSlotType",
		Method:      http.MethodGet,
		Path:        "/slottypes/{name}/versions/{version}",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetSlotTypeOutput](ctx, c, op, params, optFns)
}

type GetSlotTypeInput struct {
	Name    *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	Version *string `location:"uri" locationName:"version" json:"-" required:"true" min:"1" max:"64"`
}

type GetSlotTypeOutput struct {
	SlotTypeDescription
}

// GetSlotTypeVersions lists the versions of a slot type.
func (c *Client) GetSlotTypeVersions(ctx context.Context, params *GetSlotTypeVersionsInput, optFns ...func(*core.Options)) (*GetSlotTypeVersionsOutput, error) {
	op := core.Operation{
		Name:        "GetSlotTypeVersions",
		Method:      http.MethodGet,
		Path:        "/slottypes/{name}/versions/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetSlotTypeVersionsOutput](ctx, c, op, params, optFns)
}

type GetSlotTypeVersionsInput struct {
	Name       *string `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	NextToken  *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
}

type GetSlotTypeVersionsOutput struct {
	SlotTypes []SlotTypeMetadata `json:"slotTypes,omitempty"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// GetSlotTypes lists the $LATEST version of every slot type.
func (c *Client) GetSlotTypes(ctx context.Context, params *GetSlotTypesInput, optFns ...func(*core.Options)) (*GetSlotTypesOutput, error) {
	op := core.Operation{
		Name:        "GetSlotTypes",
		Method:      http.MethodGet,
		Path:        "/slottypes/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetSlotTypesOutput](ctx, c, op, params, optFns)
}

type GetSlotTypesInput struct {
	NextToken    *string `location:"querystring" locationName:"nextToken" json:"-"`
	MaxResults   *int32  `location:"querystring" locationName:"maxResults" json:"-" min:"1" max:"50"`
	NameContains *string `location:"querystring" locationName:"nameContains" json:"-" min:"1" max:"100"`
}

type GetSlotTypesOutput struct {
	SlotTypes []SlotTypeMetadata `json:"slotTypes,omitempty"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// PutSlotType creates or replaces the $LATEST version of a slot type.
func (c *Client) PutSlotType(ctx context.Context, params *PutSlotTypeInput, optFns ...func(*core.Options)) (*PutSlotTypeOutput, error) {
	op := core.Operation{
		Name:        "PutSlotType",
		Method:      http.MethodPut,
		Path:        "/slottypes/{name}/versions/$LATEST",
		SuccessCode: http.StatusOK,
	}
	return invoke[PutSlotTypeOutput](ctx, c, op, params, optFns)
}

type PutSlotTypeInput struct {
	Name                    *string                    `location:"uri" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	Description             *string                    `json:"description,omitempty" max:"200"`
	EnumerationValues       []EnumerationValue         `json:"enumerationValues,omitempty" min:"1" max:"10000"`
	Checksum                *string                    `json:"checksum,omitempty"`
	ValueSelectionStrategy  SlotValueSelectionStrategy `json:"valueSelectionStrategy,omitempty"`
	CreateVersion           *bool                      `json:"createVersion,omitempty"`
	ParentSlotTypeSignature *string                    `json:"parentSlotTypeSignature,omitempty" min:"1" max:"100"`
	SlotTypeConfigurations  []SlotTypeConfiguration    `json:"slotTypeConfigurations,omitempty" max:"10"`
}

type PutSlotTypeOutput struct {
	SlotTypeDescription

	CreateVersion *bool `json:"createVersion,omitempty"`
}
