// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"context"

	"github.com/tfctl/awsctl/core"
)

// DeleteParameter deletes a parameter and its history.
func (c *Client) DeleteParameter(ctx context.Context, params *DeleteParameterInput, optFns ...func(*core.Options)) (*DeleteParameterOutput, error) {
	return invoke[DeleteParameterOutput](ctx, c, "DeleteParameter", params, optFns)
}

type DeleteParameterInput struct {
	Name *string `json:"Name,omitempty" required:"true" min:"1" max:"2048"`
}

type DeleteParameterOutput struct{}

// DeleteParameters deletes up to ten parameters. Names that did not exist
// come back in InvalidParameters.
func (c *Client) DeleteParameters(ctx context.Context, params *DeleteParametersInput, optFns ...func(*core.Options)) (*DeleteParametersOutput, error) {
	return invoke[DeleteParametersOutput](ctx, c, "DeleteParameters", params, optFns)
}

type DeleteParametersInput struct {
	Names []string `json:"Names,omitempty" required:"true" min:"1" max:"10"`
}

type DeleteParametersOutput struct {
	DeletedParameters []string `json:"DeletedParameters,omitempty"`
	InvalidParameters []string `json:"InvalidParameters,omitempty"`
}

// DescribeParameters lists parameter metadata without values.
func (c *Client) DescribeParameters(ctx context.Context, params *DescribeParametersInput, optFns ...func(*core.Options)) (*DescribeParametersOutput, error) {
	return invoke[DescribeParametersOutput](ctx, c, "DescribeParameters", params, optFns)
}

type DescribeParametersInput struct {
	Filters          []ParametersFilter      `json:"Filters,omitempty"`
	ParameterFilters []ParameterStringFilter `json:"ParameterFilters,omitempty"`
	MaxResults       *int32                  `json:"MaxResults,omitempty" min:"1" max:"50"`
	NextToken        *string                 `json:"NextToken,omitempty"`
}

type DescribeParametersOutput struct {
	Parameters []ParameterMetadata `json:"Parameters,omitempty"`
	NextToken  *string             `json:"NextToken,omitempty"`
}

// GetParameter returns one parameter. Name may carry a :version or :label
// selector.
func (c *Client) GetParameter(ctx context.Context, params *GetParameterInput, optFns ...func(*core.Options)) (*GetParameterOutput, error) {
	return invoke[GetParameterOutput](ctx, c, "GetParameter", params, optFns)
}

type GetParameterInput struct {
	Name           *string `json:"Name,omitempty" required:"true" min:"1" max:"2048"`
	WithDecryption *bool   `json:"WithDecryption,omitempty"`
}

type GetParameterOutput struct {
	Parameter *Parameter `json:"Parameter,omitempty"`
}

// GetParameterHistory lists every version of a parameter.
func (c *Client) GetParameterHistory(ctx context.Context, params *GetParameterHistoryInput, optFns ...func(*core.Options)) (*GetParameterHistoryOutput, error) {
	return invoke[GetParameterHistoryOutput](ctx, c, "GetParameterHistory", params, optFns)
}

type GetParameterHistoryInput struct {
	Name           *string `json:"Name,omitempty" required:"true" min:"1" max:"2048"`
	WithDecryption *bool   `json:"WithDecryption,omitempty"`
	MaxResults     *int32  `json:"MaxResults,omitempty" min:"1" max:"50"`
	NextToken      *string `json:"NextToken,omitempty"`
}

type GetParameterHistoryOutput struct {
	Parameters []ParameterHistory `json:"Parameters,omitempty"`
	NextToken  *string            `json:"NextToken,omitempty"`
}

// GetParameters returns up to ten parameters. Unknown names come back in
// InvalidParameters instead of failing the call.
func (c *Client) GetParameters(ctx context.Context, params *GetParametersInput, optFns ...func(*core.Options)) (*GetParametersOutput, error) {
	return invoke[GetParametersOutput](ctx, c, "GetParameters", params, optFns)
}

type GetParametersInput struct {
	Names          []string `json:"Names,omitempty" required:"true" min:"1" max:"10"`
	WithDecryption *bool    `json:"WithDecryption,omitempty"`
}

type GetParametersOutput struct {
	Parameters        []Parameter `json:"Parameters,omitempty"`
	InvalidParameters []string    `json:"InvalidParameters,omitempty"`
}

// GetParametersByPath returns the parameters under a hierarchy path, one
// level deep unless Recursive is set.
func (c *Client) GetParametersByPath(ctx context.Context, params *GetParametersByPathInput, optFns ...func(*core.Options)) (*GetParametersByPathOutput, error) {
	return invoke[GetParametersByPathOutput](ctx, c, "GetParametersByPath", params, optFns)
}

type GetParametersByPathInput struct {
	Path             *string                 `json:"Path,omitempty" required:"true" min:"1" max:"2048"`
	Recursive        *bool                   `json:"Recursive,omitempty"`
	ParameterFilters []ParameterStringFilter `json:"ParameterFilters,omitempty"`
	WithDecryption   *bool                   `json:"WithDecryption,omitempty"`
	MaxResults       *int32                  `json:"MaxResults,omitempty" min:"1" max:"10"`
	NextToken        *string                 `json:"NextToken,omitempty"`
}

type GetParametersByPathOutput struct {
	Parameters []Parameter `json:"Parameters,omitempty"`
	NextToken  *string     `json:"NextToken,omitempty"`
}

// PutParameter creates a parameter, or a new version of it when Overwrite is
// set.
func (c *Client) PutParameter(ctx context.Context, params *PutParameterInput, optFns ...func(*core.Options)) (*PutParameterOutput, error) {
	return invoke[PutParameterOutput](ctx, c, "PutParameter", params, optFns)
}

type PutParameterInput struct {
	Name           *string       `json:"Name,omitempty" required:"true" min:"1" max:"2048"`
	Description    *string       `json:"Description,omitempty" max:"1024"`
	Value          *string       `json:"Value,omitempty" required:"true"`
	Type           ParameterType `json:"Type,omitempty"`
	KeyId          *string       `json:"KeyId,omitempty" min:"1" max:"256"`
	Overwrite      *bool         `json:"Overwrite,omitempty"`
	AllowedPattern *string       `json:"AllowedPattern,omitempty" max:"1024"`
	Tags           []Tag         `json:"Tags,omitempty" max:"1000"`
	Tier           ParameterTier `json:"Tier,omitempty"`
	Policies       *string       `json:"Policies,omitempty" min:"1" max:"4096"`
	DataType       *string       `json:"DataType,omitempty" max:"128"`
}

type PutParameterOutput struct {
	Version *int64        `json:"Version,omitempty"`
	Tier    ParameterTier `json:"Tier,omitempty"`
}
