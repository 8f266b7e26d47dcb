// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"

	"github.com/tfctl/awsctl/core"
)

// DescribeAutomationExecutions lists automation executions, optionally
// filtered.
func (c *Client) DescribeAutomationExecutions(ctx context.Context, params *DescribeAutomationExecutionsInput, optFns ...func(*core.Options)) (*DescribeAutomationExecutionsOutput, error) {
	return invoke[DescribeAutomationExecutionsOutput](ctx, c, "DescribeAutomationExecutions", params, optFns)
}

type DescribeAutomationExecutionsInput struct {
	Filters    []AutomationExecutionFilter `json:"Filters,omitempty" min:"1" max:"10"`
	MaxResults *int32                      `json:"MaxResults,omitempty" min:"1" max:"50"`
	NextToken  *string                     `json:"NextToken,omitempty"`
}

type DescribeAutomationExecutionsOutput struct {
	AutomationExecutionMetadataList []AutomationExecutionMetadata `json:"AutomationExecutionMetadataList,omitempty"`
	NextToken                       *string                       `json:"NextToken,omitempty"`
}

// GetAutomationExecution returns the detailed state of an automation
// execution.
func (c *Client) GetAutomationExecution(ctx context.Context, params *GetAutomationExecutionInput, optFns ...func(*core.Options)) (*GetAutomationExecutionOutput, error) {
	return invoke[GetAutomationExecutionOutput](ctx, c, "GetAutomationExecution", params, optFns)
}

type GetAutomationExecutionInput struct {
	AutomationExecutionId *string `json:"AutomationExecutionId,omitempty" required:"true" min:"36" max:"36"`
}

type GetAutomationExecutionOutput struct {
	AutomationExecution *AutomationExecution `json:"AutomationExecution,omitempty"`
}

// StartAutomationExecution starts an automation document. A missing or
// empty ClientToken is filled with a random UUID that is reused across
// retries. The caller's input is not modified.
func (c *Client) StartAutomationExecution(ctx context.Context, params *StartAutomationExecutionInput, optFns ...func(*core.Options)) (*StartAutomationExecutionOutput, error) {
	if params != nil && aws.ToString(params.ClientToken) == "" {
		cp := *params
		cp.ClientToken = aws.String(uuid.NewString())
		params = &cp
	}
	return invoke[StartAutomationExecutionOutput](ctx, c, "StartAutomationExecution", params, optFns)
}

type StartAutomationExecutionInput struct {
	DocumentName        *string               `json:"DocumentName,omitempty" required:"true"`
	DocumentVersion     *string               `json:"DocumentVersion,omitempty"`
	Parameters          map[string][]string   `json:"Parameters,omitempty"`
	ClientToken         *string               `json:"ClientToken,omitempty" min:"36" max:"36"`
	Mode                ExecutionMode         `json:"Mode,omitempty"`
	TargetParameterName *string               `json:"TargetParameterName,omitempty" min:"1" max:"50"`
	Targets             []Target              `json:"Targets,omitempty" max:"5"`
	TargetMaps          []map[string][]string `json:"TargetMaps,omitempty" max:"300"`
	MaxConcurrency      *string               `json:"MaxConcurrency,omitempty" min:"1" max:"7"`
	MaxErrors           *string               `json:"MaxErrors,omitempty" min:"1" max:"7"`
	TargetLocations     []TargetLocation      `json:"TargetLocations,omitempty" min:"1" max:"100"`
	Tags                []Tag                 `json:"Tags,omitempty" max:"1000"`
}

type StartAutomationExecutionOutput struct {
	AutomationExecutionId *string `json:"AutomationExecutionId,omitempty"`
}

// StopAutomationExecution stops a running automation execution.
func (c *Client) StopAutomationExecution(ctx context.Context, params *StopAutomationExecutionInput, optFns ...func(*core.Options)) (*StopAutomationExecutionOutput, error) {
	return invoke[StopAutomationExecutionOutput](ctx, c, "StopAutomationExecution", params, optFns)
}

type StopAutomationExecutionInput struct {
	AutomationExecutionId *string  `json:"AutomationExecutionId,omitempty" required:"true" min:"36" max:"36"`
	Type                  StopType `json:"Type,omitempty"`
}

type StopAutomationExecutionOutput struct{}
