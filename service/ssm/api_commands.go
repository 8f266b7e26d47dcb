// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"context"

	"github.com/tfctl/awsctl/core"
)

// CancelCommand attempts to cancel a command. Cancellation is best effort;
// instances that already finished keep their result.
func (c *Client) CancelCommand(ctx context.Context, params *CancelCommandInput, optFns ...func(*core.Options)) (*CancelCommandOutput, error) {
	return invoke[CancelCommandOutput](ctx, c, "CancelCommand", params, optFns)
}

type CancelCommandInput struct {
	CommandId   *string  `json:"CommandId,omitempty" required:"true" min:"36" max:"36"`
	InstanceIds []string `json:"InstanceIds,omitempty" max:"50"`
}

type CancelCommandOutput struct{}

// GetCommandInvocation returns the result of a command on one instance,
// optionally for a single plugin.
func (c *Client) GetCommandInvocation(ctx context.Context, params *GetCommandInvocationInput, optFns ...func(*core.Options)) (*GetCommandInvocationOutput, error) {
	return invoke[GetCommandInvocationOutput](ctx, c, "GetCommandInvocation", params, optFns)
}

type GetCommandInvocationInput struct {
	CommandId  *string `json:"CommandId,omitempty" required:"true" min:"36" max:"36"`
	InstanceId *string `json:"InstanceId,omitempty" required:"true"`
	PluginName *string `json:"PluginName,omitempty" min:"4"`
}

type GetCommandInvocationOutput struct {
	CommandId              *string                 `json:"CommandId,omitempty"`
	InstanceId             *string                 `json:"InstanceId,omitempty"`
	Comment                *string                 `json:"Comment,omitempty"`
	DocumentName           *string                 `json:"DocumentName,omitempty"`
	DocumentVersion        *string                 `json:"DocumentVersion,omitempty"`
	PluginName             *string                 `json:"PluginName,omitempty"`
	ResponseCode           *int32                  `json:"ResponseCode,omitempty"`
	ExecutionStartDateTime *string                 `json:"ExecutionStartDateTime,omitempty"`
	ExecutionElapsedTime   *string                 `json:"ExecutionElapsedTime,omitempty"`
	ExecutionEndDateTime   *string                 `json:"ExecutionEndDateTime,omitempty"`
	Status                 CommandInvocationStatus `json:"Status,omitempty"`
	StatusDetails          *string                 `json:"StatusDetails,omitempty"`
	StandardOutputContent  *string                 `json:"StandardOutputContent,omitempty"`
	StandardOutputUrl      *string                 `json:"StandardOutputUrl,omitempty"`
	StandardErrorContent   *string                 `json:"StandardErrorContent,omitempty"`
	StandardErrorUrl       *string                 `json:"StandardErrorUrl,omitempty"`
	CloudWatchOutputConfig *CloudWatchOutputConfig `json:"CloudWatchOutputConfig,omitempty"`
}

// ListCommandInvocations lists the per-instance invocations of commands.
// Details adds plugin output.
func (c *Client) ListCommandInvocations(ctx context.Context, params *ListCommandInvocationsInput, optFns ...func(*core.Options)) (*ListCommandInvocationsOutput, error) {
	return invoke[ListCommandInvocationsOutput](ctx, c, "ListCommandInvocations", params, optFns)
}

type ListCommandInvocationsInput struct {
	CommandId  *string         `json:"CommandId,omitempty" min:"36" max:"36"`
	InstanceId *string         `json:"InstanceId,omitempty"`
	MaxResults *int32          `json:"MaxResults,omitempty" min:"1" max:"50"`
	NextToken  *string         `json:"NextToken,omitempty"`
	Filters    []CommandFilter `json:"Filters,omitempty" min:"1" max:"5"`
	Details    *bool           `json:"Details,omitempty"`
}

type ListCommandInvocationsOutput struct {
	CommandInvocations []CommandInvocation `json:"CommandInvocations,omitempty"`
	NextToken          *string             `json:"NextToken,omitempty"`
}

// ListCommands lists the commands requested in this account and region.
func (c *Client) ListCommands(ctx context.Context, params *ListCommandsInput, optFns ...func(*core.Options)) (*ListCommandsOutput, error) {
	return invoke[ListCommandsOutput](ctx, c, "ListCommands", params, optFns)
}

type ListCommandsInput struct {
	CommandId  *string         `json:"CommandId,omitempty" min:"36" max:"36"`
	InstanceId *string         `json:"InstanceId,omitempty"`
	MaxResults *int32          `json:"MaxResults,omitempty" min:"1" max:"50"`
	NextToken  *string         `json:"NextToken,omitempty"`
	Filters    []CommandFilter `json:"Filters,omitempty" min:"1" max:"5"`
}

type ListCommandsOutput struct {
	Commands  []Command `json:"Commands,omitempty"`
	NextToken *string   `json:"NextToken,omitempty"`
}

// SendCommand runs a document on instances selected by InstanceIds or
// Targets.
func (c *Client) SendCommand(ctx context.Context, params *SendCommandInput, optFns ...func(*core.Options)) (*SendCommandOutput, error) {
	return invoke[SendCommandOutput](ctx, c, "SendCommand", params, optFns)
}

type SendCommandInput struct {
	InstanceIds            []string                `json:"InstanceIds,omitempty"`
	Targets                []Target                `json:"Targets,omitempty" max:"5"`
	DocumentName           *string                 `json:"DocumentName,omitempty" required:"true"`
	DocumentVersion        *string                 `json:"DocumentVersion,omitempty"`
	DocumentHash           *string                 `json:"DocumentHash,omitempty" max:"256"`
	DocumentHashType       DocumentHashType        `json:"DocumentHashType,omitempty"`
	TimeoutSeconds         *int32                  `json:"TimeoutSeconds,omitempty" min:"30" max:"2592000"`
	Comment                *string                 `json:"Comment,omitempty" max:"100"`
	Parameters             map[string][]string     `json:"Parameters,omitempty"`
	OutputS3Region         *string                 `json:"OutputS3Region,omitempty" min:"3" max:"20"`
	OutputS3BucketName     *string                 `json:"OutputS3BucketName,omitempty" min:"3" max:"63"`
	OutputS3KeyPrefix      *string                 `json:"OutputS3KeyPrefix,omitempty" max:"500"`
	MaxConcurrency         *string                 `json:"MaxConcurrency,omitempty" min:"1" max:"7"`
	MaxErrors              *string                 `json:"MaxErrors,omitempty" min:"1" max:"7"`
	ServiceRoleArn         *string                 `json:"ServiceRoleArn,omitempty"`
	NotificationConfig     *NotificationConfig     `json:"NotificationConfig,omitempty"`
	CloudWatchOutputConfig *CloudWatchOutputConfig `json:"CloudWatchOutputConfig,omitempty"`
}

type SendCommandOutput struct {
	Command *Command `json:"Command,omitempty"`
}
