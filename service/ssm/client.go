// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package ssm is a client for AWS Systems Manager (API 2014-11-06, AWS JSON
// 1.1). It covers Parameter Store, Run Command, State Manager associations,
// documents, automation and resource tags.
package ssm

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"

	"github.com/tfctl/awsctl/core"
)

const (
	ServiceName = "SSM"
	APIVersion  = "2014-11-06"
)

var Info = core.ServiceInfo{
	Name:           ServiceName,
	SigningName:    "ssm",
	EndpointPrefix: "ssm",
	APIVersion:     APIVersion,
	TargetPrefix:   "AmazonSSM",
	Errors:         errorRegistry,
}

// API is the set of SSM operations implemented by *Client.
type API interface {
	AddTagsToResource(context.Context, *AddTagsToResourceInput, ...func(*core.Options)) (*AddTagsToResourceOutput, error)
	CancelCommand(context.Context, *CancelCommandInput, ...func(*core.Options)) (*CancelCommandOutput, error)
	CreateAssociation(context.Context, *CreateAssociationInput, ...func(*core.Options)) (*CreateAssociationOutput, error)
	CreateAssociationBatch(context.Context, *CreateAssociationBatchInput, ...func(*core.Options)) (*CreateAssociationBatchOutput, error)
	CreateDocument(context.Context, *CreateDocumentInput, ...func(*core.Options)) (*CreateDocumentOutput, error)
	DeleteAssociation(context.Context, *DeleteAssociationInput, ...func(*core.Options)) (*DeleteAssociationOutput, error)
	DeleteDocument(context.Context, *DeleteDocumentInput, ...func(*core.Options)) (*DeleteDocumentOutput, error)
	DeleteParameter(context.Context, *DeleteParameterInput, ...func(*core.Options)) (*DeleteParameterOutput, error)
	DeleteParameters(context.Context, *DeleteParametersInput, ...func(*core.Options)) (*DeleteParametersOutput, error)
	DescribeAssociation(context.Context, *DescribeAssociationInput, ...func(*core.Options)) (*DescribeAssociationOutput, error)
	DescribeAutomationExecutions(context.Context, *DescribeAutomationExecutionsInput, ...func(*core.Options)) (*DescribeAutomationExecutionsOutput, error)
	DescribeDocument(context.Context, *DescribeDocumentInput, ...func(*core.Options)) (*DescribeDocumentOutput, error)
	DescribeParameters(context.Context, *DescribeParametersInput, ...func(*core.Options)) (*DescribeParametersOutput, error)
	GetAutomationExecution(context.Context, *GetAutomationExecutionInput, ...func(*core.Options)) (*GetAutomationExecutionOutput, error)
	GetCommandInvocation(context.Context, *GetCommandInvocationInput, ...func(*core.Options)) (*GetCommandInvocationOutput, error)
	GetDocument(context.Context, *GetDocumentInput, ...func(*core.Options)) (*GetDocumentOutput, error)
	GetParameter(context.Context, *GetParameterInput, ...func(*core.Options)) (*GetParameterOutput, error)
	GetParameterHistory(context.Context, *GetParameterHistoryInput, ...func(*core.Options)) (*GetParameterHistoryOutput, error)
	GetParameters(context.Context, *GetParametersInput, ...func(*core.Options)) (*GetParametersOutput, error)
	GetParametersByPath(context.Context, *GetParametersByPathInput, ...func(*core.Options)) (*GetParametersByPathOutput, error)
	ListAssociations(context.Context, *ListAssociationsInput, ...func(*core.Options)) (*ListAssociationsOutput, error)
	ListCommandInvocations(context.Context, *ListCommandInvocationsInput, ...func(*core.Options)) (*ListCommandInvocationsOutput, error)
	ListCommands(context.Context, *ListCommandsInput, ...func(*core.Options)) (*ListCommandsOutput, error)
	ListDocuments(context.Context, *ListDocumentsInput, ...func(*core.Options)) (*ListDocumentsOutput, error)
	ListTagsForResource(context.Context, *ListTagsForResourceInput, ...func(*core.Options)) (*ListTagsForResourceOutput, error)
	PutParameter(context.Context, *PutParameterInput, ...func(*core.Options)) (*PutParameterOutput, error)
	RemoveTagsFromResource(context.Context, *RemoveTagsFromResourceInput, ...func(*core.Options)) (*RemoveTagsFromResourceOutput, error)
	SendCommand(context.Context, *SendCommandInput, ...func(*core.Options)) (*SendCommandOutput, error)
	StartAutomationExecution(context.Context, *StartAutomationExecutionInput, ...func(*core.Options)) (*StartAutomationExecutionOutput, error)
	StopAutomationExecution(context.Context, *StopAutomationExecutionInput, ...func(*core.Options)) (*StopAutomationExecutionOutput, error)
	UpdateAssociation(context.Context, *UpdateAssociationInput, ...func(*core.Options)) (*UpdateAssociationOutput, error)
	UpdateDocument(context.Context, *UpdateDocumentInput, ...func(*core.Options)) (*UpdateDocumentOutput, error)
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

func (c *Client) Options() core.Options {
	return c.client.Options()
}

func invoke[O any](ctx context.Context, c *Client, op string, in any, optFns []func(*core.Options)) (*O, error) {
	out := new(O)
	if err := c.client.InvokeJSON(ctx, core.Operation{Name: op}, in, out, optFns...); err != nil {
		return nil, err
	}
	return out, nil
}
