// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"context"

	"github.com/tfctl/awsctl/core"
)

// CreateAssociation associates a document with instances or targets. The
// association is applied on the given schedule, or once when
// ScheduleExpression is empty.
func (c *Client) CreateAssociation(ctx context.Context, params *CreateAssociationInput, optFns ...func(*core.Options)) (*CreateAssociationOutput, error) {
	return invoke[CreateAssociationOutput](ctx, c, "CreateAssociation", params, optFns)
}

type CreateAssociationInput struct {
	Name                          *string                            `json:"Name,omitempty" required:"true"`
	DocumentVersion               *string                            `json:"DocumentVersion,omitempty"`
	InstanceId                    *string                            `json:"InstanceId,omitempty"`
	Parameters                    map[string][]string                `json:"Parameters,omitempty"`
	Targets                       []Target                           `json:"Targets,omitempty" max:"5"`
	ScheduleExpression            *string                            `json:"ScheduleExpression,omitempty" min:"1" max:"256"`
	OutputLocation                *InstanceAssociationOutputLocation `json:"OutputLocation,omitempty"`
	AssociationName               *string                            `json:"AssociationName,omitempty"`
	AutomationTargetParameterName *string                            `json:"AutomationTargetParameterName,omitempty" min:"1" max:"50"`
	MaxErrors                     *string                            `json:"MaxErrors,omitempty" min:"1" max:"7"`
	MaxConcurrency                *string                            `json:"MaxConcurrency,omitempty" min:"1" max:"7"`
	ComplianceSeverity            AssociationComplianceSeverity      `json:"ComplianceSeverity,omitempty"`
	SyncCompliance                AssociationSyncCompliance          `json:"SyncCompliance,omitempty"`
	ApplyOnlyAtCronInterval       *bool                              `json:"ApplyOnlyAtCronInterval,omitempty"`
}

type CreateAssociationOutput struct {
	AssociationDescription *AssociationDescription `json:"AssociationDescription,omitempty"`
}

// CreateAssociationBatch creates several associations. Entries that fail are
// reported in Failed; the call itself succeeds.
func (c *Client) CreateAssociationBatch(ctx context.Context, params *CreateAssociationBatchInput, optFns ...func(*core.Options)) (*CreateAssociationBatchOutput, error) {
	return invoke[CreateAssociationBatchOutput](ctx, c, "CreateAssociationBatch", params, optFns)
}

type CreateAssociationBatchInput struct {
	Entries []CreateAssociationBatchRequestEntry `json:"Entries,omitempty" required:"true" min:"1"`
}

type CreateAssociationBatchOutput struct {
	Successful []AssociationDescription  `json:"Successful,omitempty"`
	Failed     []FailedCreateAssociation `json:"Failed,omitempty"`
}

// DeleteAssociation removes an association, by AssociationId or by Name and
// InstanceId.
func (c *Client) DeleteAssociation(ctx context.Context, params *DeleteAssociationInput, optFns ...func(*core.Options)) (*DeleteAssociationOutput, error) {
	return invoke[DeleteAssociationOutput](ctx, c, "DeleteAssociation", params, optFns)
}

type DeleteAssociationInput struct {
	Name          *string `json:"Name,omitempty"`
	InstanceId    *string `json:"InstanceId,omitempty"`
	AssociationId *string `json:"AssociationId,omitempty"`
}

type DeleteAssociationOutput struct{}

// DescribeAssociation describes an association, by AssociationId or by Name
// and InstanceId.
func (c *Client) DescribeAssociation(ctx context.Context, params *DescribeAssociationInput, optFns ...func(*core.Options)) (*DescribeAssociationOutput, error) {
	return invoke[DescribeAssociationOutput](ctx, c, "DescribeAssociation", params, optFns)
}

type DescribeAssociationInput struct {
	Name               *string `json:"Name,omitempty"`
	InstanceId         *string `json:"InstanceId,omitempty"`
	AssociationId      *string `json:"AssociationId,omitempty"`
	AssociationVersion *string `json:"AssociationVersion,omitempty"`
}

type DescribeAssociationOutput struct {
	AssociationDescription *AssociationDescription `json:"AssociationDescription,omitempty"`
}

// ListAssociations lists associations, optionally filtered.
func (c *Client) ListAssociations(ctx context.Context, params *ListAssociationsInput, optFns ...func(*core.Options)) (*ListAssociationsOutput, error) {
	return invoke[ListAssociationsOutput](ctx, c, "ListAssociations", params, optFns)
}

type ListAssociationsInput struct {
	AssociationFilterList []AssociationFilter `json:"AssociationFilterList,omitempty" min:"1"`
	MaxResults            *int32              `json:"MaxResults,omitempty" min:"1" max:"50"`
	NextToken             *string             `json:"NextToken,omitempty"`
}

type ListAssociationsOutput struct {
	Associations []Association `json:"Associations,omitempty"`
	NextToken    *string       `json:"NextToken,omitempty"`
}

// UpdateAssociation changes an association and creates a new association
// version.
func (c *Client) UpdateAssociation(ctx context.Context, params *UpdateAssociationInput, optFns ...func(*core.Options)) (*UpdateAssociationOutput, error) {
	return invoke[UpdateAssociationOutput](ctx, c, "UpdateAssociation", params, optFns)
}

type UpdateAssociationInput struct {
	AssociationId                 *string                            `json:"AssociationId,omitempty" required:"true"`
	Parameters                    map[string][]string                `json:"Parameters,omitempty"`
	DocumentVersion               *string                            `json:"DocumentVersion,omitempty"`
	ScheduleExpression            *string                            `json:"ScheduleExpression,omitempty" min:"1" max:"256"`
	OutputLocation                *InstanceAssociationOutputLocation `json:"OutputLocation,omitempty"`
	Name                          *string                            `json:"Name,omitempty"`
	Targets                       []Target                           `json:"Targets,omitempty" max:"5"`
	AssociationName               *string                            `json:"AssociationName,omitempty"`
	AssociationVersion            *string                            `json:"AssociationVersion,omitempty"`
	AutomationTargetParameterName *string                            `json:"AutomationTargetParameterName,omitempty" min:"1" max:"50"`
	MaxErrors                     *string                            `json:"MaxErrors,omitempty" min:"1" max:"7"`
	MaxConcurrency                *string                            `json:"MaxConcurrency,omitempty" min:"1" max:"7"`
	ComplianceSeverity            AssociationComplianceSeverity      `json:"ComplianceSeverity,omitempty"`
	SyncCompliance                AssociationSyncCompliance          `json:"SyncCompliance,omitempty"`
	ApplyOnlyAtCronInterval       *bool                              `json:"ApplyOnlyAtCronInterval,omitempty"`
}

type UpdateAssociationOutput struct {
	AssociationDescription *AssociationDescription `json:"AssociationDescription,omitempty"`
}
