// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"context"

	"github.com/tfctl/awsctl/core"
)

// AddTagsToResource adds or overwrites tags on a document, managed instance,
// maintenance window, parameter, patch baseline or OpsItem.
func (c *Client) AddTagsToResource(ctx context.Context, params *AddTagsToResourceInput, optFns ...func(*core.Options)) (*AddTagsToResourceOutput, error) {
	return invoke[AddTagsToResourceOutput](ctx, c, "AddTagsToResource", params, optFns)
}

type AddTagsToResourceInput struct {
	ResourceType ResourceTypeForTagging `json:"ResourceType,omitempty" required:"true"`
	ResourceId   *string                `json:"ResourceId,omitempty" required:"true"`
	Tags         []Tag                  `json:"Tags,omitempty" required:"true" max:"1000"`
}

type AddTagsToResourceOutput struct{}

// ListTagsForResource lists the tags of a resource.
func (c *Client) ListTagsForResource(ctx context.Context, params *ListTagsForResourceInput, optFns ...func(*core.Options)) (*ListTagsForResourceOutput, error) {
	return invoke[ListTagsForResourceOutput](ctx, c, "ListTagsForResource", params, optFns)
}

type ListTagsForResourceInput struct {
	ResourceType ResourceTypeForTagging `json:"ResourceType,omitempty" required:"true"`
	ResourceId   *string                `json:"ResourceId,omitempty" required:"true"`
}

type ListTagsForResourceOutput struct {
	TagList []Tag `json:"TagList,omitempty"`
}

// RemoveTagsFromResource removes tags from a resource.
func (c *Client) RemoveTagsFromResource(ctx context.Context, params *RemoveTagsFromResourceInput, optFns ...func(*core.Options)) (*RemoveTagsFromResourceOutput, error) {
	return invoke[RemoveTagsFromResourceOutput](ctx, c, "RemoveTagsFromResource", params, optFns)
}

type RemoveTagsFromResourceInput struct {
	ResourceType ResourceTypeForTagging `json:"ResourceType,omitempty" required:"true"`
	ResourceId   *string                `json:"ResourceId,omitempty" required:"true"`
	TagKeys      []string               `json:"TagKeys,omitempty" required:"true"`
}

type RemoveTagsFromResourceOutput struct{}
