// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import (
	"context"
	"net/http"

	"github.com/tfctl/awsctl/core"
)

// ListTagsForResource lists the tags of a bot, alias or channel.
func (c *Client) ListTagsForResource(ctx context.Context, params *ListTagsForResourceInput, optFns ...func(*core.Options)) (*ListTagsForResourceOutput, error) {
	op := core.Operation{
		Name:        "ListTagsForResource",
		Method:      http.MethodGet,
		Path:        "/tags/{resourceArn}",
		SuccessCode: http.StatusOK,
	}
	return invoke[ListTagsForResourceOutput](ctx, c, op, params, optFns)
}

type ListTagsForResourceInput struct {
	ResourceArn *string `location:"uri" locationName:"resourceArn" json:"-" required:"true" min:"1" max:"1011"`
}

type ListTagsForResourceOutput struct {
	Tags []Tag `json:"tags,omitempty"`
}

// TagResource adds tags to a bot, alias or channel.
func (c *Client) TagResource(ctx context.Context, params *TagResourceInput, optFns ...func(*core.Options)) (*TagResourceOutput, error) {
	op := core.Operation{
		Name:        "TagResource",
		Method:      http.MethodPost,
		Path:        "/tags/{resourceArn}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[TagResourceOutput](ctx, c, op, params, optFns)
}

type TagResourceInput struct {
	ResourceArn *string `location:"uri" locationName:"resourceArn" json:"-" required:"true" min:"1" max:"1011"`
	Tags        []Tag   `json:"tags,omitempty" required:"true" max:"200"`
}

type TagResourceOutput struct{}

// UntagResource removes tags from a bot, alias or channel.
func (c *Client) UntagResource(ctx context.Context, params *UntagResourceInput, optFns ...func(*core.Options)) (*UntagResourceOutput, error) {
	op := core.Operation{
		Name:        "UntagResource",
		Method:      http.MethodDelete,
		Path:        "/tags/{resourceArn}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[UntagResourceOutput](ctx, c, op, params, optFns)
}

type UntagResourceInput struct {
	ResourceArn *string  `location:"uri" locationName:"resourceArn" json:"-" required:"true" min:"1" max:"1011"`
	TagKeys     []string `location:"querystring" locationName:"tagKeys" json:"-" required:"true" max:"200"`
}

type UntagResourceOutput struct{}
