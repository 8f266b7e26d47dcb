// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import (
	"context"
	"net/http"

	"github.com/tfctl/awsctl/core"
)

// DeleteUtterances deletes the stored utterances of one user.
func (c *Client) DeleteUtterances(ctx context.Context, params *DeleteUtterancesInput, optFns ...func(*core.Options)) (*DeleteUtterancesOutput, error) {
	op := core.Operation{
		Name:        "DeleteUtterances",
		Method:      http.MethodDelete,
		Path:        "/bots/{botName}/utterances/{userId}",
		SuccessCode: http.StatusNoContent,
	}
	return invoke[DeleteUtterancesOutput](ctx, c, op, params, optFns)
}

type DeleteUtterancesInput struct {
	BotName *string `location:"uri" locationName:"botName" json:"-" required:"true" min:"2" max:"50"`
	UserId  *string `location:"uri" locationName:"userId" json:"-" required:"true" min:"2" max:"100"`
}

type DeleteUtterancesOutput struct{}

// GetUtterancesView returns utterance statistics for up to five versions of a
// bot.
func (c *Client) GetUtterancesView(ctx context.Context, params *GetUtterancesViewInput, optFns ...func(*core.Options)) (*GetUtterancesViewOutput, error) {
	op := core.Operation{
		Name:        "GetUtterancesView",
		Method:      http.MethodGet,
		Path:        "/bots/{botname}/utterances?view=aggregation",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetUtterancesViewOutput](ctx, c, op, params, optFns)
}

type GetUtterancesViewInput struct {
	BotName     *string    `location:"uri" locationName:"botname" json:"-" required:"true" min:"2" max:"50"`
	BotVersions []string   `location:"querystring" locationName:"bot_versions" json:"-" required:"true" min:"1" max:"5"`
	StatusType  StatusType `location:"querystring" locationName:"status_type" json:"-" required:"true"`
}

type GetUtterancesViewOutput struct {
	BotName    *string         `json:"botName,omitempty"`
	Utterances []UtteranceList `json:"utterances,omitempty"`
}
