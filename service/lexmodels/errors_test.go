// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package lexmodels

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundFromHeader(t *testing.T) {
	c, s := newTestClient(t)
	s.HandleREST(http.MethodGet, "/intents/{name}/versions/{version}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Amzn-Errortype", "NotFoundException:http://internal.amazon.com/coral/com.amazonaws.lex/")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"The intent OrderFlowers:4 could not be found."}`))
	})

	_, err := c.GetIntent(context.Background(), &GetIntentInput{Name: aws.String("OrderFlowers"), Version: aws.String("4")})
	var nf *NotFoundException
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "The intent OrderFlowers:4 could not be found.", nf.Message)
	assert.Equal(t, http.StatusNotFound, nf.StatusCode)
}

func TestLimitExceededRetryAfter(t *testing.T) {
	c, s := newTestClient(t)
	s.HandleREST(http.MethodGet, "/bots/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Amzn-Errortype", "LimitExceededException")
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"slow down"}`))
	})

	_, err := c.GetBots(context.Background(), &GetBotsInput{})
	var le *LimitExceededException
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "30", le.RetryAfterSeconds)
	assert.Equal(t, smithy.FaultClient, le.ErrorFault())
}

func TestResourceInUse(t *testing.T) {
	c, s := newTestClient(t)
	s.StubREST(http.MethodDelete, "/intents/{name}", http.StatusBadRequest, `{
		"__type": "ResourceInUseException",
		"referenceType": "Bot",
		"exampleReference": {"name": "OrderFlowers", "version": "$LATEST"}
	}`)

	_, err := c.DeleteIntent(context.Background(), &DeleteIntentInput{Name: aws.String("OrderFlowers")})
	var ru *ResourceInUseException
	require.ErrorAs(t, err, &ru)
	assert.Equal(t, ReferenceTypeBot, ru.ReferenceType)
	require.NotNil(t, ru.ExampleReference)
	assert.Equal(t, "OrderFlowers", aws.ToString(ru.ExampleReference.Name))
	assert.Equal(t, LatestVersion, aws.ToString(ru.ExampleReference.Version))
}

func TestPreconditionAndConflict(t *testing.T) {
	for code, check := range map[string]func(error) bool{
		"PreconditionFailedException": func(err error) bool { var e *PreconditionFailedException; return assert.ErrorAs(t, err, &e) },
		"ConflictException":           func(err error) bool { var e *ConflictException; return assert.ErrorAs(t, err, &e) },
		"BadRequestException":         func(err error) bool { var e *BadRequestException; return assert.ErrorAs(t, err, &e) },
		"InternalFailureException":    func(err error) bool { var e *InternalFailureException; return assert.ErrorAs(t, err, &e) },
	} {
		c, s := newTestClient(t)
		s.StubREST(http.MethodPost, "/bots/{name}/versions", http.StatusBadRequest, `{"code":"`+code+`","message":"x"}`)

		_, err := c.CreateBotVersion(context.Background(), &CreateBotVersionInput{Name: aws.String("OrderFlowers")})
		assert.True(t, check(err), code)
	}
}
