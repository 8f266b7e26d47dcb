// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package core

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/ratelimit"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/tfctl/awsctl/internal/awstest"
)

type widgetMissing struct {
	ServiceError
	Widget string
}

var testInfo = ServiceInfo{
	Name:           "Widgets",
	SigningName:    "widgets",
	EndpointPrefix: "widgets",
	APIVersion:     "2020-01-01",
	TargetPrefix:   "Widgets_20200101",
	Errors: ErrorRegistry{
		"WidgetMissing": func(se ServiceError, body []byte, _ http.Header) error {
			return &widgetMissing{ServiceError: se, Widget: gjson.GetBytes(body, "widget").String()}
		},
	},
}

type getWidgetInput struct {
	Name  *string `json:"name,omitempty" required:"true" min:"1" max:"8"`
	Color *string `json:"color,omitempty"`
}

type getWidgetOutput struct {
	Name    *string    `json:"name,omitempty"`
	Created *Timestamp `json:"created,omitempty"`
}

func testClient(t *testing.T) (*Client, *awstest.Server) {
	t.Helper()
	s := awstest.NewServer(t)
	return New(testInfo, OptionsFromConfig(s.Config())), s
}

func TestInvokeJSON(t *testing.T) {
	c, s := testClient(t)
	s.StubJSON("Widgets_20200101.GetWidget", http.StatusOK, `{"name":"w1","created":1700000000.5}`)

	var out getWidgetOutput
	err := c.InvokeJSON(context.Background(), Operation{Name: "GetWidget"},
		&getWidgetInput{Name: aws.String("w1")}, &out)
	require.NoError(t, err)

	assert.Equal(t, "w1", aws.ToString(out.Name))
	require.NotNil(t, out.Created)
	assert.Equal(t, int64(1700000000500), out.Created.UnixMilli())

	req := s.LastRequest()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/", req.Path)
	assert.Equal(t, "application/x-amz-json-1.1", req.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"name":"w1"}`, string(req.Body))
	assert.Contains(t, req.Header.Get("Authorization"), "AWS4-HMAC-SHA256")
	assert.Contains(t, req.Header.Get("Authorization"), "/us-east-1/widgets/aws4_request")
	assert.True(t, strings.HasPrefix(req.Header.Get("User-Agent"), "awsctl/"))
}

func TestInvokeJSONNilInputAndEmptyBody(t *testing.T) {
	c, s := testClient(t)
	s.StubJSON("Widgets_20200101.ListWidgets", http.StatusOK, nil)

	var out getWidgetOutput
	require.NoError(t, c.InvokeJSON(context.Background(), Operation{Name: "ListWidgets"}, nil, &out))
	assert.Nil(t, out.Name)
	assert.Equal(t, "{}", string(s.LastRequest().Body))
}

func TestInvokeValidation(t *testing.T) {
	c, s := testClient(t)

	err := c.InvokeJSON(context.Background(), Operation{Name: "GetWidget"}, &getWidgetInput{}, nil)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "GetWidget", ve.Op)
	assert.Equal(t, []InvalidParam{{Field: "Name", Reason: "required"}}, ve.Params)

	err = c.InvokeJSON(context.Background(), Operation{Name: "GetWidget"},
		&getWidgetInput{Name: aws.String("much-too-long")}, nil)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "maximum 8", ve.Params[0].Reason)

	assert.Empty(t, s.Requests())
}

func TestInvokeServiceErrors(t *testing.T) {
	c, s := testClient(t)
	ctx := context.Background()

	s.StubJSON("Widgets_20200101.GetWidget", http.StatusNotFound,
		`{"__type":"com.example#WidgetMissing","message":"gone","widget":"w1"}`)
	err := c.InvokeJSON(ctx, Operation{Name: "GetWidget"}, &getWidgetInput{Name: aws.String("w1")}, nil)

	var missing *widgetMissing
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "w1", missing.Widget)
	assert.Equal(t, "gone", missing.Message)
	assert.NotEmpty(t, missing.RequestID)

	var api smithy.APIError
	require.ErrorAs(t, err, &api)
	assert.Equal(t, "WidgetMissing", api.ErrorCode())
	assert.Equal(t, smithy.FaultClient, api.ErrorFault())

	s.HandleJSON("Widgets_20200101.GetWidget", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Amzn-Errortype", "ThrottlingException:http://internal.amazon.com/coral/")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"Message":"slow down"}`))
	})
	err = c.InvokeJSON(ctx, Operation{Name: "GetWidget"}, &getWidgetInput{Name: aws.String("w1")}, nil)

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "ThrottlingException", se.Code)
	assert.Equal(t, "slow down", se.Message)
	assert.Equal(t, http.StatusBadRequest, se.StatusCode)
}

func TestInvokeMissingRegion(t *testing.T) {
	c := New(testInfo, Options{})
	err := c.InvokeJSON(context.Background(), Operation{Name: "ListWidgets"}, nil, nil)

	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, ErrMissingRegion)
}

func TestInvokeRetries(t *testing.T) {
	s := awstest.NewServer(t)
	s.StubJSON("Widgets_20200101.ListWidgets", http.StatusOK, `{}`)
	s.Fail("Widgets_20200101.ListWidgets", 2, http.StatusInternalServerError, "InternalFailure")

	retryer := retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = 3
		o.Backoff = retry.BackoffDelayerFunc(func(int, error) (time.Duration, error) { return 0, nil })
	})
	c := New(testInfo, OptionsFromConfig(s.Config()), WithRetryer(retryer))

	require.NoError(t, c.InvokeJSON(context.Background(), Operation{Name: "ListWidgets"}, nil, nil))
	assert.Len(t, s.Requests(), 3)
}

func TestInvokeRetryQuota(t *testing.T) {
	s := awstest.NewServer(t)
	s.StubJSON("Widgets_20200101.ListWidgets", http.StatusOK, `{}`)

	retryer := retry.NewStandard(func(o *retry.StandardOptions) {
		o.MaxAttempts = 6
		o.RateLimiter = ratelimit.NewTokenRateLimit(5)
		o.Backoff = retry.BackoffDelayerFunc(func(int, error) (time.Duration, error) { return 0, nil })
	})
	c := New(testInfo, OptionsFromConfig(s.Config()), WithRetryer(retryer))
	op := Operation{Name: "ListWidgets"}

	// A retry that succeeds hands its cost back, so the quota is whole again.
	s.Fail("Widgets_20200101.ListWidgets", 1, http.StatusInternalServerError, "InternalFailure")
	require.NoError(t, c.InvokeJSON(context.Background(), op, nil, nil))
	s.Fail("Widgets_20200101.ListWidgets", 1, http.StatusInternalServerError, "InternalFailure")
	require.NoError(t, c.InvokeJSON(context.Background(), op, nil, nil))
	assert.Len(t, s.Requests(), 4)

	// The quota covers a single retry, well short of MaxAttempts.
	s.Fail("Widgets_20200101.ListWidgets", 100, http.StatusInternalServerError, "InternalFailure")
	err := c.InvokeJSON(context.Background(), op, nil, nil)
	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "InternalFailure", se.Code)
	assert.Len(t, s.Requests(), 6)
}

func TestInvokeNoRetryOnClientFault(t *testing.T) {
	s := awstest.NewServer(t)
	s.Fail("Widgets_20200101.ListWidgets", 5, http.StatusBadRequest, "ValidationException")

	c := New(testInfo, OptionsFromConfig(s.Config()), WithRetryer(retry.NewStandard()))
	err := c.InvokeJSON(context.Background(), Operation{Name: "ListWidgets"}, nil, nil)

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "ValidationException", se.Code)
	assert.Len(t, s.Requests(), 1)
}

func TestInvokeCanceledContext(t *testing.T) {
	c, s := testClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.InvokeJSON(ctx, Operation{Name: "ListWidgets"}, nil, nil)
	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, s.Requests())
}

func TestPerCallOptions(t *testing.T) {
	c := New(testInfo, Options{Region: "us-west-2"})

	ep, err := c.endpoint(c.options)
	require.NoError(t, err)
	assert.Equal(t, "https://widgets.us-west-2.amazonaws.com", ep)

	opts := c.Options()
	WithRegion("cn-north-1")(&opts)
	ep, err = c.endpoint(opts)
	require.NoError(t, err)
	assert.Equal(t, "https://widgets.cn-north-1.amazonaws.com.cn", ep)

	WithBaseEndpoint("http://localhost:4566/")(&opts)
	ep, err = c.endpoint(opts)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:4566", ep)

	assert.Equal(t, "us-west-2", c.Options().Region, "per-call options must not leak into the client")
}

func TestSanitizeErrorCode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"ResourceNotFoundException", "ResourceNotFoundException"},
		{"aws.protocoltests.restjson#FooError", "FooError"},
		{"FooError:http://internal.amazon.com/coral/com.amazon.coral.validate/", "FooError"},
		{"aws.protocoltests#FooError:http://x", "FooError"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeErrorCode(tt.in), tt.in)
	}
}
