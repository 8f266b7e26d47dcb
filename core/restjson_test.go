// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package core

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type putThingInput struct {
	Name     *string  `location:"uri" locationName:"name" json:"-" required:"true"`
	Version  *string  `location:"uri" locationName:"version" json:"-"`
	Limit    *int32   `location:"querystring" locationName:"maxResults" json:"-"`
	Keys     []string `location:"querystring" locationName:"tagKeys" json:"-"`
	Checksum *string  `location:"header" locationName:"X-Thing-Checksum" json:"-"`
	Detail   *string  `json:"detail,omitempty"`
}

func TestMarshalREST(t *testing.T) {
	op := Operation{Name: "PutThing", Method: http.MethodPut, Path: "/things/{name}/versions/{version}"}
	in := &putThingInput{
		Name:     aws.String("arn:aws:lex:us-east-1:1:bot/a b"),
		Version:  aws.String("$LATEST"),
		Limit:    aws.Int32(5),
		Keys:     []string{"k1", "k2"},
		Checksum: aws.String("abc"),
		Detail:   aws.String("d"),
	}

	wr, err := marshalREST(op, in, "https://example.test")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, wr.Method)
	assert.Equal(t, "https://example.test/things/arn:aws:lex:us-east-1:1:bot%2Fa%20b/versions/$LATEST?maxResults=5&tagKeys=k1&tagKeys=k2", wr.URL)
	assert.Equal(t, "abc", wr.Header.Get("X-Thing-Checksum"))
	assert.Equal(t, "application/json", wr.Header.Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"d"}`, string(wr.Body))
}

func TestMarshalRESTGetWithoutBody(t *testing.T) {
	op := Operation{Name: "ListThings", Path: "/things/{name}/utterances?view=aggregation"}
	wr, err := marshalREST(op, &putThingInput{Name: aws.String("n")}, "https://example.test")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, wr.Method)
	assert.Equal(t, "https://example.test/things/n/utterances?view=aggregation", wr.URL)
	assert.Nil(t, wr.Body)
	assert.Empty(t, wr.Header.Get("Content-Type"))
}

func TestMarshalRESTUnboundLabel(t *testing.T) {
	op := Operation{Name: "GetThing", Path: "/things/{name}/versions/{version}"}
	_, err := marshalREST(op, &putThingInput{Name: aws.String("n")}, "https://example.test")
	assert.ErrorContains(t, err, "unbound path label")
}

func TestMarshalRESTNilPost(t *testing.T) {
	op := Operation{Name: "StartThing", Method: http.MethodPost, Path: "/things/"}
	var in *putThingInput
	wr, err := marshalREST(op, in, "https://example.test")
	require.NoError(t, err)
	assert.Equal(t, "{}", string(wr.Body))
}

func TestInvokeREST(t *testing.T) {
	c, s := testClient(t)
	s.StubREST(http.MethodDelete, "/things/{name}/versions/{version}", http.StatusNoContent, nil)

	err := c.InvokeREST(context.Background(),
		Operation{Name: "DeleteThing", Method: http.MethodDelete, Path: "/things/{name}/versions/{version}", SuccessCode: http.StatusNoContent},
		&putThingInput{Name: aws.String("t1"), Version: aws.String("2")}, &struct{}{})
	require.NoError(t, err)

	req := s.LastRequest()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "/things/t1/versions/2", req.Path)
	assert.Empty(t, req.Body)
}

func TestInvokeRESTErrorFromHeader(t *testing.T) {
	c, s := testClient(t)
	s.HandleREST(http.MethodGet, "/things/{name}/versions/{version}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("X-Amzn-Errortype", "NotFoundException")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"no such thing"}`))
	})

	err := c.InvokeREST(context.Background(),
		Operation{Name: "GetThing", Path: "/things/{name}/versions/{version}"},
		&putThingInput{Name: aws.String("t1"), Version: aws.String("1")}, nil)

	var se *ServiceError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "NotFoundException", se.Code)
	assert.Equal(t, "no such thing", se.Message)
}

func TestInvokeRESTUnexpectedSuccessCode(t *testing.T) {
	c, s := testClient(t)
	s.StubREST(http.MethodDelete, "/things/{name}/versions/{version}", http.StatusOK, `{}`)

	err := c.InvokeREST(context.Background(),
		Operation{Name: "DeleteThing", Method: http.MethodDelete, Path: "/things/{name}/versions/{version}", SuccessCode: http.StatusNoContent},
		&putThingInput{Name: aws.String("t1"), Version: aws.String("2")}, &struct{}{})

	var ce *ClientError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "DeleteThing", ce.Op)
	assert.EqualError(t, err, "DeleteThing: unexpected status 200, want 204")
	assert.Len(t, s.Requests(), 1)
}
