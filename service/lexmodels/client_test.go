// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package lexmodels

import (
	"context"
	"encoding/base64"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsctl/core"
	"github.com/tfctl/awsctl/internal/awstest"
)

func newTestClient(t *testing.T) (*Client, *awstest.Server) {
	t.Helper()
	s := awstest.NewServer(t)
	return NewFromConfig(s.Config()), s
}

type captureClient struct {
	req *http.Request
}

func (c *captureClient) Do(r *http.Request) (*http.Response, error) {
	c.req = r
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(`{}`)),
	}, nil
}

func TestRegionalEndpoint(t *testing.T) {
	cc := &captureClient{}
	c := New(core.Options{Region: "eu-west-1", HTTPClient: cc, Retryer: aws.NopRetryer{}})

	_, err := c.GetBots(context.Background(), &GetBotsInput{MaxResults: aws.Int32(5)})
	require.NoError(t, err)
	require.NotNil(t, cc.req)
	assert.Equal(t, "https://models.lex.eu-west-1.amazonaws.com/bots/?maxResults=5", cc.req.URL.String())
	assert.Empty(t, cc.req.Header.Get("Authorization"), "no credentials means no signature")
}

func TestPutBot(t *testing.T) {
	c, s := newTestClient(t)
	s.StubREST(http.MethodPut, "/bots/{name}/versions/$LATEST", http.StatusOK, `{
		"name": "OrderFlowers",
		"status": "BUILDING",
		"version": "$LATEST",
		"checksum": "c-2",
		"locale": "en-US",
		"childDirected": false,
		"createVersion": false,
		"lastUpdatedDate": 1700000000,
		"intents": [{"intentName": "OrderFlowers", "intentVersion": "1"}]
	}`)

	out, err := c.PutBot(context.Background(), &PutBotInput{
		Name:          aws.String("OrderFlowers"),
		Locale:        LocaleEnUs,
		ChildDirected: aws.Bool(false),
		Checksum:      aws.String("c-1"),
		Intents:       []Intent{{IntentName: aws.String("OrderFlowers"), IntentVersion: aws.String("1")}},
		ClarificationPrompt: &Prompt{
			MaxAttempts: aws.Int32(2),
			Messages:    []Message{{ContentType: ContentTypePlainText, Content: aws.String("Sorry?")}},
		},
		ProcessBehavior: ProcessBehaviorBuild,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusBuilding, out.Status)
	assert.Equal(t, LatestVersion, aws.ToString(out.Version))
	assert.Equal(t, "c-2", aws.ToString(out.Checksum))
	assert.False(t, aws.ToBool(out.CreateVersion))
	require.Len(t, out.Intents, 1)

	req := s.LastRequest()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/bots/OrderFlowers/versions/$LATEST", req.Path)
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Contains(t, req.Header.Get("Authorization"), "/us-east-1/lex/aws4_request")

	body := req.JSON(t)
	assert.NotContains(t, body, "name", "uri members stay out of the body")
	assert.Equal(t, "en-US", body["locale"])
	assert.Equal(t, false, body["childDirected"])
	assert.Equal(t, "BUILD", body["processBehavior"])
	assert.Equal(t, "c-1", body["checksum"])
}

func TestPutBotValidation(t *testing.T) {
	c, s := newTestClient(t)

	_, err := c.PutBot(context.Background(), &PutBotInput{Name: aws.String("B")})
	var ve *core.ValidationError
	require.ErrorAs(t, err, &ve)

	fields := map[string]string{}
	for _, p := range ve.Params {
		fields[p.Field] = p.Reason
	}
	assert.Equal(t, "minimum 2", fields["Name"])
	assert.Equal(t, "required", fields["Locale"])
	assert.Equal(t, "required", fields["ChildDirected"])

	_, err = c.PutBot(context.Background(), &PutBotInput{
		Name:          aws.String("Bot"),
		Locale:        "xx-XX",
		ChildDirected: aws.Bool(true),
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Locale", ve.Params[0].Field)

	assert.Empty(t, s.Requests())
}

func TestGetBotByAlias(t *testing.T) {
	c, s := newTestClient(t)
	s.StubREST(http.MethodGet, "/bots/{name}/versions/{versionoralias}", http.StatusOK,
		`{"name":"OrderFlowers","version":"3","status":"READY"}`)

	out, err := c.GetBot(context.Background(), &GetBotInput{
		Name:           aws.String("OrderFlowers"),
		VersionOrAlias: aws.String("prod"),
	})
	require.NoError(t, err)
	assert.Equal(t, "3", aws.ToString(out.Version))
	assert.Equal(t, StatusReady, out.Status)

	req := s.LastRequest()
	assert.Equal(t, "/bots/OrderFlowers/versions/prod", req.Path)
	assert.Empty(t, req.Body)
	assert.Empty(t, req.Header.Get("Content-Type"))
}

func TestGetBotAliasesQuery(t *testing.T) {
	c, s := newTestClient(t)
	s.StubREST(http.MethodGet, "/bots/{botName}/aliases/", http.StatusOK,
		`{"BotAliases":[{"name":"prod","botVersion":"3","botName":"OrderFlowers"}],"nextToken":"n2"}`)

	out, err := c.GetBotAliases(context.Background(), &GetBotAliasesInput{
		BotName:      aws.String("OrderFlowers"),
		MaxResults:   aws.Int32(10),
		NameContains: aws.String("pr"),
		NextToken:    aws.String("n1"),
	})
	require.NoError(t, err)
	require.Len(t, out.BotAliases, 1)
	assert.Equal(t, "prod", aws.ToString(out.BotAliases[0].Name))
	assert.Equal(t, "n2", aws.ToString(out.NextToken))

	q, err := url.ParseQuery(s.LastRequest().RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "10", q.Get("maxResults"))
	assert.Equal(t, "pr", q.Get("nameContains"))
	assert.Equal(t, "n1", q.Get("nextToken"))
}

func TestGetUtterancesView(t *testing.T) {
	c, s := newTestClient(t)
	s.StubREST(http.MethodGet, "/bots/{botname}/utterances", http.StatusOK, `{
		"botName": "OrderFlowers",
		"utterances": [{"botVersion": "1", "utterances": [{"utteranceString": "roses", "count": 4, "distinctUsers": 2}]}]
	}`)

	out, err := c.GetUtterancesView(context.Background(), &GetUtterancesViewInput{
		BotName:     aws.String("OrderFlowers"),
		BotVersions: []string{"1", "2"},
		StatusType:  StatusTypeMissed,
	})
	require.NoError(t, err)
	require.Len(t, out.Utterances, 1)
	assert.Equal(t, int32(4), aws.ToInt32(out.Utterances[0].Utterances[0].Count))

	q, err := url.ParseQuery(s.LastRequest().RawQuery)
	require.NoError(t, err)
	assert.Equal(t, "aggregation", q.Get("view"))
	assert.Equal(t, []string{"1", "2"}, q["bot_versions"])
	assert.Equal(t, "Missed", q.Get("status_type"))
}

func TestTags(t *testing.T) {
	c, s := newTestClient(t)
	arn := "arn:aws:lex:us-east-1:123456789012:bot:OrderFlowers/prod"
	s.StubREST(http.MethodGet, "/tags/{resourceArn}", http.StatusOK, `{"tags":[{"key":"team","value":"flowers"}]}`)
	s.StubREST(http.MethodDelete, "/tags/{resourceArn}", http.StatusNoContent, nil)
	s.StubREST(http.MethodPost, "/tags/{resourceArn}", http.StatusNoContent, nil)

	out, err := c.ListTagsForResource(context.Background(), &ListTagsForResourceInput{ResourceArn: aws.String(arn)})
	require.NoError(t, err)
	require.Len(t, out.Tags, 1)
	assert.Equal(t, "team", aws.ToString(out.Tags[0].Key))
	assert.Equal(t, "/tags/"+url.PathEscape(arn), s.LastRequest().Path)

	_, err = c.TagResource(context.Background(), &TagResourceInput{
		ResourceArn: aws.String(arn),
		Tags:        []Tag{{Key: aws.String("env"), Value: aws.String("prod")}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tags":[{"key":"env","value":"prod"}]}`, string(s.LastRequest().Body))

	_, err = c.UntagResource(context.Background(), &UntagResourceInput{
		ResourceArn: aws.String(arn),
		TagKeys:     []string{"env", "team"},
	})
	require.NoError(t, err)
	req := s.LastRequest()
	assert.Equal(t, http.MethodDelete, req.Method)
	assert.Equal(t, "tagKeys=env&tagKeys=team", req.RawQuery)
}

func TestStartImport(t *testing.T) {
	c, s := newTestClient(t)
	s.StubREST(http.MethodPost, "/imports/", http.StatusCreated,
		`{"importId":"imp-1","importStatus":"IN_PROGRESS","resourceType":"BOT","mergeStrategy":"FAIL_ON_CONFLICT"}`)

	out, err := c.StartImport(context.Background(), &StartImportInput{
		Payload:       []byte("PK\x03\x04"),
		ResourceType:  ResourceTypeBot,
		MergeStrategy: MergeStrategyFailOnConflict,
	})
	require.NoError(t, err)
	assert.Equal(t, ImportStatusInProgress, out.ImportStatus)

	body := s.LastRequest().JSON(t)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("PK\x03\x04")), body["payload"])
}

func TestDeleteBotNoContent(t *testing.T) {
	c, s := newTestClient(t)
	s.StubREST(http.MethodDelete, "/bots/{name}", http.StatusNoContent, nil)

	out, err := c.DeleteBot(context.Background(), &DeleteBotInput{Name: aws.String("OrderFlowers")})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Equal(t, "/bots/OrderFlowers", s.LastRequest().Path)
}

func TestGetBotsNilInput(t *testing.T) {
	c, s := newTestClient(t)
	s.StubREST(http.MethodGet, "/bots/", http.StatusOK, `{"bots":[{"name":"A","status":"NOT_BUILT"}]}`)

	out, err := c.GetBots(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, out.Bots, 1)
	assert.Equal(t, StatusNotBuilt, out.Bots[0].Status)
	assert.Empty(t, s.LastRequest().RawQuery)
}
