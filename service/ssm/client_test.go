// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package ssm

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/google/uuid"
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

func TestGetParameter(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.GetParameter", http.StatusOK, `{
		"Parameter": {
			"Name": "/app/db/password",
			"Type": "SecureString",
			"Value": "hunter2",
			"Version": 7,
			"LastModifiedDate": 1700000000.5,
			"ARN": "arn:aws:ssm:us-east-1:123456789012:parameter/app/db/password",
			"DataType": "text"
		}
	}`)

	out, err := c.GetParameter(context.Background(), &GetParameterInput{
		Name:           aws.String("/app/db/password"),
		WithDecryption: aws.Bool(true),
	})
	require.NoError(t, err)

	p := out.Parameter
	require.NotNil(t, p)
	assert.Equal(t, ParameterTypeSecureString, p.Type)
	assert.Equal(t, "hunter2", aws.ToString(p.Value))
	assert.Equal(t, int64(7), aws.ToInt64(p.Version))
	assert.Equal(t, int64(1700000000500), p.LastModifiedDate.UnixMilli())

	req := s.LastRequest()
	assert.Equal(t, "AmazonSSM.GetParameter", req.Target)
	assert.Equal(t, "application/x-amz-json-1.1", req.Header.Get("Content-Type"))
	assert.Contains(t, req.Header.Get("Authorization"), "/us-east-1/ssm/aws4_request")
	assert.JSONEq(t, `{"Name":"/app/db/password","WithDecryption":true}`, string(req.Body))
}

func TestPutParameter(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.PutParameter", http.StatusOK, `{"Version":2,"Tier":"Standard"}`)

	out, err := c.PutParameter(context.Background(), &PutParameterInput{
		Name:      aws.String("/app/feature"),
		Value:     aws.String("on"),
		Type:      ParameterTypeString,
		Overwrite: aws.Bool(true),
		Tags:      []Tag{{Key: aws.String("team"), Value: aws.String("core")}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), aws.ToInt64(out.Version))
	assert.Equal(t, ParameterTierStandard, out.Tier)

	body := s.LastRequest().JSON(t)
	assert.Equal(t, "String", body["Type"])
	assert.Equal(t, true, body["Overwrite"])
	assert.NotContains(t, body, "Tier", "unset enums are omitted")
}

func TestPutParameterValidation(t *testing.T) {
	c, s := newTestClient(t)

	_, err := c.PutParameter(context.Background(), &PutParameterInput{Name: aws.String("/x")})
	var ve *core.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Value", ve.Params[0].Field)
	assert.Equal(t, "required", ve.Params[0].Reason)

	_, err = c.PutParameter(context.Background(), &PutParameterInput{
		Name:  aws.String("/x"),
		Value: aws.String("v"),
		Type:  "Secret",
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Type", ve.Params[0].Field)

	_, err = c.GetParameters(context.Background(), &GetParametersInput{
		Names: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"},
	})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "maximum 10", ve.Params[0].Reason)

	assert.Empty(t, s.Requests())
}

func TestGetParametersInvalidNames(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.GetParameters", http.StatusOK,
		`{"Parameters":[{"Name":"a","Type":"String","Value":"1"}],"InvalidParameters":["b"]}`)

	out, err := c.GetParameters(context.Background(), &GetParametersInput{Names: []string{"a", "b"}})
	require.NoError(t, err, "unknown names are not an error")
	require.Len(t, out.Parameters, 1)
	assert.Equal(t, []string{"b"}, out.InvalidParameters)
}

func TestGetParametersByPathFilters(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.GetParametersByPath", http.StatusOK, `{"Parameters":[],"NextToken":"t2"}`)

	out, err := c.GetParametersByPath(context.Background(), &GetParametersByPathInput{
		Path:      aws.String("/app"),
		Recursive: aws.Bool(true),
		ParameterFilters: []ParameterStringFilter{
			{Key: aws.String("Type"), Option: aws.String("Equals"), Values: []string{"SecureString"}},
		},
		NextToken: aws.String("t1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "t2", aws.ToString(out.NextToken))
	assert.JSONEq(t, `{
		"Path": "/app",
		"Recursive": true,
		"ParameterFilters": [{"Key":"Type","Option":"Equals","Values":["SecureString"]}],
		"NextToken": "t1"
	}`, string(s.LastRequest().Body))
}

func TestSendCommand(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.SendCommand", http.StatusOK, `{
		"Command": {
			"CommandId": "0d1a7c4e-1111-2222-3333-444455556666",
			"DocumentName": "AWS-RunShellScript",
			"Status": "Pending",
			"TargetCount": 2,
			"RequestedDateTime": 1700000000,
			"Parameters": {"commands": ["uptime"]}
		}
	}`)

	out, err := c.SendCommand(context.Background(), &SendCommandInput{
		DocumentName: aws.String("AWS-RunShellScript"),
		Targets:      []Target{{Key: aws.String("tag:role"), Values: []string{"web"}}},
		Parameters:   map[string][]string{"commands": {"uptime"}},
		NotificationConfig: &NotificationConfig{
			NotificationArn:    aws.String("arn:aws:sns:us-east-1:123456789012:cmd"),
			NotificationEvents: []NotificationEvent{NotificationEventFailed, NotificationEventTimedOut},
			NotificationType:   NotificationTypeCommand,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, CommandStatusPending, out.Command.Status)
	assert.Equal(t, int32(2), aws.ToInt32(out.Command.TargetCount))
	assert.Equal(t, []string{"uptime"}, out.Command.Parameters["commands"])

	body := s.LastRequest().JSON(t)
	nc := body["NotificationConfig"].(map[string]any)
	assert.Equal(t, []any{"Failed", "TimedOut"}, nc["NotificationEvents"])
}

func TestSendCommandValidation(t *testing.T) {
	c, s := newTestClient(t)

	_, err := c.SendCommand(context.Background(), &SendCommandInput{
		DocumentName:       aws.String("AWS-RunShellScript"),
		TimeoutSeconds:     aws.Int32(5),
		NotificationConfig: &NotificationConfig{NotificationEvents: []NotificationEvent{"Sometimes"}},
	})
	var ve *core.ValidationError
	require.ErrorAs(t, err, &ve)

	fields := map[string]string{}
	for _, p := range ve.Params {
		fields[p.Field] = p.Reason
	}
	assert.Equal(t, "minimum 30", fields["TimeoutSeconds"])
	assert.Contains(t, fields, "NotificationConfig.NotificationEvents[0]")
	assert.Empty(t, s.Requests())
}

func TestGetCommandInvocation(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.GetCommandInvocation", http.StatusOK, `{
		"CommandId": "0d1a7c4e-1111-2222-3333-444455556666",
		"InstanceId": "i-0123456789abcdef0",
		"Status": "Success",
		"ResponseCode": 0,
		"StandardOutputContent": " 10:00:00 up 3 days\n"
	}`)

	out, err := c.GetCommandInvocation(context.Background(), &GetCommandInvocationInput{
		CommandId:  aws.String("0d1a7c4e-1111-2222-3333-444455556666"),
		InstanceId: aws.String("i-0123456789abcdef0"),
	})
	require.NoError(t, err)
	assert.Equal(t, CommandInvocationStatusSuccess, out.Status)
	assert.Equal(t, int32(0), aws.ToInt32(out.ResponseCode))
	assert.NotNil(t, out.ResponseCode)
	assert.Equal(t, " 10:00:00 up 3 days\n", aws.ToString(out.StandardOutputContent))
}

func TestListDocumentsLowerCaseFilter(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.ListDocuments", http.StatusOK, `{
		"DocumentIdentifiers": [{
			"Name": "AWS-RunShellScript",
			"Owner": "Amazon",
			"PlatformTypes": ["Linux", "MacOS"],
			"DocumentType": "Command",
			"DocumentFormat": "JSON"
		}]
	}`)

	out, err := c.ListDocuments(context.Background(), &ListDocumentsInput{
		DocumentFilterList: []DocumentFilter{{Key: DocumentFilterKeyOwner, Value: aws.String("Amazon")}},
	})
	require.NoError(t, err)
	require.Len(t, out.DocumentIdentifiers, 1)
	assert.Equal(t, []PlatformType{PlatformTypeLinux, "MacOS"}, out.DocumentIdentifiers[0].PlatformTypes)
	assert.JSONEq(t, `{"DocumentFilterList":[{"key":"Owner","value":"Amazon"}]}`, string(s.LastRequest().Body))
}

func TestCreateAssociationBatchPartialFailure(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.CreateAssociationBatch", http.StatusOK, `{
		"Successful": [{"Name": "AWS-UpdateSSMAgent", "AssociationId": "a-1", "Overview": {"Status": "Pending"}}],
		"Failed": [{"Entry": {"Name": "Nope"}, "Message": "document not found", "Fault": "Client"}]
	}`)

	out, err := c.CreateAssociationBatch(context.Background(), &CreateAssociationBatchInput{
		Entries: []CreateAssociationBatchRequestEntry{
			{Name: aws.String("AWS-UpdateSSMAgent"), ScheduleExpression: aws.String("rate(1 day)")},
			{Name: aws.String("Nope")},
		},
	})
	require.NoError(t, err)
	require.Len(t, out.Successful, 1)
	assert.Equal(t, "Pending", aws.ToString(out.Successful[0].Overview.Status))
	require.Len(t, out.Failed, 1)
	assert.Equal(t, FaultClient, out.Failed[0].Fault)
	assert.Equal(t, "Nope", aws.ToString(out.Failed[0].Entry.Name))
}

func TestStartAutomationClientToken(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.StartAutomationExecution", http.StatusOK,
		`{"AutomationExecutionId":"4105a4fc-f944-11e6-9d32-0123456789ab"}`)

	in := &StartAutomationExecutionInput{DocumentName: aws.String("AWS-RestartEC2Instance")}
	out, err := c.StartAutomationExecution(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "4105a4fc-f944-11e6-9d32-0123456789ab", aws.ToString(out.AutomationExecutionId))
	assert.Nil(t, in.ClientToken, "caller input is left alone")

	token, ok := s.LastRequest().JSON(t)["ClientToken"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(token)
	assert.NoError(t, err)

	in.ClientToken = aws.String("11111111-2222-3333-4444-555555555555")
	_, err = c.StartAutomationExecution(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", s.LastRequest().JSON(t)["ClientToken"])
}

func TestStartAutomationEmptyClientToken(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.StartAutomationExecution", http.StatusOK,
		`{"AutomationExecutionId":"4105a4fc-f944-11e6-9d32-0123456789ab"}`)

	in := &StartAutomationExecutionInput{DocumentName: aws.String("AWS-RestartEC2Instance"), ClientToken: aws.String("")}
	_, err := c.StartAutomationExecution(context.Background(), in)
	require.NoError(t, err)
	require.Len(t, s.Requests(), 1)
	assert.Equal(t, "", aws.ToString(in.ClientToken))

	token, ok := s.LastRequest().JSON(t)["ClientToken"].(string)
	require.True(t, ok)
	_, err = uuid.Parse(token)
	assert.NoError(t, err)
}

func TestGetAutomationExecution(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.GetAutomationExecution", http.StatusOK, `{
		"AutomationExecution": {
			"AutomationExecutionId": "4105a4fc-f944-11e6-9d32-0123456789ab",
			"AutomationExecutionStatus": "Failed",
			"StepExecutions": [
				{"StepName": "stop", "StepStatus": "Success"},
				{"StepName": "start", "StepStatus": "Failed", "FailureDetails": {"FailureStage": "Invocation", "FailureType": "Verification"}}
			],
			"ProgressCounters": {"TotalSteps": 2, "SuccessSteps": 1, "FailedSteps": 1}
		}
	}`)

	out, err := c.GetAutomationExecution(context.Background(), &GetAutomationExecutionInput{
		AutomationExecutionId: aws.String("4105a4fc-f944-11e6-9d32-0123456789ab"),
	})
	require.NoError(t, err)
	ae := out.AutomationExecution
	assert.Equal(t, AutomationExecutionStatusFailed, ae.AutomationExecutionStatus)
	require.Len(t, ae.StepExecutions, 2)
	assert.Equal(t, "Verification", aws.ToString(ae.StepExecutions[1].FailureDetails.FailureType))
	assert.Equal(t, int32(1), aws.ToInt32(ae.ProgressCounters.FailedSteps))
}

func TestTagsForResource(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.ListTagsForResource", http.StatusOK, `{"TagList":[{"Key":"env","Value":"prod"}]}`)
	s.StubJSON("AmazonSSM.RemoveTagsFromResource", http.StatusOK, `{}`)

	out, err := c.ListTagsForResource(context.Background(), &ListTagsForResourceInput{
		ResourceType: ResourceTypeForTaggingParameter,
		ResourceId:   aws.String("/app/feature"),
	})
	require.NoError(t, err)
	require.Len(t, out.TagList, 1)

	_, err = c.RemoveTagsFromResource(context.Background(), &RemoveTagsFromResourceInput{
		ResourceType: ResourceTypeForTaggingParameter,
		ResourceId:   aws.String("/app/feature"),
		TagKeys:      []string{"env"},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ResourceType":"Parameter","ResourceId":"/app/feature","TagKeys":["env"]}`,
		string(s.LastRequest().Body))
}

func TestEmptyBodyOutput(t *testing.T) {
	c, s := newTestClient(t)
	s.StubJSON("AmazonSSM.DeleteParameter", http.StatusOK, nil)

	out, err := c.DeleteParameter(context.Background(), &DeleteParameterInput{Name: aws.String("/app/feature")})
	require.NoError(t, err)
	assert.NotNil(t, out)
}
