// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

//go:build integration
// +build integration

package aws

import (
	"context"
	"fmt"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/awsctl/service/firehose"
	"github.com/tfctl/awsctl/service/lexmodels"
	"github.com/tfctl/awsctl/service/ssm"
)

// These tests talk to a real account through the default credential chain.

func TestIntegration_ListServices(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadAWSConfig(ctx, WithRegion("us-east-1"))
	require.NoError(t, err)

	_, err = firehose.NewFromConfig(cfg).ListDeliveryStreams(ctx, &firehose.ListDeliveryStreamsInput{Limit: awsv2.Int32(5)})
	assert.NoError(t, err)

	_, err = lexmodels.NewFromConfig(cfg).GetBots(ctx, &lexmodels.GetBotsInput{MaxResults: awsv2.Int32(5)})
	assert.NoError(t, err)

	_, err = ssm.NewFromConfig(cfg).DescribeParameters(ctx, &ssm.DescribeParametersInput{MaxResults: awsv2.Int32(5)})
	assert.NoError(t, err)
}

func TestIntegration_ParameterRoundTrip(t *testing.T) {
	ctx := context.Background()
	cfg, err := LoadAWSConfig(ctx, WithRegion("us-east-1"))
	require.NoError(t, err)
	c := ssm.NewFromConfig(cfg)

	name := fmt.Sprintf("/awsctl-test/%d", time.Now().UnixNano())
	_, err = c.PutParameter(ctx, &ssm.PutParameterInput{
		Name:  awsv2.String(name),
		Value: awsv2.String("v1"),
		Type:  ssm.ParameterTypeString,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = c.DeleteParameter(ctx, &ssm.DeleteParameterInput{Name: awsv2.String(name)})
	})

	out, err := c.GetParameter(ctx, &ssm.GetParameterInput{Name: awsv2.String(name)})
	require.NoError(t, err)
	assert.Equal(t, "v1", awsv2.ToString(out.Parameter.Value))

	_, err = c.PutParameter(ctx, &ssm.PutParameterInput{Name: awsv2.String(name), Value: awsv2.String("v2")})
	var exists *ssm.ParameterAlreadyExists
	assert.ErrorAs(t, err, &exists)
}
