// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the host's AWS files and variables out of config loading.
func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("AWS_CONFIG_FILE", filepath.Join(dir, "config"))
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", filepath.Join(dir, "credentials"))
	t.Setenv("AWS_PROFILE", "")
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "")
	t.Setenv("AWS_ENDPOINT_URL", "")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
}

func TestOptions(t *testing.T) {
	var o options
	for _, opt := range []Option{
		WithProfile("dev"),
		WithRegion("eu-west-1"),
		WithEndpoint("http://localhost:4566"),
		WithStaticCredentials("AKID", "SECRET"),
		WithRetryer(func() awsv2.Retryer { return awsv2.NopRetryer{} }),
	} {
		opt(&o)
	}
	assert.Equal(t, "dev", o.profile)
	assert.Equal(t, "eu-west-1", o.region)
	assert.Equal(t, "http://localhost:4566", o.endpoint)
	assert.Equal(t, "AKID", o.akid)
	assert.Equal(t, "SECRET", o.secret)
	require.NotNil(t, o.retryer)
	assert.IsType(t, awsv2.NopRetryer{}, o.retryer())
}

func TestLoadAWSConfig(t *testing.T) {
	isolate(t)

	cfg, err := LoadAWSConfig(context.Background(),
		WithRegion("ap-southeast-2"),
		WithEndpoint("http://localhost:4566"),
		WithStaticCredentials("AKID", "SECRET"),
		WithRetryer(func() awsv2.Retryer { return retry.AddWithMaxAttempts(retry.NewStandard(), 5) }),
	)
	require.NoError(t, err)
	assert.Equal(t, "ap-southeast-2", cfg.Region)
	assert.Equal(t, "http://localhost:4566", awsv2.ToString(cfg.BaseEndpoint))
	assert.Equal(t, 5, cfg.Retryer().MaxAttempts())

	creds, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "AKID", creds.AccessKeyID)
}

func TestLoadAWSConfigLaterOptionWins(t *testing.T) {
	isolate(t)

	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"), WithRegion("us-west-2"))
	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

func TestLoadAWSConfigMissingProfile(t *testing.T) {
	isolate(t)

	_, err := LoadAWSConfig(context.Background(), WithProfile("does-not-exist"))
	assert.ErrorContains(t, err, "load aws config")
}

func TestNewS3(t *testing.T) {
	cfg := awsv2.Config{Region: "us-east-1"}
	assert.False(t, NewS3(cfg).Options().UsePathStyle)

	cfg.BaseEndpoint = awsv2.String("http://localhost:4566")
	c := NewS3(cfg, func(o *s3v2.Options) { o.Region = "eu-west-1" })
	assert.True(t, c.Options().UsePathStyle)
	assert.Equal(t, "eu-west-1", c.Options().Region)
}

func TestBucketFromARN(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"arn:aws:s3:::clicks-bucket", "clicks-bucket", false},
		{"arn:aws-cn:s3:::cn-bucket", "cn-bucket", false},
		{"plain-bucket", "plain-bucket", false},
		{"arn:aws:sqs:us-east-1:1:queue", "", true},
		{"arn:aws:s3:::", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := BucketFromARN(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type fakeLister struct {
	pages [][]s3types.Object
	calls []*s3v2.ListObjectsV2Input
	err   error
}

func (f *fakeLister) ListObjectsV2(_ context.Context, in *s3v2.ListObjectsV2Input, _ ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error) {
	f.calls = append(f.calls, in)
	if f.err != nil {
		return nil, f.err
	}
	i := len(f.calls) - 1
	out := &s3v2.ListObjectsV2Output{Contents: f.pages[i]}
	if i < len(f.pages)-1 {
		out.IsTruncated = awsv2.Bool(true)
		out.NextContinuationToken = awsv2.String("next")
	}
	return out, nil
}

func TestRecentObjects(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	obj := func(key string, h int) s3types.Object {
		return s3types.Object{Key: awsv2.String(key), LastModified: awsv2.Time(base.Add(time.Duration(h) * time.Hour))}
	}
	f := &fakeLister{pages: [][]s3types.Object{
		{obj("raw/a", 1), obj("raw/b", 5)},
		{obj("raw/c", 3)},
	}}

	got, err := RecentObjects(context.Background(), f, "clicks", "raw/", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "raw/b", awsv2.ToString(got[0].Key))
	assert.Equal(t, "raw/c", awsv2.ToString(got[1].Key))

	require.Len(t, f.calls, 2)
	assert.Equal(t, "raw/", awsv2.ToString(f.calls[0].Prefix))
	assert.Equal(t, "next", awsv2.ToString(f.calls[1].ContinuationToken))
}

func TestRecentObjectsError(t *testing.T) {
	f := &fakeLister{err: errors.New("denied")}
	_, err := RecentObjects(context.Background(), f, "clicks", "", 0)
	assert.ErrorContains(t, err, "list s3://clicks/")
	assert.Nil(t, f.calls[0].Prefix)
}
