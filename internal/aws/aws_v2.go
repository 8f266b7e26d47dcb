// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package aws

import (
	"context"
	"fmt"
	"sort"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/tfctl/awsctl/internal/log"
)

// options holds optional overrides for AWS config loading.
type options struct {
	profile  string
	region   string
	endpoint string
	akid     string
	secret   string
	retryer  func() awsv2.Retryer
}

// Option customizes how AWS config is loaded. With no options the shell
// environment and shared config chain apply (AWS_PROFILE, ~/.aws/config,
// ~/.aws/credentials, IMDS).
type Option func(*options)

// LoadAWSConfig loads AWS SDK v2 config with the given overrides.
func LoadAWSConfig(ctx context.Context, opts ...Option) (awsv2.Config, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	log.Debugf("aws opts: profile=%s region=%s endpoint=%s", o.profile, o.region, o.endpoint)

	var loadOpts []func(*config.LoadOptions) error
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.region != "" {
		loadOpts = append(loadOpts, config.WithRegion(o.region))
	}
	if o.retryer != nil {
		loadOpts = append(loadOpts, config.WithRetryer(o.retryer))
	}
	if o.endpoint != "" {
		loadOpts = append(loadOpts, config.WithBaseEndpoint(o.endpoint))
	}
	if o.akid != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(o.akid, o.secret, "")))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return awsv2.Config{}, fmt.Errorf("load aws config: %w", err)
	}
	log.Debugf("aws config loaded: region=%s", cfg.Region)
	return cfg, nil
}

// WithProfile selects a shared config profile.
func WithProfile(profile string) Option {
	return func(o *options) { o.profile = profile }
}

// WithRegion overrides the region chain.
func WithRegion(region string) Option {
	return func(o *options) { o.region = region }
}

// WithRetryer injects a custom retryer; if not set, SDK defaults are used.
func WithRetryer(newRetryer func() awsv2.Retryer) Option {
	return func(o *options) { o.retryer = newRetryer }
}

// WithEndpoint points every client built from the config at url, normally a
// local emulator.
func WithEndpoint(url string) Option {
	return func(o *options) { o.endpoint = url }
}

// WithStaticCredentials replaces the credential chain.
func WithStaticCredentials(akid, secret string) Option {
	return func(o *options) {
		o.akid = akid
		o.secret = secret
	}
}

// NewS3 constructs an S3 client from cfg. A custom BaseEndpoint switches to
// path style addressing, which emulators expect.
func NewS3(cfg awsv2.Config, optFns ...func(*s3v2.Options)) *s3v2.Client {
	if cfg.BaseEndpoint != nil {
		optFns = append([]func(*s3v2.Options){func(o *s3v2.Options) { o.UsePathStyle = true }}, optFns...)
	}
	return s3v2.NewFromConfig(cfg, optFns...)
}

// ObjectLister is the part of the S3 API used by RecentObjects.
type ObjectLister interface {
	ListObjectsV2(context.Context, *s3v2.ListObjectsV2Input, ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error)
}

// BucketFromARN returns the bucket name of an S3 bucket ARN
// (arn:aws:s3:::bucket). A plain bucket name is returned unchanged.
func BucketFromARN(arn string) (string, error) {
	if !strings.HasPrefix(arn, "arn:") {
		return arn, nil
	}
	parts := strings.SplitN(arn, ":", 6)
	if len(parts) != 6 || parts[2] != "s3" || parts[5] == "" {
		return "", fmt.Errorf("not an s3 bucket arn: %s", arn)
	}
	return parts[5], nil
}

// RecentObjects lists every object under prefix and returns the newest
// limit of them, newest first. limit <= 0 returns all.
func RecentObjects(ctx context.Context, api ObjectLister, bucket, prefix string, limit int) ([]s3types.Object, error) {
	in := &s3v2.ListObjectsV2Input{Bucket: awsv2.String(bucket)}
	if prefix != "" {
		in.Prefix = awsv2.String(prefix)
	}

	var objects []s3types.Object
	p := s3v2.NewListObjectsV2Paginator(api, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list s3://%s/%s: %w", bucket, prefix, err)
		}
		objects = append(objects, page.Contents...)
	}
	log.Debugf("s3 objects: bucket=%s prefix=%s count=%d", bucket, prefix, len(objects))

	sort.SliceStable(objects, func(i, j int) bool {
		return awsv2.ToTime(objects[i].LastModified).After(awsv2.ToTime(objects[j].LastModified))
	})
	if limit > 0 && len(objects) > limit {
		objects = objects[:limit]
	}
	return objects, nil
}
