// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"context"
	"net/http"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
)

// HTTPSigner signs an outgoing request. *v4.Signer satisfies it.
type HTTPSigner interface {
	SignHTTP(ctx context.Context, credentials awsv2.Credentials, r *http.Request,
		payloadHash string, service string, region string, signingTime time.Time,
		optFns ...func(*v4.SignerOptions)) error
}

// Options configures a Client. Zero values are replaced with aws-sdk-go-v2
// defaults when the client is built, so a literal Options{Region: "..."} is
// usable as is.
type Options struct {
	// Region is used both for endpoint resolution and for signing.
	Region string

	// BaseEndpoint overrides the resolved https://<prefix>.<region> endpoint.
	BaseEndpoint *string

	// Credentials signs each request. Requests are sent unsigned when nil.
	Credentials awsv2.CredentialsProvider

	HTTPClient awsv2.HTTPClient
	Retryer    awsv2.Retryer
	Signer     HTTPSigner

	// Clock supplies the signing time.
	Clock func() time.Time
}

// OptionsFromConfig lifts the settings of a loaded aws.Config into Options.
func OptionsFromConfig(cfg awsv2.Config) Options {
	opts := Options{
		Region:       cfg.Region,
		BaseEndpoint: cfg.BaseEndpoint,
		Credentials:  cfg.Credentials,
		HTTPClient:   cfg.HTTPClient,
	}
	if cfg.Retryer != nil {
		opts.Retryer = cfg.Retryer()
	}
	return opts
}

// WithRegion overrides the region for a single call or client.
func WithRegion(region string) func(*Options) {
	return func(o *Options) { o.Region = region }
}

// WithCredentials overrides the credentials for a single call or client.
func WithCredentials(p awsv2.CredentialsProvider) func(*Options) {
	return func(o *Options) { o.Credentials = p }
}

// WithBaseEndpoint points a client or call at a fixed endpoint, typically a
// local emulator.
func WithBaseEndpoint(url string) func(*Options) {
	return func(o *Options) { o.BaseEndpoint = awsv2.String(url) }
}

// WithRetryer replaces the retry policy.
func WithRetryer(r awsv2.Retryer) func(*Options) {
	return func(o *Options) { o.Retryer = r }
}

// Copy returns a shallow copy of o.
func (o Options) Copy() Options {
	cp := o
	if o.BaseEndpoint != nil {
		cp.BaseEndpoint = awsv2.String(*o.BaseEndpoint)
	}
	return cp
}

func (o *Options) resolveDefaults() {
	if o.HTTPClient == nil {
		o.HTTPClient = awshttp.NewBuildableClient()
	}
	if o.Retryer == nil {
		o.Retryer = retry.NewStandard()
	}
	if o.Signer == nil {
		o.Signer = v4.NewSigner()
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
}
