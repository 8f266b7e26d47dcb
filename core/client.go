// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"

	"github.com/tfctl/awsctl/internal/log"
	"github.com/tfctl/awsctl/internal/version"
)

// ErrMissingRegion is returned, wrapped in a ClientError, when neither a
// region nor a base endpoint is configured.
var ErrMissingRegion = errors.New("no region configured")

// ServiceInfo describes a service API to the dispatcher.
type ServiceInfo struct {
	// Name is the human readable service name used in log lines.
	Name string
	// SigningName is the SigV4 service name.
	SigningName string
	// EndpointPrefix is the host prefix, e.g. "firehose" or "models.lex".
	EndpointPrefix string
	APIVersion     string
	// TargetPrefix is the X-Amz-Target prefix for JSON 1.1 services.
	TargetPrefix string
	// Errors maps error codes to their typed constructors.
	Errors ErrorRegistry
}

// Operation names a single API call. Method, Path and SuccessCode only
// matter for REST-JSON services. A 2xx response other than a non-zero
// SuccessCode fails the call.
type Operation struct {
	Name        string
	Method      string
	Path        string
	SuccessCode int
}

// Client dispatches operations for one service.
type Client struct {
	info    ServiceInfo
	options Options
}

// New builds a Client for the service described by info.
func New(info ServiceInfo, opts Options, optFns ...func(*Options)) *Client {
	opts = opts.Copy()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Client{info: info, options: opts}
}

// Options returns a copy of the client options.
func (c *Client) Options() Options {
	return c.options.Copy()
}

// Info returns the service description.
func (c *Client) Info() ServiceInfo {
	return c.info
}

// wireRequest is a fully marshaled request, reusable across attempts.
type wireRequest struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type marshaler func(endpoint string) (*wireRequest, error)

// InvokeJSON dispatches op using the AWS JSON 1.1 protocol.
func (c *Client) InvokeJSON(ctx context.Context, op Operation, in, out any, optFns ...func(*Options)) error {
	return c.invoke(ctx, op, in, out, func(endpoint string) (*wireRequest, error) {
		return c.marshalJSON(op, in, endpoint)
	}, optFns)
}

// InvokeREST dispatches op using the REST-JSON protocol.
func (c *Client) InvokeREST(ctx context.Context, op Operation, in, out any, optFns ...func(*Options)) error {
	return c.invoke(ctx, op, in, out, func(endpoint string) (*wireRequest, error) {
		return marshalREST(op, in, endpoint)
	}, optFns)
}

func (c *Client) invoke(ctx context.Context, op Operation, in, out any, m marshaler, optFns []func(*Options)) error {
	opts := c.options.Copy()
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.resolveDefaults()

	if err := Validate(op.Name, in); err != nil {
		return err
	}

	endpoint, err := c.endpoint(opts)
	if err != nil {
		return &ClientError{Op: op.Name, Err: err}
	}

	wr, err := m(endpoint)
	if err != nil {
		return &ClientError{Op: op.Name, Err: fmt.Errorf("marshal request: %w", err)}
	}
	wr.Header.Set("User-Agent", version.UserAgent())
	log.Tracef("request: op=%s method=%s url=%s body=%s", op.Name, wr.Method, wr.URL, wr.Body)

	maxAttempts := opts.Retryer.MaxAttempts()
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	var releaseRetry func(error) error
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return &ClientError{Op: op.Name, Err: err}
		}

		releaseAttempt, err := attemptToken(ctx, opts.Retryer)
		if err != nil {
			return &ClientError{Op: op.Name, Err: fmt.Errorf("get attempt token: %w", err)}
		}

		opErr := c.attempt(ctx, opts, op, wr, out)
		_ = releaseAttempt(opErr)
		if releaseRetry != nil {
			// A successful retry returns its cost to the retry quota.
			_ = releaseRetry(opErr)
			releaseRetry = nil
		}
		if opErr == nil {
			return nil
		}

		if attempt >= maxAttempts || !opts.Retryer.IsErrorRetryable(opErr) {
			return opErr
		}

		releaseRetry, err = opts.Retryer.GetRetryToken(ctx, opErr)
		if err != nil {
			log.Debugf("retry quota exhausted: svc=%s op=%s attempt=%d err=%v", c.info.Name, op.Name, attempt, err)
			return opErr
		}

		delay, derr := opts.Retryer.RetryDelay(attempt, opErr)
		if derr != nil {
			return opErr
		}
		log.Debugf("retrying: svc=%s op=%s attempt=%d delay=%s err=%v", c.info.Name, op.Name, attempt, delay, opErr)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return &ClientError{Op: op.Name, Err: ctx.Err()}
		case <-timer.C:
		}
	}
}

// attemptToken takes the per-attempt token from r, falling back to the
// initial token for retryers that predate awsv2.RetryerV2.
func attemptToken(ctx context.Context, r awsv2.Retryer) (func(error) error, error) {
	if v2, ok := r.(awsv2.RetryerV2); ok {
		return v2.GetAttemptToken(ctx)
	}
	return r.GetInitialToken(), nil
}

// attempt performs one signed round trip and decodes the outcome.
func (c *Client) attempt(ctx context.Context, opts Options, op Operation, wr *wireRequest, out any) error {
	req, err := http.NewRequestWithContext(ctx, wr.Method, wr.URL, bytes.NewReader(wr.Body))
	if err != nil {
		return &ClientError{Op: op.Name, Err: err}
	}
	for k, v := range wr.Header {
		req.Header[k] = append([]string(nil), v...)
	}

	if opts.Credentials != nil {
		creds, err := opts.Credentials.Retrieve(ctx)
		if err != nil {
			return &ClientError{Op: op.Name, Err: fmt.Errorf("retrieve credentials: %w", err)}
		}
		sum := sha256.Sum256(wr.Body)
		if err := opts.Signer.SignHTTP(ctx, creds, req, hex.EncodeToString(sum[:]),
			c.info.SigningName, opts.Region, opts.Clock()); err != nil {
			return &ClientError{Op: op.Name, Err: fmt.Errorf("sign request: %w", err)}
		}
	}

	resp, err := opts.HTTPClient.Do(req)
	if err != nil {
		return &ClientError{Op: op.Name, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ClientError{Op: op.Name, Err: fmt.Errorf("read response: %w", err)}
	}
	log.Debugf("response: svc=%s op=%s status=%d", c.info.Name, op.Name, resp.StatusCode)
	log.Tracef("response body: op=%s body=%s", op.Name, body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(c.info, resp, body)
	}
	if op.SuccessCode != 0 && resp.StatusCode != op.SuccessCode {
		return &ClientError{Op: op.Name, Err: fmt.Errorf("unexpected status %d, want %d", resp.StatusCode, op.SuccessCode)}
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &ClientError{Op: op.Name, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func (c *Client) endpoint(opts Options) (string, error) {
	if opts.BaseEndpoint != nil && *opts.BaseEndpoint != "" {
		return strings.TrimRight(*opts.BaseEndpoint, "/"), nil
	}
	if opts.Region == "" {
		return "", ErrMissingRegion
	}
	suffix := "amazonaws.com"
	if strings.HasPrefix(opts.Region, "cn-") {
		suffix += ".cn"
	}
	return fmt.Sprintf("https://%s.%s.%s", c.info.EndpointPrefix, opts.Region, suffix), nil
}
