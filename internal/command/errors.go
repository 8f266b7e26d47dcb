// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/smithy-go"

	"github.com/tfctl/awsctl/core"
)

// Friendly wraps err with a user facing message for the failures people hit
// most, preserving the original error for errors.Is/As.
func Friendly(err error, operation string) error {
	if err == nil {
		return nil
	}
	operation = nonEmpty(operation, "request")

	if errors.Is(err, core.ErrMissingRegion) {
		return fmt.Errorf("%s: no region configured. Use --region or set AWS_REGION: %w", operation, err)
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: interrupted: %w", operation, err)
	}

	var ce *core.ClientError
	if errors.As(err, &ce) && strings.HasPrefix(ce.Err.Error(), "retrieve credentials") {
		return fmt.Errorf("%s: no usable credentials. Use --profile or set AWS_PROFILE: %w", operation, err)
	}

	var ae smithy.APIError
	if errors.As(err, &ae) {
		code := ae.ErrorCode()
		switch {
		case strings.HasSuffix(code, "NotFoundException"), strings.HasSuffix(code, "NotFound"),
			code == "DoesNotExistException", strings.HasSuffix(code, "DoesNotExist"):
			return fmt.Errorf("%s: not found: %s: %w", operation, nonEmpty(ae.ErrorMessage(), code), err)
		case code == "AccessDeniedException", code == "UnrecognizedClientException",
			code == "InvalidSignatureException", code == "ExpiredTokenException":
			return fmt.Errorf("%s: access denied (%s). Check the profile's permissions: %w", operation, code, err)
		case code == "ThrottlingException", code == "TooManyUpdates", code == "ThrottlingError":
			return fmt.Errorf("%s: throttled by AWS, try again shortly: %w", operation, err)
		case strings.HasSuffix(code, "LimitExceededException"), strings.HasSuffix(code, "LimitExceeded"):
			return fmt.Errorf("%s: service quota reached: %s: %w", operation, nonEmpty(ae.ErrorMessage(), code), err)
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
