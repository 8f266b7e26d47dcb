// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package firehose

import (
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/tfctl/awsctl/core"
)

// ConcurrentModificationException is returned when another request changed
// the stream since its version id was read.
type ConcurrentModificationException struct {
	core.ServiceError
}

type InvalidArgumentException struct {
	core.ServiceError
}

// InvalidKMSResourceException means the KMS key given for server-side
// encryption is unusable. KMSCode carries the KMS reason.
type InvalidKMSResourceException struct {
	core.ServiceError
	KMSCode string
}

type LimitExceededException struct {
	core.ServiceError
}

type ResourceInUseException struct {
	core.ServiceError
}

type ResourceNotFoundException struct {
	core.ServiceError
}

// ServiceUnavailableException signals a throttled or unavailable service. The
// call can be retried with backoff.
type ServiceUnavailableException struct {
	core.ServiceError
}

var errorRegistry = core.ErrorRegistry{
	"ConcurrentModificationException": func(se core.ServiceError, _ []byte, _ http.Header) error { return &ConcurrentModificationException{se} },
	"InvalidArgumentException":        func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidArgumentException{se} },
	"InvalidKMSResourceException":     func(se core.ServiceError, body []byte, _ http.Header) error { return &InvalidKMSResourceException{se, gjson.GetBytes(body, "code").String()} },
	"LimitExceededException":          func(se core.ServiceError, _ []byte, _ http.Header) error { return &LimitExceededException{se} },
	"ResourceInUseException":          func(se core.ServiceError, _ []byte, _ http.Header) error { return &ResourceInUseException{se} },
	"ResourceNotFoundException":       func(se core.ServiceError, _ []byte, _ http.Header) error { return &ResourceNotFoundException{se} },
	"ServiceUnavailableException":     func(se core.ServiceError, _ []byte, _ http.Header) error { return &ServiceUnavailableException{se} },
}
