// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/smithy-go"
	"github.com/tidwall/gjson"
)

// ErrorFactory builds the typed error for one error code. The raw body and
// headers are passed for error shapes that carry extra members.
type ErrorFactory func(se ServiceError, body []byte, header http.Header) error

// ErrorRegistry maps service error codes to their factories.
type ErrorRegistry map[string]ErrorFactory

// ServiceError is an error returned by the service. Typed service errors
// embed it; it satisfies smithy.APIError.
type ServiceError struct {
	Code       string
	Message    string
	StatusCode int
	RequestID  string
}

var _ smithy.APIError = (*ServiceError)(nil)

func (e *ServiceError) Error() string {
	msg := fmt.Sprintf("api error %s: %s", e.Code, e.Message)
	if e.RequestID != "" {
		msg += " (request id " + e.RequestID + ")"
	}
	return msg
}

// ErrorCode returns the service error code.
func (e *ServiceError) ErrorCode() string { return e.Code }

// ErrorMessage returns the service provided message.
func (e *ServiceError) ErrorMessage() string { return e.Message }

// ErrorFault reports whether the caller or the service is at fault.
func (e *ServiceError) ErrorFault() smithy.ErrorFault {
	switch {
	case e.StatusCode >= 500:
		return smithy.FaultServer
	case e.StatusCode >= 400:
		return smithy.FaultClient
	}
	return smithy.FaultUnknown
}

// HTTPStatusCode lets the aws retry policy classify 5xx responses.
func (e *ServiceError) HTTPStatusCode() int { return e.StatusCode }

// ClientError is a failure on the calling side: bad configuration, a
// transport failure, a canceled context or an undecodable response.
type ClientError struct {
	Op  string
	Err error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ClientError) Unwrap() error { return e.Err }

// decodeError turns a non-2xx response into a typed service error.
func decodeError(info ServiceInfo, resp *http.Response, body []byte) error {
	doc := gjson.ParseBytes(body)

	code := resp.Header.Get("X-Amzn-Errortype")
	if code == "" {
		code = firstString(doc, "__type", "code", "Code")
	}
	code = sanitizeErrorCode(code)
	if code == "" {
		code = strings.ReplaceAll(http.StatusText(resp.StatusCode), " ", "")
	}

	se := ServiceError{
		Code:       code,
		Message:    firstString(doc, "message", "Message", "errorMessage"),
		StatusCode: resp.StatusCode,
		RequestID:  resp.Header.Get("X-Amzn-Requestid"),
	}

	if f, ok := info.Errors[code]; ok {
		return f(se, body, resp.Header)
	}
	return &se
}

// sanitizeErrorCode strips the namespace ("aws.protocoltests#Foo") and any
// trailing ":http://..." qualifier from a raw error type.
func sanitizeErrorCode(code string) string {
	if i := strings.Index(code, ":"); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndex(code, "#"); i >= 0 {
		code = code[i+1:]
	}
	return strings.TrimSpace(code)
}

func firstString(doc gjson.Result, keys ...string) string {
	for _, k := range keys {
		if v := doc.Get(k); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}
