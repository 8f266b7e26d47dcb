// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import (
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/tidwall/gjson"

	"github.com/tfctl/awsctl/core"
)

// BadRequestException is returned for malformed requests, for example an
// unknown intent referenced from a bot.
type BadRequestException struct {
	core.ServiceError
}

// ConflictException means another operation on the resource is in progress.
type ConflictException struct {
	core.ServiceError
}

type InternalFailureException struct {
	core.ServiceError
}

// LimitExceededException is returned when a request rate or resource limit is
// hit. RetryAfterSeconds comes from the Retry-After header.
type LimitExceededException struct {
	core.ServiceError
	RetryAfterSeconds string
}

type NotFoundException struct {
	core.ServiceError
}

// PreconditionFailedException means the checksum sent with a Put call does
// not match the $LATEST version.
type PreconditionFailedException struct {
	core.ServiceError
}

// ResourceInUseException is returned when deleting a resource that others
// still reference. ExampleReference names one of them.
type ResourceInUseException struct {
	core.ServiceError
	ReferenceType    ReferenceType
	ExampleReference *ResourceReference
}

var errorRegistry = core.ErrorRegistry{
	"BadRequestException":         func(se core.ServiceError, _ []byte, _ http.Header) error { return &BadRequestException{se} },
	"ConflictException":           func(se core.ServiceError, _ []byte, _ http.Header) error { return &ConflictException{se} },
	"InternalFailureException":    func(se core.ServiceError, _ []byte, _ http.Header) error { return &InternalFailureException{se} },
	"LimitExceededException":      func(se core.ServiceError, _ []byte, h http.Header) error { return &LimitExceededException{se, h.Get("Retry-After")} },
	"NotFoundException":           func(se core.ServiceError, _ []byte, _ http.Header) error { return &NotFoundException{se} },
	"PreconditionFailedException": func(se core.ServiceError, _ []byte, _ http.Header) error { return &PreconditionFailedException{se} },
	"ResourceInUseException":      newResourceInUseException,
}

func newResourceInUseException(se core.ServiceError, body []byte, _ http.Header) error {
	e := &ResourceInUseException{ServiceError: se}
	doc := gjson.ParseBytes(body)
	e.ReferenceType = ReferenceType(doc.Get("referenceType").String())
	if ref := doc.Get("exampleReference"); ref.Exists() {
		e.ExampleReference = &ResourceReference{}
		if v := ref.Get("name"); v.Exists() {
			e.ExampleReference.Name = aws.String(v.String())
		}
		if v := ref.Get("version"); v.Exists() {
			e.ExampleReference.Version = aws.String(v.String())
		}
	}
	return e
}
