// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"net/http"

	"github.com/tfctl/awsctl/core"
)

type AssociatedInstances struct {
	core.ServiceError
}

type AssociationAlreadyExists struct {
	core.ServiceError
}

type AssociationDoesNotExist struct {
	core.ServiceError
}

type AssociationLimitExceeded struct {
	core.ServiceError
}

type AssociationVersionLimitExceeded struct {
	core.ServiceError
}

type AutomationDefinitionNotFoundException struct {
	core.ServiceError
}

type AutomationDefinitionVersionNotFoundException struct {
	core.ServiceError
}

type AutomationExecutionLimitExceededException struct {
	core.ServiceError
}

type AutomationExecutionNotFoundException struct {
	core.ServiceError
}

type DocumentAlreadyExists struct {
	core.ServiceError
}

type DocumentLimitExceeded struct {
	core.ServiceError
}

type DocumentVersionLimitExceeded struct {
	core.ServiceError
}

type DuplicateDocumentContent struct {
	core.ServiceError
}

type DuplicateDocumentVersionName struct {
	core.ServiceError
}

type DuplicateInstanceId struct {
	core.ServiceError
}

type HierarchyLevelLimitExceededException struct {
	core.ServiceError
}

type HierarchyTypeMismatchException struct {
	core.ServiceError
}

type IdempotentParameterMismatch struct {
	core.ServiceError
}

type IncompatiblePolicyException struct {
	core.ServiceError
}

// InternalServerError is a service side failure; the call may succeed when
// retried.
type InternalServerError struct {
	core.ServiceError
}

type InvalidAllowedPatternException struct {
	core.ServiceError
}

type InvalidAssociation struct {
	core.ServiceError
}

type InvalidAssociationVersion struct {
	core.ServiceError
}

type InvalidAutomationExecutionParametersException struct {
	core.ServiceError
}

type InvalidAutomationStatusUpdateException struct {
	core.ServiceError
}

type InvalidCommandId struct {
	core.ServiceError
}

type InvalidDocument struct {
	core.ServiceError
}

type InvalidDocumentContent struct {
	core.ServiceError
}

type InvalidDocumentOperation struct {
	core.ServiceError
}

type InvalidDocumentSchemaVersion struct {
	core.ServiceError
}

type InvalidDocumentType struct {
	core.ServiceError
}

type InvalidDocumentVersion struct {
	core.ServiceError
}

type InvalidFilter struct {
	core.ServiceError
}

type InvalidFilterKey struct {
	core.ServiceError
}

type InvalidFilterOption struct {
	core.ServiceError
}

type InvalidFilterValue struct {
	core.ServiceError
}

// InvalidInstanceId means an instance is unknown, not running the SSM agent,
// or not in a state that accepts commands.
type InvalidInstanceId struct {
	core.ServiceError
}

type InvalidKeyId struct {
	core.ServiceError
}

type InvalidNextToken struct {
	core.ServiceError
}

type InvalidNotificationConfig struct {
	core.ServiceError
}

type InvalidOutputFolder struct {
	core.ServiceError
}

type InvalidOutputLocation struct {
	core.ServiceError
}

type InvalidParameters struct {
	core.ServiceError
}

type InvalidPluginName struct {
	core.ServiceError
}

type InvalidPolicyAttributeException struct {
	core.ServiceError
}

type InvalidPolicyTypeException struct {
	core.ServiceError
}

type InvalidResourceId struct {
	core.ServiceError
}

type InvalidResourceType struct {
	core.ServiceError
}

type InvalidRole struct {
	core.ServiceError
}

type InvalidSchedule struct {
	core.ServiceError
}

type InvalidTarget struct {
	core.ServiceError
}

type InvalidUpdate struct {
	core.ServiceError
}

type InvocationDoesNotExist struct {
	core.ServiceError
}

type MaxDocumentSizeExceeded struct {
	core.ServiceError
}

// ParameterAlreadyExists is returned by PutParameter for an existing name
// unless Overwrite is set.
type ParameterAlreadyExists struct {
	core.ServiceError
}

type ParameterLimitExceeded struct {
	core.ServiceError
}

type ParameterMaxVersionLimitExceeded struct {
	core.ServiceError
}

type ParameterNotFound struct {
	core.ServiceError
}

type ParameterPatternMismatchException struct {
	core.ServiceError
}

type ParameterVersionNotFound struct {
	core.ServiceError
}

type PoliciesLimitExceededException struct {
	core.ServiceError
}

type TooManyTagsError struct {
	core.ServiceError
}

type TooManyUpdates struct {
	core.ServiceError
}

type UnsupportedParameterType struct {
	core.ServiceError
}

type UnsupportedPlatformType struct {
	core.ServiceError
}

var errorRegistry = core.ErrorRegistry{
	"AssociatedInstances":                           func(se core.ServiceError, _ []byte, _ http.Header) error { return &AssociatedInstances{se} },
	"AssociationAlreadyExists":                      func(se core.ServiceError, _ []byte, _ http.Header) error { return &AssociationAlreadyExists{se} },
	"AssociationDoesNotExist":                       func(se core.ServiceError, _ []byte, _ http.Header) error { return &AssociationDoesNotExist{se} },
	"AssociationLimitExceeded":                      func(se core.ServiceError, _ []byte, _ http.Header) error { return &AssociationLimitExceeded{se} },
	"AssociationVersionLimitExceeded":               func(se core.ServiceError, _ []byte, _ http.Header) error { return &AssociationVersionLimitExceeded{se} },
	"AutomationDefinitionNotFoundException":         func(se core.ServiceError, _ []byte, _ http.Header) error { return &AutomationDefinitionNotFoundException{se} },
	"AutomationDefinitionVersionNotFoundException":  func(se core.ServiceError, _ []byte, _ http.Header) error { return &AutomationDefinitionVersionNotFoundException{se} },
	"AutomationExecutionLimitExceededException":     func(se core.ServiceError, _ []byte, _ http.Header) error { return &AutomationExecutionLimitExceededException{se} },
	"AutomationExecutionNotFoundException":          func(se core.ServiceError, _ []byte, _ http.Header) error { return &AutomationExecutionNotFoundException{se} },
	"DocumentAlreadyExists":                         func(se core.ServiceError, _ []byte, _ http.Header) error { return &DocumentAlreadyExists{se} },
	"DocumentLimitExceeded":                         func(se core.ServiceError, _ []byte, _ http.Header) error { return &DocumentLimitExceeded{se} },
	"DocumentVersionLimitExceeded":                  func(se core.ServiceError, _ []byte, _ http.Header) error { return &DocumentVersionLimitExceeded{se} },
	"DuplicateDocumentContent":                      func(se core.ServiceError, _ []byte, _ http.Header) error { return &DuplicateDocumentContent{se} },
	"DuplicateDocumentVersionName":                  func(se core.ServiceError, _ []byte, _ http.Header) error { return &DuplicateDocumentVersionName{se} },
	"DuplicateInstanceId":                           func(se core.ServiceError, _ []byte, _ http.Header) error { return &DuplicateInstanceId{se} },
	"HierarchyLevelLimitExceededException":          func(se core.ServiceError, _ []byte, _ http.Header) error { return &HierarchyLevelLimitExceededException{se} },
	"HierarchyTypeMismatchException":                func(se core.ServiceError, _ []byte, _ http.Header) error { return &HierarchyTypeMismatchException{se} },
	"IdempotentParameterMismatch":                   func(se core.ServiceError, _ []byte, _ http.Header) error { return &IdempotentParameterMismatch{se} },
	"IncompatiblePolicyException":                   func(se core.ServiceError, _ []byte, _ http.Header) error { return &IncompatiblePolicyException{se} },
	"InternalServerError":                           func(se core.ServiceError, _ []byte, _ http.Header) error { return &InternalServerError{se} },
	"InvalidAllowedPatternException":                func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidAllowedPatternException{se} },
	"InvalidAssociation":                            func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidAssociation{se} },
	"InvalidAssociationVersion":                     func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidAssociationVersion{se} },
	"InvalidAutomationExecutionParametersException": func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidAutomationExecutionParametersException{se} },
	"InvalidAutomationStatusUpdateException":        func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidAutomationStatusUpdateException{se} },
	"InvalidCommandId":                              func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidCommandId{se} },
	"InvalidDocument":                               func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidDocument{se} },
	"InvalidDocumentContent":                        func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidDocumentContent{se} },
	"InvalidDocumentOperation":                      func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidDocumentOperation{se} },
	"InvalidDocumentSchemaVersion":                  func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidDocumentSchemaVersion{se} },
	"InvalidDocumentType":                           func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidDocumentType{se} },
	"InvalidDocumentVersion":                        func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidDocumentVersion{se} },
	"InvalidFilter":                                 func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidFilter{se} },
	"InvalidFilterKey":                              func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidFilterKey{se} },
	"InvalidFilterOption":                           func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidFilterOption{se} },
	"InvalidFilterValue":                            func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidFilterValue{se} },
	"InvalidInstanceId":                             func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidInstanceId{se} },
	"InvalidKeyId":                                  func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidKeyId{se} },
	"InvalidNextToken":                              func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidNextToken{se} },
	"InvalidNotificationConfig":                     func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidNotificationConfig{se} },
	"InvalidOutputFolder":                           func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidOutputFolder{se} },
	"InvalidOutputLocation":                         func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidOutputLocation{se} },
	"InvalidParameters":                             func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidParameters{se} },
	"InvalidPluginName":                             func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidPluginName{se} },
	"InvalidPolicyAttributeException":               func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidPolicyAttributeException{se} },
	"InvalidPolicyTypeException":                    func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidPolicyTypeException{se} },
	"InvalidResourceId":                             func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidResourceId{se} },
	"InvalidResourceType":                           func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidResourceType{se} },
	"InvalidRole":                                   func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidRole{se} },
	"InvalidSchedule":                               func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidSchedule{se} },
	"InvalidTarget":                                 func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidTarget{se} },
	"InvalidUpdate":                                 func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvalidUpdate{se} },
	"InvocationDoesNotExist":                        func(se core.ServiceError, _ []byte, _ http.Header) error { return &InvocationDoesNotExist{se} },
	"MaxDocumentSizeExceeded":                       func(se core.ServiceError, _ []byte, _ http.Header) error { return &MaxDocumentSizeExceeded{se} },
	"ParameterAlreadyExists":                        func(se core.ServiceError, _ []byte, _ http.Header) error { return &ParameterAlreadyExists{se} },
	"ParameterLimitExceeded":                        func(se core.ServiceError, _ []byte, _ http.Header) error { return &ParameterLimitExceeded{se} },
	"ParameterMaxVersionLimitExceeded":              func(se core.ServiceError, _ []byte, _ http.Header) error { return &ParameterMaxVersionLimitExceeded{se} },
	"ParameterNotFound":                             func(se core.ServiceError, _ []byte, _ http.Header) error { return &ParameterNotFound{se} },
	"ParameterPatternMismatchException":             func(se core.ServiceError, _ []byte, _ http.Header) error { return &ParameterPatternMismatchException{se} },
	"ParameterVersionNotFound":                      func(se core.ServiceError, _ []byte, _ http.Header) error { return &ParameterVersionNotFound{se} },
	"PoliciesLimitExceededException":                func(se core.ServiceError, _ []byte, _ http.Header) error { return &PoliciesLimitExceededException{se} },
	"TooManyTagsError":                              func(se core.ServiceError, _ []byte, _ http.Header) error { return &TooManyTagsError{se} },
	"TooManyUpdates":                                func(se core.ServiceError, _ []byte, _ http.Header) error { return &TooManyUpdates{se} },
	"UnsupportedParameterType":                      func(se core.ServiceError, _ []byte, _ http.Header) error { return &UnsupportedParameterType{se} },
	"UnsupportedPlatformType":                       func(se core.ServiceError, _ []byte, _ http.Header) error { return &UnsupportedPlatformType{se} },
}
