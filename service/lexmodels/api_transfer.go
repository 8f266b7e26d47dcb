// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package lexmodels

import (
	"context"
	"net/http"

	"github.com/tfctl/awsctl/core"
)

// GetExport exports a bot, intent or slot type. The returned URL is a
// presigned S3 link to a zip archive, valid for a limited time.
func (c *Client) GetExport(ctx context.Context, params *GetExportInput, optFns ...func(*core.Options)) (*GetExportOutput, error) {
	op := core.Operation{
		Name:        "GetExport",
		Method:      http.MethodGet,
		Path:        "/exports/",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetExportOutput](ctx, c, op, params, optFns)
}

type GetExportInput struct {
	Name         *string      `location:"querystring" locationName:"name" json:"-" required:"true" min:"1" max:"100"`
	Version      *string      `location:"querystring" locationName:"version" json:"-" required:"true" min:"1" max:"64"`
	ResourceType ResourceType `location:"querystring" locationName:"resourceType" json:"-" required:"true"`
	ExportType   ExportType   `location:"querystring" locationName:"exportType" json:"-" required:"true"`
}

type GetExportOutput struct {
	Name          *string      `json:"name,omitempty"`
	Version       *string      `json:"version,omitempty"`
	ResourceType  ResourceType `json:"resourceType,omitempty"`
	ExportType    ExportType   `json:"exportType,omitempty"`
	ExportStatus  ExportStatus `json:"exportStatus,omitempty"`
	FailureReason *string      `json:"failureReason,omitempty"`
	Url           *string      `json:"url,omitempty"`
}

// GetImport describes an import job started with StartImport.
func (c *Client) GetImport(ctx context.Context, params *GetImportInput, optFns ...func(*core.Options)) (*GetImportOutput, error) {
	op := core.Operation{
		Name:        "GetImport",
		Method:      http.MethodGet,
		Path:        "/imports/{importId}",
		SuccessCode: http.StatusOK,
	}
	return invoke[GetImportOutput](ctx, c, op, params, optFns)
}

type GetImportInput struct {
	ImportId *string `location:"uri" locationName:"importId" json:"-" required:"true"`
}

type GetImportOutput struct {
	Name          *string         `json:"name,omitempty"`
	ResourceType  ResourceType    `json:"resourceType,omitempty"`
	MergeStrategy MergeStrategy   `json:"mergeStrategy,omitempty"`
	ImportId      *string         `json:"importId,omitempty"`
	ImportStatus  ImportStatus    `json:"importStatus,omitempty"`
	FailureReason []string        `json:"failureReason,omitempty"`
	CreatedDate   *core.Timestamp `json:"createdDate,omitempty"`
}

// StartImport starts importing a zip archive of a bot, intent or slot type.
func (c *Client) StartImport(ctx context.Context, params *StartImportInput, optFns ...func(*core.Options)) (*StartImportOutput, error) {
	op := core.Operation{
		Name:        "StartImport",
		Method:      http.MethodPost,
		Path:        "/imports/",
		SuccessCode: http.StatusCreated,
	}
	return invoke[StartImportOutput](ctx, c, op, params, optFns)
}

type StartImportInput struct {
	Payload       []byte        `json:"payload,omitempty" required:"true"`
	ResourceType  ResourceType  `json:"resourceType,omitempty" required:"true"`
	MergeStrategy MergeStrategy `json:"mergeStrategy,omitempty" required:"true"`
	Tags          []Tag         `json:"tags,omitempty" max:"200"`
}

type StartImportOutput struct {
	Name          *string         `json:"name,omitempty"`
	ResourceType  ResourceType    `json:"resourceType,omitempty"`
	MergeStrategy MergeStrategy   `json:"mergeStrategy,omitempty"`
	ImportId      *string         `json:"importId,omitempty"`
	ImportStatus  ImportStatus    `json:"importStatus,omitempty"`
	Tags          []Tag           `json:"tags,omitempty"`
	CreatedDate   *core.Timestamp `json:"createdDate,omitempty"`
}
