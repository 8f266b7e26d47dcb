// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package ssm

import (
	"context"

	"github.com/tfctl/awsctl/core"
)

// CreateDocument creates an SSM document from JSON or YAML content.
func (c *Client) CreateDocument(ctx context.Context, params *CreateDocumentInput, optFns ...func(*core.Options)) (*CreateDocumentOutput, error) {
	return invoke[CreateDocumentOutput](ctx, c, "CreateDocument", params, optFns)
}

type CreateDocumentInput struct {
	Content        *string            `json:"Content,omitempty" required:"true" min:"1"`
	Requires       []DocumentRequires `json:"Requires,omitempty" min:"1"`
	Name           *string            `json:"Name,omitempty" required:"true"`
	VersionName    *string            `json:"VersionName,omitempty"`
	DocumentType   DocumentType       `json:"DocumentType,omitempty"`
	DocumentFormat DocumentFormat     `json:"DocumentFormat,omitempty"`
	TargetType     *string            `json:"TargetType,omitempty" max:"200"`
	Tags           []Tag              `json:"Tags,omitempty" max:"1000"`
}

type CreateDocumentOutput struct {
	DocumentDescription *DocumentDescription `json:"DocumentDescription,omitempty"`
}

// DeleteDocument deletes a document and all its versions. Documents with
// associations are only deleted when Force is set.
func (c *Client) DeleteDocument(ctx context.Context, params *DeleteDocumentInput, optFns ...func(*core.Options)) (*DeleteDocumentOutput, error) {
	return invoke[DeleteDocumentOutput](ctx, c, "DeleteDocument", params, optFns)
}

type DeleteDocumentInput struct {
	Name            *string `json:"Name,omitempty" required:"true"`
	DocumentVersion *string `json:"DocumentVersion,omitempty"`
	VersionName     *string `json:"VersionName,omitempty"`
	Force           *bool   `json:"Force,omitempty"`
}

type DeleteDocumentOutput struct{}

// DescribeDocument describes a document version.
func (c *Client) DescribeDocument(ctx context.Context, params *DescribeDocumentInput, optFns ...func(*core.Options)) (*DescribeDocumentOutput, error) {
	return invoke[DescribeDocumentOutput](ctx, c, "DescribeDocument", params, optFns)
}

type DescribeDocumentInput struct {
	Name            *string `json:"Name,omitempty" required:"true"`
	DocumentVersion *string `json:"DocumentVersion,omitempty"`
	VersionName     *string `json:"VersionName,omitempty"`
}

type DescribeDocumentOutput struct {
	Document *DocumentDescription `json:"Document,omitempty"`
}

// GetDocument returns the content of a document version.
func (c *Client) GetDocument(ctx context.Context, params *GetDocumentInput, optFns ...func(*core.Options)) (*GetDocumentOutput, error) {
	return invoke[GetDocumentOutput](ctx, c, "GetDocument", params, optFns)
}

type GetDocumentInput struct {
	Name            *string        `json:"Name,omitempty" required:"true"`
	VersionName     *string        `json:"VersionName,omitempty"`
	DocumentVersion *string        `json:"DocumentVersion,omitempty"`
	DocumentFormat  DocumentFormat `json:"DocumentFormat,omitempty"`
}

type GetDocumentOutput struct {
	Name              *string            `json:"Name,omitempty"`
	VersionName       *string            `json:"VersionName,omitempty"`
	DocumentVersion   *string            `json:"DocumentVersion,omitempty"`
	Status            DocumentStatus     `json:"Status,omitempty"`
	StatusInformation *string            `json:"StatusInformation,omitempty"`
	Content           *string            `json:"Content,omitempty"`
	DocumentType      DocumentType       `json:"DocumentType,omitempty"`
	DocumentFormat    DocumentFormat     `json:"DocumentFormat,omitempty"`
	Requires          []DocumentRequires `json:"Requires,omitempty"`
}

// ListDocuments lists documents visible to the account. Filters supersedes
// the older DocumentFilterList.
func (c *Client) ListDocuments(ctx context.Context, params *ListDocumentsInput, optFns ...func(*core.Options)) (*ListDocumentsOutput, error) {
	return invoke[ListDocumentsOutput](ctx, c, "ListDocuments", params, optFns)
}

type ListDocumentsInput struct {
	DocumentFilterList []DocumentFilter          `json:"DocumentFilterList,omitempty" min:"1"`
	Filters            []DocumentKeyValuesFilter `json:"Filters,omitempty" max:"6"`
	MaxResults         *int32                    `json:"MaxResults,omitempty" min:"1" max:"50"`
	NextToken          *string                   `json:"NextToken,omitempty"`
}

type ListDocumentsOutput struct {
	DocumentIdentifiers []DocumentIdentifier `json:"DocumentIdentifiers,omitempty"`
	NextToken           *string              `json:"NextToken,omitempty"`
}

// UpdateDocument creates a new version of a document.
func (c *Client) UpdateDocument(ctx context.Context, params *UpdateDocumentInput, optFns ...func(*core.Options)) (*UpdateDocumentOutput, error) {
	return invoke[UpdateDocumentOutput](ctx, c, "UpdateDocument", params, optFns)
}

type UpdateDocumentInput struct {
	Content         *string        `json:"Content,omitempty" required:"true" min:"1"`
	Name            *string        `json:"Name,omitempty" required:"true"`
	VersionName     *string        `json:"VersionName,omitempty"`
	DocumentVersion *string        `json:"DocumentVersion,omitempty"`
	DocumentFormat  DocumentFormat `json:"DocumentFormat,omitempty"`
	TargetType      *string        `json:"TargetType,omitempty" max:"200"`
}

type UpdateDocumentOutput struct {
	DocumentDescription *DocumentDescription `json:"DocumentDescription,omitempty"`
}
