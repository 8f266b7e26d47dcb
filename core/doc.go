// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package core holds the dispatch glue shared by the service clients under
// service/. A service client describes itself with a ServiceInfo and an
// Operation per API call; core turns the typed input into an HTTP request
// (AWS JSON 1.1 or REST-JSON), signs it with the aws-sdk-go-v2 SigV4 signer,
// sends it through the configured aws.HTTPClient and decodes either the JSON
// result or a typed service error.
//
// Credential resolution, signing, retry policy and the HTTP transport all
// come from aws-sdk-go-v2. Nothing in this package re-implements them.
package core
