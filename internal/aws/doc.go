// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package aws loads the shared AWS configuration that every awsctl client
// is built from, and holds the small S3 helpers used to inspect Firehose
// delivery buckets.
package aws
