// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output turns a service response into what the user sees: rows
// are filtered, projected onto --attrs, transformed, sorted and rendered as
// a table, JSON or YAML.
package output
