// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ compares two versions of a Lex resource and renders the
// delta, with an interactive picker for choosing the versions.
package differ
