// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package core

import "fmt"

// EnumError reports a string that is not one of an enum's literals.
type EnumError struct {
	Enum  string
	Value string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("%q is not a valid %s", e.Value, e.Enum)
}

// ParseEnum maps s onto one of values, failing with an *EnumError when it
// matches none of them. Matching is exact.
func ParseEnum[T ~string](enum string, s string, values []T) (T, error) {
	for _, v := range values {
		if string(v) == s {
			return v, nil
		}
	}
	var zero T
	return zero, &EnumError{Enum: enum, Value: s}
}

// KnownEnum reports whether v is one of values.
func KnownEnum[T ~string](v T, values []T) bool {
	for _, known := range values {
		if v == known {
			return true
		}
	}
	return false
}
