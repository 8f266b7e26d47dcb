// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import "strings"

// chopPrefix replaces the leading sep-delimited segments that every string
// in column key shares with "..". At least two common segments are needed,
// and at least two segments always remain.
func chopPrefix(dataset []map[string]any, key, sep string) {
	var (
		idx      []int
		segments [][]string
	)
	for i, row := range dataset {
		if s, ok := row[key].(string); ok {
			idx = append(idx, i)
			segments = append(segments, strings.Split(s, sep))
		}
	}
	if len(segments) == 0 {
		return
	}

	commonCount := 0
	for segIdx := 0; segIdx < len(segments[0]); segIdx++ {
		expected := segments[0][segIdx]
		allMatch := true
		for _, segs := range segments {
			if segIdx >= len(segs) || segs[segIdx] != expected {
				allMatch = false
				break
			}
		}
		if !allMatch {
			break
		}
		commonCount++
	}

	minSegments := len(segments[0])
	for _, segs := range segments {
		minSegments = min(minSegments, len(segs))
	}
	maxChop := minSegments - 2
	commonCount = min(commonCount, maxChop)
	if commonCount < 2 {
		return
	}

	prefix := strings.Join(segments[0][:commonCount], sep) + sep
	for n, i := range idx {
		value := strings.Join(segments[n], sep)
		if strings.HasPrefix(value, prefix) {
			dataset[i][key] = ".." + value[len(prefix):]
		}
	}
}
