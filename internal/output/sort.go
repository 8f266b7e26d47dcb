// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"sort"
	"strings"
)

// SortDataset orders rows by spec, a comma separated list of column titles.
// A leading - sorts descending and a leading ! compares case sensitively.
// Numbers compare numerically; everything else as strings.
func SortDataset(rows []map[string]any, spec string) {
	if spec == "" {
		return
	}

	type key struct {
		name          string
		ascending     bool
		caseSensitive bool
	}
	var keys []key
	for _, field := range strings.Split(spec, ",") {
		k := key{ascending: true}
		field = strings.TrimSpace(field)
		if strings.HasPrefix(field, "-") {
			field = field[1:]
			k.ascending = false
		}
		if strings.HasPrefix(field, "!") {
			field = field[1:]
			k.caseSensitive = true
		}
		if field == "" {
			continue
		}
		k.name = field
		keys = append(keys, k)
	}

	sort.SliceStable(rows, func(one, two int) bool {
		for _, k := range keys {
			a, b := rows[one][k.name], rows[two][k.name]

			an, aok := a.(float64)
			bn, bok := b.(float64)
			if aok && bok {
				if an == bn {
					continue
				}
				return (an < bn) == k.ascending
			}

			as, bs := InterfaceToString(a), InterfaceToString(b)
			if !k.caseSensitive {
				as, bs = strings.ToLower(as), strings.ToLower(bs)
			}
			if as == bs {
				continue
			}
			return (as < bs) == k.ascending
		}
		return false
	})
}
