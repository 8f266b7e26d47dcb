// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package attrs parses --attrs specs and applies their value transforms.
//
// A spec is a comma separated list of key[:title[:transform]] entries. The
// key is a gjson path into one listed item (DeliveryStreamName,
// Parameter.Value, intents.0.intentName). A leading ! keeps the key for
// filtering and sorting but hides it, and * with a transform applies that
// transform to every column.
//
// Transforms: t local time, T time ago, l lower case, u upper case, N
// truncate to N runes, -N elide the middle down to N runes.
package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tfctl/awsctl/internal/log"
)

// Attr is one output column.
type Attr struct {
	// Key is the gjson path extracted from each item.
	Key string `yaml:"key" json:"Key"`
	// Include is false for keys only used to filter or sort.
	Include bool `yaml:"include" json:"Include"`
	// OutputKey is the column title and the key in json/yaml output.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// TransformSpec is applied to the extracted value.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

var lengthRE = regexp.MustCompile(`-?\d+`)

// Transform applies the attribute's transform spec to value. Maps and
// slices are returned untouched.
func (a *Attr) Transform(value any) any {
	if a.TransformSpec == "" {
		return value
	}

	var result string
	switch v := value.(type) {
	case string:
		result = v
	case float64:
		// Service timestamps are epoch seconds.
		if !strings.ContainsAny(a.TransformSpec, "tT") {
			return value
		}
		sec, frac := math.Modf(v)
		return formatTime(time.Unix(int64(sec), int64(frac*1e9)), a.TransformSpec)
	default:
		log.Tracef("untransformed value: value=%v", value)
		return value
	}

	if strings.ContainsAny(a.TransformSpec, "tT") {
		if t, err := time.Parse(time.RFC3339, result); err == nil {
			result = formatTime(t, a.TransformSpec)
		}
	}

	// The last case letter wins so that '*::U,name::l' lowers name.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")
	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Likewise the last length.
	if match := lengthRE.FindAllString(a.TransformSpec, -1); len(match) != 0 {
		l, _ := strconv.Atoi(match[len(match)-1])
		result = clip(result, l)
	}

	return result
}

func formatTime(t time.Time, spec string) string {
	local := t.In(time.Local)
	if strings.Contains(spec, "T") {
		return humanize.Time(local)
	}
	return local.Format("2006-01-02T15:04:05MST")
}

func clip(s string, l int) string {
	r := []rune(s)
	abs := l
	if abs < 0 {
		abs = -abs
	}
	if len(r) <= abs {
		return s
	}
	if l >= 0 {
		return string(r[:l])
	}
	side := abs/2 - 1
	if side < 1 {
		return string(r[:abs])
	}
	return string(r[:side]) + ".." + string(r[len(r)-side:])
}

// AttrList is the parsed --attrs flag.
type AttrList []Attr

// Set parses value and merges it into the list. Entries for keys already
// present (command defaults, or a repeat) update them in place.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

specloop:
	for _, spec := range strings.Split(value, ",") {
		fields := strings.Split(spec, ":")
		if len(fields) > 3 {
			return fmt.Errorf("invalid attr spec %q: want key[:title[:transform]]", spec)
		}

		attr := Attr{Include: true, Key: strings.TrimSpace(fields[0])}
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		attr.Key = strings.TrimPrefix(attr.Key, ".")
		if attr.Key == "" {
			return fmt.Errorf("invalid attr spec %q: empty key", spec)
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		if len(fields) > 1 && strings.TrimSpace(fields[1]) != "" {
			attr.OutputKey = strings.TrimSpace(fields[1])
		} else {
			segments := strings.Split(attr.Key, ".")
			attr.OutputKey = segments[len(segments)-1]
		}
		if len(fields) > 2 {
			attr.TransformSpec = strings.TrimSpace(fields[2])
		}
		log.Tracef("attr parsed: key=%s out=%s spec=%s include=%v", attr.Key, attr.OutputKey, attr.TransformSpec, attr.Include)

		for i := range *a {
			if (*a)[i].Key == attr.Key || (*a)[i].OutputKey == attr.Key {
				(*a)[i].Include = attr.Include
				if len(fields) > 1 {
					(*a)[i].OutputKey = attr.OutputKey
				}
				(*a)[i].TransformSpec = attr.TransformSpec
				continue specloop
			}
		}
		*a = append(*a, attr)
	}

	return nil
}

// SetGlobalTransformSpec prepends the transform of a * entry to every
// attr's own transform.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""
	for _, attr := range *a {
		if attr.Key == "*" {
			spec = attr.TransformSpec
			break
		}
	}
	if spec == "" {
		return nil
	}
	log.Debugf("global spec: spec=%s", spec)

	for i := range *a {
		if (*a)[i].Key == "*" {
			continue
		}
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
	return nil
}

// Included returns the attrs that are rendered as columns.
func (a AttrList) Included() AttrList {
	var out AttrList
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// String returns the list in --attrs syntax.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		key := attr.Key
		if !attr.Include && key != "*" {
			key = "!" + key
		}
		result = append(result, fmt.Sprintf("%s:%s:%s", key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }
