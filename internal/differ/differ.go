// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// VolatileKeys differ between any two versions of the same resource and are
// dropped before comparing.
var VolatileKeys = []string{"version", "checksum", "createdDate", "lastUpdatedDate", "status", "failureReason"}

// Diff writes the delta between the JSON documents left and right to w, as
// an annotated rendering of left. Top level keys in ignore are removed from
// both documents first. It reports whether the documents differ.
func Diff(w io.Writer, left, right []byte, ignore []string, color bool) (bool, error) {
	if len(left) == 0 || len(right) == 0 {
		return false, fmt.Errorf("nothing to compare")
	}

	ldoc, err := prune(left, ignore)
	if err != nil {
		return false, fmt.Errorf("left document: %w", err)
	}
	rdoc, err := prune(right, ignore)
	if err != nil {
		return false, fmt.Errorf("right document: %w", err)
	}

	delta := gojsondiff.New().CompareObjects(ldoc, rdoc)
	log.Debugf("diff: modified=%v deltas=%d", delta.Modified(), len(delta.Deltas()))
	if !delta.Modified() {
		_, err := fmt.Fprintln(w, "The versions are identical.")
		return false, err
	}

	f := formatter.NewAsciiFormatter(ldoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: true,
		Coloring:       color,
	})
	out, err := f.Format(delta)
	if err != nil {
		return true, fmt.Errorf("format diff: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return true, err
}

func prune(doc []byte, ignore []string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, err
	}
	for _, k := range ignore {
		delete(m, k)
	}
	return m, nil
}

var versionRE = regexp.MustCompile(`^(\$LATEST|[0-9]+)$`)

// ParseVersionArgs validates the optional version pair of a diff command.
// It returns nil when no versions were given, so the caller can prompt.
func ParseVersionArgs(args []string) ([]string, error) {
	switch len(args) {
	case 0:
		return nil, nil
	case 2:
	default:
		return nil, fmt.Errorf("expected two versions, got %d", len(args))
	}
	for _, a := range args {
		if !versionRE.MatchString(a) {
			return nil, fmt.Errorf("invalid version %q: want a number or $LATEST", a)
		}
	}
	if args[0] == args[1] {
		return nil, fmt.Errorf("versions must differ: %s", args[0])
	}
	return args, nil
}
