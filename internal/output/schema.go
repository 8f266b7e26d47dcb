// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"
	"strings"

	"github.com/apex/log"
)

// maxSchemaDepth bounds how far nested shapes are expanded.
const maxSchemaDepth = 2

var jsonMarshaler = reflect.TypeOf((*json.Marshaler)(nil)).Elem()

// DumpSchema writes the attr keys available on items of typ, one per line,
// sorted. Nested shapes are shown as dotted paths.
func DumpSchema(typ reflect.Type, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w,
		`Keys available to --attrs, --filter and --sort. Nested members are dotted
paths; lists of shapes take an [n] index. Use --output=raw for the full
document.`)
	fmt.Fprintln(w, "")

	paths := SchemaPaths(typ)
	if len(paths) == 0 {
		log.Debugf("no keys found for type: %s", typ)
		return
	}
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

// SchemaPaths returns the sorted json paths of typ.
func SchemaPaths(typ reflect.Type) []string {
	paths := schemaWalker("", typ, 0)
	sort.Strings(paths)
	return paths
}

func schemaWalker(holder string, typ reflect.Type, depth int) []string {
	for typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	var paths []string
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous {
			paths = append(paths, schemaWalker(holder, field.Type, depth)...)
			continue
		}
		if !field.IsExported() {
			continue
		}

		name := strings.Split(field.Tag.Get("json"), ",")[0]
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		if holder != "" {
			name = holder + "." + name
		}

		ft := field.Type
		suffix := ""
		if ft.Kind() == reflect.Slice && ft.Elem().Kind() != reflect.Uint8 {
			ft = ft.Elem()
			suffix = "[n]"
		}
		for ft.Kind() == reflect.Ptr {
			ft = ft.Elem()
		}

		if ft.Kind() == reflect.Struct && !reflect.PointerTo(ft).Implements(jsonMarshaler) && depth < maxSchemaDepth {
			paths = append(paths, schemaWalker(name+suffix, ft, depth+1)...)
			continue
		}
		paths = append(paths, name)
	}
	return paths
}
