// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// InvalidParam is one rejected input member.
type InvalidParam struct {
	Field  string
	Reason string
}

func (p InvalidParam) String() string {
	return p.Field + ": " + p.Reason
}

// ValidationError lists the input members that would have been rejected
// by the service. No request is sent when validation fails.
type ValidationError struct {
	Op     string
	Params []InvalidParam
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Params))
	for _, p := range e.Params {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("%s: invalid input: %s", e.Op, strings.Join(parts, "; "))
}

// Validate walks in and checks the struct tags the service shapes carry:
//
//	required:"true"  pointer, slice, map and string members must be set
//	min:"n" max:"n"  bounds on string/slice length or integer value
//
// Named string types with a Values() method are enums; set values must be
// one of the listed literals. A nil in is validated as an empty input.
func Validate(op string, in any) error {
	var params []InvalidParam

	if isNil(in) {
		t := reflect.TypeOf(in)
		if t == nil {
			return nil
		}
		for t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		if t.Kind() != reflect.Struct {
			return nil
		}
		validateValue(reflect.New(t).Elem(), "", &params)
	} else {
		validateValue(reflect.ValueOf(in), "", &params)
	}

	if len(params) == 0 {
		return nil
	}
	return &ValidationError{Op: op, Params: params}
}

func validateValue(v reflect.Value, path string, params *[]InvalidParam) {
	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if _, ok := v.Interface().(Timestamp); ok {
			return
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() || f.Anonymous {
				continue
			}
			validateField(v.Field(i), f, join(path, f.Name), params)
		}
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return
		}
		for i := 0; i < v.Len(); i++ {
			validateValue(v.Index(i), fmt.Sprintf("%s[%d]", path, i), params)
		}
	case reflect.Map:
		iter := v.MapRange()
		for iter.Next() {
			validateValue(iter.Value(), fmt.Sprintf("%s[%v]", path, iter.Key()), params)
		}
	case reflect.String:
		if v.Len() > 0 && !enumKnown(v) {
			*params = append(*params, InvalidParam{Field: path, Reason: fmt.Sprintf("unknown value %q", v.String())})
		}
	}
}

func validateField(fv reflect.Value, f reflect.StructField, path string, params *[]InvalidParam) {
	if f.Tag.Get("required") == "true" && unset(fv) {
		*params = append(*params, InvalidParam{Field: path, Reason: "required"})
		return
	}

	ev := fv
	if ev.Kind() == reflect.Ptr && !ev.IsNil() {
		ev = ev.Elem()
	}
	if min, ok := intTag(f, "min"); ok && !unset(fv) {
		if n, ok := measure(ev); ok && n < min {
			*params = append(*params, InvalidParam{Field: path, Reason: fmt.Sprintf("minimum %d", min)})
		}
	}
	if max, ok := intTag(f, "max"); ok && !unset(fv) {
		if n, ok := measure(ev); ok && n > max {
			*params = append(*params, InvalidParam{Field: path, Reason: fmt.Sprintf("maximum %d", max)})
		}
	}

	validateValue(fv, path, params)
}

// enumKnown reports true for plain strings and for enum values that are one
// of their type's literals.
func enumKnown(v reflect.Value) bool {
	m := v.MethodByName("Values")
	if !m.IsValid() || m.Type().NumIn() != 0 || m.Type().NumOut() != 1 {
		return true
	}
	values := m.Call(nil)[0]
	if values.Kind() != reflect.Slice {
		return true
	}
	for i := 0; i < values.Len(); i++ {
		if values.Index(i).String() == v.String() {
			return true
		}
	}
	return false
}

func unset(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	}
	return false
}

func measure(v reflect.Value) (int64, bool) {
	switch v.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return int64(v.Len()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	}
	return 0, false
}

func intTag(f reflect.StructField, key string) (int64, bool) {
	s, ok := f.Tag.Lookup(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
