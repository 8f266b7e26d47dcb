// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// marshalREST builds a REST-JSON request. Input fields are bound by their
// struct tags:
//
//	location:"uri"         replaces {locationName} in the path
//	location:"querystring" adds locationName=value, repeated for lists
//	location:"header"      sets the locationName header
//
// Every other exported field with a json tag other than "-" goes to the body.
// Op.Path may carry a static query, e.g. "/bots/{botname}/utterances?view=aggregation".
func marshalREST(op Operation, in any, endpoint string) (*wireRequest, error) {
	path, rawQuery, _ := strings.Cut(op.Path, "?")
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("static query for %s: %w", op.Name, err)
	}

	method := op.Method
	if method == "" {
		method = http.MethodGet
	}

	h := http.Header{}
	hasBody := false

	if v, ok := structValue(in); ok {
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fv := v.Field(i)
			name := f.Tag.Get("locationName")

			switch f.Tag.Get("location") {
			case "uri":
				if s, ok := scalarString(fv); ok {
					path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(s))
				}
			case "querystring":
				addQuery(query, name, fv)
			case "header":
				if s, ok := scalarString(fv); ok {
					h.Set(name, s)
				}
			default:
				if f.Tag.Get("json") != "-" && !isEmptyValue(fv) {
					hasBody = true
				}
			}
		}
	}

	if strings.Contains(path, "{") {
		return nil, fmt.Errorf("unbound path label in %q", path)
	}

	var body []byte
	if hasBody || method == http.MethodPut || method == http.MethodPost {
		body = []byte("{}")
		if !isNil(in) {
			if body, err = json.Marshal(in); err != nil {
				return nil, err
			}
		}
		h.Set("Content-Type", "application/json")
	}

	u := endpoint + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	return &wireRequest{Method: method, URL: u, Header: h, Body: body}, nil
}

func addQuery(q url.Values, name string, v reflect.Value) {
	v = reflect.Indirect(v)
	if !v.IsValid() {
		return
	}
	if v.Kind() == reflect.Slice {
		for i := 0; i < v.Len(); i++ {
			if s, ok := scalarString(v.Index(i)); ok {
				q.Add(name, s)
			}
		}
		return
	}
	if s, ok := scalarString(v); ok {
		q.Set(name, s)
	}
}

// scalarString renders a string, bool or integer field (or a pointer to
// one). It reports false for nil pointers and empty strings.
func scalarString(v reflect.Value) (string, bool) {
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "", false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String(), v.Len() > 0
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), true
	}
	return "", false
}

// structValue dereferences in down to a struct value.
func structValue(in any) (reflect.Value, bool) {
	if isNil(in) {
		return reflect.Value{}, false
	}
	v := reflect.Indirect(reflect.ValueOf(in))
	return v, v.Kind() == reflect.Struct
}

func isNil(in any) bool {
	if in == nil {
		return true
	}
	v := reflect.ValueOf(in)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Interface, reflect.Ptr:
		return v.IsNil()
	}
	return false
}
