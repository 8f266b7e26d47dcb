// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package awstest runs a small in-process AWS endpoint for tests. JSON 1.1
// operations are routed by X-Amz-Target and REST-JSON operations by method
// and path. Every request is recorded for later assertions.
package awstest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Region is the region every test config uses.
const Region = "us-east-1"

// Request is one recorded call.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Target   string
	Header   http.Header
	Body     []byte
}

// JSON decodes the recorded body into a generic map.
func (r Request) JSON(t testing.TB) map[string]any {
	t.Helper()
	m := map[string]any{}
	if len(r.Body) == 0 {
		return m
	}
	if err := json.Unmarshal(r.Body, &m); err != nil {
		t.Fatalf("request body is not JSON: %v\nbody: %s", err, r.Body)
	}
	return m
}

type fault struct {
	remaining int
	status    int
	code      string
}

// Server is a recording AWS endpoint.
type Server struct {
	*httptest.Server

	t      testing.TB
	router chi.Router

	mu       sync.Mutex
	requests []Request
	targets  map[string]http.HandlerFunc
	faults   map[string]*fault
}

// NewServer starts a Server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		t:       t,
		router:  chi.NewRouter(),
		targets: map[string]http.HandlerFunc{},
		faults:  map[string]*fault{},
	}

	s.router.Use(s.record)
	s.router.Use(s.injectFaults)
	s.router.Post("/", s.dispatchTarget)
	s.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, http.StatusNotFound, "NotFoundException", "no route for "+r.Method+" "+r.URL.Path)
	})

	s.Server = httptest.NewServer(s.router)
	t.Cleanup(s.Close)
	return s
}

// Config returns an aws.Config aimed at the server with static credentials
// and no retries.
func (s *Server) Config() aws.Config {
	return aws.Config{
		Region:       Region,
		Credentials:  credentials.NewStaticCredentialsProvider("AKIDAWSTEST", "awstest-secret", ""),
		BaseEndpoint: aws.String(s.URL),
		HTTPClient:   s.Client(),
		Retryer:      func() aws.Retryer { return aws.NopRetryer{} },
	}
}

// HandleJSON routes a JSON 1.1 target ("AmazonSSM.GetParameter") to h.
func (s *Server) HandleJSON(target string, h http.HandlerFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.targets[target] = h
}

// StubJSON answers target with status and body marshaled as JSON.
func (s *Server) StubJSON(target string, status int, body any) {
	s.HandleJSON(target, Respond(status, body))
}

// HandleREST routes method and a chi path pattern to h.
func (s *Server) HandleREST(method, pattern string, h http.HandlerFunc) {
	s.router.Method(method, pattern, h)
}

// StubREST answers method and pattern with status and body.
func (s *Server) StubREST(method, pattern string, status int, body any) {
	s.HandleREST(method, pattern, Respond(status, body))
}

// Fail makes the next n requests for key fail with status and code. The
// key is a JSON target or "METHOD /path".
func (s *Server) Fail(key string, n, status int, code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.faults[key] = &fault{remaining: n, status: status, code: code}
}

// Requests returns a copy of every recorded request.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, failing the test if there
// is none.
func (s *Server) LastRequest() Request {
	s.t.Helper()
	reqs := s.Requests()
	if len(reqs) == 0 {
		s.t.Fatalf("awstest: no requests recorded")
	}
	return reqs[len(reqs)-1]
}

// Respond returns a handler that writes body as JSON. A nil body writes no
// content and a []byte or string body is written verbatim.
func Respond(status int, body any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		var b []byte
		switch v := body.(type) {
		case nil:
		case []byte:
			b = v
		case string:
			b = []byte(v)
		default:
			var err error
			if b, err = json.Marshal(v); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
		}
		if len(b) > 0 {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = w.Write(b)
	}
}

// WriteError writes an AWS style error document.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.1")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"__type": code, "message": message})
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(body))

		path := r.URL.RawPath
		if path == "" {
			path = r.URL.Path
		}

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     path,
			RawQuery: r.URL.RawQuery,
			Target:   r.Header.Get("X-Amz-Target"),
			Header:   r.Header.Clone(),
			Body:     body,
		})
		s.mu.Unlock()

		w.Header().Set("X-Amzn-Requestid", uuid.NewString())
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFaults(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.Header.Get("X-Amz-Target")
		if key == "" {
			key = r.Method + " " + r.URL.Path
		}

		s.mu.Lock()
		f, ok := s.faults[key]
		if ok && f.remaining > 0 {
			f.remaining--
		} else {
			ok = false
		}
		s.mu.Unlock()

		if ok {
			WriteError(w, f.status, f.code, "injected fault")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) dispatchTarget(w http.ResponseWriter, r *http.Request) {
	target := r.Header.Get("X-Amz-Target")
	if !strings.Contains(r.Header.Get("Content-Type"), "x-amz-json") {
		WriteError(w, http.StatusBadRequest, "SerializationException",
			fmt.Sprintf("unexpected content type %q", r.Header.Get("Content-Type")))
		return
	}

	s.mu.Lock()
	h, ok := s.targets[target]
	s.mu.Unlock()

	if !ok {
		WriteError(w, http.StatusBadRequest, "UnknownOperationException", "no stub for "+target)
		return
	}
	h(w, r)
}
