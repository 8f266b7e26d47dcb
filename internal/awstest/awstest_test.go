// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package awstest

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func post(t *testing.T, s *Server, target, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, s.URL+"/", strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-amz-json-1.1")
	req.Header.Set("X-Amz-Target", target)
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestServerRoutesTargets(t *testing.T) {
	s := NewServer(t)
	s.StubJSON("Svc.Op", http.StatusOK, map[string]string{"ok": "yes"})

	resp := post(t, s, "Svc.Op", `{"a":1}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Amzn-Requestid"))
	b, _ := io.ReadAll(resp.Body)
	assert.JSONEq(t, `{"ok":"yes"}`, string(b))

	last := s.LastRequest()
	assert.Equal(t, "Svc.Op", last.Target)
	assert.Equal(t, float64(1), last.JSON(t)["a"])
}

func TestServerUnknownTarget(t *testing.T) {
	s := NewServer(t)
	resp := post(t, s, "Svc.Missing", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), "UnknownOperationException")
}

func TestServerFaults(t *testing.T) {
	s := NewServer(t)
	s.StubJSON("Svc.Op", http.StatusOK, nil)
	s.Fail("Svc.Op", 1, http.StatusServiceUnavailable, "ServiceUnavailableException")

	assert.Equal(t, http.StatusServiceUnavailable, post(t, s, "Svc.Op", `{}`).StatusCode)
	assert.Equal(t, http.StatusOK, post(t, s, "Svc.Op", `{}`).StatusCode)
	assert.Len(t, s.Requests(), 2)
}

func TestServerREST(t *testing.T) {
	s := NewServer(t)
	s.StubREST(http.MethodGet, "/things/{name}", http.StatusOK, `{"name":"x"}`)

	resp, err := s.Client().Get(s.URL + "/things/x?limit=2")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	last := s.LastRequest()
	assert.Equal(t, "/things/x", last.Path)
	assert.Equal(t, "limit=2", last.RawQuery)

	resp2, err := s.Client().Get(s.URL + "/nothing")
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp2.StatusCode)
}

func TestConfig(t *testing.T) {
	s := NewServer(t)
	cfg := s.Config()
	assert.Equal(t, Region, cfg.Region)
	require.NotNil(t, cfg.BaseEndpoint)
	assert.Equal(t, s.URL, *cfg.BaseEndpoint)
	assert.Equal(t, 1, cfg.Retryer().MaxAttempts())
}
