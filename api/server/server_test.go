// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
)

func TestAddRoute(t *testing.T) {
	require := require.New(t)

	s := New(logging.NoLog{}, "127.0.0.1", 0, []string{"*"})
	require.NoError(s.AddRoute(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "pong")
	}), "/ping", io.Discard))

	req := httptest.NewRequest(http.MethodGet, BaseURL+"/ping", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(http.StatusOK, rec.Code)
	require.Equal("pong", rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, BaseURL+"/missing", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(http.StatusNotFound, rec.Code)
}

func TestAddRouteMalformed(t *testing.T) {
	s := New(logging.NoLog{}, "127.0.0.1", 0, nil)
	err := s.AddRoute(http.NotFoundHandler(), "not a path", io.Discard)
	require.ErrorIs(t, err, errMalformedEndpoint)
}

func TestMetricsRoute(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mocknet_test_total",
		Help: "test counter",
	})
	require.NoError(registry.Register(counter))
	counter.Inc()

	s := New(logging.NoLog{}, "127.0.0.1", 0, nil)
	require.NoError(s.AddMetricsRoute(registry, "/metrics", io.Discard))

	req := httptest.NewRequest(http.MethodGet, BaseURL+"/metrics", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	require.Equal(http.StatusOK, rec.Code)
	require.Contains(rec.Body.String(), "mocknet_test_total 1")
}

func TestDispatchAndShutdown(t *testing.T) {
	require := require.New(t)

	s := New(logging.NoLog{}, "127.0.0.1", 0, nil)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(err)

	done := make(chan error, 1)
	go func() {
		done <- s.DispatchListener(listener)
	}()

	require.NoError(s.Shutdown(context.Background()))
	require.NoError(<-done)
}
