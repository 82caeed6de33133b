// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendRequest(t *testing.T) {
	require := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request struct {
			ID     json.RawMessage `json:"id"`
			Method string          `json:"method"`
		}
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"jsonrpc": "2.0",
			"id":      request.ID,
			"result":  request.Method,
		})
	}))
	defer server.Close()

	var reply string
	requester := NewEndpointRequester(server.URL)
	require.NoError(requester.SendRequest(context.Background(), "mocknet.getEras", struct{}{}, &reply))
	require.Equal("mocknet.getEras", reply)
}

func TestSendRequestStatusCode(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	var reply string
	requester := NewEndpointRequester(server.URL)
	err := requester.SendRequest(context.Background(), "mocknet.getEras", struct{}{}, &reply)
	require.ErrorContains(t, err, "status code: 404")
}

func TestSendRequestMalformedURI(t *testing.T) {
	var reply string
	requester := NewEndpointRequester("not a uri")
	err := requester.SendRequest(context.Background(), "mocknet.getEras", struct{}{}, &reply)
	require.ErrorContains(t, err, "failed to parse uri")
}
