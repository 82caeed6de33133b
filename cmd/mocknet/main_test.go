// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"bytes"
	"context"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/esetonyehi/evolution-of-exchange/api"
	"github.com/esetonyehi/evolution-of-exchange/api/server"
	"github.com/esetonyehi/evolution-of-exchange/database/memdb"
	"github.com/esetonyehi/evolution-of-exchange/exchange"
	"github.com/esetonyehi/evolution-of-exchange/mocknet"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
	"github.com/esetonyehi/evolution-of-exchange/version"
)

func newTestNode(t *testing.T) string {
	t.Helper()
	require := require.New(t)

	node, err := mocknet.New(logging.NoLog{}, prometheus.NewRegistry(), memdb.New(), mocknet.DefaultConfig())
	require.NoError(err)
	t.Cleanup(func() {
		require.NoError(node.Close())
	})

	logFactory := logging.NewFactory(logging.Config{
		LogLevel:     logging.Off,
		DisplayLevel: logging.Off,
	})
	t.Cleanup(logFactory.Close)

	handler, err := api.NewService(logging.NoLog{}, logFactory, node, nil)
	require.NoError(err)

	s := server.New(logging.NoLog{}, "127.0.0.1", 0, nil)
	require.NoError(s.AddRoute(handler, api.Endpoint, io.Discard))

	httpServer := httptest.NewServer(s.Handler())
	t.Cleanup(httpServer.Close)
	return httpServer.URL
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	c := newCommand()
	c.SetArgs(args)
	c.SetOut(out)
	c.SetErr(io.Discard)
	err := c.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCall(t *testing.T) {
	require := require.New(t)
	uri := newTestNode(t)

	out, err := execute(t, "call",
		"--"+URIKey, uri,
		"--"+FunctionKey, mocknet.GetExchangeInfo,
		"--"+ArgKey, "u6",
	)
	require.NoError(err)
	require.Contains(out, `(some {"era":6,"method":"Cryptocurrency"`)
	require.Contains(out, "txId: "+mocknet.DefaultTxID+" success: true")

	out, err = execute(t, "call",
		"--"+URIKey, uri,
		"--"+FunctionKey, mocknet.IsExchangeMethodCurrent,
		"--"+ArgKey, "u1",
	)
	require.NoError(err)
	require.Contains(out, "false\n")
}

func TestCallInvalidArg(t *testing.T) {
	_, err := execute(t, "call",
		"--"+URIKey, "http://127.0.0.1:1",
		"--"+FunctionKey, mocknet.GetExchangeInfo,
		"--"+ArgKey, "6",
	)
	require.ErrorContains(t, err, "unknown argument notation")
}

func TestBroadcast(t *testing.T) {
	require := require.New(t)
	uri := newTestNode(t)

	out, err := execute(t, "broadcast",
		"--"+URIKey, uri,
		"--"+FunctionKey, mocknet.PerformExchange,
		"--"+ArgKey, "u1",
		"--"+ArgKey, "u5",
		"--"+ArgKey, "'"+mocknet.DefaultContractAddress,
		"--"+ArgKey, "'ST2CY5V39NHDPWSXMW9QDT3HC3GD6Q6XX4CFRK9AG",
	)
	require.NoError(err)
	require.Equal("(ok true)\ntxId: "+mocknet.DefaultTxID+" success: true\n", out)
}

func TestEras(t *testing.T) {
	require := require.New(t)
	uri := newTestNode(t)

	out, err := execute(t, "eras", "--"+URIKey, uri)
	require.NoError(err)

	var decoded erasOutput
	require.NoError(yaml.Unmarshal([]byte(out), &decoded))
	require.Equal(erasOutput{
		DefaultEra:          exchange.BarterEra,
		CurrentEraThreshold: exchange.CurrentEraThreshold,
		Eras:                exchange.DefaultEras(),
	}, decoded)
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, version.String(version.GitCommit)+"\n", out)
}

func TestServeInvalidConfig(t *testing.T) {
	_, err := execute(t, "serve", "--network=devnet")
	require.ErrorIs(t, err, mocknet.ErrUnknownNetwork)
}

func TestServeHelp(t *testing.T) {
	_, err := execute(t, "serve", "--help")
	require.NoError(t, err)
}
