// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"context"

	"github.com/esetonyehi/evolution-of-exchange/api/server"
	"github.com/esetonyehi/evolution-of-exchange/mocknet"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
	"github.com/esetonyehi/evolution-of-exchange/utils/rpc"
)

var _ mocknet.Client = (*Client)(nil)

// Client for interacting with a mocknet node over JSON-RPC
type Client struct {
	requester rpc.EndpointRequester
}

// NewClient returns a client of the node served at [uri], e.g.
// http://localhost:20443
func NewClient(uri string) *Client {
	return &Client{
		requester: rpc.NewEndpointRequester(uri + server.BaseURL + Endpoint),
	}
}

func (c *Client) CallReadOnlyFunction(ctx context.Context, options *mocknet.ReadOnlyCallOptions) (*mocknet.CallResult, error) {
	res := &mocknet.CallResult{}
	err := c.requester.SendRequest(ctx, ServiceName+".callReadOnlyFunction", options, res)
	return res, err
}

func (c *Client) BroadcastTransaction(ctx context.Context, tx *mocknet.Transaction) (*mocknet.CallResult, error) {
	res := &mocknet.CallResult{}
	err := c.requester.SendRequest(ctx, ServiceName+".broadcastTransaction", tx, res)
	return res, err
}

func (c *Client) SetResult(ctx context.Context, functionName string, result *mocknet.CallResult) error {
	return c.requester.SendRequest(ctx, ServiceName+".setResult", &SetResultArgs{
		FunctionName: functionName,
		Result:       *result,
	}, &EmptyReply{})
}

func (c *Client) ResetResults(ctx context.Context) error {
	return c.requester.SendRequest(ctx, ServiceName+".resetResults", struct{}{}, &EmptyReply{})
}

func (c *Client) GetEras(ctx context.Context) (*GetErasReply, error) {
	res := &GetErasReply{}
	err := c.requester.SendRequest(ctx, ServiceName+".getEras", struct{}{}, res)
	return res, err
}

// SetLoggerLevel changes the levels of [loggerName], or of every logger if it
// is empty. A nil level is left unchanged.
func (c *Client) SetLoggerLevel(
	ctx context.Context,
	loggerName string,
	logLevel *logging.Level,
	displayLevel *logging.Level,
) error {
	return c.requester.SendRequest(ctx, ServiceName+".setLoggerLevel", &SetLoggerLevelArgs{
		LoggerName:   loggerName,
		LogLevel:     logLevel,
		DisplayLevel: displayLevel,
	}, &EmptyReply{})
}
