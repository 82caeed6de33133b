// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

var _ EndpointRequester = (*endpointRequester)(nil)

type EndpointRequester interface {
	SendRequest(ctx context.Context, method string, params interface{}, reply interface{}) error
}

type endpointRequester struct {
	uri    string
	client *http.Client
}

// NewEndpointRequester returns a requester for the JSON-RPC endpoint at [uri].
// Methods are addressed as "service.method".
func NewEndpointRequester(uri string) EndpointRequester {
	return &endpointRequester{
		uri:    uri,
		client: http.DefaultClient,
	}
}

func (e *endpointRequester) SendRequest(
	ctx context.Context,
	method string,
	params interface{},
	reply interface{},
) error {
	if _, err := url.ParseRequestURI(e.uri); err != nil {
		return fmt.Errorf("failed to parse uri %q: %w", e.uri, err)
	}
	return SendJSONRequest(ctx, e.client, e.uri, method, params, reply)
}
