// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/rpc/v2/json2"
)

// CleanlyCloseBody drains [body] before closing it so the connection can be
// reused.
func CleanlyCloseBody(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}

// SendJSONRequest issues a JSON-RPC 2.0 call of [method] to [uri] and decodes
// the result into [reply]. An error returned by the service is returned as a
// *json2.Error.
func SendJSONRequest(
	ctx context.Context,
	client *http.Client,
	uri string,
	method string,
	params interface{},
	reply interface{},
) error {
	body, err := json2.EncodeClientRequest(method, params)
	if err != nil {
		return fmt.Errorf("couldn't encode %s params: %w", method, err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("couldn't create %s request: %w", method, err)
	}
	request.Header.Set("Content-Type", "application/json")

	//nolint:bodyclose // body is closed via CleanlyCloseBody
	resp, err := client.Do(request)
	if err != nil {
		return fmt.Errorf("%s request failed: %w", method, err)
	}
	defer CleanlyCloseBody(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s received status code: %d", method, resp.StatusCode)
	}
	return json2.DecodeClientResponse(resp.Body, reply)
}
