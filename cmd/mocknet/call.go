// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/esetonyehi/evolution-of-exchange/api"
	"github.com/esetonyehi/evolution-of-exchange/mocknet"
)

func callCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "call",
		Short: "Calls a read-only contract function",
		Args:  cobra.NoArgs,
		RunE:  callFunc,
	}
	addReadOnlyFlags(c.Flags())
	return c
}

func callFunc(c *cobra.Command, _ []string) error {
	uri, options, err := parseReadOnlyFlags(c.Flags())
	if err != nil {
		return err
	}

	client := api.NewClient(uri)
	result, err := client.CallReadOnlyFunction(c.Context(), options)
	if err != nil {
		return err
	}
	return printResult(c.OutOrStdout(), result)
}

func broadcastCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "broadcast",
		Short: "Broadcasts a state-changing contract call",
		Args:  cobra.NoArgs,
		RunE:  broadcastFunc,
	}
	addCallFlags(c.Flags())
	return c
}

func broadcastFunc(c *cobra.Command, _ []string) error {
	config, err := parseCallFlags(c.Flags())
	if err != nil {
		return err
	}

	client := api.NewClient(config.URI)
	result, err := client.BroadcastTransaction(
		c.Context(),
		mocknet.NewTransaction(config.FunctionName, config.FunctionArgs...),
	)
	if err != nil {
		return err
	}
	return printResult(c.OutOrStdout(), result)
}

func printResult(w io.Writer, result *mocknet.CallResult) error {
	_, err := fmt.Fprintf(w, "%s\ntxId: %s success: %t\n", result.Result, result.TxID, result.Success)
	return err
}
