// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cobra.EnablePrefixMatching = true
}

func main() {
	cmd := newCommand()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "mocknet failed: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	c := &cobra.Command{
		Use:          "mocknet",
		Short:        "Mock node serving the evolution-of-exchange contract",
		SilenceUsage: true,
	}
	c.AddCommand(
		serveCommand(),
		callCommand(),
		broadcastCommand(),
		erasCommand(),
		versionCommand(),
	)
	return c
}
