// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/esetonyehi/evolution-of-exchange/app"
	"github.com/esetonyehi/evolution-of-exchange/config"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serves the contract over JSON-RPC until interrupted",
		// Flags are parsed by the config package so they can be layered with
		// the environment and the config file.
		DisableFlagParsing: true,
		RunE:               serveFunc,
	}
}

func serveFunc(c *cobra.Command, args []string) error {
	fs := config.BuildFlagSet()
	fs.SetOutput(c.ErrOrStderr())
	v, err := config.BuildViper(fs, args)
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	nodeConfig, err := config.GetConfig(v)
	if err != nil {
		return fmt.Errorf("couldn't load config: %w", err)
	}

	a, err := app.New(nodeConfig)
	if err != nil {
		return err
	}
	if exitCode := app.Run(c.Context(), a); exitCode != 0 {
		return fmt.Errorf("mocknet exited with code %d", exitCode)
	}
	return nil
}
