// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/esetonyehi/evolution-of-exchange/api"
	"github.com/esetonyehi/evolution-of-exchange/exchange"
)

type erasOutput struct {
	DefaultEra          uint64               `yaml:"default-era"`
	CurrentEraThreshold uint64               `yaml:"current-era-threshold"`
	Eras                []exchange.EraRecord `yaml:"eras"`
}

func erasCommand() *cobra.Command {
	c := &cobra.Command{
		Use:   "eras",
		Short: "Prints the era dataset served by a node as YAML",
		Args:  cobra.NoArgs,
		RunE:  erasFunc,
	}
	addURIFlag(c.Flags())
	return c
}

func erasFunc(c *cobra.Command, _ []string) error {
	uri, err := c.Flags().GetString(URIKey)
	if err != nil {
		return err
	}

	client := api.NewClient(uri)
	reply, err := client.GetEras(c.Context())
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(c.OutOrStdout())
	encoder.SetIndent(2)
	if err := encoder.Encode(erasOutput{
		DefaultEra:          reply.DefaultEra,
		CurrentEraThreshold: reply.CurrentEraThreshold,
		Eras:                reply.Eras,
	}); err != nil {
		return err
	}
	return encoder.Close()
}
