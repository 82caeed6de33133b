// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"

	"github.com/esetonyehi/evolution-of-exchange/clarity"
	"github.com/esetonyehi/evolution-of-exchange/config"
	"github.com/esetonyehi/evolution-of-exchange/mocknet"
)

const (
	URIKey             = "uri"
	FunctionKey        = "function"
	ArgKey             = "arg"
	ContractAddressKey = "contract-address"
	ContractNameKey    = "contract-name"
	NetworkKey         = "network"
	SenderKey          = "sender"
)

var defaultURI = "http://" + net.JoinHostPort(config.DefaultHTTPHost, strconv.Itoa(config.DefaultHTTPPort))

func addURIFlag(flags *pflag.FlagSet) {
	flags.String(URIKey, defaultURI, "URI of the mocknet node")
}

func addCallFlags(flags *pflag.FlagSet) {
	addURIFlag(flags)
	flags.String(FunctionKey, "", "Contract function to call")
	flags.StringArray(ArgKey, nil, "Function argument in Clarity notation, e.g. u6 or 'ST1PQ... May be repeated")
}

func addReadOnlyFlags(flags *pflag.FlagSet) {
	addCallFlags(flags)
	flags.String(ContractAddressKey, mocknet.DefaultContractAddress, "Principal the contract is deployed by")
	flags.String(ContractNameKey, mocknet.ContractName, "Name of the contract")
	flags.String(NetworkKey, mocknet.Mocknet, "Network selector")
	flags.String(SenderKey, mocknet.DefaultContractAddress, "Principal sending the call")
}

type callConfig struct {
	URI          string
	FunctionName string
	FunctionArgs []clarity.Arg
}

func parseCallFlags(flags *pflag.FlagSet) (*callConfig, error) {
	uri, err := flags.GetString(URIKey)
	if err != nil {
		return nil, err
	}

	functionName, err := flags.GetString(FunctionKey)
	if err != nil {
		return nil, err
	}

	notations, err := flags.GetStringArray(ArgKey)
	if err != nil {
		return nil, err
	}

	args := make([]clarity.Arg, len(notations))
	for i, notation := range notations {
		args[i], err = clarity.ParseArg(notation)
		if err != nil {
			return nil, fmt.Errorf("--%s %d: %w", ArgKey, i, err)
		}
	}

	return &callConfig{
		URI:          uri,
		FunctionName: functionName,
		FunctionArgs: args,
	}, nil
}

func parseReadOnlyFlags(flags *pflag.FlagSet) (string, *mocknet.ReadOnlyCallOptions, error) {
	callConfig, err := parseCallFlags(flags)
	if err != nil {
		return "", nil, err
	}

	contractAddress, err := flags.GetString(ContractAddressKey)
	if err != nil {
		return "", nil, err
	}

	contractName, err := flags.GetString(ContractNameKey)
	if err != nil {
		return "", nil, err
	}

	network, err := flags.GetString(NetworkKey)
	if err != nil {
		return "", nil, err
	}

	sender, err := flags.GetString(SenderKey)
	if err != nil {
		return "", nil, err
	}

	return callConfig.URI, &mocknet.ReadOnlyCallOptions{
		ContractAddress: contractAddress,
		ContractName:    contractName,
		FunctionName:    callConfig.FunctionName,
		FunctionArgs:    callConfig.FunctionArgs,
		Network:         network,
		SenderAddress:   sender,
	}, nil
}
