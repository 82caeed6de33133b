// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocknet

const (
	ContractName = "evolution-of-exchange"

	// DefaultContractAddress is the deployer of the contract on the mocknet.
	DefaultContractAddress = "ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"

	// DefaultTxID is attached to every canned result.
	DefaultTxID = "0x1234567890abcdef"

	// Read-only functions
	GetExchangeInfo         = "get-exchange-info"
	IsExchangeMethodCurrent = "is-exchange-method-current"

	// Public functions
	EvolutionOfExchange       = "evolution-of-exchange"
	InitializeExchangeHistory = "initialize-exchange-history"
	PerformExchange           = "perform-exchange"
	PlayEraTheme              = "play-era-theme"
)

// Network selectors accepted by read-only calls.
const (
	Mocknet = "mocknet"
	Testnet = "testnet"
	Mainnet = "mainnet"
)
