// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocknet

import (
	"errors"
	"fmt"

	"github.com/esetonyehi/evolution-of-exchange/clarity"
)

var (
	errMissingFunctionName = errors.New("missing function name")
	errMissingPayload      = errors.New("missing payload")
	errMissingOptions      = errors.New("missing call options")
	ErrUnknownNetwork      = errors.New("unknown network")
)

// CallResult is the outcome of invoking a contract function. Result is
// rendered in Clarity's textual notation.
type CallResult struct {
	Result  string `json:"result"`
	TxID    string `json:"txId"`
	Success bool   `json:"success"`
}

// ReadOnlyCallOptions are the options of a read-only contract call.
type ReadOnlyCallOptions struct {
	ContractAddress string        `json:"contractAddress"`
	ContractName    string        `json:"contractName"`
	FunctionName    string        `json:"functionName"`
	FunctionArgs    []clarity.Arg `json:"functionArgs"`
	Network         string        `json:"network"`
	SenderAddress   string        `json:"senderAddress"`
}

func (o *ReadOnlyCallOptions) Verify() error {
	if o == nil {
		return errMissingOptions
	}
	if o.FunctionName == "" {
		return errMissingFunctionName
	}
	if o.ContractAddress != "" {
		if err := clarity.VerifyPrincipal(o.ContractAddress); err != nil {
			return fmt.Errorf("contract address: %w", err)
		}
	}
	if o.SenderAddress != "" {
		if err := clarity.VerifyPrincipal(o.SenderAddress); err != nil {
			return fmt.Errorf("sender address: %w", err)
		}
	}
	if o.Network != "" {
		if err := VerifyNetwork(o.Network); err != nil {
			return err
		}
	}
	return clarity.VerifyArgs(o.FunctionArgs)
}

// VerifyNetwork returns an error if [network] is not a known selector.
func VerifyNetwork(network string) error {
	switch network {
	case Mocknet, Testnet, Mainnet:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownNetwork, network)
	}
}

// Payload is the contract call carried by a transaction.
type Payload struct {
	FunctionName string        `json:"functionName"`
	FunctionArgs []clarity.Arg `json:"functionArgs"`
}

// Transaction is a state-changing contract call submitted for broadcast.
type Transaction struct {
	Payload *Payload `json:"payload"`
}

func (tx *Transaction) Verify() error {
	switch {
	case tx == nil || tx.Payload == nil:
		return errMissingPayload
	case tx.Payload.FunctionName == "":
		return errMissingFunctionName
	default:
		return clarity.VerifyArgs(tx.Payload.FunctionArgs)
	}
}

// NewTransaction returns a transaction calling [functionName] with [args].
func NewTransaction(functionName string, args ...clarity.Arg) *Transaction {
	return &Transaction{
		Payload: &Payload{
			FunctionName: functionName,
			FunctionArgs: args,
		},
	}
}
