// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocknet

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/esetonyehi/evolution-of-exchange/database"
	"github.com/esetonyehi/evolution-of-exchange/exchange"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
)

var _ Backend = (*Node)(nil)

//go:generate go run go.uber.org/mock/mockgen -package=${GOPACKAGE}mock -destination=${GOPACKAGE}mock/backend.go -mock_names=Backend=Backend . Backend

// Client is the contract-call surface of the mocked SDK.
type Client interface {
	// CallReadOnlyFunction evaluates a read-only function.
	CallReadOnlyFunction(ctx context.Context, options *ReadOnlyCallOptions) (*CallResult, error)
	// BroadcastTransaction submits a state-changing call.
	BroadcastTransaction(ctx context.Context, tx *Transaction) (*CallResult, error)
}

// Backend is a Client whose canned results can be controlled.
type Backend interface {
	Client

	SetResult(functionName string, result *CallResult) error
	ResetResults() error
	Registry() *exchange.Registry
}

type Config struct {
	// Namespace of the node's metrics
	Namespace string
	// ContractAddress is the principal that deployed the contract. Read-only
	// calls naming another address are rejected.
	ContractAddress string
	ContractName    string
	TxID            string
	Registry        *exchange.Registry
}

// DefaultConfig serves the default era dataset under the contract's name.
func DefaultConfig() Config {
	return Config{
		Namespace:       "mocknet",
		ContractAddress: DefaultContractAddress,
		ContractName:    ContractName,
		TxID:            DefaultTxID,
		Registry:        exchange.NewDefaultRegistry(),
	}
}

// Node is an in-process stand-in for a node hosting the contract.
type Node struct {
	log         logging.Logger
	results     *ResultTable
	handler     *ReadOnlyHandler
	broadcaster *Broadcaster
	metrics     *metrics
}

// New returns a node whose result table is stored in [db]. The node owns
// [db] and closes it on Close.
func New(
	log logging.Logger,
	registerer prometheus.Registerer,
	db database.Database,
	config Config,
) (*Node, error) {
	if config.Registry == nil {
		config.Registry = exchange.NewDefaultRegistry()
	}
	if config.ContractAddress == "" {
		config.ContractAddress = DefaultContractAddress
	}

	m, err := newMetrics(config.Namespace, registerer)
	if err != nil {
		return nil, fmt.Errorf("couldn't register metrics: %w", err)
	}

	results, err := NewResultTable(db, config.TxID)
	if err != nil {
		return nil, err
	}

	log.Info("initialized mocknet node",
		zap.String("contract", config.ContractAddress+"."+config.ContractName),
		zap.Int("eras", len(config.Registry.Eras())),
		zap.Uint64("currentEraThreshold", config.Registry.Threshold()),
	)
	return &Node{
		log:     log,
		results: results,
		handler: &ReadOnlyHandler{
			log:             log,
			contractAddress: config.ContractAddress,
			contractName:    config.ContractName,
			registry:        config.Registry,
			results:         results,
			metrics:         m,
		},
		broadcaster: &Broadcaster{
			log:     log,
			results: results,
			metrics: m,
		},
		metrics: m,
	}, nil
}

func (n *Node) CallReadOnlyFunction(ctx context.Context, options *ReadOnlyCallOptions) (*CallResult, error) {
	return n.handler.Call(ctx, options)
}

func (n *Node) BroadcastTransaction(ctx context.Context, tx *Transaction) (*CallResult, error) {
	return n.broadcaster.Broadcast(ctx, tx)
}

// SetResult overrides the canned result of [functionName] until the next
// ResetResults. The override is always successful and carries the node's
// transaction ID unless [result] names one.
func (n *Node) SetResult(functionName string, result *CallResult) error {
	if err := n.results.Set(functionName, result); err != nil {
		return err
	}
	n.metrics.overrides.WithLabelValues(functionLabel(functionName)).Inc()
	n.log.Debug("overrode result",
		zap.String("function", functionName),
		zap.String("result", result.Result),
	)
	return nil
}

// SetSuccess overrides the canned result of [functionName] with a successful
// result rendering [result].
func (n *Node) SetSuccess(functionName string, result string) error {
	return n.SetResult(functionName, n.results.Success(result))
}

// ResetResults restores every canned result to its default.
func (n *Node) ResetResults() error {
	n.log.Debug("resetting results")
	return n.results.Reset()
}

func (n *Node) Registry() *exchange.Registry {
	return n.handler.registry
}

func (n *Node) Close() error {
	return n.results.Close()
}
