// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocknet

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/esetonyehi/evolution-of-exchange/clarity"
	"github.com/esetonyehi/evolution-of-exchange/exchange"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
)

var (
	errUnknownContract = errors.New("unknown contract")
	errWrongArgCount   = errors.New("wrong number of arguments")
)

// ReadOnlyHandler answers read-only calls. Era queries are served from the
// registry; every other function is served from the result table.
type ReadOnlyHandler struct {
	log             logging.Logger
	contractAddress string
	contractName    string
	registry        *exchange.Registry
	results         *ResultTable
	metrics         *metrics
}

func (h *ReadOnlyHandler) Call(ctx context.Context, options *ReadOnlyCallOptions) (*CallResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := options.Verify(); err != nil {
		return nil, fmt.Errorf("invalid read-only call: %w", err)
	}
	if options.ContractName != "" && options.ContractName != h.contractName {
		return nil, fmt.Errorf("%w: %q", errUnknownContract, options.ContractName)
	}
	if options.ContractAddress != "" && options.ContractAddress != h.contractAddress {
		return nil, fmt.Errorf("%w: %s.%s", errUnknownContract, options.ContractAddress, options.ContractName)
	}

	h.metrics.calls.WithLabelValues(readOnlyKind, functionLabel(options.FunctionName)).Inc()
	h.log.Debug("read-only call",
		zap.String("function", options.FunctionName),
		zap.Stringers("args", options.FunctionArgs),
		zap.String("sender", options.SenderAddress),
	)

	switch options.FunctionName {
	case GetExchangeInfo:
		return h.getExchangeInfo(options.FunctionArgs)
	case IsExchangeMethodCurrent:
		return h.isExchangeMethodCurrent(options.FunctionArgs)
	default:
		return h.results.Get(options.FunctionName)
	}
}

func (h *ReadOnlyHandler) getExchangeInfo(args []clarity.Arg) (*CallResult, error) {
	era, err := eraArg(GetExchangeInfo, args)
	if err != nil {
		return nil, err
	}

	record, usedDefault := h.registry.GetOrDefault(era)
	if usedDefault {
		h.metrics.fallbacks.Inc()
		h.log.Debug("unknown era, using default",
			zap.Uint64("era", era),
			zap.Uint64("defaultEra", record.Era),
		)
	}

	encoded, err := record.JSON()
	if err != nil {
		return nil, err
	}
	return h.results.Success(clarity.Some(encoded)), nil
}

func (h *ReadOnlyHandler) isExchangeMethodCurrent(args []clarity.Arg) (*CallResult, error) {
	era, err := eraArg(IsExchangeMethodCurrent, args)
	if err != nil {
		return nil, err
	}
	return h.results.Success(clarity.Bool(h.registry.IsCurrent(era))), nil
}

// eraArg returns the era of a function that takes a single uint argument.
func eraArg(functionName string, args []clarity.Arg) (uint64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s expects 1 but got %d", errWrongArgCount, functionName, len(args))
	}
	era, err := args[0].Uint()
	if err != nil {
		return 0, fmt.Errorf("%s era: %w", functionName, err)
	}
	return era, nil
}
