// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocknet

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
)

// Broadcaster accepts state-changing calls and answers each with the result
// table's entry for the called function.
type Broadcaster struct {
	log     logging.Logger
	results *ResultTable
	metrics *metrics
}

func (b *Broadcaster) Broadcast(ctx context.Context, tx *Transaction) (*CallResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := tx.Verify(); err != nil {
		return nil, fmt.Errorf("invalid transaction: %w", err)
	}

	functionName := tx.Payload.FunctionName
	b.metrics.calls.WithLabelValues(broadcastKind, functionLabel(functionName)).Inc()

	result, err := b.results.Get(functionName)
	if err != nil {
		return nil, err
	}

	b.log.Debug("broadcast transaction",
		zap.String("function", functionName),
		zap.Stringers("args", tx.Payload.FunctionArgs),
		zap.String("result", result.Result),
	)
	return result, nil
}
