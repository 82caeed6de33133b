// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocknet

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/esetonyehi/evolution-of-exchange/database"
	"github.com/esetonyehi/evolution-of-exchange/database/memdb"
)

func TestResultTableDefaults(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	table, err := NewResultTable(db, "0xabc")
	require.NoError(err)

	count, err := database.Count(db)
	require.NoError(err)
	require.Equal(4, count)

	tests := map[string]string{
		EvolutionOfExchange:       `(ok "Evolution of Exchange initialized")`,
		InitializeExchangeHistory: "(ok true)",
		PerformExchange:           "(ok true)",
		PlayEraTheme:              "(ok true)",
		"unmapped-function":       "(ok true)",
	}
	for functionName, expected := range tests {
		result, err := table.Get(functionName)
		require.NoError(err)
		require.Equal(&CallResult{
			Result:  expected,
			TxID:    "0xabc",
			Success: true,
		}, result)
	}
}

func TestResultTableOverride(t *testing.T) {
	require := require.New(t)

	table, err := NewResultTable(memdb.New(), DefaultTxID)
	require.NoError(err)

	override := &CallResult{
		Result:  "(err u100)",
		TxID:    "0xfeed",
		Success: true,
	}
	require.NoError(table.Set(PerformExchange, override))

	result, err := table.Get(PerformExchange)
	require.NoError(err)
	require.Equal(override, result)

	require.ErrorIs(table.Set("", override), errMissingFunctionName)
	require.ErrorIs(table.Set(PerformExchange, nil), errMissingResult)

	require.NoError(table.Reset())
	result, err = table.Get(PerformExchange)
	require.NoError(err)
	require.Equal("(ok true)", result.Result)
	require.Equal(DefaultTxID, result.TxID)
}

func TestResultTableClosed(t *testing.T) {
	require := require.New(t)

	table, err := NewResultTable(memdb.New(), DefaultTxID)
	require.NoError(err)
	require.NoError(table.Close())

	_, err = table.Get(PerformExchange)
	require.ErrorIs(err, database.ErrClosed)
	require.ErrorIs(table.Set(PerformExchange, table.Success("(ok true)")), database.ErrClosed)
	require.ErrorIs(table.Reset(), database.ErrClosed)
}

func TestResultTableCorruptEntry(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	table, err := NewResultTable(db, DefaultTxID)
	require.NoError(err)

	require.NoError(db.Put([]byte(PerformExchange), []byte("(ok true)")))
	_, err = table.Get(PerformExchange)
	require.ErrorContains(err, "couldn't unmarshal result")
}

func TestResultTableSetMarksSuccess(t *testing.T) {
	require := require.New(t)

	table, err := NewResultTable(memdb.New(), DefaultTxID)
	require.NoError(err)

	require.NoError(table.Set(PerformExchange, &CallResult{Result: "(ok false)"}))

	result, err := table.Get(PerformExchange)
	require.NoError(err)
	require.Equal(&CallResult{
		Result:  "(ok false)",
		TxID:    DefaultTxID,
		Success: true,
	}, result)
}

func TestResultTableConcurrentReset(t *testing.T) {
	require := require.New(t)

	table, err := NewResultTable(memdb.New(), DefaultTxID)
	require.NoError(err)

	var (
		wg       sync.WaitGroup
		done     = make(chan struct{})
		resetErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-done:
				return
			default:
			}
			if err := table.Reset(); err != nil {
				resetErr = err
				return
			}
		}
	}()

	expected := table.Success(`(ok "Evolution of Exchange initialized")`)
	for i := 0; i < 2000; i++ {
		result, err := table.Get(EvolutionOfExchange)
		require.NoError(err)
		require.Equal(expected, result)
	}
	close(done)
	wg.Wait()
	require.NoError(resetErr)
}
