// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocknet

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/esetonyehi/evolution-of-exchange/clarity"
	"github.com/esetonyehi/evolution-of-exchange/database"
)

var errMissingResult = errors.New("missing result")

// ResultTable holds the canned result of each contract function. Entries may
// be overridden between calls and restored with Reset.
type ResultTable struct {
	// lock is held for writing across a whole Reset so that readers never
	// observe a partially seeded table.
	lock     sync.RWMutex
	db       database.Database
	txID     string
	defaults map[string]string
}

// NewResultTable seeds [db] with the contract's default results. Every result
// carries [txID].
func NewResultTable(db database.Database, txID string) (*ResultTable, error) {
	t := &ResultTable{
		db:   db,
		txID: txID,
		defaults: map[string]string{
			EvolutionOfExchange:       clarity.Ok(clarity.String("Evolution of Exchange initialized")),
			InitializeExchangeHistory: clarity.Ok(clarity.Bool(true)),
			PerformExchange:           clarity.Ok(clarity.Bool(true)),
			PlayEraTheme:              clarity.Ok(clarity.Bool(true)),
		},
	}
	return t, t.Reset()
}

// Success returns a successful result carrying the table's transaction ID.
func (t *ResultTable) Success(result string) *CallResult {
	return &CallResult{
		Result:  result,
		TxID:    t.txID,
		Success: true,
	}
}

// Get returns the result of [functionName], or (ok true) if it has none.
func (t *ResultTable) Get(functionName string) (*CallResult, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()

	return database.WithDefault(
		getResult,
		t.db,
		[]byte(functionName),
		t.Success(clarity.Ok(clarity.Bool(true))),
	)
}

// Set overrides the result of [functionName]. Every mocked call succeeds, so
// the stored result is marked successful and carries the table's transaction
// ID unless it names its own.
func (t *ResultTable) Set(functionName string, result *CallResult) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	return t.set(functionName, result)
}

func (t *ResultTable) set(functionName string, result *CallResult) error {
	if functionName == "" {
		return errMissingFunctionName
	}
	if result == nil {
		return errMissingResult
	}
	stored := *result
	stored.Success = true
	if stored.TxID == "" {
		stored.TxID = t.txID
	}
	b, err := json.Marshal(&stored)
	if err != nil {
		return fmt.Errorf("couldn't marshal result of %q: %w", functionName, err)
	}
	return t.db.Put([]byte(functionName), b)
}

// Reset drops every override and restores the default results.
func (t *ResultTable) Reset() error {
	t.lock.Lock()
	defer t.lock.Unlock()

	if err := database.Clear(t.db); err != nil {
		return fmt.Errorf("couldn't clear results: %w", err)
	}
	for functionName, result := range t.defaults {
		if err := t.set(functionName, t.Success(result)); err != nil {
			return err
		}
	}
	return nil
}

func (t *ResultTable) Close() error {
	return t.db.Close()
}

func getResult(db database.KeyValueReader, key []byte) (*CallResult, error) {
	b, err := db.Get(key)
	if err != nil {
		return nil, err
	}
	result := &CallResult{}
	if err := json.Unmarshal(b, result); err != nil {
		return nil, fmt.Errorf("couldn't unmarshal result of %q: %w", key, err)
	}
	return result, nil
}
