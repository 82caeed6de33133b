// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"github.com/esetonyehi/evolution-of-exchange/exchange"
	"github.com/esetonyehi/evolution-of-exchange/mocknet"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
)

// EmptyReply indicates that an api doesn't have a response to return.
type EmptyReply struct{}

// SetResultArgs are the arguments for calling SetResult
type SetResultArgs struct {
	FunctionName string             `json:"functionName"`
	Result       mocknet.CallResult `json:"result"`
}

// GetErasReply is the response from calling GetEras
type GetErasReply struct {
	Eras                []exchange.EraRecord `json:"eras"`
	DefaultEra          uint64               `json:"defaultEra"`
	CurrentEraThreshold uint64               `json:"currentEraThreshold"`
}

// SetLoggerLevelArgs are the arguments for calling SetLoggerLevel. An empty
// LoggerName applies the levels to every logger.
type SetLoggerLevelArgs struct {
	LoggerName   string         `json:"loggerName"`
	LogLevel     *logging.Level `json:"logLevel"`
	DisplayLevel *logging.Level `json:"displayLevel"`
}
