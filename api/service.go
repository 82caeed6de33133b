// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"errors"
	"net/http"

	"github.com/gorilla/rpc/v2"
	"go.uber.org/zap"

	"github.com/esetonyehi/evolution-of-exchange/mocknet"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
	"github.com/esetonyehi/evolution-of-exchange/utils/metric"

	cjson "github.com/esetonyehi/evolution-of-exchange/utils/json"
)

const (
	// ServiceName is the gorilla service name methods are addressed with.
	ServiceName = "mocknet"

	// Endpoint the service is routed on, relative to the server's base URL.
	Endpoint = "/mocknet"
)

var errNoLevel = errors.New("need to specify either displayLevel or logLevel")

// Service is the API service of the mocknet node
type Service struct {
	log        logging.Logger
	logFactory logging.Factory
	backend    mocknet.Backend
}

// NewService returns the JSON-RPC handler serving [backend]. The levels of the
// loggers made by [logFactory] can be changed through the service. If
// [interceptor] is non-nil it observes every request.
func NewService(
	log logging.Logger,
	logFactory logging.Factory,
	backend mocknet.Backend,
	interceptor metric.APIInterceptor,
) (http.Handler, error) {
	server := rpc.NewServer()
	codec := cjson.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	if interceptor != nil {
		server.RegisterInterceptFunc(interceptor.InterceptRequest)
		server.RegisterAfterFunc(interceptor.AfterRequest)
	}
	return server, server.RegisterService(&Service{
		log:        log,
		logFactory: logFactory,
		backend:    backend,
	}, ServiceName)
}

// CallReadOnlyFunction evaluates a read-only contract function
func (s *Service) CallReadOnlyFunction(r *http.Request, args *mocknet.ReadOnlyCallOptions, reply *mocknet.CallResult) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "callReadOnlyFunction"),
		zap.String("function", args.FunctionName),
	)

	result, err := s.backend.CallReadOnlyFunction(r.Context(), args)
	if err != nil {
		return err
	}
	*reply = *result
	return nil
}

// BroadcastTransaction submits a state-changing contract call
func (s *Service) BroadcastTransaction(r *http.Request, args *mocknet.Transaction, reply *mocknet.CallResult) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "broadcastTransaction"),
	)

	result, err := s.backend.BroadcastTransaction(r.Context(), args)
	if err != nil {
		return err
	}
	*reply = *result
	return nil
}

// SetResult overrides the canned result of a contract function
func (s *Service) SetResult(_ *http.Request, args *SetResultArgs, _ *EmptyReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "setResult"),
		zap.String("function", args.FunctionName),
	)

	result := args.Result
	return s.backend.SetResult(args.FunctionName, &result)
}

// ResetResults restores every canned result to its default
func (s *Service) ResetResults(_ *http.Request, _ *struct{}, _ *EmptyReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "resetResults"),
	)

	return s.backend.ResetResults()
}

// GetEras returns the era dataset served by the contract
func (s *Service) GetEras(_ *http.Request, _ *struct{}, reply *GetErasReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "getEras"),
	)

	registry := s.backend.Registry()
	reply.Eras = registry.Eras()
	reply.DefaultEra = registry.DefaultEra()
	reply.CurrentEraThreshold = registry.Threshold()
	return nil
}

// SetLoggerLevel sets the log level and/or the display level of the loggers
// named in [args], or of every logger if no name is given.
func (s *Service) SetLoggerLevel(_ *http.Request, args *SetLoggerLevelArgs, _ *EmptyReply) error {
	s.log.Debug("API called",
		zap.String("service", ServiceName),
		zap.String("method", "setLoggerLevel"),
		zap.String("loggerName", args.LoggerName),
	)

	if args.LogLevel == nil && args.DisplayLevel == nil {
		return errNoLevel
	}

	loggerNames := []string{args.LoggerName}
	if args.LoggerName == "" {
		loggerNames = s.logFactory.GetLoggerNames()
	}
	for _, name := range loggerNames {
		if args.LogLevel != nil {
			if err := s.logFactory.SetLogLevel(name, *args.LogLevel); err != nil {
				return err
			}
		}
		if args.DisplayLevel != nil {
			if err := s.logFactory.SetDisplayLevel(name, *args.DisplayLevel); err != nil {
				return err
			}
		}
	}
	return nil
}
