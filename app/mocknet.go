// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/esetonyehi/evolution-of-exchange/api"
	"github.com/esetonyehi/evolution-of-exchange/api/server"
	"github.com/esetonyehi/evolution-of-exchange/config"
	"github.com/esetonyehi/evolution-of-exchange/database/memdb"
	"github.com/esetonyehi/evolution-of-exchange/mocknet"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
	"github.com/esetonyehi/evolution-of-exchange/utils/metric"
)

const (
	MetricsEndpoint = "/metrics"

	logName     = "mocknet"
	httpLogName = "http"
)

var _ App = (*mocknetApp)(nil)

type mocknetApp struct {
	config     config.Config
	logFactory logging.Factory
	log        logging.Logger
	node       *mocknet.Node
	server     *server.Server

	exitOnce sync.Once
	done     chan error
	exitCode int
	exitErr  error
}

// New returns an application serving a mocknet node configured by [c].
func New(c config.Config) (App, error) {
	logFactory := logging.NewFactory(c.Logging)
	a, err := newMocknetApp(c, logFactory)
	if err != nil {
		logFactory.Close()
		return nil, err
	}
	return a, nil
}

func newMocknetApp(c config.Config, logFactory logging.Factory) (*mocknetApp, error) {
	log, err := logFactory.Make(logName)
	if err != nil {
		return nil, fmt.Errorf("couldn't create logger: %w", err)
	}
	httpLog, err := logFactory.Make(httpLogName)
	if err != nil {
		return nil, fmt.Errorf("couldn't create http logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}

	node, err := mocknet.New(log, registry, memdb.New(), c.NodeConfig())
	if err != nil {
		return nil, fmt.Errorf("couldn't create node: %w", err)
	}

	interceptor, err := metric.NewAPIInterceptor(c.MetricsNamespace+"_api", registry)
	if err != nil {
		return nil, fmt.Errorf("couldn't create api interceptor: %w", err)
	}
	service, err := api.NewService(log, logFactory, node, interceptor)
	if err != nil {
		return nil, fmt.Errorf("couldn't create api service: %w", err)
	}

	s := server.New(log, c.HTTP.Host, c.HTTP.Port, c.HTTP.AllowedOrigins)
	if err := s.AddRoute(service, api.Endpoint, httpLog); err != nil {
		return nil, err
	}
	if err := s.AddMetricsRoute(registry, MetricsEndpoint, httpLog); err != nil {
		return nil, err
	}

	return &mocknetApp{
		config:     c,
		logFactory: logFactory,
		log:        log,
		node:       node,
		server:     s,
		done:       make(chan error, 1),
	}, nil
}

func (a *mocknetApp) Start() error {
	a.log.Info("starting mocknet",
		zap.String("contractAddress", a.config.ContractAddress),
		zap.String("contractName", a.config.ContractName),
		zap.String("network", a.config.Network),
	)
	go a.log.RecoverAndPanic(func() {
		a.done <- a.server.Dispatch()
	})
	return nil
}

func (a *mocknetApp) Stop() error {
	a.log.Info("stopping mocknet")

	ctx, cancel := context.WithTimeout(context.Background(), a.config.HTTP.ShutdownTimeout)
	defer cancel()
	return a.server.Shutdown(ctx)
}

func (a *mocknetApp) ExitCode() (int, error) {
	a.exitOnce.Do(func() {
		err := <-a.done
		if err != nil {
			a.log.Error("HTTP server failed",
				zap.Error(err),
			)
			a.exitCode = 1
			a.exitErr = err
		}
		if err := a.node.Close(); err != nil {
			a.log.Error("failed to close node",
				zap.Error(err),
			)
		}
		a.log.Info("mocknet exited",
			zap.Int("exitCode", a.exitCode),
		)
		a.logFactory.Close()
	})
	return a.exitCode, a.exitErr
}
