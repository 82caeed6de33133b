// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package mocknet

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/esetonyehi/evolution-of-exchange/utils/wrappers"
)

const (
	readOnlyKind  = "read_only"
	broadcastKind = "broadcast"

	// otherFunction labels calls of functions the contract doesn't define.
	otherFunction = "other"
)

var contractFunctions = map[string]struct{}{
	GetExchangeInfo:           {},
	IsExchangeMethodCurrent:   {},
	EvolutionOfExchange:       {},
	InitializeExchangeHistory: {},
	PerformExchange:           {},
	PlayEraTheme:              {},
}

// functionLabel bounds the function label to the contract's functions.
func functionLabel(functionName string) string {
	if _, ok := contractFunctions[functionName]; ok {
		return functionName
	}
	return otherFunction
}

type metrics struct {
	calls     *prometheus.CounterVec
	fallbacks prometheus.Counter
	overrides *prometheus.CounterVec
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "calls",
				Help:      "Number of contract calls handled",
			},
			[]string{"kind", "function"},
		),
		fallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "era_fallbacks",
			Help:      "Number of era lookups that resolved to the default era",
		}),
		overrides: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "result_overrides",
				Help:      "Number of times a canned result was overridden",
			},
			[]string{"function"},
		),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.calls),
		registerer.Register(m.fallbacks),
		registerer.Register(m.overrides),
	)
	return m, errs.Err
}
