// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/rpc/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/esetonyehi/evolution-of-exchange/utils/wrappers"
)

type APIInterceptor interface {
	InterceptRequest(i *rpc.RequestInfo) *http.Request
	AfterRequest(i *rpc.RequestInfo)
}

type contextKey int

const requestTimestampKey contextKey = iota

type apiInterceptor struct {
	requestDuration *prometheus.HistogramVec
	requests        *prometheus.CounterVec
	requestErrors   *prometheus.CounterVec
}

func NewAPIInterceptor(namespace string, registerer prometheus.Registerer) (APIInterceptor, error) {
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration",
			Help:      "Duration of JSON-RPC requests in nanoseconds",
			Buckets: []float64{
				float64(time.Millisecond),
				float64(10 * time.Millisecond),
				float64(100 * time.Millisecond),
				float64(time.Second),
				// anything larger than a second will be bucketed together
			},
		},
		[]string{"method"},
	)
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_count",
			Help:      "Number of JSON-RPC requests",
		},
		[]string{"method"},
	)
	requestErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "request_error_count",
			Help:      "Number of JSON-RPC requests that returned an error",
		},
		[]string{"method"},
	)

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(requestDuration),
		registerer.Register(requests),
		registerer.Register(requestErrors),
	)
	return &apiInterceptor{
		requestDuration: requestDuration,
		requests:        requests,
		requestErrors:   requestErrors,
	}, errs.Err
}

func (apr *apiInterceptor) InterceptRequest(i *rpc.RequestInfo) *http.Request {
	ctx := i.Request.Context()
	ctx = context.WithValue(ctx, requestTimestampKey, time.Now())
	return i.Request.WithContext(ctx)
}

func (apr *apiInterceptor) AfterRequest(i *rpc.RequestInfo) {
	labels := prometheus.Labels{
		"method": i.Method,
	}
	apr.requests.With(labels).Inc()
	if i.Error != nil {
		apr.requestErrors.With(labels).Inc()
	}

	timestamp, ok := i.Request.Context().Value(requestTimestampKey).(time.Time)
	if !ok {
		return
	}
	apr.requestDuration.With(labels).Observe(float64(time.Since(timestamp)))
}
