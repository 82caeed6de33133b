// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
)

const (
	BaseURL = "/ext"

	readHeaderTimeout = 10 * time.Second
)

var errMalformedEndpoint = errors.New("malformed endpoint")

// Server maintains the HTTP router
type Server struct {
	// log this server writes to
	log logging.Logger
	// Maps endpoints to handlers
	router *mux.Router
	// points the the router handlers
	handler http.Handler
	// Listens for HTTP traffic on this address
	listenHost string
	listenPort uint16

	srv *http.Server
}

// New creates the API server at the provided host and port
func New(
	log logging.Logger,
	host string,
	port uint16,
	allowedOrigins []string,
) *Server {
	router := mux.NewRouter()

	log.Info("API created",
		zap.Strings("allowedOrigins", allowedOrigins),
	)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
	}).Handler(router)
	gzipHandler := gziphandler.GzipHandler(corsHandler)

	return &Server{
		log:        log,
		router:     router,
		handler:    gzipHandler,
		listenHost: host,
		listenPort: port,
		srv: &http.Server{
			Handler:           gzipHandler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
}

// AddRoute registers [handler] at BaseURL + [endpoint]. Requests are logged
// to [loggingWriter].
func (s *Server) AddRoute(handler http.Handler, endpoint string, loggingWriter io.Writer) error {
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return fmt.Errorf("%w %q: %w", errMalformedEndpoint, endpoint, err)
	}

	path := BaseURL + endpoint
	s.log.Info("adding route",
		zap.String("url", path),
	)
	s.router.Handle(path, handlers.CombinedLoggingHandler(loggingWriter, handler))
	return nil
}

// AddMetricsRoute exposes [gatherer] at BaseURL + [endpoint].
func (s *Server) AddMetricsRoute(gatherer prometheus.Gatherer, endpoint string, loggingWriter io.Writer) error {
	return s.AddRoute(
		promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
		endpoint,
		loggingWriter,
	)
}

// Handler returns the server's complete handler chain.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Dispatch starts the API server
func (s *Server) Dispatch() error {
	listenAddress := net.JoinHostPort(s.listenHost, strconv.Itoa(int(s.listenPort)))
	listener, err := net.Listen("tcp", listenAddress)
	if err != nil {
		return err
	}
	return s.DispatchListener(listener)
}

// DispatchListener serves the API on [listener] until Shutdown is called.
func (s *Server) DispatchListener(listener net.Listener) error {
	s.log.Info("HTTP API server listening",
		zap.Stringer("address", listener.Addr()),
	)

	err := s.srv.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown this server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
