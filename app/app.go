// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// App is a long running process with an externally triggered shutdown.
type App interface {
	// Start launches the app without blocking.
	Start() error

	// Stop asks the app to shut down without waiting for it to finish.
	Stop() error

	// ExitCode blocks until a started app has finished.
	ExitCode() (int, error)
}

// Run starts [app] and waits for it to finish. The app is stopped once [ctx]
// is cancelled or the process receives SIGINT or SIGTERM. Any failure to
// start, stop or run the app is reported as exit code 1.
func Run(ctx context.Context, app App) int {
	if err := app.Start(); err != nil {
		return 1
	}

	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	exited := make(chan struct{})
	var eg errgroup.Group
	eg.Go(func() error {
		select {
		case <-exited:
			return nil
		case <-ctx.Done():
		}

		select {
		case <-exited:
			return nil
		default:
			return app.Stop()
		}
	})

	exitCode, runErr := app.ExitCode()
	close(exited)
	stopErr := eg.Wait()

	if runErr != nil || stopErr != nil {
		return 1
	}
	return exitCode
}
