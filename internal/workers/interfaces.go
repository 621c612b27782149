// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the server.
// It defines the Worker interface and a Workers aggregate that starts every
// worker on its own goroutine and waits for all of them to stop.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled and the worker has finished its
// remaining work.
type Worker interface {
	Run(ctx context.Context)
}
