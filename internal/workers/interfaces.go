// Package workers provides the background machinery of the vault service:
// the Worker interface for long-running components and a fixed-size [Pool]
// that drains jobs such as owner-file persists.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to spawn goroutines internally and return.
type Worker interface {
	Run()
}

// Job is a unit of work executed by a [Pool]. The context is cancelled only
// when a shutdown deadline expires.
type Job func(ctx context.Context)

// JobQueue accepts jobs for asynchronous execution.
type JobQueue interface {
	// Submit enqueues job. It blocks while the queue is full, until ctx is
	// done, and fails with ErrPoolClosed after shutdown started.
	Submit(ctx context.Context, job Job) error
}
