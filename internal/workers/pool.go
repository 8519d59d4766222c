// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
)

// Pool is a fixed number of goroutines draining a bounded job queue.
//
// Jobs submitted before Run are buffered and executed once the pool starts.
// Shutdown stops accepting jobs, lets the workers finish everything already
// queued and waits for them.
type Pool struct {
	size   int
	queue  chan Job
	logger *logger.Logger

	mu      sync.RWMutex
	started bool
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPool creates an idle pool with size workers and room for queueSize
// pending jobs. Non-positive values fall back to one worker and an
// unbuffered queue respectively.
func NewPool(size, queueSize int, log *logger.Logger) *Pool {
	if size <= 0 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		size:   size,
		queue:  make(chan Job, queueSize),
		logger: log,
		ctx:    ctx,
		cancel: cancel,
		done:   make(chan struct{}),
	}
}

// Run implements [Worker]. It starts the worker goroutines and returns
// immediately. Calling Run more than once has no effect.
func (p *Pool) Run() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.start()
}

// start must be called with p.mu held.
func (p *Pool) start() {
	if p.started {
		return
	}
	p.started = true

	var g errgroup.Group
	for id := 0; id < p.size; id++ {
		id := id
		g.Go(func() error {
			for job := range p.queue {
				p.execute(id, job)
			}
			return nil
		})
	}

	go func() {
		_ = g.Wait()
		close(p.done)
	}()

	p.logger.Info().Int("workers", p.size).Int("queue", cap(p.queue)).Msg("worker pool started")
}

func (p *Pool) execute(id int, job Job) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error().
				Int("worker", id).
				Err(fmt.Errorf("panic: %v", r)).
				Msg("job panicked")
		}
	}()

	job(p.ctx)
}

// Submit implements [JobQueue].
func (p *Pool) Submit(ctx context.Context, job Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.queue <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Pending returns the number of queued jobs not yet picked up by a worker.
func (p *Pool) Pending() int {
	return len(p.queue)
}

// Shutdown stops accepting jobs and waits until every queued job has run.
// A pool that was never started is started so the queue still drains. If ctx
// expires first, running jobs see their context cancelled and ctx.Err() is
// returned.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
		p.start()
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		p.cancel()
		p.logger.Info().Msg("worker pool drained")
		return nil
	case <-ctx.Done():
		p.cancel()
		return ctx.Err()
	}
}
