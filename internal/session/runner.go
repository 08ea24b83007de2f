package session

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrentRuns bounds simultaneous browser instances. Each run
// owns a whole browser process, so the ceiling is mostly about memory.
const DefaultMaxConcurrentRuns = 4

// Runner launches controller runs, one goroutine per submitted job, bounded
// by a weighted semaphore. Runs never share a browser instance.
type Runner struct {
	controller *Controller
	sem        *semaphore.Weighted
	ctx        context.Context
	cancel     context.CancelFunc
	wg         sync.WaitGroup
	logger     *slog.Logger
}

// NewRunner creates a Runner. maxConcurrent <= 0 selects the default.
func NewRunner(c *Controller, maxConcurrent int64) *Runner {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrentRuns
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Runner{
		controller: c,
		sem:        semaphore.NewWeighted(maxConcurrent),
		ctx:        ctx,
		cancel:     cancel,
		logger:     slog.Default(),
	}
}

// Start schedules an automation run for the job and returns immediately.
// The run proceeds to a terminal job state on its own; errors are already
// recorded on the Job Record by the controller.
func (r *Runner) Start(jobID string) {
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := r.sem.Acquire(r.ctx, 1); err != nil {
			r.logger.Warn("run not started, runner shutting down", "job_id", jobID)
			return
		}
		defer r.sem.Release(1)
		if err := r.controller.Run(r.ctx, jobID); err != nil {
			r.logger.Warn("run ended with error", "job_id", jobID, "error", err)
		}
	}()
}

// Shutdown cancels in-flight runs and waits for their goroutines to finish.
func (r *Runner) Shutdown() {
	r.cancel()
	r.wg.Wait()
}

// Wait blocks until all started runs have finished, without cancelling.
func (r *Runner) Wait() {
	r.wg.Wait()
}
