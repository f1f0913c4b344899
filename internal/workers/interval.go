// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package workers

import (
	"context"
	"time"

	"github.com/dterekhov/go-mem-sync/internal/logger"
)

// IntervalWorker runs a task on a fixed schedule until its context is
// cancelled. The agent uses it to issue periodic sync rounds even when no
// relay hint arrives (for example after the relay was unreachable).
type IntervalWorker struct {
	name     string
	interval time.Duration
	task     func(ctx context.Context)

	ctx    context.Context
	logger *logger.Logger
}

// NewIntervalWorker constructs an [IntervalWorker]. The task inherits ctx so
// that a blocked task unwinds together with the worker.
func NewIntervalWorker(ctx context.Context, name string, interval time.Duration, task func(ctx context.Context), logger *logger.Logger) *IntervalWorker {
	return &IntervalWorker{
		name:     name,
		interval: interval,
		task:     task,
		ctx:      ctx,
		logger:   logger,
	}
}

// Run implements [Worker]. It returns immediately; ticking happens on an
// internal goroutine.
func (w *IntervalWorker) Run() {
	if w.interval <= 0 {
		w.logger.Warn().Str("worker", w.name).Msg("non-positive interval, worker disabled")
		return
	}

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().
			Str("worker", w.name).
			Dur("interval", w.interval).
			Msg("worker started")

		for {
			select {
			case <-w.ctx.Done():
				w.logger.Info().Str("worker", w.name).Msg("worker stopped")
				return
			case <-ticker.C:
				w.task(w.ctx)
			}
		}
	}()
}
