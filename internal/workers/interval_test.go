// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Dmitry Terekhov

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dterekhov/go-mem-sync/internal/logger"
)

func TestIntervalWorker_RunsTaskOnSchedule(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	w := NewIntervalWorker(ctx, "test", 5*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	}, logger.Nop())

	w.Run()

	deadline := time.After(time.Second)
	for calls.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least 2 task runs, got %d", calls.Load())
		case <-time.After(time.Millisecond):
		}
	}
}

func TestIntervalWorker_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var calls atomic.Int32
	w := NewIntervalWorker(ctx, "test", time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
	}, logger.Nop())

	w.Run()
	time.Sleep(10 * time.Millisecond)
	cancel()
	time.Sleep(10 * time.Millisecond)

	after := calls.Load()
	time.Sleep(20 * time.Millisecond)
	if got := calls.Load(); got != after {
		t.Fatalf("worker kept running after cancel: %d -> %d", after, got)
	}
}

func TestIntervalWorker_DisabledForZeroInterval(t *testing.T) {
	w := NewIntervalWorker(context.Background(), "test", 0, func(ctx context.Context) {
		t.Fatal("task must not run with zero interval")
	}, logger.Nop())

	w.Run()
	time.Sleep(10 * time.Millisecond)
}
