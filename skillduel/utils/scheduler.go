package utils

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Scheduler owns every polling goroutine with proper lifecycle control.
// A UI region acquires a task handle when it mounts and stops it on
// teardown, so no timer outlives its owner.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mu     sync.Mutex
	tasks  map[string]*TaskHandle
}

// TaskHandle is the owner's grip on one scheduled task.
type TaskHandle struct {
	name   string
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the task and waits for it to finish.
func (h *TaskHandle) Stop() {
	h.cancel()
	<-h.done
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		ctx:    ctx,
		cancel: cancel,
		tasks:  make(map[string]*TaskHandle),
	}
}

// Start runs fn on its own goroutine under the scheduler's lifecycle. A
// task with the same name replaces the previous one.
func (s *Scheduler) Start(name string, fn func(ctx context.Context)) *TaskHandle {
	s.mu.Lock()
	if existing, ok := s.tasks[name]; ok {
		slog.Warn("Task already scheduled, replacing", slog.String("task", name))
		existing.cancel()
		delete(s.tasks, name)
	}

	taskCtx, taskCancel := context.WithCancel(s.ctx)
	handle := &TaskHandle{
		name:   name,
		cancel: taskCancel,
		done:   make(chan struct{}),
	}
	s.tasks[name] = handle
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(handle.done)
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Scheduled task panic",
					slog.String("task", name),
					slog.Any("panic", r))
			}
			s.mu.Lock()
			if s.tasks[name] == handle {
				delete(s.tasks, name)
			}
			s.mu.Unlock()
		}()

		slog.Debug("Starting scheduled task", slog.String("task", name))
		fn(taskCtx)
		slog.Debug("Scheduled task ended", slog.String("task", name))
	}()

	return handle
}

// Every schedules fn on a fixed interval, with one immediate run, until
// the handle is stopped.
func (s *Scheduler) Every(name string, interval time.Duration, fn func(ctx context.Context)) *TaskHandle {
	return s.Start(name, func(ctx context.Context) {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		fn(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn(ctx)
			}
		}
	})
}

// TaskCount returns the number of live tasks.
func (s *Scheduler) TaskCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Shutdown cancels everything and waits up to timeout.
func (s *Scheduler) Shutdown(timeout time.Duration) error {
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("All scheduled tasks stopped")
		return nil
	case <-time.After(timeout):
		slog.Warn("Timeout waiting for scheduled tasks",
			slog.Duration("timeout", timeout))
		return context.DeadlineExceeded
	}
}
