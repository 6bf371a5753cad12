package scheduler

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// State is the lifecycle of the one-shot task.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
)

// Scheduler runs a single pass of taskFunc in its own goroutine. A finished
// task is never restarted.
type Scheduler struct {
	logger   *zap.Logger
	taskFunc func(context.Context) error
	cancel   context.CancelFunc
	doneCh   chan struct{}
	state    State
	lastErr  error
	mu       sync.RWMutex
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(logger *zap.Logger, taskFunc func(context.Context) error) *Scheduler {
	return &Scheduler{
		logger:   logger,
		taskFunc: taskFunc,
		state:    StateIdle,
	}
}

// Start launches the task. The task stops early when ctx is canceled or Stop
// is called.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateRunning:
		return ErrSchedulerAlreadyRunning
	case StateCompleted:
		return ErrSchedulerCompleted
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.state = StateRunning
	s.cancel = cancel
	s.doneCh = make(chan struct{})

	go s.run(runCtx)

	s.logger.Info("Campaign started")
	return nil
}

// Stop cancels a running task and waits for it to return.
func (s *Scheduler) Stop() error {
	s.mu.RLock()
	if s.state != StateRunning {
		s.mu.RUnlock()
		return ErrSchedulerNotRunning
	}
	cancel, done := s.cancel, s.doneCh
	s.mu.RUnlock()

	cancel()
	<-done

	s.logger.Info("Campaign stopped")
	return nil
}

// Wait blocks until a started task returns and reports its error.
func (s *Scheduler) Wait() error {
	s.mu.RLock()
	done := s.doneCh
	s.mu.RUnlock()

	if done == nil {
		return ErrSchedulerNotRunning
	}
	<-done

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// IsRunning returns whether the task is currently running.
func (s *Scheduler) IsRunning() bool {
	return s.State() == StateRunning
}

// State returns the current lifecycle state.
func (s *Scheduler) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// run executes the task and records its outcome
func (s *Scheduler) run(ctx context.Context) {
	defer close(s.doneCh)

	err := s.taskFunc(ctx)
	switch {
	case err == nil:
		s.logger.Info("Campaign completed successfully")
	case errors.Is(err, context.Canceled):
		s.logger.Info("Campaign canceled")
	default:
		s.logger.Error("Campaign failed", zap.Error(err))
	}

	s.mu.Lock()
	s.state = StateCompleted
	s.lastErr = err
	s.cancel()
	s.mu.Unlock()
}
