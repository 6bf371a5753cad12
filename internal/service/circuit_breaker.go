// Package service holds the campaign driver and the services behind the HTTP
// surface.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/api"
	"github.com/popeskul/wa-broadcast/internal/config"
)

// CircuitBreaker tracks the health of sends to the messaging platform. It
// observes outcomes and never blocks a send: every contact must be attempted.
type CircuitBreaker struct {
	cb     *gobreaker.TwoStepCircuitBreaker
	logger *zap.Logger
}

func NewCircuitBreaker(cfg *config.CircuitBreakerConfig, logger *zap.Logger) *CircuitBreaker {
	settings := gobreaker.Settings{
		Name:        "messenger-circuit-breaker",
		MaxRequests: cfg.MaxRequests,
		Interval:    time.Duration(cfg.Interval) * time.Second,
		Timeout:     time.Duration(cfg.Timeout) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.ConsecutiveFails {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &CircuitBreaker{
		cb:     gobreaker.NewTwoStepCircuitBreaker(settings),
		logger: logger,
	}
}

// Execute runs fn and records its outcome. While the breaker is open fn
// still runs; the outcome is simply not counted.
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	done, allowErr := cb.cb.Allow()
	if allowErr != nil {
		cb.logger.Debug("Circuit breaker not closed, send outcome not counted",
			zap.String("state", cb.cb.State().String()),
		)
	}

	err := fn()
	if done != nil {
		// A canceled campaign says nothing about the messenger.
		done(err == nil || errors.Is(err, context.Canceled))
	}
	return err
}

// GetState returns the current state of the circuit breaker.
func (cb *CircuitBreaker) GetState() api.HealthResponseCircuitBreakerState {
	switch cb.cb.State() {
	case gobreaker.StateHalfOpen:
		return api.HalfOpen
	case gobreaker.StateOpen:
		return api.Open
	default:
		return api.Closed
	}
}

// GetCounts returns the counts of the current breaker generation.
func (cb *CircuitBreaker) GetCounts() (requests, failures uint32) {
	counts := cb.cb.Counts()
	return counts.Requests, counts.TotalFailures
}
