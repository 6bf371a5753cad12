package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const windowLength = time.Hour

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Pacer enforces the per-hour cap and the pauses between sends.
//
// The window check runs before each send: once the cap is reached or the
// window is an hour old, the pacer pauses for the window delay and opens a
// fresh window, so the next send is the first of that window.
type Pacer struct {
	limit        uint
	windowDelay  time.Duration
	messageDelay time.Duration

	sent        uint
	windowStart time.Time

	now    func() time.Time
	sleep  SleepFunc
	logger *zap.Logger
}

func NewPacer(limit uint, windowDelay, messageDelay time.Duration, now func() time.Time, sleep SleepFunc, logger *zap.Logger) *Pacer {
	return &Pacer{
		limit:        limit,
		windowDelay:  windowDelay,
		messageDelay: messageDelay,
		windowStart:  now(),
		now:          now,
		sleep:        sleep,
		logger:       logger,
	}
}

// AwaitWindow pauses when the current window is exhausted.
func (p *Pacer) AwaitWindow(ctx context.Context) error {
	if p.sent < p.limit && p.now().Sub(p.windowStart) < windowLength {
		return nil
	}

	p.logger.Info("Message limit reached for this hour, waiting",
		zap.Uint("sent_in_window", p.sent),
		zap.Duration("pause", p.windowDelay))

	if err := p.sleep(ctx, p.windowDelay); err != nil {
		return err
	}

	p.sent = 0
	p.windowStart = p.now()
	return nil
}

// MarkSent counts an attempted send against the current window.
func (p *Pacer) MarkSent() {
	p.sent++
}

// AwaitNext pauses between two sends.
func (p *Pacer) AwaitNext(ctx context.Context) error {
	return p.sleep(ctx, p.messageDelay)
}

// SentInWindow returns the number of attempts in the current window.
func (p *Pacer) SentInWindow() uint {
	return p.sent
}

// WindowStart returns when the current window opened.
func (p *Pacer) WindowStart() time.Time {
	return p.windowStart
}

// SleepContext is the production SleepFunc.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
