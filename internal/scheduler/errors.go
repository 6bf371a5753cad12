// Package scheduler runs the campaign task in the background, once per process.
package scheduler

import "errors"

var (
	ErrSchedulerAlreadyRunning = errors.New("campaign is already running")
	ErrSchedulerNotRunning     = errors.New("campaign is not running")
	ErrSchedulerCompleted      = errors.New("campaign has already completed")
)
