// Package repository persists ledger and reply log snapshots.
package repository

import (
	"context"
	"time"
)

const pingTimeout = 2 * time.Second

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	ping     func(ctx context.Context) error
	snapshot SnapshotRepository
}

// Snapshot returns the snapshot repository.
func (r *repositoryImpl) Snapshot() SnapshotRepository {
	return r.snapshot
}

// Ping checks if the backend is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	return r.ping(ctx)
}
