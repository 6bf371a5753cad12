// Package ledger keeps the per-contact delivery ledger and the reply log in
// memory and mirrors every mutation to a snapshot repository.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"

	"github.com/popeskul/wa-broadcast/internal/models"
	"github.com/popeskul/wa-broadcast/internal/repository"
)

var emptySnapshot = []byte("[]")

// StatusLedger holds one StatusEntry per phone number in first-seen order.
type StatusLedger struct {
	mu      sync.Mutex
	name    string
	store   repository.SnapshotRepository
	entries []*models.StatusEntry
	byPhone map[string]*models.StatusEntry
}

// NewStatusLedger starts empty. Entries from a previous run are not loaded and
// are overwritten by the first mutation.
func NewStatusLedger(store repository.SnapshotRepository, name string) *StatusLedger {
	return &StatusLedger{
		name:    name,
		store:   store,
		byPhone: make(map[string]*models.StatusEntry),
	}
}

// Record sets the flag for event on the entry for phone, creating the entry on
// first sight, then rewrites the whole snapshot.
func (l *StatusLedger) Record(name, phone string, event models.StatusEvent) error {
	if !event.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEvent, event)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry, ok := l.byPhone[phone]
	if !ok {
		entry = &models.StatusEntry{
			UniqueID: strconv.Itoa(len(l.entries) + 1),
			Name:     name,
			Phone:    phone,
		}
		l.entries = append(l.entries, entry)
		l.byPhone[phone] = entry
	}

	entry.Apply(event)

	return l.persistLocked()
}

// Snapshot returns a copy of every entry in first-seen order.
func (l *StatusLedger) Snapshot() []models.StatusEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.StatusEntry, len(l.entries))
	for i, e := range l.entries {
		out[i] = *e
	}
	return out
}

// Persisted returns the stored snapshot bytes as written, or an empty JSON
// array if nothing has been stored yet.
func (l *StatusLedger) Persisted() ([]byte, error) {
	data, err := l.store.Load(l.name)
	if errors.Is(err, repository.ErrSnapshotNotFound) {
		return emptySnapshot, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load status snapshot: %w", err)
	}
	return data, nil
}

func (l *StatusLedger) persistLocked() error {
	data, err := json.MarshalIndent(l.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal status ledger: %w", err)
	}
	if err := l.store.Save(l.name, data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}
