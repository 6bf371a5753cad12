package ledger

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/popeskul/wa-broadcast/internal/models"
	"github.com/popeskul/wa-broadcast/internal/repository"
)

// ReplyLog holds one ReplyEntry per sender key in first-seen order.
type ReplyLog struct {
	mu       sync.Mutex
	name     string
	store    repository.SnapshotRepository
	entries  []*models.ReplyEntry
	bySender map[string]*models.ReplyEntry
}

func NewReplyLog(store repository.SnapshotRepository, name string) *ReplyLog {
	return &ReplyLog{
		name:     name,
		store:    store,
		bySender: make(map[string]*models.ReplyEntry),
	}
}

// Append adds text to the sender's transcript and rewrites the snapshot. The
// name is fixed when the entry is created.
func (r *ReplyLog) Append(senderKey, name, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.bySender[senderKey]
	if !ok {
		entry = &models.ReplyEntry{
			From:    senderKey,
			Name:    name,
			Replies: []string{},
		}
		r.entries = append(r.entries, entry)
		r.bySender[senderKey] = entry
	}
	entry.Replies = append(entry.Replies, text)

	data, err := json.MarshalIndent(r.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal reply log: %w", err)
	}
	if err := r.store.Save(r.name, data); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// Snapshot returns a deep copy of every entry.
func (r *ReplyLog) Snapshot() []models.ReplyEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.ReplyEntry, len(r.entries))
	for i, e := range r.entries {
		out[i] = models.ReplyEntry{
			From:    e.From,
			Name:    e.Name,
			Replies: append([]string(nil), e.Replies...),
		}
	}
	return out
}
