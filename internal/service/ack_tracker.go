package service

import (
	"sync"

	"github.com/popeskul/wa-broadcast/internal/models"
)

// ackTracker maps outgoing message ids to the contact they were sent to. An
// id is dropped once its terminal acknowledgment arrives.
type ackTracker struct {
	mu      sync.Mutex
	pending map[string]models.Contact
}

func newAckTracker() *ackTracker {
	return &ackTracker{
		pending: make(map[string]models.Contact),
	}
}

func (t *ackTracker) Track(messageID string, contact models.Contact) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending[messageID] = contact
}

// Resolve returns the contact for ack.MessageID.
func (t *ackTracker) Resolve(ack models.Ack) (models.Contact, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	contact, ok := t.pending[ack.MessageID]
	if ok && ack.Level.Terminal() {
		delete(t.pending, ack.MessageID)
	}
	return contact, ok
}

func (t *ackTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}
