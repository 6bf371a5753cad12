package models

// StatusEvent is a delivery milestone recorded in the status ledger.
type StatusEvent string

const (
	StatusEventSent      StatusEvent = "Sent"
	StatusEventDelivered StatusEvent = "Delivered"
	StatusEventRead      StatusEvent = "Read"
	StatusEventReplied   StatusEvent = "Replied"
)

// Valid reports whether the event maps to a ledger flag.
func (e StatusEvent) Valid() bool {
	switch e {
	case StatusEventSent, StatusEventDelivered, StatusEventRead, StatusEventReplied:
		return true
	}
	return false
}

// StatusEntry tracks delivery state for one phone number.
type StatusEntry struct {
	UniqueID string `json:"uniqueId" db:"unique_id"`
	Name     string `json:"name" db:"name"`
	Phone    string `json:"phone" db:"phone"`
	Sent     bool   `json:"sent" db:"sent"`
	Read     bool   `json:"read" db:"read"`
	Replied  bool   `json:"replied" db:"replied"`
}

// Apply sets the flag matching the event. Flags are never cleared.
func (e *StatusEntry) Apply(event StatusEvent) bool {
	switch event {
	case StatusEventSent:
		e.Sent = true
	case StatusEventDelivered, StatusEventRead:
		e.Read = true
	case StatusEventReplied:
		e.Replied = true
	default:
		return false
	}
	return true
}
