package ledger

import "errors"

var (
	ErrPersist      = errors.New("failed to persist snapshot")
	ErrUnknownEvent = errors.New("unknown status event")
)
