package models

// AckLevel is the acknowledgment level reported for an outgoing message.
type AckLevel int

const (
	AckLevelPending   AckLevel = 0
	AckLevelDelivered AckLevel = 1
	AckLevelRead      AckLevel = 2
)

// Terminal reports whether no further acknowledgment is expected.
func (l AckLevel) Terminal() bool {
	return l >= AckLevelRead
}

// Ack is an acknowledgment update for a previously sent message.
type Ack struct {
	MessageID string
	Level     AckLevel
}

// InboundMessage is a text message received from another account.
type InboundMessage struct {
	From string
	Body string
}
