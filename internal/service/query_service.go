package service

import "github.com/popeskul/wa-broadcast/internal/models"

type queryService struct {
	status  StatusLedger
	replies ReplyLog
}

func NewQueryService(status StatusLedger, replies ReplyLog) QueryService {
	return &queryService{
		status:  status,
		replies: replies,
	}
}

// GetReplies returns the live reply log.
func (s *queryService) GetReplies() []models.ReplyEntry {
	return s.replies.Snapshot()
}

// GetMessageStatus returns the ledger exactly as it was last persisted.
func (s *queryService) GetMessageStatus() ([]byte, error) {
	return s.status.Persisted()
}
