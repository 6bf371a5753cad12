package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/popeskul/wa-broadcast/internal/api"
	"github.com/popeskul/wa-broadcast/internal/models"
	"github.com/popeskul/wa-broadcast/internal/scheduler"
)

// Messenger is the messaging-platform capability set the campaign consumes.
type Messenger interface {
	ResolveAccount(ctx context.Context, phone string) (accountID string, found bool, err error)
	SendMedia(ctx context.Context, accountID string, media *models.Media, caption string) (messageID string, err error)
	IsConnected() bool
}

type StatusLedger interface {
	Record(name, phone string, event models.StatusEvent) error
	Persisted() ([]byte, error)
}

type ReplyLog interface {
	Append(senderKey, name, text string) error
	Snapshot() []models.ReplyEntry
}

type CampaignService interface {
	Run(ctx context.Context) error
	HandleAck(ack models.Ack) error
	HandleInbound(msg models.InboundMessage) error
	GetCircuitBreakerStatus() (state api.HealthResponseCircuitBreakerState, requests uint32, failures uint32)
}

type SchedulerService interface {
	Start() error
	Stop() error
	IsRunning() bool
	State() scheduler.State
}

type QueryService interface {
	GetReplies() []models.ReplyEntry
	GetMessageStatus() ([]byte, error)
}

type HealthService interface {
	GetHealth() *HealthStatus
}
