package service

import (
	"errors"

	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/models"
	"github.com/popeskul/wa-broadcast/internal/scheduler"
)

// EventRouter forwards messaging client events to the campaign.
type EventRouter struct {
	campaign  CampaignService
	scheduler SchedulerService
	printQR   func(code string)
	logger    *zap.Logger
}

func NewEventRouter(campaign CampaignService, scheduler SchedulerService, printQR func(code string), logger *zap.Logger) *EventRouter {
	return &EventRouter{
		campaign:  campaign,
		scheduler: scheduler,
		printQR:   printQR,
		logger:    logger,
	}
}

// OnReady starts the campaign. Reconnects do not start it again.
func (r *EventRouter) OnReady() {
	r.logger.Info("Client is ready")

	err := r.scheduler.Start()
	switch {
	case err == nil:
	case errors.Is(err, scheduler.ErrSchedulerAlreadyRunning), errors.Is(err, scheduler.ErrSchedulerCompleted):
		r.logger.Debug("Campaign not restarted", zap.Error(err))
	default:
		r.logger.Error("Failed to start campaign", zap.Error(err))
	}
}

func (r *EventRouter) OnQRChallenge(code string) {
	r.logger.Info("Scan the QR code with the messaging app to log in")
	if r.printQR != nil {
		r.printQR(code)
	}
}

func (r *EventRouter) OnInbound(msg models.InboundMessage) {
	if err := r.campaign.HandleInbound(msg); err != nil {
		r.logger.Error("Failed to handle inbound message",
			zap.String("from", msg.From),
			zap.Error(err))
	}
}

func (r *EventRouter) OnAck(ack models.Ack) {
	if err := r.campaign.HandleAck(ack); err != nil {
		r.logger.Error("Failed to handle acknowledgment",
			zap.String("message_id", ack.MessageID),
			zap.Error(err))
	}
}
