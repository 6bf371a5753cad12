package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/api"
	"github.com/popeskul/wa-broadcast/internal/config"
	"github.com/popeskul/wa-broadcast/internal/models"
)

type campaignService struct {
	settings        *models.Settings
	contacts        []models.Contact
	captionTemplate string
	sendTimeout     time.Duration

	messenger Messenger
	status    StatusLedger
	replies   ReplyLog
	breaker   *CircuitBreaker
	acks      *ackTracker

	// known maps sender keys to contacts. Resolved account ids are added as
	// aliases during the run.
	mu    sync.RWMutex
	known map[string]models.Contact

	now       func() time.Time
	sleep     SleepFunc
	loadMedia func(path string) (*models.Media, error)
	logger    *zap.Logger
}

// CampaignOption customizes a campaign service.
type CampaignOption func(*campaignService)

// WithClock replaces the wall clock and the pause function.
func WithClock(now func() time.Time, sleep SleepFunc) CampaignOption {
	return func(s *campaignService) {
		s.now = now
		s.sleep = sleep
	}
}

func WithMediaLoader(load func(path string) (*models.Media, error)) CampaignOption {
	return func(s *campaignService) {
		s.loadMedia = load
	}
}

func NewCampaignService(
	cfg *config.Config,
	settings *models.Settings,
	contacts []models.Contact,
	messenger Messenger,
	status StatusLedger,
	replies ReplyLog,
	logger *zap.Logger,
	opts ...CampaignOption,
) CampaignService {
	captionTemplate := cfg.Campaign.CaptionTemplate
	if captionTemplate == "" {
		captionTemplate = config.DefaultCaptionTemplate
	}

	s := &campaignService{
		settings:        settings,
		contacts:        contacts,
		captionTemplate: captionTemplate,
		sendTimeout:     time.Duration(cfg.Sender.Timeout) * time.Second,
		messenger:       messenger,
		status:          status,
		replies:         replies,
		breaker:         NewCircuitBreaker(&cfg.Sender.CircuitBreaker, logger),
		acks:            newAckTracker(),
		known:           make(map[string]models.Contact, len(contacts)),
		now:             time.Now,
		sleep:           SleepContext,
		loadMedia:       LoadMedia,
		logger:          logger,
	}

	for _, c := range contacts {
		s.known[c.AccountKey()] = c
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Run makes one pass over the contact list.
func (s *campaignService) Run(ctx context.Context) error {
	if !s.settings.CampaignEnabled {
		s.logger.Info("Campaign is disabled")
		return nil
	}

	media, err := s.loadMedia(s.settings.MediaPath)
	if err != nil {
		return fmt.Errorf("failed to load media: %w", err)
	}

	pacer := NewPacer(
		s.settings.MessagesPerHour,
		s.settings.WindowDelay(),
		s.settings.MessageDelay(),
		s.now,
		s.sleep,
		s.logger,
	)

	s.logger.Info("Starting campaign",
		zap.Int("contacts", len(s.contacts)),
		zap.Uint("messages_per_hour", s.settings.MessagesPerHour))

	var sent, failed, skipped int
	for _, contact := range s.contacts {
		if err := ctx.Err(); err != nil {
			return err
		}

		accountID, found, err := s.messenger.ResolveAccount(ctx, contact.Phone)
		if err != nil || !found {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			s.logger.Warn("Invalid account, skipping contact",
				zap.String("name", contact.Name),
				zap.String("phone", contact.Phone),
				zap.Error(err))
			skipped++
			continue
		}
		s.alias(accountID, contact)

		if err := pacer.AwaitWindow(ctx); err != nil {
			return err
		}

		ok, err := s.sendToContact(ctx, contact, accountID, media)
		if err != nil {
			return err
		}
		if ok {
			sent++
		} else {
			failed++
		}

		pacer.MarkSent()

		if err := pacer.AwaitNext(ctx); err != nil {
			return err
		}
	}

	s.logger.Info("Campaign finished",
		zap.Int("sent", sent),
		zap.Int("failed", failed),
		zap.Int("skipped", skipped))

	return nil
}

// sendToContact reports whether the send succeeded. The error is non-nil only
// when the run has to stop.
func (s *campaignService) sendToContact(ctx context.Context, contact models.Contact, accountID string, media *models.Media) (bool, error) {
	caption := RenderTemplate(s.captionTemplate, map[string]string{
		"name":  contact.Name,
		"phone": contact.Phone,
	})

	var messageID string
	err := s.breaker.Execute(ctx, func() error {
		sendCtx := ctx
		if s.sendTimeout > 0 {
			var cancel context.CancelFunc
			sendCtx, cancel = context.WithTimeout(ctx, s.sendTimeout)
			defer cancel()
		}

		id, err := s.messenger.SendMedia(sendCtx, accountID, media, caption)
		if err != nil {
			return err
		}
		messageID = id
		return nil
	})
	if err != nil {
		if errors.Is(err, context.Canceled) && ctx.Err() != nil {
			return false, ctx.Err()
		}
		s.logger.Error("Failed to send message",
			zap.String("name", contact.Name),
			zap.String("phone", contact.Phone),
			zap.Error(err))
		return false, nil
	}

	s.acks.Track(messageID, contact)

	s.logger.Info("Message sent",
		zap.String("name", contact.Name),
		zap.String("phone", contact.Phone),
		zap.String("message_id", messageID))

	if err := s.status.Record(contact.Name, contact.Phone, models.StatusEventSent); err != nil {
		return false, fmt.Errorf("failed to record sent status: %w", err)
	}

	return true, nil
}

// HandleAck records Read for delivery and read acknowledgments of messages
// sent by this process.
func (s *campaignService) HandleAck(ack models.Ack) error {
	contact, ok := s.acks.Resolve(ack)
	if !ok || ack.Level < models.AckLevelDelivered {
		return nil
	}

	s.logger.Info("Message acknowledged",
		zap.String("name", contact.Name),
		zap.String("phone", contact.Phone),
		zap.String("message_id", ack.MessageID),
		zap.Int("level", int(ack.Level)))

	event := models.StatusEventRead
	if ack.Level == models.AckLevelDelivered {
		event = models.StatusEventDelivered
	}

	if err := s.status.Record(contact.Name, contact.Phone, event); err != nil {
		return fmt.Errorf("failed to record read status: %w", err)
	}
	return nil
}

// HandleInbound stores replies from known contacts and drops everything else.
func (s *campaignService) HandleInbound(msg models.InboundMessage) error {
	s.mu.RLock()
	contact, ok := s.known[msg.From]
	s.mu.RUnlock()
	if !ok {
		return nil
	}

	s.logger.Info("Reply received",
		zap.String("name", contact.Name),
		zap.String("from", msg.From))

	if err := s.replies.Append(msg.From, contact.Name, msg.Body); err != nil {
		return fmt.Errorf("failed to append reply: %w", err)
	}
	if err := s.status.Record(contact.Name, contact.Phone, models.StatusEventReplied); err != nil {
		return fmt.Errorf("failed to record replied status: %w", err)
	}
	return nil
}

func (s *campaignService) GetCircuitBreakerStatus() (api.HealthResponseCircuitBreakerState, uint32, uint32) {
	requests, failures := s.breaker.GetCounts()
	return s.breaker.GetState(), requests, failures
}

func (s *campaignService) alias(accountID string, contact models.Contact) {
	if accountID == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.known[accountID]; !ok {
		s.known[accountID] = contact
	}
}
