package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/scheduler"
)

type schedulerService struct {
	scheduler *scheduler.Scheduler
	campaign  CampaignService
	logger    *zap.Logger
}

// NewSchedulerService runs the campaign in the background, at most once.
func NewSchedulerService(campaign CampaignService, logger *zap.Logger) SchedulerService {
	svc := &schedulerService{
		campaign: campaign,
		logger:   logger,
	}

	svc.scheduler = scheduler.NewScheduler(logger, svc.executeCampaign)
	return svc
}

func (s *schedulerService) Start() error {
	ctx := context.Background()
	return s.scheduler.Start(ctx)
}

func (s *schedulerService) Stop() error {
	return s.scheduler.Stop()
}

func (s *schedulerService) IsRunning() bool {
	return s.scheduler.IsRunning()
}

func (s *schedulerService) State() scheduler.State {
	return s.scheduler.State()
}

func (s *schedulerService) executeCampaign(ctx context.Context) error {
	return s.campaign.Run(ctx)
}
