package service

import (
	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/config"
	"github.com/popeskul/wa-broadcast/internal/ledger"
	"github.com/popeskul/wa-broadcast/internal/models"
	"github.com/popeskul/wa-broadcast/internal/repository"
)

type Service struct {
	Campaign  CampaignService
	Scheduler SchedulerService
	Query     QueryService
	Health    HealthService
	Events    *EventRouter
}

func NewService(
	cfg *config.Config,
	settings *models.Settings,
	contacts []models.Contact,
	repo repository.Repository,
	messenger Messenger,
	printQR func(code string),
	logger *zap.Logger,
) *Service {
	status := ledger.NewStatusLedger(repo.Snapshot(), cfg.Storage.StatusName)
	replies := ledger.NewReplyLog(repo.Snapshot(), cfg.Storage.RepliesName)

	campaignService := NewCampaignService(cfg, settings, contacts, messenger, status, replies, logger)
	schedulerService := NewSchedulerService(campaignService, logger)
	queryService := NewQueryService(status, replies)
	healthService := NewHealthService(repo, messenger, schedulerService, campaignService)

	return &Service{
		Campaign:  campaignService,
		Scheduler: schedulerService,
		Query:     queryService,
		Health:    healthService,
		Events:    NewEventRouter(campaignService, schedulerService, printQR, logger),
	}
}
