package service

import (
	"fmt"

	"github.com/popeskul/wa-broadcast/internal/api"
	"github.com/popeskul/wa-broadcast/internal/repository"
	"github.com/popeskul/wa-broadcast/internal/scheduler"
)

type healthService struct {
	repo             repository.Repository
	messenger        Messenger
	schedulerService SchedulerService
	campaignService  CampaignService
}

func NewHealthService(
	repo repository.Repository,
	messenger Messenger,
	schedulerService SchedulerService,
	campaignService CampaignService,
) HealthService {
	return &healthService{
		repo:             repo,
		messenger:        messenger,
		schedulerService: schedulerService,
		campaignService:  campaignService,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: api.Healthy,
	}

	switch s.schedulerService.State() {
	case scheduler.StateRunning:
		status.CampaignStatus = api.HealthResponseCampaignStatusRunning
	case scheduler.StateCompleted:
		status.CampaignStatus = api.HealthResponseCampaignStatusCompleted
	default:
		status.CampaignStatus = api.HealthResponseCampaignStatusIdle
	}

	status.StorageStatus = s.checkStorageHealth()
	status.MessengerStatus = s.checkMessengerHealth()

	state, requests, failures := s.campaignService.GetCircuitBreakerStatus()
	status.CircuitBreakerState = state
	if requests > 0 {
		failureRate := float64(failures) / float64(requests) * 100
		status.CircuitBreakerStatus = fmt.Sprintf("Requests: %d, Failures: %d (%.1f%%)", requests, failures, failureRate)
	} else {
		status.CircuitBreakerStatus = "No requests yet"
	}

	if status.StorageStatus != api.HealthResponseStorageStatusConnected {
		status.Status = api.Unhealthy
		return status
	}

	if status.MessengerStatus != api.HealthResponseMessengerStatusConnected || state == api.Open {
		status.Status = api.Degraded
	}

	return status
}

func (s *healthService) checkStorageHealth() api.HealthResponseStorageStatus {
	if err := s.repo.Ping(); err != nil {
		return api.HealthResponseStorageStatusDisconnected
	}
	return api.HealthResponseStorageStatusConnected
}

func (s *healthService) checkMessengerHealth() api.HealthResponseMessengerStatus {
	if !s.messenger.IsConnected() {
		return api.HealthResponseMessengerStatusDisconnected
	}
	return api.HealthResponseMessengerStatusConnected
}
