package service

import "github.com/popeskul/wa-broadcast/internal/api"

type HealthStatus struct {
	Status               api.HealthResponseStatus              `json:"status"`
	CampaignStatus       api.HealthResponseCampaignStatus      `json:"campaign_status"`
	StorageStatus        api.HealthResponseStorageStatus       `json:"storage_status"`
	MessengerStatus      api.HealthResponseMessengerStatus     `json:"messenger_status"`
	CircuitBreakerStatus string                                `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  api.HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
}
