// Package api defines the HTTP contract of the broadcast service. It mirrors
// api/openapi.yaml.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Defines values for HealthResponseStatus.
const (
	Degraded  HealthResponseStatus = "degraded"
	Healthy   HealthResponseStatus = "healthy"
	Unhealthy HealthResponseStatus = "unhealthy"
)

// Defines values for HealthResponseCampaignStatus.
const (
	HealthResponseCampaignStatusIdle      HealthResponseCampaignStatus = "idle"
	HealthResponseCampaignStatusRunning   HealthResponseCampaignStatus = "running"
	HealthResponseCampaignStatusCompleted HealthResponseCampaignStatus = "completed"
)

// Defines values for HealthResponseStorageStatus.
const (
	HealthResponseStorageStatusConnected    HealthResponseStorageStatus = "connected"
	HealthResponseStorageStatusDisconnected HealthResponseStorageStatus = "disconnected"
)

// Defines values for HealthResponseMessengerStatus.
const (
	HealthResponseMessengerStatusConnected    HealthResponseMessengerStatus = "connected"
	HealthResponseMessengerStatusDisconnected HealthResponseMessengerStatus = "disconnected"
)

// Defines values for HealthResponseCircuitBreakerState.
const (
	Closed   HealthResponseCircuitBreakerState = "closed"
	HalfOpen HealthResponseCircuitBreakerState = "half-open"
	Open     HealthResponseCircuitBreakerState = "open"
)

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error     string     `json:"error"`
	Message   string     `json:"message"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status               HealthResponseStatus               `json:"status"`
	Timestamp            time.Time                          `json:"timestamp"`
	CampaignStatus       *HealthResponseCampaignStatus      `json:"campaign_status,omitempty"`
	StorageStatus        *HealthResponseStorageStatus       `json:"storage_status,omitempty"`
	MessengerStatus      *HealthResponseMessengerStatus     `json:"messenger_status,omitempty"`
	CircuitBreakerStatus *string                            `json:"circuit_breaker_status,omitempty"`
	CircuitBreakerState  *HealthResponseCircuitBreakerState `json:"circuit_breaker_state,omitempty"`
}

type HealthResponseStatus string

type HealthResponseCampaignStatus string

type HealthResponseStorageStatus string

type HealthResponseMessengerStatus string

type HealthResponseCircuitBreakerState string

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Health check
	// (GET /health)
	HealthCheck(w http.ResponseWriter, r *http.Request)
	// Delivery status of every contact, as last persisted
	// (GET /message-status)
	GetMessageStatus(w http.ResponseWriter, r *http.Request)
	// Replies received from contacts
	// (GET /replies)
	GetReplies(w http.ResponseWriter, r *http.Request)
}

// Handler creates http.Handler with routing matching the API contract.
func Handler(si ServerInterface) http.Handler {
	return HandlerFromMux(si, chi.NewRouter())
}

// HandlerFromMux registers the API routes on r and returns it.
func HandlerFromMux(si ServerInterface, r chi.Router) http.Handler {
	r.Get("/health", si.HealthCheck)
	r.Get("/message-status", si.GetMessageStatus)
	r.Get("/replies", si.GetReplies)
	return r
}
