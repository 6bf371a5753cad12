// Package handler provides HTTP request handlers for the application.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/wa-broadcast/internal/api"
	"github.com/popeskul/wa-broadcast/internal/middleware"
	"github.com/popeskul/wa-broadcast/internal/service"
)

const errorMessageFailedToReadStatus = "Failed to read message status"

type Handler struct {
	service *service.Service
	logger  *zap.Logger
}

// NewHandler creates a new handler instance that implements api.ServerInterface.
func NewHandler(service *service.Service, logger *zap.Logger) api.ServerInterface {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// GetReplies implements api.ServerInterface.
func (h *Handler) GetReplies(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, h.service.Query.GetReplies())
}

// GetMessageStatus implements api.ServerInterface. The persisted ledger is
// written as is, without decoding.
func (h *Handler) GetMessageStatus(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.Query.GetMessageStatus()
	if err != nil {
		h.logger.Error("Failed to read message status",
			zap.String("request_id", middleware.GetRequestID(r.Context())),
			zap.Error(err))
		h.sendError(w, r, http.StatusInternalServerError, middleware.ErrorCodeInternal, errorMessageFailedToReadStatus)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// HealthCheck implements api.ServerInterface.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.service.Health.GetHealth()

	response := api.HealthResponse{
		Status:    health.Status,
		Timestamp: time.Now(),
	}

	if health.CampaignStatus != "" {
		status := health.CampaignStatus
		response.CampaignStatus = &status
	}

	if health.StorageStatus != "" {
		status := health.StorageStatus
		response.StorageStatus = &status
	}

	if health.MessengerStatus != "" {
		status := health.MessengerStatus
		response.MessengerStatus = &status
	}

	if health.CircuitBreakerStatus != "" {
		response.CircuitBreakerStatus = &health.CircuitBreakerStatus
	}

	if health.CircuitBreakerState != "" {
		state := health.CircuitBreakerState
		response.CircuitBreakerState = &state
	}

	// Degraded still answers 200 so the query endpoints stay in rotation.
	if health.Status == api.Unhealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}

	render.JSON(w, r, response)
}

func (h *Handler) sendError(w http.ResponseWriter, r *http.Request, statusCode int, errorCode, message string) {
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:   errorCode,
		Message: message,
		Timestamp: func() *time.Time {
			t := time.Now()
			return &t
		}(),
	})
}
