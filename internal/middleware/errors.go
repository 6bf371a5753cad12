package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/popeskul/wa-broadcast/internal/api"
)

// Common error codes used by middleware
const (
	ErrorCodeInternal          = "INTERNAL_ERROR"
	ErrorCodeRateLimitExceeded = "RATE_LIMIT_EXCEEDED"
	ErrorCodeRequestTimeout    = "REQUEST_TIMEOUT"
)

// Common error messages used by middleware
const (
	ErrorMessageInternal          = "An internal error occurred"
	ErrorMessageRateLimitExceeded = "Too many requests"
	ErrorMessageRequestTimeout    = "Request timeout"
)

func writeError(w http.ResponseWriter, r *http.Request, statusCode int, code, message string) {
	now := time.Now()
	render.Status(r, statusCode)
	render.JSON(w, r, api.ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: &now,
	})
}
