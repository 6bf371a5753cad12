package middleware

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/popeskul/wa-broadcast/internal/config"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RateLimit      rate.Limit
	RateLimitBurst int

	RequestTimeout time.Duration
}

// NewConfig builds the middleware configuration from the application config.
func NewConfig(cfg *config.MiddlewareConfig, logger *zap.Logger) *Config {
	mw := &Config{
		Logger:         logger,
		RateLimit:      rate.Limit(cfg.RateLimit),
		RateLimitBurst: cfg.RateLimitBurst,
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
	}

	if cfg.EnableCORS {
		mw.CORS = DefaultCORSConfig()
		if len(cfg.AllowedOrigins) > 0 {
			mw.CORS.AllowedOrigins = cfg.AllowedOrigins
		}
	}

	return mw
}

// Chain creates a middleware chain with all configured middleware. The rate
// limiter's cleanup stops when ctx is done.
func Chain(ctx context.Context, config *Config) func(http.Handler) http.Handler {
	rateLimiter := NewRateLimiter(ctx, config.RateLimit, config.RateLimitBurst)

	return func(handler http.Handler) http.Handler {
		// outermost last
		h := handler

		h = Timeout(config.RequestTimeout)(h)

		h = rateLimiter.Middleware()(h)

		if config.CORS != nil {
			h = CORS(config.CORS)(h)
		}

		h = Recovery(config.Logger)(h)

		h = Logger(config.Logger)(h)

		h = RequestID(h)

		return h
	}
}
