package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/time/rate"

	"github.com/popeskul/wa-broadcast/internal/api"
	"github.com/popeskul/wa-broadcast/internal/config"
	"github.com/popeskul/wa-broadcast/internal/middleware"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func decodeError(t *testing.T, body []byte) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated when missing"},
		{name: "propagated", incoming: "abc-123", keep: true},
		{name: "replaced when too long", incoming: strings.Repeat("x", 200)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen string
			handler := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = middleware.GetRequestID(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/replies", nil)
			if tt.incoming != "" {
				req.Header.Set(middleware.RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestGetRequestID_Missing(t *testing.T) {
	assert.Empty(t, middleware.GetRequestID(context.Background()))
}

func TestRateLimiter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rl := middleware.NewRateLimiter(ctx, rate.Limit(1), 1)
	handler := rl.Middleware()(okHandler())

	send := func(remoteAddr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/replies", nil)
		req.RemoteAddr = remoteAddr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send("127.0.0.1:1234").Code)

	// Another port on the same host shares the bucket.
	w := send("127.0.0.1:5678")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Equal(t, middleware.ErrorCodeRateLimitExceeded, decodeError(t, w.Body.Bytes()).Error)

	assert.Equal(t, http.StatusOK, send("10.0.0.2:1234").Code)

	time.Sleep(time.Second)
	assert.Equal(t, http.StatusOK, send("127.0.0.1:1234").Code)
}

func TestCORS(t *testing.T) {
	cfg := middleware.DefaultCORSConfig()
	cfg.AllowedOrigins = []string{"http://dashboard.local"}
	handler := middleware.CORS(cfg)(okHandler())

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/message-status", nil)
		req.Header.Set("Origin", "http://dashboard.local")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, HEAD, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})

	t.Run("simple request", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/replies", nil)
		req.Header.Set("Origin", "http://dashboard.local")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, middleware.RequestIDHeader, w.Header().Get("Access-Control-Expose-Headers"))
	})

	t.Run("disallowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/replies", nil)
		req.Header.Set("Origin", "http://evil.local")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRecovery(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	handler := middleware.Recovery(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/replies", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, middleware.ErrorCodeInternal, decodeError(t, w.Body.Bytes()).Error)
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}

func TestTimeout(t *testing.T) {
	t.Run("slow handler", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		handler := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
			}
			_, _ = w.Write([]byte("late"))
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/replies", nil))

		assert.Equal(t, http.StatusRequestTimeout, w.Code)
		assert.Equal(t, middleware.ErrorCodeRequestTimeout, decodeError(t, w.Body.Bytes()).Error)
	})

	t.Run("fast handler", func(t *testing.T) {
		handler := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("[]"))
		}))

		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/replies", nil))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		assert.Equal(t, "[]", w.Body.String())
	})

	t.Run("disabled", func(t *testing.T) {
		next := okHandler()
		w := httptest.NewRecorder()
		middleware.Timeout(0)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  zapcore.Level
	}{
		{name: "success", status: http.StatusOK, level: zapcore.InfoLevel},
		{name: "client error", status: http.StatusNotFound, level: zapcore.WarnLevel},
		{name: "server error", status: http.StatusInternalServerError, level: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			handler := middleware.RequestID(middleware.Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			})))

			req := httptest.NewRequest(http.MethodGet, "/replies", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-1")
			handler.ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.All()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, "req-1", fields["request_id"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, int64(4), fields["bytes"])
		})
	}
}

func TestChain(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := middleware.NewConfig(&config.MiddlewareConfig{
		RateLimit:      100,
		RateLimitBurst: 100,
		RequestTimeout: 5,
		EnableCORS:     true,
	}, zap.NewNop())
	require.NotNil(t, cfg.CORS)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)

	handler := middleware.Chain(ctx, cfg)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/replies", nil)
	req.Header.Set("Origin", "http://dashboard.local")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "http://dashboard.local", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewConfig_CORSDisabled(t *testing.T) {
	cfg := middleware.NewConfig(&config.MiddlewareConfig{RateLimit: 1, RateLimitBurst: 1}, zap.NewNop())
	assert.Nil(t, cfg.CORS)
	assert.Equal(t, time.Duration(0), cfg.RequestTimeout)
}
