//go:build !integration

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLevelForStatus(t *testing.T) {
	tests := []struct {
		status   int
		expected zerolog.Level
	}{
		{status: http.StatusOK, expected: zerolog.InfoLevel},
		{status: http.StatusCreated, expected: zerolog.InfoLevel},
		{status: http.StatusFound, expected: zerolog.InfoLevel},
		{status: http.StatusUnprocessableEntity, expected: zerolog.WarnLevel},
		{status: http.StatusConflict, expected: zerolog.WarnLevel},
		{status: http.StatusBadGateway, expected: zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, levelForStatus(tt.status))
		})
	}
}

func newTestSink(t *testing.T) (*AsyncLogger, *MockLoggingService) {
	t.Helper()
	mockService := &MockLoggingService{}
	mockService.On("CreateLogs", mock.Anything, mock.Anything).Return(nil)
	sink := NewAsyncLogger(mockService, AsyncLoggerConfig{
		BufferSize:    10,
		NumWorkers:    1,
		BatchSize:     10,
		FlushInterval: time.Hour,
		WriteTimeout:  time.Second,
	})
	return sink, mockService
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name          string
		statusCode    int
		sessionID     string
		outcome       string
		handlerErr    error
		expectedLevel string
	}{
		{name: "applied action logs info", statusCode: http.StatusOK, sessionID: "s1", outcome: "applied", expectedLevel: "info"},
		{name: "rejected action logs warn", statusCode: http.StatusConflict, sessionID: "s1", outcome: "rejected", expectedLevel: "warn"},
		{name: "upstream failure logs error", statusCode: http.StatusBadGateway, outcome: "failed", expectedLevel: "error"},
		{name: "store error is recorded", statusCode: http.StatusInternalServerError, sessionID: "s2", handlerErr: errors.New("mongo down"), expectedLevel: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, mockService := newTestSink(t)

			router := gin.New()
			router.Use(RequestID(), RequestLogger(sink))
			router.PUT("/api/cart/items/:id", func(c *gin.Context) {
				if tt.sessionID != "" {
					c.Set(SessionIDKey, tt.sessionID)
				}
				if tt.outcome != "" {
					c.Set(OutcomeKey, tt.outcome)
				}
				if tt.handlerErr != nil {
					_ = c.Error(tt.handlerErr)
				}
				c.Status(tt.statusCode)
			})

			req := httptest.NewRequest(http.MethodPut, "/api/cart/items/B1", nil)
			req.Header.Set(RequestIDHeader, "req-1")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)
			sink.Stop()

			assert.Equal(t, tt.statusCode, w.Code)
			entries := mockService.Entries()
			require.Len(t, entries, 1)
			e := entries[0]
			assert.Equal(t, tt.expectedLevel, e.Level)
			assert.Equal(t, "req-1", e.RequestID)
			assert.Equal(t, tt.sessionID, e.SessionID)
			assert.Equal(t, http.MethodPut, e.Method)
			assert.Equal(t, "/api/cart/items/:id", e.Path)
			assert.Equal(t, tt.statusCode, e.StatusCode)
			assert.Equal(t, tt.outcome, e.Outcome)
			if tt.handlerErr != nil {
				assert.Equal(t, tt.handlerErr.Error(), e.Error)
			} else {
				assert.Empty(t, e.Error)
			}
		})
	}
}

func TestRequestLogger_SkippedPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sink, mockService := newTestSink(t)

	router := gin.New()
	router.Use(RequestID(), RequestLogger(sink, "/healthz", "/metrics"))
	router.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	router.GET("/api/cart", func(c *gin.Context) { c.String(http.StatusOK, "{}") })

	for _, path := range []string{"/healthz", "/api/cart", "/metrics"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	sink.Stop()

	entries := mockService.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "/api/cart", entries[0].Path)
}

func TestRequestLogger_NilSink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), RequestLogger(nil))
	router.GET("/api/cart", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/cart", nil))
	})
	assert.Equal(t, http.StatusOK, w.Code)
}
