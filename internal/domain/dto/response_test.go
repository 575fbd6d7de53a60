package dto

import (
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/guttosm/cart-sync/internal/domain/model"
	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_WithRequestID(t *testing.T) {
	err := NewError(ErrCodeInternal, "test error").WithRequestID("test-id")

	assert.Equal(t, "test-id", err.RequestID)
	assert.Equal(t, ErrCodeInternal, err.Error)
	assert.Equal(t, "test error", err.Message)
}

func TestErrCodeFromStatus(t *testing.T) {
	tests := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, ErrCodeInvalidRequest},
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusUnprocessableEntity, ErrCodeUnprocessable},
		{http.StatusTooManyRequests, ErrCodeRateLimit},
		{http.StatusBadGateway, ErrCodeBadGateway},
		{http.StatusGatewayTimeout, ErrCodeTimeout},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusServiceUnavailable, ErrCodeUnavailable},
		{http.StatusRequestTimeout, ErrCodeTimeout},
		{http.StatusTeapot, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(strconv.Itoa(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expectedCode, ErrCodeFromStatus(tt.status))
		})
	}
}

func TestNewError(t *testing.T) {
	err := NewError(ErrCodeInvalidRequest, "test message")

	assert.Equal(t, ErrCodeInvalidRequest, err.Error)
	assert.Equal(t, "test message", err.Message)
	assert.WithinDuration(t, time.Now(), err.Timestamp, time.Second)
}

func TestStatusForOutcome(t *testing.T) {
	tests := []struct {
		outcome  model.OutcomeStatus
		expected int
	}{
		{model.OutcomeApplied, http.StatusOK},
		{model.OutcomeSuperseded, http.StatusOK},
		{model.OutcomeInvalid, http.StatusUnprocessableEntity},
		{model.OutcomeRejected, http.StatusConflict},
		{model.OutcomeAuthRequired, http.StatusUnauthorized},
		{model.OutcomeFailed, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(string(tt.outcome), func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusForOutcome(tt.outcome))
		})
	}
}
