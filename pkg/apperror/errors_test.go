package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("WHK_002", "Malformed webhook payload", http.StatusBadRequest),
			expected: "[WHK_002] Malformed webhook payload",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "Datastore error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] Datastore error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("WHK_002", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestSecurityErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"InvalidSignature", ErrInvalidSignature(), "SEC_001", 401},
		{"SignatureMissing", ErrSignatureMissing(), "SEC_002", 401},
		{"TimestampExpired", ErrTimestampExpired(), "SEC_003", 401},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestWebhookErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"UnknownProvider", ErrUnknownProvider("acme"), "WHK_001", 404},
		{"MalformedPayload", ErrMalformedPayload(), "WHK_002", 400},
		{"DeliveryNotFound", ErrDeliveryNotFound(), "WHK_003", 404},
		{"DeliveryNotCancellable", ErrDeliveryNotCancellable(), "WHK_004", 409},
		{"InvalidDelayRange", ErrInvalidDelayRange(), "WHK_005", 400},
		{"InvalidOutcome", ErrInvalidOutcome("maybe"), "WHK_006", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestUnknownProviderMessage(t *testing.T) {
	err := ErrUnknownProvider("acme_verify")
	assert.Contains(t, err.Message, "acme_verify")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatastore(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))
}

func TestRateLimitError(t *testing.T) {
	err := ErrRateLimitExceeded()
	assert.Equal(t, "RATE_001", err.Code)
	assert.Equal(t, 429, err.HTTPStatus)
}
