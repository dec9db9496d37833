package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Webhook Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_001", "Invalid webhook signature", http.StatusUnauthorized)
}

func ErrSignatureMissing() *AppError {
	return New("SEC_002", "Signature header missing", http.StatusUnauthorized)
}

func ErrTimestampExpired() *AppError {
	return New("SEC_003", "Webhook timestamp outside tolerance window", http.StatusUnauthorized)
}

// ---- Webhook Processing (WHK) ----

func ErrUnknownProvider(provider string) *AppError {
	return New("WHK_001", fmt.Sprintf("Unknown provider: %s", provider), http.StatusNotFound)
}

func ErrMalformedPayload() *AppError {
	return New("WHK_002", "Malformed webhook payload", http.StatusBadRequest)
}

func ErrDeliveryNotFound() *AppError {
	return New("WHK_003", "Scheduled delivery not found", http.StatusNotFound)
}

func ErrDeliveryNotCancellable() *AppError {
	return New("WHK_004", "Delivery already fired or cancelled", http.StatusConflict)
}

func ErrInvalidDelayRange() *AppError {
	return New("WHK_005", "Invalid delivery delay range", http.StatusBadRequest)
}

func ErrInvalidOutcome(outcome string) *AppError {
	return New("WHK_006", fmt.Sprintf("Unsupported verification outcome: %s", outcome), http.StatusBadRequest)
}

func ErrUnknownCheck() *AppError {
	return New("WHK_007", "No verification check matches the webhook reference", http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatastore(err error) *AppError {
	return Wrap("SYS_001", "Internal datastore error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a WHK_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("WHK_002", message, http.StatusBadRequest)
}
