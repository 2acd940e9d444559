package dto

import (
	"net/http"
	"time"
)

// Error codes carried in ErrorResponse.Error. The page script branches on them.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeUnknownItem    = "unknown_item"
	ErrCodeValidation     = "validation_failed"
	ErrCodeConflict       = "conflict"
	ErrCodeRateLimit      = "rate_limit_exceeded"
	ErrCodeTimeout        = "timeout"
	ErrCodeInternal       = "internal_error"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:          ErrCodeInvalidRequest,
	http.StatusConflict:            ErrCodeConflict,
	http.StatusUnprocessableEntity: ErrCodeValidation,
	http.StatusTooManyRequests:     ErrCodeRateLimit,
	http.StatusRequestTimeout:      ErrCodeTimeout,
	http.StatusGatewayTimeout:      ErrCodeTimeout,
}

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"Seu carrinho está vazio!"`
	// Details contains additional error details (optional)
	Details map[string]string `json:"details,omitempty"`
	// Data carries the refreshed session view when the failure still changed what
	// the visitor should see.
	Data      interface{} `json:"data,omitempty" swaggertype:"object"`
	RequestID string      `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time   `json:"timestamp" example:"2026-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithData attaches a payload to the error response.
func (e ErrorResponse) WithData(data interface{}) ErrorResponse {
	e.Data = data
	return e
}

// ErrCodeFromStatus maps an HTTP status to its error code. Unlisted statuses are internal
// errors.
func ErrCodeFromStatus(status int) string {
	if code, ok := statusCodes[status]; ok {
		return code
	}
	return ErrCodeInternal
}
