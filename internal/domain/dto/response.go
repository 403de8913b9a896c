package dto

import (
	"net/http"
	"time"

	"github.com/guttosm/pressure-drop-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeNumericDegenerate indicates valid input whose calculation produced NaN or Inf.
	ErrCodeNumericDegenerate = "numeric_degenerate"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeUnavailable indicates a dependency such as the database is not available.
	ErrCodeUnavailable = "service_unavailable"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_request"`
	Message string `json:"message,omitempty" example:"mass_flow: must be greater than 0"`
	// Details maps a field name to its error message
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2025-01-28T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// CalculateResponse is the body of a successful calculation.
// @Description Normalized SI pipeline and its calculated result
type CalculateResponse struct {
	Pipeline model.Pipeline       `json:"pipeline"`
	Result   model.PipelineResult `json:"result"`
} // @name CalculateResponse

// ReportResponse is the body of a successful report request.
// @Description Calculated result and its tabular report rows
type ReportResponse struct {
	Result model.PipelineResult `json:"result"`
	Rows   []model.ReportRow    `json:"rows"`
} // @name ReportResponse

// SettingsResponse describes the calculation settings in effect.
// @Description Calculation settings and their stored version
type SettingsResponse struct {
	Gravity        float64 `json:"gravity" example:"9.8"`
	LaminarFormula string  `json:"laminar_formula" example:"literal"`
	// Version is 0 when the settings come from configuration rather than storage
	Version   int        `json:"version" example:"3"`
	CreatedAt *time.Time `json:"created_at,omitempty" example:"2025-01-28T10:00:00Z"`
	CreatedBy string     `json:"created_by,omitempty" example:"plant-a"`
} // @name SettingsResponse

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

// WithDetails attaches per-field error details.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusUnprocessableEntity:
		return ErrCodeNumericDegenerate
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	case http.StatusServiceUnavailable:
		return ErrCodeUnavailable
	default:
		return ErrCodeInternal
	}
}

// LogsResponse is one page of stored request and audit log entries.
// @Description Page of log entries
type LogsResponse struct {
	Entries []model.LogEntry `json:"entries"`
	// Total counts every entry matching the filter, ignoring limit and skip
	Total int64 `json:"total" example:"42"`
	Limit int   `json:"limit" example:"50"`
	Skip  int   `json:"skip" example:"0"`
} // @name LogsResponse
