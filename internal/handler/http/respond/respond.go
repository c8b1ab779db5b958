// Package respond provides utilities for sending HTTP responses in JSON format.
// Every response carries a success envelope; error responses include a stable
// machine-readable code and are sanitized to prevent leaking credentials.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"profeed/internal/domain/entity"
)

// Machine-readable error codes returned in the error envelope.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeUserNotFound    = "USER_NOT_FOUND"
	CodeProfileNotFound = "PROFILE_NOT_FOUND"
	CodeDuplicate       = "DUPLICATE_PROFILE"
	CodeInternal        = "INTERNAL_ERROR"
)

// ErrorDetail is the error object nested inside a failure envelope.
type ErrorDetail struct {
	Code    string                   `json:"code"`
	Message string                   `json:"message"`
	Details any                      `json:"details,omitempty"`
	Errors  []entity.ValidationError `json:"errors,omitempty"`
}

type errorEnvelope struct {
	Success bool        `json:"success"`
	Error   ErrorDetail `json:"error"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent, so the failure can only be logged
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Error writes a failure envelope with the given status, code, and message.
func Error(w http.ResponseWriter, status int, code, message string) {
	JSON(w, status, errorEnvelope{Error: ErrorDetail{Code: code, Message: message}})
}

// ErrorWithDetails writes a failure envelope carrying additional detail data,
// such as the offending value of a rejected field.
func ErrorWithDetails(w http.ResponseWriter, status int, code, message string, details any) {
	JSON(w, status, errorEnvelope{Error: ErrorDetail{Code: code, Message: message, Details: details}})
}

// ValidationFailed writes a 400 failure envelope listing every field
// violation. The violations are gathered exhaustively, not first-failure.
func ValidationFailed(w http.ResponseWriter, violations []entity.ValidationError) {
	JSON(w, http.StatusBadRequest, errorEnvelope{Error: ErrorDetail{
		Code:    CodeValidationError,
		Message: "validation failed",
		Errors:  violations,
	}})
}

// Internal logs the sanitized error and writes a generic 500 failure
// envelope. The original error never reaches the client.
func Internal(w http.ResponseWriter, err error) {
	slog.Default().Error("internal server error",
		slog.String("error", SanitizeError(err)))
	Error(w, http.StatusInternalServerError, CodeInternal, "internal server error")
}
