// Package errors provides structured error handling for the news-fetcher
// service. It defines error codes used by the REST layer to map internal
// failures to responses without leaking URL or credential detail.
package errors

import (
	"fmt"
	"log/slog"
)

// ErrorCode represents a categorized error type for structured error handling.
type ErrorCode string

const (
	ErrCodeValidation       ErrorCode = "VALIDATION_ERROR"
	ErrCodeExternalAPI      ErrorCode = "EXTERNAL_API_ERROR"
	ErrCodeTimeout          ErrorCode = "TIMEOUT_ERROR"
	ErrCodeResponseTooLarge ErrorCode = "RESPONSE_TOO_LARGE_ERROR"
	ErrCodeNotFound         ErrorCode = "NOT_FOUND_ERROR"
	ErrCodeForbidden        ErrorCode = "FORBIDDEN_ERROR"
	ErrCodeUnknown          ErrorCode = "UNKNOWN_ERROR"
)

// AppError represents a structured application error with code, message,
// cause, and context. It implements the error interface and supports
// error unwrapping.
type AppError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error returns a string representation of the AppError.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for use with errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// ValidationError creates an AppError for rejected candidate URLs.
func ValidationError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeValidation, Message: message, Cause: cause, Context: context}
}

// ExternalAPIError creates an AppError for outbound HTTP failures.
func ExternalAPIError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeExternalAPI, Message: message, Cause: cause, Context: context}
}

// TimeoutError creates an AppError for timeout-related errors.
func TimeoutError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeTimeout, Message: message, Cause: cause, Context: context}
}

// ResponseTooLargeError creates an AppError for oversized responses.
func ResponseTooLargeError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeResponseTooLarge, Message: message, Cause: cause, Context: context}
}

// NotFoundError creates an AppError for missing results.
func NotFoundError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeNotFound, Message: message, Cause: cause, Context: context}
}

// ForbiddenError creates an AppError for policy refusals.
func ForbiddenError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeForbidden, Message: message, Cause: cause, Context: context}
}

// UnknownError creates an AppError for unclassified errors.
func UnknownError(message string, cause error, context map[string]interface{}) *AppError {
	return &AppError{Code: ErrCodeUnknown, Message: message, Cause: cause, Context: context}
}

// LogError logs an AppError with structured logging and context.
func LogError(logger *slog.Logger, err error, operation string) {
	if logger == nil {
		return
	}

	if appErr, ok := err.(*AppError); ok {
		args := []interface{}{
			"operation", operation,
			"error_code", string(appErr.Code),
			"error_message", appErr.Message,
		}
		if appErr.Context != nil {
			for key, value := range appErr.Context {
				args = append(args, key, value)
			}
		}
		if appErr.Cause != nil {
			args = append(args, "cause", appErr.Cause.Error())
		}
		logger.Error("application error occurred", args...)
	} else {
		logger.Error("unknown error occurred",
			"operation", operation,
			"error", err.Error(),
		)
	}
}
