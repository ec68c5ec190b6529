package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	err := ValidationError("bad input", nil, nil)
	assert.Equal(t, "VALIDATION_ERROR: bad input", err.Error())

	wrapped := ExternalAPIError("fetch failed", errors.New("connection refused"), nil)
	assert.Contains(t, wrapped.Error(), "EXTERNAL_API_ERROR")
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := TimeoutError("timed out", cause, nil)

	assert.True(t, errors.Is(err, cause))
}

func TestAppError_Codes(t *testing.T) {
	tests := []struct {
		err  *AppError
		code ErrorCode
	}{
		{ValidationError("m", nil, nil), ErrCodeValidation},
		{ExternalAPIError("m", nil, nil), ErrCodeExternalAPI},
		{TimeoutError("m", nil, nil), ErrCodeTimeout},
		{ResponseTooLargeError("m", nil, nil), ErrCodeResponseTooLarge},
		{NotFoundError("m", nil, nil), ErrCodeNotFound},
		{ForbiddenError("m", nil, nil), ErrCodeForbidden},
		{UnknownError("m", nil, nil), ErrCodeUnknown},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
		})
	}
}

func TestAppError_Context(t *testing.T) {
	err := ValidationError("rejected", nil, map[string]interface{}{"reason": "blocked_ip"})
	assert.Equal(t, "blocked_ip", err.Context["reason"])
}
