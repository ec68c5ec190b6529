package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"news-fetcher/domain"
	apperrors "news-fetcher/utils/errors"
	"news-fetcher/utils/logger"
)

// ErrorResponse is the JSON error body returned by every handler. Messages
// never echo the offending URL back; the sanitized form only appears in
// server-side logs.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// handleError converts errors to HTTP responses using the error taxonomy.
func handleError(c echo.Context, err error, operation string) error {
	appErr := classify(err)
	apperrors.LogError(logger.Logger, appErr, operation)

	return c.JSON(statusFor(appErr.Code), ErrorResponse{
		Error: appErr.Message,
		Code:  string(appErr.Code),
	})
}

func classify(err error) *apperrors.AppError {
	var vErr *domain.URLValidationError
	if errors.As(err, &vErr) {
		return apperrors.ValidationError("URL was rejected by the outbound policy", err, map[string]interface{}{
			"reason": string(vErr.Reason),
		})
	}

	var tooLarge *domain.ResponseTooLargeError
	if errors.As(err, &tooLarge) {
		return apperrors.ResponseTooLargeError("remote response exceeded the size limit", err, map[string]interface{}{
			"limit": tooLarge.Limit,
		})
	}

	var httpErr *domain.OutboundHTTPError
	if errors.As(err, &httpErr) {
		return apperrors.ExternalAPIError("upstream fetch failed", err, map[string]interface{}{
			"kind":   string(httpErr.Kind),
			"status": httpErr.StatusCode,
		})
	}

	switch {
	case errors.Is(err, domain.ErrRobotsDisallowed):
		return apperrors.ForbiddenError("fetch disallowed by robots.txt", err, nil)
	case errors.Is(err, domain.ErrFeedNotAllowed):
		return apperrors.ForbiddenError("feed URL is not in the configured feed list", err, nil)
	case errors.Is(err, domain.ErrKeywordNotFound):
		return apperrors.NotFoundError("no feed item matched the keyword", err, nil)
	case errors.Is(err, domain.ErrNoFeedsConfigured):
		return apperrors.NotFoundError("no RSS feeds configured", err, nil)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.TimeoutError("operation timed out", err, nil)
	}

	return apperrors.UnknownError("internal server error", err, nil)
}

func statusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeExternalAPI, apperrors.ErrCodeResponseTooLarge:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
