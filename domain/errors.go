package domain

import (
	"errors"
	"fmt"
)

var (
	// フィード関連エラー
	ErrNoFeedsConfigured = errors.New("no RSS feeds configured")
	ErrFeedNotAllowed    = errors.New("feed URL is not in the configured feed list")
	ErrKeywordNotFound   = errors.New("no feed item matched the keyword")

	// 記事関連エラー
	ErrRobotsDisallowed = errors.New("fetch disallowed by robots.txt")
)

// ValidationReason categorizes why a candidate URL was rejected.
type ValidationReason string

const (
	ReasonFetchDisabled ValidationReason = "fetch_disabled"
	ReasonSyntax        ValidationReason = "syntax"
	ReasonScheme        ValidationReason = "scheme"
	ReasonUserinfo      ValidationReason = "userinfo"
	ReasonPort          ValidationReason = "port"
	ReasonHostDenied    ValidationReason = "host_denied"
	ReasonAllowlistMiss ValidationReason = "allowlist_miss"
	ReasonDNSFailure    ValidationReason = "dns_failure"
	ReasonBlockedIP     ValidationReason = "blocked_ip"
)

// URLValidationError rejects a candidate URL before any connection is made.
// Message is human-safe: it never carries credentials or query strings.
type URLValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *URLValidationError) Error() string {
	return fmt.Sprintf("url validation failed (%s): %s", e.Reason, e.Message)
}

// OutboundErrorKind categorizes failures of the controlled fetch itself.
type OutboundErrorKind string

const (
	OutboundKindConnection     OutboundErrorKind = "connection"
	OutboundKindStatus         OutboundErrorKind = "status"
	OutboundKindRedirectDenied OutboundErrorKind = "redirect_denied"
	OutboundKindRedirectLimit  OutboundErrorKind = "redirect_limit"
	OutboundKindContentType    OutboundErrorKind = "content_type"
)

// OutboundHTTPError is a failure while talking to the remote peer after the
// URL itself was accepted.
type OutboundHTTPError struct {
	Kind       OutboundErrorKind
	StatusCode int
	Message    string
	Cause      error
}

func (e *OutboundHTTPError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("outbound http error (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("outbound http error (%s): %s", e.Kind, e.Message)
}

func (e *OutboundHTTPError) Unwrap() error {
	return e.Cause
}

// ResponseTooLargeError rejects a response whose declared or observed size
// exceeds the per-purpose byte cap. Declared is -1 when the overflow was
// observed while streaming.
type ResponseTooLargeError struct {
	Limit    int64
	Declared int64
}

func (e *ResponseTooLargeError) Error() string {
	if e.Declared >= 0 {
		return fmt.Sprintf("response too large: declared %d bytes exceeds limit %d", e.Declared, e.Limit)
	}
	return fmt.Sprintf("response too large: body exceeded limit %d while streaming", e.Limit)
}
