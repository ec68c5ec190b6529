package logger

import (
	"context"
	"log/slog"

	"news-fetcher/utils/security"
)

// urlAttrKeys are attribute keys whose string values are URLs and must be
// sanitized before reaching a log sink.
var urlAttrKeys = map[string]bool{
	"url":      true,
	"feed_url": true,
	"item_url": true,
	"link":     true,
	"location": true,
}

// SafeInfo logs at info level with URL-valued attributes sanitized.
func SafeInfo(msg string, args ...any) {
	logger().Info(msg, sanitizeArgs(args)...)
}

// SafeWarn logs at warn level with URL-valued attributes sanitized.
func SafeWarn(msg string, args ...any) {
	logger().Warn(msg, sanitizeArgs(args)...)
}

// SafeError logs at error level with URL-valued attributes sanitized.
func SafeError(msg string, args ...any) {
	logger().Error(msg, sanitizeArgs(args)...)
}

// SafeInfoContext is SafeInfo with the caller's context attached.
func SafeInfoContext(ctx context.Context, msg string, args ...any) {
	logger().InfoContext(ctx, msg, sanitizeArgs(args)...)
}

// SafeErrorContext is SafeError with the caller's context attached.
func SafeErrorContext(ctx context.Context, msg string, args ...any) {
	logger().ErrorContext(ctx, msg, sanitizeArgs(args)...)
}

func logger() *slog.Logger {
	if Logger != nil {
		return Logger
	}
	return slog.Default()
}

func sanitizeArgs(args []any) []any {
	out := make([]any, len(args))
	copy(out, args)
	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok || !urlAttrKeys[key] {
			continue
		}
		if value, ok := out[i+1].(string); ok {
			out[i+1] = security.SanitizeURLForLogging(value)
		}
	}
	return out
}
