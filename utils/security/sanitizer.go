package security

import (
	"net/url"
	"strings"
)

// MaxLogURLChars bounds the length of any URL that reaches a log sink.
const MaxLogURLChars = 200

// SanitizeURLForLogging renders a URL safe to log: query string, fragment
// and userinfo are stripped, control characters removed, whitespace
// collapsed, and the result truncated to MaxLogURLChars runes. The function
// is pure and idempotent under repeated application.
func SanitizeURLForLogging(rawURL string) string {
	s := strings.Map(func(r rune) rune {
		switch {
		case r == '\r' || r == '\n' || r == '\t':
			return ' '
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, rawURL)
	s = strings.Join(strings.Fields(s), " ")

	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		u.User = nil
		u.RawQuery = ""
		u.ForceQuery = false
		u.Fragment = ""
		u.RawFragment = ""
		s = u.String()
	}

	runes := []rune(s)
	if len(runes) > MaxLogURLChars {
		s = strings.TrimRight(string(runes[:MaxLogURLChars-3]), " ") + "..."
	}
	return s
}
