package security

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"

	"news-fetcher/config"
	"news-fetcher/domain"
)

// localDomainSuffixes are hostname suffixes that always resolve inside the
// deployment network and are denied without DNS resolution.
var localDomainSuffixes = []string{".local", ".internal"}

// NormalizeHostname lowercases and NFKC-folds a hostname, then converts it
// to its IDNA ASCII form so Unicode spellings cannot dodge string checks.
// IP literals are returned unchanged.
func NormalizeHostname(host string) (string, error) {
	h := strings.ToLower(strings.TrimSpace(host))
	if h == "" {
		return "", fmt.Errorf("empty hostname")
	}
	if net.ParseIP(strings.Trim(h, "[]")) != nil {
		return strings.Trim(h, "[]"), nil
	}
	folded := norm.NFKC.String(h)
	ascii, err := idna.Lookup.ToASCII(strings.TrimSuffix(folded, "."))
	if err != nil {
		return "", fmt.Errorf("invalid internationalized hostname: %w", err)
	}
	if strings.HasSuffix(folded, ".") {
		ascii += "."
	}
	return ascii, nil
}

// CheckURLSyntax applies the network-free part of the outbound policy:
// scheme allowlist, userinfo ban, hostname denylist and port restrictions.
// It runs before DNS resolution so syntactically unsafe input fails fast.
func CheckURLSyntax(u *url.URL, cfg *config.FetchConfig) error {
	scheme := strings.ToLower(u.Scheme)
	if scheme == "" || !schemeAllowed(scheme, cfg.AllowedSchemes) {
		return &domain.URLValidationError{
			Reason:  domain.ReasonScheme,
			Message: fmt.Sprintf("scheme %q is not allowed", scheme),
		}
	}

	if u.User != nil {
		return &domain.URLValidationError{
			Reason:  domain.ReasonUserinfo,
			Message: "URLs with embedded credentials are not allowed",
		}
	}

	host, err := NormalizeHostname(u.Hostname())
	if err != nil {
		return &domain.URLValidationError{
			Reason:  domain.ReasonSyntax,
			Message: "hostname is missing or malformed",
		}
	}

	if host == "localhost" || host == "localhost." {
		return &domain.URLValidationError{
			Reason:  domain.ReasonHostDenied,
			Message: "localhost destinations are not allowed",
		}
	}
	for _, suffix := range localDomainSuffixes {
		if strings.HasSuffix(strings.TrimSuffix(host, "."), suffix) {
			return &domain.URLValidationError{
				Reason:  domain.ReasonHostDenied,
				Message: "local domain destinations are not allowed",
			}
		}
	}

	if port := u.Port(); port != "" {
		if !portAllowed(port, cfg.AllowedSchemes) {
			return &domain.URLValidationError{
				Reason:  domain.ReasonPort,
				Message: fmt.Sprintf("port %s is not allowed", port),
			}
		}
	}

	return nil
}

func schemeAllowed(scheme string, allowed []string) bool {
	for _, s := range allowed {
		if strings.ToLower(s) == scheme {
			return true
		}
	}
	return false
}

// portAllowed admits explicit port 443 always, and 80 only when plain http
// is an allowed scheme.
func portAllowed(port string, allowedSchemes []string) bool {
	switch port {
	case "443":
		return true
	case "80":
		return schemeAllowed("http", allowedSchemes)
	}
	return false
}

// DomainAllowed reports whether host equals, or is a subdomain of, one of
// the allowlisted domains. A "*.example.com" entry is treated as
// "example.com"; both exact and subdomain matches are honored.
func DomainAllowed(host string, allowlist []string) bool {
	h := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(host)), ".")
	if h == "" {
		return false
	}
	for _, entry := range allowlist {
		dom := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(entry)), ".")
		dom = strings.TrimPrefix(dom, "*.")
		if dom == "" {
			continue
		}
		if h == dom || strings.HasSuffix(h, "."+dom) {
			return true
		}
	}
	return false
}
