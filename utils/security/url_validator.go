package security

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"

	"news-fetcher/config"
	"news-fetcher/domain"
)

// Verdict is an accepted candidate URL: the URL itself, unchanged, plus the
// address set it resolved to at validation time. The fetcher pins its
// connection to one of these addresses so the host cannot re-resolve to a
// different destination between check and connect.
type Verdict struct {
	URL   *url.URL
	Addrs []net.IP
}

// URLValidator composes the syntax policy, the resolver and the IP range
// classifier into a single accept-or-reject decision. It is deterministic
// given the same configuration and DNS state, and performs no side effects
// beyond DNS resolution.
type URLValidator struct {
	cfg      *config.Config
	resolver HostResolver
}

func NewURLValidator(cfg *config.Config, resolver HostResolver) *URLValidator {
	return &URLValidator{cfg: cfg, resolver: resolver}
}

// Validate checks a candidate URL for the given purpose. It is invoked once
// for the starting URL of a fetch and once more for every redirect target;
// acceptance never rewrites the URL to a different value.
func (v *URLValidator) Validate(ctx context.Context, rawURL string, purpose domain.FetchPurpose) (*Verdict, error) {
	if purpose == domain.PurposeArticle && !v.cfg.Fetch.AllowURLFetch {
		return nil, &domain.URLValidationError{
			Reason:  domain.ReasonFetchDisabled,
			Message: "direct URL fetch is disabled by configuration",
		}
	}

	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return nil, &domain.URLValidationError{
			Reason:  domain.ReasonSyntax,
			Message: "URL is empty",
		}
	}

	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, &domain.URLValidationError{
			Reason:  domain.ReasonSyntax,
			Message: "URL is malformed",
		}
	}

	if err := CheckURLSyntax(parsed, &v.cfg.Fetch); err != nil {
		return nil, err
	}

	host, err := NormalizeHostname(parsed.Hostname())
	if err != nil {
		return nil, &domain.URLValidationError{
			Reason:  domain.ReasonSyntax,
			Message: "hostname is missing or malformed",
		}
	}

	if len(v.cfg.Fetch.AllowlistDomains) > 0 && !DomainAllowed(host, v.cfg.Fetch.AllowlistDomains) {
		return nil, &domain.URLValidationError{
			Reason:  domain.ReasonAllowlistMiss,
			Message: "domain is not on the allowlist",
		}
	}

	addrs, err := v.resolveAddrs(ctx, host)
	if err != nil {
		return nil, err
	}

	if v.cfg.Fetch.BlockPrivateIPs {
		// Fail closed on the union: one blocked address rejects the URL
		// even when other resolved addresses are public.
		for _, addr := range addrs {
			if IsBlockedIP(addr) {
				return nil, &domain.URLValidationError{
					Reason:  domain.ReasonBlockedIP,
					Message: fmt.Sprintf("destination resolves to a blocked address (%s)", addr),
				}
			}
		}
	}

	return &Verdict{URL: parsed, Addrs: addrs}, nil
}

func (v *URLValidator) resolveAddrs(ctx context.Context, host string) ([]net.IP, error) {
	if ip := net.ParseIP(host); ip != nil {
		return []net.IP{ip}, nil
	}

	addrs, err := v.resolver.LookupIP(ctx, host)
	if err != nil || len(addrs) == 0 {
		return nil, &domain.URLValidationError{
			Reason:  domain.ReasonDNSFailure,
			Message: "hostname could not be resolved",
		}
	}
	return addrs, nil
}
