package outbound_http_gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"news-fetcher/config"
	"news-fetcher/domain"
	"news-fetcher/utils"
	"news-fetcher/utils/logger"
	"news-fetcher/utils/metrics"
	"news-fetcher/utils/rate_limiter"
	"news-fetcher/utils/security"
)

// readChunkSize is the streaming read granularity; the running total is
// checked against the byte cap after every chunk.
const readChunkSize = 64 * 1024

// URLValidator is the validation dependency of the gateway. The concrete
// implementation lives in utils/security; tests substitute their own.
type URLValidator interface {
	Validate(ctx context.Context, rawURL string, purpose domain.FetchPurpose) (*security.Verdict, error)
}

// ClientFactory builds an HTTP client pinned to a validated address.
type ClientFactory func(cfg *config.HTTPConfig, hostname string, addr net.IP) *http.Client

// OutboundHTTPGateway performs every external fetch for the service. Each
// hop of a request, including every redirect target, passes full URL
// validation before a connection pinned to the vetted address is opened.
type OutboundHTTPGateway struct {
	cfg           *config.Config
	validator     URLValidator
	rateLimiter   *rate_limiter.HostRateLimiter
	clientFactory ClientFactory
}

func NewOutboundHTTPGateway(cfg *config.Config, validator URLValidator, rateLimiter *rate_limiter.HostRateLimiter) *OutboundHTTPGateway {
	return &OutboundHTTPGateway{
		cfg:           cfg,
		validator:     validator,
		rateLimiter:   rateLimiter,
		clientFactory: utils.PinnedHTTPClient,
	}
}

// NewOutboundHTTPGatewayWithDeps allows dependency injection for testing.
// A nil clientFactory falls back to the pinned production factory.
func NewOutboundHTTPGatewayWithDeps(cfg *config.Config, validator URLValidator, rateLimiter *rate_limiter.HostRateLimiter, clientFactory ClientFactory) *OutboundHTTPGateway {
	if clientFactory == nil {
		clientFactory = utils.PinnedHTTPClient
	}
	return &OutboundHTTPGateway{
		cfg:           cfg,
		validator:     validator,
		rateLimiter:   rateLimiter,
		clientFactory: clientFactory,
	}
}

// Fetch retrieves rawURL for the given purpose under the full outbound
// policy: validation, per-host rate limiting, manual redirect handling
// with per-hop re-validation, and byte/content-type limits.
func (g *OutboundHTTPGateway) Fetch(ctx context.Context, rawURL string, purpose domain.FetchPurpose) (*domain.FetchResult, error) {
	start := time.Now()
	result, err := g.fetch(ctx, rawURL, purpose)
	metrics.RecordFetch(string(purpose), outcomeOf(err), time.Since(start).Seconds())
	return result, err
}

func (g *OutboundHTTPGateway) fetch(ctx context.Context, rawURL string, purpose domain.FetchPurpose) (*domain.FetchResult, error) {
	verdict, err := g.validate(ctx, rawURL, purpose)
	if err != nil {
		return nil, err
	}

	chain := domain.NewRedirectChain(g.cfg.Fetch.MaxRedirects)

	for {
		if g.rateLimiter != nil {
			if err := g.rateLimiter.WaitForHost(ctx, verdict.URL.String()); err != nil {
				return nil, err
			}
		}

		resp, err := g.doRequest(ctx, verdict)
		if err != nil {
			return nil, err
		}

		if isRedirect(resp.StatusCode) {
			nextVerdict, err := g.followRedirect(ctx, verdict, resp, chain, purpose)
			if err != nil {
				return nil, err
			}
			verdict = nextVerdict
			continue
		}

		return g.readResponse(resp, verdict.URL.String(), purpose, chain)
	}
}

func (g *OutboundHTTPGateway) validate(ctx context.Context, rawURL string, purpose domain.FetchPurpose) (*security.Verdict, error) {
	verdict, err := g.validator.Validate(ctx, rawURL, purpose)
	if err != nil {
		var vErr *domain.URLValidationError
		if errors.As(err, &vErr) {
			metrics.RecordRejection(string(vErr.Reason))
			logger.SafeWarn("candidate URL rejected",
				"url", rawURL,
				"purpose", string(purpose),
				"reason", string(vErr.Reason))
		}
		return nil, err
	}
	return verdict, nil
}

func (g *OutboundHTTPGateway) doRequest(ctx context.Context, verdict *security.Verdict) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, verdict.URL.String(), nil)
	if err != nil {
		return nil, &domain.OutboundHTTPError{
			Kind:    domain.OutboundKindConnection,
			Message: "failed to build request",
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", g.cfg.HTTP.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	client := g.clientFactory(&g.cfg.HTTP, verdict.URL.Hostname(), verdict.Addrs[0])
	resp, err := client.Do(req)
	if err != nil {
		return nil, &domain.OutboundHTTPError{
			Kind:    domain.OutboundKindConnection,
			Message: "request failed",
			Cause:   err,
		}
	}
	return resp, nil
}

func (g *OutboundHTTPGateway) followRedirect(ctx context.Context, current *security.Verdict, resp *http.Response, chain *domain.RedirectChain, purpose domain.FetchPurpose) (*security.Verdict, error) {
	defer drainAndClose(resp)

	if !g.cfg.Fetch.AllowRedirects {
		return nil, &domain.OutboundHTTPError{
			Kind:       domain.OutboundKindRedirectDenied,
			StatusCode: resp.StatusCode,
			Message:    "redirects are disabled",
		}
	}

	location := resp.Header.Get("Location")
	if location == "" {
		return nil, &domain.OutboundHTTPError{
			Kind:       domain.OutboundKindRedirectDenied,
			StatusCode: resp.StatusCode,
			Message:    "redirect without Location header",
		}
	}

	next, err := current.URL.Parse(location)
	if err != nil {
		return nil, &domain.OutboundHTTPError{
			Kind:       domain.OutboundKindRedirectDenied,
			StatusCode: resp.StatusCode,
			Message:    "unparseable Location header",
			Cause:      err,
		}
	}

	if !chain.Add(next.String(), resp.StatusCode) {
		return nil, &domain.OutboundHTTPError{
			Kind:       domain.OutboundKindRedirectLimit,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("redirect limit of %d exceeded", g.cfg.Fetch.MaxRedirects),
		}
	}

	logger.SafeInfoContext(ctx, "following redirect",
		"url", current.URL.String(),
		"location", next.String(),
		"status", resp.StatusCode,
		"hop", chain.Len())

	// The redirect target is untrusted input and goes through the same
	// validation as the original URL.
	return g.validate(ctx, next.String(), purpose)
}

func (g *OutboundHTTPGateway) readResponse(resp *http.Response, finalURL string, purpose domain.FetchPurpose, chain *domain.RedirectChain) (*domain.FetchResult, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.OutboundHTTPError{
			Kind:       domain.OutboundKindStatus,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("unexpected status %d", resp.StatusCode),
		}
	}

	contentType := resp.Header.Get("Content-Type")
	if !contentTypeAllowed(contentType, purpose) {
		return nil, &domain.OutboundHTTPError{
			Kind:       domain.OutboundKindContentType,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("content type %q not allowed for %s", contentType, purpose),
		}
	}

	maxBytes := g.maxBytesFor(purpose)
	if resp.ContentLength > maxBytes {
		return nil, &domain.ResponseTooLargeError{Limit: maxBytes, Declared: resp.ContentLength}
	}

	body, err := readBounded(resp.Body, maxBytes)
	if err != nil {
		return nil, err
	}
	metrics.RecordResponseSize(string(purpose), len(body))
	metrics.RedirectHops.Observe(float64(chain.Len()))

	return &domain.FetchResult{
		URL:         finalURL,
		Content:     body,
		ContentType: contentType,
	}, nil
}

func (g *OutboundHTTPGateway) maxBytesFor(purpose domain.FetchPurpose) int64 {
	if purpose == domain.PurposeRSSFeed {
		return g.cfg.RSS.MaxBytes
	}
	return g.cfg.Fetch.MaxBytes
}

// readBounded streams the body in fixed-size chunks and aborts as soon as
// the running total exceeds the limit, so a lying or absent Content-Length
// cannot force an unbounded read.
func readBounded(r io.Reader, limit int64) ([]byte, error) {
	buf := make([]byte, 0, readChunkSize)
	chunk := make([]byte, readChunkSize)
	var total int64

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			total += int64(n)
			if total > limit {
				return nil, &domain.ResponseTooLargeError{Limit: limit, Declared: -1}
			}
			buf = append(buf, chunk[:n]...)
		}
		if err == io.EOF {
			return buf, nil
		}
		if err != nil {
			return nil, &domain.OutboundHTTPError{
				Kind:    domain.OutboundKindConnection,
				Message: "reading response body",
				Cause:   err,
			}
		}
	}
}

var contentTypePrefixesByPurpose = map[domain.FetchPurpose][]string{
	domain.PurposeArticle: {
		"text/html", "application/xhtml", "text/plain",
	},
	domain.PurposeRSSItem: {
		"text/html", "application/xhtml", "text/plain",
	},
	domain.PurposeRSSFeed: {
		"application/rss", "application/atom", "application/xml",
		"text/xml", "application/rdf", "text/plain",
	},
	domain.PurposeRobotsTxt: {
		"text/plain",
	},
}

// contentTypeAllowed matches the media type by prefix against the purpose's
// allowlist. A response that declares no Content-Type at all is accepted;
// only a declared, non-matching type is rejected.
func contentTypeAllowed(contentType string, purpose domain.FetchPurpose) bool {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	if mediaType == "" {
		return true
	}
	for _, prefix := range contentTypePrefixesByPurpose[purpose] {
		if strings.HasPrefix(mediaType, prefix) {
			return true
		}
	}
	return false
}

func isRedirect(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	}
	return false
}

// drainAndClose discards at most one chunk of the body so the connection
// can be reused, then closes it.
func drainAndClose(resp *http.Response) {
	_, _ = io.CopyN(io.Discard, resp.Body, readChunkSize)
	resp.Body.Close()
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeSuccess
	}
	var vErr *domain.URLValidationError
	if errors.As(err, &vErr) {
		return metrics.OutcomeRejected
	}
	var tooLarge *domain.ResponseTooLargeError
	if errors.As(err, &tooLarge) {
		return metrics.OutcomeTooLarge
	}
	return metrics.OutcomeHTTPError
}
