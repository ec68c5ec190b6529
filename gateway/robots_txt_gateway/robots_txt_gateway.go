package robots_txt_gateway

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/temoto/robotstxt"

	"news-fetcher/domain"
	"news-fetcher/port/outbound_fetch_port"
	"news-fetcher/utils/logger"
)

// RobotsTxtGateway fetches and evaluates robots.txt for a target URL. The
// robots.txt file itself is retrieved through the outbound fetch boundary,
// so a hostile Location or DNS answer cannot use it as an escape hatch.
type RobotsTxtGateway struct {
	fetcher   outbound_fetch_port.OutboundFetchPort
	userAgent string
}

func NewRobotsTxtGateway(fetcher outbound_fetch_port.OutboundFetchPort, userAgent string) *RobotsTxtGateway {
	return &RobotsTxtGateway{fetcher: fetcher, userAgent: userAgent}
}

// Allowed reports whether targetURL may be fetched. A missing robots.txt
// (404) allows everything; a robots.txt we cannot retrieve for other
// reasons is treated as disallowing the fetch.
func (g *RobotsTxtGateway) Allowed(ctx context.Context, targetURL string) (bool, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return false, &domain.URLValidationError{
			Reason:  domain.ReasonSyntax,
			Message: "target URL is malformed",
		}
	}

	robotsURL := parsed.Scheme + "://" + parsed.Host + "/robots.txt"

	result, err := g.fetcher.Fetch(ctx, robotsURL, domain.PurposeRobotsTxt)
	if err != nil {
		var httpErr *domain.OutboundHTTPError
		if errors.As(err, &httpErr) && httpErr.Kind == domain.OutboundKindStatus && httpErr.StatusCode == http.StatusNotFound {
			return true, nil
		}
		logger.SafeWarn("robots.txt unavailable", "url", robotsURL, "error", err)
		return false, err
	}

	robots, err := robotstxt.FromBytes(result.Content)
	if err != nil {
		logger.SafeWarn("robots.txt unparseable", "url", robotsURL, "error", err)
		return false, err
	}

	group := robots.FindGroup(g.userAgent)
	path := parsed.EscapedPath()
	if path == "" {
		path = "/"
	}
	return group.Test(path), nil
}
