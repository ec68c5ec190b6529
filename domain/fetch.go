package domain

// FetchPurpose tags an outbound request with the trust context it runs
// under. The validator and the fetcher branch on this tag instead of
// comparing strings at call sites.
type FetchPurpose string

const (
	PurposeArticle   FetchPurpose = "article"
	PurposeRSSFeed   FetchPurpose = "rss_feed"
	PurposeRSSItem   FetchPurpose = "rss_item"
	PurposeRobotsTxt FetchPurpose = "robots_txt"
)

// FetchResult is the outcome of a successful controlled fetch: the bounded
// body, the declared content type, and the URL that actually answered after
// any redirects.
type FetchResult struct {
	URL         string
	Content     []byte
	ContentType string
}

// RedirectHop records one followed redirect within a single fetch attempt.
type RedirectHop struct {
	URL        string
	StatusCode int
}

// RedirectChain accumulates followed hops for one fetch. The chain is bounded:
// Add refuses the hop that would exceed the configured maximum, so the limit
// cannot be skipped by the fetch loop.
type RedirectChain struct {
	hops []RedirectHop
	max  int
}

func NewRedirectChain(max int) *RedirectChain {
	if max < 0 {
		max = 0
	}
	return &RedirectChain{max: max}
}

// Add records a hop. It returns false when following this hop would exceed
// the maximum; the chain is left unchanged in that case.
func (c *RedirectChain) Add(url string, statusCode int) bool {
	if len(c.hops) >= c.max {
		return false
	}
	c.hops = append(c.hops, RedirectHop{URL: url, StatusCode: statusCode})
	return true
}

func (c *RedirectChain) Len() int {
	return len(c.hops)
}

func (c *RedirectChain) Hops() []RedirectHop {
	out := make([]RedirectHop, len(c.hops))
	copy(out, c.hops)
	return out
}
