package security

import (
	"net/url"
	"strings"
)

// ItemLinkPolicy decides whether a link discovered inside an already-fetched
// feed may be fetched at all. The feed URL itself always goes through full
// validation; this policy only gates item links.
type ItemLinkPolicy string

const (
	// ItemLinkSameDomainOrAllowlist accepts an item link only when its host
	// matches the feed's host (or a subdomain of it) or is allowlisted.
	ItemLinkSameDomainOrAllowlist ItemLinkPolicy = "A"
	// ItemLinkValidateOnly accepts every item link and defers entirely to
	// full URL validation.
	ItemLinkValidateOnly ItemLinkPolicy = "B"
)

// MayFetchItem applies the two-tier RSS trust policy. A false return means
// the item link is skipped before any validation or network access.
func MayFetchItem(itemURL, feedURL string, allowlist []string, policy ItemLinkPolicy) bool {
	if policy == ItemLinkValidateOnly {
		return true
	}

	itemHost := hostnameOf(itemURL)
	feedHost := hostnameOf(feedURL)
	if itemHost == "" || feedHost == "" {
		return false
	}

	if itemHost == feedHost || strings.HasSuffix(itemHost, "."+feedHost) {
		return true
	}

	return DomainAllowed(itemHost, allowlist)
}

func hostnameOf(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return strings.TrimSuffix(strings.ToLower(u.Hostname()), ".")
}
