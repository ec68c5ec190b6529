package search_feed_items_usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"news-fetcher/config"
	"news-fetcher/domain"
	"news-fetcher/driver/feed_source"
	"news-fetcher/port/fetch_feed_port"
	"news-fetcher/port/outbound_fetch_port"
	"news-fetcher/utils/logger"
	"news-fetcher/utils/security"
)

// SearchFeedItemsUsecase searches the configured feeds for items matching a
// keyword and fetches the matching articles. Item links are discovered
// inside remote feed content and are therefore untrusted; the two-tier
// trust policy decides which of them may be fetched at all.
type SearchFeedItemsUsecase struct {
	cfg        *config.Config
	feedSource *feed_source.FeedSource
	feedPort   fetch_feed_port.FetchFeedPort
	fetcher    outbound_fetch_port.OutboundFetchPort
}

func NewSearchFeedItemsUsecase(cfg *config.Config, feedSource *feed_source.FeedSource, feedPort fetch_feed_port.FetchFeedPort, fetcher outbound_fetch_port.OutboundFetchPort) *SearchFeedItemsUsecase {
	return &SearchFeedItemsUsecase{
		cfg:        cfg,
		feedSource: feedSource,
		feedPort:   feedPort,
		fetcher:    fetcher,
	}
}

// ListItems returns the items of a single configured feed. In file-only
// mode a feed URL outside the configured list is refused before any
// network access.
func (u *SearchFeedItemsUsecase) ListItems(ctx context.Context, feedURL string) ([]*domain.FeedItem, error) {
	if u.cfg.RSS.FeedsFileOnly && !u.feedSource.Contains(feedURL) {
		return nil, domain.ErrFeedNotAllowed
	}
	return u.feedPort.FetchFeedItems(ctx, feedURL)
}

// FeedURLs returns the configured feed list.
func (u *SearchFeedItemsUsecase) FeedURLs() []string {
	return u.feedSource.URLs()
}

type scoredItem struct {
	item    *domain.FeedItem
	feedURL string
	score   int
}

// Execute searches every configured feed for keyword, ranks matching items
// by how many distinct keyword tokens they contain, and fetches the bodies
// of the best candidates. It returns domain.ErrKeywordNotFound when no
// matching item could be fetched.
func (u *SearchFeedItemsUsecase) Execute(ctx context.Context, keyword string) ([]*domain.MatchedItem, error) {
	feedURLs := u.feedSource.URLs()
	if len(feedURLs) == 0 {
		return nil, domain.ErrNoFeedsConfigured
	}

	tokens := keywordTokens(keyword)
	if len(tokens) == 0 {
		return nil, domain.ErrKeywordNotFound
	}

	candidates, err := u.collectCandidates(ctx, feedURLs, tokens)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, domain.ErrKeywordNotFound
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > u.cfg.RSS.SearchLimit {
		candidates = candidates[:u.cfg.RSS.SearchLimit]
	}

	matched := u.fetchCandidates(ctx, candidates)
	if len(matched) == 0 {
		return nil, domain.ErrKeywordNotFound
	}
	return matched, nil
}

// collectCandidates fetches all configured feeds concurrently and scores
// their items against the keyword tokens. A feed that fails to fetch is
// skipped; the search degrades rather than fails.
func (u *SearchFeedItemsUsecase) collectCandidates(ctx context.Context, feedURLs []string, tokens []string) ([]scoredItem, error) {
	var (
		mu         sync.Mutex
		candidates []scoredItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.cfg.RSS.FetchConcurrency)

	for _, feedURL := range feedURLs {
		feedURL := feedURL
		g.Go(func() error {
			items, err := u.feedPort.FetchFeedItems(gctx, feedURL)
			if err != nil {
				logger.SafeWarn("skipping feed", "feed_url", feedURL, "error", err)
				return nil
			}
			mu.Lock()
			defer mu.Unlock()
			for _, item := range items {
				if score := scoreItem(item, tokens); score > 0 {
					candidates = append(candidates, scoredItem{item: item, feedURL: feedURL, score: score})
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// fetchCandidates retrieves the article bodies of the ranked candidates.
// Item links failing the trust policy or the fetch are dropped silently;
// order of the surviving items follows the ranking.
func (u *SearchFeedItemsUsecase) fetchCandidates(ctx context.Context, candidates []scoredItem) []*domain.MatchedItem {
	results := make([]*domain.MatchedItem, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.cfg.RSS.FetchConcurrency)

	for i, candidate := range candidates {
		i, candidate := i, candidate
		g.Go(func() error {
			itemURL := strings.TrimSpace(candidate.item.Link)
			if itemURL == "" {
				return nil
			}
			if !security.MayFetchItem(itemURL, candidate.feedURL, u.cfg.Fetch.AllowlistDomains, security.ItemLinkPolicy(u.cfg.RSS.ItemLinkPolicy)) {
				logger.SafeInfo("item link outside trust policy",
					"item_url", itemURL,
					"feed_url", candidate.feedURL)
				return nil
			}

			result, err := u.fetcher.Fetch(gctx, itemURL, domain.PurposeRSSItem)
			if err != nil {
				logger.SafeWarn("item fetch failed", "item_url", itemURL, "error", err)
				return nil
			}

			results[i] = &domain.MatchedItem{
				Item:        *candidate.item,
				FeedURL:     candidate.feedURL,
				FinalURL:    result.URL,
				Content:     result.Content,
				ContentType: result.ContentType,
			}
			return nil
		})
	}
	_ = g.Wait()

	matched := make([]*domain.MatchedItem, 0, len(results))
	for _, m := range results {
		if m != nil {
			matched = append(matched, m)
		}
	}
	return matched
}

func keywordTokens(keyword string) []string {
	fields := strings.Fields(strings.ToLower(keyword))
	seen := make(map[string]bool, len(fields))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if !seen[f] {
			seen[f] = true
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// scoreItem counts the distinct keyword tokens present in the item's title
// or description.
func scoreItem(item *domain.FeedItem, tokens []string) int {
	haystack := strings.ToLower(item.Title + " " + item.Description)
	score := 0
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			score++
		}
	}
	return score
}
