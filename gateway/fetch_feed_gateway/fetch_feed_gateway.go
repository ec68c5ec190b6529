package fetch_feed_gateway

import (
	"context"
	"fmt"

	"github.com/mmcdole/gofeed"

	"news-fetcher/domain"
	"news-fetcher/port/outbound_fetch_port"
	"news-fetcher/utils/logger"
)

// FetchFeedGateway retrieves an RSS/Atom feed through the outbound fetch
// boundary and parses it into domain items. The feed bytes never reach the
// parser unless the URL passed full validation.
type FetchFeedGateway struct {
	fetcher outbound_fetch_port.OutboundFetchPort
}

func NewFetchFeedGateway(fetcher outbound_fetch_port.OutboundFetchPort) *FetchFeedGateway {
	return &FetchFeedGateway{fetcher: fetcher}
}

func (g *FetchFeedGateway) FetchFeedItems(ctx context.Context, feedURL string) ([]*domain.FeedItem, error) {
	result, err := g.fetcher.Fetch(ctx, feedURL, domain.PurposeRSSFeed)
	if err != nil {
		return nil, err
	}

	fp := gofeed.NewParser()
	feed, err := fp.ParseString(string(result.Content))
	if err != nil {
		logger.SafeError("error parsing feed", "feed_url", feedURL, "error", err)
		return nil, fmt.Errorf("parsing feed: %w", err)
	}

	feedItems := make([]*domain.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		feedItem := &domain.FeedItem{
			Title:       item.Title,
			Description: item.Description,
			Link:        item.Link,
			Published:   item.Published,
		}

		if item.PublishedParsed != nil {
			feedItem.PublishedParsed = *item.PublishedParsed
		}

		feedItems = append(feedItems, feedItem)
	}

	logger.SafeInfoContext(ctx, "feed fetched", "feed_url", feedURL, "items", len(feedItems))
	return feedItems, nil
}
