package fetch_feed_port

import (
	"context"

	"news-fetcher/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=fetch_feed_port.go -destination=../../mocks/mock_fetch_feed_port.go -package=mocks

type FetchFeedPort interface {
	FetchFeedItems(ctx context.Context, feedURL string) ([]*domain.FeedItem, error)
}
