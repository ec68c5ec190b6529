package di

import (
	"news-fetcher/config"
	"news-fetcher/driver/feed_source"
	"news-fetcher/gateway/fetch_feed_gateway"
	"news-fetcher/gateway/outbound_http_gateway"
	"news-fetcher/gateway/robots_txt_gateway"
	"news-fetcher/usecase/fetch_article_usecase"
	"news-fetcher/usecase/search_feed_items_usecase"
	"news-fetcher/utils/rate_limiter"
	"news-fetcher/utils/security"
)

type ApplicationComponents struct {
	FetchArticleUsecase    *fetch_article_usecase.FetchArticleUsecase
	SearchFeedItemsUsecase *search_feed_items_usecase.SearchFeedItemsUsecase
	OutboundGateway        *outbound_http_gateway.OutboundHTTPGateway
}

func NewApplicationComponents(cfg *config.Config, feedSource *feed_source.FeedSource) *ApplicationComponents {
	resolver := security.NewNetResolver(cfg.HTTP.DNSTimeout)
	validator := security.NewURLValidator(cfg, resolver)
	hostRateLimiter := rate_limiter.NewHostRateLimiter(cfg.RateLimit.ExternalAPIInterval)

	outboundGateway := outbound_http_gateway.NewOutboundHTTPGateway(cfg, validator, hostRateLimiter)

	robotsTxtGateway := robots_txt_gateway.NewRobotsTxtGateway(outboundGateway, cfg.HTTP.UserAgent)
	fetchFeedGateway := fetch_feed_gateway.NewFetchFeedGateway(outboundGateway)

	fetchArticleUsecase := fetch_article_usecase.NewFetchArticleUsecase(cfg, outboundGateway, robotsTxtGateway)
	searchFeedItemsUsecase := search_feed_items_usecase.NewSearchFeedItemsUsecase(cfg, feedSource, fetchFeedGateway, outboundGateway)

	return &ApplicationComponents{
		FetchArticleUsecase:    fetchArticleUsecase,
		SearchFeedItemsUsecase: searchFeedItemsUsecase,
		OutboundGateway:        outboundGateway,
	}
}
