package fetch_article_usecase

import (
	"context"

	"news-fetcher/config"
	"news-fetcher/domain"
	"news-fetcher/port/outbound_fetch_port"
	"news-fetcher/port/robots_txt_port"
	"news-fetcher/utils/logger"
)

// FetchArticleUsecase retrieves a single article page for a caller-supplied
// URL. The URL is untrusted input; every policy decision happens inside the
// outbound fetch boundary.
type FetchArticleUsecase struct {
	cfg       *config.Config
	fetcher   outbound_fetch_port.OutboundFetchPort
	robotsTxt robots_txt_port.RobotsTxtPort
}

func NewFetchArticleUsecase(cfg *config.Config, fetcher outbound_fetch_port.OutboundFetchPort, robotsTxt robots_txt_port.RobotsTxtPort) *FetchArticleUsecase {
	return &FetchArticleUsecase{cfg: cfg, fetcher: fetcher, robotsTxt: robotsTxt}
}

func (u *FetchArticleUsecase) Execute(ctx context.Context, articleURL string) (*domain.FetchResult, error) {
	if u.cfg.Fetch.RespectRobotsTxt && u.robotsTxt != nil {
		allowed, err := u.robotsTxt.Allowed(ctx, articleURL)
		if err != nil {
			return nil, err
		}
		if !allowed {
			logger.SafeWarn("article fetch disallowed by robots.txt", "url", articleURL)
			return nil, domain.ErrRobotsDisallowed
		}
	}

	return u.fetcher.Fetch(ctx, articleURL, domain.PurposeArticle)
}
