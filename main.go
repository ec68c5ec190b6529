package main

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"news-fetcher/config"
	"news-fetcher/di"
	"news-fetcher/driver/feed_source"
	"news-fetcher/rest"
	"news-fetcher/utils/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	log.Info("starting news-fetcher")

	feedSource, err := feed_source.NewFeedSource(&cfg.RSS)
	if err != nil {
		logger.Logger.Error("failed to load feed source", "error", err)
		panic(err)
	}

	container := di.NewApplicationComponents(cfg, feedSource)

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	rest.RegisterRoutes(e, container, cfg)

	if err := e.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Logger.Error("error starting server", "error", err)
		panic(err)
	}
}
