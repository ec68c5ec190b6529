package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"news-fetcher/di"
	"news-fetcher/domain"
)

type searchFeedsRequest struct {
	Keyword string `json:"keyword"`
}

type feedItemResponse struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
	Published   string    `json:"published"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

type matchedItemResponse struct {
	Item        feedItemResponse `json:"item"`
	FeedURL     string           `json:"feed_url"`
	FinalURL    string           `json:"final_url"`
	ContentType string           `json:"content_type"`
	Content     string           `json:"content"`
}

func registerFeedRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.GET("/rss/feeds", handleListFeeds(container))
	v1.GET("/rss/feeds/items", handleListFeedItems(container))
	v1.POST("/rss/search", handleSearchFeeds(container))
}

func handleListFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"feeds": container.SearchFeedItemsUsecase.FeedURLs(),
		})
	}
}

func handleListFeedItems(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		feedURL := c.QueryParam("url")
		if feedURL == "" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "url must not be empty", Code: "VALIDATION_ERROR"})
		}

		items, err := container.SearchFeedItemsUsecase.ListItems(c.Request().Context(), feedURL)
		if err != nil {
			return handleError(c, err, "list_feed_items")
		}

		responses := make([]feedItemResponse, 0, len(items))
		for _, item := range items {
			responses = append(responses, toFeedItemResponse(item))
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"items": responses})
	}
}

func handleSearchFeeds(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req searchFeedsRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "VALIDATION_ERROR"})
		}
		if req.Keyword == "" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "keyword must not be empty", Code: "VALIDATION_ERROR"})
		}

		matched, err := container.SearchFeedItemsUsecase.Execute(c.Request().Context(), req.Keyword)
		if err != nil {
			return handleError(c, err, "search_feed_items")
		}

		responses := make([]matchedItemResponse, 0, len(matched))
		for _, m := range matched {
			responses = append(responses, matchedItemResponse{
				Item:        toFeedItemResponse(&m.Item),
				FeedURL:     m.FeedURL,
				FinalURL:    m.FinalURL,
				ContentType: m.ContentType,
				Content:     string(m.Content),
			})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{"matches": responses})
	}
}

func toFeedItemResponse(item *domain.FeedItem) feedItemResponse {
	return feedItemResponse{
		Title:       item.Title,
		Description: item.Description,
		Link:        item.Link,
		Published:   item.Published,
		PublishedAt: item.PublishedParsed,
	}
}
