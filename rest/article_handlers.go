package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"news-fetcher/di"
	"news-fetcher/utils/logger"
)

type fetchArticleRequest struct {
	URL string `json:"url"`
}

type fetchArticleResponse struct {
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Content     string `json:"content"`
}

func registerArticleRoutes(v1 *echo.Group, container *di.ApplicationComponents) {
	v1.POST("/articles/fetch", handleFetchArticle(container))
}

func handleFetchArticle(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req fetchArticleRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: "VALIDATION_ERROR"})
		}
		if req.URL == "" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "url must not be empty", Code: "VALIDATION_ERROR"})
		}

		result, err := container.FetchArticleUsecase.Execute(c.Request().Context(), req.URL)
		if err != nil {
			return handleError(c, err, "fetch_article")
		}

		logger.SafeInfoContext(c.Request().Context(), "article fetched",
			"url", result.URL,
			"content_type", result.ContentType,
			"bytes", len(result.Content))

		return c.JSON(http.StatusOK, fetchArticleResponse{
			URL:         result.URL,
			ContentType: result.ContentType,
			Content:     string(result.Content),
		})
	}
}
