package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-fetcher/config"
	"news-fetcher/di"
	"news-fetcher/domain"
	"news-fetcher/driver/feed_source"
	"news-fetcher/mocks"
	"news-fetcher/usecase/fetch_article_usecase"
	"news-fetcher/usecase/search_feed_items_usecase"
)

func testServerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.ReadTimeout = 30 * time.Second
	cfg.RSS.FeedURLs = []string{"https://news.example.com/rss.xml"}
	cfg.RSS.FeedsFileOnly = true
	cfg.RSS.ItemLinkPolicy = "A"
	cfg.RSS.SearchLimit = 5
	cfg.RSS.FetchConcurrency = 2
	return cfg
}

func newTestServer(t *testing.T, cfg *config.Config, fetcher *mocks.MockOutboundFetchPort, feedPort *mocks.MockFetchFeedPort) *echo.Echo {
	t.Helper()

	source, err := feed_source.NewFeedSource(&cfg.RSS)
	require.NoError(t, err)

	container := &di.ApplicationComponents{
		FetchArticleUsecase:    fetch_article_usecase.NewFetchArticleUsecase(cfg, fetcher, nil),
		SearchFeedItemsUsecase: search_feed_items_usecase.NewSearchFeedItemsUsecase(cfg, source, feedPort, fetcher),
	}

	e := echo.New()
	RegisterRoutes(e, container, cfg)
	return e
}

func TestHealthEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(t, testServerConfig(), mocks.NewMockOutboundFetchPort(ctrl), mocks.NewMockFetchFeedPort(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/v1/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestMetricsEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(t, testServerConfig(), mocks.NewMockOutboundFetchPort(ctrl), mocks.NewMockFetchFeedPort(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFetchArticle_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := mocks.NewMockOutboundFetchPort(ctrl)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "https://news.example.com/articles/1", domain.PurposeArticle).
		Return(&domain.FetchResult{
			URL:         "https://news.example.com/articles/1",
			Content:     []byte("<html>hello</html>"),
			ContentType: "text/html",
		}, nil)

	e := newTestServer(t, testServerConfig(), fetcher, mocks.NewMockFetchFeedPort(ctrl))

	body := `{"url":"https://news.example.com/articles/1"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/articles/fetch", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp fetchArticleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://news.example.com/articles/1", resp.URL)
	assert.Equal(t, "text/html", resp.ContentType)
	assert.Contains(t, resp.Content, "hello")
}

func TestFetchArticle_EmptyURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(t, testServerConfig(), mocks.NewMockOutboundFetchPort(ctrl), mocks.NewMockFetchFeedPort(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/v1/articles/fetch", strings.NewReader(`{"url":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFetchArticle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation rejection",
			err:        &domain.URLValidationError{Reason: domain.ReasonBlockedIP, Message: "blocked"},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "upstream status",
			err:        &domain.OutboundHTTPError{Kind: domain.OutboundKindStatus, StatusCode: 503},
			wantStatus: http.StatusBadGateway,
			wantCode:   "EXTERNAL_API_ERROR",
		},
		{
			name:       "response too large",
			err:        &domain.ResponseTooLargeError{Limit: 1000, Declared: 2000},
			wantStatus: http.StatusBadGateway,
			wantCode:   "RESPONSE_TOO_LARGE_ERROR",
		},
		{
			name:       "robots disallowed",
			err:        domain.ErrRobotsDisallowed,
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			fetcher := mocks.NewMockOutboundFetchPort(ctrl)
			fetcher.EXPECT().
				Fetch(gomock.Any(), gomock.Any(), domain.PurposeArticle).
				Return(nil, tt.err)

			e := newTestServer(t, testServerConfig(), fetcher, mocks.NewMockFetchFeedPort(ctrl))

			req := httptest.NewRequest(http.MethodPost, "/v1/articles/fetch", strings.NewReader(`{"url":"https://x.example.com/a"}`))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Code)
		})
	}
}

func TestListFeeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(t, testServerConfig(), mocks.NewMockOutboundFetchPort(ctrl), mocks.NewMockFetchFeedPort(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/v1/rss/feeds", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://news.example.com/rss.xml")
}

func TestListFeedItems_NotInFeedList(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(t, testServerConfig(), mocks.NewMockOutboundFetchPort(ctrl), mocks.NewMockFetchFeedPort(ctrl))

	req := httptest.NewRequest(http.MethodGet, "/v1/rss/feeds/items?url=https://other.example.org/rss.xml", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSearchFeeds_KeywordNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	feedPort := mocks.NewMockFetchFeedPort(ctrl)
	feedPort.EXPECT().
		FetchFeedItems(gomock.Any(), gomock.Any()).
		Return([]*domain.FeedItem{}, nil)

	e := newTestServer(t, testServerConfig(), mocks.NewMockOutboundFetchPort(ctrl), feedPort)

	req := httptest.NewRequest(http.MethodPost, "/v1/rss/search", strings.NewReader(`{"keyword":"nomatch"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchFeeds_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	feedPort := mocks.NewMockFetchFeedPort(ctrl)
	fetcher := mocks.NewMockOutboundFetchPort(ctrl)

	feedPort.EXPECT().
		FetchFeedItems(gomock.Any(), "https://news.example.com/rss.xml").
		Return([]*domain.FeedItem{
			{Title: "golang release", Link: "https://news.example.com/articles/1"},
		}, nil)
	fetcher.EXPECT().
		Fetch(gomock.Any(), "https://news.example.com/articles/1", domain.PurposeRSSItem).
		Return(&domain.FetchResult{
			URL:         "https://news.example.com/articles/1",
			Content:     []byte("<html>release notes</html>"),
			ContentType: "text/html",
		}, nil)

	e := newTestServer(t, testServerConfig(), fetcher, feedPort)

	req := httptest.NewRequest(http.MethodPost, "/v1/rss/search", strings.NewReader(`{"keyword":"golang"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "release notes")
	assert.Contains(t, rec.Body.String(), "https://news.example.com/articles/1")
}

func TestSearchFeeds_EmptyKeyword(t *testing.T) {
	ctrl := gomock.NewController(t)
	e := newTestServer(t, testServerConfig(), mocks.NewMockOutboundFetchPort(ctrl), mocks.NewMockFetchFeedPort(ctrl))

	req := httptest.NewRequest(http.MethodPost, "/v1/rss/search", strings.NewReader(`{"keyword":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
