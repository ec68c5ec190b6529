package robots_txt_gateway

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news-fetcher/domain"
	"news-fetcher/mocks"
)

const sampleRobots = `User-agent: *
Disallow: /private/
Disallow: /admin

User-agent: newsbot
Disallow: /
`

func robotsResult(body string) *domain.FetchResult {
	return &domain.FetchResult{
		URL:         "https://news.example.com/robots.txt",
		Content:     []byte(body),
		ContentType: "text/plain",
	}
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		targetURL string
		want      bool
	}{
		{"open path", "fetcher/1.0", "https://news.example.com/articles/1", true},
		{"disallowed directory", "fetcher/1.0", "https://news.example.com/private/x", false},
		{"disallowed prefix", "fetcher/1.0", "https://news.example.com/admin", false},
		{"agent-specific full block", "newsbot", "https://news.example.com/articles/1", false},
		{"root path", "fetcher/1.0", "https://news.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockFetcher := mocks.NewMockOutboundFetchPort(ctrl)
			mockFetcher.EXPECT().
				Fetch(gomock.Any(), "https://news.example.com/robots.txt", domain.PurposeRobotsTxt).
				Return(robotsResult(sampleRobots), nil)

			gw := NewRobotsTxtGateway(mockFetcher, tt.userAgent)
			allowed, err := gw.Allowed(context.Background(), tt.targetURL)

			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestAllowed_MissingRobotsTxt(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFetcher := mocks.NewMockOutboundFetchPort(ctrl)
	mockFetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), domain.PurposeRobotsTxt).
		Return(nil, &domain.OutboundHTTPError{Kind: domain.OutboundKindStatus, StatusCode: http.StatusNotFound})

	gw := NewRobotsTxtGateway(mockFetcher, "fetcher/1.0")
	allowed, err := gw.Allowed(context.Background(), "https://news.example.com/anything")

	require.NoError(t, err)
	assert.True(t, allowed, "missing robots.txt allows everything")
}

func TestAllowed_FetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFetcher := mocks.NewMockOutboundFetchPort(ctrl)
	mockFetcher.EXPECT().
		Fetch(gomock.Any(), gomock.Any(), domain.PurposeRobotsTxt).
		Return(nil, &domain.OutboundHTTPError{Kind: domain.OutboundKindConnection, Message: "refused"})

	gw := NewRobotsTxtGateway(mockFetcher, "fetcher/1.0")
	allowed, err := gw.Allowed(context.Background(), "https://news.example.com/a")

	assert.Error(t, err)
	assert.False(t, allowed)
}

func TestAllowed_MalformedTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFetcher := mocks.NewMockOutboundFetchPort(ctrl)

	gw := NewRobotsTxtGateway(mockFetcher, "fetcher/1.0")
	allowed, err := gw.Allowed(context.Background(), "not a url")

	assert.Error(t, err)
	assert.False(t, allowed)
}
