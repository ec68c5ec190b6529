package outbound_fetch_port

import (
	"context"

	"news-fetcher/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=outbound_fetch_port.go -destination=../../mocks/mock_outbound_fetch_port.go -package=mocks

// OutboundFetchPort is the single gate through which any external URL is
// retrieved. Implementations validate the URL, resolve and vet its
// addresses, and stream the body under byte and content-type limits.
type OutboundFetchPort interface {
	Fetch(ctx context.Context, rawURL string, purpose domain.FetchPurpose) (*domain.FetchResult, error)
}
