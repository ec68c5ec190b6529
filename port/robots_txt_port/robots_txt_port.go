package robots_txt_port

import (
	"context"
)

//go:generate go run go.uber.org/mock/mockgen -source=robots_txt_port.go -destination=../../mocks/mock_robots_txt_port.go -package=mocks

// RobotsTxtPort answers whether a target URL may be fetched according to
// the origin's robots.txt. A missing robots.txt means everything is allowed.
type RobotsTxtPort interface {
	Allowed(ctx context.Context, targetURL string) (bool, error)
}
