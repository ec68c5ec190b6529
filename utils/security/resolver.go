package security

import (
	"context"
	"fmt"
	"net"
	"time"
)

// HostResolver resolves a hostname to its full A/AAAA address set. It is an
// interface so validator tests can control DNS without touching the network.
type HostResolver interface {
	LookupIP(ctx context.Context, hostname string) ([]net.IP, error)
}

// NetResolver resolves through the Go resolver with a bounded timeout.
// Results are never cached here: every validation, including every redirect
// hop, resolves fresh to narrow the DNS-rebinding window.
type NetResolver struct {
	timeout time.Duration
}

func NewNetResolver(timeout time.Duration) *NetResolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NetResolver{timeout: timeout}
}

func (r *NetResolver) LookupIP(ctx context.Context, hostname string) ([]net.IP, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	resolver := &net.Resolver{PreferGo: true}
	addrs, err := resolver.LookupIPAddr(ctx, hostname)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("hostname %q resolved to no addresses", hostname)
	}

	ips := make([]net.IP, 0, len(addrs))
	for _, addr := range addrs {
		ips = append(ips, addr.IP)
	}
	return ips, nil
}
