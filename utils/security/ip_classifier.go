// Package security implements the outbound URL policy: IP range
// classification, hostname and syntax checks, DNS resolution, the composed
// URL validator, the RSS item-link trust policy, and log sanitization.
package security

import "net"

// Blocked ranges for outbound access: loopback, link-local, private,
// carrier-grade NAT, documentation/benchmark, multicast and reserved space.
var blockedV4 = []string{
	"0.0.0.0/8",
	"10.0.0.0/8",
	"100.64.0.0/10",
	"127.0.0.0/8",
	"169.254.0.0/16",
	"172.16.0.0/12",
	"192.0.0.0/24",
	"192.0.2.0/24",
	"192.168.0.0/16",
	"198.18.0.0/15",
	"198.51.100.0/24",
	"203.0.113.0/24",
	"224.0.0.0/4",
	"240.0.0.0/4",
}

var blockedV6 = []string{
	"::/128",
	"::1/128",
	"fe80::/10",
	"fc00::/7",
	"ff00::/8",
}

// Pre-compiled CIDR networks, parsed once at package initialization.
var blockedNets []*net.IPNet

func init() {
	for _, cidr := range append(append([]string{}, blockedV4...), blockedV6...) {
		_, network, err := net.ParseCIDR(cidr)
		if err != nil {
			panic("invalid blocked CIDR " + cidr + ": " + err.Error())
		}
		blockedNets = append(blockedNets, network)
	}
}

// IsBlockedIP reports whether an address falls in a blocked range. An
// IPv4-mapped IPv6 address (::ffff:a.b.c.d) is unwrapped to its embedded
// IPv4 form first, so the IPv4 table cannot be bypassed by mapping.
// A nil address is blocked.
func IsBlockedIP(ip net.IP) bool {
	if ip == nil {
		return true
	}
	if v4 := ip.To4(); v4 != nil {
		ip = v4
	}
	for _, network := range blockedNets {
		if network.Contains(ip) {
			return true
		}
	}
	return false
}
