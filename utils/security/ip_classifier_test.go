package security

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlockedIP(t *testing.T) {
	tests := []struct {
		name    string
		ip      string
		blocked bool
	}{
		{"loopback", "127.0.0.1", true},
		{"loopback high", "127.255.255.254", true},
		{"this-network", "0.0.0.0", true},
		{"private 10", "10.1.2.3", true},
		{"carrier-grade NAT", "100.64.0.1", true},
		{"link-local metadata", "169.254.169.254", true},
		{"private 172", "172.16.0.1", true},
		{"private 172 upper bound", "172.31.255.255", true},
		{"just outside 172 range", "172.32.0.1", false},
		{"ietf protocol", "192.0.0.1", true},
		{"documentation", "192.0.2.1", true},
		{"private 192.168", "192.168.1.1", true},
		{"benchmark", "198.18.0.1", true},
		{"documentation 198.51.100", "198.51.100.7", true},
		{"documentation 203.0.113", "203.0.113.9", true},
		{"multicast", "224.0.0.1", true},
		{"reserved", "240.0.0.1", true},
		{"public", "93.184.216.34", false},
		{"public dns", "8.8.8.8", false},
		{"v6 unspecified", "::", true},
		{"v6 loopback", "::1", true},
		{"v6 link-local", "fe80::1", true},
		{"v6 unique local", "fc00::1", true},
		{"v6 unique local fd", "fd12:3456::1", true},
		{"v6 multicast", "ff02::1", true},
		{"v6 public", "2606:2800:220:1:248:1893:25c8:1946", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip, "test address must parse")
			assert.Equal(t, tt.blocked, IsBlockedIP(ip))
		})
	}
}

func TestIsBlockedIP_MappedV4(t *testing.T) {
	// IPv4-mapped IPv6 must be classified by its embedded IPv4 address.
	assert.True(t, IsBlockedIP(net.ParseIP("::ffff:127.0.0.1")))
	assert.True(t, IsBlockedIP(net.ParseIP("::ffff:10.0.0.1")))
	assert.True(t, IsBlockedIP(net.ParseIP("::ffff:169.254.169.254")))
	assert.False(t, IsBlockedIP(net.ParseIP("::ffff:93.184.216.34")))
}

func TestIsBlockedIP_Nil(t *testing.T) {
	assert.True(t, IsBlockedIP(nil))
}
