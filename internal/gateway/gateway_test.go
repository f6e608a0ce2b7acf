package gateway

import (
	"context"
	"net"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddrFromIP(t *testing.T) {
	tests := []struct {
		name     string
		ip       net.IP
		expected string
		notFound bool
	}{
		{name: "ipv4", ip: net.IPv4(192, 168, 1, 1).To4(), expected: "192.168.1.1"},
		{name: "ipv4 in ipv6 form", ip: net.IPv4(10, 0, 0, 1), expected: "10.0.0.1"},
		{name: "ipv6", ip: net.ParseIP("fe80::1"), expected: "fe80::1"},
		{name: "nil", ip: nil, notFound: true},
		{name: "unspecified", ip: net.IPv4zero, notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := addrFromIP(tt.ip)
			if tt.notFound {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}

func TestParseIPConfig(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected string
		notFound bool
	}{
		{
			name: "ipv4 gateway",
			output: `Ethernet adapter Ethernet:

   Connection-specific DNS Suffix  . : lan
   IPv4 Address. . . . . . . . . . . : 192.168.1.20
   Subnet Mask . . . . . . . . . . . : 255.255.255.0
   Default Gateway . . . . . . . . . : 192.168.1.1
`,
			expected: "192.168.1.1",
		},
		{
			name: "ipv6 listed first",
			output: `   Default Gateway . . . . . . . . . : fe80::1%12
   Default Gateway . . . . . . . . . : 10.0.0.1
`,
			expected: "10.0.0.1",
		},
		{
			name:     "disconnected adapter",
			output:   "   Default Gateway . . . . . . . . . :\n",
			notFound: true,
		},
		{
			name:     "empty",
			output:   "",
			notFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := parseIPConfig(tt.output)
			if tt.notFound {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}

func TestStatic(t *testing.T) {
	addr, err := Static(netip.MustParseAddr("10.1.1.1")).Discover(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10.1.1.1", addr.String())

	_, err = Static(netip.Addr{}).Discover(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}
