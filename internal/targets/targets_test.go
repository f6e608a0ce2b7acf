package targets

import (
	"context"
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netprobe/internal/gateway"
)

func TestResolve(t *testing.T) {
	gw := netip.MustParseAddr("192.168.1.1")
	endpoints := []netip.Addr{
		netip.MustParseAddr("10.0.0.5"),
		netip.MustParseAddr("192.168.1.1"),
	}

	got, err := Resolve(context.Background(), gateway.Static(gw), endpoints)
	require.NoError(t, err)
	assert.Equal(t, []netip.Addr{gw, endpoints[0], endpoints[1]}, got)
}

func TestResolveNoEndpoints(t *testing.T) {
	got, err := Resolve(context.Background(), gateway.Static(netip.MustParseAddr("10.0.0.1")), nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestResolveGatewayFailure(t *testing.T) {
	_, err := Resolve(context.Background(), gateway.Static(netip.Addr{}), []netip.Addr{netip.MustParseAddr("8.8.8.8")})
	require.Error(t, err)
	assert.ErrorIs(t, err, gateway.ErrNotFound)
}
