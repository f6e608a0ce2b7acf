//go:build !windows

package gateway

import (
	"context"
	"fmt"
	"net/netip"

	jgateway "github.com/jackpal/gateway"
)

// RouteTable asks the OS routing table for the default route
type RouteTable struct{}

// New returns the discoverer for this platform
func New() *RouteTable {
	return &RouteTable{}
}

// Discover implements models.GatewayDiscoverer
func (RouteTable) Discover(ctx context.Context) (netip.Addr, error) {
	if err := ctx.Err(); err != nil {
		return netip.Addr{}, err
	}
	ip, err := jgateway.DiscoverGateway()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return addrFromIP(ip)
}
