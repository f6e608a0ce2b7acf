package targets

import (
	"context"
	"fmt"
	"net/netip"

	"netprobe/internal/models"
)

// Resolve returns the probe targets: the gateway first, then the configured
// endpoints in order. Duplicates are kept, each one gets its own task.
func Resolve(ctx context.Context, d models.GatewayDiscoverer, endpoints []netip.Addr) ([]netip.Addr, error) {
	gw, err := d.Discover(ctx)
	if err != nil {
		return nil, fmt.Errorf("resolve gateway: %w", err)
	}

	targets := make([]netip.Addr, 0, len(endpoints)+1)
	targets = append(targets, gw)
	targets = append(targets, endpoints...)
	return targets, nil
}
