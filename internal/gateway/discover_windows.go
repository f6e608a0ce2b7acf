//go:build windows

package gateway

import (
	"context"
	"fmt"
	"net/netip"
	"os/exec"
)

// IPConfig parses the output of ipconfig
type IPConfig struct{}

// New returns the discoverer for this platform
func New() *IPConfig {
	return &IPConfig{}
}

// Discover implements models.GatewayDiscoverer
func (IPConfig) Discover(ctx context.Context) (netip.Addr, error) {
	output, err := exec.CommandContext(ctx, "ipconfig").Output()
	if err != nil {
		return netip.Addr{}, fmt.Errorf("ipconfig: %w", err)
	}
	return parseIPConfig(string(output))
}
