// Package gateway discovers the default network gateway of the host.
//
// Discovery is platform specific: Windows parses ipconfig, every other
// platform reads the routing table through jackpal/gateway. New returns the
// implementation for the running platform.
package gateway

import (
	"context"
	"errors"
	"net"
	"net/netip"
	"regexp"
)

// ErrNotFound is returned when no default gateway could be determined
var ErrNotFound = errors.New("default gateway not found")

var ipconfigPattern = regexp.MustCompile(`Default Gateway[. ]+: ([\d.]+)`)

// Static always returns the same address
type Static netip.Addr

// Discover implements models.GatewayDiscoverer
func (s Static) Discover(context.Context) (netip.Addr, error) {
	addr := netip.Addr(s)
	if !addr.IsValid() {
		return netip.Addr{}, ErrNotFound
	}
	return addr, nil
}

// addrFromIP converts a discovered gateway, unmapping IPv4-in-IPv6 forms
func addrFromIP(ip net.IP) (netip.Addr, error) {
	addr, ok := netip.AddrFromSlice(ip)
	addr = addr.Unmap()
	if !ok || addr.IsUnspecified() {
		return netip.Addr{}, ErrNotFound
	}
	return addr, nil
}

// parseIPConfig extracts the first IPv4 default gateway from ipconfig output
func parseIPConfig(output string) (netip.Addr, error) {
	for _, m := range ipconfigPattern.FindAllStringSubmatch(output, -1) {
		if addr, err := netip.ParseAddr(m[1]); err == nil {
			return addr, nil
		}
	}
	return netip.Addr{}, ErrNotFound
}
