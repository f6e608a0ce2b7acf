package models

import (
	"context"
	"net/netip"
	"time"
)

// Pinger performs a single latency measurement against a target
type Pinger interface {
	Ping(ctx context.Context, target netip.Addr, timeout time.Duration) (time.Duration, error)
}

// Reporter pushes one measurement to the collector under the given identity
type Reporter interface {
	Report(ctx context.Context, identity string, m Measurement) error
}

// GatewayDiscoverer finds the default gateway of the host
type GatewayDiscoverer interface {
	Discover(ctx context.Context) (netip.Addr, error)
}

// Recorder receives per-iteration counters
type Recorder interface {
	ObserveProbe(target netip.Addr, ok bool)
	ObserveReport(target netip.Addr, err error)
}
