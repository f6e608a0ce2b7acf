package ping

import (
	"context"
	"errors"
	"fmt"
	"net/netip"
	"time"

	probing "github.com/prometheus-community/pro-bing"
)

const (
	// payloadSize is the smallest payload pro-bing accepts: an 8 byte
	// timestamp plus a 16 byte tracker.
	payloadSize = 24
	defaultTTL  = 128
)

var (
	// ErrTimeout is returned when no reply arrives within the timeout
	ErrTimeout = errors.New("request timed out")
	// ErrSetup covers socket, permission and other OS-level failures
	ErrSetup = errors.New("ping setup failed")
)

// Pinger sends single ICMP echo requests
type Pinger struct {
	privileged bool
}

// New creates a new Pinger. Privileged pingers use raw sockets, the others
// fall back to unprivileged UDP ICMP where the OS allows it.
func New(privileged bool) *Pinger {
	return &Pinger{privileged: privileged}
}

// Ping sends one echo request to target and returns the round-trip time
func (p *Pinger) Ping(ctx context.Context, target netip.Addr, timeout time.Duration) (time.Duration, error) {
	pinger, err := p.newProbe(target, timeout)
	if err != nil {
		return 0, err
	}

	if err := pinger.RunWithContext(ctx); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSetup, err)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return rttFromStatistics(pinger.Statistics())
}

// newProbe configures a single-echo pro-bing pinger for target
func (p *Pinger) newProbe(target netip.Addr, timeout time.Duration) (*probing.Pinger, error) {
	pinger, err := probing.NewPinger(target.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSetup, err)
	}
	pinger.Count = 1
	pinger.Timeout = timeout
	pinger.Size = payloadSize
	pinger.TTL = defaultTTL
	pinger.SetDoNotFragment(true)
	pinger.SetPrivileged(p.privileged)
	return pinger, nil
}

// rttFromStatistics extracts the reply time of a single-echo run
func rttFromStatistics(stats *probing.Statistics) (time.Duration, error) {
	if stats == nil || stats.PacketsRecv == 0 {
		return 0, ErrTimeout
	}
	if len(stats.Rtts) > 0 {
		return stats.Rtts[0], nil
	}
	return stats.MinRtt, nil
}
