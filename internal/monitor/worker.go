package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log/level"

	"netprobe/internal/models"
)

// probeWorker probes one target until ctx is cancelled. The interval is
// slept after each iteration, so a slow probe stretches the period.
func (m *Monitor) probeWorker(ctx context.Context, task models.Task) {
	defer m.wg.Done()

	timer := time.NewTimer(m.interval)
	timer.Stop()
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return
		}

		m.performProbe(ctx, task)

		timer.Reset(m.interval)
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
	}
}

// performProbe runs one probe and, on success, one report
func (m *Monitor) performProbe(ctx context.Context, task models.Task) {
	defer func() {
		if r := recover(); r != nil {
			level.Error(m.logger).Log("msg", "probe iteration panicked", "target", task.Target, "panic", fmt.Sprint(r))
		}
	}()

	rtt, err := m.pinger.Ping(ctx, task.Target, m.timeout)
	if ctx.Err() != nil {
		return
	}

	result := models.Measurement{
		Timestamp: m.now(),
		Target:    task.Target,
		RTT:       rtt,
		Err:       err,
	}
	m.recorder.ObserveProbe(task.Target, result.OK())

	if !result.OK() {
		m.out.printf("%d || Error pinging %s: %v", result.Timestamp.UnixMilli(), task.Target, result.Err)
		return
	}

	m.out.printf("%d || Ping time to %s: %dms", result.Timestamp.UnixMilli(), task.Target, result.RTTMillis())

	// Push failures are only counted: not logged, not retried.
	m.recorder.ObserveReport(task.Target, m.reporter.Report(ctx, task.Identity, result))
}
