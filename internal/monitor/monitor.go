package monitor

import (
	"context"
	"errors"
	"io"
	"net/netip"
	"os"
	"sync"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"netprobe/internal/models"
)

// ErrStarted is returned by Start on a monitor that is already running
var ErrStarted = errors.New("monitor already started")

// Options tune a Monitor. Zero values fall back to the defaults.
type Options struct {
	Interval time.Duration
	Timeout  time.Duration
	Output   io.Writer
	Recorder models.Recorder
	Logger   log.Logger
	Now      func() time.Time
}

// Monitor runs one probe task per target
type Monitor struct {
	targets  []netip.Addr
	pinger   models.Pinger
	reporter models.Reporter
	recorder models.Recorder
	interval time.Duration
	timeout  time.Duration
	out      *lineWriter
	logger   log.Logger
	now      func() time.Time

	mu     sync.RWMutex
	tasks  []models.Task
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// New creates a new Monitor for a fixed set of targets
func New(targets []netip.Addr, pinger models.Pinger, reporter models.Reporter, opts Options) *Monitor {
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Recorder == nil {
		opts.Recorder = nopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Monitor{
		targets:  append([]netip.Addr(nil), targets...),
		pinger:   pinger,
		reporter: reporter,
		recorder: opts.Recorder,
		interval: opts.Interval,
		timeout:  opts.Timeout,
		out:      &lineWriter{w: opts.Output},
		logger:   opts.Logger,
		now:      opts.Now,
	}
}

// Start spawns the probe tasks. Each task gets a fresh identity.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return ErrStarted
	}

	ctx, m.cancel = context.WithCancel(ctx)
	level.Info(m.logger).Log("msg", "starting monitor", "targets", len(m.targets), "interval", m.interval, "timeout", m.timeout)

	m.tasks = make([]models.Task, 0, len(m.targets))
	for _, target := range m.targets {
		task := models.Task{Target: target, Identity: uuid.NewString()}
		m.tasks = append(m.tasks, task)

		m.wg.Add(1)
		go m.probeWorker(ctx, task)
	}
	return nil
}

// Stop cancels all tasks. Probes and pushes in flight are interrupted.
func (m *Monitor) Stop() {
	m.mu.RLock()
	cancel := m.cancel
	m.mu.RUnlock()

	if cancel != nil {
		level.Info(m.logger).Log("msg", "stopping monitor")
		cancel()
	}
}

// Wait blocks until all tasks finish
func (m *Monitor) Wait() {
	m.wg.Wait()
	level.Info(m.logger).Log("msg", "monitor stopped")
}

// Tasks returns the running tasks in target order
func (m *Monitor) Tasks() []models.Task {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]models.Task(nil), m.tasks...)
}

type nopRecorder struct{}

func (nopRecorder) ObserveProbe(netip.Addr, bool) {}
func (nopRecorder) ObserveReport(netip.Addr, error) {}
