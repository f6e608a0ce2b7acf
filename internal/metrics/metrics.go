package metrics

import (
	"net/netip"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts probe and push outcomes of this process
type Metrics struct {
	probes  *prometheus.CounterVec
	pushes  *prometheus.CounterVec
	dropped *prometheus.CounterVec
}

// New creates the counters and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		probes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "netprobe",
				Name:      "probes_total",
				Help:      "Probe attempts by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),
		pushes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "netprobe",
				Name:      "report_pushes_total",
				Help:      "Push attempts to the collector",
			},
			[]string{"endpoint"},
		),
		dropped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "netprobe",
				Name:      "report_dropped_total",
				Help:      "Pushes that failed and were discarded",
			},
			[]string{"endpoint"},
		),
	}
	reg.MustRegister(m.probes, m.pushes, m.dropped)
	return m
}

// ObserveProbe implements models.Recorder
func (m *Metrics) ObserveProbe(target netip.Addr, ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	m.probes.WithLabelValues(target.String(), result).Inc()
}

// ObserveReport implements models.Recorder
func (m *Metrics) ObserveReport(target netip.Addr, err error) {
	m.pushes.WithLabelValues(target.String()).Inc()
	if err != nil {
		m.dropped.WithLabelValues(target.String()).Inc()
	}
}
