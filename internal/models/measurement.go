package models

import (
	"net/netip"
	"time"
)

// Measurement is the outcome of one probe attempt. A nil Err means success.
type Measurement struct {
	Timestamp time.Time
	Target    netip.Addr
	RTT       time.Duration
	Err       error
}

// OK reports whether the probe got a reply
func (m Measurement) OK() bool {
	return m.Err == nil
}

// RTTMillis is the round-trip time truncated to whole milliseconds
func (m Measurement) RTTMillis() int64 {
	return m.RTT.Milliseconds()
}

// Task describes one running probe task
type Task struct {
	Target   netip.Addr `json:"target"`
	Identity string     `json:"identity"`
}
