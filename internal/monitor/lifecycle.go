package monitor

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Run starts the monitor and blocks until ctx is cancelled and every task
// has returned.
func (m *Monitor) Run(ctx context.Context) error {
	if err := m.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	m.Stop()
	m.Wait()
	return nil
}

// lineWriter serialises whole lines from concurrent tasks
type lineWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lineWriter) printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, format+"\n", args...)
}
