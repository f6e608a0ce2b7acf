package report

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/netip"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"netprobe/internal/models"
)

type push struct {
	method      string
	path        string
	contentType string
	body        string
}

type collector struct {
	mu     sync.Mutex
	pushes []push
	status int
}

func (c *collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	c.mu.Lock()
	c.pushes = append(c.pushes, push{r.Method, r.URL.Path, r.Header.Get("Content-Type"), string(body)})
	status := c.status
	c.mu.Unlock()
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
}

func (c *collector) received() []push {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]push(nil), c.pushes...)
}

func newCollector(t *testing.T, status int) (*collector, *Pusher) {
	t.Helper()
	c := &collector{status: status}
	srv := httptest.NewServer(c)
	t.Cleanup(srv.Close)
	return c, NewPusher(srv.Client(), strings.TrimPrefix(srv.URL, "http://"), "host1")
}

func TestFormatPayload(t *testing.T) {
	expected := "# HELP ping_time Round Trip Time to Endpoint\n" +
		"# TYPE ping_time gauge\n" +
		"ping_time{client=\"myhost\", endpoint=\"8.8.8.8\"} 7\n"

	assert.Equal(t, expected, FormatPayload("myhost", "8.8.8.8", 7))
}

func TestPusherReportSuccess(t *testing.T) {
	c, p := newCollector(t, http.StatusOK)

	m := models.Measurement{
		Timestamp: time.Now(),
		Target:    netip.MustParseAddr("192.168.1.1"),
		RTT:       12*time.Millisecond + 700*time.Microsecond,
	}
	require.NoError(t, p.Report(context.Background(), "job-1", m))

	pushes := c.received()
	require.Len(t, pushes, 1)
	got := pushes[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/metrics/job/job-1", got.path)
	assert.Equal(t, "text/plain", got.contentType)
	assert.Contains(t, got.body, `ping_time{client="host1", endpoint="192.168.1.1"} 12`+"\n")
}

func TestPusherReportFailureNotPushed(t *testing.T) {
	c, p := newCollector(t, http.StatusOK)

	m := models.Measurement{
		Target: netip.MustParseAddr("10.0.0.5"),
		Err:    errors.New("request timed out"),
	}
	require.NoError(t, p.Report(context.Background(), "job-1", m))
	assert.Empty(t, c.received())
}

func TestPusherReportErrors(t *testing.T) {
	m := models.Measurement{Target: netip.MustParseAddr("8.8.8.8"), RTT: time.Millisecond}

	t.Run("non-2xx", func(t *testing.T) {
		c, p := newCollector(t, http.StatusBadRequest)
		err := p.Report(context.Background(), "job", m)
		assert.ErrorIs(t, err, ErrPush)
		assert.Len(t, c.received(), 1)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		addr := strings.TrimPrefix(srv.URL, "http://")
		srv.Close()

		p := NewPusher(NewHTTPClient(time.Second), addr, "host1")
		assert.ErrorIs(t, p.Report(context.Background(), "job", m), ErrPush)
	})
}

func TestPusherURL(t *testing.T) {
	p := NewPusher(NewHTTPClient(time.Second), "192.168.150.106:9091", "h")
	assert.Equal(t, "http://192.168.150.106:9091/metrics/job/abc", p.URL("abc"))
}
