package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"netprobe/internal/models"
)

// ErrPush is wrapped by every failed push
var ErrPush = errors.New("push to collector failed")

// Pusher posts measurements to a pushgateway
type Pusher struct {
	client   *http.Client
	baseURL  string
	hostname string
}

// NewHTTPClient returns the client shared by all tasks
func NewHTTPClient(timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.MaxIdleConnsPerHost = 32
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

// NewPusher creates a Pusher for the collector at addr (host:port). The
// hostname labels every series as the reporting client.
func NewPusher(client *http.Client, addr, hostname string) *Pusher {
	return &Pusher{
		client:   client,
		baseURL:  "http://" + addr,
		hostname: hostname,
	}
}

// URL returns the push endpoint for the given job identity
func (p *Pusher) URL(identity string) string {
	return p.baseURL + "/metrics/job/" + url.PathEscape(identity)
}

// Report pushes a successful measurement. Failed measurements are not pushed.
func (p *Pusher) Report(ctx context.Context, identity string, m models.Measurement) error {
	if !m.OK() {
		return nil
	}

	body := FormatPayload(p.hostname, m.Target.String(), m.RTTMillis())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL(identity), strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPush, err)
	}
	req.Header.Set("Content-Type", "text/plain")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPush, err)
	}
	defer resp.Body.Close()
	// Drain so the connection goes back to the pool.
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s", ErrPush, resp.Status)
	}
	return nil
}
