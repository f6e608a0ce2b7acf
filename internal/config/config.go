package config

import (
	"errors"
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"time"
)

// ErrInvalid is wrapped by every validation and parse failure
var ErrInvalid = errors.New("invalid configuration")

// Config holds all configuration for the probe, read once at startup
type Config struct {
	Gateway       netip.Addr
	Endpoints     []netip.Addr
	CollectorHost string
	CollectorPort int
	Interval      time.Duration
	Timeout       time.Duration
	Privileged    bool
	MetricsListen string
	LogLevel      string
}

// CollectorAddr returns host:port of the pushgateway
func (c *Config) CollectorAddr() string {
	return net.JoinHostPort(c.CollectorHost, strconv.Itoa(c.CollectorPort))
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.CollectorHost == "" {
		return fmt.Errorf("%w: collector host must be specified", ErrInvalid)
	}
	if c.CollectorPort <= 0 || c.CollectorPort > 65535 {
		return fmt.Errorf("%w: collector port must be between 1 and 65535", ErrInvalid)
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval must be positive", ErrInvalid)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalid)
	}
	for _, ep := range c.Endpoints {
		if !ep.IsValid() {
			return fmt.Errorf("%w: endpoint address is empty", ErrInvalid)
		}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalid, c.LogLevel)
	}
	return nil
}
