package config

import (
	"fmt"
	"net/netip"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultCollectorPort = 9091
	DefaultInterval      = 1 * time.Second
	DefaultTimeout       = 10 * time.Second
)

// Load reads the INI file at path, applies NETPROBE_* environment overrides
// and returns the validated Config.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("ini")

	v.SetDefault("gateway.address", "")
	v.SetDefault("collector.port", DefaultCollectorPort)
	v.SetDefault("probe.interval", DefaultInterval)
	v.SetDefault("probe.timeout", DefaultTimeout)
	v.SetDefault("probe.privileged", true)
	v.SetDefault("metrics.listen", "")
	v.SetDefault("log.level", "info")

	v.SetEnvPrefix("netprobe")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	endpoints, err := parseEndpoints(v.GetStringMapString("endpoints"))
	if err != nil {
		return Config{}, err
	}

	var gateway netip.Addr
	if raw := strings.TrimSpace(v.GetString("gateway.address")); raw != "" {
		if gateway, err = netip.ParseAddr(raw); err != nil {
			return Config{}, fmt.Errorf("%w: gateway address: %v", ErrInvalid, err)
		}
	}

	cfg := Config{
		Gateway:       gateway,
		Endpoints:     endpoints,
		CollectorHost: v.GetString("collector.host"),
		CollectorPort: v.GetInt("collector.port"),
		Interval:      v.GetDuration("probe.interval"),
		Timeout:       v.GetDuration("probe.timeout"),
		Privileged:    v.GetBool("probe.privileged"),
		MetricsListen: v.GetString("metrics.listen"),
		LogLevel:      strings.ToLower(v.GetString("log.level")),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// parseEndpoints turns the [endpoints] section into addresses ordered by key
func parseEndpoints(section map[string]string) ([]netip.Addr, error) {
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	endpoints := make([]netip.Addr, 0, len(keys))
	for _, k := range keys {
		addr, err := netip.ParseAddr(strings.TrimSpace(section[k]))
		if err != nil {
			return nil, fmt.Errorf("%w: endpoint %s: %v", ErrInvalid, k, err)
		}
		endpoints = append(endpoints, addr)
	}
	return endpoints, nil
}
