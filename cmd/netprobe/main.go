package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"netprobe/internal/config"
	"netprobe/internal/gateway"
	"netprobe/internal/metrics"
	"netprobe/internal/models"
	"netprobe/internal/monitor"
	"netprobe/internal/ping"
	"netprobe/internal/report"
	"netprobe/internal/targets"
	"netprobe/internal/web"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:           "netprobe",
	Short:         "Probe gateway and endpoint latency and push it to a pushgateway",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer cancel()
		return run(ctx, os.Stderr)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "config.ini", "config file")
}

func main() {
	// A missing .env is fine, everything can come from the INI file.
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		level.Error(newLogger(os.Stderr, "info")).Log("msg", "netprobe failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	switch lvl {
	case "debug":
		logger = level.NewFilter(logger, level.AllowDebug())
	case "warn":
		logger = level.NewFilter(logger, level.AllowWarn())
	case "error":
		logger = level.NewFilter(logger, level.AllowError())
	default:
		logger = level.NewFilter(logger, level.AllowInfo())
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger
}

// run wires and starts the probe. Startup errors are returned, not logged;
// main logs them once.
func run(ctx context.Context, stderr io.Writer) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger := newLogger(stderr, cfg.LogLevel)

	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("hostname: %w", err)
	}

	var discoverer models.GatewayDiscoverer = gateway.New()
	if cfg.Gateway.IsValid() {
		discoverer = gateway.Static(cfg.Gateway)
	}

	addrs, err := targets.Resolve(ctx, discoverer, cfg.Endpoints)
	if err != nil {
		return err
	}
	level.Info(logger).Log("msg", "targets resolved", "gateway", addrs[0], "endpoints", len(addrs)-1, "collector", cfg.CollectorAddr())

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(reg)

	pusher := report.NewPusher(report.NewHTTPClient(cfg.Timeout), cfg.CollectorAddr(), hostname)
	mon := monitor.New(addrs, ping.New(cfg.Privileged), pusher, monitor.Options{
		Interval: cfg.Interval,
		Timeout:  cfg.Timeout,
		Output:   os.Stdout,
		Recorder: recorder,
		Logger:   log.With(logger, "component", "monitor"),
	})

	// The status server binds before any task starts so a bad listen
	// address fails the process instead of silently running without it.
	serverDone := make(chan struct{})
	if cfg.MetricsListen == "" {
		close(serverDone)
	} else {
		ln, err := net.Listen("tcp", cfg.MetricsListen)
		if err != nil {
			return fmt.Errorf("status server: %w", err)
		}
		srv := web.New(mon, reg, log.With(logger, "component", "web"))
		go func() {
			defer close(serverDone)
			if err := srv.Serve(ctx, ln); err != nil {
				level.Error(logger).Log("msg", "status server failed", "err", err)
			}
		}()
	}

	err = mon.Run(ctx)
	<-serverDone
	level.Info(logger).Log("msg", "shutdown complete")
	return err
}
