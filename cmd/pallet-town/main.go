package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/zestagio/pallet-town/internal/config"
	"github.com/zestagio/pallet-town/internal/logger"
	serverdebug "github.com/zestagio/pallet-town/internal/server-debug"
)

var configPath = flag.String("config", "",
	"Path to config file. Empty: built-in defaults, serving the executable's directory "+
		"(a temporary build directory under `go run`, set PALLET_TOWN_SERVERS_STATIC_ROOT there)")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run app: %v", err)
	}
}

func run() error {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.ParseAndValidate(*configPath)
	if err != nil {
		return fmt.Errorf("parse and validate config %q: %v", *configPath, err)
	}

	logger.MustInit(
		logger.NewOptions(
			cfg.Log.Level,
			logger.WithSentryEnv(cfg.Global.Env),
			logger.WithSentryDsn(cfg.Sentry.Dsn),
			logger.WithProductionMode(cfg.Global.IsProduction()),
		),
	)
	defer logger.Sync()

	lg := zap.L().Named("main")
	lg.Info("document root", zap.String("root", cfg.Servers.Static.Root))

	// Servers.
	srvStatic, err := initServerStatic(
		cfg.Servers.Static.Addr,
		cfg.Servers.Static.Root,
		cfg.Servers.Static.MaxConns,
		cfg.Servers.Static.ShutdownTimeout,
		prometheus.DefaultRegisterer,
	)
	if err != nil {
		return fmt.Errorf("init static server: %v", err)
	}

	// Bind before anything else starts: a busy port is fatal.
	if err := srvStatic.Listen(); err != nil {
		return fmt.Errorf("bind static server: %v", err)
	}

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error { return srvStatic.Run(ctx) })

	if addr := cfg.Servers.Debug.Addr; addr != "" {
		srvDebug, err := serverdebug.New(serverdebug.NewOptions(addr, prometheus.DefaultGatherer))
		if err != nil {
			return fmt.Errorf("init debug server: %v", err)
		}
		eg.Go(func() error { return srvDebug.Run(ctx) })
	} else {
		lg.Debug("debug server disabled")
	}

	if err = eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("wait app stop: %v", err)
	}

	return nil
}
