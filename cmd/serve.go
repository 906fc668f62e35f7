package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lincloud/core/address"
	"lincloud/core/config"
	"lincloud/core/listener"
	"lincloud/core/logger"
	"lincloud/core/startup"

	"go.uber.org/zap"
)

// runService is replaced in tests to capture the parsed request.
var runService = serve

func serve(ctx context.Context, opts *options, req startup.Request) error {
	// 1. Load ambient configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Initialize Logger
	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	if opts.daemon {
		logg.Warn("Daemon mode is not supported, running in the foreground")
	}

	// 3. Resolve the service configuration
	svc, err := startup.NewBuilder(logg).Build(req)
	if err != nil {
		return err
	}

	// 4. Translate interfaces into endpoints
	endpoints, err := address.Translate(svc.Interfaces(), svc.Port())
	if err != nil {
		return err
	}

	// 5. Serve until interrupted
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := listener.NewBootstrap(newAppFactory(cfg.Server, logg), logg, cfg.Server.ShutdownTimeout())
	return b.Run(ctx, endpoints, svc.Path())
}
