package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/api"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/browser"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/config"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/engine"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/metrics"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/orchestrator"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/ratelimit"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/stream"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/telemetry"
)

const (
	serviceName = "browserbase-orchestrator"
	version     = "2.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting orchestrator...", "version", version)

	tp, err := telemetry.NewProvider(telemetry.Options{ServiceName: serviceName, Stdout: cfg.TraceStdout})
	if err != nil {
		return err
	}
	m := metrics.New()
	logger.Info("✓ Telemetry initialized", "traceStdout", cfg.TraceStdout)

	launcher, closeLauncher, err := newLauncher(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeLauncher()

	spawner := engine.NewSpawner(engine.SpawnerOptions{
		Command:        cfg.EngineCommand,
		Args:           []string{cfg.EngineScript},
		StartupTimeout: cfg.EngineStartupTimeout,
		Logger:         logger,
	})

	orch := orchestrator.New(orchestrator.Options{
		Config:      cfg,
		Provisioner: orchestrator.NewProvisioner(launcher, spawner, logger),
		Metrics:     m,
		Tracer:      tp.Tracer(),
		Logger:      logger,
	})
	orch.Start(ctx)
	logger.Info("✓ Orchestrator initialized",
		"maxSessions", cfg.MaxSessions,
		"serializeCommands", cfg.SerializeCommands,
		"dedupWindow", cfg.DedupWindow,
		"dedupScope", cfg.DedupScope,
	)

	var mirror *stream.NATSMirror
	if cfg.NATSURL != "" {
		nc, err := stream.ConnectNATS(cfg.NATSURL, serviceName)
		if err != nil {
			return err
		}
		defer nc.Close()
		mirror = stream.NewNATSMirror(nc, cfg.NATSSubjectPrefix)
		logger.Info("✓ NATS event mirror initialized", "url", cfg.NATSURL, "subjects", mirror.Subject("*"))
	}

	gateway := stream.NewGateway(ctx, orch, stream.Options{
		Mirror:  mirror,
		Metrics: m,
		Logger:  logger,
	})
	orch.OnDestroy(gateway.SessionDestroyed)
	logger.Info("✓ Event stream initialized")

	limiter := ratelimit.NewLimiter(cfg.RateLimitPerHour, cfg.RateLimitBurst)
	logger.Info("✓ Rate limiter initialized", "perHour", cfg.RateLimitPerHour, "burst", cfg.RateLimitBurst)

	handler := api.NewHandler(orch, gateway, version, logger)
	router := handler.SetupRoutes(api.RouteOptions{
		Stream:  gateway,
		Metrics: m,
		Limiter: limiter,
	})
	srv := api.NewServer(cfg.Addr(), router)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("🚀 Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("⏳ Shutting down server gracefully...")
	case err := <-serveErr:
		if err != nil {
			logger.Error("Server error", "error", err)
		}
	}

	// Each phase gets its own deadline so a slow HTTP drain cannot leave
	// browsers running.
	var errs []error
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	if err := srv.Shutdown(drainCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server: %w", err))
	}
	cancelDrain()
	gateway.Shutdown()

	releaseCtx, cancelRelease := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	if err := orch.Shutdown(releaseCtx); err != nil {
		errs = append(errs, fmt.Errorf("orchestrator: %w", err))
	}
	cancelRelease()

	flushCtx, cancelFlush := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelFlush()
	if err := tp.Shutdown(flushCtx); err != nil {
		errs = append(errs, fmt.Errorf("telemetry: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	logger.Info("✅ Server stopped cleanly")
	return nil
}

// newLauncher builds the configured browser backend. The returned func
// releases it. Browsers outlive the signal context so shutdown can close
// them in order.
func newLauncher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (browser.Launcher, func(), error) {
	parent := context.WithoutCancel(ctx)

	if cfg.BrowserBackend != config.BackendDocker {
		logger.Info("✓ Local browser backend initialized", "chromePath", cfg.ChromePath)
		return browser.NewLocalLauncher(parent, cfg.ChromePath), func() {}, nil
	}

	docker, err := browser.NewDockerLauncher(parent, cfg.BrowserImage, logger)
	if err != nil {
		return nil, nil, err
	}

	pullCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	logger.Info("⏳ Ensuring browser image is available...", "image", cfg.BrowserImage)
	if err := docker.EnsureImage(pullCtx); err != nil {
		docker.Close()
		return nil, nil, err
	}
	logger.Info("✓ Docker browser backend initialized", "image", cfg.BrowserImage)

	return docker, func() { docker.Close() }, nil
}
