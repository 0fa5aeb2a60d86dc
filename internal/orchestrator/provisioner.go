package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/browser"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/engine"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/session"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

//go:generate mockgen -package=orchestrator -destination=mock_browser_test.go github.com/shehryarbajwa/browserbase-orchestrator/internal/browser Launcher,Instance,Page
//go:generate mockgen -package=orchestrator -destination=mock_agent_test.go github.com/shehryarbajwa/browserbase-orchestrator/internal/engine Agent

type spawnFunc func(ctx context.Context, sessionID, connectURL, targetID string, cfg models.EngineConfig) (engine.Agent, error)

// Provisioner launches a browser and attaches an automation engine to its
// first tab.
type Provisioner struct {
	launcher browser.Launcher
	spawn    spawnFunc
	logger   *slog.Logger
}

// NewProvisioner creates a Provisioner backed by launcher and spawner.
func NewProvisioner(launcher browser.Launcher, spawner *engine.Spawner, logger *slog.Logger) *Provisioner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provisioner{
		launcher: launcher,
		spawn: func(ctx context.Context, sessionID, connectURL, targetID string, cfg models.EngineConfig) (engine.Agent, error) {
			b, err := spawner.Spawn(ctx, sessionID, connectURL, targetID, cfg)
			if err != nil {
				return nil, err
			}
			return b, nil
		},
		logger: logger,
	}
}

// Provision implements session.Provisioner. When the engine fails to
// start the browser is closed before the error is returned.
func (p *Provisioner) Provision(ctx context.Context, sessionID string, cfg models.EngineConfig) (session.Handle, error) {
	inst, err := p.launcher.Launch(ctx, browser.LaunchOptions{
		SessionID: sessionID,
		Headless:  cfg.Headless,
		Viewport:  browser.Viewport{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight},

		NetworkIdleTimeout: time.Duration(cfg.WaitForNetworkIdleTimeout) * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	p.logger.Info("✓ Browser launched", "sessionId", sessionID, "connectUrl", inst.ConnectURL())

	agent, err := p.spawn(ctx, sessionID, inst.ConnectURL(), inst.Page().TargetID(), cfg)
	if err != nil {
		if cerr := inst.Close(context.WithoutCancel(ctx)); cerr != nil {
			p.logger.Error("Failed to close browser after engine start failure", "sessionId", sessionID, "error", cerr)
		}
		return nil, fmt.Errorf("failed to start automation engine: %w", err)
	}
	p.logger.Info("✓ Automation engine ready", "sessionId", sessionID)

	return &handle{agent: agent, browser: inst}, nil
}

// handle owns a session's engine and browser. Close releases the engine
// first, then the browser, exactly once.
type handle struct {
	agent   engine.Agent
	browser browser.Instance

	once sync.Once
	err  error
}

func (h *handle) Agent() engine.Agent {
	return h.agent
}

func (h *handle) Page() browser.Page {
	return h.browser.Page()
}

func (h *handle) Close(ctx context.Context) error {
	h.once.Do(func() {
		var errs []error
		if err := h.agent.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close automation engine: %w", err))
		}
		if err := h.browser.Close(ctx); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
		h.err = errors.Join(errs...)
	})
	return h.err
}
