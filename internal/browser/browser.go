// Package browser owns the browser processes behind automation sessions:
// it launches Chrome locally or in a container and exposes the page the
// session drives through chromedp.
package browser

import (
	"context"
	"time"

	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Viewport is the emulated window size
type Viewport struct {
	Width  int
	Height int
}

// LaunchOptions configures one browser launch
type LaunchOptions struct {
	SessionID string
	Headless  bool
	Viewport  Viewport
	// NetworkIdleTimeout bounds how long Navigate waits for the network
	// to go quiet after load. Zero skips the wait.
	NetworkIdleTimeout time.Duration
}

// Page is the browser-control surface a session needs beyond the
// automation engine.
type Page interface {
	Navigate(ctx context.Context, url string) error
	Location(ctx context.Context) (models.Location, error)
	Tabs(ctx context.Context) ([]models.TabInfo, error)
	ActivateTab(ctx context.Context, index int) error
	Evaluate(ctx context.Context, script string) (any, error)
	Screenshot(ctx context.Context) ([]byte, error)
	// TargetID identifies the CDP target of the active tab, so the
	// automation engine can attach to the same page.
	TargetID() string
}

// Instance is one launched browser. Close releases the process or
// container and is safe to call more than once.
type Instance interface {
	Page() Page
	ConnectURL() string
	Close(ctx context.Context) error
}

// Launcher starts browsers
type Launcher interface {
	Launch(ctx context.Context, opts LaunchOptions) (Instance, error)
}
