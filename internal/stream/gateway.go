package stream

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/dispatch"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/metrics"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Executor runs a streamed action
type Executor interface {
	ExecuteAction(ctx context.Context, sessionID, action string, params models.Params, sink dispatch.Sink) (any, error)
}

// Options configures a Gateway. Mirror and Metrics are optional.
type Options struct {
	Registry *Registry
	Mirror   *NATSMirror
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// Gateway upgrades /ws requests and runs the subscription protocol on
// each connection.
type Gateway struct {
	exec     Executor
	registry *Registry
	mirror   *NATSMirror
	metrics  *metrics.Metrics
	logger   *slog.Logger
	upgrader websocket.Upgrader

	// actions outlive the connection that issued them
	ctx context.Context

	mu    sync.Mutex
	conns map[*conn]struct{}
}

// NewGateway creates a Gateway dispatching actions to exec.
func NewGateway(ctx context.Context, exec Executor, opts Options) *Gateway {
	if opts.Registry == nil {
		opts.Registry = NewRegistry()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Gateway{
		exec:     exec,
		registry: opts.Registry,
		mirror:   opts.Mirror,
		metrics:  opts.Metrics,
		logger:   opts.Logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		ctx:   context.WithoutCancel(ctx),
		conns: make(map[*conn]struct{}),
	}
}

// ServeHTTP upgrades the request and starts the connection pumps.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn("Failed to upgrade connection", "error", err)
		return
	}

	c := newConn(g, ws)

	g.mu.Lock()
	g.conns[c] = struct{}{}
	g.mu.Unlock()
	if g.metrics != nil {
		g.metrics.StreamConnected(1)
	}
	g.logger.Info("🔌 Stream client connected", "remote", r.RemoteAddr)

	go c.writePump()
	go c.readPump()
}

// Sink returns where events of an action on sessionID should go: its
// current subscriber and the mirror. It is nil when there is neither.
func (g *Gateway) Sink(sessionID string) dispatch.Sink {
	sub, _ := g.registry.Lookup(sessionID)
	return sinkOf(sub, g.mirror)
}

// SessionDestroyed forgets the subscription of a destroyed session.
func (g *Gateway) SessionDestroyed(sessionID string) {
	g.registry.Remove(sessionID)
}

// Connections returns the number of open connections.
func (g *Gateway) Connections() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.conns)
}

// Shutdown closes every open connection.
func (g *Gateway) Shutdown() {
	g.mu.Lock()
	conns := make([]*conn, 0, len(g.conns))
	for c := range g.conns {
		conns = append(conns, c)
	}
	g.mu.Unlock()

	for _, c := range conns {
		c.Close()
	}
	g.logger.Info("Stream connections closed", "count", len(conns))
}

func (g *Gateway) remove(c *conn) {
	g.mu.Lock()
	_, ok := g.conns[c]
	delete(g.conns, c)
	g.mu.Unlock()

	if ok && g.metrics != nil {
		g.metrics.StreamConnected(-1)
	}
}
