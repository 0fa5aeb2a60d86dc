// Package orchestrator is the facade the transports talk to. It owns the
// session store, the history log and the dedup cache, and wires them into
// the dispatcher.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/config"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/dedup"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/dispatch"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/history"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/metrics"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/session"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Options wires an Orchestrator. Metrics and Tracer are optional.
type Options struct {
	Config      *config.Config
	Provisioner session.Provisioner
	Metrics     *metrics.Metrics
	Tracer      trace.Tracer
	Logger      *slog.Logger
}

// Orchestrator runs the session lifecycle and every command.
type Orchestrator struct {
	store      *session.Store
	history    *history.Log
	cache      *dedup.Cache
	dispatcher *dispatch.Dispatcher
	metrics    *metrics.Metrics
	logger     *slog.Logger

	startedAt    time.Time
	totalActions atomic.Int64

	sweepInterval time.Duration
	stopJanitor   context.CancelFunc
	janitorDone   chan struct{}
	shutdownOnce  sync.Once
}

// New builds an Orchestrator. Call Start to begin background upkeep.
func New(opts Options) *Orchestrator {
	cfg := opts.Config
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	store := session.NewStore(opts.Provisioner, session.Options{
		MaxSessions:       int64(cfg.MaxSessions),
		SerializeCommands: cfg.SerializeCommands,
		Logger:            opts.Logger,
	})
	log := history.New()
	cache := dedup.New(dedup.Options{
		Window:     cfg.DedupWindow,
		MaxSize:    cfg.DedupMaxSize,
		PerSession: cfg.DedupScope == config.ScopeSession,
	})

	o := &Orchestrator{
		store:   store,
		history: log,
		cache:   cache,
		dispatcher: dispatch.New(dispatch.Options{
			Sessions: store,
			History:  log,
			Cache:    cache,
			Metrics:  opts.Metrics,
			Tracer:   opts.Tracer,
			Logger:   opts.Logger,
		}),
		metrics:       opts.Metrics,
		logger:        opts.Logger,
		startedAt:     time.Now(),
		sweepInterval: cfg.DedupSweepInterval,
	}

	store.OnDestroy(func(sessionID string) {
		log.Delete(sessionID)
		o.reportSessions()
	})
	return o
}

// Start runs the dedup sweeper until Shutdown.
func (o *Orchestrator) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	o.stopJanitor = cancel
	o.janitorDone = make(chan struct{})

	go func() {
		defer close(o.janitorDone)
		o.cache.RunJanitor(ctx, o.sweepInterval, o.logger)
	}()
}

// OnDestroy registers fn to run after a session is destroyed.
func (o *Orchestrator) OnDestroy(fn func(sessionID string)) {
	o.store.OnDestroy(fn)
}

// CreateSession provisions a session and returns its id.
func (o *Orchestrator) CreateSession(ctx context.Context, req models.SessionConfig) (string, error) {
	sess, err := o.store.Create(ctx, req)
	if err != nil {
		return "", err
	}
	o.history.Open(sess.ID)
	o.reportSessions()
	return sess.ID, nil
}

// ExecuteAction runs an action; a non-nil sink also receives its
// lifecycle events.
func (o *Orchestrator) ExecuteAction(ctx context.Context, sessionID, action string, params models.Params, sink dispatch.Sink) (any, error) {
	o.totalActions.Add(1)
	return o.dispatcher.Execute(ctx, sessionID, action, params, sink)
}

// ExecuteQuery runs a read-only query.
func (o *Orchestrator) ExecuteQuery(ctx context.Context, sessionID, query string, params models.Params) (any, error) {
	return o.dispatcher.Query(ctx, sessionID, query, params)
}

// Screenshot captures the session's current page as PNG. It waits its
// turn like any other command but is not recorded in history.
func (o *Orchestrator) Screenshot(ctx context.Context, sessionID string) ([]byte, error) {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	end := sess.Begin()
	defer end()

	buf, err := sess.Page().Screenshot(ctx)
	if err != nil {
		return nil, apperr.Automation(fmt.Errorf("screenshot failed: %w", err))
	}
	return buf, nil
}

// DestroySession releases a session. Unknown ids are a no-op.
func (o *Orchestrator) DestroySession(ctx context.Context, sessionID string) {
	o.store.Destroy(ctx, sessionID)
}

// ListSessions returns every live session.
func (o *Orchestrator) ListSessions() []models.SessionInfo {
	return o.store.List()
}

// GetSession returns one session or a NotFound error.
func (o *Orchestrator) GetSession(sessionID string) (models.SessionInfo, error) {
	sess, err := o.store.Get(sessionID)
	if err != nil {
		return models.SessionInfo{}, err
	}
	return sess.Info(), nil
}

// History returns the session's records; unknown sessions have none.
func (o *Orchestrator) History(sessionID string) []models.Record {
	return o.history.Get(sessionID)
}

// Health reports liveness, load and memory.
func (o *Orchestrator) Health() models.Health {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return models.Health{
		Status:         "healthy",
		ActiveSessions: o.store.Len(),
		TotalActions:   o.totalActions.Load(),
		Uptime:         time.Since(o.startedAt).Seconds(),
		Memory: models.MemoryStats{
			Alloc:      mem.Alloc,
			TotalAlloc: mem.TotalAlloc,
			Sys:        mem.Sys,
			HeapAlloc:  mem.HeapAlloc,
			HeapInuse:  mem.HeapInuse,
			NumGC:      mem.NumGC,
			Goroutines: runtime.NumGoroutine(),
		},
		Timestamp: time.Now().UnixMilli(),
	}
}

// Shutdown destroys every session in parallel, stops the sweeper and
// drops the dedup cache. In-flight commands are not cancelled.
func (o *Orchestrator) Shutdown(ctx context.Context) error {
	var err error
	o.shutdownOnce.Do(func() {
		o.logger.Info("🛑 Shutting down orchestrator")

		err = o.store.Shutdown(ctx)

		if o.stopJanitor != nil {
			o.stopJanitor()
			<-o.janitorDone
		}
		o.cache.Clear()

		o.logger.Info("✅ Orchestrator shut down")
	})
	return err
}

func (o *Orchestrator) reportSessions() {
	if o.metrics != nil {
		o.metrics.SetActiveSessions(o.store.Len())
	}
}
