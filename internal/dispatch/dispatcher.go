package dispatch

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/dedup"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/history"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/metrics"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/telemetry"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Options wires a Dispatcher to the orchestrator's collaborators. Metrics
// and Tracer are optional.
type Options struct {
	Sessions Sessions
	History  *history.Log
	Cache    *dedup.Cache
	Metrics  *metrics.Metrics
	Tracer   trace.Tracer
	Logger   *slog.Logger
}

// Dispatcher runs actions and queries through their middleware chains.
type Dispatcher struct {
	actions Handler
	queries Handler
}

// New builds the action and query chains.
func New(opts Options) *Dispatcher {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Tracer == nil {
		opts.Tracer = telemetry.Tracer()
	}

	observe := []Middleware{Logger(opts.Logger)}
	if opts.Metrics != nil {
		observe = append(observe, Metrics(opts.Metrics))
	}
	observe = append(observe, Tracing(opts.Tracer))

	actions := []Middleware{
		Stream(opts.Logger),
		Lookup(opts.Sessions),
		Activity(),
		Dedup(opts.Cache, opts.Metrics, opts.Logger),
	}
	actions = append(actions, observe...)
	actions = append(actions, History(opts.History), Recovery())

	queries := []Middleware{
		Lookup(opts.Sessions),
		Activity(),
		QueryFailed(),
	}
	queries = append(queries, observe...)
	queries = append(queries, History(opts.History), Recovery())

	return &Dispatcher{
		actions: Chain(actions...)(executeAction),
		queries: Chain(queries...)(executeQuery),
	}
}

// Execute runs an action. With a non-nil sink the lifecycle is also
// reported as stream events.
func (d *Dispatcher) Execute(ctx context.Context, sessionID, action string, params models.Params, sink Sink) (any, error) {
	return d.actions(ctx, &Command{
		Kind:      models.KindAction,
		SessionID: sessionID,
		Name:      action,
		Params:    normalize(params),
		Sink:      sink,
	})
}

// Query runs a read-only query.
func (d *Dispatcher) Query(ctx context.Context, sessionID, query string, params models.Params) (any, error) {
	return d.queries(ctx, &Command{
		Kind:      models.KindQuery,
		SessionID: sessionID,
		Name:      query,
		Params:    normalize(params),
	})
}

func normalize(params models.Params) models.Params {
	if params == nil {
		return models.Params{}
	}
	return params
}
