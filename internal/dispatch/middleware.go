package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/dedup"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/engine"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/history"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/metrics"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/telemetry"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Lookup resolves cmd.SessionID, failing with NotFound for unknown ids.
func Lookup(sessions Sessions) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (any, error) {
			sess, err := sessions.Get(cmd.SessionID)
			if err != nil {
				return nil, err
			}
			cmd.Session = sess
			return next(ctx, cmd)
		}
	}
}

// Activity marks the session busy for the duration of the command and
// flags it failed when the engine connection is lost.
func Activity() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (any, error) {
			end := cmd.Session.Begin()
			defer end()

			result, err := next(ctx, cmd)
			if errors.Is(err, engine.ErrEngineExited) {
				cmd.Session.MarkFailed()
			}
			return result, err
		}
	}
}

// Dedup answers a repeated action from the cache. Only successful results
// are recorded; a hit skips every inner layer, history included.
func Dedup(cache *dedup.Cache, m *metrics.Metrics, logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (any, error) {
			key := cache.Key(cmd.SessionID, cmd.Name, cmd.Params)

			if !cache.ShouldExecute(key) {
				if cached, ok := cache.CachedResult(key); ok {
					logger.Debug("Duplicate action suppressed", "sessionId", cmd.SessionID, "action", cmd.Name)
					if m != nil {
						m.DedupHit(cmd.Name)
					}
					return cached, nil
				}
			}

			start := time.Now()
			result, err := next(ctx, cmd)
			if err == nil {
				cache.Record(key, result, time.Since(start))
			}
			return result, err
		}
	}
}

// Logger logs the start, outcome and duration of every command.
func Logger(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (any, error) {
			label := commandLabel(cmd.Kind)
			msgs := logMessages[cmd.Kind]
			logger.InfoContext(ctx, msgs[0], "sessionId", cmd.SessionID, label, cmd.Name)

			start := time.Now()
			result, err := next(ctx, cmd)
			duration := time.Since(start).Milliseconds()

			if err != nil {
				logger.ErrorContext(ctx, msgs[2],
					"sessionId", cmd.SessionID,
					label, cmd.Name,
					"error", err.Error(),
					"duration", duration,
				)
			} else {
				logger.InfoContext(ctx, msgs[1],
					"sessionId", cmd.SessionID,
					label, cmd.Name,
					"duration", duration,
				)
			}
			return result, err
		}
	}
}

// Metrics counts commands by name and outcome.
func Metrics(m *metrics.Metrics) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (any, error) {
			start := time.Now()
			result, err := next(ctx, cmd)
			if cmd.Kind == models.KindQuery {
				m.ObserveQuery(cmd.Name, err, time.Since(start))
			} else {
				m.ObserveAction(cmd.Name, err, time.Since(start))
			}
			return result, err
		}
	}
}

// Tracing wraps each command in a span.
func Tracing(tracer trace.Tracer) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (any, error) {
			ctx, span := tracer.Start(ctx, commandLabel(cmd.Kind)+" "+cmd.Name,
				trace.WithAttributes(
					telemetry.AttrSessionID.String(cmd.SessionID),
					telemetry.AttrCommand.String(cmd.Name),
					telemetry.AttrKind.String(string(cmd.Kind)),
				),
			)
			defer span.End()

			result, err := next(ctx, cmd)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			}
			return result, err
		}
	}
}

// History appends exactly one record per command that reaches it, win or
// lose.
func History(log *history.Log) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (any, error) {
			start := time.Now()
			result, err := next(ctx, cmd)

			rec := models.Record{
				Type:      cmd.Kind,
				Action:    cmd.Name,
				Params:    cmd.Params,
				Duration:  time.Since(start).Milliseconds(),
				Timestamp: start.UnixMilli(),
			}
			if err != nil {
				rec.Error = err.Error()
			} else {
				rec.Result = result
			}
			log.Append(cmd.SessionID, rec)

			return result, err
		}
	}
}

// QueryFailed gives every query failure a uniform prefix while keeping
// the original error in the chain.
func QueryFailed() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (any, error) {
			result, err := next(ctx, cmd)
			if err != nil {
				return nil, apperr.QueryFailed(err)
			}
			return result, nil
		}
	}
}

// Stream reports action_start, then action_complete or action_error, to
// the command's sink. The error is still returned. Commands without a
// sink pass straight through.
func Stream(logger *slog.Logger) Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (any, error) {
			if cmd.Sink == nil {
				return next(ctx, cmd)
			}

			send := func(ev models.Event) {
				ev.SessionID = cmd.SessionID
				ev.Action = cmd.Name
				ev.Timestamp = time.Now().UnixMilli()
				if err := cmd.Sink.Send(ev); err != nil {
					logger.Warn("Failed to push stream event", "sessionId", cmd.SessionID, "type", ev.Type, "error", err)
				}
			}

			send(models.Event{Type: models.EventActionStart})
			result, err := next(ctx, cmd)
			if err != nil {
				send(models.Event{Type: models.EventActionError, Error: err.Error()})
				return nil, err
			}
			send(models.Event{Type: models.EventActionComplete, Result: result})
			return result, nil
		}
	}
}

// Recovery converts a panicking handler into an error.
func Recovery() Middleware {
	return func(next Handler) Handler {
		return func(ctx context.Context, cmd *Command) (result any, err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s %s panicked: %v", commandLabel(cmd.Kind), cmd.Name, r)
				}
			}()
			return next(ctx, cmd)
		}
	}
}

// start, success and failure log lines per command kind
var logMessages = map[models.CommandKind][3]string{
	models.KindAction: {"Executing action", "Action completed", "Action failed"},
	models.KindQuery:  {"Executing query", "Query completed", "Query failed"},
}

func commandLabel(kind models.CommandKind) string {
	if kind == models.KindQuery {
		return "query"
	}
	return "action"
}
