// Package dispatch executes actions and queries against sessions.
//
// Every command flows through one core handler wrapped in middleware:
// session lookup, activity tracking, deduplication, logging, metrics,
// tracing and history recording are each a layer that can be tested on
// its own. Chain composes them; the first middleware is the outermost.
package dispatch

import (
	"context"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/session"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

//go:generate mockgen -package=dispatch -destination=mock_agent_test.go github.com/shehryarbajwa/browserbase-orchestrator/internal/engine Agent
//go:generate mockgen -package=dispatch -destination=mock_page_test.go github.com/shehryarbajwa/browserbase-orchestrator/internal/browser Page

// Sink receives the lifecycle events of a streamed action
type Sink interface {
	Send(event models.Event) error
}

// Sessions resolves session ids
type Sessions interface {
	Get(id string) (*session.Session, error)
}

// Command is one action or query invocation
type Command struct {
	Kind      models.CommandKind
	SessionID string
	Name      string
	Params    models.Params
	// Sink is set for streamed actions only.
	Sink Sink

	// Session is resolved by the Lookup middleware.
	Session *session.Session
}

// Handler executes a command
type Handler func(ctx context.Context, cmd *Command) (any, error)

// Middleware wraps a Handler, returning a new Handler with added behaviour.
type Middleware func(next Handler) Handler

// Chain composes multiple middleware into a single Middleware.
// The first middleware in the list is the outermost (runs first).
func Chain(mws ...Middleware) Middleware {
	return func(next Handler) Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			next = mws[i](next)
		}
		return next
	}
}
