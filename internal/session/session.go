// Package session owns live automation sessions and their exclusively
// held browser and engine resources.
package session

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/browser"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/engine"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Handle is the automation engine and browser page a session owns.
// Close releases both, engine first.
type Handle interface {
	Agent() engine.Agent
	Page() browser.Page
	Close(ctx context.Context) error
}

// Provisioner creates the Handle for a new session
type Provisioner interface {
	Provision(ctx context.Context, sessionID string, cfg models.EngineConfig) (Handle, error)
}

// Session is one live automation context
type Session struct {
	ID        string
	Config    models.EngineConfig
	CreatedAt time.Time

	handle Handle

	// serializes commands when the store is configured to
	cmdMu     sync.Mutex
	serialize bool

	inFlight     atomic.Int32
	failed       atomic.Bool
	lastActivity atomic.Int64
}

func newSession(id string, cfg models.EngineConfig, handle Handle, now time.Time, serialize bool) *Session {
	s := &Session{
		ID:        id,
		Config:    cfg,
		CreatedAt: now,
		handle:    handle,
		serialize: serialize,
	}
	s.lastActivity.Store(now.UnixMilli())
	return s
}

// Agent returns the session's automation engine.
func (s *Session) Agent() engine.Agent {
	return s.handle.Agent()
}

// Page returns the session's browser page.
func (s *Session) Page() browser.Page {
	return s.handle.Page()
}

// Begin marks a command attempt: it touches lastActivity, flags the
// session busy and, when serialization is on, waits for the previous
// command to finish. The returned func ends the command.
func (s *Session) Begin() (end func()) {
	s.touch(time.Now())
	if s.serialize {
		s.cmdMu.Lock()
	}
	s.inFlight.Add(1)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.inFlight.Add(-1)
			if s.serialize {
				s.cmdMu.Unlock()
			}
		})
	}
}

// MarkFailed records that the automation engine connection was lost.
func (s *Session) MarkFailed() {
	s.failed.Store(true)
}

// State is advisory: error once the engine is lost, busy while any
// command is in flight, ready otherwise.
func (s *Session) State() models.SessionState {
	switch {
	case s.failed.Load():
		return models.StateError
	case s.inFlight.Load() > 0:
		return models.StateBusy
	default:
		return models.StateReady
	}
}

// LastActivity returns the time of the latest command attempt.
func (s *Session) LastActivity() time.Time {
	return time.UnixMilli(s.lastActivity.Load())
}

// Info returns the API view of the session.
func (s *Session) Info() models.SessionInfo {
	return models.SessionInfo{
		SessionID:    s.ID,
		CreatedAt:    s.CreatedAt.UnixMilli(),
		LastActivity: s.lastActivity.Load(),
		State:        s.State(),
	}
}

// touch advances lastActivity, never moving it backwards.
func (s *Session) touch(t time.Time) {
	ms := t.UnixMilli()
	for {
		cur := s.lastActivity.Load()
		if ms <= cur || s.lastActivity.CompareAndSwap(cur, ms) {
			return
		}
	}
}
