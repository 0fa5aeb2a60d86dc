package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/config"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// ReleaseTimeout bounds closing one session's handle. Release runs on a
// context detached from the caller's, so a cancelled request or an expired
// drain deadline cannot leave a browser behind.
const ReleaseTimeout = 30 * time.Second

// Options configures a Store
type Options struct {
	MaxSessions       int64
	SerializeCommands bool
	Logger            *slog.Logger
}

// Store maps session ids to live sessions. Iteration follows insertion
// order.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	order    []string

	slots       *semaphore.Weighted
	provisioner Provisioner
	serialize   bool
	logger      *slog.Logger

	hooksMu   sync.RWMutex
	onDestroy []func(sessionID string)
}

// NewStore creates a Store that provisions handles with p
func NewStore(p Provisioner, opts Options) *Store {
	if opts.MaxSessions <= 0 {
		opts.MaxSessions = 10
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Store{
		sessions:    make(map[string]*Session),
		slots:       semaphore.NewWeighted(opts.MaxSessions),
		provisioner: p,
		serialize:   opts.SerializeCommands,
		logger:      opts.Logger,
	}
}

// OnDestroy registers fn to run after a session has been removed and
// released.
func (s *Store) OnDestroy(fn func(sessionID string)) {
	s.hooksMu.Lock()
	s.onDestroy = append(s.onDestroy, fn)
	s.hooksMu.Unlock()
}

// Create provisions and stores a new session. On failure nothing is
// stored and the slot is released.
func (s *Store) Create(ctx context.Context, req models.SessionConfig) (*Session, error) {
	if !s.slots.TryAcquire(1) {
		return nil, apperr.Provisioning(fmt.Errorf("session limit reached"))
	}

	id := uuid.New().String()
	cfg := config.ResolveSession(req)

	handle, err := s.provisioner.Provision(ctx, id, cfg)
	if err != nil {
		s.slots.Release(1)
		s.logger.Error("Failed to create session", "sessionId", id, "error", err)
		return nil, apperr.Provisioning(err)
	}

	sess := newSession(id, cfg, handle, time.Now(), s.serialize)

	s.mu.Lock()
	s.sessions[id] = sess
	s.order = append(s.order, id)
	s.mu.Unlock()

	s.logger.Info("Session created", "sessionId", id, "model", cfg.Model, "headless", cfg.Headless)
	return sess, nil
}

// Get returns the session or a NotFound error.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, apperr.NotFound(id)
	}
	return sess, nil
}

// List returns every live session in insertion order.
func (s *Store) List() []models.SessionInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]models.SessionInfo, 0, len(s.order))
	for _, id := range s.order {
		infos = append(infos, s.sessions[id].Info())
	}
	return infos
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Destroy removes the session and releases its handle. Unknown ids are a
// no-op. Close failures are logged, never returned.
func (s *Store) Destroy(ctx context.Context, id string) {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
		for i, oid := range s.order {
			if oid == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	closeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ReleaseTimeout)
	defer cancel()

	if err := sess.handle.Close(closeCtx); err != nil {
		s.logger.Error("Failed to release session resources", "sessionId", id, "error", err)
	}
	s.slots.Release(1)

	s.hooksMu.RLock()
	hooks := append([]func(string){}, s.onDestroy...)
	s.hooksMu.RUnlock()
	for _, fn := range hooks {
		fn(id)
	}

	s.logger.Info("Session destroyed", "sessionId", id)
}

// Shutdown destroys every session in parallel and waits for all of them.
func (s *Store) Shutdown(ctx context.Context) error {
	s.mu.RLock()
	ids := append([]string{}, s.order...)
	s.mu.RUnlock()

	s.logger.Info("Shutting down sessions", "count", len(ids))

	var g errgroup.Group
	for _, id := range ids {
		g.Go(func() error {
			s.Destroy(ctx, id)
			return nil
		})
	}
	return g.Wait()
}
