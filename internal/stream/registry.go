// Package stream pushes action lifecycle events to websocket subscribers
// and, optionally, mirrors them onto a NATS subject per session.
package stream

import (
	"sync"

	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Subscriber is a live event sink that can be shut down.
type Subscriber interface {
	Send(event models.Event) error
	Close()
}

// Registry maps each session id to at most one subscriber.
type Registry struct {
	mu   sync.RWMutex
	subs map[string]Subscriber
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{subs: make(map[string]Subscriber)}
}

// Bind makes sub the subscriber of sessionID. A different subscriber
// already bound to the session is replaced and closed.
func (r *Registry) Bind(sessionID string, sub Subscriber) {
	r.mu.Lock()
	old, ok := r.subs[sessionID]
	r.subs[sessionID] = sub
	r.mu.Unlock()

	if ok && old != sub {
		old.Close()
	}
}

// Unbind removes sub's binding to sessionID. It is a no-op when another
// subscriber has since taken the session over.
func (r *Registry) Unbind(sessionID string, sub Subscriber) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.subs[sessionID]; ok && cur == sub {
		delete(r.subs, sessionID)
		return true
	}
	return false
}

// Remove drops whatever subscriber is bound to sessionID without closing
// it.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	delete(r.subs, sessionID)
	r.mu.Unlock()
}

// Lookup returns the subscriber bound to sessionID.
func (r *Registry) Lookup(sessionID string) (Subscriber, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sub, ok := r.subs[sessionID]
	return sub, ok
}

// Len returns the number of bound sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}
