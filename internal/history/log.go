// Package history keeps the per-session, append-only command log.
package history

import (
	"sync"

	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Log holds the ordered records of every live session. Records are only
// kept for sessions opened with Open and not yet deleted, so a command
// finishing after its session was destroyed leaves nothing behind.
type Log struct {
	mu      sync.RWMutex
	records map[string][]models.Record
	total   int64
}

// New creates an empty Log
func New() *Log {
	return &Log{records: make(map[string][]models.Record)}
}

// Open starts an empty log for a session. Opening twice keeps the records.
func (l *Log) Open(sessionID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.records[sessionID]; !ok {
		l.records[sessionID] = []models.Record{}
	}
}

// Append adds one record to the end of a session's log. It reports false
// and drops the record when the session is not open.
func (l *Log) Append(sessionID string, rec models.Record) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	recs, ok := l.records[sessionID]
	if !ok {
		return false
	}
	l.records[sessionID] = append(recs, rec)
	l.total++
	return true
}

// Get returns a copy of the session's records in submission order.
func (l *Log) Get(sessionID string) []models.Record {
	l.mu.RLock()
	defer l.mu.RUnlock()

	src := l.records[sessionID]
	out := make([]models.Record, len(src))
	copy(out, src)
	return out
}

// Len returns the number of records kept for a session.
func (l *Log) Len(sessionID string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.records[sessionID])
}

// Delete drops every record of a session.
func (l *Log) Delete(sessionID string) {
	l.mu.Lock()
	delete(l.records, sessionID)
	l.mu.Unlock()
}

// Total is the number of records ever appended, including deleted ones.
func (l *Log) Total() int64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.total
}
