package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/dispatch"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Publisher is the subset of *nats.Conn the mirror needs.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// ConnectNATS dials the NATS server with unlimited reconnects.
func ConnectNATS(url, name string) (*nats.Conn, error) {
	if url == "" {
		url = nats.DefaultURL
	}
	conn, err := nats.Connect(url,
		nats.Name(name),
		nats.Timeout(5*time.Second),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}
	return conn, nil
}

// NATSMirror republishes stream events on <prefix>.<sessionId>.events.
type NATSMirror struct {
	pub    Publisher
	prefix string
}

// NewNATSMirror creates a mirror publishing through pub.
func NewNATSMirror(pub Publisher, prefix string) *NATSMirror {
	if prefix == "" {
		prefix = "sessions"
	}
	return &NATSMirror{pub: pub, prefix: prefix}
}

// Subject returns the subject a session's events are published on.
func (m *NATSMirror) Subject(sessionID string) string {
	return m.prefix + "." + sessionID + ".events"
}

// Send publishes one event.
func (m *NATSMirror) Send(event models.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}
	if err := m.pub.Publish(m.Subject(event.SessionID), data); err != nil {
		return fmt.Errorf("publish %s event: %w", event.Type, err)
	}
	return nil
}

// tee fans an event out to every non-nil sink.
type tee []dispatch.Sink

func (t tee) Send(event models.Event) error {
	var errs []error
	for _, s := range t {
		if err := s.Send(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// sinkOf combines the mirror and a subscriber, returning nil when neither
// is present.
func sinkOf(sub Subscriber, mirror *NATSMirror) dispatch.Sink {
	var t tee
	if mirror != nil {
		t = append(t, mirror)
	}
	if sub != nil {
		t = append(t, sub)
	}
	if len(t) == 0 {
		return nil
	}
	return t
}
