package models

// EventType names a message pushed to a stream subscriber
type EventType string

const (
	EventSubscribed     EventType = "subscribed"
	EventActionStart    EventType = "action_start"
	EventActionComplete EventType = "action_complete"
	EventActionError    EventType = "action_error"
	EventError          EventType = "error"
)

// Event is a server-to-client stream message
type Event struct {
	Type      EventType `json:"type"`
	SessionID string    `json:"sessionId,omitempty"`
	Action    string    `json:"action,omitempty"`
	Result    any       `json:"result,omitempty"`
	Error     string    `json:"error,omitempty"`
	Message   string    `json:"message,omitempty"`
	Timestamp int64     `json:"timestamp"`
}

// Client-to-server stream message types
const (
	MessageSubscribe   = "subscribe"
	MessageAction      = "action"
	MessageUnsubscribe = "unsubscribe"
)

// ClientMessage is a client-to-server stream message
type ClientMessage struct {
	Type      string `json:"type"`
	SessionID string `json:"sessionId,omitempty"`
	Action    string `json:"action,omitempty"`
	Params    Params `json:"params,omitempty"`
}
