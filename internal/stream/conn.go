package stream

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

const (
	pingInterval  = 30 * time.Second
	readDeadline  = 60 * time.Second
	writeDeadline = 10 * time.Second
	sendBuffer    = 64
)

var (
	errConnClosed = errors.New("stream connection closed")
	errSlowClient = errors.New("stream client buffer full")
)

// conn is one websocket client. Its subscription state is only touched
// by the read pump.
type conn struct {
	gw *Gateway
	ws *websocket.Conn

	mu     sync.Mutex
	send   chan []byte
	closed bool

	sessionID string
}

func newConn(gw *Gateway, ws *websocket.Conn) *conn {
	return &conn{
		gw:   gw,
		ws:   ws,
		send: make(chan []byte, sendBuffer),
	}
}

// Send queues an event without blocking the caller.
func (c *conn) Send(event models.Event) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().UnixMilli()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", event.Type, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errConnClosed
	}
	select {
	case c.send <- data:
		return nil
	default:
		return errSlowClient
	}
}

// Close ends the connection; the write pump sends the close frame.
func (c *conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

func (c *conn) readPump() {
	defer func() {
		if c.sessionID != "" {
			c.gw.registry.Unbind(c.sessionID, c)
			c.gw.logger.Info("📡 Stream client disconnected from session", "sessionId", c.sessionID)
		}
		c.gw.remove(c)
		c.Close()
		c.ws.Close()
	}()

	c.ws.SetReadDeadline(time.Now().Add(readDeadline))
	c.ws.SetPongHandler(func(string) error {
		c.ws.SetReadDeadline(time.Now().Add(readDeadline))
		return nil
	})

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.gw.logger.Warn("Stream read error", "error", err)
			}
			return
		}
		c.handleMessage(message)
	}
}

func (c *conn) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.ws.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.ws.SetWriteDeadline(time.Now().Add(writeDeadline))
			if !ok {
				c.ws.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.ws.SetWriteDeadline(time.Now().Add(writeDeadline))
			if err := c.ws.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// handleMessage advances the subscription state machine. Protocol
// problems are reported as error events and never close the connection.
func (c *conn) handleMessage(raw []byte) {
	var msg models.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		c.sendError(fmt.Sprintf("Invalid message: %v", err))
		return
	}

	switch msg.Type {
	case models.MessageSubscribe:
		c.subscribe(msg.SessionID)
	case models.MessageAction:
		c.action(msg.Action, msg.Params)
	case models.MessageUnsubscribe:
		c.unsubscribe()
	default:
		c.sendError(fmt.Sprintf("Unknown message type: %s", msg.Type))
	}
}

func (c *conn) subscribe(sessionID string) {
	if sessionID == "" {
		c.unsubscribe()
		c.sendError("Session ID is required for subscribe")
		return
	}
	if c.sessionID != "" && c.sessionID != sessionID {
		c.unsubscribe()
	}

	c.sessionID = sessionID
	c.gw.registry.Bind(sessionID, c)
	c.gw.logger.Info("📡 Client subscribed to session", "sessionId", sessionID)

	c.Send(models.Event{Type: models.EventSubscribed, SessionID: sessionID})
}

func (c *conn) unsubscribe() {
	if c.sessionID == "" {
		return
	}
	if c.gw.registry.Unbind(c.sessionID, c) {
		c.gw.logger.Info("📡 Client unsubscribed from session", "sessionId", c.sessionID)
	}
	c.sessionID = ""
}

// action runs on its own goroutine so a slow engine call does not stall
// the read pump. Lifecycle events reach the client through the sink.
func (c *conn) action(name string, params models.Params) {
	sessionID := c.sessionID
	if sessionID == "" {
		c.sendError(apperr.NoActiveSession().Error())
		return
	}

	sink := sinkOf(c, c.gw.mirror)
	go func() {
		if _, err := c.gw.exec.ExecuteAction(c.gw.ctx, sessionID, name, params, sink); err != nil {
			c.gw.logger.Debug("Streamed action failed", "sessionId", sessionID, "action", name, "error", err)
		}
	}()
}

func (c *conn) sendError(message string) {
	if err := c.Send(models.Event{Type: models.EventError, Message: message}); err != nil {
		c.gw.logger.Warn("Failed to send stream error", "error", err)
	}
}
