package models

import (
	"encoding/json"
	"time"
)

// SessionState is the advisory state of an automation session
type SessionState string

const (
	StateReady SessionState = "ready"
	StateBusy  SessionState = "busy"
	StateError SessionState = "error"
)

// Defaults applied when a session is created without explicit values
const (
	DefaultModel                     = "doubao-seed-1.6-vision"
	DefaultViewportWidth             = 1920
	DefaultViewportHeight            = 1080
	DefaultWaitForNetworkIdleTimeout = 2000
	DefaultActionTimeout             = 30000
)

// SessionConfig is the payload for creating a new session.
// Zero values mean "use the default".
type SessionConfig struct {
	Headless                  *bool  `json:"headless,omitempty"`
	ViewportWidth             int    `json:"viewportWidth,omitempty"`
	ViewportHeight            int    `json:"viewportHeight,omitempty"`
	Model                     string `json:"model,omitempty"`
	BaseURL                   string `json:"baseURL,omitempty"`
	APIKey                    string `json:"apiKey,omitempty"`
	WaitForNetworkIdleTimeout int    `json:"waitForNetworkIdleTimeout,omitempty"`
	ActionTimeout             int    `json:"actionTimeout,omitempty"`
}

// UnmarshalJSON accepts the legacy snake_case viewport keys as well.
func (c *SessionConfig) UnmarshalJSON(data []byte) error {
	type plain SessionConfig
	var aux struct {
		plain
		LegacyViewportWidth  int `json:"viewport_width"`
		LegacyViewportHeight int `json:"viewport_height"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	*c = SessionConfig(aux.plain)
	if c.ViewportWidth == 0 {
		c.ViewportWidth = aux.LegacyViewportWidth
	}
	if c.ViewportHeight == 0 {
		c.ViewportHeight = aux.LegacyViewportHeight
	}
	return nil
}

// EngineConfig is the resolved, immutable configuration of a live session
type EngineConfig struct {
	Headless                  bool   `json:"headless"`
	ViewportWidth             int    `json:"viewportWidth"`
	ViewportHeight            int    `json:"viewportHeight"`
	Model                     string `json:"model"`
	BaseURL                   string `json:"baseURL,omitempty"`
	APIKey                    string `json:"-"`
	WaitForNetworkIdleTimeout int    `json:"waitForNetworkIdleTimeout"`
	ActionTimeout             int    `json:"actionTimeout"`
}

// ActionTimeoutDuration returns the per-call engine timeout.
func (c EngineConfig) ActionTimeoutDuration() time.Duration {
	return time.Duration(c.ActionTimeout) * time.Millisecond
}

// SessionInfo is the lightweight view of a session returned by the API
type SessionInfo struct {
	SessionID    string       `json:"sessionId"`
	CreatedAt    int64        `json:"createdAt"`
	LastActivity int64        `json:"lastActivity"`
	State        SessionState `json:"state"`
}
