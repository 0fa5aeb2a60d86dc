package models

// Response is the envelope shared by every HTTP API response
type Response struct {
	Success   bool   `json:"success"`
	Timestamp int64  `json:"timestamp"`
	Error     string `json:"error,omitempty"`
}

// CreateSessionResponse answers POST /api/sessions
type CreateSessionResponse struct {
	Response
	SessionID string `json:"sessionId"`
}

// SessionResponse answers GET /api/sessions/{id}
type SessionResponse struct {
	Response
	Session SessionInfo `json:"session"`
}

// SessionListResponse answers GET /api/sessions
type SessionListResponse struct {
	Response
	Sessions []SessionInfo `json:"sessions"`
}

// HistoryResponse answers GET /api/sessions/{id}/history
type HistoryResponse struct {
	Response
	History []Record `json:"history"`
}

// ResultResponse carries the result of an action or query
type ResultResponse struct {
	Response
	Result any `json:"result"`
}

// MessageResponse carries a human-readable confirmation
type MessageResponse struct {
	Response
	Message string `json:"message"`
}

// ServiceInfo is served at the root path
type ServiceInfo struct {
	Name        string            `json:"name"`
	Version     string            `json:"version"`
	Description string            `json:"description"`
	Endpoints   []string          `json:"endpoints"`
	Timestamp   int64             `json:"timestamp"`
}

// ActionRequest is the payload of POST /api/sessions/{id}/action
type ActionRequest struct {
	Action string `json:"action"`
	Params Params `json:"params"`
	Stream bool   `json:"stream,omitempty"`
}

// QueryRequest is the payload of POST /api/sessions/{id}/query
type QueryRequest struct {
	Query  string `json:"query"`
	Params Params `json:"params"`
}

// MemoryStats is a snapshot of the process memory
type MemoryStats struct {
	Alloc      uint64 `json:"alloc"`
	TotalAlloc uint64 `json:"totalAlloc"`
	Sys        uint64 `json:"sys"`
	HeapAlloc  uint64 `json:"heapAlloc"`
	HeapInuse  uint64 `json:"heapInuse"`
	NumGC      uint32 `json:"numGC"`
	Goroutines int    `json:"goroutines"`
}

// Health is the result of the health probe
type Health struct {
	Status         string      `json:"status"`
	ActiveSessions int         `json:"activeSessions"`
	TotalActions   int64       `json:"totalActions"`
	Uptime         float64     `json:"uptime"`
	Memory         MemoryStats `json:"memory"`
	Timestamp      int64       `json:"timestamp"`
}
