// Package api serves the HTTP command surface.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/dispatch"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Orchestrator is what the handlers drive.
type Orchestrator interface {
	CreateSession(ctx context.Context, req models.SessionConfig) (string, error)
	ListSessions() []models.SessionInfo
	GetSession(sessionID string) (models.SessionInfo, error)
	DestroySession(ctx context.Context, sessionID string)
	ExecuteAction(ctx context.Context, sessionID, action string, params models.Params, sink dispatch.Sink) (any, error)
	ExecuteQuery(ctx context.Context, sessionID, query string, params models.Params) (any, error)
	Screenshot(ctx context.Context, sessionID string) ([]byte, error)
	History(sessionID string) []models.Record
	Health() models.Health
}

// SinkSource resolves where streamed events for a session go; nil means
// nowhere.
type SinkSource interface {
	Sink(sessionID string) dispatch.Sink
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	orch    Orchestrator
	sinks   SinkSource
	logger  *slog.Logger
	version string
}

// NewHandler creates a new HTTP handler. sinks may be nil, in which case
// stream:true requests behave like plain ones.
func NewHandler(orch Orchestrator, sinks SinkSource, version string, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		orch:    orch,
		sinks:   sinks,
		logger:  logger,
		version: version,
	}
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.ServiceInfo{
		Name:        "Browser Automation Orchestrator",
		Version:     h.version,
		Description: "Control plane for AI-driven browser automation sessions",
		Endpoints: []string{
			"GET /api/health - Health check",
			"POST /api/sessions - Create session",
			"GET /api/sessions - List sessions",
			"GET /api/sessions/{id} - Get session",
			"POST /api/sessions/{id}/action - Execute action",
			"POST /api/sessions/{id}/query - Query page",
			"GET /api/sessions/{id}/history - Get session history",
			"GET /api/sessions/{id}/screenshot - Capture page",
			"DELETE /api/sessions/{id} - Destroy session",
			"GET /metrics - Prometheus metrics",
			"WebSocket /ws - Event stream",
		},
		Timestamp: now(),
	})
}

// Health handles GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.orch.Health())
}

// CreateSession handles POST /api/sessions. An empty body creates a
// session with defaults.
func (h *Handler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req models.SessionConfig
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	id, err := h.orch.CreateSession(r.Context(), req)
	if err != nil {
		h.logger.Error("Failed to create session", "error", err)
		h.fail(w, err)
		return
	}
	h.logger.Info("✅ Session created", "sessionId", id)

	writeJSON(w, http.StatusOK, models.CreateSessionResponse{
		Response:  ok(),
		SessionID: id,
	})
}

// ListSessions handles GET /api/sessions
func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	sessions := h.orch.ListSessions()
	if sessions == nil {
		sessions = []models.SessionInfo{}
	}
	writeJSON(w, http.StatusOK, models.SessionListResponse{
		Response: ok(),
		Sessions: sessions,
	})
}

// GetSession handles GET /api/sessions/{id}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	info, err := h.orch.GetSession(mux.Vars(r)["id"])
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SessionResponse{
		Response: ok(),
		Session:  info,
	})
}

// DeleteSession handles DELETE /api/sessions/{id}. Unknown ids succeed.
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	h.orch.DestroySession(context.WithoutCancel(r.Context()), id)
	h.logger.Info("🗑️ Session destroyed", "sessionId", id)

	writeJSON(w, http.StatusOK, models.MessageResponse{
		Response: ok(),
		Message:  fmt.Sprintf("Session %s destroyed", id),
	})
}

// ExecuteAction handles POST /api/sessions/{id}/action. With stream set,
// lifecycle events also go to the session's subscriber. A client that
// disconnects does not abort the action; it still runs to completion and
// is recorded.
func (h *Handler) ExecuteAction(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.ActionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	var sink dispatch.Sink
	if req.Stream && h.sinks != nil {
		sink = h.sinks.Sink(id)
	}

	result, err := h.orch.ExecuteAction(context.WithoutCancel(r.Context()), id, req.Action, req.Params, sink)
	if err != nil {
		h.logger.Error("Failed to execute action", "sessionId", id, "action", req.Action, "error", err)
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ResultResponse{
		Response: ok(),
		Result:   result,
	})
}

// ExecuteQuery handles POST /api/sessions/{id}/query
func (h *Handler) ExecuteQuery(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.QueryRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.orch.ExecuteQuery(context.WithoutCancel(r.Context()), id, req.Query, req.Params)
	if err != nil {
		h.logger.Error("Failed to execute query", "sessionId", id, "query", req.Query, "error", err)
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ResultResponse{
		Response: ok(),
		Result:   result,
	})
}

// GetHistory handles GET /api/sessions/{id}/history. Unknown sessions
// have an empty history.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	records := h.orch.History(mux.Vars(r)["id"])
	if records == nil {
		records = []models.Record{}
	}
	writeJSON(w, http.StatusOK, models.HistoryResponse{
		Response: ok(),
		History:  records,
	})
}

// GetSessionScreenshot handles GET /api/sessions/{id}/screenshot
func (h *Handler) GetSessionScreenshot(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	png, err := h.orch.Screenshot(context.WithoutCancel(r.Context()), id)
	if err != nil {
		h.logger.Error("❌ Screenshot failed", "sessionId", id, "error", err)
		h.fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Write(png)
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	writeError(w, statusFor(err), err.Error())
}

// statusFor maps an error kind to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrInvalidParams),
		errors.Is(err, apperr.ErrUnknownAction),
		errors.Is(err, apperr.ErrUnknownQuery):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrProvisioning):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON body; an empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func ok() models.Response {
	return models.Response{Success: true, Timestamp: now()}
}

func now() int64 {
	return time.Now().UnixMilli()
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.Response{
		Success:   false,
		Timestamp: now(),
		Error:     message,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
