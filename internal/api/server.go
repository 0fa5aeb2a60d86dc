package api

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/metrics"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/ratelimit"
)

// RouteOptions holds the optional collaborators mounted next to the API.
type RouteOptions struct {
	// Stream serves the websocket event stream at /ws.
	Stream http.Handler
	// Metrics instruments every route and serves /metrics.
	Metrics *metrics.Metrics
	// Limiter rate limits the session endpoints.
	Limiter *ratelimit.Limiter
}

// SetupRoutes configures all HTTP routes
func (h *Handler) SetupRoutes(opts RouteOptions) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.Root).Methods(http.MethodGet)
	if opts.Metrics != nil {
		r.Handle("/metrics", opts.Metrics.Handler()).Methods(http.MethodGet)
	}
	if opts.Stream != nil {
		r.Handle("/ws", opts.Stream).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Health is polled by probes and never rate limited
	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	sessions := api.PathPrefix("/sessions").Subrouter()
	if opts.Limiter != nil {
		sessions.Use(RateLimitMiddleware(opts.Limiter))
	}
	sessions.HandleFunc("", h.CreateSession).Methods(http.MethodPost)
	sessions.HandleFunc("", h.ListSessions).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", h.GetSession).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}", h.DeleteSession).Methods(http.MethodDelete)
	sessions.HandleFunc("/{id}/action", h.ExecuteAction).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/query", h.ExecuteQuery).Methods(http.MethodPost)
	sessions.HandleFunc("/{id}/history", h.GetHistory).Methods(http.MethodGet)
	sessions.HandleFunc("/{id}/screenshot", h.GetSessionScreenshot).Methods(http.MethodGet)

	// Preflight for any path; corsMiddleware answers it
	r.Methods(http.MethodOptions).HandlerFunc(func(http.ResponseWriter, *http.Request) {})

	r.Use(corsMiddleware)
	if opts.Metrics != nil {
		r.Use(metricsMiddleware(opts.Metrics))
	}
	r.Use(loggingMiddleware(h.logger))

	return r
}

// NewServer wraps handler in an http.Server with the service's timeouts.
// There is no write timeout: actions and streams can run for minutes.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
