// Package config loads server settings from the environment and resolves
// per-session engine configuration against defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Browser backends
const (
	BackendLocal  = "local"
	BackendDocker = "docker"
)

// Dedup key scopes
const (
	ScopeGlobal  = "global"
	ScopeSession = "session"
)

// Config holds every process-level setting
type Config struct {
	Port            int
	ShutdownTimeout time.Duration

	LogLevel  slog.Level
	LogFormat string

	BrowserBackend string
	BrowserImage   string
	ChromePath     string

	EngineCommand        string
	EngineScript         string
	EngineStartupTimeout time.Duration

	MaxSessions       int
	SerializeCommands bool

	DedupWindow        time.Duration
	DedupMaxSize       int
	DedupScope         string
	DedupSweepInterval time.Duration

	RateLimitPerHour int
	RateLimitBurst   int

	NATSURL           string
	NATSSubjectPrefix string

	TraceStdout bool
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (*Config, error) {
	p := &parser{}

	cfg := &Config{
		Port:                 p.int("PORT", 3000),
		ShutdownTimeout:      p.duration("SHUTDOWN_TIMEOUT", 30*time.Second),
		LogFormat:            strings.ToLower(env("LOG_FORMAT", "json")),
		BrowserBackend:       strings.ToLower(env("BROWSER_BACKEND", BackendLocal)),
		BrowserImage:         env("BROWSER_IMAGE", "browserless/chrome:latest"),
		ChromePath:           os.Getenv("CHROME_PATH"),
		EngineCommand:        env("ENGINE_COMMAND", "node"),
		EngineScript:         env("ENGINE_SCRIPT", "./engine/agent.js"),
		EngineStartupTimeout: p.duration("ENGINE_STARTUP_TIMEOUT", 10*time.Second),
		MaxSessions:          p.int("MAX_SESSIONS", 10),
		SerializeCommands:    p.bool("SERIALIZE_SESSION_COMMANDS", true),
		DedupWindow:          time.Duration(p.int("DEDUP_WINDOW_MS", 5000)) * time.Millisecond,
		DedupMaxSize:         p.int("DEDUP_MAX_SIZE", 1000),
		DedupScope:           strings.ToLower(env("DEDUP_SCOPE", ScopeGlobal)),
		DedupSweepInterval:   p.duration("DEDUP_SWEEP_INTERVAL", time.Minute),
		RateLimitPerHour:     p.int("RATE_LIMIT_PER_HOUR", 3600),
		RateLimitBurst:       p.int("RATE_LIMIT_BURST", 60),
		NATSURL:              os.Getenv("NATS_URL"),
		NATSSubjectPrefix:    env("NATS_SUBJECT_PREFIX", "sessions"),
		TraceStdout:          p.bool("TRACE_STDOUT", false),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(env("LOG_LEVEL", "info"))); err != nil {
		p.fail("LOG_LEVEL", err)
	}
	if p.err != nil {
		return nil, p.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	switch {
	case c.Port <= 0 || c.Port > 65535:
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	case c.BrowserBackend != BackendLocal && c.BrowserBackend != BackendDocker:
		return fmt.Errorf("BROWSER_BACKEND must be %q or %q, got %q", BackendLocal, BackendDocker, c.BrowserBackend)
	case c.DedupScope != ScopeGlobal && c.DedupScope != ScopeSession:
		return fmt.Errorf("DEDUP_SCOPE must be %q or %q, got %q", ScopeGlobal, ScopeSession, c.DedupScope)
	case c.LogFormat != "json" && c.LogFormat != "text":
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	case c.MaxSessions < 1:
		return fmt.Errorf("MAX_SESSIONS must be positive, got %d", c.MaxSessions)
	case c.DedupWindow < 0:
		return fmt.Errorf("DEDUP_WINDOW_MS must not be negative")
	case c.DedupMaxSize < 1:
		return fmt.Errorf("DEDUP_MAX_SIZE must be positive, got %d", c.DedupMaxSize)
	case c.RateLimitPerHour < 1 || c.RateLimitBurst < 1:
		return fmt.Errorf("RATE_LIMIT_PER_HOUR and RATE_LIMIT_BURST must be positive")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// NewLogger builds the process logger from LOG_LEVEL and LOG_FORMAT.
func (c *Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// ResolveSession applies defaults and environment fallbacks to a
// session creation request.
func ResolveSession(req models.SessionConfig) models.EngineConfig {
	resolved := models.EngineConfig{
		Headless:                  req.Headless == nil || *req.Headless,
		ViewportWidth:             req.ViewportWidth,
		ViewportHeight:            req.ViewportHeight,
		Model:                     firstNonEmpty(req.Model, os.Getenv("MIDSCENE_MODEL_NAME"), models.DefaultModel),
		BaseURL:                   firstNonEmpty(req.BaseURL, os.Getenv("OPENAI_BASE_URL")),
		APIKey:                    firstNonEmpty(req.APIKey, os.Getenv("OPENAI_API_KEY")),
		WaitForNetworkIdleTimeout: req.WaitForNetworkIdleTimeout,
		ActionTimeout:             req.ActionTimeout,
	}

	if resolved.ViewportWidth <= 0 {
		resolved.ViewportWidth = models.DefaultViewportWidth
	}
	if resolved.ViewportHeight <= 0 {
		resolved.ViewportHeight = models.DefaultViewportHeight
	}
	if resolved.WaitForNetworkIdleTimeout <= 0 {
		resolved.WaitForNetworkIdleTimeout = models.DefaultWaitForNetworkIdleTimeout
	}
	if resolved.ActionTimeout <= 0 {
		resolved.ActionTimeout = models.DefaultActionTimeout
	}
	return resolved
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parser accumulates the first conversion error
type parser struct {
	err error
}

func (p *parser) fail(key string, err error) {
	if p.err == nil {
		p.err = fmt.Errorf("invalid %s: %w", key, err)
	}
}

func (p *parser) int(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return v
}

func (p *parser) bool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return v
}

func (p *parser) duration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, err)
		return fallback
	}
	return v
}
