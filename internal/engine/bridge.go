package engine

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// ErrEngineExited is returned for calls made after, or pending when, the
// engine process went away.
var ErrEngineExited = errors.New("automation engine exited")

const (
	closeTimeout   = 5 * time.Second
	maxMessageSize = 10 * 1024 * 1024

	// waitForMargin is added to an aiWaitFor budget so the engine can
	// report its own timeout before the bridge gives up.
	waitForMargin = 5 * time.Second
)

// SpawnerOptions configures how engine processes are started
type SpawnerOptions struct {
	Command        string
	Args           []string
	StartupTimeout time.Duration
	Logger         *slog.Logger
}

// Spawner starts one engine process per session
type Spawner struct {
	opts SpawnerOptions
}

// NewSpawner creates a Spawner
func NewSpawner(opts SpawnerOptions) *Spawner {
	if opts.StartupTimeout <= 0 {
		opts.StartupTimeout = 10 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Spawner{opts: opts}
}

type request struct {
	ID     uint64 `json:"id"`
	Method string `json:"method"`
	Params any    `json:"params,omitempty"`
}

type response struct {
	ID      uint64          `json:"id"`
	Status  string          `json:"status"`
	Result  json.RawMessage `json:"result,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Bridge is an Agent backed by a persistent engine subprocess speaking
// newline-delimited JSON on stdin/stdout. Requests carry ids so several
// calls may be in flight at once.
type Bridge struct {
	sessionID string
	timeout   time.Duration
	logger    *slog.Logger

	cmd   *exec.Cmd
	stdin io.WriteCloser

	writeMu sync.Mutex
	mu      sync.Mutex
	pending map[uint64]chan response
	nextID  atomic.Uint64

	ready  chan response
	exited chan struct{}
	waited chan struct{}

	closeOnce sync.Once
	closeErr  error
}

// Spawn starts the engine for a session and waits for its ready message.
// The engine attaches to the browser at connectURL and the tab targetID.
func (s *Spawner) Spawn(ctx context.Context, sessionID, connectURL, targetID string, cfg models.EngineConfig) (*Bridge, error) {
	args := append(append([]string{}, s.opts.Args...), connectURL, targetID)
	cmd := exec.Command(s.opts.Command, args...)

	rawCfg, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal engine config: %w", err)
	}
	cmd.Env = append(os.Environ(),
		"ENGINE_CONFIG="+string(rawCfg),
		"MIDSCENE_MODEL_NAME="+cfg.Model,
		"OPENAI_BASE_URL="+cfg.BaseURL,
		"OPENAI_API_KEY="+cfg.APIKey,
	)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("stdin pipe failed: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe failed: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("stderr pipe failed: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start automation engine: %w", err)
	}

	timeout := cfg.ActionTimeoutDuration()
	if timeout <= 0 {
		timeout = models.DefaultActionTimeout * time.Millisecond
	}

	b := &Bridge{
		sessionID: sessionID,
		timeout:   timeout,
		logger:    s.opts.Logger.With("sessionId", sessionID, "component", "engine"),
		cmd:       cmd,
		stdin:     stdin,
		pending:   make(map[uint64]chan response),
		ready:     make(chan response, 1),
		exited:    make(chan struct{}),
		waited:    make(chan struct{}),
	}

	var readers sync.WaitGroup
	readers.Add(2)
	go func() {
		defer readers.Done()
		b.readStdout(stdout)
	}()
	go func() {
		defer readers.Done()
		b.readStderr(stderr)
	}()
	go func() {
		readers.Wait()
		_ = cmd.Wait()
		close(b.waited)
	}()

	timer := time.NewTimer(s.opts.StartupTimeout)
	defer timer.Stop()

	var startErr error
	select {
	case msg := <-b.ready:
		startErr = readyError(msg)
	case <-b.exited:
		// the handshake may have been read just before the exit
		select {
		case msg := <-b.ready:
			startErr = readyError(msg)
		default:
			startErr = fmt.Errorf("automation engine exited during startup")
		}
	case <-timer.C:
		startErr = fmt.Errorf("automation engine startup timeout")
	case <-ctx.Done():
		startErr = ctx.Err()
	}
	if startErr != nil {
		b.kill()
		return nil, startErr
	}

	b.logger.Info("✅ Automation engine connected")
	return b, nil
}

func readyError(msg response) error {
	if msg.Status == "ready" {
		return nil
	}
	return fmt.Errorf("automation engine failed to initialize: %s", msg.Message)
}

// Done is closed once the engine process has stopped producing output.
func (b *Bridge) Done() <-chan struct{} {
	return b.exited
}

func (b *Bridge) readStdout(stdout io.Reader) {
	defer b.failPending()

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxMessageSize)

	for scanner.Scan() {
		line := scanner.Bytes()

		var msg response
		if err := json.Unmarshal(line, &msg); err != nil {
			b.logger.Debug("Engine output", "line", string(line))
			continue
		}

		if msg.ID == 0 {
			select {
			case b.ready <- msg:
			default:
				b.logger.Debug("Unsolicited engine message", "status", msg.Status)
			}
			continue
		}

		b.mu.Lock()
		ch, ok := b.pending[msg.ID]
		delete(b.pending, msg.ID)
		b.mu.Unlock()

		if !ok {
			b.logger.Warn("⚠️ Response for unknown request", "id", msg.ID)
			continue
		}
		ch <- msg
	}

	if err := scanner.Err(); err != nil {
		b.logger.Error("Engine stdout read failed", "error", err)
	}
}

func (b *Bridge) readStderr(stderr io.Reader) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		b.logger.Debug("Engine stderr", "line", scanner.Text())
	}
}

// failPending marks the engine gone and releases every waiting caller.
func (b *Bridge) failPending() {
	b.mu.Lock()
	pending := b.pending
	b.pending = make(map[uint64]chan response)
	close(b.exited)
	b.mu.Unlock()

	for _, ch := range pending {
		ch <- response{Status: "error", Message: ErrEngineExited.Error()}
	}
}

// call sends one request bounded by the session's action timeout.
func (b *Bridge) call(ctx context.Context, method string, params any, out any) error {
	return b.callWithin(ctx, b.timeout, method, params, out)
}

// budget returns the session's action timeout, or d when a call asks for
// longer.
func (b *Bridge) budget(d time.Duration) time.Duration {
	return max(b.timeout, d)
}

// callWithin sends one request and decodes the result into out (when
// non-nil). Engine-reported failures come back as automation errors
// carrying the engine's message verbatim.
func (b *Bridge) callWithin(ctx context.Context, timeout time.Duration, method string, params any, out any) error {
	id := b.nextID.Add(1)
	ch := make(chan response, 1)

	b.mu.Lock()
	select {
	case <-b.exited:
		b.mu.Unlock()
		return apperr.Automation(ErrEngineExited)
	default:
	}
	b.pending[id] = ch
	b.mu.Unlock()

	line, err := json.Marshal(request{ID: id, Method: method, Params: params})
	if err != nil {
		b.forget(id)
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	b.writeMu.Lock()
	_, err = b.stdin.Write(append(line, '\n'))
	b.writeMu.Unlock()
	if err != nil {
		b.forget(id)
		return apperr.Automation(fmt.Errorf("%w: %v", ErrEngineExited, err))
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case resp := <-ch:
		if resp.Status == "error" {
			if resp.ID == 0 {
				return apperr.Automation(ErrEngineExited)
			}
			return apperr.Automation(errors.New(resp.Message))
		}
		if out != nil && len(resp.Result) > 0 {
			if err := json.Unmarshal(resp.Result, out); err != nil {
				return apperr.Automation(fmt.Errorf("unexpected %s result: %w", method, err))
			}
		}
		return nil
	case <-timer.C:
		b.forget(id)
		return apperr.Automation(fmt.Errorf("%s timed out after %s", method, timeout))
	case <-ctx.Done():
		b.forget(id)
		return ctx.Err()
	}
}

func (b *Bridge) forget(id uint64) {
	b.mu.Lock()
	delete(b.pending, id)
	b.mu.Unlock()
}

// Close asks the engine to shut down, then waits for it and kills it if
// it lingers. Subsequent calls return the first result.
func (b *Bridge) Close(ctx context.Context) error {
	b.closeOnce.Do(func() {
		b.logger.Info("🔌 Closing automation engine")

		closeCtx, cancel := context.WithTimeout(ctx, closeTimeout)
		defer cancel()

		if err := b.call(closeCtx, "close", nil, nil); err != nil && !errors.Is(err, ErrEngineExited) {
			b.closeErr = fmt.Errorf("engine close: %w", err)
		}
		_ = b.stdin.Close()

		select {
		case <-b.waited:
		case <-closeCtx.Done():
			b.kill()
		}
	})
	return b.closeErr
}

func (b *Bridge) kill() {
	if b.cmd.Process != nil {
		_ = b.cmd.Process.Kill()
	}
	_ = b.stdin.Close()
}
