// Package engine talks to the AI automation engine that resolves
// natural-language prompts against a live page.
package engine

import (
	"context"

	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Options carries the engine-specific extras of a call, passed through
// unchanged.
type Options map[string]any

// ScrollParam is the canonical scroll request
type ScrollParam struct {
	Direction  string `json:"direction"`
	ScrollType string `json:"scrollType"`
	Distance   int    `json:"distance"`
}

// WaitOptions bounds an aiWaitFor poll
type WaitOptions struct {
	TimeoutMs       int `json:"timeoutMs"`
	CheckIntervalMs int `json:"checkIntervalMs"`
}

// Agent is the automation engine attached to one page.
type Agent interface {
	Tap(ctx context.Context, locate string, opts Options) error
	Input(ctx context.Context, locate, value string, opts Options) error
	Scroll(ctx context.Context, locate string, param ScrollParam) error
	KeyboardPress(ctx context.Context, locate, key string, opts Options) error
	Hover(ctx context.Context, locate string, opts Options) error
	WaitFor(ctx context.Context, assertion string, opts WaitOptions) error
	DoubleClick(ctx context.Context, locate string, opts Options) error
	RightClick(ctx context.Context, locate string, opts Options) error
	Action(ctx context.Context, prompt string, opts Options) (any, error)
	LogScreenshot(ctx context.Context, title string, opts Options) (any, error)
	FreezePageContext(ctx context.Context) error
	UnfreezePageContext(ctx context.Context) error
	RunYAML(ctx context.Context, script string) (any, error)
	SetAIActionContext(ctx context.Context, actionContext string) error
	RecordToReport(ctx context.Context, title string, opts Options) (any, error)
	LogContent(ctx context.Context, opts Options) (any, error)

	Assert(ctx context.Context, assertion, errorMsg string, opts Options) error
	Ask(ctx context.Context, prompt string, opts Options) (any, error)
	Query(ctx context.Context, demand any, opts Options) (any, error)
	Boolean(ctx context.Context, prompt string, opts Options) (bool, error)
	Number(ctx context.Context, prompt string, opts Options) (float64, error)
	String(ctx context.Context, prompt string, opts Options) (string, error)
	Locate(ctx context.Context, prompt string, opts Options) (models.Rect, error)

	Close(ctx context.Context) error
}
