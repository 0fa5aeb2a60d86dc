package engine

import (
	"context"
	"time"

	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Wire method names understood by the engine process
const (
	methodTap              = "aiTap"
	methodInput            = "aiInput"
	methodScroll           = "aiScroll"
	methodKeyboardPress    = "aiKeyboardPress"
	methodHover            = "aiHover"
	methodWaitFor          = "aiWaitFor"
	methodDoubleClick      = "aiDoubleClick"
	methodRightClick       = "aiRightClick"
	methodAction           = "aiAction"
	methodLogScreenshot    = "logScreenshot"
	methodFreeze           = "freezePageContext"
	methodUnfreeze         = "unfreezePageContext"
	methodRunYAML          = "runYaml"
	methodSetActionContext = "setAIActionContext"
	methodRecordToReport   = "recordToReport"
	methodLogContent       = "_getLogContent"
	methodAssert           = "aiAssert"
	methodAsk              = "aiAsk"
	methodQuery            = "aiQuery"
	methodBoolean          = "aiBoolean"
	methodNumber           = "aiNumber"
	methodString           = "aiString"
	methodLocate           = "aiLocate"
)

type locateParams struct {
	Locate  string  `json:"locate,omitempty"`
	Value   string  `json:"value,omitempty"`
	Key     string  `json:"key,omitempty"`
	Options Options `json:"options,omitempty"`
}

type promptParams struct {
	Prompt  string  `json:"prompt"`
	Options Options `json:"options,omitempty"`
}

func (b *Bridge) Tap(ctx context.Context, locate string, opts Options) error {
	return b.call(ctx, methodTap, locateParams{Locate: locate, Options: opts}, nil)
}

func (b *Bridge) Input(ctx context.Context, locate, value string, opts Options) error {
	return b.call(ctx, methodInput, locateParams{Locate: locate, Value: value, Options: opts}, nil)
}

func (b *Bridge) Scroll(ctx context.Context, locate string, param ScrollParam) error {
	return b.call(ctx, methodScroll, struct {
		Locate string      `json:"locate,omitempty"`
		Scroll ScrollParam `json:"scrollParam"`
	}{locate, param}, nil)
}

func (b *Bridge) KeyboardPress(ctx context.Context, locate, key string, opts Options) error {
	return b.call(ctx, methodKeyboardPress, locateParams{Locate: locate, Key: key, Options: opts}, nil)
}

func (b *Bridge) Hover(ctx context.Context, locate string, opts Options) error {
	return b.call(ctx, methodHover, locateParams{Locate: locate, Options: opts}, nil)
}

// WaitFor polls inside the engine for up to opts.TimeoutMs, which may
// exceed the session's action timeout.
func (b *Bridge) WaitFor(ctx context.Context, assertion string, opts WaitOptions) error {
	timeout := b.budget(time.Duration(opts.TimeoutMs)*time.Millisecond + waitForMargin)
	return b.callWithin(ctx, timeout, methodWaitFor, struct {
		Assertion string      `json:"assertion"`
		Options   WaitOptions `json:"options"`
	}{assertion, opts}, nil)
}

func (b *Bridge) DoubleClick(ctx context.Context, locate string, opts Options) error {
	return b.call(ctx, methodDoubleClick, locateParams{Locate: locate, Options: opts}, nil)
}

func (b *Bridge) RightClick(ctx context.Context, locate string, opts Options) error {
	return b.call(ctx, methodRightClick, locateParams{Locate: locate, Options: opts}, nil)
}

func (b *Bridge) Action(ctx context.Context, prompt string, opts Options) (any, error) {
	var out any
	err := b.call(ctx, methodAction, promptParams{Prompt: prompt, Options: opts}, &out)
	return out, err
}

func (b *Bridge) LogScreenshot(ctx context.Context, title string, opts Options) (any, error) {
	var out any
	err := b.call(ctx, methodLogScreenshot, struct {
		Title   string  `json:"title,omitempty"`
		Options Options `json:"options,omitempty"`
	}{title, opts}, &out)
	return out, err
}

func (b *Bridge) FreezePageContext(ctx context.Context) error {
	return b.call(ctx, methodFreeze, nil, nil)
}

func (b *Bridge) UnfreezePageContext(ctx context.Context) error {
	return b.call(ctx, methodUnfreeze, nil, nil)
}

func (b *Bridge) RunYAML(ctx context.Context, script string) (any, error) {
	var out any
	err := b.call(ctx, methodRunYAML, struct {
		Script string `json:"yamlScript"`
	}{script}, &out)
	return out, err
}

func (b *Bridge) SetAIActionContext(ctx context.Context, actionContext string) error {
	return b.call(ctx, methodSetActionContext, struct {
		Context string `json:"context"`
	}{actionContext}, nil)
}

func (b *Bridge) RecordToReport(ctx context.Context, title string, opts Options) (any, error) {
	var out any
	err := b.call(ctx, methodRecordToReport, struct {
		Title   string  `json:"title"`
		Options Options `json:"options,omitempty"`
	}{title, opts}, &out)
	return out, err
}

func (b *Bridge) LogContent(ctx context.Context, opts Options) (any, error) {
	var out any
	err := b.call(ctx, methodLogContent, struct {
		Options Options `json:"options,omitempty"`
	}{opts}, &out)
	return out, err
}

func (b *Bridge) Assert(ctx context.Context, assertion, errorMsg string, opts Options) error {
	return b.call(ctx, methodAssert, struct {
		Assertion string  `json:"assertion"`
		ErrorMsg  string  `json:"errorMsg,omitempty"`
		Options   Options `json:"options,omitempty"`
	}{assertion, errorMsg, opts}, nil)
}

func (b *Bridge) Ask(ctx context.Context, prompt string, opts Options) (any, error) {
	var out any
	err := b.call(ctx, methodAsk, promptParams{Prompt: prompt, Options: opts}, &out)
	return out, err
}

func (b *Bridge) Query(ctx context.Context, demand any, opts Options) (any, error) {
	var out any
	err := b.call(ctx, methodQuery, struct {
		Demand  any     `json:"dataDemand"`
		Options Options `json:"options,omitempty"`
	}{demand, opts}, &out)
	return out, err
}

func (b *Bridge) Boolean(ctx context.Context, prompt string, opts Options) (bool, error) {
	var out bool
	err := b.call(ctx, methodBoolean, promptParams{Prompt: prompt, Options: opts}, &out)
	return out, err
}

func (b *Bridge) Number(ctx context.Context, prompt string, opts Options) (float64, error) {
	var out float64
	err := b.call(ctx, methodNumber, promptParams{Prompt: prompt, Options: opts}, &out)
	return out, err
}

func (b *Bridge) String(ctx context.Context, prompt string, opts Options) (string, error) {
	var out string
	err := b.call(ctx, methodString, promptParams{Prompt: prompt, Options: opts}, &out)
	return out, err
}

// Locate returns the element rectangle; the engine reports it as
// {rect:{left,top,width,height}}.
func (b *Bridge) Locate(ctx context.Context, prompt string, opts Options) (models.Rect, error) {
	var out struct {
		Rect struct {
			Left   float64 `json:"left"`
			Top    float64 `json:"top"`
			Width  float64 `json:"width"`
			Height float64 `json:"height"`
		} `json:"rect"`
	}
	if err := b.call(ctx, methodLocate, promptParams{Prompt: prompt, Options: opts}, &out); err != nil {
		return models.Rect{}, err
	}
	return models.Rect{X: out.Rect.Left, Y: out.Rect.Top, Width: out.Rect.Width, Height: out.Rect.Height}, nil
}
