package dispatch

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/engine"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// Default aiWaitFor polling, in milliseconds
const (
	defaultWaitTimeoutMs  = 30000
	defaultWaitIntervalMs = 3000
)

// actionHandlers has exactly one handler per entry of models.ActionNames.
var actionHandlers = map[models.ActionName]Handler{
	models.ActionNavigate:            navigate,
	models.ActionTap:                 tap,
	models.ActionInput:               input,
	models.ActionScroll:              scroll,
	models.ActionKeyboardPress:       keyboardPress,
	models.ActionHover:               hover,
	models.ActionWaitFor:             waitFor,
	models.ActionDoubleClick:         doubleClick,
	models.ActionRightClick:          rightClick,
	models.ActionAI:                  aiAction,
	models.ActionSetActiveTab:        setActiveTab,
	models.ActionEvaluateJavaScript:  evaluateJavaScript,
	models.ActionLogScreenshot:       logScreenshot,
	models.ActionFreezePageContext:   freezePageContext,
	models.ActionUnfreezePageContext: unfreezePageContext,
	models.ActionRunYAML:             runYAML,
	models.ActionSetAIActionContext:  setAIActionContext,
	models.ActionRecordToReport:      recordToReport,
	models.ActionGetLogContent:       getLogContent,
}

// executeAction is the core of the action chain.
func executeAction(ctx context.Context, cmd *Command) (any, error) {
	h, ok := actionHandlers[models.ActionName(cmd.Name)]
	if !ok {
		return nil, apperr.UnknownAction(cmd.Name)
	}
	return h(ctx, cmd)
}

func navigate(ctx context.Context, cmd *Command) (any, error) {
	url, err := requireString(cmd, "url")
	if err != nil {
		return nil, err
	}
	if err := cmd.Session.Page().Navigate(ctx, url); err != nil {
		return nil, apperr.Automation(err)
	}
	return models.ActionResult{Success: true, URL: url}, nil
}

// locateAction covers the element actions that take only a locate prompt.
func locateAction(label string, call func(engine.Agent) func(context.Context, string, engine.Options) error) Handler {
	return func(ctx context.Context, cmd *Command) (any, error) {
		locate, err := requireString(cmd, "locate")
		if err != nil {
			return nil, err
		}
		if err := call(cmd.Session.Agent())(ctx, locate, options(cmd)); err != nil {
			return nil, err
		}
		return models.ActionResult{Success: true, Action: label, Target: locate}, nil
	}
}

var (
	tap         = locateAction("tap", func(a engine.Agent) func(context.Context, string, engine.Options) error { return a.Tap })
	hover       = locateAction("hover", func(a engine.Agent) func(context.Context, string, engine.Options) error { return a.Hover })
	doubleClick = locateAction("doubleclick", func(a engine.Agent) func(context.Context, string, engine.Options) error { return a.DoubleClick })
	rightClick  = locateAction("rightclick", func(a engine.Agent) func(context.Context, string, engine.Options) error { return a.RightClick })
)

func input(ctx context.Context, cmd *Command) (any, error) {
	locate, err := requireString(cmd, "locate")
	if err != nil {
		return nil, err
	}
	value, err := requireString(cmd, "value")
	if err != nil {
		return nil, err
	}

	opts := options(cmd)
	if cmd.Params.Has("autoDismissKeyboard") {
		opts = withOption(opts, "autoDismissKeyboard", cmd.Params.Get("autoDismissKeyboard"))
	}
	if mode, ok, _ := optionalString(cmd, "mode"); ok && mode != "" {
		opts = withOption(opts, "mode", mode)
	}

	if err := cmd.Session.Agent().Input(ctx, locate, value, opts); err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "input", Value: value}, nil
}

func scroll(ctx context.Context, cmd *Command) (any, error) {
	param, err := scrollParam(cmd)
	if err != nil {
		return nil, err
	}
	locate, _, err := optionalString(cmd, "locate")
	if err != nil {
		return nil, err
	}

	if err := cmd.Session.Agent().Scroll(ctx, locate, param); err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "scroll", Direction: param.Direction}, nil
}

func keyboardPress(ctx context.Context, cmd *Command) (any, error) {
	key, err := requireString(cmd, "key")
	if err != nil {
		return nil, err
	}
	locate, _, err := optionalString(cmd, "locate")
	if err != nil {
		return nil, err
	}

	if err := cmd.Session.Agent().KeyboardPress(ctx, locate, key, options(cmd)); err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "keypress", Key: key}, nil
}

func waitFor(ctx context.Context, cmd *Command) (any, error) {
	assertion, err := requireString(cmd, "assertion")
	if err != nil {
		return nil, err
	}
	opts := engine.WaitOptions{TimeoutMs: defaultWaitTimeoutMs, CheckIntervalMs: defaultWaitIntervalMs}
	if n, ok, err := optionalInt(cmd, "timeoutMs"); err != nil {
		return nil, err
	} else if ok && n > 0 {
		opts.TimeoutMs = n
	}
	if n, ok, err := optionalInt(cmd, "checkIntervalMs"); err != nil {
		return nil, err
	} else if ok && n > 0 {
		opts.CheckIntervalMs = n
	}

	if err := cmd.Session.Agent().WaitFor(ctx, assertion, opts); err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "wait", Assertion: assertion}, nil
}

func aiAction(ctx context.Context, cmd *Command) (any, error) {
	prompt, err := requireString(cmd, "prompt")
	if err != nil {
		return nil, err
	}
	if _, err := cmd.Session.Agent().Action(ctx, prompt, options(cmd)); err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "aiAction", Prompt: prompt}, nil
}

func setActiveTab(ctx context.Context, cmd *Command) (any, error) {
	tabID, err := requireInt(cmd, "tabId")
	if err != nil {
		return nil, err
	}
	if err := cmd.Session.Page().ActivateTab(ctx, tabID); err != nil {
		return nil, apperr.Automation(fmt.Errorf("Tab %d not found: %w", tabID, err))
	}
	return models.ActionResult{Success: true, Action: "setActiveTab", TabID: &tabID}, nil
}

func evaluateJavaScript(ctx context.Context, cmd *Command) (any, error) {
	script, err := requireString(cmd, "script")
	if err != nil {
		return nil, err
	}
	result, err := cmd.Session.Page().Evaluate(ctx, script)
	if err != nil {
		return nil, apperr.Automation(err)
	}
	return models.ActionResult{Success: true, Action: "evaluateJavaScript", Result: result}, nil
}

func logScreenshot(ctx context.Context, cmd *Command) (any, error) {
	title, _, err := optionalString(cmd, "title")
	if err != nil {
		return nil, err
	}
	name := title
	if name == "" {
		name = "screenshot"
	}

	result, err := cmd.Session.Agent().LogScreenshot(ctx, name, options(cmd))
	if err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "logScreenshot", Title: title, Result: result}, nil
}

func freezePageContext(ctx context.Context, cmd *Command) (any, error) {
	if err := cmd.Session.Agent().FreezePageContext(ctx); err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "freezePageContext"}, nil
}

func unfreezePageContext(ctx context.Context, cmd *Command) (any, error) {
	if err := cmd.Session.Agent().UnfreezePageContext(ctx); err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "unfreezePageContext"}, nil
}

func runYAML(ctx context.Context, cmd *Command) (any, error) {
	script, err := requireString(cmd, "yamlScript")
	if err != nil {
		return nil, err
	}
	if err := validateYAMLScript(script); err != nil {
		return nil, apperr.InvalidParam(cmd.Name, "yamlScript", err.Error())
	}

	result, err := cmd.Session.Agent().RunYAML(ctx, script)
	if err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "runYaml", Result: result}, nil
}

// validateYAMLScript checks that a script bundle parses and carries a
// task list before it is shipped to the engine.
func validateYAMLScript(script string) error {
	var doc struct {
		Tasks []struct {
			Name string `yaml:"name"`
			Flow []any  `yaml:"flow"`
		} `yaml:"tasks"`
	}
	if err := yaml.Unmarshal([]byte(script), &doc); err != nil {
		return fmt.Errorf("invalid YAML: %w", err)
	}
	if len(doc.Tasks) == 0 {
		return fmt.Errorf("script has no tasks")
	}
	for i, task := range doc.Tasks {
		if len(task.Flow) == 0 {
			return fmt.Errorf("task %d (%q) has an empty flow", i, task.Name)
		}
	}
	return nil
}

func setAIActionContext(ctx context.Context, cmd *Command) (any, error) {
	actionContext, err := requireString(cmd, "context")
	if err != nil {
		return nil, err
	}
	if err := cmd.Session.Agent().SetAIActionContext(ctx, actionContext); err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "setAIActionContext", Context: actionContext}, nil
}

func recordToReport(ctx context.Context, cmd *Command) (any, error) {
	title, _, err := optionalString(cmd, "title")
	if err != nil {
		return nil, err
	}
	content, _, err := optionalString(cmd, "content")
	if err != nil {
		return nil, err
	}

	var opts engine.Options
	if content != "" {
		opts = engine.Options{"content": content}
	}
	result, err := cmd.Session.Agent().RecordToReport(ctx, title, opts)
	if err != nil {
		return nil, err
	}

	if title == "" {
		title = "untitled"
	}
	return models.ActionResult{Success: true, Action: "recordToReport", Title: title, Content: content, Result: result}, nil
}

func getLogContent(ctx context.Context, cmd *Command) (any, error) {
	msgType, level, result, err := logContent(ctx, cmd)
	if err != nil {
		return nil, err
	}
	return models.ActionResult{Success: true, Action: "getLogContent", MsgType: msgType, Level: level, Result: result}, nil
}

// logContent is shared by the getLogContent action and query.
func logContent(ctx context.Context, cmd *Command) (msgType, level string, result any, err error) {
	if msgType, _, err = optionalString(cmd, "msgType"); err != nil {
		return "", "", nil, err
	}
	if level, _, err = optionalString(cmd, "level"); err != nil {
		return "", "", nil, err
	}

	var opts engine.Options
	if msgType != "" {
		opts = withOption(opts, "msgType", msgType)
	}
	if level != "" {
		opts = withOption(opts, "level", level)
	}
	result, err = cmd.Session.Agent().LogContent(ctx, opts)
	return msgType, level, result, err
}
