package dispatch

import (
	"context"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// queryHandlers has exactly one handler per entry of models.QueryNames.
var queryHandlers = map[models.QueryName]Handler{
	models.QueryAssert:        aiAssert,
	models.QueryAsk:           aiAsk,
	models.QueryExtract:       aiQuery,
	models.QueryBoolean:       aiBoolean,
	models.QueryNumber:        aiNumber,
	models.QueryString:        aiString,
	models.QueryLocate:        aiLocate,
	models.QueryLocation:      location,
	models.QueryTabs:          getTabs,
	models.QueryGetLogContent: queryLogContent,
}

// executeQuery is the core of the query chain.
func executeQuery(ctx context.Context, cmd *Command) (any, error) {
	h, ok := queryHandlers[models.QueryName(cmd.Name)]
	if !ok {
		return nil, apperr.UnknownQuery(cmd.Name)
	}
	return h(ctx, cmd)
}

func aiAssert(ctx context.Context, cmd *Command) (any, error) {
	assertion, err := requireString(cmd, "assertion")
	if err != nil {
		return nil, err
	}
	errorMsg, _, err := optionalString(cmd, "errorMsg")
	if err != nil {
		return nil, err
	}
	if err := cmd.Session.Agent().Assert(ctx, assertion, errorMsg, options(cmd)); err != nil {
		return nil, err
	}
	return models.AssertResult{Success: true, Assertion: assertion}, nil
}

func aiAsk(ctx context.Context, cmd *Command) (any, error) {
	prompt, err := requireString(cmd, "prompt")
	if err != nil {
		return nil, err
	}
	return cmd.Session.Agent().Ask(ctx, prompt, options(cmd))
}

// aiQuery extracts data shaped by dataDemand, which may be a string
// description or an object schema.
func aiQuery(ctx context.Context, cmd *Command) (any, error) {
	if !cmd.Params.Has("dataDemand") {
		return nil, apperr.MissingParam(cmd.Name, "dataDemand")
	}
	demand := cmd.Params.Get("dataDemand")
	switch d := demand.(type) {
	case string:
		if d == "" {
			return nil, apperr.MissingParam(cmd.Name, "dataDemand")
		}
	case map[string]any:
	default:
		return nil, apperr.InvalidParam(cmd.Name, "dataDemand", "expected a string or an object")
	}
	return cmd.Session.Agent().Query(ctx, demand, options(cmd))
}

func aiBoolean(ctx context.Context, cmd *Command) (any, error) {
	prompt, err := requireString(cmd, "prompt")
	if err != nil {
		return nil, err
	}
	return cmd.Session.Agent().Boolean(ctx, prompt, options(cmd))
}

func aiNumber(ctx context.Context, cmd *Command) (any, error) {
	prompt, err := requireString(cmd, "prompt")
	if err != nil {
		return nil, err
	}
	return cmd.Session.Agent().Number(ctx, prompt, options(cmd))
}

func aiString(ctx context.Context, cmd *Command) (any, error) {
	prompt, err := requireString(cmd, "prompt")
	if err != nil {
		return nil, err
	}
	return cmd.Session.Agent().String(ctx, prompt, options(cmd))
}

func aiLocate(ctx context.Context, cmd *Command) (any, error) {
	locate, err := requireString(cmd, "locate")
	if err != nil {
		return nil, err
	}
	return cmd.Session.Agent().Locate(ctx, locate, options(cmd))
}

func location(ctx context.Context, cmd *Command) (any, error) {
	loc, err := cmd.Session.Page().Location(ctx)
	if err != nil {
		return nil, apperr.Automation(err)
	}
	return loc, nil
}

func getTabs(ctx context.Context, cmd *Command) (any, error) {
	tabs, err := cmd.Session.Page().Tabs(ctx)
	if err != nil {
		return nil, apperr.Automation(err)
	}
	return tabs, nil
}

func queryLogContent(ctx context.Context, cmd *Command) (any, error) {
	_, _, result, err := logContent(ctx, cmd)
	return result, err
}
