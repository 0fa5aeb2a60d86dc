package dispatch

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/engine"
	"github.com/shehryarbajwa/browserbase-orchestrator/pkg/models"
)

// requireString returns a non-empty string parameter.
func requireString(cmd *Command, field string) (string, error) {
	v, ok, err := optionalString(cmd, field)
	if err != nil {
		return "", err
	}
	if !ok || v == "" {
		return "", apperr.MissingParam(cmd.Name, field)
	}
	return v, nil
}

// optionalString returns a string parameter when present. Numbers and
// booleans are accepted in their JSON spelling.
func optionalString(cmd *Command, field string) (string, bool, error) {
	if !cmd.Params.Has(field) {
		return "", false, nil
	}
	switch v := cmd.Params.Get(field).(type) {
	case string:
		return v, true, nil
	case float64, int, bool, json.Number:
		return fmt.Sprint(v), true, nil
	default:
		return "", false, apperr.InvalidParam(cmd.Name, field, "expected a string")
	}
}

// optionalInt returns an integer parameter, coercing numeric strings.
// A non-numeric string is an invalid parameter.
func optionalInt(cmd *Command, field string) (int, bool, error) {
	if !cmd.Params.Has(field) {
		return 0, false, nil
	}
	n, err := toInt(cmd.Params.Get(field))
	if err != nil {
		return 0, false, apperr.InvalidParam(cmd.Name, field, err.Error())
	}
	return n, true, nil
}

func requireInt(cmd *Command, field string) (int, error) {
	n, ok, err := optionalInt(cmd, field)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, apperr.MissingParam(cmd.Name, field)
	}
	return n, nil
}

func toInt(v any) (int, error) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		return int(n), nil
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n.String())
		}
		return int(i), nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, fmt.Errorf("%q is not a number", n)
		}
		return i, nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

// options returns the pass-through "options" object.
func options(cmd *Command) engine.Options {
	if opts := cmd.Params.Options(); opts != nil {
		return engine.Options(opts)
	}
	return nil
}

// withOption copies opts and sets key.
func withOption(opts engine.Options, key string, value any) engine.Options {
	out := make(engine.Options, len(opts)+1)
	for k, v := range opts {
		out[k] = v
	}
	out[key] = value
	return out
}

// nestedParams reads an object parameter that may also arrive as a JSON
// encoded string.
func nestedParams(cmd *Command, field string) (models.Params, bool, error) {
	if !cmd.Params.Has(field) {
		return nil, false, nil
	}
	switch v := cmd.Params.Get(field).(type) {
	case map[string]any:
		return models.Params(v), true, nil
	case models.Params:
		return v, true, nil
	case string:
		var out models.Params
		if err := json.Unmarshal([]byte(v), &out); err != nil {
			return nil, false, apperr.InvalidParam(cmd.Name, field, fmt.Sprintf("invalid JSON: %s", v))
		}
		return out, true, nil
	default:
		return nil, false, apperr.InvalidParam(cmd.Name, field, "expected an object")
	}
}
