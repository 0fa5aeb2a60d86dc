package dispatch

import (
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/apperr"
	"github.com/shehryarbajwa/browserbase-orchestrator/internal/engine"
)

// Canonical scroll types
const (
	ScrollSingle   = "singleAction"
	ScrollToBottom = "scrollToBottom"
	ScrollToTop    = "scrollToTop"
	ScrollToLeft   = "scrollToLeft"
	ScrollToRight  = "scrollToRight"
)

const defaultScrollDistance = 500

var legacyScrollTypes = map[string]string{
	"once":        ScrollSingle,
	"untilBottom": ScrollToBottom,
	"untilTop":    ScrollToTop,
}

var canonicalScrollTypes = map[string]bool{
	ScrollSingle:   true,
	ScrollToBottom: true,
	ScrollToTop:    true,
	ScrollToLeft:   true,
	ScrollToRight:  true,
}

// NormalizeScrollType maps the legacy vocabulary onto the canonical one.
// Unknown or empty values become singleAction.
func NormalizeScrollType(t string) string {
	if mapped, ok := legacyScrollTypes[t]; ok {
		return mapped
	}
	if canonicalScrollTypes[t] {
		return t
	}
	return ScrollSingle
}

// scrollParam resolves the scroll request from either the nested
// scrollParam object (or its JSON string) or the flat parameters.
func scrollParam(cmd *Command) (engine.ScrollParam, error) {
	src := cmd
	nested, ok, err := nestedParams(cmd, "scrollParam")
	if err != nil {
		return engine.ScrollParam{}, err
	}
	if ok {
		src = &Command{Name: cmd.Name, Params: nested}
	}

	direction, err := requireString(src, "direction")
	if err != nil {
		return engine.ScrollParam{}, err
	}
	scrollType, _, err := optionalString(src, "scrollType")
	if err != nil {
		return engine.ScrollParam{}, err
	}
	distance, ok, err := optionalInt(src, "distance")
	if err != nil {
		return engine.ScrollParam{}, err
	}
	if !ok {
		distance = defaultScrollDistance
	}
	if distance < 0 {
		return engine.ScrollParam{}, apperr.InvalidParam(cmd.Name, "distance", "must not be negative")
	}

	return engine.ScrollParam{
		Direction:  direction,
		ScrollType: NormalizeScrollType(scrollType),
		Distance:   distance,
	}, nil
}
