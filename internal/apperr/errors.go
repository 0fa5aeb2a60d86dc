// Package apperr defines the error taxonomy shared by the session store,
// the dispatchers and the transports. Every error carries a Kind; callers
// match kinds with errors.Is against the sentinels below, which works
// through any number of fmt.Errorf("%w") layers.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an orchestrator error
type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidParams   Kind = "invalid_params"
	KindUnknownAction   Kind = "unknown_action"
	KindUnknownQuery    Kind = "unknown_query"
	KindProvisioning    Kind = "provisioning"
	KindAutomation      Kind = "automation_engine"
	KindQueryFailed     Kind = "query_failed"
	KindNoActiveSession Kind = "no_active_session"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidParams   = errors.New("invalid params")
	ErrUnknownAction   = errors.New("unknown action")
	ErrUnknownQuery    = errors.New("unknown query")
	ErrProvisioning    = errors.New("provisioning failed")
	ErrAutomation      = errors.New("automation engine error")
	ErrQueryFailed     = errors.New("query failed")
	ErrNoActiveSession = errors.New("no active session")
)

var sentinels = map[Kind]error{
	KindNotFound:        ErrNotFound,
	KindInvalidParams:   ErrInvalidParams,
	KindUnknownAction:   ErrUnknownAction,
	KindUnknownQuery:    ErrUnknownQuery,
	KindProvisioning:    ErrProvisioning,
	KindAutomation:      ErrAutomation,
	KindQueryFailed:     ErrQueryFailed,
	KindNoActiveSession: ErrNoActiveSession,
}

// Error is the concrete error type behind every Kind.
type Error struct {
	Kind    Kind
	Field   string // offending parameter, for KindInvalidParams
	Message string
	Err     error
}

// Error returns the user-visible message. Automation errors pass the
// engine's message through untouched.
func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// NotFound reports an unknown session id.
func NotFound(sessionID string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("Session %s not found", sessionID)}
}

// MissingParam reports a required parameter that was not supplied.
func MissingParam(command, field string) *Error {
	return &Error{
		Kind:    KindInvalidParams,
		Field:   field,
		Message: fmt.Sprintf("%s requires %q parameter", command, field),
	}
}

// InvalidParam reports a parameter that is present but malformed.
func InvalidParam(command, field, reason string) *Error {
	return &Error{
		Kind:    KindInvalidParams,
		Field:   field,
		Message: fmt.Sprintf("%s: invalid %q parameter: %s", command, field, reason),
	}
}

// UnknownAction reports an action name outside the catalog.
func UnknownAction(name string) *Error {
	return &Error{Kind: KindUnknownAction, Message: fmt.Sprintf("Unknown action: %s", name)}
}

// UnknownQuery reports a query name outside the catalog.
func UnknownQuery(name string) *Error {
	return &Error{Kind: KindUnknownQuery, Message: fmt.Sprintf("Unknown query: %s", name)}
}

// Provisioning wraps a session creation failure.
func Provisioning(err error) *Error {
	return &Error{Kind: KindProvisioning, Message: "Failed to create session", Err: err}
}

// Automation wraps an engine failure; the message is the engine's own.
func Automation(err error) *Error {
	return &Error{Kind: KindAutomation, Err: err}
}

// QueryFailed wraps any failure on the query path.
func QueryFailed(err error) *Error {
	return &Error{Kind: KindQueryFailed, Message: "Query failed", Err: err}
}

// NoActiveSession reports a stream command sent before subscribing.
func NoActiveSession() *Error {
	return &Error{Kind: KindNoActiveSession, Message: "No active session"}
}
