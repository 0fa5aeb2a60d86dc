package models

// CommandKind distinguishes actions from queries in the history log
type CommandKind string

const (
	KindAction CommandKind = "action"
	KindQuery  CommandKind = "query"
)

// Record is one append-only history entry. Exactly one of Result and
// Error is set.
type Record struct {
	Type      CommandKind `json:"type"`
	Action    string      `json:"action"`
	Params    Params      `json:"params"`
	Result    any         `json:"result,omitempty"`
	Error     string      `json:"error,omitempty"`
	Duration  int64       `json:"duration"`
	Timestamp int64       `json:"timestamp"`
}

// Failed reports whether the entry records a failure.
func (r Record) Failed() bool {
	return r.Error != ""
}
