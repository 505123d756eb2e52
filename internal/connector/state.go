package connector

// Entry is one projected review/PR context card. Title and Body are
// HTML-inert: both were passed through escaping and redaction before being
// exposed, so no tag-opening byte sequence survives.
type Entry struct {
	Title         string `json:"title"`
	Body          string `json:"body"`
	URL           string `json:"url"`
	RedactionHits int    `json:"redaction_hits"`
}

// StateKind discriminates the load outcome.
type StateKind string

const (
	StateEmpty StateKind = "empty"
	StateReady StateKind = "ready"
	StateError StateKind = "error"
)

// State is the immutable result of one load round. It is constructed once
// per request and superseded, never mutated, by the next load.
type State struct {
	Kind    StateKind `json:"kind"`
	Entries []Entry   `json:"entries,omitempty"`
	Reason  string    `json:"reason,omitempty"`
}

// Empty reports a load round that found no connector artifacts.
func Empty() State {
	return State{Kind: StateEmpty}
}

// Ready reports a successful projection.
func Ready(entries []Entry) State {
	return State{Kind: StateReady, Entries: entries}
}

// Errored reports a failed load. The reason is shown to the user as a
// dismissible notice; it never blocks the primary view.
func Errored(reason string) State {
	return State{Kind: StateError, Reason: reason}
}
