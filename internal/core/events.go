package core

// EventKind tags a domain event.
type EventKind int

const (
	EventSessionStarted EventKind = iota
	EventSessionCompleted
)

func (k EventKind) String() string {
	switch k {
	case EventSessionStarted:
		return "session_started"
	case EventSessionCompleted:
		return "session_completed"
	}
	return "unknown"
}

// Event is emitted on quiz lifecycle transitions and consumed by the
// audit collaborator. Score and Total are set only on completion.
type Event struct {
	Kind     EventKind
	User     string
	Category string
	Score    int
	Total    int
}
