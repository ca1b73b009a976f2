package core

// Status is a goal's lifecycle status. The set is closed: a goal is accepted,
// may start executing, may pass through the canceling transition, and ends in
// exactly one of the three terminal statuses.
type Status int8

const (
	// StatusUnknown is the zero value; no tracked goal ever reports it.
	StatusUnknown Status = iota
	// StatusAccepted means the goal was accepted but execution has not begun.
	StatusAccepted
	// StatusExecuting means the goal is actively being worked on.
	StatusExecuting
	// StatusCanceling means cancellation was requested and the executor has
	// been asked to stop; the goal is still active.
	StatusCanceling
	// StatusSucceeded is the terminal status for a goal that completed.
	StatusSucceeded
	// StatusCanceled is the terminal status for a goal stopped by request.
	StatusCanceled
	// StatusAborted is the terminal status for a goal abandoned by the server.
	StatusAborted
)

// IsActive reports whether the status is non-terminal.
func (s Status) IsActive() bool {
	switch s {
	case StatusAccepted, StatusExecuting, StatusCanceling:
		return true
	}
	return false
}

// IsTerminal reports whether no further execution can occur.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusSucceeded, StatusCanceled, StatusAborted:
		return true
	}
	return false
}

// String returns a lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusExecuting:
		return "executing"
	case StatusCanceling:
		return "canceling"
	case StatusSucceeded:
		return "succeeded"
	case StatusCanceled:
		return "canceled"
	case StatusAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// StatusEntry is one element of a status snapshot: a goal's identity and
// acceptance stamp paired with its lifecycle status at snapshot time.
type StatusEntry struct {
	Info   GoalInfo
	Status Status
}
