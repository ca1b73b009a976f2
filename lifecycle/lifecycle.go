// Package lifecycle implements the goal state machine as a closed variant
// with an explicit transition table. A goal is accepted, optionally starts
// executing, may pass through the canceling transition, and terminates in
// succeeded, canceled or aborted. The tracking core consumes this package
// only through the core.Lifecycle capability interface.
package lifecycle

import (
	"fmt"

	"github.com/goalmesh/goalmesh/core"
)

// Event is a lifecycle transition trigger.
type Event int8

const (
	// EventExecute marks the start of goal execution.
	EventExecute Event = iota
	// EventCancelGoal requests that the executor stop the goal.
	EventCancelGoal
	// EventSucceed terminates the goal successfully.
	EventSucceed
	// EventAbort terminates the goal as abandoned by the server.
	EventAbort
	// EventCanceled terminates a canceling goal as stopped.
	EventCanceled
)

// String returns a lower-case event name.
func (e Event) String() string {
	switch e {
	case EventExecute:
		return "execute"
	case EventCancelGoal:
		return "cancel_goal"
	case EventSucceed:
		return "succeed"
	case EventAbort:
		return "abort"
	case EventCanceled:
		return "canceled"
	default:
		return "invalid"
	}
}

// transitions is the complete table of legal state changes. Absence means the
// event is invalid in that status.
var transitions = map[core.Status]map[Event]core.Status{
	core.StatusAccepted: {
		EventExecute:    core.StatusExecuting,
		EventCancelGoal: core.StatusCanceling,
	},
	core.StatusExecuting: {
		EventCancelGoal: core.StatusCanceling,
		EventSucceed:    core.StatusSucceeded,
		EventAbort:      core.StatusAborted,
	},
	core.StatusCanceling: {
		EventSucceed:  core.StatusSucceeded,
		EventAbort:    core.StatusAborted,
		EventCanceled: core.StatusCanceled,
	},
}

// Handle is one goal's state machine instance. It implements core.Lifecycle.
// Like the rest of the tracking core it performs no internal locking; callers
// serialize access externally.
type Handle struct {
	id     core.GoalID
	status core.Status
	closed bool
}

var _ core.Lifecycle = (*Handle)(nil)

// New returns a handle in the accepted status.
func New(info core.GoalInfo) core.Lifecycle {
	return &Handle{id: info.ID, status: core.StatusAccepted}
}

// Status returns the current lifecycle status.
func (h *Handle) Status() core.Status { return h.status }

// Active reports whether the goal has not reached a terminal status.
func (h *Handle) Active() bool { return h.status.IsActive() }

// Cancelable reports whether the goal is active and not already canceling.
func (h *Handle) Cancelable() bool {
	return h.status == core.StatusAccepted || h.status == core.StatusExecuting
}

// Apply performs one transition, failing if the event is not legal in the
// current status or the handle has been finalized.
func (h *Handle) Apply(ev Event) error {
	if h.closed {
		return fmt.Errorf("goal %s: apply %s: handle finalized", h.id, ev)
	}
	next, ok := transitions[h.status][ev]
	if !ok {
		return fmt.Errorf("goal %s: invalid transition %s from %s", h.id, ev, h.status)
	}
	h.status = next
	return nil
}

// Execute marks the start of execution.
func (h *Handle) Execute() error { return h.Apply(EventExecute) }

// Cancel applies the cancel event, moving the goal to canceling.
func (h *Handle) Cancel() error { return h.Apply(EventCancelGoal) }

// Succeed terminates the goal successfully.
func (h *Handle) Succeed() error { return h.Apply(EventSucceed) }

// Abort terminates the goal as abandoned.
func (h *Handle) Abort() error { return h.Apply(EventAbort) }

// Canceled terminates a canceling goal as stopped.
func (h *Handle) Canceled() error { return h.Apply(EventCanceled) }

// Close finalizes the handle. Idempotent; later events are rejected.
func (h *Handle) Close() error {
	h.closed = true
	return nil
}
