package core

import (
	"time"

	"github.com/google/uuid"
)

// GoalID is the 16-byte opaque identifier of a goal. It is client-supplied,
// immutable, and compared byte-for-byte. The all-zero value is reserved: in a
// cancellation request it acts as a wildcard matching any goal.
type GoalID uuid.UUID

// ZeroGoalID is the reserved wildcard identity.
var ZeroGoalID GoalID

// NewGoalID returns a random goal identifier.
func NewGoalID() GoalID { return GoalID(uuid.New()) }

// ParseGoalID parses the canonical UUID string form of a goal identifier.
func ParseGoalID(s string) (GoalID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ZeroGoalID, err
	}
	return GoalID(u), nil
}

// IsZero reports whether the identifier is the reserved wildcard value.
func (id GoalID) IsZero() bool { return id == ZeroGoalID }

// String returns the canonical UUID string form.
func (id GoalID) String() string { return uuid.UUID(id).String() }

// GoalInfo carries a goal's identity together with the timestamp assigned by
// the server at acceptance time. Immutable after creation; the stamp is always
// written by the server's clock, never by the client.
type GoalInfo struct {
	ID    GoalID
	Stamp time.Time
}

// Lifecycle is the capability interface over a goal's internal state machine.
// The tracking core never inspects the machine directly; it only queries
// activity and cancelability, applies the cancel event, and finalizes.
type Lifecycle interface {
	// Status returns the current lifecycle status.
	Status() Status
	// Active reports whether the goal is in a non-terminal status.
	Active() bool
	// Cancelable reports whether the goal is active and not already
	// transitioning to canceling.
	Cancelable() bool
	// Cancel applies the cancel event, moving the goal toward Canceling.
	Cancel() error
	// Close finalizes the goal's lifecycle resources. After Close no
	// further events are accepted.
	Close() error
}

// GoalHandle is the server-side tracking object for one goal: its identity,
// acceptance stamp, and lifecycle capability. A handle is created only when a
// goal is accepted and destroyed only when the expiry sweep evicts it; the
// registry owns it exclusively for that whole span.
type GoalHandle struct {
	info      GoalInfo
	lifecycle Lifecycle
}

// NewGoalHandle binds goal info to a lifecycle capability.
func NewGoalHandle(info GoalInfo, lc Lifecycle) *GoalHandle {
	return &GoalHandle{info: info, lifecycle: lc}
}

// Info returns the goal's identity and acceptance stamp.
func (h *GoalHandle) Info() GoalInfo { return h.info }

// ID returns the goal's identity.
func (h *GoalHandle) ID() GoalID { return h.info.ID }

// Status returns the goal's current lifecycle status.
func (h *GoalHandle) Status() Status { return h.lifecycle.Status() }

// Active reports whether the goal has not yet reached a terminal status.
func (h *GoalHandle) Active() bool { return h.lifecycle.Active() }

// Cancelable reports whether a cancel event may be applied to the goal.
func (h *GoalHandle) Cancelable() bool { return h.lifecycle.Cancelable() }

// Cancel applies the cancel event to the goal's lifecycle.
func (h *GoalHandle) Cancel() error { return h.lifecycle.Cancel() }

// Close finalizes the goal's lifecycle resources.
func (h *GoalHandle) Close() error { return h.lifecycle.Close() }

// Lifecycle returns the underlying capability so an executor can drive
// transitions beyond the cancel event (execute, succeed, abort).
func (h *GoalHandle) Lifecycle() Lifecycle { return h.lifecycle }

// LifecycleFactory constructs the lifecycle capability for a newly accepted
// goal. Injected so the tracking core stays independent of the concrete
// state machine implementation.
type LifecycleFactory func(info GoalInfo) Lifecycle
