package core

import "time"

// CancelRequest asks the server to cancel one or more goals. Both fields have
// reserved wildcard zero values, combining into three matching modes:
//
//   - ID set, Stamp zero: cancel exactly the named goal.
//   - ID zero, Stamp zero: cancel every cancelable goal.
//   - Stamp set (ID optionally set): cancel every cancelable goal accepted at
//     or before Stamp, plus the named goal regardless of its stamp.
type CancelRequest struct {
	ID    GoalID
	Stamp time.Time
}

// CancelResponse lists the goals that were selected and successfully
// transitioned to canceling, in selection order. An empty list is a valid,
// non-error outcome.
type CancelResponse struct {
	GoalsCanceling []GoalInfo
}
