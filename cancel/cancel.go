// Package cancel implements cancellation-target selection and the best-effort
// batch transition of selected goals to canceling.
package cancel

import (
	"fmt"

	"github.com/goalmesh/goalmesh/core"
)

// Select determines which goals in the snapshot a cancellation request
// matches. The three matching modes, in precedence order:
//
//  1. ID set, stamp zero: the first cancelable goal with that identity, at
//     most one. No match is an empty selection, not an error.
//  2. ID zero, stamp zero: every cancelable goal (the implicit stamp
//     threshold is unbounded).
//  3. Stamp set: every cancelable goal accepted at or before the stamp, plus
//     any goal matching a set ID regardless of its stamp.
//
// Selection is pure: no goal state changes here.
func Select(req core.CancelRequest, snapshot []*core.GoalHandle) []*core.GoalHandle {
	if !req.ID.IsZero() && req.Stamp.IsZero() {
		for _, h := range snapshot {
			if h.ID() == req.ID {
				if h.Cancelable() {
					return []*core.GoalHandle{h}
				}
				break
			}
		}
		return nil
	}

	unbounded := req.ID.IsZero() && req.Stamp.IsZero()
	var selected []*core.GoalHandle
	for _, h := range snapshot {
		if !h.Cancelable() {
			continue
		}
		if unbounded || !h.Info().Stamp.After(req.Stamp) || h.ID() == req.ID {
			selected = append(selected, h)
		}
	}
	return selected
}

// Process selects cancellation targets and applies the cancel event to each.
// The batch is best-effort: a failed transition is recorded but does not stop
// the remaining goals from being attempted. The response lists, in selection
// order, every goal that actually transitioned; it is returned alongside any
// aggregated error so partial success is visible to the caller.
func Process(req core.CancelRequest, snapshot []*core.GoalHandle) (core.CancelResponse, error) {
	selected := Select(req, snapshot)
	if len(selected) == 0 {
		return core.CancelResponse{}, nil
	}

	var errs []error
	goals := make([]core.GoalInfo, 0, len(selected))
	for _, h := range selected {
		if err := h.Cancel(); err != nil {
			errs = append(errs, fmt.Errorf("cancel goal %s: %w", h.ID(), err))
			continue
		}
		goals = append(goals, h.Info())
	}
	return core.CancelResponse{GoalsCanceling: goals}, core.NewBatchError(errs)
}
