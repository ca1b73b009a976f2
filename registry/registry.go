// Package registry owns the set of tracked goal handles. It is a dense,
// unordered collection keyed by goal identity: insertion appends, removal
// compacts by swapping the last entry into the vacated slot. No consumer may
// rely on iteration order.
package registry

import (
	"fmt"

	"github.com/goalmesh/goalmesh/core"
)

// Registry tracks every outstanding goal handle for one action server. It
// performs no internal locking; callers serialize access externally.
type Registry struct {
	clock    core.Clock
	factory  core.LifecycleFactory
	maxGoals int
	handles  []*core.GoalHandle
}

// New constructs an empty registry. maxGoals bounds the number of tracked
// goals; zero means unbounded.
func New(clock core.Clock, factory core.LifecycleFactory, maxGoals int) *Registry {
	return &Registry{clock: clock, factory: factory, maxGoals: maxGoals}
}

// Add accepts a new goal: it rejects duplicate identities, re-stamps the
// supplied info with the current clock reading (any caller-provided stamp is
// discarded), constructs the lifecycle via the injected factory and takes
// ownership of the resulting handle. The registry grows by exactly one entry
// per successful call.
func (r *Registry) Add(info core.GoalInfo) (*core.GoalHandle, error) {
	if r.Exists(info.ID) {
		return nil, fmt.Errorf("accept goal %s: %w", info.ID, core.ErrDuplicateGoal)
	}
	if r.maxGoals > 0 && len(r.handles) >= r.maxGoals {
		return nil, fmt.Errorf("accept goal %s: %d goals tracked: %w", info.ID, len(r.handles), core.ErrCapacity)
	}
	now, err := r.clock.Now()
	if err != nil {
		return nil, fmt.Errorf("accept goal %s: read clock: %w", info.ID, err)
	}
	info.Stamp = now
	handle := core.NewGoalHandle(info, r.factory(info))
	r.handles = append(r.handles, handle)
	return handle, nil
}

// RemoveCompacted evicts the handle at index i: the lifecycle is finalized
// first (ownership release), then the last entry is swapped into slot i and
// the sequence shrinks by one. O(1), order-destroying. A finalize failure is
// returned but does not prevent the removal.
func (r *Registry) RemoveCompacted(i int) error {
	if i < 0 || i >= len(r.handles) {
		return fmt.Errorf("remove index %d of %d: %w", i, len(r.handles), core.ErrInvalidArgument)
	}
	err := r.handles[i].Close()
	last := len(r.handles) - 1
	r.handles[i] = r.handles[last]
	r.handles[last] = nil
	r.handles = r.handles[:last]
	if err != nil {
		return fmt.Errorf("finalize goal: %w", err)
	}
	return nil
}

// Exists reports whether a handle with the given identity is tracked,
// compared byte-for-byte.
func (r *Registry) Exists(id core.GoalID) bool {
	for _, h := range r.handles {
		if h.ID() == id {
			return true
		}
	}
	return false
}

// Len returns the number of tracked handles.
func (r *Registry) Len() int { return len(r.handles) }

// At returns the handle at index i.
func (r *Registry) At(i int) *core.GoalHandle { return r.handles[i] }

// Snapshot returns a read-only view of the current entries. The view is valid
// only until the next mutation of the registry.
func (r *Registry) Snapshot() []*core.GoalHandle { return r.handles }
