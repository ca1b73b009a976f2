package testutil

import (
	"time"

	"github.com/goalmesh/goalmesh/core"
)

// StubLifecycle is a scriptable core.Lifecycle for tests: the status is set
// directly and Cancel/Close failures can be injected.
type StubLifecycle struct {
	CurrentStatus core.Status
	CancelErr     error
	CloseErr      error
	CancelCalls   int
	CloseCalls    int
}

var _ core.Lifecycle = (*StubLifecycle)(nil)

// Status returns the scripted status.
func (s *StubLifecycle) Status() core.Status { return s.CurrentStatus }

// Active reports whether the scripted status is non-terminal.
func (s *StubLifecycle) Active() bool { return s.CurrentStatus.IsActive() }

// Cancelable reports whether the scripted status is active and not canceling.
func (s *StubLifecycle) Cancelable() bool {
	return s.CurrentStatus == core.StatusAccepted || s.CurrentStatus == core.StatusExecuting
}

// Cancel records the call and, unless a failure is scripted, moves the status
// to canceling.
func (s *StubLifecycle) Cancel() error {
	s.CancelCalls++
	if s.CancelErr != nil {
		return s.CancelErr
	}
	s.CurrentStatus = core.StatusCanceling
	return nil
}

// Close records the call and returns any scripted failure.
func (s *StubLifecycle) Close() error {
	s.CloseCalls++
	return s.CloseErr
}

// GoalBuilder provides a fluent helper for constructing goal handles in
// tests. Example:
//
//	h := testutil.NewGoalBuilder().Stamp(t0).Status(core.StatusExecuting).Build()
//
// Chain only the parts you need; sensible defaults are applied.
type GoalBuilder struct {
	id        core.GoalID
	stamp     time.Time
	status    core.Status
	cancelErr error
	closeErr  error
}

// NewGoalBuilder creates a builder with a random identity in the accepted
// status.
func NewGoalBuilder() *GoalBuilder {
	return &GoalBuilder{id: core.NewGoalID(), status: core.StatusAccepted}
}

// ID overrides the auto-generated goal identity (chainable).
func (b *GoalBuilder) ID(id core.GoalID) *GoalBuilder { b.id = id; return b }

// Stamp sets the acceptance stamp (chainable).
func (b *GoalBuilder) Stamp(t time.Time) *GoalBuilder { b.stamp = t; return b }

// Status sets the scripted lifecycle status (chainable).
func (b *GoalBuilder) Status(s core.Status) *GoalBuilder { b.status = s; return b }

// CancelErr injects a cancel-event failure (chainable).
func (b *GoalBuilder) CancelErr(err error) *GoalBuilder { b.cancelErr = err; return b }

// CloseErr injects a finalize failure (chainable).
func (b *GoalBuilder) CloseErr(err error) *GoalBuilder { b.closeErr = err; return b }

// Build constructs the handle over a StubLifecycle.
func (b *GoalBuilder) Build() *core.GoalHandle {
	return core.NewGoalHandle(
		core.GoalInfo{ID: b.id, Stamp: b.stamp},
		&StubLifecycle{CurrentStatus: b.status, CancelErr: b.cancelErr, CloseErr: b.closeErr},
	)
}

// BuildWithStub constructs the handle and also returns the stub for
// post-assertions.
func (b *GoalBuilder) BuildWithStub() (*core.GoalHandle, *StubLifecycle) {
	stub := &StubLifecycle{CurrentStatus: b.status, CancelErr: b.cancelErr, CloseErr: b.closeErr}
	return core.NewGoalHandle(core.GoalInfo{ID: b.id, Stamp: b.stamp}, stub), stub
}
