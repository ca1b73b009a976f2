// Package server provides the action server facade: lifecycle management of
// the five transport channels, goal tracking, cancellation processing, expiry
// sweeping and status snapshots.
//
// A Server follows a strict uninitialized → initialized → finalized
// progression. Every operation other than Init and Close requires a valid,
// initialized server.
//
// Concurrency contract: the server performs no internal locking. All
// operations on one instance must be externally serialized, for example by a
// single-threaded executor loop. The in-process transport it talks to is
// independently safe for concurrent use by its clients.
package server

import (
	"errors"
	"fmt"

	"github.com/goalmesh/goalmesh/core"
	"github.com/goalmesh/goalmesh/registry"
	"github.com/goalmesh/goalmesh/sweep"
)

// Server is the goal-tracking and cancellation-orchestration facade. The zero
// value is an uninitialized server: call Init before use.
type Server struct {
	impl *serverState
}

// serverState holds everything an initialized server owns. A nil impl
// pointer is the uninitialized/finalized state.
type serverState struct {
	action string
	opts   Options
	clock  core.Clock

	goalService   core.RequestChannel
	cancelService core.RequestChannel
	resultService core.RequestChannel
	feedbackTopic core.BroadcastChannel
	statusTopic   core.BroadcastChannel

	registry *registry.Registry
	sweeper  *sweep.Sweeper
}

// New returns an uninitialized server.
func New() *Server { return &Server{} }

// Init constructs the server's five channels over the given transport and
// prepares the goal registry. It fails with ErrAlreadyInitialized when called
// on an initialized server. On any failure every sub-resource already
// constructed is torn down, leaving the server indistinguishable from
// uninitialized.
func (s *Server) Init(tp core.Transport, clock core.Clock, action string, opts Options) error {
	if s == nil {
		return fmt.Errorf("init action server: nil server: %w", core.ErrInvalidArgument)
	}
	if tp == nil {
		return fmt.Errorf("init action server: nil transport: %w", core.ErrInvalidArgument)
	}
	if clock == nil {
		return fmt.Errorf("init action server: nil clock: %w", core.ErrInvalidArgument)
	}
	if action == "" {
		return fmt.Errorf("init action server: empty action name: %w", core.ErrInvalidArgument)
	}
	if s.impl != nil {
		return fmt.Errorf("init action server %q: %w", action, core.ErrAlreadyInitialized)
	}

	opts = opts.withDefaults()
	st := &serverState{action: action, opts: opts, clock: clock}
	opts.Logger.Debug("Initializing action server", "action", action)

	openRequest := func(dst *core.RequestChannel, kind core.ChannelKind, qos core.QoSProfile) error {
		ch, err := tp.OpenRequestChannel(action, kind, qos)
		if err != nil {
			return fmt.Errorf("open %s channel: %w", kind, err)
		}
		*dst = ch
		return nil
	}
	openBroadcast := func(dst *core.BroadcastChannel, kind core.ChannelKind, qos core.QoSProfile) error {
		ch, err := tp.OpenBroadcastChannel(action, kind, qos)
		if err != nil {
			return fmt.Errorf("open %s channel: %w", kind, err)
		}
		*dst = ch
		return nil
	}

	err := openRequest(&st.goalService, core.SubmitGoalChannel, opts.GoalServiceQoS)
	if err == nil {
		err = openRequest(&st.cancelService, core.CancelChannel, opts.CancelServiceQoS)
	}
	if err == nil {
		err = openRequest(&st.resultService, core.FetchResultChannel, opts.ResultServiceQoS)
	}
	if err == nil {
		err = openBroadcast(&st.feedbackTopic, core.FeedbackChannel, opts.FeedbackTopicQoS)
	}
	if err == nil {
		err = openBroadcast(&st.statusTopic, core.StatusChannel, opts.StatusTopicQoS)
	}
	if err != nil {
		// Tear down whatever was constructed; the primary failure wins
		// over any secondary teardown error.
		s.impl = st
		_ = s.Close()
		return fmt.Errorf("init action server %q: %w", action, err)
	}

	st.registry = registry.New(clock, opts.LifecycleFactory, opts.MaxTrackedGoals)
	st.sweeper = sweep.New(st.registry, clock, opts.ResultRetention, opts.Logger)
	s.impl = st
	return nil
}

// Close releases every sub-resource. It is best-effort: each release is
// attempted even if earlier ones fail, and failures are aggregated into a
// single error. Closing an uninitialized or already finalized server
// succeeds. After Close the server may be initialized again.
func (s *Server) Close() error {
	if s == nil || s.impl == nil {
		return nil
	}
	st := s.impl
	var errs []error
	closeChannel := func(kind core.ChannelKind, ch interface{ Close() error }) {
		if ch == nil {
			return
		}
		if err := ch.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close %s channel: %w", kind, err))
		}
	}
	closeChannel(core.SubmitGoalChannel, st.goalService)
	closeChannel(core.CancelChannel, st.cancelService)
	closeChannel(core.FetchResultChannel, st.resultService)
	closeChannel(core.FeedbackChannel, st.feedbackTopic)
	closeChannel(core.StatusChannel, st.statusTopic)
	s.impl = nil
	return core.NewBatchError(errs)
}

// Validate reports why the server is not usable: uninitialized state or any
// invalid channel, checked in a fixed order with the first failure returned.
// The result always wraps ErrServerInvalid.
func (s *Server) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil server", core.ErrServerInvalid)
	}
	if s.impl == nil {
		return fmt.Errorf("%w: not initialized", core.ErrServerInvalid)
	}
	st := s.impl
	checks := []struct {
		kind  core.ChannelKind
		valid bool
	}{
		{core.SubmitGoalChannel, st.goalService != nil && st.goalService.Valid()},
		{core.CancelChannel, st.cancelService != nil && st.cancelService.Valid()},
		{core.FetchResultChannel, st.resultService != nil && st.resultService.Valid()},
		{core.FeedbackChannel, st.feedbackTopic != nil && st.feedbackTopic.Valid()},
		{core.StatusChannel, st.statusTopic != nil && st.statusTopic.Valid()},
	}
	for _, c := range checks {
		if !c.valid {
			return fmt.Errorf("%w: %s channel invalid", core.ErrServerInvalid, c.kind)
		}
	}
	return nil
}

// Valid reports whether the server is initialized with all five channels
// usable.
func (s *Server) Valid() bool { return s.Validate() == nil }

// Name returns the action name the server was initialized with.
func (s *Server) Name() (string, error) {
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s.impl.action, nil
}

// Options returns the effective (defaulted) options.
func (s *Server) Options() (Options, error) {
	if err := s.Validate(); err != nil {
		return Options{}, err
	}
	return s.impl.opts, nil
}

// translateTake maps the transport's channel-empty condition to the
// server-specific take-failed code, leaving other failures intact.
func translateTake(what string, err error) error {
	if errors.Is(err, core.ErrChannelEmpty) {
		return fmt.Errorf("take %s request: %w", what, core.ErrTakeFailed)
	}
	return fmt.Errorf("take %s request: %w", what, err)
}
