package server

import (
	"fmt"

	"github.com/goalmesh/goalmesh/cancel"
	"github.com/goalmesh/goalmesh/core"
	"github.com/goalmesh/goalmesh/status"
)

// AcceptGoal starts tracking a new goal. The caller-supplied stamp is
// discarded and replaced with the current server-clock reading; the returned
// handle reflects the stamped info. Fails with ErrDuplicateGoal when the
// identity is already tracked and leaves the registry unchanged.
func (s *Server) AcceptGoal(info core.GoalInfo) (*core.GoalHandle, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if info.ID.IsZero() {
		return nil, fmt.Errorf("accept goal: zero goal identity: %w", core.ErrInvalidArgument)
	}
	handle, err := s.impl.registry.Add(info)
	if err != nil {
		return nil, err
	}
	s.impl.opts.Logger.Info("Goal accepted",
		"action", s.impl.action, "goal_id", handle.ID().String(), "stamp", handle.Info().Stamp)
	return handle, nil
}

// ProcessCancelRequest selects cancellation targets per the request's
// matching mode, transitions each to canceling, and returns the goals that
// actually transitioned. An empty response is a valid outcome. Individual
// transition failures are aggregated but do not halt the batch; partial
// results are returned alongside the aggregated error.
func (s *Server) ProcessCancelRequest(req core.CancelRequest) (core.CancelResponse, error) {
	if err := s.Validate(); err != nil {
		return core.CancelResponse{}, err
	}
	resp, err := cancel.Process(req, s.impl.registry.Snapshot())
	if err != nil {
		s.impl.opts.Logger.Error("Cancellation batch had failures",
			"action", s.impl.action, "canceling", len(resp.GoalsCanceling), "error", err.Error())
	} else {
		s.impl.opts.Logger.Debug("Cancellation processed",
			"action", s.impl.action, "canceling", len(resp.GoalsCanceling))
	}
	return resp, err
}

// ClearExpiredGoals runs one expiry sweep, evicting terminal goals older
// than the retention window, and returns the number evicted. Best-effort:
// per-goal failures are aggregated without stopping the sweep.
func (s *Server) ClearExpiredGoals() (int, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	expired, err := s.impl.sweeper.Sweep()
	if expired > 0 {
		s.impl.opts.Logger.Info("Expired goals cleared",
			"action", s.impl.action, "expired", expired, "remaining", s.impl.registry.Len())
	}
	return expired, err
}

// StatusSnapshot returns one entry per tracked goal in registry order. The
// order carries no meaning. An empty registry yields a nil slice.
func (s *Server) StatusSnapshot() ([]core.StatusEntry, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return status.Snapshot(s.impl.registry), nil
}

// GoalExists reports whether a goal with the given identity is tracked.
func (s *Server) GoalExists(id core.GoalID) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}
	return s.impl.registry.Exists(id), nil
}

// GoalHandles returns the registry's current view. The slice is valid only
// until the next mutating operation on the server.
func (s *Server) GoalHandles() ([]*core.GoalHandle, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s.impl.registry.Snapshot(), nil
}
