// Package goalmesh provides a high-level façade over the action server core
// (goal registry, cancellation selection, expiry sweeping & status
// snapshots) enabling rapid construction of long-running, cancelable task
// servers. Most applications interact with this package by:
//  1. Creating an ActionServer via New() (optionally overriding the default
//     in-memory transport, clock, lifecycle factory or logger)
//  2. Accepting goals and driving their lifecycles as work progresses
//  3. Processing cancel requests, publishing feedback/status and sweeping
//     expired results
//
// The façade delegates tracking to server.Server while keeping setup and
// usage ergonomics concise. All defaults are safe for local development and
// testing; production deployments typically supply a real transport and a
// structured logger.
package goalmesh

import (
	"github.com/goalmesh/goalmesh/core"
	"github.com/goalmesh/goalmesh/logging"
	"github.com/goalmesh/goalmesh/server"
	"github.com/goalmesh/goalmesh/transport"
)

// Options configures the ActionServer instance.
type Options struct {
	// Server configuration (per-channel QoS, retention, goal bound)
	ServerOptions server.Options

	// Transport supplies the five channels (defaults to an in-process
	// transport if not provided).
	Transport core.Transport

	// Clock is the server time source (defaults to the system clock).
	Clock core.Clock

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// ActionServer is the high-level façade aggregating the underlying tracking
// server and its collaborators.
type ActionServer struct {
	opts   Options
	server *server.Server
}

// New creates an initialized ActionServer for the named action with optional
// overrides. Any unset collaborator is initialized with an in-process or
// system default.
func New(action string, optFns ...func(o *Options)) (*ActionServer, error) {
	opts := Options{
		ServerOptions: server.DefaultOptions(),
		Transport:     transport.NewInMemory(),
		Clock:         core.SystemClock{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger != nil {
		opts.ServerOptions.Logger = opts.Logger
	}

	srv := server.New()
	if err := srv.Init(opts.Transport, opts.Clock, action, opts.ServerOptions); err != nil {
		return nil, err
	}
	return &ActionServer{opts: opts, server: srv}, nil
}

// Server returns the underlying tracking server.
func (a *ActionServer) Server() *server.Server { return a.server }

// Transport returns the transport the server was initialized with.
func (a *ActionServer) Transport() core.Transport { return a.opts.Transport }

// AcceptGoal starts tracking a new goal, stamping it with the server clock.
func (a *ActionServer) AcceptGoal(info core.GoalInfo) (*core.GoalHandle, error) {
	return a.server.AcceptGoal(info)
}

// ProcessCancelRequest applies the three-mode cancellation-matching policy
// and transitions the selected goals to canceling.
func (a *ActionServer) ProcessCancelRequest(req core.CancelRequest) (core.CancelResponse, error) {
	return a.server.ProcessCancelRequest(req)
}

// ClearExpiredGoals evicts terminal goals older than the retention window.
func (a *ActionServer) ClearExpiredGoals() (int, error) {
	return a.server.ClearExpiredGoals()
}

// PublishStatusSnapshot broadcasts the current {goal, status} snapshot.
func (a *ActionServer) PublishStatusSnapshot() error {
	return a.server.PublishStatusSnapshot()
}

// Close releases the server's channels. Idempotent and best-effort.
func (a *ActionServer) Close() error { return a.server.Close() }
